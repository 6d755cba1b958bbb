package systems

import (
	"github.com/decker502/countdown/pkg/components"
	"github.com/decker502/countdown/pkg/ecs"
)

// FlipCueSystem 管理数字翻页提示的生命周期
// 提示结束时把数字槽的待显示文字提交为显示文字
type FlipCueSystem struct {
	entityManager *ecs.EntityManager
}

// NewFlipCueSystem 创建翻页提示系统
func NewFlipCueSystem(em *ecs.EntityManager) *FlipCueSystem {
	return &FlipCueSystem{
		entityManager: em,
	}
}

// Update 更新所有翻页提示
// 参数：
//   - dt: 时间增量（秒）
func (s *FlipCueSystem) Update(dt float64) {
	entities := ecs.GetEntitiesWith2[*components.FlipCueComponent, *components.DigitSlotComponent](s.entityManager)

	for _, entity := range entities {
		cue, ok := ecs.GetComponent[*components.FlipCueComponent](s.entityManager, entity)
		if !ok || !cue.IsActive {
			continue
		}

		cue.Elapsed += dt
		if cue.Elapsed < cue.Duration {
			continue
		}

		if slot, ok := ecs.GetComponent[*components.DigitSlotComponent](s.entityManager, entity); ok && slot.PendingText != "" {
			slot.Text = slot.PendingText
			slot.PendingText = ""
		}
		ecs.RemoveComponent[*components.FlipCueComponent](s.entityManager, entity)
	}
}
