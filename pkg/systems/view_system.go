package systems

import (
	"log"

	"github.com/decker502/countdown/pkg/components"
	"github.com/decker502/countdown/pkg/ecs"
)

// ViewSystem 管理倒计时视图和庆祝视图两个容器的可见性，任一时刻只有一个可见
type ViewSystem struct {
	entityManager *ecs.EntityManager
	views         map[components.ViewMode]ecs.EntityID
	current       components.ViewMode
}

// NewViewSystem 创建两个视图容器实体，initial 视图可见
func NewViewSystem(em *ecs.EntityManager, initial components.ViewMode) *ViewSystem {
	vs := &ViewSystem{
		entityManager: em,
		views:         make(map[components.ViewMode]ecs.EntityID),
	}
	for _, mode := range []components.ViewMode{components.ViewCountdown, components.ViewCelebration} {
		id := em.CreateEntity()
		ecs.AddComponent(em, id, &components.ViewComponent{Mode: mode})
		vs.views[mode] = id
	}
	vs.apply(initial)
	return vs
}

// Show 切换到指定视图
func (vs *ViewSystem) Show(mode components.ViewMode) {
	if mode == vs.current && vs.Visible(mode) {
		return
	}
	log.Printf("[ViewSystem] Switching view: %s -> %s", vs.current, mode)
	vs.apply(mode)
}

func (vs *ViewSystem) apply(mode components.ViewMode) {
	for _, id := range ecs.GetEntitiesWith1[*components.ViewComponent](vs.entityManager) {
		view, _ := ecs.GetComponent[*components.ViewComponent](vs.entityManager, id)
		view.Visible = view.Mode == mode
	}
	vs.current = mode
}

// Visible 返回指定视图是否可见
func (vs *ViewSystem) Visible(mode components.ViewMode) bool {
	id, ok := vs.views[mode]
	if !ok {
		return false
	}
	view, ok := ecs.GetComponent[*components.ViewComponent](vs.entityManager, id)
	return ok && view.Visible
}

// Current 返回当前视图
func (vs *ViewSystem) Current() components.ViewMode {
	return vs.current
}
