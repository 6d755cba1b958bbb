package systems

import (
	"fmt"
	"log"
	"time"

	"github.com/decker502/countdown/pkg/components"
	"github.com/decker502/countdown/pkg/ecs"
)

// 时间分解使用的毫秒常量
const (
	msPerDay    = 24 * msPerHour
	msPerHour   = 60 * msPerMinute
	msPerMinute = 60 * msPerSecond
	msPerSecond = 1000
)

// Remaining 剩余时间分解结果
type Remaining struct {
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// Decompose 把剩余时间按毫秒整数除法分解为天/时/分/秒
//
// 这是纯算术分解而不是日历计算：天数不设上限，不考虑月份长度和夏令时。
// 负值视为 0。
func Decompose(remaining time.Duration) Remaining {
	ms := remaining.Milliseconds()
	if ms <= 0 {
		return Remaining{}
	}
	return Remaining{
		Days:    int(ms / msPerDay),
		Hours:   int(ms % msPerDay / msPerHour),
		Minutes: int(ms % msPerHour / msPerMinute),
		Seconds: int(ms % msPerMinute / msPerSecond),
	}
}

// Fields 按 天/时/分/秒 顺序返回数值
func (r Remaining) Fields() [4]int {
	return [4]int{r.Days, r.Hours, r.Minutes, r.Seconds}
}

// Format 返回 "DD:HH:MM:SS" 形式的文字，天数超过两位时原样输出
func (r Remaining) Format() string {
	return fmt.Sprintf("%s:%s:%s:%s", FormatField(r.Days), FormatField(r.Hours), FormatField(r.Minutes), FormatField(r.Seconds))
}

func (r Remaining) String() string {
	return r.Format()
}

// FormatField 把数值补零到至少两位
func FormatField(v int) string {
	return fmt.Sprintf("%02d", v)
}

// slotUnits 数字槽的创建顺序
var slotUnits = [4]components.TimeUnit{
	components.UnitDays,
	components.UnitHours,
	components.UnitMinutes,
	components.UnitSeconds,
}

// CountdownSystem 计算到目标时间的剩余时间并更新四个数字槽
//
// 状态机: COUNTING → ARRIVED（终态）。第一次观察到剩余时间 ≤ 0 时
// 切换到 ARRIVED 并执行一次 OnArrive 回调，之后的 Tick 不再产生任何副作用。
type CountdownSystem struct {
	entityManager *ecs.EntityManager
	target        time.Time
	flipDuration  time.Duration

	slots     [4]ecs.EntityID
	remaining Remaining
	arrived   bool
	onArrive  []func(now time.Time)
}

// NewCountdownSystem 创建倒计时系统，并为天/时/分/秒各创建一个数字槽实体
// labels 依次为四个槽的标签，可以为 nil
func NewCountdownSystem(em *ecs.EntityManager, target time.Time, flipDuration time.Duration, labels []string) *CountdownSystem {
	cs := &CountdownSystem{
		entityManager: em,
		target:        target,
		flipDuration:  flipDuration,
	}
	for i, unit := range slotUnits {
		label := ""
		if i < len(labels) {
			label = labels[i]
		}
		id := em.CreateEntity()
		ecs.AddComponent(em, id, &components.DigitSlotComponent{
			Unit:  unit,
			Label: label,
			Text:  FormatField(0),
		})
		cs.slots[i] = id
	}
	return cs
}

// OnArrive 注册到达目标时间时执行的回调
func (cs *CountdownSystem) OnArrive(fn func(now time.Time)) {
	cs.onArrive = append(cs.onArrive, fn)
}

// Tick 用当前时间刷新倒计时，可以重复调用
func (cs *CountdownSystem) Tick(now time.Time) {
	if cs.arrived {
		return
	}

	left := cs.target.Sub(now)
	if left > 0 {
		cs.remaining = Decompose(left)
		for i, v := range cs.remaining.Fields() {
			cs.setSlotValue(cs.slots[i], v)
		}
		return
	}

	cs.arrived = true
	cs.remaining = Remaining{}
	log.Printf("[CountdownSystem] Target %s reached at %s", cs.target.Format(time.RFC3339), now.Format(time.RFC3339))
	for _, fn := range cs.onArrive {
		fn(now)
	}
}

// setSlotValue 写入新数值；数值变化时启动翻页提示，提示结束后才替换显示文字
func (cs *CountdownSystem) setSlotValue(id ecs.EntityID, value int) {
	slot, ok := ecs.GetComponent[*components.DigitSlotComponent](cs.entityManager, id)
	if !ok || slot.Value == value {
		return
	}
	slot.Value = value
	text := FormatField(value)

	if cs.flipDuration <= 0 {
		slot.Text = text
		slot.PendingText = ""
		return
	}

	// 提示进行中再次变化时，以最后一次写入为准并重新计时
	slot.PendingText = text
	ecs.AddComponent(cs.entityManager, id, &components.FlipCueComponent{
		Duration: cs.flipDuration.Seconds(),
		IsActive: true,
	})
}

// Arrived 是否已到达目标时间
func (cs *CountdownSystem) Arrived() bool {
	return cs.arrived
}

// Remaining 最近一次 Tick 计算的剩余时间
func (cs *CountdownSystem) Remaining() Remaining {
	return cs.remaining
}

// Target 目标时间
func (cs *CountdownSystem) Target() time.Time {
	return cs.target
}

// Slots 按 天/时/分/秒 顺序返回数字槽实体
func (cs *CountdownSystem) Slots() [4]ecs.EntityID {
	return cs.slots
}
