package systems

import (
	"time"

	"github.com/decker502/countdown/pkg/game"
)

// Point 画布坐标
type Point struct {
	X, Y float64
}

// InputBridge 把指针/触摸移动转换为注入粒子场的粒子
//
// 原始坐标减去画布原点得到画布坐标；注入经过尾沿节流，
// 间隔内的多次移动合并为一次，使用最后一次的位置。
type InputBridge struct {
	field    *ParticleField
	count    int
	origin   Point
	throttle *game.Throttle[Point]
	injected int
}

// NewInputBridge 创建输入桥
// 参数：
//   - field: 目标粒子场
//   - count: 每次注入的粒子数
//   - sched/clock: 节流器使用的调度器和时钟
//   - interval: 最小注入间隔
func NewInputBridge(field *ParticleField, count int, sched *game.Scheduler, clock game.Clock, interval time.Duration) *InputBridge {
	b := &InputBridge{
		field: field,
		count: count,
	}
	b.throttle = game.NewThrottle(sched, clock, interval, b.inject)
	return b
}

// SetOrigin 设置画布在屏幕上的偏移
func (b *InputBridge) SetOrigin(x, y float64) {
	b.origin = Point{X: x, Y: y}
}

// PointerMoved 处理一次指针移动（屏幕坐标）
func (b *InputBridge) PointerMoved(rawX, rawY float64) {
	b.throttle.Call(Point{X: rawX - b.origin.X, Y: rawY - b.origin.Y})
}

func (b *InputBridge) inject(p Point) {
	b.field.Inject(p.X, p.Y, b.count)
	b.injected++
}

// Injections 返回实际执行的注入次数
func (b *InputBridge) Injections() int {
	return b.injected
}

// Close 丢弃等待中的延迟注入
func (b *InputBridge) Close() {
	b.throttle.Cancel()
}
