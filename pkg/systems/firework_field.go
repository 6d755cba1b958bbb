package systems

import (
	"log"

	"github.com/decker502/countdown/internal/particle"
	"github.com/decker502/countdown/pkg/canvas"
)

// Range 闭区间 [Min, Max]
type Range struct {
	Min, Max float64
}

// Random 返回区间内的随机值
func (r Range) Random() float64 {
	return particle.RandomInRange(r.Min, r.Max)
}

// SpawnRegion 返回烟花生成区域：横向铺满，纵向位于中间一半
func SpawnRegion(width, height int) (x, y Range) {
	h := float64(height)
	return Range{Min: 0, Max: float64(width)}, Range{Min: h / 4, Max: h * 3 / 4}
}

// FireworkField 持有同时存在的烟花，数量不超过上限
type FireworkField struct {
	cap       int
	opts      particle.FireworkOptions
	fireworks []*particle.Firework
}

// NewFireworkField 创建上限为 limit 的烟花场
func NewFireworkField(limit int, opts particle.FireworkOptions) *FireworkField {
	return &FireworkField{
		cap:       limit,
		opts:      opts,
		fireworks: make([]*particle.Firework, 0, limit),
	}
}

// Step 推进并绘制所有烟花，移除火花全部熄灭的烟花
func (f *FireworkField) Step(s canvas.Surface) {
	alive := f.fireworks[:0]
	for _, fw := range f.fireworks {
		fw.Advance()
		fw.Draw(s)
		if !fw.IsExpired() {
			alive = append(alive, fw)
		}
	}
	clear(f.fireworks[len(alive):])
	f.fireworks = alive
}

// TrySpawn 未达上限时在区域内随机位置生成一个烟花
// 由外部周期计时器调用，不在帧循环中调用
func (f *FireworkField) TrySpawn(xRange, yRange Range) bool {
	if len(f.fireworks) >= f.cap {
		return false
	}
	x, y := xRange.Random(), yRange.Random()
	f.fireworks = append(f.fireworks, particle.NewFirework(x, y, f.opts))
	log.Printf("[FireworkField] Spawned firework at (%.0f, %.0f), active=%d/%d", x, y, len(f.fireworks), f.cap)
	return true
}

// Len 返回当前烟花数量
func (f *FireworkField) Len() int {
	return len(f.fireworks)
}

// Cap 返回同时存在的烟花上限
func (f *FireworkField) Cap() int {
	return f.cap
}

// Fireworks 返回当前烟花（只读，下一次 Step 后失效）
func (f *FireworkField) Fireworks() []*particle.Firework {
	return f.fireworks
}

// Clear 移除所有烟花
func (f *FireworkField) Clear() {
	clear(f.fireworks)
	f.fireworks = f.fireworks[:0]
}
