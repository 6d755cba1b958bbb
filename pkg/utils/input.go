// Package utils 提供通用工具函数
package utils

// PointerSample 一次指针采样（屏幕坐标）
type PointerSample struct {
	X, Y       int
	IsTouching bool
}

// PointerTracker 每帧记录一次指针采样，并判断是否发生了移动
// 采样由调用方提供（触摸优先于鼠标，只取第一个触摸点）
type PointerTracker struct {
	last    PointerSample
	hasLast bool
}

// NewPointerTracker 创建指针跟踪器
func NewPointerTracker() *PointerTracker {
	return &PointerTracker{}
}

// Observe 记录一次采样并返回是否移动
// 第一次采样不算移动，避免启动时在光标处注入粒子；
// 新的触摸按下视为移动；触摸抬起后回落到光标位置，不算移动
func (pt *PointerTracker) Observe(sample PointerSample) (PointerSample, bool) {
	if !pt.hasLast {
		pt.last = sample
		pt.hasLast = true
		return sample, sample.IsTouching
	}

	var moved bool
	switch {
	case pt.last.IsTouching && !sample.IsTouching:
		// 抬起
	case sample.IsTouching && !pt.last.IsTouching:
		moved = true
	default:
		moved = sample.X != pt.last.X || sample.Y != pt.last.Y
	}
	pt.last = sample
	return sample, moved
}

// Last 返回最近一次采样
func (pt *PointerTracker) Last() (PointerSample, bool) {
	return pt.last, pt.hasLast
}

// Reset 清除历史采样
func (pt *PointerTracker) Reset() {
	pt.last = PointerSample{}
	pt.hasLast = false
}
