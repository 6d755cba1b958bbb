package components

// FlipCueComponent 数字翻页提示
// 数字槽的值变化时添加，持续 Duration 后由 FlipCueSystem 移除并提交新文字
type FlipCueComponent struct {
	// Duration 提示持续时间（秒）
	Duration float64

	// Elapsed 已经过的时间（秒）
	Elapsed float64

	// IsActive 是否激活
	IsActive bool
}

// Progress 返回提示进度 [0, 1]
func (f *FlipCueComponent) Progress() float64 {
	if f.Duration <= 0 {
		return 1
	}
	p := f.Elapsed / f.Duration
	if p > 1 {
		return 1
	}
	return p
}
