package components

// ViewMode 页面显示模式
type ViewMode int

const (
	// ViewCountdown 倒计时视图
	ViewCountdown ViewMode = iota
	// ViewCelebration 庆祝视图
	ViewCelebration
)

// String 返回视图名称（用于日志）
func (m ViewMode) String() string {
	switch m {
	case ViewCountdown:
		return "countdown"
	case ViewCelebration:
		return "celebration"
	default:
		return "unknown"
	}
}

// ViewComponent 标记一个视图容器实体及其可见性
type ViewComponent struct {
	Mode    ViewMode
	Visible bool
}
