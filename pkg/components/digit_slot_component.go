package components

// TimeUnit 倒计时显示的时间单位
type TimeUnit int

const (
	UnitDays TimeUnit = iota
	UnitHours
	UnitMinutes
	UnitSeconds
)

// String 返回单位名称（用于日志）
func (u TimeUnit) String() string {
	switch u {
	case UnitDays:
		return "days"
	case UnitHours:
		return "hours"
	case UnitMinutes:
		return "minutes"
	case UnitSeconds:
		return "seconds"
	default:
		return "unknown"
	}
}

// DigitSlotComponent 倒计时的一个数字显示槽（天/时/分/秒）
//
// Value 在每次倒计时刷新时立即更新；Text 是屏幕上实际显示的文字，
// 有翻页提示时要等提示结束才替换为 PendingText。
type DigitSlotComponent struct {
	Unit  TimeUnit
	Label string // 数字下方的标签，如 "DAYS"

	Value       int    // 最新的数值
	Text        string // 当前显示的文字（两位以上补零）
	PendingText string // 翻页结束后要显示的文字
}
