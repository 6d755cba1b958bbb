package game

import "time"

// Clock 返回当前时间
// 场景和计时器都通过 Clock 取时间，测试中可以替换为 ManualClock
type Clock func() time.Time

// SystemClock 使用系统时间
func SystemClock() time.Time {
	return time.Now()
}

// ManualClock 是手动推进的时钟，用于测试和离线模拟
type ManualClock struct {
	now time.Time
}

// NewManualClock 创建起始于 start 的手动时钟
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now 返回当前时间
func (c *ManualClock) Now() time.Time {
	return c.now
}

// Set 把时钟设到指定时间
func (c *ManualClock) Set(t time.Time) {
	c.now = t
}

// Add 把时钟向前推进 d
func (c *ManualClock) Add(d time.Duration) time.Time {
	c.now = c.now.Add(d)
	return c.now
}
