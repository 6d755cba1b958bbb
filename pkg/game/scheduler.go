package game

import (
	"log"
	"time"
)

// TimerID 标识一个计时器，0 表示无效
type TimerID uint64

// timer 一个一次性或周期性计时器
type timer struct {
	id       TimerID
	name     string    // 计时器名称，如 "countdown"
	due      time.Time // 下一次触发时间
	interval time.Duration
	periodic bool
	fn       func(now time.Time)
}

// Scheduler 由帧循环驱动的计时器调度器
//
// 所有回调都在调用 Advance 的 goroutine 中按到期顺序同步执行。
// 周期计时器在卡顿后只补触发一次，不会连续补发错过的次数。
type Scheduler struct {
	now     time.Time
	nextID  TimerID
	timers  []*timer
	stopped bool
}

// NewScheduler 创建以 start 为当前时间的调度器
func NewScheduler(start time.Time) *Scheduler {
	return &Scheduler{now: start, nextID: 1}
}

// Now 返回调度器最近一次推进到的时间
func (s *Scheduler) Now() time.Time {
	return s.now
}

// Every 注册周期计时器，首次触发在 interval 之后
func (s *Scheduler) Every(name string, interval time.Duration, fn func(now time.Time)) TimerID {
	if interval < time.Millisecond {
		interval = time.Millisecond
	}
	return s.add(name, interval, interval, true, fn)
}

// After 注册一次性计时器，在 delay 之后触发
func (s *Scheduler) After(name string, delay time.Duration, fn func(now time.Time)) TimerID {
	if delay < 0 {
		delay = 0
	}
	return s.add(name, delay, 0, false, fn)
}

// At 注册一次性计时器，在绝对时间 when 触发（when 已过去则在下一次 Advance 时触发）
func (s *Scheduler) At(name string, when time.Time, fn func(now time.Time)) TimerID {
	return s.add(name, when.Sub(s.now), 0, false, fn)
}

func (s *Scheduler) add(name string, delay, interval time.Duration, periodic bool, fn func(now time.Time)) TimerID {
	if s.stopped {
		log.Printf("[Scheduler] Ignoring timer %q: scheduler stopped", name)
		return 0
	}
	id := s.nextID
	s.nextID++
	s.timers = append(s.timers, &timer{
		id:       id,
		name:     name,
		due:      s.now.Add(delay),
		interval: interval,
		periodic: periodic,
		fn:       fn,
	})
	return id
}

// Cancel 取消计时器，对未知或已结束的计时器无效果
func (s *Scheduler) Cancel(id TimerID) {
	for i, t := range s.timers {
		if t.id == id {
			s.timers = append(s.timers[:i], s.timers[i+1:]...)
			return
		}
	}
}

// Active 检查计时器是否仍在等待触发
func (s *Scheduler) Active(id TimerID) bool {
	for _, t := range s.timers {
		if t.id == id {
			return true
		}
	}
	return false
}

// Pending 返回等待中的计时器数量
func (s *Scheduler) Pending() int {
	return len(s.timers)
}

// Advance 把时间推进到 now，并按到期顺序执行所有到期的计时器
// 回调中可以注册或取消计时器
func (s *Scheduler) Advance(now time.Time) {
	if s.stopped {
		return
	}
	if now.After(s.now) {
		s.now = now
	}

	for !s.stopped {
		t := s.nextDue()
		if t == nil {
			return
		}
		if t.periodic {
			t.due = t.due.Add(t.interval)
			if !t.due.After(s.now) {
				t.due = s.now.Add(t.interval)
			}
		} else {
			s.Cancel(t.id)
		}
		t.fn(s.now)
	}
}

// nextDue 返回最早到期的计时器，同时到期时先注册的优先
func (s *Scheduler) nextDue() *timer {
	var best *timer
	for _, t := range s.timers {
		if t.due.After(s.now) {
			continue
		}
		if best == nil || t.due.Before(best.due) {
			best = t
		}
	}
	return best
}

// Stop 取消所有计时器，之后的注册和推进都是空操作
func (s *Scheduler) Stop() {
	if s.stopped {
		return
	}
	log.Printf("[Scheduler] Stopped, %d pending timer(s) cancelled", len(s.timers))
	s.timers = nil
	s.stopped = true
}

// Stopped 返回调度器是否已停止
func (s *Scheduler) Stopped() bool {
	return s.stopped
}
