package game

import "time"

// throttleState 节流器状态
type throttleState int

const (
	throttleIdle    throttleState = iota // 无待执行调用
	throttlePending                      // 有一次延迟调用等待触发
)

// Throttle 尾沿节流器
//
// 距上次执行已满 interval 的调用立即执行；否则保存参数并在
// 上次执行 + interval 时执行一次。等待期间的后续调用只替换参数，
// 所以延迟执行的总是最后一次调用的参数。
type Throttle[T any] struct {
	interval time.Duration
	clock    Clock
	sched    *Scheduler
	fn       func(T)

	state    throttleState
	pending  T
	timer    TimerID
	lastExec time.Time
	executed bool
}

// NewThrottle 创建节流器，延迟调用通过 sched 触发
func NewThrottle[T any](sched *Scheduler, clock Clock, interval time.Duration, fn func(T)) *Throttle[T] {
	return &Throttle[T]{
		interval: interval,
		clock:    clock,
		sched:    sched,
		fn:       fn,
	}
}

// Call 请求以 arg 执行一次
func (t *Throttle[T]) Call(arg T) {
	if t.state == throttlePending {
		t.pending = arg
		return
	}

	now := t.clock()
	elapsed := now.Sub(t.lastExec)
	if !t.executed || elapsed >= t.interval {
		t.exec(now, arg)
		return
	}

	t.state = throttlePending
	t.pending = arg
	t.timer = t.sched.At("throttle", t.lastExec.Add(t.interval), t.flush)
}

// flush 延迟计时器到期
func (t *Throttle[T]) flush(now time.Time) {
	if t.state != throttlePending {
		return
	}
	arg := t.pending
	t.clearPending()
	t.exec(now, arg)
}

func (t *Throttle[T]) exec(now time.Time, arg T) {
	t.lastExec = now
	t.executed = true
	t.fn(arg)
}

// Pending 返回是否有等待中的延迟调用
func (t *Throttle[T]) Pending() bool {
	return t.state == throttlePending
}

// Cancel 丢弃等待中的延迟调用
func (t *Throttle[T]) Cancel() {
	if t.state == throttlePending {
		t.sched.Cancel(t.timer)
		t.clearPending()
	}
}

func (t *Throttle[T]) clearPending() {
	var zero T
	t.pending = zero
	t.timer = 0
	t.state = throttleIdle
}
