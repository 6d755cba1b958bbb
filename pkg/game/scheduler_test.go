package game

import (
	"testing"
	"time"
)

var epoch = time.Date(2025, 12, 31, 23, 0, 0, 0, time.UTC)

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

func TestSchedulerEvery(t *testing.T) {
	s := NewScheduler(epoch)
	var fired []time.Time
	s.Every("tick", time.Second, func(now time.Time) { fired = append(fired, now) })

	s.Advance(epoch.Add(ms(999)))
	if len(fired) != 0 {
		t.Fatalf("fired %d time(s) before interval elapsed", len(fired))
	}

	s.Advance(epoch.Add(ms(1000)))
	s.Advance(epoch.Add(ms(1500)))
	s.Advance(epoch.Add(ms(2000)))
	if len(fired) != 2 {
		t.Fatalf("fired %d time(s), want 2", len(fired))
	}
	if !fired[1].Equal(epoch.Add(ms(2000))) {
		t.Errorf("second fire at %v, want +2s", fired[1].Sub(epoch))
	}
}

// 长时间卡顿后周期计时器只补触发一次
func TestSchedulerEveryDoesNotBurstAfterStall(t *testing.T) {
	s := NewScheduler(epoch)
	count := 0
	s.Every("tick", time.Second, func(time.Time) { count++ })

	s.Advance(epoch.Add(10 * time.Second))
	if count != 1 {
		t.Fatalf("fired %d time(s) after stall, want 1", count)
	}

	s.Advance(epoch.Add(10*time.Second + ms(999)))
	if count != 1 {
		t.Fatalf("fired again too early: %d", count)
	}
	s.Advance(epoch.Add(11 * time.Second))
	if count != 2 {
		t.Fatalf("fired %d time(s), want 2", count)
	}
}

func TestSchedulerAfterAndCancel(t *testing.T) {
	s := NewScheduler(epoch)
	ran := 0
	id := s.After("once", ms(300), func(time.Time) { ran++ })
	cancelled := s.After("never", ms(100), func(time.Time) { t.Error("cancelled timer fired") })

	if !s.Active(id) {
		t.Error("timer should be active after registration")
	}
	s.Cancel(cancelled)
	s.Cancel(TimerID(12345)) // 未知 ID 无效果

	s.Advance(epoch.Add(ms(299)))
	if ran != 0 {
		t.Fatal("one-shot timer fired early")
	}
	s.Advance(epoch.Add(ms(300)))
	s.Advance(epoch.Add(ms(900)))
	if ran != 1 {
		t.Errorf("one-shot timer ran %d time(s), want 1", ran)
	}
	if s.Active(id) || s.Pending() != 0 {
		t.Error("one-shot timer should be removed after firing")
	}
}

func TestSchedulerRunsInDueOrder(t *testing.T) {
	s := NewScheduler(epoch)
	var order []string
	s.After("c", ms(30), func(time.Time) { order = append(order, "c") })
	s.After("a", ms(10), func(time.Time) { order = append(order, "a") })
	s.After("b1", ms(20), func(time.Time) { order = append(order, "b1") })
	s.After("b2", ms(20), func(time.Time) { order = append(order, "b2") })

	s.Advance(epoch.Add(ms(100)))

	want := []string{"a", "b1", "b2", "c"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestSchedulerCallbackCanRegisterAndCancel(t *testing.T) {
	s := NewScheduler(epoch)
	var periodic TimerID
	count := 0
	periodic = s.Every("spawn", ms(100), func(time.Time) {
		count++
		if count == 3 {
			s.Cancel(periodic)
		}
	})
	nested := false
	s.After("outer", ms(50), func(time.Time) {
		s.After("inner", 0, func(time.Time) { nested = true })
	})

	for i := 1; i <= 10; i++ {
		s.Advance(epoch.Add(ms(i * 100)))
	}

	if count != 3 {
		t.Errorf("periodic timer fired %d time(s), want 3 (self-cancelled)", count)
	}
	if !nested {
		t.Error("timer registered from a callback did not fire")
	}
}

func TestSchedulerStop(t *testing.T) {
	s := NewScheduler(epoch)
	s.Every("tick", ms(10), func(time.Time) { t.Error("timer fired after Stop") })

	s.Stop()
	s.Stop()

	if !s.Stopped() || s.Pending() != 0 {
		t.Fatal("Stop should cancel every timer")
	}
	if id := s.After("late", 0, func(time.Time) { t.Error("registered after Stop") }); id != 0 {
		t.Errorf("After on stopped scheduler returned %d, want 0", id)
	}
	s.Advance(epoch.Add(time.Second))
}

func TestSchedulerTimeIsMonotonic(t *testing.T) {
	s := NewScheduler(epoch)
	s.Advance(epoch.Add(time.Second))
	s.Advance(epoch)
	if !s.Now().Equal(epoch.Add(time.Second)) {
		t.Errorf("Now() = %v, scheduler time must not go backwards", s.Now())
	}
}

func TestManualClock(t *testing.T) {
	c := NewManualClock(epoch)
	if !c.Now().Equal(epoch) {
		t.Fatalf("Now() = %v, want %v", c.Now(), epoch)
	}
	c.Add(ms(250))
	if got := c.Now().Sub(epoch); got != ms(250) {
		t.Errorf("elapsed = %v, want 250ms", got)
	}
	c.Set(epoch)
	if !c.Now().Equal(epoch) {
		t.Error("Set did not reset the clock")
	}
}

func TestSchedulerAtUsesAbsoluteTime(t *testing.T) {
	s := NewScheduler(epoch)
	s.Advance(epoch.Add(ms(40)))

	var firedAt time.Time
	s.At("abs", epoch.Add(ms(50)), func(now time.Time) { firedAt = now })

	s.Advance(epoch.Add(ms(49)))
	if !firedAt.IsZero() {
		t.Fatal("At timer fired early")
	}
	s.Advance(epoch.Add(ms(50)))
	if !firedAt.Equal(epoch.Add(ms(50))) {
		t.Errorf("fired at %v, want +50ms", firedAt.Sub(epoch))
	}

	// 过去的时间点在下一次推进时立即触发
	late := false
	s.At("past", epoch, func(time.Time) { late = true })
	s.Advance(epoch.Add(ms(50)))
	if !late {
		t.Error("At with a past time should fire on the next Advance")
	}
}
