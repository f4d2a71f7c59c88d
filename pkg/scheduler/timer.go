package scheduler

import (
	"time"

	"github.com/cbodonnell/tickwheel/pkg/fault"
)

// Timer completes once the scheduler's clock has advanced by its duration
// since the timer was created. It is checked once per tick, so it fires on
// the first tick at or after the deadline.
type Timer struct {
	start    time.Time
	duration time.Duration
	fired    bool
}

// NewTimer starts a timer of duration d on t's scheduler clock.
func NewTimer(t *Task, d time.Duration) *Timer {
	return &Timer{
		start:    t.sched.clock.Now(),
		duration: d,
	}
}

func (tm *Timer) Poll(t *Task) (time.Duration, bool) {
	if tm.fired {
		fault.Violation("timer", -1, "timer polled after it fired")
	}
	elapsed := t.sched.clock.Since(tm.start)
	if elapsed < tm.duration {
		return 0, false
	}
	tm.fired = true
	return elapsed, true
}

// Sleep suspends t for at least d and returns the time actually elapsed.
func Sleep(t *Task, d time.Duration) time.Duration {
	return Await[time.Duration](t, NewTimer(t, d))
}
