package scheduler

import (
	"github.com/cbodonnell/tickwheel/pkg/events"
)

// Point is something a task can wait on. Poll reports either pending
// (ok == false) or completion with a value. Once a point has completed it is
// not polled again for the same wait.
type Point[T any] interface {
	Poll(t *Task) (v T, ok bool)
}

// Await suspends t until p completes and returns its value. p is polled
// immediately and then once per tick while pending.
func Await[T any](t *Task, p Point[T]) T {
	for {
		if t.stopped {
			panic(stopSignal{})
		}
		if v, ok := p.Poll(t); ok {
			return v
		}
		t.suspend()
	}
}

// FrameBarrier completes on the first poll after the task's run state was
// set to RunOnce and flips it back to Waiting.
type FrameBarrier struct{}

func (FrameBarrier) Poll(t *Task) (struct{}, bool) {
	if t.state != RunOnce {
		return struct{}{}, false
	}
	t.state = Waiting
	return struct{}{}, true
}

// NextFrame suspends t until the next tick.
func NextFrame(t *Task) {
	Await[struct{}](t, FrameBarrier{})
}

// EventResult is the completion value of EventWait. Closed is set when the
// queue was terminated and every event has been read.
type EventResult struct {
	Event  events.Event
	Closed bool
}

// EventWait completes with the next event beyond the task's cursor.
type EventWait struct{}

func (EventWait) Poll(t *Task) (EventResult, bool) {
	e, ok, done := t.sched.queue.Next(&t.cursor)
	switch {
	case ok:
		return EventResult{Event: e}, true
	case done:
		return EventResult{Closed: true}, true
	default:
		return EventResult{}, false
	}
}

// NextEvent suspends t until an unread event is available. ok is false once
// the queue has been closed and drained, so tasks can loop with
//
//	for e, ok := scheduler.NextEvent(t); ok; e, ok = scheduler.NextEvent(t) {
//		...
//	}
func NextEvent(t *Task) (events.Event, bool) {
	r := Await[EventResult](t, EventWait{})
	return r.Event, !r.Closed
}

// JoinWait completes once the referenced task has left the scheduler,
// either by finishing or by being stopped.
type JoinWait struct {
	Target TaskHandle
}

func (w JoinWait) Poll(t *Task) (struct{}, bool) {
	return struct{}{}, !t.sched.Alive(w.Target)
}

// Join suspends t until the task referenced by h is gone.
func Join(t *Task, h TaskHandle) {
	Await[struct{}](t, JoinWait{Target: h})
}
