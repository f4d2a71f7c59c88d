package scheduler

import (
	"fmt"
	"iter"

	"github.com/cbodonnell/tickwheel/pkg/events"
	"github.com/cbodonnell/tickwheel/pkg/fault"
)

// RunState gates frame barrier crossings: a task may cross at most one
// barrier per tick.
type RunState int

const (
	RunOnce RunState = iota
	Waiting
)

func (s RunState) String() string {
	switch s {
	case RunOnce:
		return "RunOnce"
	case Waiting:
		return "Waiting"
	}
	return "Unknown"
}

// Func is the body of a task. It runs as a coroutine and gives control back
// to the scheduler only inside Await and the helpers built on it.
type Func func(t *Task)

// TaskHandle identifies a spawned task. The zero value refers to no task.
type TaskHandle struct {
	id uint64
}

func (h TaskHandle) ID() uint64 {
	return h.id
}

func (h TaskHandle) String() string {
	return fmt.Sprintf("task-%d", h.id)
}

// stopSignal unwinds a task body that was stopped while suspended.
type stopSignal struct{}

// Task is a suspended computation plus its execution context: a private
// cursor into the event queue and its run state.
type Task struct {
	id    uint64
	name  string
	sched *Scheduler

	cursor  events.Cursor
	state   RunState
	started bool
	running bool
	stopped bool
	done    bool

	next  func() (struct{}, bool)
	stop  func()
	yield func(struct{}) bool
}

func newTask(s *Scheduler, id uint64, name string, fn Func) *Task {
	t := &Task{
		id:    id,
		name:  name,
		sched: s,
		state: Waiting,
	}
	t.next, t.stop = iter.Pull(t.body(fn))
	return t
}

func (t *Task) body(fn Func) iter.Seq[struct{}] {
	return func(yield func(struct{}) bool) {
		t.yield = yield
		defer func() {
			if r := recover(); r != nil {
				if _, ok := r.(stopSignal); !ok {
					panic(r)
				}
			}
		}()
		fn(t)
	}
}

// suspend hands control back to the scheduler until the next resume.
func (t *Task) suspend() {
	if !t.running {
		fault.Violation("await", -1, "%s awaited outside of its own body", t)
	}
	if !t.yield(struct{}{}) {
		panic(stopSignal{})
	}
	if t.stopped {
		panic(stopSignal{})
	}
}

func (t *Task) Handle() TaskHandle {
	return TaskHandle{id: t.id}
}

func (t *Task) Name() string {
	return t.name
}

// State returns the task's current run state.
func (t *Task) State() RunState {
	return t.state
}

// Scheduler returns the scheduler driving t.
func (t *Task) Scheduler() *Scheduler {
	return t.sched
}

// Stopped reports whether the task was stopped. A task that stops itself
// keeps running until its next suspension point.
func (t *Task) Stopped() bool {
	return t.stopped
}

func (t *Task) String() string {
	if t.name == "" {
		return fmt.Sprintf("task-%d", t.id)
	}
	return fmt.Sprintf("task-%d(%s)", t.id, t.name)
}
