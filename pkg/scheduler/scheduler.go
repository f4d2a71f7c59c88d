// Package scheduler runs cooperative tasks in lockstep with rendered frames.
//
// Every call to Tick polls each live task exactly once, in spawn order. A
// task runs until it reaches a suspension point that is not ready yet, so the
// effects of a task polled earlier in a tick are visible to tasks polled
// later in the same tick. Only the frame barrier is tick-count sensitive:
// other suspension points that are already satisfied resolve immediately and
// any number of them can be crossed in one tick.
//
// The scheduler is not safe for concurrent use. Everything that touches it,
// including out-of-band completions such as asset loads, must run on the
// host loop's goroutine.
package scheduler

import (
	"slices"

	"github.com/cbodonnell/tickwheel/pkg/events"
	"github.com/cbodonnell/tickwheel/pkg/log"
	"github.com/jonboulle/clockwork"
)

type Scheduler struct {
	queue *events.Queue
	clock clockwork.Clock

	tasks   []*Task
	byID    map[uint64]*Task
	lastID  uint64
	ticks   uint64
	ticking bool
}

// NewSchedulerOptions contains options for creating a new Scheduler.
type NewSchedulerOptions struct {
	// Queue is the event log read by NextEvent. A private queue is created
	// when nil.
	Queue *events.Queue
	// Clock is the wall clock used by timers. Defaults to the real clock.
	Clock clockwork.Clock
}

func New(opts NewSchedulerOptions) *Scheduler {
	queue := opts.Queue
	if queue == nil {
		queue = events.NewQueue()
	}
	clock := opts.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Scheduler{
		queue: queue,
		clock: clock,
		byID:  make(map[uint64]*Task),
	}
}

// Queue returns the event queue read by the scheduler's tasks.
func (s *Scheduler) Queue() *events.Queue {
	return s.queue
}

// Clock returns the clock used by timers.
func (s *Scheduler) Clock() clockwork.Clock {
	return s.clock
}

// Spawn registers fn as a new task. It is first polled on the next call to
// Tick, even when Spawn is called from a task during a tick.
func (s *Scheduler) Spawn(name string, fn Func) TaskHandle {
	s.lastID++
	t := newTask(s, s.lastID, name, fn)
	s.tasks = append(s.tasks, t)
	s.byID[t.id] = t
	log.Debug("Spawned %s", t)
	return t.Handle()
}

// Stop discards a task without letting it complete. A suspended task is
// unwound immediately, running its deferred calls; a task stopping itself
// unwinds at its next suspension point. Stopping a finished or unknown task
// does nothing.
func (s *Scheduler) Stop(h TaskHandle) {
	t, ok := s.byID[h.id]
	if !ok {
		return
	}
	log.Debug("Stopping %s", t)
	t.stopped = true
	s.remove(t)
	if !t.running {
		t.stop()
	}
}

// Alive reports whether the task referenced by h is still in the scheduler.
func (s *Scheduler) Alive(h TaskHandle) bool {
	_, ok := s.byID[h.id]
	return ok
}

// Len returns the number of live tasks.
func (s *Scheduler) Len() int {
	return len(s.byID)
}

// Ticks returns the number of completed calls to Tick.
func (s *Scheduler) Ticks() uint64 {
	return s.ticks
}

// TaskInfo describes a live task.
type TaskInfo struct {
	ID      uint64 `json:"id"`
	Name    string `json:"name"`
	Started bool   `json:"started"`
	State   string `json:"state"`
}

// Tasks lists live tasks in spawn order.
func (s *Scheduler) Tasks() []TaskInfo {
	infos := make([]TaskInfo, 0, len(s.byID))
	for _, t := range s.tasks {
		if t.done {
			continue
		}
		infos = append(infos, TaskInfo{
			ID:      t.id,
			Name:    t.name,
			Started: t.started,
			State:   t.state.String(),
		})
	}
	return infos
}

// Tick polls every live task once, in spawn order. Tasks spawned during the
// tick wait for the next one; tasks whose body returned are removed.
func (s *Scheduler) Tick() {
	n := len(s.tasks)
	for _, t := range s.tasks[:n] {
		if t.started {
			t.state = RunOnce
		}
	}

	s.ticking = true
	for i := 0; i < n; i++ {
		t := s.tasks[i]
		if t.done {
			continue
		}
		if !t.started {
			// The tick in which a task starts is its first frame.
			t.started = true
			t.state = Waiting
		}
		s.resume(t)
	}
	s.ticking = false

	s.compact()
	s.ticks++
	log.Trace("Tick %d: %d live tasks", s.ticks, len(s.byID))
}

func (s *Scheduler) resume(t *Task) {
	t.running = true
	_, ok := t.next()
	t.running = false
	if !ok && !t.done {
		log.Debug("Finished %s", t)
		s.remove(t)
	}
}

func (s *Scheduler) remove(t *Task) {
	t.done = true
	delete(s.byID, t.id)
	if !s.ticking {
		s.compact()
	}
}

func (s *Scheduler) compact() {
	s.tasks = slices.DeleteFunc(s.tasks, func(t *Task) bool {
		return t.done
	})
}
