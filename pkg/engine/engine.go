// Package engine bundles the per-process state that tasks share: the object
// arena, the event log, the scheduler, the frame's draw list and the input
// and asset collaborators. One Engine is created by the entry point and
// passed to everything that needs it.
package engine

import (
	"sync/atomic"

	"github.com/cbodonnell/tickwheel/pkg/arena"
	"github.com/cbodonnell/tickwheel/pkg/assets"
	"github.com/cbodonnell/tickwheel/pkg/events"
	"github.com/cbodonnell/tickwheel/pkg/fault"
	"github.com/cbodonnell/tickwheel/pkg/kinematic"
	"github.com/cbodonnell/tickwheel/pkg/log"
	"github.com/cbodonnell/tickwheel/pkg/render"
	"github.com/cbodonnell/tickwheel/pkg/scheduler"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// Screen is the drawable area in logical pixels.
type Screen struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type Engine struct {
	runID  uuid.UUID
	logger *log.Logger

	arena     *arena.Arena
	queue     *events.Queue
	scheduler *scheduler.Scheduler
	draw      *render.DrawList
	clock     clockwork.Clock
	loader    *assets.Loader
	textures  render.TextureStore

	screen   Screen
	keys     map[events.Key]bool
	buttons  map[events.MouseButton]bool
	mousePos kinematic.Vector

	eventsSeen uint64
	stats      atomic.Pointer[Stats]
}

// NewEngineOptions contains options for creating a new Engine.
type NewEngineOptions struct {
	Screen Screen
	// Clock drives timers. Defaults to the real clock.
	Clock clockwork.Clock
	// Loader reads asset files. Defaults to a loader rooted at the working
	// directory.
	Loader *assets.Loader
	// Textures receives decoded images from LoadTexture.
	Textures render.TextureStore
}

func New(opts NewEngineOptions) *Engine {
	clock := opts.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	loader := opts.Loader
	if loader == nil {
		loader = assets.NewLoader(assets.NewLoaderOptions{})
	}
	runID := uuid.New()
	queue := events.NewQueue()
	e := &Engine{
		runID:  runID,
		logger: log.Default().With("run", runID.String()),
		arena:  arena.New(),
		queue:  queue,
		scheduler: scheduler.New(scheduler.NewSchedulerOptions{
			Queue: queue,
			Clock: clock,
		}),
		draw:     render.NewDrawList(),
		clock:    clock,
		loader:   loader,
		textures: opts.Textures,
		screen:   opts.Screen,
		keys:     make(map[events.Key]bool),
		buttons:  make(map[events.MouseButton]bool),
	}
	e.publishStats()
	e.logger.Info("Engine started (%gx%g)", opts.Screen.Width, opts.Screen.Height)
	return e
}

func (e *Engine) RunID() uuid.UUID {
	return e.runID
}

func (e *Engine) Logger() *log.Logger {
	return e.logger
}

func (e *Engine) Arena() *arena.Arena {
	return e.arena
}

func (e *Engine) Queue() *events.Queue {
	return e.queue
}

func (e *Engine) Scheduler() *scheduler.Scheduler {
	return e.scheduler
}

// DrawList returns the draw calls recorded during the current tick.
func (e *Engine) DrawList() *render.DrawList {
	return e.draw
}

func (e *Engine) Clock() clockwork.Clock {
	return e.clock
}

func (e *Engine) Loader() *assets.Loader {
	return e.loader
}

// Spawn starts a task on the engine's scheduler.
func (e *Engine) Spawn(name string, fn scheduler.Func) scheduler.TaskHandle {
	return e.scheduler.Spawn(name, fn)
}

func (e *Engine) Screen() Screen {
	return e.screen
}

// SetScreen records the drawable size reported by the window.
func (e *Engine) SetScreen(s Screen) {
	if s != e.screen {
		e.logger.Debug("Screen resized to %gx%g", s.Width, s.Height)
	}
	e.screen = s
}

// HandleEvent records an input event from the host: the held key and button
// sets are updated and the event is appended to the log read by tasks.
func (e *Engine) HandleEvent(ev events.Event) {
	switch ev.Kind {
	case events.KindKeyDown:
		e.keys[ev.Key] = true
	case events.KindKeyUp:
		delete(e.keys, ev.Key)
	case events.KindMouseDown:
		e.buttons[ev.Button] = true
		e.mousePos = kinematic.Vec(ev.X, ev.Y)
	case events.KindMouseUp:
		delete(e.buttons, ev.Button)
		e.mousePos = kinematic.Vec(ev.X, ev.Y)
	}
	e.eventsSeen++
	e.queue.Push(ev)
}

// KeyDown reports whether key is currently held.
func (e *Engine) KeyDown(key events.Key) bool {
	return e.keys[key]
}

// MouseDown reports whether button is currently held.
func (e *Engine) MouseDown(button events.MouseButton) bool {
	return e.buttons[button]
}

func (e *Engine) MousePosition() kinematic.Vector {
	return e.mousePos
}

// SetMousePosition records cursor movement that produced no button event.
func (e *Engine) SetMousePosition(pos kinematic.Vector) {
	e.mousePos = pos
}

// Frame runs one tick: finished asset loads are handed to their callbacks,
// the draw list is emptied, and every live task is polled once. Input must
// have been delivered with HandleEvent beforehand.
func (e *Engine) Frame() {
	if n := e.loader.Dispatch(); n > 0 {
		e.logger.Debug("Dispatched %d asset loads", n)
	}
	e.draw.Reset()
	e.scheduler.Tick()
	e.publishStats()
}

// Present replays the current frame's draw calls onto canvas.
func (e *Engine) Present(canvas render.Canvas) {
	e.draw.Present(canvas)
}

// LoadFile reads path in the background. The returned cell is filled on the
// first frame after the read completes; a failed read is fatal.
func (e *Engine) LoadFile(path string) *scheduler.Cell[[]byte] {
	cell := scheduler.NewCell[[]byte]()
	e.loader.Load(path, func(data []byte, err error) {
		if err != nil {
			fault.Raise(&fault.ResourceUnavailable{Path: path, Err: err})
		}
		cell.Put(data)
	})
	return cell
}

// LoadTexture reads and decodes the image at path and registers it with the
// texture store. A missing or undecodable image is fatal.
func (e *Engine) LoadTexture(path string) *scheduler.Cell[render.TextureID] {
	cell := scheduler.NewCell[render.TextureID]()
	e.loader.Load(path, func(data []byte, err error) {
		if err != nil {
			fault.Raise(&fault.ResourceUnavailable{Path: path, Err: err})
		}
		if e.textures == nil {
			fault.Violation("load texture", -1, "no texture store configured")
		}
		id, err := e.textures.AddTexture(render.TextureSource{Name: path, Data: data})
		if err != nil {
			fault.Raise(&fault.ResourceUnavailable{Path: path, Err: err})
		}
		e.logger.Debug("Texture %s registered as %d", path, id)
		cell.Put(id)
	})
	return cell
}
