package engine

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	mocks "github.com/cbodonnell/tickwheel/mocks/github.com/cbodonnell/tickwheel/pkg/render"
	"github.com/cbodonnell/tickwheel/pkg/arena"
	"github.com/cbodonnell/tickwheel/pkg/assets"
	"github.com/cbodonnell/tickwheel/pkg/events"
	"github.com/cbodonnell/tickwheel/pkg/fault"
	"github.com/cbodonnell/tickwheel/pkg/kinematic"
	"github.com/cbodonnell/tickwheel/pkg/render"
	"github.com/cbodonnell/tickwheel/pkg/scheduler"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type bird struct {
	Pos kinematic.Vector
	Vel kinematic.Vector
}

type obstacle struct {
	Pos kinematic.Vector
}

func newTestEngine(t *testing.T, opts NewEngineOptions) *Engine {
	t.Helper()
	if opts.Clock == nil {
		opts.Clock = clockwork.NewFakeClock()
	}
	if opts.Screen == (Screen{}) {
		opts.Screen = Screen{Width: 640, Height: 480}
	}
	return New(opts)
}

func TestFlapSetsBirdVelocity(t *testing.T) {
	e := newTestEngine(t, NewEngineOptions{})
	h := arena.Allocate(e.Arena(), bird{Pos: kinematic.Vec(320, 240)})

	e.Spawn("bird-input", func(t *scheduler.Task) {
		for ev, ok := scheduler.NextEvent(t); ok; ev, ok = scheduler.NextEvent(t) {
			if ev.IsKeyDown(events.KeySpace) {
				arena.Use(e.Arena(), h, func(b *bird) {
					b.Vel = kinematic.Vec(0, -5)
				})
			}
		}
	})

	e.HandleEvent(events.KeyDown(events.KeySpace))
	e.Frame()

	arena.Use(e.Arena(), h, func(b *bird) {
		assert.Equal(t, kinematic.Vec(0, -5), b.Vel)
	})
	assert.True(t, e.KeyDown(events.KeySpace))
}

func TestObstacleRemovedPastThreshold(t *testing.T) {
	e := newTestEngine(t, NewEngineOptions{})
	const removeX = -10.0

	h := arena.Allocate(e.Arena(), obstacle{Pos: kinematic.Vec(5, 100)})
	e.Spawn("scroll", func(t *scheduler.Task) {
		for {
			g := arena.Acquire(e.Arena(), h)
			g.Get().Pos.X -= 4
			if g.Get().Pos.X < removeX {
				g.Delete()
				return
			}
			g.Release()
			scheduler.NextFrame(t)
		}
	})

	countObstacles := func() int {
		n := 0
		for _, v := range e.Arena().All() {
			if _, ok := v.(*obstacle); ok {
				n++
			}
		}
		return n
	}

	// 5 -> 1 -> -3 -> -7 -> -11
	for i := 0; i < 3; i++ {
		e.Frame()
		assert.Equal(t, 1, countObstacles(), "frame %d", i+1)
	}
	e.Frame()
	assert.Equal(t, 0, countObstacles())
	assert.Equal(t, 0, e.Scheduler().Len())
	assert.Equal(t, 1, e.Arena().Len(), "slot indices are not reused")
}

func TestHandleEventTracksHeldInput(t *testing.T) {
	e := newTestEngine(t, NewEngineOptions{})
	tests := []struct {
		name       string
		event      events.Event
		wantKey    bool
		wantButton bool
		wantMouse  kinematic.Vector
	}{
		{name: "key down", event: events.KeyDown(events.KeyW), wantKey: true},
		{name: "mouse down", event: events.MouseDown(events.MouseButtonLeft, 10, 20), wantKey: true, wantButton: true, wantMouse: kinematic.Vec(10, 20)},
		{name: "key up", event: events.KeyUp(events.KeyW), wantButton: true, wantMouse: kinematic.Vec(10, 20)},
		{name: "mouse up", event: events.MouseUp(events.MouseButtonLeft, 30, 40), wantMouse: kinematic.Vec(30, 40)},
	}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e.HandleEvent(tt.event)
			assert.Equal(t, tt.wantKey, e.KeyDown(events.KeyW))
			assert.Equal(t, tt.wantButton, e.MouseDown(events.MouseButtonLeft))
			assert.Equal(t, tt.wantMouse, e.MousePosition())
			assert.Equal(t, i+1, e.Queue().Len())
		})
	}
}

func TestFrameResetsDrawListAndPublishesStats(t *testing.T) {
	e := newTestEngine(t, NewEngineOptions{})
	before := e.Stats()
	require.NotNil(t, before)
	assert.Equal(t, e.RunID().String(), before.RunID)
	assert.Equal(t, uint64(0), before.Tick)

	arena.Allocate(e.Arena(), obstacle{})
	e.Spawn("draw", func(t *scheduler.Task) {
		for {
			e.DrawList().Clear(render.White)
			e.DrawList().Circle(1, 2, 3, render.Black)
			scheduler.NextFrame(t)
		}
	})
	e.HandleEvent(events.KeyDown(events.KeyP))

	for i := 0; i < 3; i++ {
		e.Frame()
		assert.Equal(t, 2, e.DrawList().Len())
	}

	stats := e.Stats()
	assert.Equal(t, uint64(3), stats.Tick)
	assert.Equal(t, 1, stats.Objects)
	assert.Equal(t, 1, stats.Slots)
	assert.Equal(t, uint64(1), stats.Events)
	assert.Equal(t, 2, stats.DrawCommands)
	assert.Equal(t, []scheduler.TaskInfo{{ID: 1, Name: "draw", Started: true, State: "Waiting"}}, stats.Tasks)
	assert.Equal(t, uint64(0), before.Tick, "published snapshots are not mutated")

	e.SetScreen(Screen{Width: 800, Height: 600})
	e.Frame()
	assert.Equal(t, Screen{Width: 800, Height: 600}, e.Stats().Screen)

	canvas := mocks.NewCanvas(t)
	canvas.EXPECT().Fill(render.White).Return().Once()
	canvas.EXPECT().FilledCircle(1.0, 2.0, 3.0, render.Black).Return().Once()
	e.Present(canvas)
}

func TestTimersUseEngineClock(t *testing.T) {
	clock := clockwork.NewFakeClock()
	e := newTestEngine(t, NewEngineOptions{Clock: clock})
	fired := false
	e.Spawn("timer", func(t *scheduler.Task) {
		scheduler.Sleep(t, time.Second)
		fired = true
	})
	e.Frame()
	assert.False(t, fired)
	clock.Advance(time.Second)
	e.Frame()
	assert.True(t, fired)
}

func writeFile(t *testing.T, dir, name string, data []byte) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0o644))
}

func TestLoadTexture(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bird.png", []byte("png bytes"))

	store := mocks.NewTextureStore(t)
	store.EXPECT().
		AddTexture(render.TextureSource{Name: "bird.png", Data: []byte("png bytes")}).
		Return(render.TextureID(7), nil).
		Once()

	loader := assets.NewLoader(assets.NewLoaderOptions{Dir: dir})
	e := newTestEngine(t, NewEngineOptions{Loader: loader, Textures: store})

	cell := e.LoadTexture("bird.png")
	var got render.TextureID
	e.Spawn("sprite", func(t *scheduler.Task) {
		got = scheduler.Take(t, cell)
	})

	loader.Wait()
	e.Frame()
	assert.Equal(t, render.TextureID(7), got)
	assert.Equal(t, 0, e.Stats().PendingLoads)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "level.txt", []byte("|||"))
	loader := assets.NewLoader(assets.NewLoaderOptions{Dir: dir})
	e := newTestEngine(t, NewEngineOptions{Loader: loader})

	cell := e.LoadFile("level.txt")
	var got []byte
	e.Spawn("level", func(t *scheduler.Task) {
		got = scheduler.Take(t, cell)
	})
	e.Frame()
	loader.Wait()
	e.Frame()
	assert.Equal(t, []byte("|||"), got)
}

func requireResourceUnavailable(t *testing.T, path string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a fatal load failure")
		err, ok := r.(error)
		require.True(t, ok, "unexpected panic value: %v", r)
		var ru *fault.ResourceUnavailable
		require.True(t, errors.As(err, &ru), "unexpected error: %v", err)
		assert.Equal(t, path, ru.Path)
	}()
	fn()
}

func TestLoadTextureFailuresAreFatal(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		loader := assets.NewLoader(assets.NewLoaderOptions{Dir: t.TempDir()})
		e := newTestEngine(t, NewEngineOptions{Loader: loader, Textures: mocks.NewTextureStore(t)})
		e.LoadTexture("missing.png")
		loader.Wait()
		requireResourceUnavailable(t, "missing.png", e.Frame)
	})

	t.Run("undecodable image", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "broken.png", []byte("garbage"))
		store := mocks.NewTextureStore(t)
		store.EXPECT().AddTexture(mock.Anything).Return(render.TextureID(0), errors.New("unknown format")).Once()
		loader := assets.NewLoader(assets.NewLoaderOptions{Dir: dir})
		e := newTestEngine(t, NewEngineOptions{Loader: loader, Textures: store})
		e.LoadTexture("broken.png")
		loader.Wait()
		requireResourceUnavailable(t, "broken.png", e.Frame)
	})
}
