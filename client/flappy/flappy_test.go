package flappy

import (
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"
	"time"

	mocks "github.com/cbodonnell/tickwheel/mocks/github.com/cbodonnell/tickwheel/pkg/render"
	"github.com/cbodonnell/tickwheel/pkg/arena"
	"github.com/cbodonnell/tickwheel/pkg/assets"
	"github.com/cbodonnell/tickwheel/pkg/config"
	"github.com/cbodonnell/tickwheel/pkg/engine"
	"github.com/cbodonnell/tickwheel/pkg/events"
	"github.com/cbodonnell/tickwheel/pkg/render"
	"github.com/cbodonnell/tickwheel/pkg/scheduler"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testGame struct {
	*Game
	e     *engine.Engine
	clock *clockwork.FakeClock
	root  scheduler.TaskHandle
}

func newTestGame(t *testing.T, mutate func(cfg *config.Flappy), opts engine.NewEngineOptions) *testGame {
	t.Helper()
	cfg := config.Default().Flappy
	// A tall gap keeps the bird clear of pipes unless a test wants a crash.
	cfg.GapHeight = 400
	cfg.Gravity = 0
	if mutate != nil {
		mutate(&cfg)
	}
	clock := clockwork.NewFakeClock()
	opts.Clock = clock
	opts.Screen = engine.Screen{Width: 640, Height: 480}
	e := engine.New(opts)
	g := NewGame(NewGameOptions{
		Engine: e,
		Config: cfg,
		Rand:   rand.New(rand.NewPCG(1, 2)),
	})
	root := g.Start()
	return &testGame{Game: g, e: e, clock: clock, root: root}
}

func (tg *testGame) frames(n int) {
	for i := 0; i < n; i++ {
		tg.e.Frame()
	}
}

func (tg *testGame) state(t *testing.T) State {
	t.Helper()
	var s State
	arena.Use(tg.e.Arena(), tg.State(), func(v *State) { s = *v })
	return s
}

func (tg *testGame) bird(t *testing.T) Bird {
	t.Helper()
	var b Bird
	arena.Use(tg.e.Arena(), tg.Bird(), func(v *Bird) { b = *v })
	return b
}

func (tg *testGame) pipes() []Pipe {
	var pipes []Pipe
	for _, p := range arena.Each[Pipe](tg.e.Arena()) {
		pipes = append(pipes, *p)
	}
	return pipes
}

func TestStateReadableBeforeFirstFrame(t *testing.T) {
	tg := newTestGame(t, nil, engine.NewEngineOptions{})
	assert.Equal(t, State{}, tg.state(t))
	assert.Equal(t, 1, tg.e.Arena().Live())

	tg.frames(1)
	assert.Equal(t, 1, tg.state(t).Round)
}

func TestStartSpawnsRound(t *testing.T) {
	tg := newTestGame(t, nil, engine.NewEngineOptions{})
	tg.frames(1)

	assert.Equal(t, State{Phase: PhasePlaying, Round: 1}, tg.state(t))

	var names []string
	for _, info := range tg.e.Scheduler().Tasks() {
		names = append(names, info.Name)
	}
	assert.Equal(t, []string{"flappy", "draw", "bird-input", "bird-physics", "pipe-spawner", "collision"}, names)
}

func TestFlapSetsBirdVelocity(t *testing.T) {
	tg := newTestGame(t, func(cfg *config.Flappy) {
		cfg.Gravity = 0.15
	}, engine.NewEngineOptions{})
	tg.frames(2)

	tests := []struct {
		name  string
		event events.Event
	}{
		{name: "space", event: events.KeyDown(events.KeySpace)},
		{name: "up arrow", event: events.KeyDown(events.KeyArrowUp)},
		{name: "left click", event: events.MouseDown(events.MouseButtonLeft, 5, 5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tg.e.HandleEvent(tt.event)
			tg.frames(1)
			// input runs before physics within the tick
			assert.InDelta(t, -5+0.15, tg.bird(t).Vel.Y, 1e-9)
			assert.Equal(t, 0.0, tg.bird(t).Vel.X)
		})
	}

	tg.e.HandleEvent(events.KeyDown(events.KeyP))
	tg.frames(1)
	assert.InDelta(t, -5+0.3, tg.bird(t).Vel.Y, 1e-9, "other keys do not flap")
}

func TestBirdFallsUnderGravity(t *testing.T) {
	tg := newTestGame(t, func(cfg *config.Flappy) {
		cfg.Gravity = 0.5
	}, engine.NewEngineOptions{})
	tg.frames(1)
	start := tg.bird(t).Pos

	tg.frames(4)
	b := tg.bird(t)
	assert.Equal(t, 2.0, b.Vel.Y)
	assert.Equal(t, start.Y+0.5+1+1.5+2, b.Pos.Y)
	assert.Equal(t, start.X, b.Pos.X)
}

func TestPipeRemovedPastThreshold(t *testing.T) {
	tg := newTestGame(t, func(cfg *config.Flappy) {
		cfg.ScrollSpeed = 100
		cfg.RemoveX = -60
	}, engine.NewEngineOptions{})

	tg.frames(2)
	pipes := tg.pipes()
	require.Len(t, pipes, 1)
	assert.Equal(t, 640.0, pipes[0].X)
	assert.Equal(t, 2, tg.space.Pipes(), "top and bottom hitboxes")

	// 540, 440, 340, 240, 140, 40, -60
	tg.frames(7)
	pipes = tg.pipes()
	require.Len(t, pipes, 1)
	assert.Equal(t, -60.0, pipes[0].X)
	assert.True(t, pipes[0].Scored)
	assert.Equal(t, 1, tg.state(t).Score)

	tg.frames(1)
	assert.Empty(t, tg.pipes())
	assert.Equal(t, 0, tg.space.Pipes())
	assert.Equal(t, PhasePlaying, tg.state(t).Phase)
}

func TestSpawnerUsesTimer(t *testing.T) {
	tg := newTestGame(t, func(cfg *config.Flappy) {
		cfg.SpawnInterval = time.Second
	}, engine.NewEngineOptions{})
	tg.frames(2)
	assert.Len(t, tg.pipes(), 1)

	tg.clock.Advance(999 * time.Millisecond)
	tg.frames(1)
	assert.Len(t, tg.pipes(), 1)

	tg.clock.Advance(time.Millisecond)
	tg.frames(1)
	pipes := tg.pipes()
	require.Len(t, pipes, 2)
	assert.Equal(t, []int{1, 2}, []int{pipes[0].ID, pipes[1].ID})
	for _, p := range pipes {
		assert.GreaterOrEqual(t, p.GapY, 400.0/2+gapMargin)
		assert.LessOrEqual(t, p.GapY, 480-400.0/2-gapMargin)
	}
}

func TestCrashEndsRoundAndRestart(t *testing.T) {
	tg := newTestGame(t, func(cfg *config.Flappy) {
		cfg.Gravity = 2
		cfg.RestartDelay = time.Second
	}, engine.NewEngineOptions{})
	tg.frames(1)

	for i := 0; i < 100 && tg.state(t).Phase != PhaseGameOver; i++ {
		tg.frames(1)
	}
	require.Equal(t, PhaseGameOver, tg.state(t).Phase)

	var names []string
	for _, info := range tg.e.Scheduler().Tasks() {
		names = append(names, info.Name)
	}
	assert.Equal(t, []string{"flappy", "draw"}, names, "round tasks are stopped")

	crashed := tg.bird(t)
	tg.frames(3)
	assert.Equal(t, crashed, tg.bird(t), "the bird stays put after the crash")

	// Input during the restart delay is ignored.
	tg.e.HandleEvent(events.KeyDown(events.KeySpace))
	tg.frames(1)
	assert.Equal(t, PhaseGameOver, tg.state(t).Phase)

	tg.clock.Advance(time.Second)
	tg.frames(1)
	assert.Equal(t, PhaseGameOver, tg.state(t).Phase)

	oldBird := tg.Bird()
	tg.e.HandleEvent(events.KeyDown(events.KeyR))
	tg.frames(1)
	s := tg.state(t)
	assert.Equal(t, PhasePlaying, s.Phase)
	assert.Equal(t, 2, s.Round)
	assert.False(t, arena.Exists(tg.e.Arena(), oldBird), "previous bird deleted")
	assert.NotEqual(t, oldBird, tg.Bird())
	assert.Equal(t, 240.0, tg.bird(t).Pos.Y)
}

func TestQueueCloseEndsGame(t *testing.T) {
	tg := newTestGame(t, func(cfg *config.Flappy) {
		cfg.Gravity = 2
		cfg.RestartDelay = 0
	}, engine.NewEngineOptions{})
	tg.frames(1)
	for i := 0; i < 100 && tg.state(t).Phase != PhaseGameOver; i++ {
		tg.frames(1)
	}
	require.Equal(t, PhaseGameOver, tg.state(t).Phase)

	tg.frames(1)
	tg.e.Queue().Close()
	tg.frames(1)
	assert.False(t, tg.e.Scheduler().Alive(tg.root), "root task exits")
	assert.Equal(t, 1, tg.e.Scheduler().Len(), "only the draw task is left")
}

func TestDrawFrame(t *testing.T) {
	tg := newTestGame(t, nil, engine.NewEngineOptions{})
	tg.frames(3)

	cmds := tg.e.DrawList().Commands()
	require.NotEmpty(t, cmds)
	assert.Equal(t, render.Command{Op: render.OpFill, Color: render.SkyBlue}, cmds[0])

	counts := map[render.Op]int{}
	for _, c := range cmds {
		counts[c.Op]++
	}
	assert.Equal(t, 2, counts[render.OpFilledRect], "one pipe, two columns")
	assert.Equal(t, 2, counts[render.OpStrokeRect])
	assert.Equal(t, 1, counts[render.OpFilledCircle])
	assert.Equal(t, 1, counts[render.OpText])

	b := tg.bird(t)
	assert.Contains(t, cmds, render.Command{Op: render.OpFilledCircle, X: b.Pos.X, Y: b.Pos.Y, W: 15, Color: render.Gold})
	assert.Contains(t, cmds, render.Command{Op: render.OpText, X: 10, Y: 30, H: scoreSize, Text: "SCORE 0", Color: render.White})
}

func TestBirdTexture(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bird.png"), []byte("png"), 0o644))
	store := mocks.NewTextureStore(t)
	store.EXPECT().AddTexture(mock.Anything).Return(render.TextureID(3), nil).Once()
	loader := assets.NewLoader(assets.NewLoaderOptions{Dir: dir})

	tg := newTestGame(t, func(cfg *config.Flappy) {
		cfg.BirdTexture = "bird.png"
	}, engine.NewEngineOptions{Loader: loader, Textures: store})

	tg.frames(2)
	loader.Wait()
	tg.frames(2)

	b := tg.bird(t)
	assert.Contains(t, tg.e.DrawList().Commands(), render.Command{
		Op:      render.OpTexture,
		Texture: 3,
		X:       b.Pos.X - b.Radius,
		Y:       b.Pos.Y - b.Radius,
		Color:   render.White,
	})
}
