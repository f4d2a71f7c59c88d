// Package flappy is a small side-scroller built entirely from scheduler
// tasks: the bird, each pipe, collision detection and drawing all run as
// independent coroutines that share state through the engine's arena.
package flappy

import (
	"math/rand/v2"
	"time"

	"github.com/cbodonnell/tickwheel/pkg/arena"
	"github.com/cbodonnell/tickwheel/pkg/collisions"
	"github.com/cbodonnell/tickwheel/pkg/config"
	"github.com/cbodonnell/tickwheel/pkg/engine"
	"github.com/cbodonnell/tickwheel/pkg/events"
	"github.com/cbodonnell/tickwheel/pkg/kinematic"
	"github.com/cbodonnell/tickwheel/pkg/render"
	"github.com/cbodonnell/tickwheel/pkg/scheduler"
)

type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "Playing"
	case PhaseGameOver:
		return "GameOver"
	}
	return "Unknown"
}

type Bird struct {
	Pos    kinematic.Vector
	Vel    kinematic.Vector
	Radius float64
}

// Pipe is a pair of columns with a gap centered at GapY.
type Pipe struct {
	ID     int
	X      float64
	GapY   float64
	Scored bool
}

// State is the round bookkeeping shown on screen.
type State struct {
	Phase Phase
	Round int
	Score int
	Best  int
}

type Game struct {
	e     *engine.Engine
	cfg   config.Flappy
	rng   *rand.Rand
	space *collisions.Space

	state   arena.Handle[State]
	bird    arena.Handle[Bird]
	birdX   float64
	nextID  int
	texture *render.TextureID

	// tasks of the running round, stopped when the bird crashes
	round []scheduler.TaskHandle
	pipes []scheduler.TaskHandle
}

type NewGameOptions struct {
	Engine *engine.Engine
	Config config.Flappy
	// Rand picks the pipe gaps. Defaults to a generator seeded from
	// Config.Seed, or from the clock when the seed is zero.
	Rand *rand.Rand
}

func NewGame(opts NewGameOptions) *Game {
	rng := opts.Rand
	if rng == nil {
		seed := opts.Config.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		rng = rand.New(rand.NewPCG(seed, seed>>1))
	}
	screen := opts.Engine.Screen()
	return &Game{
		e:     opts.Engine,
		cfg:   opts.Config,
		rng:   rng,
		space: collisions.NewCollisionSpace(int(screen.Width), int(screen.Height)),
		state: arena.Allocate(opts.Engine.Arena(), State{}),
		birdX: screen.Width / 3,
	}
}

// Start spawns the game's root task.
func (g *Game) Start() scheduler.TaskHandle {
	return g.e.Spawn("flappy", g.run)
}

// State returns the handle of the round bookkeeping.
func (g *Game) State() arena.Handle[State] {
	return g.state
}

// Bird returns the handle of the current round's bird. It is valid once the
// first round has started.
func (g *Game) Bird() arena.Handle[Bird] {
	return g.bird
}

func (g *Game) run(t *scheduler.Task) {
	a := g.e.Arena()
	g.e.Spawn("draw", g.draw)
	if g.cfg.BirdTexture != "" {
		g.e.Spawn("bird-texture", g.loadTexture)
	}

	for {
		g.playRound(t)

		var best int
		arena.Use(a, g.state, func(s *State) {
			s.Phase = PhaseGameOver
			s.Best = max(s.Best, s.Score)
			best = s.Best
		})
		g.e.Logger().Info("Round over, best score %d", best)

		scheduler.Sleep(t, g.cfg.RestartDelay)
		g.e.Queue().Reset()
		if !waitForRestart(t) {
			return
		}
		g.clearRound()
	}
}

// playRound runs the bird and pipe tasks until the bird crashes.
func (g *Game) playRound(t *scheduler.Task) {
	a := g.e.Arena()
	screen := g.e.Screen()

	// Events pushed before the round started belong to the previous one.
	g.e.Queue().Reset()

	arena.Use(a, g.state, func(s *State) {
		s.Phase = PhasePlaying
		s.Round++
		s.Score = 0
	})
	g.bird = arena.Allocate(a, Bird{
		Pos:    kinematic.Vec(g.birdX, screen.Height/2),
		Radius: g.cfg.BirdRadius,
	})
	g.space.SetBird(g.birdX, screen.Height/2, g.cfg.BirdRadius)

	g.round = append(g.round[:0],
		g.e.Spawn("bird-input", g.birdInput),
		g.e.Spawn("bird-physics", g.birdPhysics),
		g.e.Spawn("pipe-spawner", g.spawnPipes),
	)
	collision := g.e.Spawn("collision", g.detectCollision)

	scheduler.Join(t, collision)

	s := t.Scheduler()
	for _, h := range g.round {
		s.Stop(h)
	}
	for _, h := range g.pipes {
		s.Stop(h)
	}
	g.pipes = g.pipes[:0]
}

// clearRound deletes the bird and every pipe left over from the last round.
func (g *Game) clearRound() {
	a := g.e.Arena()
	for h := range arena.Each[Pipe](a) {
		guard := arena.Acquire(a, h)
		g.removePipeHitbox(guard.Get().ID)
		guard.Delete()
	}
	if arena.Exists(a, g.bird) {
		arena.Acquire(a, g.bird).Delete()
	}
}

func waitForRestart(t *scheduler.Task) bool {
	for {
		ev, ok := scheduler.NextEvent(t)
		if !ok {
			return false
		}
		if ev.IsKeyDown(events.KeySpace) || ev.IsKeyDown(events.KeyEnter) || ev.IsKeyDown(events.KeyR) ||
			ev.Kind == events.KindMouseDown {
			return true
		}
	}
}

func (g *Game) detectCollision(t *scheduler.Task) {
	for !g.space.BirdHit() {
		scheduler.NextFrame(t)
	}
	g.e.Logger().Debug("Bird crashed")
}

func (g *Game) loadTexture(t *scheduler.Task) {
	id := scheduler.Take(t, g.e.LoadTexture(g.cfg.BirdTexture))
	g.texture = &id
}
