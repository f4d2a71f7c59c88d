package flappy

import (
	"fmt"

	"github.com/cbodonnell/tickwheel/pkg/arena"
	"github.com/cbodonnell/tickwheel/pkg/scheduler"
)

// gapMargin keeps every gap at least this far from the top and bottom.
const gapMargin = 20

func (g *Game) spawnPipes(t *scheduler.Task) {
	for {
		g.spawnPipe()
		scheduler.Sleep(t, g.cfg.SpawnInterval)
	}
}

func (g *Game) spawnPipe() {
	screen := g.e.Screen()
	lo := g.cfg.GapHeight/2 + gapMargin
	hi := screen.Height - g.cfg.GapHeight/2 - gapMargin
	gapY := screen.Height / 2
	if hi > lo {
		gapY = lo + g.rng.Float64()*(hi-lo)
	}

	g.nextID++
	pipe := Pipe{ID: g.nextID, X: screen.Width, GapY: gapY}
	h := arena.Allocate(g.e.Arena(), pipe)
	g.placePipeHitbox(pipe)

	task := g.e.Spawn(fmt.Sprintf("pipe-%d", pipe.ID), func(t *scheduler.Task) {
		g.scrollPipe(t, h)
	})
	g.pipes = append(g.pipes, task)
}

// scrollPipe moves a pipe left every frame and deletes it once it is past
// the removal threshold.
func (g *Game) scrollPipe(t *scheduler.Task, h arena.Handle[Pipe]) {
	a := g.e.Arena()
	for {
		guard := arena.Acquire(a, h)
		p := guard.Get()
		p.X -= g.cfg.ScrollSpeed
		if p.X < g.cfg.RemoveX {
			g.removePipeHitbox(p.ID)
			guard.Delete()
			return
		}
		g.placePipeHitbox(*p)
		if !p.Scored && p.X+g.cfg.PipeWidth < g.birdX-g.cfg.BirdRadius {
			p.Scored = true
			arena.Use(a, g.state, func(s *State) { s.Score++ })
		}
		guard.Release()
		scheduler.NextFrame(t)
	}
}

// columns returns the top and bottom column rectangles of p as y, height
// pairs.
func (g *Game) columns(p Pipe) (topH, bottomY, bottomH float64) {
	screen := g.e.Screen()
	topH = p.GapY - g.cfg.GapHeight/2
	bottomY = p.GapY + g.cfg.GapHeight/2
	bottomH = screen.Height - bottomY
	return topH, bottomY, bottomH
}

func (g *Game) placePipeHitbox(p Pipe) {
	topH, bottomY, bottomH := g.columns(p)
	g.space.SetPipe(2*p.ID, p.X, 0, g.cfg.PipeWidth, topH)
	g.space.SetPipe(2*p.ID+1, p.X, bottomY, g.cfg.PipeWidth, bottomH)
}

func (g *Game) removePipeHitbox(id int) {
	g.space.RemovePipe(2 * id)
	g.space.RemovePipe(2*id + 1)
}
