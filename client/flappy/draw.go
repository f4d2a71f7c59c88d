package flappy

import (
	"fmt"

	"github.com/cbodonnell/tickwheel/pkg/arena"
	"github.com/cbodonnell/tickwheel/pkg/render"
	"github.com/cbodonnell/tickwheel/pkg/scheduler"
)

const (
	scoreSize   = 24
	messageSize = 32
)

func (g *Game) draw(t *scheduler.Task) {
	for {
		g.drawFrame()
		scheduler.NextFrame(t)
	}
}

func (g *Game) drawFrame() {
	a := g.e.Arena()
	dl := g.e.DrawList()
	screen := g.e.Screen()

	dl.Clear(render.SkyBlue)

	for _, p := range arena.Each[Pipe](a) {
		topH, bottomY, bottomH := g.columns(*p)
		dl.Rect(p.X, 0, g.cfg.PipeWidth, topH, render.Green)
		dl.RectLines(p.X, 0, g.cfg.PipeWidth, topH, 2, render.DarkGreen)
		dl.Rect(p.X, bottomY, g.cfg.PipeWidth, bottomH, render.Green)
		dl.RectLines(p.X, bottomY, g.cfg.PipeWidth, bottomH, 2, render.DarkGreen)
	}

	for _, b := range arena.Each[Bird](a) {
		if g.texture != nil {
			dl.Texture(*g.texture, b.Pos.X-b.Radius, b.Pos.Y-b.Radius, render.White)
		} else {
			dl.Circle(b.Pos.X, b.Pos.Y, b.Radius, render.Gold)
		}
	}

	arena.Use(a, g.state, func(s *State) {
		dl.Text(fmt.Sprintf("SCORE %d", s.Score), 10, 30, scoreSize, render.White)
		if s.Phase == PhaseGameOver {
			dl.Text("GAME OVER", screen.Width/2-80, screen.Height/2, messageSize, render.Red)
			dl.Text(fmt.Sprintf("BEST %d - PRESS SPACE", s.Best), screen.Width/2-150, screen.Height/2+40, scoreSize, render.Black)
		}
	})
}
