package flappy

import (
	"github.com/cbodonnell/tickwheel/pkg/arena"
	"github.com/cbodonnell/tickwheel/pkg/events"
	"github.com/cbodonnell/tickwheel/pkg/kinematic"
	"github.com/cbodonnell/tickwheel/pkg/scheduler"
)

func (g *Game) birdInput(t *scheduler.Task) {
	for ev, ok := scheduler.NextEvent(t); ok; ev, ok = scheduler.NextEvent(t) {
		if !isFlap(ev) {
			continue
		}
		arena.Use(g.e.Arena(), g.bird, func(b *Bird) {
			b.Vel = kinematic.Vec(0, g.cfg.FlapVelocity)
		})
	}
}

func isFlap(ev events.Event) bool {
	return ev.IsKeyDown(events.KeySpace) ||
		ev.IsKeyDown(events.KeyArrowUp) ||
		ev.IsKeyDown(events.KeyW) ||
		(ev.Kind == events.KindMouseDown && ev.Button == events.MouseButtonLeft)
}

func (g *Game) birdPhysics(t *scheduler.Task) {
	gravity := kinematic.Vec(0, g.cfg.Gravity)
	for {
		arena.Use(g.e.Arena(), g.bird, func(b *Bird) {
			b.Pos, b.Vel = kinematic.Step(b.Pos, b.Vel, gravity)
			g.space.SetBird(b.Pos.X, b.Pos.Y, b.Radius)
		})
		scheduler.NextFrame(t)
	}
}
