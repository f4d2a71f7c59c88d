package host

import (
	"fmt"

	"github.com/cbodonnell/tickwheel/client/canvas"
	"github.com/cbodonnell/tickwheel/client/input"
	"github.com/cbodonnell/tickwheel/pkg/engine"
	"github.com/cbodonnell/tickwheel/pkg/events"
	"github.com/cbodonnell/tickwheel/pkg/kinematic"
	"github.com/cbodonnell/tickwheel/pkg/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Host implements ebiten.Game interface, which has Update, Draw and Layout
// methods. Every Update delivers the frame's input to the engine and runs
// one tick; Draw replays the tick's draw calls.
type Host struct {
	// engine runs the game's tasks.
	engine *engine.Engine
	// textures holds the images uploaded by the engine's texture loads.
	textures *canvas.Textures
	// input collects key and mouse transitions.
	input *input.Collector
	// debug enables the FPS overlay.
	debug bool
	// width and height are the logical screen size.
	width, height int

	pending []events.Event
}

type NewHostOptions struct {
	Engine   *engine.Engine
	Textures *canvas.Textures
	Width    int
	Height   int
	Debug    bool
}

func NewHost(opts NewHostOptions) *Host {
	opts.Engine.SetScreen(engine.Screen{Width: float64(opts.Width), Height: float64(opts.Height)})
	return &Host{
		engine:   opts.Engine,
		textures: opts.Textures,
		input:    input.NewCollector(),
		debug:    opts.Debug,
		width:    opts.Width,
		height:   opts.Height,
	}
}

func (h *Host) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		log.Info("Escape pressed, closing the event stream")
		h.engine.Queue().Close()
		h.engine.Frame()
		return ebiten.Termination
	}

	h.pending = h.input.AppendEvents(h.pending[:0])
	for _, ev := range h.pending {
		log.Trace("Input %s", ev)
		h.engine.HandleEvent(ev)
	}
	h.engine.SetMousePosition(kinematic.Vec(input.CursorPosition()))

	h.engine.Frame()
	return nil
}

func (h *Host) Draw(screen *ebiten.Image) {
	h.engine.Present(canvas.New(screen, h.textures))
	if h.debug {
		h.drawDebugOverlay(screen)
	}
}

func (h *Host) drawDebugOverlay(screen *ebiten.Image) {
	stats := h.engine.Stats()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n   FPS: %0.1f", ebiten.ActualFPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n   TPS: %0.1f", ebiten.ActualTPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n   Tasks: %d", len(stats.Tasks)))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n   Objects: %d/%d", stats.Objects, stats.Slots))
}

func (h *Host) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return h.width, h.height
}
