package input

import (
	"github.com/cbodonnell/tickwheel/pkg/events"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keys = map[ebiten.Key]events.Key{
	ebiten.KeySpace:      events.KeySpace,
	ebiten.KeyEnter:      events.KeyEnter,
	ebiten.KeyEscape:     events.KeyEscape,
	ebiten.KeyArrowUp:    events.KeyArrowUp,
	ebiten.KeyArrowDown:  events.KeyArrowDown,
	ebiten.KeyArrowLeft:  events.KeyArrowLeft,
	ebiten.KeyArrowRight: events.KeyArrowRight,
	ebiten.KeyW:          events.KeyW,
	ebiten.KeyA:          events.KeyA,
	ebiten.KeyS:          events.KeyS,
	ebiten.KeyD:          events.KeyD,
	ebiten.KeyP:          events.KeyP,
	ebiten.KeyR:          events.KeyR,
}

var mouseButtons = map[ebiten.MouseButton]events.MouseButton{
	ebiten.MouseButtonLeft:   events.MouseButtonLeft,
	ebiten.MouseButtonRight:  events.MouseButtonRight,
	ebiten.MouseButtonMiddle: events.MouseButtonMiddle,
}

// Key maps an ebiten key to its events.Key. Keys the game does not know
// about map to events.KeyUnknown.
func Key(k ebiten.Key) events.Key {
	if key, ok := keys[k]; ok {
		return key
	}
	return events.KeyUnknown
}

// Collector gathers the input transitions of one ebiten update.
type Collector struct {
	pressed  []ebiten.Key
	released []ebiten.Key
}

func NewCollector() *Collector {
	return &Collector{}
}

// AppendEvents appends the key and mouse button transitions since the
// previous update to dst: presses before releases, each in the order
// ebiten reports them. Unknown keys are dropped.
func (c *Collector) AppendEvents(dst []events.Event) []events.Event {
	c.pressed = inpututil.AppendJustPressedKeys(c.pressed[:0])
	c.released = inpututil.AppendJustReleasedKeys(c.released[:0])
	for _, k := range c.pressed {
		if key := Key(k); key != events.KeyUnknown {
			dst = append(dst, events.KeyDown(key))
		}
	}
	for _, k := range c.released {
		if key := Key(k); key != events.KeyUnknown {
			dst = append(dst, events.KeyUp(key))
		}
	}

	x, y := ebiten.CursorPosition()
	for _, b := range []ebiten.MouseButton{ebiten.MouseButtonLeft, ebiten.MouseButtonRight, ebiten.MouseButtonMiddle} {
		if inpututil.IsMouseButtonJustPressed(b) {
			dst = append(dst, events.MouseDown(mouseButtons[b], float64(x), float64(y)))
		}
		if inpututil.IsMouseButtonJustReleased(b) {
			dst = append(dst, events.MouseUp(mouseButtons[b], float64(x), float64(y)))
		}
	}
	return dst
}

// CursorPosition returns the cursor position in screen coordinates.
func CursorPosition() (float64, float64) {
	x, y := ebiten.CursorPosition()
	return float64(x), float64(y)
}
