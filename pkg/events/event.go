package events

import "fmt"

type Kind int

const (
	KindKeyDown Kind = iota
	KindKeyUp
	KindMouseDown
	KindMouseUp
)

func (k Kind) String() string {
	switch k {
	case KindKeyDown:
		return "KeyDown"
	case KindKeyUp:
		return "KeyUp"
	case KindMouseDown:
		return "MouseDown"
	case KindMouseUp:
		return "MouseUp"
	}
	return "Unknown"
}

// Key identifies a physical key independently of the windowing backend.
type Key int

const (
	KeyUnknown Key = iota
	KeySpace
	KeyEnter
	KeyEscape
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyW
	KeyA
	KeyS
	KeyD
	KeyP
	KeyR
)

var keyNames = map[Key]string{
	KeyUnknown:    "Unknown",
	KeySpace:      "Space",
	KeyEnter:      "Enter",
	KeyEscape:     "Escape",
	KeyArrowUp:    "ArrowUp",
	KeyArrowDown:  "ArrowDown",
	KeyArrowLeft:  "ArrowLeft",
	KeyArrowRight: "ArrowRight",
	KeyW:          "W",
	KeyA:          "A",
	KeyS:          "S",
	KeyD:          "D",
	KeyP:          "P",
	KeyR:          "R",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// Event is a single input transition delivered by the host.
type Event struct {
	Kind   Kind
	Key    Key
	Button MouseButton
	X, Y   float64
}

func KeyDown(key Key) Event {
	return Event{Kind: KindKeyDown, Key: key}
}

func KeyUp(key Key) Event {
	return Event{Kind: KindKeyUp, Key: key}
}

func MouseDown(button MouseButton, x, y float64) Event {
	return Event{Kind: KindMouseDown, Button: button, X: x, Y: y}
}

func MouseUp(button MouseButton, x, y float64) Event {
	return Event{Kind: KindMouseUp, Button: button, X: x, Y: y}
}

// IsKeyDown reports whether e is a key press of key.
func (e Event) IsKeyDown(key Key) bool {
	return e.Kind == KindKeyDown && e.Key == key
}

func (e Event) String() string {
	switch e.Kind {
	case KindKeyDown, KindKeyUp:
		return fmt.Sprintf("%s(%s)", e.Kind, e.Key)
	default:
		return fmt.Sprintf("%s(%d, %g, %g)", e.Kind, e.Button, e.X, e.Y)
	}
}
