// Package render records draw calls issued by tasks during a tick and
// replays them onto a backend canvas when the host presents the frame.
package render

import (
	"fmt"
	"image/color"
	"strings"
)

// TextureID references a texture registered with the backend.
type TextureID int

// Canvas is the drawing surface implemented by the windowing backend.
type Canvas interface {
	Fill(clr color.RGBA)
	FilledRect(x, y, w, h float64, clr color.RGBA)
	StrokeRect(x, y, w, h, thickness float64, clr color.RGBA)
	FilledCircle(x, y, r float64, clr color.RGBA)
	Text(text string, x, y, size float64, clr color.RGBA)
	Texture(id TextureID, x, y float64, clr color.RGBA)
}

// TextureStore uploads decoded images to the backend.
type TextureStore interface {
	AddTexture(img TextureSource) (TextureID, error)
}

// TextureSource is the raw, encoded image data of a texture.
type TextureSource struct {
	Name string
	Data []byte
}

type Op int

const (
	OpFill Op = iota
	OpFilledRect
	OpStrokeRect
	OpFilledCircle
	OpText
	OpTexture
)

func (o Op) String() string {
	switch o {
	case OpFill:
		return "fill"
	case OpFilledRect:
		return "rect"
	case OpStrokeRect:
		return "rect-lines"
	case OpFilledCircle:
		return "circle"
	case OpText:
		return "text"
	case OpTexture:
		return "texture"
	}
	return "unknown"
}

// Command is a single recorded draw call.
type Command struct {
	Op        Op
	X, Y      float64
	W, H      float64
	Thickness float64
	Text      string
	Texture   TextureID
	Color     color.RGBA
}

func (c Command) String() string {
	clr := fmt.Sprintf("#%02x%02x%02x%02x", c.Color.R, c.Color.G, c.Color.B, c.Color.A)
	switch c.Op {
	case OpFill:
		return fmt.Sprintf("%s %s", c.Op, clr)
	case OpFilledRect:
		return fmt.Sprintf("%s %g,%g %gx%g %s", c.Op, c.X, c.Y, c.W, c.H, clr)
	case OpStrokeRect:
		return fmt.Sprintf("%s %g,%g %gx%g w=%g %s", c.Op, c.X, c.Y, c.W, c.H, c.Thickness, clr)
	case OpFilledCircle:
		return fmt.Sprintf("%s %g,%g r=%g %s", c.Op, c.X, c.Y, c.W, clr)
	case OpText:
		return fmt.Sprintf("%s %g,%g size=%g %q %s", c.Op, c.X, c.Y, c.H, c.Text, clr)
	case OpTexture:
		return fmt.Sprintf("%s %d %g,%g %s", c.Op, c.Texture, c.X, c.Y, clr)
	}
	return c.Op.String()
}

// DrawList accumulates the draw calls of one frame.
type DrawList struct {
	commands []Command
}

func NewDrawList() *DrawList {
	return &DrawList{}
}

// Clear records a full-screen fill. Commands recorded earlier in the frame
// are dropped since they would be painted over.
func (d *DrawList) Clear(clr color.RGBA) {
	d.commands = d.commands[:0]
	d.commands = append(d.commands, Command{Op: OpFill, Color: clr})
}

func (d *DrawList) Rect(x, y, w, h float64, clr color.RGBA) {
	d.commands = append(d.commands, Command{Op: OpFilledRect, X: x, Y: y, W: w, H: h, Color: clr})
}

func (d *DrawList) RectLines(x, y, w, h, thickness float64, clr color.RGBA) {
	d.commands = append(d.commands, Command{Op: OpStrokeRect, X: x, Y: y, W: w, H: h, Thickness: thickness, Color: clr})
}

func (d *DrawList) Circle(x, y, r float64, clr color.RGBA) {
	d.commands = append(d.commands, Command{Op: OpFilledCircle, X: x, Y: y, W: r, Color: clr})
}

func (d *DrawList) Text(text string, x, y, size float64, clr color.RGBA) {
	d.commands = append(d.commands, Command{Op: OpText, X: x, Y: y, H: size, Text: text, Color: clr})
}

func (d *DrawList) Texture(id TextureID, x, y float64, clr color.RGBA) {
	d.commands = append(d.commands, Command{Op: OpTexture, Texture: id, X: x, Y: y, Color: clr})
}

// Commands returns the recorded commands in submission order.
func (d *DrawList) Commands() []Command {
	return d.commands
}

func (d *DrawList) Len() int {
	return len(d.commands)
}

// Reset drops every recorded command.
func (d *DrawList) Reset() {
	d.commands = d.commands[:0]
}

// Present replays the recorded commands onto canvas in submission order.
// The list is kept so the same frame can be presented again if the host
// draws more often than it ticks.
func (d *DrawList) Present(canvas Canvas) {
	for _, c := range d.commands {
		switch c.Op {
		case OpFill:
			canvas.Fill(c.Color)
		case OpFilledRect:
			canvas.FilledRect(c.X, c.Y, c.W, c.H, c.Color)
		case OpStrokeRect:
			canvas.StrokeRect(c.X, c.Y, c.W, c.H, c.Thickness, c.Color)
		case OpFilledCircle:
			canvas.FilledCircle(c.X, c.Y, c.W, c.Color)
		case OpText:
			canvas.Text(c.Text, c.X, c.Y, c.H, c.Color)
		case OpTexture:
			canvas.Texture(c.Texture, c.X, c.Y, c.Color)
		}
	}
}

// Dump renders the list as one command per line.
func (d *DrawList) Dump() string {
	var sb strings.Builder
	for _, c := range d.commands {
		sb.WriteString(c.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
