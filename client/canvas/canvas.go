// Package canvas draws recorded frames with ebiten.
package canvas

import (
	"image/color"

	"github.com/cbodonnell/tickwheel/client/fonts"
	"github.com/cbodonnell/tickwheel/pkg/log"
	"github.com/cbodonnell/tickwheel/pkg/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Canvas implements render.Canvas on an ebiten image.
type Canvas struct {
	dst      *ebiten.Image
	textures *Textures
}

func New(dst *ebiten.Image, textures *Textures) *Canvas {
	return &Canvas{
		dst:      dst,
		textures: textures,
	}
}

func (c *Canvas) Fill(clr color.RGBA) {
	c.dst.Fill(clr)
}

func (c *Canvas) FilledRect(x, y, w, h float64, clr color.RGBA) {
	vector.DrawFilledRect(c.dst, float32(x), float32(y), float32(w), float32(h), clr, true)
}

func (c *Canvas) StrokeRect(x, y, w, h, thickness float64, clr color.RGBA) {
	vector.StrokeRect(c.dst, float32(x), float32(y), float32(w), float32(h), float32(thickness), clr, true)
}

func (c *Canvas) FilledCircle(x, y, r float64, clr color.RGBA) {
	vector.DrawFilledCircle(c.dst, float32(x), float32(y), float32(r), clr, true)
}

// Text draws s with its baseline starting at x, y.
func (c *Canvas) Text(s string, x, y, size float64, clr color.RGBA) {
	f, err := fonts.Face(fonts.Regular, size)
	if err != nil {
		log.Error("Failed to get font face: %v", err)
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.DrawWithOptions(c.dst, s, f, op)
}

// Texture draws the texture with its top-left corner at x, y, tinted by clr.
func (c *Canvas) Texture(id render.TextureID, x, y float64, clr color.RGBA) {
	img, ok := c.textures.Get(id)
	if !ok {
		log.Warn("Unknown texture %d", id)
		return
	}
	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterNearest}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	c.dst.DrawImage(img, op)
}
