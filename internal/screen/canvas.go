// Package screen puts the arcade on an Ebiten window: image-backed drawing
// surfaces, input polling and sound effects.
package screen

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/Zachkp/playground/internal/engine"
)

var face = text.NewGoXFace(basicfont.Face7x13)

// Canvas is an engine.Surface drawing on an Ebiten image.
type Canvas struct {
	Image *ebiten.Image
	// FontScale enlarges text; zero means 1.
	FontScale float64
}

// NewCanvas allocates an offscreen canvas of w by h pixels.
func NewCanvas(w, h int, fontScale float64) *Canvas {
	return &Canvas{Image: ebiten.NewImage(w, h), FontScale: fontScale}
}

func (c *Canvas) Clear() { c.Image.Clear() }

func (c *Canvas) FillRect(x, y, w, h float64, clr color.Color) {
	vector.DrawFilledRect(c.Image, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func (c *Canvas) StrokeRect(x, y, w, h float64, clr color.Color) {
	vector.StrokeRect(c.Image, float32(x), float32(y), float32(w), float32(h), 1, clr, false)
}

func (c *Canvas) FillCircle(cx, cy, r float64, clr color.Color) {
	vector.DrawFilledCircle(c.Image, float32(cx), float32(cy), float32(r), clr, true)
}

// Text draws s with its baseline at y.
func (c *Canvas) Text(s string, x, y float64, clr color.Color) {
	scale := c.FontScale
	if scale <= 0 {
		scale = 1
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(0, -face.Metrics().HAscent)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(c.Image, s, face, op)
}

// Canvas composes another canvas at x, y. Surfaces that are not canvases
// are skipped.
func (c *Canvas) Canvas(src engine.Surface, x, y float64) {
	other, ok := src.(*Canvas)
	if !ok {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	c.Image.DrawImage(other.Image, op)
}
