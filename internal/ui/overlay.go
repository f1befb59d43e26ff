//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Overlay draws a fading ring wherever the canvas was clicked, sized to the
// click's reach.
type Overlay struct {
	scale int
	rings Rings
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	return &Overlay{scale: scale}
}

// Ring starts a marker at canvas coordinates (x, y).
func (o *Overlay) Ring(x, y, radius float32) {
	o.rings.Add(x, y, radius)
}

// Clear drops every marker.
func (o *Overlay) Clear() { o.rings.Clear() }

// Update ages the markers.
func (o *Overlay) Update() { o.rings.Step() }

// Draw renders the markers onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	s := float32(o.scale)
	o.rings.Each(func(x, y, radius, alpha float32) {
		c := color.RGBA{R: 64, G: 164, B: 223, A: uint8(alpha * 200)}
		vector.StrokeCircle(screen, x*s, y*s, radius*s, 1.5, premultiply(c), true)
	})
}

func premultiply(c color.RGBA) color.RGBA {
	a := uint16(c.A)
	return color.RGBA{
		R: uint8(uint16(c.R) * a / 255),
		G: uint8(uint16(c.G) * a / 255),
		B: uint8(uint16(c.B) * a / 255),
		A: c.A,
	}
}
