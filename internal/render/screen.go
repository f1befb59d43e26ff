//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ScreenCanvas is a Canvas backed by an offscreen ebiten image. Present
// composites it onto the window without smoothing.
type ScreenCanvas struct {
	w, h int
	img  *ebiten.Image
	bg   color.Color
}

// NewScreenCanvas allocates a w*h offscreen canvas shown over bg.
func NewScreenCanvas(w, h int, bg color.Color) *ScreenCanvas {
	return &ScreenCanvas{w: w, h: h, img: ebiten.NewImage(w, h), bg: bg}
}

// Size returns the canvas dimensions.
func (c *ScreenCanvas) Size() (int, int) { return c.w, c.h }

// WritePixels uploads an RGBA view covering the whole canvas.
func (c *ScreenCanvas) WritePixels(pix []byte) error {
	if len(pix) != 4*c.w*c.h {
		return ErrViewSize
	}
	c.img.WritePixels(pix)
	return nil
}

// Clear makes the canvas transparent.
func (c *ScreenCanvas) Clear() { c.img.Clear() }

// FillRect paints a rectangle without anti-aliasing.
func (c *ScreenCanvas) FillRect(x, y, w, h float32, clr color.Color) {
	vector.DrawFilledRect(c.img, x, y, w, h, clr, false)
}

// Present draws the canvas at the origin of screen, scaled by scale with
// nearest-neighbour filtering.
func (c *ScreenCanvas) Present(screen *ebiten.Image, scale int) {
	if scale <= 0 {
		scale = 1
	}
	screen.Fill(c.bg)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(c.img, op)
}
