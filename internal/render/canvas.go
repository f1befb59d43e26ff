package render

import (
	"image"
	"image/color"
)

// PointSize is the side length of the square drawn for a dot.
const PointSize = 3

// Canvas is a fixed-size RGBA drawing surface.
type Canvas interface {
	Size() (int, int)
	// WritePixels replaces the whole canvas with an RGBA view of exactly
	// w*h*4 bytes, drawn at the origin.
	WritePixels(pix []byte) error
	// Clear makes every pixel transparent.
	Clear()
	FillRect(x, y, w, h float32, clr color.Color)
}

// DrawPoints clears c and draws the first n points of pts (x, y float32
// pairs) as PointSize squares anchored one pixel up-left of each point.
func DrawPoints(c Canvas, pts []float32, n int, clr color.Color) {
	c.Clear()
	for i := 0; i < n; i++ {
		x, y := pts[2*i], pts[2*i+1]
		c.FillRect(x-1, y-1, PointSize, PointSize, clr)
	}
}

// ImageCanvas is a Canvas backed by an in-memory image.
type ImageCanvas struct {
	img *image.RGBA
}

// NewImageCanvas allocates a transparent w*h canvas.
func NewImageCanvas(w, h int) *ImageCanvas {
	return &ImageCanvas{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// Size returns the canvas dimensions.
func (c *ImageCanvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// WritePixels copies pix into the canvas.
func (c *ImageCanvas) WritePixels(pix []byte) error {
	return CopyClamped(c.img.Pix, pix)
}

// Clear resets every pixel to transparent black.
func (c *ImageCanvas) Clear() {
	fillRGBA(c.img.Pix, color.Transparent)
}

// FillRect paints a clipped rectangle.
func (c *ImageCanvas) FillRect(x, y, w, h float32, clr color.Color) {
	cw, ch := c.Size()
	fillRectRGBA(c.img.Pix, cw, ch, x, y, w, h, clr)
}

// Image returns the backing image.
func (c *ImageCanvas) Image() *image.RGBA { return c.img }

// Flatten composites the canvas (premultiplied alpha) over an opaque
// background, the way the window shows it.
func (c *ImageCanvas) Flatten(bg color.Color) *image.RGBA {
	out := image.NewRGBA(c.img.Bounds())
	fillRGBA(out.Pix, bg)
	br, bgc, bb, _ := bg.RGBA()
	back := [3]uint32{br >> 8, bgc >> 8, bb >> 8}
	for i := 0; i+3 < len(c.img.Pix); i += 4 {
		a := uint32(c.img.Pix[i+3])
		if a == 0 {
			continue
		}
		for k := 0; k < 3; k++ {
			src := uint32(c.img.Pix[i+k])
			out.Pix[i+k] = uint8(src + back[k]*(255-a)/255)
		}
	}
	return out
}
