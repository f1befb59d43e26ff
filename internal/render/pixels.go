package render

import (
	"errors"
	"image/color"
)

// ErrViewSize reports a pixel view whose length does not match its target.
var ErrViewSize = errors.New("render: pixel view size mismatch")

// CopyClamped copies an RGBA byte view into dst. Bytes are already clamped
// to [0,255]; the view must cover dst exactly.
func CopyClamped(dst, src []byte) error {
	if len(src) != len(dst) {
		return ErrViewSize
	}
	copy(dst, src)
	return nil
}

// fillRGBA paints every pixel of buf with c.
func fillRGBA(buf []byte, c color.Color) {
	r, g, b, a := c.RGBA()
	for base := 0; base+3 < len(buf); base += 4 {
		buf[base+0] = uint8(r >> 8)
		buf[base+1] = uint8(g >> 8)
		buf[base+2] = uint8(b >> 8)
		buf[base+3] = uint8(a >> 8)
	}
}

// fillRectRGBA paints the pixels of buf (a w*h RGBA image) covered by the
// rectangle at (x, y) of size rw*rh, clipped to the image.
func fillRectRGBA(buf []byte, w, h int, x, y, rw, rh float32, c color.Color) {
	x0, y0 := floorInt(x), floorInt(y)
	x1, y1 := floorInt(x+rw), floorInt(y+rh)
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > w {
		x1 = w
	}
	if y1 > h {
		y1 = h
	}
	if x0 >= x1 || y0 >= y1 {
		return
	}
	r, g, b, a := c.RGBA()
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			base := (py*w + px) * 4
			buf[base+0] = uint8(r >> 8)
			buf[base+1] = uint8(g >> 8)
			buf[base+2] = uint8(b >> 8)
			buf[base+3] = uint8(a >> 8)
		}
	}
}

func floorInt(v float32) int {
	i := int(v)
	if float32(i) > v {
		i--
	}
	return i
}
