package render

import (
	"errors"
	"image/color"
	"testing"
)

type rect struct{ x, y, w, h float32 }

type recordingCanvas struct {
	w, h    int
	cleared int
	rects   []rect
}

func (c *recordingCanvas) Size() (int, int)         { return c.w, c.h }
func (c *recordingCanvas) WritePixels([]byte) error { return nil }
func (c *recordingCanvas) Clear()                   { c.cleared++ }
func (c *recordingCanvas) FillRect(x, y, w, h float32, _ color.Color) {
	c.rects = append(c.rects, rect{x, y, w, h})
}

func TestDrawPointsIssuesOneSquarePerDot(t *testing.T) {
	c := &recordingCanvas{w: 20, h: 20}
	pts := []float32{5, 5, 10, 2, 0, 0, 99, 99}
	DrawPoints(c, pts, 3, color.Black)

	if c.cleared != 1 {
		t.Fatalf("Clear called %d times, want 1", c.cleared)
	}
	if len(c.rects) != 3 {
		t.Fatalf("FillRect called %d times, want 3", len(c.rects))
	}
	want := []rect{{4, 4, 3, 3}, {9, 1, 3, 3}, {-1, -1, 3, 3}}
	for i, r := range want {
		if c.rects[i] != r {
			t.Fatalf("rect %d = %+v, want %+v", i, c.rects[i], r)
		}
	}
}

func TestImageCanvasFillRectCentersSquare(t *testing.T) {
	c := NewImageCanvas(10, 10)
	DrawPoints(c, []float32{5, 5}, 1, color.Black)

	img := c.Image()
	opaque := 0
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if img.RGBAAt(x, y).A == 255 {
				opaque++
				if x < 4 || x > 6 || y < 4 || y > 6 {
					t.Fatalf("pixel (%d,%d) painted outside the 3x3 square", x, y)
				}
			}
		}
	}
	if opaque != 9 {
		t.Fatalf("painted %d pixels, want 9", opaque)
	}
}

func TestImageCanvasFillRectClips(t *testing.T) {
	c := NewImageCanvas(4, 4)
	c.FillRect(-1, -1, 3, 3, color.White)
	c.FillRect(3, 3, 3, 3, color.White)
	c.FillRect(10, 10, 3, 3, color.White)

	img := c.Image()
	count := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] == 255 {
			count++
		}
	}
	if count != 5 {
		t.Fatalf("painted %d pixels, want 5 (4 top-left + 1 bottom-right)", count)
	}
}

func TestImageCanvasWritePixels(t *testing.T) {
	c := NewImageCanvas(2, 2)
	if err := c.WritePixels(make([]byte, 15)); !errors.Is(err, ErrViewSize) {
		t.Fatalf("short view: err = %v, want ErrViewSize", err)
	}
	pix := make([]byte, 16)
	pix[3], pix[15] = 255, 255
	if err := c.WritePixels(pix); err != nil {
		t.Fatalf("WritePixels: %v", err)
	}
	if c.Image().RGBAAt(0, 0).A != 255 || c.Image().RGBAAt(1, 1).A != 255 {
		t.Fatal("pixels not copied")
	}
	c.Clear()
	if c.Image().RGBAAt(0, 0).A != 0 {
		t.Fatal("Clear left opaque pixels")
	}
}

func TestFlattenOverBackground(t *testing.T) {
	c := NewImageCanvas(2, 1)
	pix := []byte{0, 0, 0, 255, 0, 0, 0, 0}
	if err := c.WritePixels(pix); err != nil {
		t.Fatal(err)
	}
	out := c.Flatten(color.White)
	if got := out.RGBAAt(0, 0); got != (color.RGBA{0, 0, 0, 255}) {
		t.Fatalf("dot pixel = %+v, want opaque black", got)
	}
	if got := out.RGBAAt(1, 0); got != (color.RGBA{255, 255, 255, 255}) {
		t.Fatalf("empty pixel = %+v, want white", got)
	}
}
