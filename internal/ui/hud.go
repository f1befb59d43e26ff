//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"

	"dots/internal/core"
	"dots/internal/stats"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Target is what the HUD reports on.
type Target interface {
	Size() core.Size
	Dots() int
	RemainingDots() int
	Stats() stats.Summary
}

// HUD renders the control panel to the right of the canvas: a dot count
// input, a reset button and live statistics.
type HUD struct {
	target  Target
	width   int
	panel   *ebiten.Image
	pixel   *ebiten.Image
	counter *DotCounter
	onReset func(int)

	showStats    bool
	panelOffsetX int

	minusRect image.Rectangle
	plusRect  image.Rectangle
	resetRect image.Rectangle
}

// NewHUD constructs a HUD of the given panel width. onReset receives the
// pending dot count when the reset button is pressed.
func NewHUD(target Target, width, step int, onReset func(int)) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{
		target:    target,
		width:     width,
		counter:   NewDotCounter(target.Dots(), step),
		onReset:   onReset,
		showStats: true,
	}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
		h.layout()
	}
	return h
}

// PendingDots returns the dot count the next reset will use.
func (h *HUD) PendingDots() int {
	return h.counter.Value()
}

// Update handles HUD interactions.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil || h.width <= 0 {
		return
	}
	h.panelOffsetX = panelOffsetX
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		h.showStats = !h.showStats
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	px := mx - h.panelOffsetX
	switch {
	case pointInRect(px, my, h.minusRect):
		h.counter.Adjust(-1)
	case pointInRect(px, my, h.plusRect):
		h.counter.Adjust(1)
	case pointInRect(px, my, h.resetRect):
		if h.onReset != nil {
			h.onReset(h.counter.Value())
		}
	}
}

// Draw paints the HUD panel anchored at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawControls()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	headerY := panelPadding + headerBaseline
	text.Draw(h.panel, "Dots", face, panelPadding, headerY, color.RGBA{R: 200, G: 200, B: 210, A: 255})

	labelY := controlsTop + labelBaseline
	text.Draw(h.panel, "Count", face, panelPadding, labelY, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	value := fmt.Sprintf("%d", h.counter.Value())
	bounds := text.BoundString(face, value)
	valueX := h.minusRect.Min.X - buttonGap - bounds.Dx()
	text.Draw(h.panel, value, face, valueX, labelY, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	h.drawButton(h.minusRect, "-", h.counter.CanDecrease())
	h.drawButton(h.plusRect, "+", true)
	h.drawButton(h.resetRect, "Reset", true)

	if !h.showStats {
		return
	}
	s := h.target.Stats()
	lines := []string{
		fmt.Sprintf("live:   %d / %d", h.target.RemainingDots(), h.target.Dots()),
		fmt.Sprintf("fps:    %.0f", s.Latest),
		fmt.Sprintf("mean:   %.1f", s.Mean),
		fmt.Sprintf("min:    %.1f", s.Min),
		fmt.Sprintf("max:    %.1f", s.Max),
	}
	y := h.resetRect.Max.Y + infoSpacing
	for _, line := range lines {
		text.Draw(h.panel, line, face, panelPadding, y, color.RGBA{R: 160, G: 160, B: 170, A: 255})
		y += statLineHeight
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) layout() {
	buttonY := controlsTop + (lineHeight-buttonSize)/2
	h.plusRect = image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
	h.minusRect = image.Rect(h.plusRect.Min.X-buttonGap-buttonSize, buttonY, h.plusRect.Min.X-buttonGap, buttonY+buttonSize)
	resetY := controlsTop + lineHeight
	h.resetRect = image.Rect(panelPadding, resetY, h.width-panelPadding, resetY+buttonSize)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 24
	statLineHeight = 18
	controlsTop    = panelPadding + headerBaseline + 14
)
