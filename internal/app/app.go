//go:build ebiten

package app

import (
	"image/color"
	"log"

	"dots/internal/driver"
	"dots/internal/render"
	"dots/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// fastForwardSeconds is the simulated time skipped by the A key.
const fastForwardSeconds = 10

// Game adapts a driver to the ebiten.Game interface.
type Game struct {
	cfg     *Config
	driver  *driver.Driver
	canvas  *render.ScreenCanvas
	hud     *ui.HUD
	overlay *ui.Overlay

	scale int
}

// New constructs a Game for the provided configuration.
func New(cfg *Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	factory, err := cfg.Factory()
	if err != nil {
		return nil, err
	}
	canvas := render.NewScreenCanvas(cfg.Width, cfg.Height, color.White)
	d, err := driver.New(factory, canvas, cfg.Options())
	if err != nil {
		return nil, err
	}
	g := &Game{
		cfg:     cfg,
		driver:  d,
		canvas:  canvas,
		overlay: ui.NewOverlay(cfg.Scale),
		scale:   cfg.Scale,
	}
	g.hud = ui.NewHUD(d, cfg.HUDWidth, cfg.DotStep, g.Reset)
	return g, nil
}

// Reset replaces the universe with one holding dots dots.
func (g *Game) Reset(dots int) {
	g.driver.OnReset(dots)
	g.overlay.Clear()
	log.Printf("reset: %d dots", g.driver.Dots())
}

// Close releases the universe.
func (g *Game) Close() error {
	return g.driver.Close()
}

// Update handles input and runs one driver frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.hud.PendingDots())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		g.driver.FastForward(fastForwardSeconds)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		size := g.driver.Size()
		if mx >= 0 && my >= 0 && mx < size.W*g.scale && my < size.H*g.scale {
			x := float32(mx) / float32(g.scale)
			y := float32(my) / float32(g.scale)
			g.driver.OnPointerClick(x, y)
			g.overlay.Ring(x, y, g.driver.Intensity())
		}
	}

	g.hud.Update(g.canvasWidth())
	g.overlay.Update()

	return g.driver.Frame()
}

// Draw presents the last rendered frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.Present(screen, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.canvasWidth(), g.driver.Size().H*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.canvasWidth() + g.cfg.HUDWidth, g.driver.Size().H * g.scale
}

func (g *Game) canvasWidth() int {
	return g.driver.Size().W * g.scale
}
