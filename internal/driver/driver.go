// Package driver binds a Universe to a Canvas: it forwards input, advances
// the universe by wall-clock time and paints the universe's buffers.
package driver

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"dots/internal/core"
	"dots/internal/render"
	"dots/internal/stats"
)

var (
	// ErrInvalidSize reports non-positive dimensions.
	ErrInvalidSize = errors.New("driver: width and height must be positive")
	// ErrNoFactory reports a missing universe factory.
	ErrNoFactory = errors.New("driver: no universe factory")
	// ErrCanvasSize reports a canvas that does not match the universe.
	ErrCanvasSize = errors.New("driver: canvas size does not match universe")
	// ErrFrameSize reports an image view of the wrong length.
	ErrFrameSize = errors.New("driver: image view size mismatch")
	// ErrPointBuffer reports a point view holding fewer dots than expected.
	ErrPointBuffer = errors.New("driver: point view too short")
	// ErrClosed reports use of a closed driver.
	ErrClosed = errors.New("driver: closed")
)

// Strategy selects how frames are painted.
type Strategy int

const (
	// StrategyBitmap blits the universe's RGBA image.
	StrategyBitmap Strategy = iota
	// StrategyPoints draws a small square per dot.
	StrategyPoints
)

func (s Strategy) String() string {
	switch s {
	case StrategyBitmap:
		return "bitmap"
	case StrategyPoints:
		return "points"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// ParseStrategy maps "bitmap" or "points" to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bitmap", "":
		return StrategyBitmap, nil
	case "points", "point":
		return StrategyPoints, nil
	default:
		return 0, fmt.Errorf("driver: unknown strategy %q", name)
	}
}

// Options configure a Driver.
type Options struct {
	Width  int
	Height int
	Dots   int

	// Intensity is passed with every pointer event.
	Intensity float32
	Strategy  Strategy
	// DotColor paints points in StrategyPoints. Defaults to black.
	DotColor color.Color
	// Config is handed to the universe factory untouched.
	Config map[string]string
}

// Driver owns exactly one live Universe at a time.
type Driver struct {
	factory core.Factory
	canvas  render.Canvas
	opts    Options

	universe core.Universe
	dots     int
	clock    *core.FrameClock
	fps      *stats.Window
	closed   bool
}

// New constructs a universe of opts.Width*opts.Height with opts.Dots dots
// and binds it to canvas, which must have exactly the same size.
func New(factory core.Factory, canvas render.Canvas, opts Options) (*Driver, error) {
	if factory == nil {
		return nil, ErrNoFactory
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, ErrInvalidSize
	}
	if canvas == nil {
		return nil, fmt.Errorf("%w: nil canvas", ErrCanvasSize)
	}
	if w, h := canvas.Size(); w != opts.Width || h != opts.Height {
		return nil, fmt.Errorf("%w: canvas %dx%d, universe %dx%d", ErrCanvasSize, w, h, opts.Width, opts.Height)
	}
	if opts.DotColor == nil {
		opts.DotColor = color.Black
	}
	d := &Driver{
		factory: factory,
		canvas:  canvas,
		opts:    opts,
		dots:    clampDots(opts.Dots),
		fps:     stats.NewWindow(stats.DefaultCapacity),
	}
	d.universe = factory(opts.Width, opts.Height, d.dots, opts.Config)
	d.clock = core.NewFrameClock()
	return d, nil
}

// WithClock replaces the frame clock.
func (d *Driver) WithClock(c *core.FrameClock) *Driver {
	if c != nil {
		d.clock = c
	}
	return d
}

// OnPointerClick forwards a click at canvas coordinates (x, y).
func (d *Driver) OnPointerClick(x, y float32) {
	if d.closed {
		return
	}
	d.universe.AddEvent(x, y, d.opts.Intensity)
}

// OnReset replaces the universe with a fresh one holding dots dots (at
// least one). The new universe is built before the old one is released.
func (d *Driver) OnReset(dots int) {
	if d.closed {
		return
	}
	dots = clampDots(dots)
	next := d.factory(d.opts.Width, d.opts.Height, dots, d.opts.Config)
	prev := d.universe
	d.universe = next
	d.dots = dots
	prev.Release()
}

// FrameTick advances the universe by dt seconds.
func (d *Driver) FrameTick(dt float32) {
	if d.closed {
		return
	}
	d.universe.Tick(dt)
}

// FastForward advances the universe by a fixed amount of simulated time
// without touching the frame clock.
func (d *Driver) FastForward(seconds float32) {
	d.FrameTick(seconds)
}

// Render paints the current universe using the configured strategy.
// Buffers are fetched fresh on every call.
func (d *Driver) Render() error {
	if d.closed {
		return ErrClosed
	}
	switch d.opts.Strategy {
	case StrategyPoints:
		pts := d.universe.Dots()
		if len(pts) < 2*d.dots {
			return fmt.Errorf("%w: %d floats for %d dots", ErrPointBuffer, len(pts), d.dots)
		}
		render.DrawPoints(d.canvas, pts, d.dots, d.opts.DotColor)
		return nil
	default:
		d.universe.RenderImageData()
		view := d.universe.ImageData()
		if want := d.opts.Width * d.opts.Height * 4; len(view) != want {
			return fmt.Errorf("%w: got %d bytes, want %d", ErrFrameSize, len(view), want)
		}
		if err := d.canvas.WritePixels(view); err != nil {
			return fmt.Errorf("driver: blit: %w", err)
		}
		return nil
	}
}

// Frame runs one animation frame: advance by the wall time since the
// previous frame, paint and record the frame rate.
func (d *Driver) Frame() error {
	if d.closed {
		return ErrClosed
	}
	delta := d.clock.Delta()
	d.FrameTick(float32(delta.Seconds()))
	if err := d.Render(); err != nil {
		return err
	}
	d.fps.ObserveMillis(float64(delta.Microseconds()) / 1000)
	return nil
}

// RemainingDots reports the universe's live dot count.
func (d *Driver) RemainingDots() int {
	if d.closed {
		return 0
	}
	return d.universe.RemainingDots()
}

// Dots returns the dot count of the current universe.
func (d *Driver) Dots() int { return d.dots }

// Size returns the universe dimensions.
func (d *Driver) Size() core.Size { return core.Size{W: d.opts.Width, H: d.opts.Height} }

// Intensity returns the intensity sent with pointer events.
func (d *Driver) Intensity() float32 { return d.opts.Intensity }

// Strategy returns the paint strategy.
func (d *Driver) Strategy() Strategy { return d.opts.Strategy }

// Stats summarizes recent frame rates.
func (d *Driver) Stats() stats.Summary { return d.fps.Summary() }

// FrameRates returns recent frame rates, oldest first.
func (d *Driver) FrameRates() []float64 { return d.fps.Values() }

// Close releases the universe. It is safe to call more than once.
func (d *Driver) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	d.universe.Release()
	d.universe = nil
	return nil
}

func clampDots(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
