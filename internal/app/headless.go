package app

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"
	"time"

	"dots/internal/core"
	"dots/internal/driver"
	"dots/internal/render"
	"dots/internal/stats"
)

// Click is a pointer event injected before a given frame of a headless run.
type Click struct {
	X, Y  float32
	Frame int
}

// ParseClick parses "x,y" or "x,y@frame".
func ParseClick(s string) (Click, error) {
	var c Click
	pos := s
	if at := strings.IndexByte(s, '@'); at >= 0 {
		frame, err := strconv.Atoi(strings.TrimSpace(s[at+1:]))
		if err != nil || frame < 0 {
			return c, fmt.Errorf("click %q: bad frame", s)
		}
		c.Frame = frame
		pos = s[:at]
	}
	parts := strings.Split(pos, ",")
	if len(parts) != 2 {
		return c, fmt.Errorf("click %q: want x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 32)
	if err != nil {
		return c, fmt.Errorf("click %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 32)
	if err != nil {
		return c, fmt.Errorf("click %q: %w", s, err)
	}
	c.X, c.Y = float32(x), float32(y)
	return c, nil
}

// HeadlessOptions control a run without a window.
type HeadlessOptions struct {
	Frames int
	// Step is the simulated time between frames.
	Step   time.Duration
	Clicks []Click
	// Background is composited under the final frame.
	Background color.Color
}

// HeadlessResult summarizes a headless run.
type HeadlessResult struct {
	Frames    int
	Remaining []int
	// Throughput holds the frame rates the host actually achieved.
	Throughput stats.Summary
	Rates      []float64
	Image      *image.RGBA
}

// RunHeadless drives the configured universe on an in-memory canvas for a
// fixed number of frames. Each frame advances the universe by opts.Step.
func RunHeadless(ctx context.Context, cfg *Config, opts HeadlessOptions) (*HeadlessResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	factory, err := cfg.Factory()
	if err != nil {
		return nil, err
	}
	if opts.Frames <= 0 {
		opts.Frames = 1
	}
	if opts.Step <= 0 {
		opts.Step = time.Second / time.Duration(cfg.TPS)
	}
	if opts.Background == nil {
		opts.Background = color.White
	}

	canvas := render.NewImageCanvas(cfg.Width, cfg.Height)
	d, err := driver.New(factory, canvas, cfg.Options())
	if err != nil {
		return nil, err
	}
	defer d.Close()
	d.WithClock(core.NewFrameClockWithSource(core.FixedSource(opts.Step)))

	throughput := stats.NewWindow(stats.DefaultCapacity)
	res := &HeadlessResult{Remaining: make([]int, 0, opts.Frames)}
	for frame := 0; frame < opts.Frames; frame++ {
		if err := ctx.Err(); err != nil {
			return finish(res, canvas, throughput, opts.Background), err
		}
		for _, c := range opts.Clicks {
			if c.Frame == frame {
				d.OnPointerClick(c.X, c.Y)
			}
		}
		start := time.Now()
		if err := d.Frame(); err != nil {
			return finish(res, canvas, throughput, opts.Background), fmt.Errorf("frame %d: %w", frame, err)
		}
		throughput.ObserveMillis(float64(time.Since(start).Microseconds()) / 1000)
		res.Frames++
		res.Remaining = append(res.Remaining, d.RemainingDots())
	}
	return finish(res, canvas, throughput, opts.Background), nil
}

func finish(res *HeadlessResult, canvas *render.ImageCanvas, w *stats.Window, bg color.Color) *HeadlessResult {
	res.Throughput = w.Summary()
	res.Rates = w.Values()
	res.Image = canvas.Flatten(bg)
	return res
}
