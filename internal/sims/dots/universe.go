package dots

import (
	"math"

	"dots/internal/core"
)

// Dot is a single moving point. A dot with a zero direction is at rest.
type Dot struct {
	Pos Vec2
	Dir Vec2
}

type event struct {
	pos    Vec2
	radius float32
}

// Universe moves dots across a toroidal surface. Clicks push nearby dots
// away and friction slowly brings every dot to rest.
type Universe struct {
	w, h   int
	params Params

	dots    []Dot
	pending []event
	image   []byte
	points  []float32

	released bool
}

// New returns a Universe with the default configuration.
func New(w, h, n int) *Universe {
	return NewWithConfig(w, h, n, DefaultConfig())
}

// NewWithConfig returns a Universe of w*h pixels holding n dots.
func NewWithConfig(w, h, n int, cfg Config) *Universe {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	if n < 0 {
		n = 0
	}
	return &Universe{
		w:      w,
		h:      h,
		params: cfg.Params,
		dots:   spawn(w, h, n, cfg),
		image:  make([]byte, w*h*4),
		points: make([]float32, 2*n),
	}
}

// Size returns the surface dimensions.
func (u *Universe) Size() core.Size {
	u.mustBeLive()
	return core.Size{W: u.w, H: u.h}
}

// AddEvent queues a push centred on (x, y) reaching radius pixels.
func (u *Universe) AddEvent(x, y, radius float32) {
	u.mustBeLive()
	u.pending = append(u.pending, event{pos: Vec2{x, y}, radius: radius})
}

// Tick applies queued events and then moves every dot by dt seconds.
func (u *Universe) Tick(dt float32) {
	u.mustBeLive()
	u.applyEvents()
	fw, fh := float32(u.w), float32(u.h)
	for i := range u.dots {
		u.dots[i] = u.step(u.dots[i], dt, fw, fh)
	}
}

// Dots exposes dot positions as x, y float32 pairs.
func (u *Universe) Dots() []float32 {
	u.mustBeLive()
	for i, d := range u.dots {
		u.points[2*i] = d.Pos.X
		u.points[2*i+1] = d.Pos.Y
	}
	return u.points
}

// RenderImageData clears the alpha channel and marks every dot's pixel opaque.
func (u *Universe) RenderImageData() {
	u.mustBeLive()
	for i := 3; i < len(u.image); i += 4 {
		u.image[i] = 0
	}
	for _, d := range u.dots {
		x, y := int(d.Pos.X), int(d.Pos.Y)
		if x < 0 || x >= u.w || y < 0 || y >= u.h {
			continue
		}
		u.image[(y*u.w+x)*4+3] = 255
	}
}

// ImageData exposes the RGBA buffer filled by RenderImageData.
func (u *Universe) ImageData() []byte {
	u.mustBeLive()
	return u.image
}

// RemainingDots counts the dots still in motion.
func (u *Universe) RemainingDots() int {
	u.mustBeLive()
	n := 0
	for _, d := range u.dots {
		if d.Dir.X != 0 || d.Dir.Y != 0 {
			n++
		}
	}
	return n
}

// Release drops every buffer. Further calls other than Release panic.
func (u *Universe) Release() {
	if u.released {
		return
	}
	u.released = true
	u.dots = nil
	u.pending = nil
	u.image = nil
	u.points = nil
}

// Released reports whether Release has been called.
func (u *Universe) Released() bool { return u.released }

// State returns a copy of every dot.
func (u *Universe) State() []Dot {
	u.mustBeLive()
	return append([]Dot(nil), u.dots...)
}

func (u *Universe) mustBeLive() {
	if u.released {
		panic(core.ErrReleased)
	}
}

// applyEvents drains the queue newest first.
func (u *Universe) applyEvents() {
	for len(u.pending) > 0 {
		ev := u.pending[len(u.pending)-1]
		u.pending = u.pending[:len(u.pending)-1]
		if ev.radius <= 0 {
			continue
		}
		for i := range u.dots {
			d := &u.dots[i]
			away := d.Pos.Sub(ev.pos)
			dist := away.Len()
			if dist >= ev.radius || dist == 0 {
				continue
			}
			f := 1 - dist/ev.radius
			d.Dir = d.Dir.Add(away.Normalized().Scale(u.params.Kick * f * f))
		}
	}
}

func (u *Universe) step(d Dot, dt, w, h float32) Dot {
	speed := d.Dir.Len()
	if speed == 0 {
		return d
	}
	pos := d.Pos.Add(d.Dir.Scale(dt))
	pos.X = wrap(pos.X, w)
	pos.Y = wrap(pos.Y, h)

	next := speed*(1-u.params.Friction*dt) - u.params.Drag*dt
	dir := Vec2{}
	if next > 0 {
		dir = d.Dir.WithLen(next)
	}
	return Dot{Pos: pos, Dir: dir}
}

// wrap folds v into [0, max).
func wrap(v, max float32) float32 {
	if v >= 0 && v < max {
		return v
	}
	v = float32(math.Mod(float64(v), float64(max)))
	if v < 0 {
		v += max
	}
	if v >= max {
		v = 0
	}
	return v
}

func init() {
	core.Register("dots", func(w, h, n int, cfg map[string]string) core.Universe {
		return NewWithConfig(w, h, n, FromMap(cfg))
	})
}
