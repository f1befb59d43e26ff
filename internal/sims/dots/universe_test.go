package dots

import (
	"errors"
	"slices"
	"testing"

	"dots/internal/core"
)

func TestNewAllocatesBuffers(t *testing.T) {
	u := New(40, 30, 250)
	if got := len(u.ImageData()); got != 40*30*4 {
		t.Fatalf("image buffer = %d bytes, want %d", got, 40*30*4)
	}
	if got := len(u.Dots()); got != 500 {
		t.Fatalf("dots view = %d floats, want 500", got)
	}
	for i, d := range u.State() {
		if d.Pos.X < 0 || d.Pos.X >= 40 || d.Pos.Y < 0 || d.Pos.Y >= 30 {
			t.Fatalf("dot %d spawned outside the surface: %+v", i, d.Pos)
		}
		if d.Dir.Len() > DefaultConfig().Params.Speed+1e-3 {
			t.Fatalf("dot %d spawned too fast: %v", i, d.Dir.Len())
		}
	}
}

func TestSeedDeterministic(t *testing.T) {
	a := New(64, 64, 100)
	b := New(64, 64, 100)
	if !slices.Equal(a.State(), b.State()) {
		t.Fatal("same seed produced different spawns")
	}
	cfg := DefaultConfig()
	cfg.Seed = 7
	c := NewWithConfig(64, 64, 100, cfg)
	if slices.Equal(a.State(), c.State()) {
		t.Fatal("different seeds produced identical spawns")
	}
}

func TestPerlinSpawn(t *testing.T) {
	u := NewWithConfig(64, 64, 100, FromMap(map[string]string{"spawn": "perlin"}))
	if got := len(u.State()); got != 100 {
		t.Fatalf("perlin spawn produced %d dots, want 100", got)
	}
	for i, d := range u.State() {
		if d.Dir.Len() > DefaultConfig().Params.Speed+1e-3 {
			t.Fatalf("dot %d spawned too fast: %v", i, d.Dir.Len())
		}
	}
}

func TestZeroTickKeepsImage(t *testing.T) {
	u := New(32, 32, 200)
	u.AddEvent(16, 16, 10)
	u.RenderImageData()
	before := append([]byte(nil), u.ImageData()...)

	u.Tick(0)
	u.RenderImageData()

	if !slices.Equal(before, u.ImageData()) {
		t.Fatal("Tick(0) changed the rendered image")
	}
}

func TestRenderMarksDotPixels(t *testing.T) {
	u := New(8, 8, 0)
	u.dots = []Dot{{Pos: Vec2{2.7, 5.2}}, {Pos: Vec2{0, 0}}}
	u.RenderImageData()
	img := u.ImageData()

	opaque := 0
	for i := 3; i < len(img); i += 4 {
		if img[i] == 255 {
			opaque++
		}
	}
	if opaque != 2 {
		t.Fatalf("opaque pixels = %d, want 2", opaque)
	}
	if img[(5*8+2)*4+3] != 255 {
		t.Fatal("pixel (2,5) should be opaque")
	}

	u.dots = u.dots[:1]
	u.RenderImageData()
	if img[3] != 0 {
		t.Fatal("stale pixel (0,0) survived a re-render")
	}
}

func TestEventPushesNearbyDotsOnly(t *testing.T) {
	u := New(100, 100, 0)
	u.dots = []Dot{
		{Pos: Vec2{55, 50}},
		{Pos: Vec2{90, 90}},
		{Pos: Vec2{50, 50}},
	}
	u.AddEvent(50, 50, 20)
	u.Tick(0)

	near := u.dots[0].Dir
	if near.X <= 0 || near.Y != 0 {
		t.Fatalf("near dot should be pushed along +x, got %+v", near)
	}
	want := float32(50 * 0.75 * 0.75)
	if diff := near.X - want; diff > 1e-3 || diff < -1e-3 {
		t.Fatalf("kick = %v, want %v", near.X, want)
	}
	if u.dots[1].Dir != (Vec2{}) {
		t.Fatalf("far dot should be untouched, got %+v", u.dots[1].Dir)
	}
	if u.dots[2].Dir != (Vec2{}) {
		t.Fatalf("dot on the event point should be untouched, got %+v", u.dots[2].Dir)
	}
	if len(u.pending) != 0 {
		t.Fatal("events must be drained by Tick")
	}
}

func TestTickWrapsAndSlows(t *testing.T) {
	u := New(10, 10, 0)
	u.dots = []Dot{{Pos: Vec2{9, 5}, Dir: Vec2{4, 0}}}
	u.Tick(0.5)

	d := u.dots[0]
	if d.Pos.X < 0 || d.Pos.X >= 10 {
		t.Fatalf("x not wrapped: %v", d.Pos.X)
	}
	if diff := d.Pos.X - 1; diff > 1e-4 || diff < -1e-4 {
		t.Fatalf("x = %v, want 1", d.Pos.X)
	}
	want := float32(4*(1-0.35*0.5) - 0.1*0.5)
	if diff := d.Dir.Len() - want; diff > 1e-4 || diff < -1e-4 {
		t.Fatalf("speed = %v, want %v", d.Dir.Len(), want)
	}
}

func TestLargeTickStaysInBounds(t *testing.T) {
	u := New(50, 40, 500)
	u.AddEvent(25, 20, 100)
	u.Tick(10)
	for i, d := range u.State() {
		if d.Pos.X < 0 || d.Pos.X >= 50 || d.Pos.Y < 0 || d.Pos.Y >= 40 {
			t.Fatalf("dot %d escaped the surface: %+v", i, d.Pos)
		}
	}
	u.RenderImageData()
}

func TestRemainingDotsReachZero(t *testing.T) {
	u := New(64, 64, 300)
	start := u.RemainingDots()
	if start == 0 {
		t.Fatal("expected moving dots after spawn")
	}
	for i := 0; i < 200; i++ {
		u.Tick(0.5)
	}
	if got := u.RemainingDots(); got != 0 {
		t.Fatalf("remaining dots = %d after friction settled, want 0", got)
	}
}

func TestReleasedUniversePanics(t *testing.T) {
	u := New(8, 8, 4)
	u.Release()
	u.Release()
	if !u.Released() {
		t.Fatal("Released() = false after Release")
	}

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, core.ErrReleased) {
			t.Fatalf("recover() = %v, want core.ErrReleased", r)
		}
	}()
	u.Tick(0.1)
}

func TestRegistered(t *testing.T) {
	f, ok := core.Sims()["dots"]
	if !ok {
		t.Fatal("dots universe not registered")
	}
	u := f(12, 10, 5, map[string]string{"seed": "3"})
	if s := u.Size(); s.W != 12 || s.H != 10 {
		t.Fatalf("size = %+v, want 12x10", s)
	}
	u.Release()
}

func TestFromMapIgnoresBadValues(t *testing.T) {
	c := FromMap(map[string]string{"friction": "-1", "kick": "abc", "spawn": "spiral", "drag": "0.5"})
	def := DefaultConfig()
	if c.Params.Friction != def.Params.Friction || c.Params.Kick != def.Params.Kick || c.Spawn != def.Spawn {
		t.Fatalf("bad values should keep defaults, got %+v", c)
	}
	if c.Params.Drag != 0.5 {
		t.Fatalf("drag = %v, want 0.5", c.Params.Drag)
	}
}
