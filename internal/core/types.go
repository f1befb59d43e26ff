package core

import (
	"errors"
	"sort"
)

// ErrReleased is the panic value raised when a released Universe is used.
var ErrReleased = errors.New("core: use of released universe")

// Size describes the dimensions of a simulation surface in pixels.
type Size struct {
	W int
	H int
}

// Universe is the handle a simulation exposes to the presentation layer.
//
// Dots and ImageData return borrowed views into buffers owned by the
// universe. A view is only valid until the next call to Tick, AddEvent,
// RenderImageData, Dots or Release; callers must fetch it again every frame.
type Universe interface {
	Size() Size
	// Tick advances the simulation by dt seconds.
	Tick(dt float32)
	// AddEvent queues a point perturbation applied on the next Tick.
	AddEvent(x, y, intensity float32)
	// Dots returns dot positions as float32 pairs: x0, y0, x1, y1, ...
	Dots() []float32
	// RenderImageData rasterizes the dots into the RGBA buffer.
	RenderImageData()
	// ImageData returns the RGBA buffer, exactly W*H*4 bytes.
	ImageData() []byte
	RemainingDots() int
	// Release frees the handle. It must not be used afterwards.
	Release()
}

// Factory constructs a Universe of the given size and dot count. cfg carries
// optional simulation-specific tunables and may be nil.
type Factory func(width, height, dots int, cfg map[string]string) Universe

var sims = map[string]Factory{}

// Register adds a universe factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available universe factories.
func Sims() map[string]Factory {
	return sims
}

// Names returns the registered universe names in sorted order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
