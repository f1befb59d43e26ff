package rng

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// New creates a deterministic RNG using the provided seed.
func New(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Float32 returns a random float32 in [0, 1).
func (r *RNG) Float32() float32 {
	return r.r.Float32()
}

// Range returns a random float32 in [0, max).
func (r *RNG) Range(max float32) float32 {
	if max <= 0 {
		return 0
	}
	return r.r.Float32() * max
}

// Signed returns a random float32 in [-1, 1).
func (r *RNG) Signed() float32 {
	return r.r.Float32()*2 - 1
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
