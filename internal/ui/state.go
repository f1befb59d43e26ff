package ui

// DotCounter holds the dot count the next reset will use.
type DotCounter struct {
	value int
	step  int
}

// NewDotCounter starts at value and moves by step, never below one.
func NewDotCounter(value, step int) *DotCounter {
	if step <= 0 {
		step = 1
	}
	c := &DotCounter{step: step}
	c.Set(value)
	return c
}

// Value returns the pending dot count.
func (c *DotCounter) Value() int { return c.value }

// Set replaces the pending count.
func (c *DotCounter) Set(v int) {
	if v < 1 {
		v = 1
	}
	c.value = v
}

// Adjust moves the count by direction steps and reports whether it changed.
func (c *DotCounter) Adjust(direction int) bool {
	prev := c.value
	c.Set(c.value + direction*c.step)
	return c.value != prev
}

// CanDecrease reports whether a decrement would change the count.
func (c *DotCounter) CanDecrease() bool { return c.value > 1 }

// ringTTL is the number of frames a click ring stays visible.
const ringTTL = 30

type ring struct {
	x, y, radius float32
	age          int
}

// Rings tracks fading click markers.
type Rings struct {
	items []ring
}

// Add starts a ring centred on (x, y).
func (r *Rings) Add(x, y, radius float32) {
	if radius <= 0 {
		return
	}
	r.items = append(r.items, ring{x: x, y: y, radius: radius})
}

// Step ages every ring by one frame and drops expired ones.
func (r *Rings) Step() {
	kept := r.items[:0]
	for _, it := range r.items {
		it.age++
		if it.age < ringTTL {
			kept = append(kept, it)
		}
	}
	r.items = kept
}

// Len returns the number of visible rings.
func (r *Rings) Len() int { return len(r.items) }

// Clear removes every ring.
func (r *Rings) Clear() { r.items = r.items[:0] }

// Each calls fn for every ring with its opacity in (0, 1].
func (r *Rings) Each(fn func(x, y, radius, alpha float32)) {
	for _, it := range r.items {
		fn(it.x, it.y, it.radius, 1-float32(it.age)/ringTTL)
	}
}
