package core

import "time"

// FrameClock measures the wall time elapsed between successive frames.
// There is no fixed timestep: each Delta is handed to the universe as-is.
type FrameClock struct {
	now  func() time.Time
	last time.Time
}

// NewFrameClock constructs a clock backed by time.Now. The first Delta is
// measured from the moment of construction.
func NewFrameClock() *FrameClock {
	return NewFrameClockWithSource(time.Now)
}

// NewFrameClockWithSource constructs a clock reading time from now.
func NewFrameClockWithSource(now func() time.Time) *FrameClock {
	if now == nil {
		now = time.Now
	}
	return &FrameClock{now: now, last: now()}
}

// Delta returns the time since the previous call (or since construction)
// and starts a new interval.
func (c *FrameClock) Delta() time.Duration {
	now := c.now()
	delta := now.Sub(c.last)
	c.last = now
	if delta < 0 {
		return 0
	}
	return delta
}

// Restart begins a new interval without reporting the elapsed time.
func (c *FrameClock) Restart() {
	c.last = c.now()
}

// FixedSource returns a time source that advances by step on every read.
// Useful for deterministic, headless runs.
func FixedSource(step time.Duration) func() time.Time {
	t := time.Unix(0, 0)
	first := true
	return func() time.Time {
		if first {
			first = false
			return t
		}
		t = t.Add(step)
		return t
	}
}
