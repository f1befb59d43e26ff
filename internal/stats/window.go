// Package stats keeps a rolling window of instantaneous frame rates.
package stats

import "fmt"

// DefaultCapacity is the number of frames kept in a Window.
const DefaultCapacity = 100

// Summary reports the state of a Window.
type Summary struct {
	Latest float64
	Mean   float64
	Min    float64
	Max    float64
	Count  int
}

// String renders the summary as a single status line.
func (s Summary) String() string {
	if s.Count == 0 {
		return "fps: --"
	}
	return fmt.Sprintf("fps: %.0f (mean %.0f, min %.0f, max %.0f)", s.Latest, s.Mean, s.Min, s.Max)
}

// Window is a fixed-capacity ring of frame rates. The zero value is not
// usable; call NewWindow.
type Window struct {
	values []float64
	next   int
	full   bool
	latest float64
}

// NewWindow returns a window holding at most capacity frame rates.
func NewWindow(capacity int) *Window {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Window{values: make([]float64, 0, capacity)}
}

// ObserveMillis records the frame rate 1000/deltaMillis. Non-positive
// deltas carry no rate and are ignored.
func (w *Window) ObserveMillis(deltaMillis float64) {
	if deltaMillis <= 0 {
		return
	}
	fps := 1000 / deltaMillis
	w.latest = fps
	if len(w.values) < cap(w.values) {
		w.values = append(w.values, fps)
		return
	}
	w.values[w.next] = fps
	w.next = (w.next + 1) % len(w.values)
}

// Len returns the number of frame rates held.
func (w *Window) Len() int { return len(w.values) }

// Values returns the held frame rates, oldest first.
func (w *Window) Values() []float64 {
	out := make([]float64, 0, len(w.values))
	out = append(out, w.values[w.next:]...)
	return append(out, w.values[:w.next]...)
}

// Summary computes latest, mean, min and max over the window.
func (w *Window) Summary() Summary {
	if len(w.values) == 0 {
		return Summary{}
	}
	s := Summary{Latest: w.latest, Min: w.values[0], Max: w.values[0], Count: len(w.values)}
	sum := 0.0
	for _, v := range w.values {
		sum += v
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
	}
	s.Mean = sum / float64(len(w.values))
	// Rounding in the sum can push the mean a hair outside [min, max].
	if s.Mean < s.Min {
		s.Mean = s.Min
	}
	if s.Mean > s.Max {
		s.Mean = s.Max
	}
	return s
}

// Reset empties the window.
func (w *Window) Reset() {
	w.values = w.values[:0]
	w.next = 0
	w.latest = 0
}
