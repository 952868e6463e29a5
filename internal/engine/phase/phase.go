// Package phase implements the tracer's phase accumulator and the mapping
// from phase to a position along the traversal order.
package phase

import "math"

// Frequency limits in Hz.
const (
	MinFrequency = 1
	MaxFrequency = 1000
)

// ClampFrequency clamps hz to [MinFrequency, MaxFrequency].
func ClampFrequency(hz float32) float32 {
	if hz < MinFrequency {
		return MinFrequency
	}
	if hz > MaxFrequency {
		return MaxFrequency
	}
	return hz
}

// Clock is a phase accumulator in [0, 1). One full turn draws the whole
// traversal once.
type Clock struct {
	Phase float32
}

// Advance moves the phase by freq/sampleRate. The wrap subtracts 1 instead
// of taking a modulo so a small overshoot carries into the next cycle.
func (c *Clock) Advance(freq, sampleRate float32) {
	c.Phase += freq / sampleRate
	if c.Phase >= 1 {
		c.Phase -= 1
	}
}

// Reset puts the clock back to phase zero.
func (c *Clock) Reset() {
	c.Phase = 0
}

// Wrap01 wraps x into [0, 1). Negative zero, NaN and a rounding result of
// exactly 1 all map to 0.
func Wrap01(x float32) float32 {
	w := x - float32(math.Floor(float64(x)))
	if !(w > 0 && w < 1) {
		return 0
	}
	return w
}

// Resolve maps phase to an index into a traversal of the given length and
// the fractional position along that edge. Exact integer boundaries resolve
// to the lower index; the index is clamped so phase values at or past 1
// still land on the last edge.
func Resolve(phase float32, length int) (int, float32) {
	pos := phase * float32(length)
	if !(pos >= 0) {
		return 0, 0
	}
	idx := int(math.Floor(float64(pos)))
	if idx >= length {
		idx = length - 1
	}
	frac := pos - float32(idx)
	if !(frac >= 0) {
		frac = 0
	}
	if frac >= 1 {
		frac = math.Nextafter32(1, 0)
	}
	return idx, frac
}
