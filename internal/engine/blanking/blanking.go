// Package blanking decides when the beam is switched off around edge
// boundaries, hiding the jump from one edge to the next.
package blanking

import "github.com/Faultbox/vectorscope/internal/engine/phase"

// Policy selects which frequency the blank window is referenced to.
type Policy int

const (
	// LiveReference scales the window with the live draw frequency, so the
	// blanked share of each edge stays constant as speed changes.
	LiveReference Policy = iota

	// FixedReference pins the reference to FixedReferenceHz, so the blanked
	// path length stays constant as the drawing slows down.
	FixedReference
)

// FixedReferenceHz is the reference used by FixedReference. It equals the
// default Frequency parameter.
const FixedReferenceHz = 50

// MaxBlank is the largest blank fraction. At 0.5 the whole edge is dark.
const MaxBlank = 0.5

// Limits of the window and shift parameters in microseconds.
const (
	MaxWindowUs = 1000
	MaxShiftUs  = 1000
)

// Reference returns the frequency the policy measures windows against.
func (p Policy) Reference(liveHz float32) float32 {
	if p == FixedReference {
		return FixedReferenceHz
	}
	return liveHz
}

// String returns the policy name.
func (p Policy) String() string {
	if p == FixedReference {
		return "fixed"
	}
	return "live"
}

// Fraction converts a duration in microseconds into a fraction of one edge,
// given the reference frequency and the traversal length. The sign is kept.
func Fraction(us, refHz float32, length int) float32 {
	return us * 1e-6 * refHz * float32(length)
}

// Window is a symmetric blank interval around every edge boundary, in edge
// fraction units.
type Window struct {
	Blank float32
	Shift float32
}

// NewWindow computes the window for the given settings. Blank is clamped
// to [0, MaxBlank].
func NewWindow(p Policy, windowUs, shiftUs, liveHz float32, length int) Window {
	ref := p.Reference(liveHz)
	blank := Fraction(windowUs, ref, length)
	if blank > MaxBlank {
		blank = MaxBlank
	}
	if !(blank > 0) {
		blank = 0
	}
	return Window{
		Blank: blank,
		Shift: Fraction(shiftUs, ref, length),
	}
}

// Blanked reports whether the beam is off at the given position along the
// current edge.
func (w Window) Blanked(fraction float32) bool {
	if w.Blank <= 0 {
		return false
	}
	f := phase.Wrap01(fraction + w.Shift)
	return f < w.Blank || f > 1-w.Blank
}
