// Package ampmod implements the auxiliary oscillator that scales the cube
// tracer's X/Y output.
package ampmod

import "math"

// Waveform selects the oscillator shape.
type Waveform int

const (
	Square Waveform = iota
	Triangle
	Saw
	Ramp
	Sine
)

var waveformNames = [...]string{"Square", "Triangle", "Saw", "Ramp", "Sine"}

// String returns the waveform name.
func (w Waveform) String() string {
	if w < 0 || int(w) >= len(waveformNames) {
		return "Sine"
	}
	return waveformNames[w]
}

// Eval returns the waveform value in [-1, 1] at phase. Phase is wrapped
// with phase - floor(phase), so negative phases are safe. Unknown
// waveforms evaluate as Sine.
func (w Waveform) Eval(phase float32) float32 {
	phase -= float32(math.Floor(float64(phase)))
	switch w {
	case Square:
		if phase < 0.5 {
			return 1
		}
		return -1
	case Triangle:
		if phase < 0.5 {
			return 4*phase - 1
		}
		return 3 - 4*phase
	case Saw:
		return 1 - 2*phase
	case Ramp:
		return 2*phase - 1
	default:
		return float32(math.Sin(2 * math.Pi * float64(phase)))
	}
}

// MaxCourse is the largest course index (x32).
const MaxCourse = 34

// CourseFactor maps a course index onto a frequency ratio: 0..2 are 1/4,
// 1/3 and 1/2, 3 is unity, and n >= 4 is the integer multiple n-2.
func CourseFactor(idx int) float32 {
	switch {
	case idx <= 0:
		return 0.25
	case idx == 1:
		return 1.0 / 3.0
	case idx == 2:
		return 0.5
	case idx == 3:
		return 1
	default:
		return float32(idx - 2)
	}
}

// Oscillator is the modulator state of one cube tracer instance.
type Oscillator struct {
	// Depth is the modulation depth in [0, 1].
	Depth float32
	// Course is the course ratio index, see CourseFactor.
	Course int
	// Fine is an additive offset in tenths of a Hz.
	Fine int
	Wave Waveform
	// PhaseOffset is added to the running phase, in cycles.
	PhaseOffset float32
	// Phase is the running phase in [0, 1).
	Phase float32
}

// DefaultOscillator returns the modulator of a fresh instance: depth zero,
// course x2, sine.
func DefaultOscillator() Oscillator {
	return Oscillator{Course: 4, Wave: Sine}
}

// Frequency returns the modulator rate for a draw frequency of base Hz,
// clamped to be non-negative.
func (o *Oscillator) Frequency(base float32) float32 {
	f := base*CourseFactor(o.Course) + float32(o.Fine)*0.1
	if !(f > 0) {
		return 0
	}
	return f
}

// Advance moves the running phase by freq/sampleRate.
func (o *Oscillator) Advance(freq, sampleRate float32) {
	o.Phase += freq / sampleRate
	if o.Phase >= 1 {
		o.Phase -= float32(math.Floor(float64(o.Phase)))
	}
}

// Multiplier returns the amplitude factor 1 + Depth*wave.
func (o *Oscillator) Multiplier() float32 {
	return 1 + o.Depth*o.Wave.Eval(o.Phase+o.PhaseOffset)
}
