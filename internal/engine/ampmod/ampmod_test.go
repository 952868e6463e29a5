package ampmod

import (
	"math"
	"testing"
)

func TestCourseFactor(t *testing.T) {
	tests := []struct {
		idx  int
		want float32
	}{
		{0, 0.25},
		{1, 1.0 / 3.0},
		{2, 0.5},
		{3, 1},
		{4, 2},
		{5, 3},
		{20, 18},
		{34, 32},
	}
	for _, tt := range tests {
		if got := CourseFactor(tt.idx); got != tt.want {
			t.Errorf("CourseFactor(%d) = %v, want %v", tt.idx, got, tt.want)
		}
	}
}

func TestWaveformEval(t *testing.T) {
	tests := []struct {
		w     Waveform
		phase float32
		want  float32
	}{
		{Square, 0, 1},
		{Square, 0.49, 1},
		{Square, 0.5, -1},
		{Square, 0.99, -1},
		{Triangle, 0, -1},
		{Triangle, 0.25, 0},
		{Triangle, 0.5, 1},
		{Triangle, 0.75, 0},
		{Saw, 0, 1},
		{Saw, 0.5, 0},
		{Ramp, 0, -1},
		{Ramp, 0.5, 0},
		{Sine, 0, 0},
		{Sine, 0.25, 1},
		{Sine, 0.75, -1},
		{Square, -0.25, -1}, // wraps to 0.75
		{Ramp, 1.5, 0},      // wraps to 0.5
		{Waveform(9), 0.25, 1},
	}
	for _, tt := range tests {
		got := tt.w.Eval(tt.phase)
		if math.Abs(float64(got-tt.want)) > 1e-5 {
			t.Errorf("%v.Eval(%v) = %v, want %v", tt.w, tt.phase, got, tt.want)
		}
	}
}

func TestWaveformRange(t *testing.T) {
	for w := Square; w <= Sine; w++ {
		for i := -1000; i < 2000; i++ {
			v := w.Eval(float32(i) / 997)
			if v < -1 || v > 1 {
				t.Fatalf("%v.Eval(%v) = %v out of [-1, 1]", w, float32(i)/997, v)
			}
		}
	}
}

func TestFrequency(t *testing.T) {
	o := DefaultOscillator()
	if got := o.Frequency(50); got != 100 {
		t.Errorf("default Frequency(50) = %v, want 100", got)
	}

	o.Course = 3
	o.Fine = 15
	if got := o.Frequency(50); math.Abs(float64(got-51.5)) > 1e-5 {
		t.Errorf("Frequency(50) = %v, want 51.5", got)
	}

	o.Course = 0
	o.Fine = -100
	if got := o.Frequency(1); got != 0 {
		t.Errorf("Frequency(1) with negative fine = %v, want 0", got)
	}
}

func TestAdvanceWraps(t *testing.T) {
	o := Oscillator{Phase: 0.9}
	o.Advance(24000, 48000)
	if math.Abs(float64(o.Phase-0.4)) > 1e-6 {
		t.Errorf("Phase = %v, want 0.4", o.Phase)
	}

	// More than one cycle per sample still lands in [0, 1).
	o.Advance(100000, 48000)
	if o.Phase < 0 || o.Phase >= 1 {
		t.Errorf("Phase = %v out of [0, 1)", o.Phase)
	}
}

func TestSquareFullDepthMultiplier(t *testing.T) {
	o := Oscillator{Depth: 1, Course: 3, Wave: Square}

	const fs = 48000
	freq := o.Frequency(50)
	lo, hi := 0, 0
	for i := 0; i < 960; i++ {
		o.Advance(freq, fs)
		m := o.Multiplier()
		switch m {
		case 0:
			lo++
		case 2:
			hi++
		default:
			t.Fatalf("sample %d: multiplier %v, want 0 or 2", i, m)
		}
	}
	// One draw period: half high, half low.
	if lo < 470 || hi < 470 {
		t.Errorf("lo = %d, hi = %d, want about 480 each", lo, hi)
	}
}

func TestZeroDepthIsUnity(t *testing.T) {
	o := DefaultOscillator()
	for i := 0; i < 100; i++ {
		o.Advance(73, 48000)
		if m := o.Multiplier(); m != 1 {
			t.Fatalf("Multiplier() = %v with zero depth", m)
		}
	}
}
