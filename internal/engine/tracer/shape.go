package tracer

import (
	"github.com/Faultbox/vectorscope/internal/engine/ampmod"
	"github.com/Faultbox/vectorscope/internal/engine/blanking"
	"github.com/Faultbox/vectorscope/internal/engine/phase"
	"github.com/Faultbox/vectorscope/internal/engine/projection"
	"github.com/Faultbox/vectorscope/pkg/geometry"
	vmath "github.com/Faultbox/vectorscope/pkg/math"
)

// Shape is the per-sample capability set of a tracer variant. Advance moves
// the pen, Project returns its scope position and IsBlanked the beam state
// for the current sample.
type Shape interface {
	Advance(sampleRate float32)
	Project() vmath.Vec2
	IsBlanked() bool
}

// pen is the state shared by both variants.
type pen struct {
	clock  phase.Clock
	freq   float32
	rot    vmath.Rotation
	camera projection.Camera
	window blanking.Window
	solid  geometry.Solid

	// Resolved at the last Advance.
	index int
	frac  float32
	point vmath.Vec3
	draw  bool
}

func (p *pen) advance(sampleRate float32) {
	p.clock.Advance(p.freq, sampleRate)
	p.index, p.frac = phase.Resolve(p.clock.Phase, p.solid.Len())
	a, b, draw := p.solid.Step(p.index)
	p.point = a.Lerp(b, p.frac)
	p.draw = draw
}

// polyShape draws a platonic solid with every edge visible.
type polyShape struct {
	pen
}

func (s *polyShape) Advance(sampleRate float32) {
	s.advance(sampleRate)
}

func (s *polyShape) Project() vmath.Vec2 {
	return s.camera.Project(s.rot.Apply(s.point))
}

func (s *polyShape) IsBlanked() bool {
	return s.window.Blanked(s.frac)
}

// cubeShape draws the segment cube with quantization and amplitude
// modulation. Hidden reposition segments are always dark.
type cubeShape struct {
	pen
	osc        ampmod.Oscillator
	resolution int
}

func (s *cubeShape) Advance(sampleRate float32) {
	s.advance(sampleRate)
	s.osc.Advance(s.osc.Frequency(s.freq), sampleRate)
}

func (s *cubeShape) Project() vmath.Vec2 {
	r := projection.Quantize(s.rot.Apply(s.point), s.resolution)
	return s.camera.Project(r).Scale(s.osc.Multiplier())
}

func (s *cubeShape) IsBlanked() bool {
	return !s.draw || s.window.Blanked(s.frac)
}
