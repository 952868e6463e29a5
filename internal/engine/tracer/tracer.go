// Package tracer turns a solid's traversal into three per-sample signals
// (X, Y and beam intensity) that make a vector display draw the rotating
// wireframe as one continuous pen path.
//
// An Instance is owned by a single goroutine. Parameter changes must be
// applied between calls to Step, never during one.
package tracer

import (
	"github.com/Faultbox/vectorscope/internal/engine/ampmod"
	"github.com/Faultbox/vectorscope/internal/engine/blanking"
	"github.com/Faultbox/vectorscope/internal/engine/params"
	"github.com/Faultbox/vectorscope/internal/engine/phase"
	"github.com/Faultbox/vectorscope/internal/engine/projection"
	"github.com/Faultbox/vectorscope/pkg/geometry"
	vmath "github.com/Faultbox/vectorscope/pkg/math"
)

// Intensity levels in volts.
const (
	BeamOn  = 5.0
	BeamOff = 0.0
)

// Instance is one running tracer.
type Instance struct {
	kind  Kind
	table *params.Table
	arena *geometry.Arena
	raw   []int16

	shape Shape
	pen   *pen
	cube  *cubeShape // nil for KindPolyhedra

	blankUs float32
	shiftUs float32

	xBus, yBus, iBus int
}

// New creates an instance of the given kind drawing from arena, which must
// hold the built-in solids in geometry.Builtin order. A nil arena selects
// geometry.Default. Every parameter starts at its default value.
func New(kind Kind, arena *geometry.Arena) *Instance {
	if arena == nil {
		arena = geometry.Default()
	}
	in := &Instance{
		kind:  kind,
		table: kind.Params(),
		arena: arena,
	}

	switch kind {
	case KindCube:
		c := &cubeShape{osc: ampmod.DefaultOscillator()}
		c.solid = arena.Solid(geometry.CubeSegmentsID)
		in.shape, in.pen, in.cube = c, &c.pen, c
	default:
		p := &polyShape{}
		p.solid = arena.Solid(geometry.TetrahedronID)
		in.shape, in.pen = p, &p.pen
	}
	in.pen.rot = vmath.IdentityRotation()
	in.pen.camera = projection.DefaultCamera()

	in.raw = in.table.Defaults()
	for i, v := range in.raw {
		in.SetParameter(i, v)
	}
	in.Reset()
	return in
}

// Kind returns the instance's variant.
func (in *Instance) Kind() Kind {
	return in.kind
}

// Params returns the parameter table of the instance.
func (in *Instance) Params() *params.Table {
	return in.table
}

// Parameter returns the current raw value of parameter idx.
func (in *Instance) Parameter(idx int) int16 {
	if idx < 0 || idx >= len(in.raw) {
		return 0
	}
	return in.raw[idx]
}

// Solid returns the solid currently being drawn.
func (in *Instance) Solid() geometry.Solid {
	return in.pen.solid
}

// Window returns the current blank window.
func (in *Instance) Window() blanking.Window {
	return in.pen.window
}

// Camera returns the current projection settings.
func (in *Instance) Camera() projection.Camera {
	return in.pen.camera
}

// Frequency returns the draw frequency in Hz.
func (in *Instance) Frequency() float32 {
	return in.pen.freq
}

// Phase returns the traversal phase in [0, 1).
func (in *Instance) Phase() float32 {
	return in.pen.clock.Phase
}

// Position returns the traversal index and edge fraction resolved at the
// last sample.
func (in *Instance) Position() (int, float32) {
	return in.pen.index, in.pen.frac
}

// Buses returns the X, Y and intensity output bus indices.
func (in *Instance) Buses() (x, y, intensity int) {
	return in.xBus, in.yBus, in.iBus
}

// Reset returns the traversal and modulator phases to zero.
func (in *Instance) Reset() {
	in.pen.clock.Reset()
	in.pen.index, in.pen.frac = 0, 0
	if in.cube != nil {
		in.cube.osc.Phase = 0
	}
}

// SetParameter applies a raw parameter value, clamped to the descriptor's
// range. Unknown indices are ignored. Trigonometry and derived windows are
// computed here so the sample loop only multiplies.
func (in *Instance) SetParameter(idx int, raw int16) {
	v, ok := in.table.Clamp(idx, int(raw))
	if !ok {
		return
	}
	in.raw[idx] = v
	p := in.pen

	switch idx {
	case params.Frequency:
		p.freq = phase.ClampFrequency(float32(v))
		in.updateWindow()
	case params.RotX:
		p.rot.SetX(float32(v))
	case params.RotY:
		p.rot.SetY(float32(v))
	case params.RotZ:
		p.rot.SetZ(float32(v))
	case params.Distance:
		p.camera.Distance = projection.DistanceFromRaw(int(v))
	case params.Projection:
		if v != 0 {
			p.camera.Mode = projection.Perspective
		} else {
			p.camera.Mode = projection.Orthographic
		}
	case params.Polarity:
		if v != 0 {
			p.camera.Polarity = projection.Inverted
		} else {
			p.camera.Polarity = projection.Normal
		}
	case params.XOut:
		in.xBus = int(v)
	case params.YOut:
		in.yBus = int(v)
	case params.IntOut:
		in.iBus = int(v)
	case params.BlankWindow:
		in.blankUs = float32(v)
		in.updateWindow()
	case params.BlankPhase:
		in.shiftUs = float32(v)
		in.updateWindow()
	default:
		if in.cube != nil {
			in.setCubeParameter(idx, v)
		} else {
			in.setPolyParameter(idx, v)
		}
	}
}

func (in *Instance) setPolyParameter(idx int, v int16) {
	if idx != params.Solid {
		return
	}
	n := int(v) / 100
	if n >= geometry.PolyhedraCount {
		n = geometry.PolyhedraCount - 1
	}
	in.pen.solid = in.arena.Solid(geometry.TetrahedronID + geometry.SolidID(n))
	in.updateWindow()
}

func (in *Instance) setCubeParameter(idx int, v int16) {
	osc := &in.cube.osc
	switch idx {
	case params.Resolution:
		in.cube.resolution = int(v)
	case params.AmpMod:
		osc.Depth = float32(v) / 127
	case params.AmpCorse:
		osc.Course = int(v)
	case params.AmpFine:
		osc.Fine = int(v)
	case params.AmpWave:
		osc.Wave = ampmod.Waveform(v)
	case params.AmpPhase:
		osc.PhaseOffset = float32(v) / 360
	}
}

func (in *Instance) updateWindow() {
	p := in.pen
	p.window = blanking.NewWindow(in.kind.BlankPolicy(), in.blankUs, in.shiftUs, p.freq, p.solid.Len())
}

// Sample advances the pen by one sample and returns the scope outputs.
func (in *Instance) Sample(sampleRate float32) (x, y, intensity float32) {
	s := in.shape
	s.Advance(sampleRate)
	out := s.Project()
	intensity = BeamOn
	if s.IsBlanked() {
		intensity = BeamOff
	}
	return out.X, out.Y, intensity
}

// Step renders numFrames samples into the host bus buffer. buses holds
// consecutive blocks of numFrames samples, one block per bus; outputs go to
// the blocks selected by the routing parameters. Bus indices beyond the
// buffer are clamped to its last bus. Step does not allocate.
func (in *Instance) Step(buses []float32, numFrames int, sampleRate float32) {
	if numFrames <= 0 {
		return
	}
	n := len(buses) / numFrames
	if n == 0 {
		return
	}
	bx := buses[busOffset(in.xBus, n, numFrames):][:numFrames]
	by := buses[busOffset(in.yBus, n, numFrames):][:numFrames]
	bi := buses[busOffset(in.iBus, n, numFrames):][:numFrames]

	for i := 0; i < numFrames; i++ {
		bx[i], by[i], bi[i] = in.Sample(sampleRate)
	}
}

func busOffset(bus, n, numFrames int) int {
	if bus >= n {
		bus = n - 1
	}
	if bus < 0 {
		bus = 0
	}
	return bus * numFrames
}
