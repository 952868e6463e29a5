package tracer

import (
	"math"
	"testing"

	"github.com/Faultbox/vectorscope/internal/engine/params"
	"github.com/Faultbox/vectorscope/internal/engine/phase"
	"github.com/Faultbox/vectorscope/internal/engine/projection"
	"github.com/Faultbox/vectorscope/pkg/geometry"
)

const sampleRate = 48000

func near(a, b, tol float32) bool {
	return math.Abs(float64(a-b)) <= float64(tol)
}

func octahedron(t *testing.T) *Instance {
	t.Helper()
	in := New(KindPolyhedra, nil)
	in.SetParameter(params.Solid, 200)
	in.SetParameter(params.Projection, 0)
	in.SetParameter(params.BlankWindow, 0)
	if in.Solid().Name() != "Octahedron" {
		t.Fatalf("Solid() = %s, want Octahedron", in.Solid().Name())
	}
	return in
}

func TestDefaults(t *testing.T) {
	in := New(KindCube, nil)

	if in.Frequency() != 50 {
		t.Errorf("Frequency() = %v, want 50", in.Frequency())
	}
	cam := in.Camera()
	if cam.Mode != projection.Perspective || cam.Polarity != projection.Normal || !near(cam.Distance, 5, 1e-6) {
		t.Errorf("Camera() = %+v, want perspective, normal, 5", cam)
	}
	if x, y, i := in.Buses(); x != 12 || y != 13 || i != 14 {
		t.Errorf("Buses() = %d, %d, %d, want 12, 13, 14", x, y, i)
	}
	if in.Solid().Len() != 16 {
		t.Errorf("cube Solid().Len() = %d, want 16", in.Solid().Len())
	}
	if in.Phase() != 0 {
		t.Errorf("Phase() = %v, want 0", in.Phase())
	}

	p := New(KindPolyhedra, nil)
	if p.Solid().Name() != "Tetrahedron" {
		t.Errorf("polyhedra default solid = %s, want Tetrahedron", p.Solid().Name())
	}
}

func TestSolidSelector(t *testing.T) {
	in := New(KindPolyhedra, nil)

	tests := []struct {
		raw  int16
		want string
	}{
		{0, "Tetrahedron"},
		{99, "Tetrahedron"},
		{100, "Hexahedron"},
		{250, "Octahedron"},
		{300, "Dodecahedron"},
		{499, "Icosahedron"},
		{1000, "Icosahedron"},
		{-5, "Tetrahedron"},
	}
	for _, tt := range tests {
		in.SetParameter(params.Solid, tt.raw)
		if got := in.Solid().Name(); got != tt.want {
			t.Errorf("Solid raw %d = %s, want %s", tt.raw, got, tt.want)
		}
	}
}

func TestOctahedronOrthographicCycle(t *testing.T) {
	in := octahedron(t)
	s := in.Solid()

	var clock phase.Clock
	visits := make([]int, s.Len())
	last := -1
	for i := 0; i < 960; i++ {
		x, y, intensity := in.Sample(sampleRate)
		if intensity != BeamOn {
			t.Fatalf("sample %d: intensity %v, want %v", i, intensity, BeamOn)
		}

		clock.Advance(50, sampleRate)
		idx, frac := phase.Resolve(clock.Phase, s.Len())
		a, b, _ := s.Step(idx)
		p := a.Lerp(b, frac)
		if !near(x, 5*p.X, 1e-4) || !near(y, 5*p.Y, 1e-4) {
			t.Fatalf("sample %d: (%v, %v), want (%v, %v)", i, x, y, 5*p.X, 5*p.Y)
		}

		got, _ := in.Position()
		if got != idx {
			t.Fatalf("sample %d: Position() = %d, want %d", i, got, idx)
		}
		if got != last {
			if got < last && !(last == s.Len()-1 && got == 0) {
				t.Fatalf("sample %d: edge went back from %d to %d", i, last, got)
			}
			last = got
		}
		visits[got]++
	}

	for e, n := range visits {
		// 960 samples over 12 edges.
		if n < 79 || n > 81 {
			t.Errorf("edge %d drawn for %d samples, want 80", e, n)
		}
	}
}

func TestIdentityRotationIsOrthographicOfRawPoint(t *testing.T) {
	in := New(KindPolyhedra, nil)
	in.SetParameter(params.Solid, 400)
	in.SetParameter(params.Projection, 0)
	s := in.Solid()

	for i := 0; i < 2000; i++ {
		x, y, _ := in.Sample(sampleRate)
		idx, frac := in.Position()
		a, b, _ := s.Step(idx)
		p := a.Lerp(b, frac)
		if x != 5*p.X || y != 5*p.Y {
			t.Fatalf("sample %d: (%v, %v), want (%v, %v)", i, x, y, 5*p.X, 5*p.Y)
		}
	}
}

func TestPeriodicOutput(t *testing.T) {
	in := New(KindPolyhedra, nil)
	in.SetParameter(params.Solid, 200)
	in.SetParameter(params.RotX, 30)
	in.SetParameter(params.RotY, 45)

	first := make([][2]float32, 960)
	for i := range first {
		x, y, _ := in.Sample(sampleRate)
		first[i] = [2]float32{x, y}
	}
	// The octahedron path is continuous, so float drift in the phase only
	// moves the pen by a fraction of a sample.
	mismatch := 0
	for i := 0; i < 960; i++ {
		x, y, _ := in.Sample(sampleRate)
		if !near(x, first[i][0], 0.05) || !near(y, first[i][1], 0.05) {
			mismatch++
		}
	}
	if mismatch > 2 {
		t.Errorf("%d of 960 samples differ between consecutive cycles", mismatch)
	}
}

func TestBlankWindowScalesWithLiveFrequency(t *testing.T) {
	in := octahedron(t)
	in.SetParameter(params.BlankWindow, 500)

	// 500 us * 50 Hz * 12 edges.
	if w := in.Window(); !near(w.Blank, 0.3, 1e-5) {
		t.Errorf("Window().Blank = %v, want 0.3", w.Blank)
	}

	in.SetParameter(params.Frequency, 25)
	if w := in.Window(); !near(w.Blank, 0.15, 1e-5) {
		t.Errorf("Window().Blank at 25 Hz = %v, want 0.15", w.Blank)
	}

	in.SetParameter(params.Frequency, 1000)
	if w := in.Window(); w.Blank != 0.5 {
		t.Errorf("Window().Blank at 1000 Hz = %v, want 0.5", w.Blank)
	}

	// Changing the solid changes the traversal length.
	in.SetParameter(params.Frequency, 50)
	in.SetParameter(params.BlankWindow, 100)
	in.SetParameter(params.Solid, 0)
	if w := in.Window(); !near(w.Blank, 0.03, 1e-5) {
		t.Errorf("tetrahedron Window().Blank = %v, want 0.03", w.Blank)
	}
}

func TestCubeBlankWindowIgnoresFrequency(t *testing.T) {
	in := New(KindCube, nil)
	in.SetParameter(params.BlankWindow, 100)
	want := in.Window()
	// 100 us * 50 Hz * 16 segments.
	if !near(want.Blank, 0.08, 1e-5) {
		t.Errorf("Window().Blank = %v, want 0.08", want.Blank)
	}

	for _, f := range []int16{1, 10, 333, 1000} {
		in.SetParameter(params.Frequency, f)
		if got := in.Window(); got != want {
			t.Errorf("Window() at %d Hz = %v, want %v", f, got, want)
		}
	}
}

func TestCubeHiddenSegmentsAreDark(t *testing.T) {
	in := New(KindCube, nil)
	in.SetParameter(params.BlankWindow, 0)
	s := in.Solid()

	for i := 0; i < 960; i++ {
		_, _, intensity := in.Sample(sampleRate)
		idx, _ := in.Position()
		_, draw := s.EdgeAt(idx)
		want := float32(BeamOn)
		if !draw {
			want = BeamOff
		}
		if intensity != want {
			t.Fatalf("sample %d on segment %d: intensity %v, want %v", i, idx, intensity, want)
		}
	}
}

func TestBlankingDarkensBoundaries(t *testing.T) {
	in := octahedron(t)
	in.SetParameter(params.BlankWindow, 100) // 0.06 of each edge

	for i := 0; i < 960; i++ {
		_, _, intensity := in.Sample(sampleRate)
		_, frac := in.Position()
		blanked := frac < 0.06 || frac > 0.94
		inside := frac > 0.065 && frac < 0.935
		if inside && intensity != BeamOn {
			t.Fatalf("sample %d at fraction %v: dark, want lit", i, frac)
		}
		if blanked && frac < 0.055 && intensity != BeamOff {
			t.Fatalf("sample %d at fraction %v: lit, want dark", i, frac)
		}
	}
}

func TestCubeSquareModulation(t *testing.T) {
	base := New(KindCube, nil)
	mod := New(KindCube, nil)
	for _, in := range []*Instance{base, mod} {
		in.SetParameter(params.Projection, 0)
		in.SetParameter(params.AmpWave, 0)
		in.SetParameter(params.AmpCorse, 3)
		in.SetParameter(params.AmpFine, 0)
		in.SetParameter(params.RotX, 20)
		in.SetParameter(params.RotY, 35)
	}
	mod.SetParameter(params.AmpMod, 127)

	changes := 0
	prev := float32(-1)
	for i := 0; i < 960; i++ {
		bx, by, _ := base.Sample(sampleRate)
		mx, my, _ := mod.Sample(sampleRate)

		var ratio float32
		switch {
		case bx != 0:
			ratio = mx / bx
		case by != 0:
			ratio = my / by
		default:
			continue
		}
		if !near(ratio, 0, 1e-4) && !near(ratio, 2, 1e-4) {
			t.Fatalf("sample %d: multiplier %v, want 0 or 2", i, ratio)
		}
		r := float32(0)
		if ratio > 1 {
			r = 2
		}
		if prev >= 0 && r != prev {
			changes++
		}
		prev = r
	}
	// One period of the draw frequency: one switch from 2 to 0 in the middle,
	// possibly one more at the wrap.
	if changes < 1 || changes > 2 {
		t.Errorf("multiplier switched %d times in one draw period, want 1 or 2", changes)
	}
}

func TestQuantizeSnapsOutput(t *testing.T) {
	in := New(KindCube, nil)
	in.SetParameter(params.Projection, 0)
	in.SetParameter(params.Resolution, 2)

	for i := 0; i < 960; i++ {
		x, y, _ := in.Sample(sampleRate)
		for _, v := range []float32{x, y} {
			if !near(v, -5, 1e-4) && !near(v, 0, 1e-4) && !near(v, 5, 1e-4) {
				t.Fatalf("sample %d: %v not on the 3-level grid", i, v)
			}
		}
	}
}

func TestOutputsFinite(t *testing.T) {
	for _, kind := range []Kind{KindPolyhedra, KindCube} {
		in := New(kind, nil)
		in.SetParameter(params.Distance, 1)
		in.SetParameter(params.Frequency, 1000)
		in.SetParameter(params.RotX, 77)
		in.SetParameter(params.Polarity, 1)
		if kind == KindPolyhedra {
			in.SetParameter(params.Solid, 499)
		} else {
			in.SetParameter(params.AmpMod, 127)
			in.SetParameter(params.AmpCorse, 34)
			in.SetParameter(params.AmpFine, -100)
		}
		for i := 0; i < 48000; i++ {
			x, y, _ := in.Sample(sampleRate)
			if math.IsNaN(float64(x)) || math.IsInf(float64(x), 0) ||
				math.IsNaN(float64(y)) || math.IsInf(float64(y), 0) {
				t.Fatalf("%v sample %d: (%v, %v)", kind, i, x, y)
			}
		}
	}
}

func TestStepRouting(t *testing.T) {
	const frames = 64
	buses := make([]float32, params.NumBuses*frames)
	for i := range buses {
		buses[i] = -99
	}

	in := octahedron(t)
	in.SetParameter(params.XOut, 0)
	in.SetParameter(params.YOut, 3)
	in.SetParameter(params.IntOut, 27)

	ref := octahedron(t)
	ref.SetParameter(params.XOut, 0)

	in.Step(buses, frames, sampleRate)
	for i := 0; i < frames; i++ {
		x, y, intensity := ref.Sample(sampleRate)
		if buses[i] != x || buses[3*frames+i] != y || buses[27*frames+i] != intensity {
			t.Fatalf("frame %d: got (%v, %v, %v), want (%v, %v, %v)",
				i, buses[i], buses[3*frames+i], buses[27*frames+i], x, y, intensity)
		}
	}
	// Untouched bus.
	if buses[5*frames] != -99 {
		t.Error("Step wrote to an unrouted bus")
	}
}

func TestStepClampsBusToBuffer(t *testing.T) {
	const frames = 8
	buses := make([]float32, 2*frames)
	in := New(KindPolyhedra, nil)
	// Default routing 12/13/14 is beyond a two-bus buffer.
	in.Step(buses, frames, sampleRate)
	if buses[frames] != BeamOn && buses[frames] != BeamOff {
		t.Errorf("last bus = %v, want intensity written there", buses[frames])
	}
}

func TestStepDoesNotAllocate(t *testing.T) {
	const frames = 128
	buses := make([]float32, params.NumBuses*frames)
	for _, kind := range []Kind{KindPolyhedra, KindCube} {
		in := New(kind, nil)
		allocs := testing.AllocsPerRun(100, func() {
			in.Step(buses, frames, sampleRate)
		})
		if allocs != 0 {
			t.Errorf("%v Step allocated %v times per run", kind, allocs)
		}
	}
}

func TestSetParameterClampsAndIgnoresUnknown(t *testing.T) {
	in := New(KindCube, nil)
	in.SetParameter(params.Frequency, 30000)
	if in.Frequency() != 1000 {
		t.Errorf("Frequency() = %v, want 1000", in.Frequency())
	}
	if in.Parameter(params.Frequency) != 1000 {
		t.Errorf("Parameter(Frequency) = %d, want 1000", in.Parameter(params.Frequency))
	}
	in.SetParameter(99, 1)
	in.SetParameter(-1, 1)
	if in.Parameter(99) != 0 {
		t.Error("Parameter(99) should be 0")
	}
}

func TestReset(t *testing.T) {
	in := New(KindCube, nil)
	for i := 0; i < 100; i++ {
		in.Sample(sampleRate)
	}
	in.Reset()
	if in.Phase() != 0 {
		t.Errorf("Phase() after Reset = %v", in.Phase())
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{"polyhedra", KindPolyhedra, false},
		{"PolyWire", KindPolyhedra, false},
		{"cube", KindCube, false},
		{"CubeWireNoCull", KindCube, false},
		{"torus", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		if (err != nil) != tt.wantErr || (!tt.wantErr && got != tt.want) {
			t.Errorf("ParseKind(%q) = %v, %v", tt.in, got, err)
		}
	}
}

func TestCustomArena(t *testing.T) {
	a, err := geometry.NewArena(geometry.Builtin()...)
	if err != nil {
		t.Fatalf("NewArena() error = %v", err)
	}
	in := New(KindPolyhedra, a)
	in.SetParameter(params.Solid, 100)
	if in.Solid().Name() != "Hexahedron" {
		t.Errorf("Solid() = %s, want Hexahedron", in.Solid().Name())
	}
}
