package host

import (
	"errors"
	"sync"
	"testing"

	"github.com/Faultbox/vectorscope/internal/engine/params"
	"github.com/Faultbox/vectorscope/internal/engine/tracer"
)

func newRunner(t *testing.T, kind tracer.Kind, opts Options) *Runner {
	t.Helper()
	if opts.SampleRate == 0 {
		opts.SampleRate = DefaultSampleRate
	}
	if opts.BlockFrames == 0 {
		opts.BlockFrames = DefaultBlockFrames
	}
	r, err := New(tracer.New(kind, nil), opts)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return r
}

func TestNewValidates(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want error
	}{
		{"zero rate", Options{SampleRate: 0, BlockFrames: 128}, ErrSampleRate},
		{"negative rate", Options{SampleRate: -1, BlockFrames: 128}, ErrSampleRate},
		{"zero block", Options{SampleRate: 48000, BlockFrames: 0}, ErrBlockFrames},
		{"unaligned block", Options{SampleRate: 48000, BlockFrames: 130}, ErrBlockFrames},
		{"ok", Options{SampleRate: 44100, BlockFrames: 4}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tracer.New(tracer.KindCube, nil), tt.opts)
			if !errors.Is(err, tt.want) {
				t.Errorf("New() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestEventsApplyAtBlockBoundary(t *testing.T) {
	r := newRunner(t, tracer.KindPolyhedra, Options{})
	r.Post(Event{Index: params.Solid, Raw: 200})

	if got := r.Instance().Solid().Name(); got != "Tetrahedron" {
		t.Fatalf("solid changed before the block: %s", got)
	}
	r.ProcessBlock()
	if got := r.Instance().Solid().Name(); got != "Octahedron" {
		t.Errorf("solid after block = %s, want Octahedron", got)
	}
}

func TestEventsPostedDuringRenderWaitForNextBlock(t *testing.T) {
	r := newRunner(t, tracer.KindPolyhedra, Options{BlockFrames: 64})

	var freqs []float32
	err := r.Render(3*64, func(f Frame) error {
		freqs = append(freqs, r.Instance().Frequency())
		r.Post(Event{Index: params.Frequency, Raw: int16(100 * len(freqs))})
		return nil
	})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	want := []float32{50, 100, 200}
	for i := range want {
		if freqs[i] != want[i] {
			t.Errorf("block %d frequency = %v, want %v", i, freqs[i], want[i])
		}
	}
}

func TestEventsAreClamped(t *testing.T) {
	r := newRunner(t, tracer.KindCube, Options{})
	r.Post(Event{Index: params.Frequency, Raw: 5000})
	r.Post(Event{Index: params.AmpCorse, Raw: -3})
	r.Post(Event{Index: 42, Raw: 1})
	r.ProcessBlock()

	in := r.Instance()
	if in.Parameter(params.Frequency) != 1000 {
		t.Errorf("Frequency = %d, want 1000", in.Parameter(params.Frequency))
	}
	if in.Parameter(params.AmpCorse) != 0 {
		t.Errorf("AmpCorse = %d, want 0", in.Parameter(params.AmpCorse))
	}
}

func TestPostNamed(t *testing.T) {
	r := newRunner(t, tracer.KindCube, Options{})
	if err := r.PostNamed("blank window", 70000); err != nil {
		t.Fatalf("PostNamed() error = %v", err)
	}
	if err := r.PostNamed("Solid", 100); err == nil {
		t.Error("PostNamed(Solid) on a cube should fail")
	}
	r.ProcessBlock()
	if got := r.Instance().Parameter(params.BlankWindow); got != 1000 {
		t.Errorf("BlankWindow = %d, want 1000", got)
	}
}

func TestConcurrentPost(t *testing.T) {
	r := newRunner(t, tracer.KindPolyhedra, Options{})

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				r.Post(Event{Index: params.RotZ, Raw: int16(g)})
			}
		}(g)
	}
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	for {
		r.ProcessBlock()
		select {
		case <-done:
			r.ProcessBlock()
			if got := r.Instance().Parameter(params.RotZ); got < 0 || got > 7 {
				t.Errorf("RotZ = %d, want a posted value", got)
			}
			return
		default:
		}
	}
}

func TestSpinAutomation(t *testing.T) {
	// 48 blocks of 1000 frames is exactly one second.
	r := newRunner(t, tracer.KindPolyhedra, Options{
		BlockFrames: 1000,
		Spin:        Automation{X: 90, Z: -30},
	})
	for i := 0; i < 48; i++ {
		r.ProcessBlock()
	}
	in := r.Instance()
	if got := in.Parameter(params.RotX); got != 90 {
		t.Errorf("RotX after 1s = %d, want 90", got)
	}
	if got := in.Parameter(params.RotY); got != 0 {
		t.Errorf("RotY after 1s = %d, want 0", got)
	}
	if got := in.Parameter(params.RotZ); got != 330 {
		t.Errorf("RotZ after 1s = %d, want 330", got)
	}
}

func TestSpinContinuesFromPostedAngle(t *testing.T) {
	r := newRunner(t, tracer.KindPolyhedra, Options{BlockFrames: 1000})
	r.Post(Event{Index: params.RotY, Raw: 350})
	r.SetSpin(Automation{Y: 480})
	for i := 0; i < 4; i++ { // 1/12 s
		r.ProcessBlock()
	}
	if got := r.Instance().Parameter(params.RotY); got != 30 {
		t.Errorf("RotY = %d, want 30", got)
	}
}

func TestFrameViewsRoutedBuses(t *testing.T) {
	r := newRunner(t, tracer.KindPolyhedra, Options{BlockFrames: 32})
	r.Post(Event{Index: params.XOut, Raw: 0})
	r.Post(Event{Index: params.YOut, Raw: 1})
	r.Post(Event{Index: params.IntOut, Raw: 2})

	f := r.ProcessBlock()
	if f.Len() != 32 || len(f.Y) != 32 || len(f.Intensity) != 32 {
		t.Fatalf("frame lengths = %d, %d, %d, want 32", len(f.X), len(f.Y), len(f.Intensity))
	}
	for i := 0; i < 32; i++ {
		if f.X[i] != r.buses[i] || f.Y[i] != r.buses[32+i] || f.Intensity[i] != r.buses[64+i] {
			t.Fatalf("frame %d does not alias the routed buses", i)
		}
		if v := f.Intensity[i]; v != tracer.BeamOn && v != tracer.BeamOff {
			t.Fatalf("intensity %v is not a beam level", v)
		}
	}
}

func TestRenderTrimsLastBlock(t *testing.T) {
	r := newRunner(t, tracer.KindCube, Options{BlockFrames: 128})

	total := 0
	blocks := 0
	err := r.Render(1000, func(f Frame) error {
		total += f.Len()
		blocks++
		return nil
	})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if total != 1000 || blocks != 8 {
		t.Errorf("Render(1000) = %d frames in %d blocks, want 1000 in 8", total, blocks)
	}
	if r.Frames() != 1024 {
		t.Errorf("Frames() = %d, want 1024", r.Frames())
	}
}

func TestRenderStopsOnError(t *testing.T) {
	r := newRunner(t, tracer.KindCube, Options{})
	stop := errors.New("stop")
	calls := 0
	err := r.Render(10000, func(Frame) error {
		calls++
		return stop
	})
	if !errors.Is(err, stop) || calls != 1 {
		t.Errorf("Render() = %v after %d calls, want stop after 1", err, calls)
	}
}
