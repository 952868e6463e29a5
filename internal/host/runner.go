// Package host drives a tracer instance the way a modular audio host does:
// fixed-size blocks over a shared bus buffer, with parameter changes queued
// from other goroutines and applied only between blocks.
package host

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"go.uber.org/zap"

	"github.com/Faultbox/vectorscope/internal/engine/params"
	"github.com/Faultbox/vectorscope/internal/engine/tracer"
	"github.com/Faultbox/vectorscope/internal/logger"
)

// Block size constraints of the host API.
const (
	FrameAlign         = 4
	DefaultBlockFrames = 128
	DefaultSampleRate  = 48000
)

var (
	ErrSampleRate  = errors.New("host: sample rate must be positive")
	ErrBlockFrames = errors.New("host: block frames must be a positive multiple of 4")
)

// Event is a raw parameter change.
type Event struct {
	Index int
	Raw   int16
}

// Automation spins the solid at a constant rate, in degrees per second per
// axis. Zero disables an axis.
type Automation struct {
	X, Y, Z float64
}

// IsZero reports whether no axis spins.
func (a Automation) IsZero() bool {
	return a.X == 0 && a.Y == 0 && a.Z == 0
}

// Options configures a Runner.
type Options struct {
	SampleRate  float32
	BlockFrames int
	Spin        Automation
}

// Frame is a view of the three routed output buses for one block. The slices
// alias the runner's bus buffer and are overwritten by the next block.
type Frame struct {
	X, Y, Intensity []float32
}

// Len returns the number of frames in the view.
func (f Frame) Len() int {
	return len(f.X)
}

// Runner owns one tracer instance and its bus buffer.
type Runner struct {
	mu      sync.Mutex
	pending []Event
	spin    Automation

	inst        *tracer.Instance
	sampleRate  float32
	blockFrames int
	buses       []float32
	drained     []Event

	angles [3]float64
	frames uint64
}

// New creates a runner around inst.
func New(inst *tracer.Instance, opts Options) (*Runner, error) {
	if !(opts.SampleRate > 0) {
		return nil, fmt.Errorf("%w: %v", ErrSampleRate, opts.SampleRate)
	}
	if opts.BlockFrames <= 0 || opts.BlockFrames%FrameAlign != 0 {
		return nil, fmt.Errorf("%w: %d", ErrBlockFrames, opts.BlockFrames)
	}

	r := &Runner{
		inst:        inst,
		sampleRate:  opts.SampleRate,
		blockFrames: opts.BlockFrames,
		buses:       make([]float32, params.NumBuses*opts.BlockFrames),
		spin:        opts.Spin,
	}
	r.angles = [3]float64{
		float64(inst.Parameter(params.RotX)),
		float64(inst.Parameter(params.RotY)),
		float64(inst.Parameter(params.RotZ)),
	}

	logger.Info("host runner created",
		zap.Stringer("kind", inst.Kind()),
		zap.Float32("sampleRate", opts.SampleRate),
		zap.Int("blockFrames", opts.BlockFrames))
	return r, nil
}

// Instance returns the driven tracer. It must not be mutated directly while
// blocks are being processed on another goroutine.
func (r *Runner) Instance() *tracer.Instance {
	return r.inst
}

// SampleRate returns the sample rate in Hz.
func (r *Runner) SampleRate() float32 {
	return r.sampleRate
}

// BlockFrames returns the block size.
func (r *Runner) BlockFrames() int {
	return r.blockFrames
}

// Frames returns the number of frames rendered so far.
func (r *Runner) Frames() uint64 {
	return r.frames
}

// Post queues a parameter change. It is safe to call from any goroutine; the
// change takes effect at the start of the next block.
func (r *Runner) Post(ev Event) {
	r.mu.Lock()
	r.pending = append(r.pending, ev)
	r.mu.Unlock()
}

// PostNamed queues a change addressed by parameter name.
func (r *Runner) PostNamed(name string, raw int) error {
	idx, ok := r.inst.Params().Lookup(name)
	if !ok {
		return fmt.Errorf("unknown parameter %q for %s", name, r.inst.Kind())
	}
	r.Post(Event{Index: idx, Raw: saturate(raw)})
	return nil
}

// SetSpin replaces the rotation automation.
func (r *Runner) SetSpin(a Automation) {
	r.mu.Lock()
	r.spin = a
	r.mu.Unlock()
}

// ProcessBlock applies pending events and automation, then renders one block.
func (r *Runner) ProcessBlock() Frame {
	r.mu.Lock()
	r.drained, r.pending = r.pending, r.drained[:0]
	spin := r.spin
	r.mu.Unlock()

	for _, ev := range r.drained {
		r.apply(ev)
	}
	if !spin.IsZero() {
		r.automate(spin)
	}

	r.inst.Step(r.buses, r.blockFrames, r.sampleRate)
	r.frames += uint64(r.blockFrames)
	return r.view()
}

// Render processes whole blocks until at least frames frames have been
// produced, handing each block to fn. The last view is trimmed to frames.
func (r *Runner) Render(frames int, fn func(Frame) error) error {
	for done := 0; done < frames; {
		f := r.ProcessBlock()
		if n := frames - done; n < f.Len() {
			f = Frame{X: f.X[:n], Y: f.Y[:n], Intensity: f.Intensity[:n]}
		}
		if err := fn(f); err != nil {
			return err
		}
		done += f.Len()
	}
	return nil
}

func (r *Runner) apply(ev Event) {
	desc, ok := r.inst.Params().Descriptor(ev.Index)
	if !ok {
		logger.Warn("dropping event for unknown parameter", zap.Int("index", ev.Index))
		return
	}
	v := desc.Clamp(int(ev.Raw))
	r.inst.SetParameter(ev.Index, v)

	switch ev.Index {
	case params.RotX, params.RotY, params.RotZ:
		r.angles[ev.Index-params.RotX] = float64(v)
	}
	logger.Debug("parameter applied",
		zap.String("name", desc.Name),
		zap.Int16("raw", ev.Raw),
		zap.String("value", desc.Format(v)))
}

func (r *Runner) automate(spin Automation) {
	dt := float64(r.blockFrames) / float64(r.sampleRate)
	rates := [3]float64{spin.X, spin.Y, spin.Z}
	for axis, rate := range rates {
		if rate == 0 {
			continue
		}
		a := math.Mod(r.angles[axis]+rate*dt, 360)
		if a < 0 {
			a += 360
		}
		r.angles[axis] = a
		r.inst.SetParameter(params.RotX+axis, int16(math.Round(a))%360)
	}
}

func (r *Runner) view() Frame {
	x, y, i := r.inst.Buses()
	return Frame{
		X:         r.bus(x),
		Y:         r.bus(y),
		Intensity: r.bus(i),
	}
}

func (r *Runner) bus(idx int) []float32 {
	idx = min(max(idx, 0), params.NumBuses-1)
	off := idx * r.blockFrames
	return r.buses[off : off+r.blockFrames]
}

func saturate(v int) int16 {
	return int16(min(max(v, math.MinInt16), math.MaxInt16))
}
