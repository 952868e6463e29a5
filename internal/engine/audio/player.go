package audio

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"go.uber.org/zap"

	"github.com/Faultbox/vectorscope/internal/logger"
)

// DefaultLatency is the speaker buffer length.
const DefaultLatency = time.Second / 30

var ErrNotStarted = errors.New("audio: player not started")

// Player sends a Streamer to the default output device.
type Player struct {
	mu sync.Mutex

	stream  *Streamer
	ctrl    *beep.Ctrl
	gain    *effects.Volume
	level   float64
	started bool
}

// NewPlayer creates a stopped player at full volume.
func NewPlayer(s *Streamer) *Player {
	p := &Player{stream: s, level: 1}
	p.ctrl = &beep.Ctrl{Streamer: s}
	p.gain = &effects.Volume{Streamer: p.ctrl, Base: 2}
	applyLevel(p.gain, p.level)
	return p
}

// Start opens the speaker and begins playback.
func (p *Player) Start(latency time.Duration) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return nil
	}
	if latency <= 0 {
		latency = DefaultLatency
	}
	sr := p.stream.Format().SampleRate
	if err := speaker.Init(sr, sr.N(latency)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(p.gain)
	p.started = true

	logger.Info("playback started", zap.Int("sampleRate", int(sr)), zap.Duration("latency", latency))
	return nil
}

// Close stops playback and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.started {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.started = false
}

// SetVolume sets the output level in [0, 1].
func (p *Player) SetVolume(v float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.level = clamp(v, 0, 1)
	p.locked(func() { applyLevel(p.gain, p.level) })
}

// Volume returns the output level.
func (p *Player) Volume() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.level
}

// SetPaused pauses or resumes the stream. A paused stream does not advance
// the tracer.
func (p *Player) SetPaused(paused bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.started {
		return ErrNotStarted
	}
	p.locked(func() { p.ctrl.Paused = paused })
	return nil
}

// Paused reports whether playback is paused.
func (p *Player) Paused() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	var paused bool
	p.locked(func() { paused = p.ctrl.Paused })
	return paused
}

// locked runs fn under the speaker lock once the speaker is running.
func (p *Player) locked(fn func()) {
	if !p.started {
		fn()
		return
	}
	speaker.Lock()
	fn()
	speaker.Unlock()
}

func applyLevel(v *effects.Volume, level float64) {
	v.Silent = level <= 0
	v.Volume = levelToExponent(level)
}

// levelToExponent converts a linear gain into the base-2 exponent used by
// effects.Volume.
func levelToExponent(level float64) float64 {
	if level <= 0 {
		return -10
	}
	return math.Log2(level)
}

func clamp(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}
