// Package audio turns tracer output into sound: a beep.Streamer over a host
// runner, WAV export and live playback on the default output device.
package audio

import (
	"github.com/gopxl/beep/v2"

	"github.com/Faultbox/vectorscope/internal/host"
)

// VoltsFullScale is the signal level mapped onto digital full scale.
const VoltsFullScale = 10

// Channels selects what a Streamer emits.
type Channels int

const (
	// StereoXY puts X on the left and Y on the right channel, the wiring of
	// a scope in XY mode fed from a sound card.
	StereoXY Channels = iota

	// IntensityOnly puts the beam intensity on both channels.
	IntensityOnly
)

// Streamer pulls blocks from a host runner on demand. It never ends.
type Streamer struct {
	runner   *host.Runner
	channels Channels
	frame    host.Frame
	pos      int

	// OnBlock, when set, sees every rendered block before it is streamed.
	// It runs on the audio goroutine.
	OnBlock func(host.Frame)
}

// NewStreamer creates a streamer over r.
func NewStreamer(r *host.Runner, ch Channels) *Streamer {
	return &Streamer{runner: r, channels: ch}
}

// Format returns the beep format of the stream at 16-bit precision.
func (s *Streamer) Format() beep.Format {
	n := 2
	if s.channels == IntensityOnly {
		n = 1
	}
	return beep.Format{
		SampleRate:  beep.SampleRate(s.runner.SampleRate()),
		NumChannels: n,
		Precision:   2,
	}
}

// Stream implements beep.Streamer.
func (s *Streamer) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if s.pos >= s.frame.Len() {
			s.frame = s.runner.ProcessBlock()
			s.pos = 0
			if s.OnBlock != nil {
				s.OnBlock(s.frame)
			}
		}
		switch s.channels {
		case IntensityOnly:
			v := toFullScale(s.frame.Intensity[s.pos])
			samples[i] = [2]float64{v, v}
		default:
			samples[i] = [2]float64{
				toFullScale(s.frame.X[s.pos]),
				toFullScale(s.frame.Y[s.pos]),
			}
		}
		s.pos++
	}
	return len(samples), true
}

// Err implements beep.Streamer.
func (s *Streamer) Err() error {
	return nil
}

func toFullScale(v float32) float64 {
	f := float64(v) / VoltsFullScale
	return min(max(f, -1), 1)
}
