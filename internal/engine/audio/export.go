package audio

import (
	"fmt"
	"os"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/wav"
	"go.uber.org/zap"

	"github.com/Faultbox/vectorscope/internal/host"
	"github.com/Faultbox/vectorscope/internal/logger"
)

// WriteWAV renders duration of X/Y output from r into a stereo 16-bit WAV
// file at path.
func WriteWAV(path string, r *host.Runner, duration time.Duration) error {
	return writeWAV(path, NewStreamer(r, StereoXY), duration)
}

// WriteIntensityWAV renders duration of the intensity output from r into a
// mono 16-bit WAV file at path.
func WriteIntensityWAV(path string, r *host.Runner, duration time.Duration) error {
	return writeWAV(path, NewStreamer(r, IntensityOnly), duration)
}

func writeWAV(path string, s *Streamer, duration time.Duration) error {
	if duration <= 0 {
		return fmt.Errorf("write %s: duration must be positive, got %v", path, duration)
	}
	format := s.Format()
	n := format.SampleRate.N(duration)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create wav: %w", err)
	}
	if err := wav.Encode(f, beep.Take(n, s), format); err != nil {
		f.Close()
		return fmt.Errorf("encode wav %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close wav %s: %w", path, err)
	}

	logger.Info("wav written",
		zap.String("path", path),
		zap.Int("channels", format.NumChannels),
		zap.Int("frames", n),
		zap.Duration("duration", duration))
	return nil
}
