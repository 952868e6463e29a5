package config

import (
	"errors"
	"fmt"
	"sort"

	"github.com/Faultbox/vectorscope/internal/engine/tracer"
	"github.com/Faultbox/vectorscope/internal/host"
	"github.com/Faultbox/vectorscope/internal/logger"
)

// Sample rate bounds accepted by Validate.
const (
	MinSampleRate = 8000
	MaxSampleRate = 192000
)

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error
	if c.Audio.SampleRate < MinSampleRate || c.Audio.SampleRate > MaxSampleRate {
		errs = append(errs, fmt.Errorf("audio.sample_rate %d outside [%d, %d]", c.Audio.SampleRate, MinSampleRate, MaxSampleRate))
	}
	if c.Audio.BlockFrames <= 0 || c.Audio.BlockFrames%host.FrameAlign != 0 {
		errs = append(errs, fmt.Errorf("audio.block_frames %d must be a positive multiple of %d", c.Audio.BlockFrames, host.FrameAlign))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume %v outside [0, 1]", c.Audio.Volume))
	}

	kind, err := tracer.ParseKind(c.Tracer.Kind)
	if err != nil {
		errs = append(errs, fmt.Errorf("tracer.kind: %w", err))
	} else {
		for name := range c.Tracer.Parameters {
			if _, ok := kind.Params().Lookup(name); !ok {
				errs = append(errs, fmt.Errorf("tracer.parameters: %q is not a %s parameter", name, kind))
			}
		}
	}

	if c.Render.Duration <= 0 {
		errs = append(errs, fmt.Errorf("render.duration %v must be positive", c.Render.Duration))
	}
	if c.Render.PNGWidth <= 0 || c.Render.PNGHeight <= 0 {
		errs = append(errs, fmt.Errorf("render.png size %dx%d must be positive", c.Render.PNGWidth, c.Render.PNGHeight))
	}
	if c.Viewer.Width <= 0 || c.Viewer.Height <= 0 {
		errs = append(errs, fmt.Errorf("viewer size %dx%d must be positive", c.Viewer.Width, c.Viewer.Height))
	}
	if c.Viewer.History <= 0 {
		errs = append(errs, fmt.Errorf("viewer.history %d must be positive", c.Viewer.History))
	}
	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, fmt.Errorf("logging.level: %w", err))
	}
	return errors.Join(errs...)
}

// Kind returns the configured tracer kind.
func (c *Config) Kind() (tracer.Kind, error) {
	return tracer.ParseKind(c.Tracer.Kind)
}

// NewRunner builds a host runner for the configured tracer with the
// configured parameters queued for the first block.
func (c *Config) NewRunner() (*host.Runner, error) {
	kind, err := c.Kind()
	if err != nil {
		return nil, err
	}
	r, err := host.New(tracer.New(kind, nil), host.Options{
		SampleRate:  float32(c.Audio.SampleRate),
		BlockFrames: c.Audio.BlockFrames,
		Spin: host.Automation{
			X: c.Tracer.Spin.X,
			Y: c.Tracer.Spin.Y,
			Z: c.Tracer.Spin.Z,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("creating runner: %w", err)
	}

	names := make([]string, 0, len(c.Tracer.Parameters))
	for name := range c.Tracer.Parameters {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := r.PostNamed(name, c.Tracer.Parameters[name]); err != nil {
			return nil, err
		}
	}
	return r, nil
}
