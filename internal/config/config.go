// Package config handles vectorscope configuration loading and management.
package config

import "time"

// Config holds all settings shared by the commands.
type Config struct {
	Audio   AudioConfig   `yaml:"audio"`
	Tracer  TracerConfig  `yaml:"tracer"`
	Render  RenderConfig  `yaml:"render"`
	Viewer  ViewerConfig  `yaml:"viewer"`
	Logging LoggingConfig `yaml:"logging"`
}

// AudioConfig holds the host clock and playback settings.
type AudioConfig struct {
	SampleRate  int           `yaml:"sample_rate"`
	BlockFrames int           `yaml:"block_frames"`
	Volume      float64       `yaml:"volume"`
	Latency     time.Duration `yaml:"latency"`
}

// TracerConfig selects the tracer kind and its starting parameters.
type TracerConfig struct {
	Kind string `yaml:"kind"`

	// Parameters maps parameter names (as listed by "scopegen params") to
	// raw values. Out-of-range values are clamped when applied.
	Parameters map[string]int `yaml:"parameters"`

	Spin SpinConfig `yaml:"spin"`
}

// SpinConfig is a constant rotation in degrees per second.
type SpinConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// RenderConfig holds offline export settings.
type RenderConfig struct {
	Duration      time.Duration `yaml:"duration"`
	WAVPath       string        `yaml:"wav_path"`
	IntensityPath string        `yaml:"intensity_path"`
	PNGPath       string        `yaml:"png_path"`
	PNGWidth      int           `yaml:"png_width"`
	PNGHeight     int           `yaml:"png_height"`
}

// ViewerConfig holds display settings of the live viewer.
type ViewerConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Fullscreen bool    `yaml:"fullscreen"`
	VSync      bool    `yaml:"vsync"`
	History    int     `yaml:"history"` // samples kept on screen
	PointSize  float32 `yaml:"point_size"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Audio: AudioConfig{
			SampleRate:  48000,
			BlockFrames: 128,
			Volume:      0.8,
			Latency:     time.Second / 30,
		},
		Tracer: TracerConfig{
			Kind:       "polyhedra",
			Parameters: map[string]int{},
		},
		Render: RenderConfig{
			Duration:  2 * time.Second,
			WAVPath:   "scope.wav",
			PNGPath:   "scope.png",
			PNGWidth:  512,
			PNGHeight: 512,
		},
		Viewer: ViewerConfig{
			Width:     800,
			Height:    800,
			VSync:     true,
			History:   4800,
			PointSize: 2,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
