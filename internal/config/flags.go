package config

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Flags are the command-line overrides shared by the commands. Zero values
// leave the file setting alone.
type Flags struct {
	Config     string
	Debug      bool
	Kind       string
	Solid      int
	Frequency  int
	SampleRate int
	Duration   time.Duration
	SpinY      float64
	Output     string
	Width      int
	Height     int
	Fullscreen bool
	Set        ParamList
}

// ParamList collects repeated -set name=value flags.
type ParamList map[string]int

func (p *ParamList) String() string {
	if p == nil || len(*p) == 0 {
		return ""
	}
	parts := make([]string, 0, len(*p))
	for k, v := range *p {
		parts = append(parts, fmt.Sprintf("%s=%d", k, v))
	}
	return strings.Join(parts, ",")
}

// Set parses one name=value pair.
func (p *ParamList) Set(s string) error {
	name, value, ok := strings.Cut(s, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return fmt.Errorf("want name=value, got %q", s)
	}
	v, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fmt.Errorf("parameter %s: %w", name, err)
	}
	if *p == nil {
		*p = ParamList{}
	}
	(*p)[name] = v
	return nil
}

// NewFlags registers the shared flags on fs.
func NewFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{Solid: -1}
	fs.StringVar(&f.Config, "config", "", "Path to config file")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.StringVar(&f.Kind, "kind", "", "Tracer kind: polyhedra or cube")
	fs.IntVar(&f.Solid, "solid", -1, "Polyhedra solid 0-4 (tetra, hexa, octa, dodeca, icosa)")
	fs.IntVar(&f.Frequency, "freq", 0, "Draw frequency in Hz")
	fs.IntVar(&f.SampleRate, "sample-rate", 0, "Sample rate in Hz")
	fs.DurationVar(&f.Duration, "duration", 0, "Render duration")
	fs.Float64Var(&f.SpinY, "spin", 0, "Spin around Y in degrees per second")
	fs.StringVar(&f.Output, "o", "", "Output file")
	fs.IntVar(&f.Width, "width", 0, "Window width")
	fs.IntVar(&f.Height, "height", 0, "Window height")
	fs.BoolVar(&f.Fullscreen, "fullscreen", false, "Run the viewer fullscreen")
	fs.Var(&f.Set, "set", "Set a parameter, name=value (repeatable)")
	return f
}

// apply applies CLI flag overrides to the config.
func (f *Flags) apply(cfg *Config) {
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.Kind != "" {
		cfg.Tracer.Kind = f.Kind
	}
	if cfg.Tracer.Parameters == nil {
		cfg.Tracer.Parameters = map[string]int{}
	}
	if f.Solid >= 0 {
		cfg.Tracer.Parameters["Solid"] = f.Solid * 100
	}
	if f.Frequency > 0 {
		cfg.Tracer.Parameters["Frequency"] = f.Frequency
	}
	for name, v := range f.Set {
		cfg.Tracer.Parameters[name] = v
	}
	if f.SampleRate > 0 {
		cfg.Audio.SampleRate = f.SampleRate
	}
	if f.Duration > 0 {
		cfg.Render.Duration = f.Duration
	}
	if f.SpinY != 0 {
		cfg.Tracer.Spin.Y = f.SpinY
	}
	if f.Width > 0 {
		cfg.Viewer.Width = f.Width
	}
	if f.Height > 0 {
		cfg.Viewer.Height = f.Height
	}
	if f.Fullscreen {
		cfg.Viewer.Fullscreen = true
	}
}
