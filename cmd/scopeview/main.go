// scopeview shows the tracer output live, as an oscilloscope in XY mode
// would draw it.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/vectorscope/internal/config"
	"github.com/Faultbox/vectorscope/internal/engine/audio"
	"github.com/Faultbox/vectorscope/internal/engine/input"
	"github.com/Faultbox/vectorscope/internal/engine/params"
	"github.com/Faultbox/vectorscope/internal/engine/phosphor"
	"github.com/Faultbox/vectorscope/internal/engine/scope"
	"github.com/Faultbox/vectorscope/internal/engine/tracer"
	"github.com/Faultbox/vectorscope/internal/engine/window"
	"github.com/Faultbox/vectorscope/internal/host"
	"github.com/Faultbox/vectorscope/internal/logger"
	"github.com/Faultbox/vectorscope/internal/viewer"
	"github.com/Faultbox/vectorscope/pkg/geometry"
)

// maxCatchUp bounds how much audio time one video frame may render after a
// stall.
const maxCatchUp = 100 * time.Millisecond

func main() {
	flags := config.NewFlags(flag.CommandLine)
	withAudio := flag.Bool("audio", false, "Play X/Y through the default audio device")
	shots := flag.String("shots", "", "Directory for F12 snapshots")
	flag.Parse()

	cfg, err := config.Load(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, *withAudio, *shots); err != nil {
		logger.Error("viewer error", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Info("viewer closed normally")
}

func run(cfg *config.Config, withAudio bool, shotDir string) error {
	kind, err := cfg.Kind()
	if err != nil {
		return err
	}
	runner, err := cfg.NewRunner()
	if err != nil {
		return err
	}
	history := viewer.NewHistory(cfg.Viewer.History)

	win, err := window.New(window.Config{
		Title:      kind.Title(),
		Width:      cfg.Viewer.Width,
		Height:     cfg.Viewer.Height,
		Fullscreen: cfg.Viewer.Fullscreen,
		VSync:      cfg.Viewer.VSync,
		Samples:    4,
	})
	if err != nil {
		return err
	}
	defer win.Close()

	opts := scope.DefaultOptions()
	opts.PointSize = cfg.Viewer.PointSize
	renderer, err := scope.New(history.Cap(), opts)
	if err != nil {
		return err
	}
	defer renderer.Close()
	renderer.Resize(win.DrawableSize())

	var clock *frameClock
	if withAudio {
		stream := audio.NewStreamer(runner, audio.StereoXY)
		stream.OnBlock = history.Push
		player := audio.NewPlayer(stream)
		player.SetVolume(cfg.Audio.Volume)
		if err := player.Start(cfg.Audio.Latency); err != nil {
			return err
		}
		defer player.Close()
	} else {
		clock = newFrameClock(runner, history)
	}

	ctrl := viewer.NewController(runner, kind, cfg.Tracer.Parameters, host.Automation{
		X: cfg.Tracer.Spin.X,
		Y: cfg.Tracer.Spin.Y,
		Z: cfg.Tracer.Spin.Z,
	})
	in := input.New(input.DefaultBindings())
	snaps := phosphor.NewSnapshotter(shotDir, "scope")

	win.SetTitle(title(kind, ctrl))
	logger.Info("viewer running", zap.Stringer("kind", kind), zap.Bool("audio", withAudio))

	var points []viewer.Point
	for !in.Update() {
		if _, _, ok := in.Resized(); ok {
			renderer.Resize(win.DrawableSize())
		}
		for _, a := range in.Actions() {
			switch a {
			case viewer.ActionSnapshot:
				if path, err := snapshot(win, renderer, snaps); err != nil {
					logger.Warn("snapshot failed", zap.Error(err))
				} else {
					logger.Info("snapshot saved", zap.String("path", path))
				}
			case viewer.ActionClear:
				history.Reset()
			default:
				if ctrl.Handle(a) {
					logger.Debug("action", zap.Stringer("action", a))
					win.SetTitle(title(kind, ctrl))
				}
			}
		}

		if clock != nil {
			clock.tick()
		}
		points = history.CopyTo(points)
		renderer.Upload(points)
		renderer.Draw()
		win.SwapBuffers()
	}
	return nil
}

func snapshot(win *window.Window, r *scope.Renderer, snaps *phosphor.Snapshotter) (string, error) {
	w, h := win.DrawableSize()
	img, err := phosphor.FromGLPixels(r.ReadPixels(w, h), w, h)
	if err != nil {
		return "", err
	}
	return snaps.Capture(img)
}

func title(kind tracer.Kind, ctrl *viewer.Controller) string {
	s := fmt.Sprintf("%s  %d Hz", kind.Title(), ctrl.Value(params.Frequency))
	if kind == tracer.KindPolyhedra {
		id := geometry.TetrahedronID + geometry.SolidID(min(int(ctrl.Value(params.Solid))/100, geometry.PolyhedraCount-1))
		s += "  " + geometry.Default().Solid(id).Name()
	}
	return s
}

// frameClock renders blocks on the video thread to keep up with wall time
// when no audio device drives the runner.
type frameClock struct {
	runner  *host.Runner
	history *viewer.History
	start   time.Time
}

func newFrameClock(r *host.Runner, h *viewer.History) *frameClock {
	return &frameClock{runner: r, history: h, start: time.Now()}
}

func (c *frameClock) tick() {
	sr := float64(c.runner.SampleRate())
	due := uint64(time.Since(c.start).Seconds() * sr)
	limit := uint64(maxCatchUp.Seconds() * sr)
	if due > c.runner.Frames()+limit {
		// Drop the backlog after a stall instead of rendering it.
		c.start = time.Now().Add(-time.Duration(float64(c.runner.Frames()) / sr * float64(time.Second)))
		due = c.runner.Frames() + limit
	}
	for c.runner.Frames() < due {
		c.history.Push(c.runner.ProcessBlock())
	}
}
