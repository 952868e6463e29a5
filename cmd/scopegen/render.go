package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/vectorscope/internal/engine/audio"
	"github.com/Faultbox/vectorscope/internal/engine/phosphor"
	"github.com/Faultbox/vectorscope/internal/host"
	"github.com/Faultbox/vectorscope/internal/logger"
)

func cmdRender(args []string) error {
	cfg, flags, err := setup("render", args)
	if err != nil {
		return err
	}
	path := cfg.Render.WAVPath
	if flags.Output != "" {
		path = flags.Output
	}

	r, err := cfg.NewRunner()
	if err != nil {
		return err
	}
	start := time.Now()
	if err := audio.WriteWAV(path, r, cfg.Render.Duration); err != nil {
		return err
	}

	if cfg.Render.IntensityPath != "" {
		// A fresh runner so the intensity file lines up with the X/Y file.
		ri, err := cfg.NewRunner()
		if err != nil {
			return err
		}
		if err := audio.WriteIntensityWAV(cfg.Render.IntensityPath, ri, cfg.Render.Duration); err != nil {
			return err
		}
		printer.Printf("Intensity: %s\n", cfg.Render.IntensityPath)
	}

	printer.Printf("Rendered: %s (%d frames at %d Hz in %v)\n",
		path, r.Frames(), cfg.Audio.SampleRate, time.Since(start).Round(time.Millisecond))
	return nil
}

func cmdSnapshot(args []string) error {
	cfg, flags, err := setup("snapshot", args)
	if err != nil {
		return err
	}
	path := cfg.Render.PNGPath
	if flags.Output != "" {
		path = flags.Output
	}

	r, err := cfg.NewRunner()
	if err != nil {
		return err
	}
	opts := phosphor.DefaultOptions()
	opts.Width, opts.Height = cfg.Render.PNGWidth, cfg.Render.PNGHeight
	canvas := phosphor.NewCanvas(opts)

	// The first block applies the configured parameters, so the period is
	// only known after it.
	canvas.AddFrame(r.ProcessBlock())
	period := int(math.Ceil(float64(r.SampleRate()) / float64(r.Instance().Frequency())))
	if err := r.Render(period, func(f host.Frame) error {
		canvas.AddFrame(f)
		return nil
	}); err != nil {
		return err
	}

	if err := phosphor.SavePNG(path, canvas.Image()); err != nil {
		return err
	}
	logger.Info("snapshot written", zap.String("path", path), zap.Int("strokes", canvas.Strokes()))
	printer.Printf("Snapshot: %s (%d strokes, %dx%d)\n", path, canvas.Strokes(), opts.Width, opts.Height)
	return nil
}

func cmdPlay(args []string) error {
	cfg, flags, err := setup("play", args)
	if err != nil {
		return err
	}

	r, err := cfg.NewRunner()
	if err != nil {
		return err
	}
	player := audio.NewPlayer(audio.NewStreamer(r, audio.StereoXY))
	player.SetVolume(cfg.Audio.Volume)
	if err := player.Start(cfg.Audio.Latency); err != nil {
		return err
	}
	defer player.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if flags.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, flags.Duration)
		defer cancel()
		fmt.Printf("Playing for %v...\n", flags.Duration)
	} else {
		fmt.Println("Playing, Ctrl-C to stop...")
	}
	<-ctx.Done()
	return nil
}
