package main

import (
	"context"
	"fmt"
	"image"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lukaszgryglicki/photons2d/internal/log"
	"github.com/lukaszgryglicki/photons2d/internal/photons2d"
	"github.com/lukaszgryglicki/photons2d/internal/snapshot"
	"github.com/urfave/cli"
)

// exporter writes frames the way the run flags ask for.
type exporter struct {
	world   *photons2d.World
	dir     string
	overlay bool
	opts    snapshot.Options
}

func (x *exporter) save(path string, frame image.Image) error {
	if x.overlay {
		img, err := snapshot.Overlay(frame, x.world)
		if err != nil {
			return err
		}
		frame = img
	}
	if path == "" {
		path = snapshot.DefaultName(x.dir, time.Now())
	}
	return snapshot.Save(path, frame, x.opts)
}

// RunScene traces a scene until interrupted or --duration elapses.
func RunScene(ctx *cli.Context) error {
	setupLogging(ctx)

	cfg, err := loadScene(ctx)
	if err != nil {
		return err
	}
	if ctx.IsSet("workers") {
		cfg.Workers = ctx.Int("workers")
	}
	tm, err := photons2d.ParseToneMap(cfg.ToneMap)
	if err != nil {
		return err
	}
	fps := ctx.Int("fps")
	if fps <= 0 {
		return fmt.Errorf("fps must be positive, got %d", fps)
	}
	w, err := cfg.Build()
	if err != nil {
		return err
	}

	x := &exporter{
		world:   w,
		dir:     ctx.String("dir"),
		overlay: ctx.Bool("overlay"),
		opts:    snapshot.Options{Scale: ctx.Float64("scale")},
	}
	var rec *snapshot.Recorder
	if ctx.String("gif") != "" {
		rec = snapshot.NewRecorder(ctx.Int("gif-delay"), ctx.Int("gif-frames"))
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if d := ctx.Duration("duration"); d > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(runCtx, d)
		defer cancel()
	}
	snap := make(chan os.Signal, 1)
	signal.Notify(snap, syscall.SIGUSR1)
	defer signal.Stop(snap)

	r := photons2d.NewRenderer(w, cfg.Workers)
	r.ToneMap = tm
	defer r.Close()
	e := photons2d.NewEmitter(w, cfg.Workers, cfg.Seed)
	if err := e.Start(runCtx); err != nil {
		return err
	}
	defer e.Stop()

	logger.Noticef("tracing %dx%d scene with %d lights on %d workers, pid %d (SIGUSR1 saves a screenshot)",
		w.Width, w.Height, w.LightCount(), e.Workers(), os.Getpid())
	frame := image.NewNRGBA(image.Rect(0, 0, w.Width, w.Height))
	step := ctx.Float64("exposure-step")
	debugFrames := log.Enabled(log.Debug)
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()
	start := time.Now()
	frames := 0

loop:
	for {
		select {
		case <-runCtx.Done():
			break loop
		case <-snap:
			if err := r.Render(frame); err != nil {
				return err
			}
			if err := x.save("", frame); err != nil {
				logger.Errorf("screenshot failed: %v", err)
			}
		case <-ticker.C:
			if step != 0 {
				w.AdjustExposure(step)
			}
			if err := r.Render(frame); err != nil {
				return err
			}
			frames++
			if rec != nil {
				rec.Add(frame)
			}
			if debugFrames {
				logger.Debugf("frame %d: %d rays, exposure %g, %d interactions",
					frames, w.RayCount(), w.Exposure(), w.Tally().Interactions())
			}
		}
	}

	e.Stop()
	elapsed := time.Since(start)
	if err := r.Render(frame); err != nil {
		return err
	}
	if err := x.save(ctx.String("out"), frame); err != nil {
		return err
	}
	if rec != nil && rec.Len() > 0 {
		if err := rec.Save(ctx.String("gif")); err != nil {
			return err
		}
	}
	logger.Noticef("run statistics\n%s", runStats(w, elapsed, frames))
	return nil
}
