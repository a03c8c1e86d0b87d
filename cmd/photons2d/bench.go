package main

import (
	"context"
	"runtime"

	"github.com/lukaszgryglicki/photons2d/internal/photons2d"
	"github.com/urfave/cli"
)

// Bench reports ray throughput for each requested worker count.
func Bench(ctx *cli.Context) error {
	setupLogging(ctx)

	cfg, err := loadScene(ctx)
	if err != nil {
		return err
	}
	counts := ctx.IntSlice("workers")
	if len(counts) == 0 {
		counts = []int{1}
		if n := runtime.NumCPU(); n > 1 {
			counts = append(counts, n)
		}
	}

	rows := make([]benchRow, 0, len(counts))
	for _, n := range counts {
		if n <= 0 {
			n = runtime.NumCPU()
		}
		w, err := cfg.Build()
		if err != nil {
			return err
		}
		rate, err := photons2d.EstimateRate(context.Background(), w, n, cfg.Seed, ctx.Duration("duration"))
		if err != nil {
			return err
		}
		logger.Infof("%d workers: %.0f rays/s", n, rate)
		rows = append(rows, benchRow{workers: n, rate: rate})
	}
	logger.Noticef("throughput\n%s", benchTable(rows))
	return nil
}
