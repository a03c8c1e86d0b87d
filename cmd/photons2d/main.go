package main

import (
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/lukaszgryglicki/photons2d/internal/photons2d"
	"github.com/urfave/cli"
)

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "photons2d"
	app.Usage = "progressive 2D photon light-transport simulator"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	sceneFlags := []cli.Flag{
		cli.IntFlag{
			Name:  "width",
			Usage: "world width in pixels (overrides the scene file)",
		},
		cli.IntFlag{
			Name:  "height",
			Usage: "world height in pixels (overrides the scene file)",
		},
		cli.Float64Flag{
			Name:  "exposure",
			Usage: "tone-mapping gain (overrides the scene file)",
		},
		cli.Int64Flag{
			Name:  "seed",
			Usage: "base random seed, 0 seeds from the clock",
		},
		cli.IntFlag{
			Name:  "max-bounces",
			Usage: "stop a photon after this many straight pieces, 0 = unlimited",
		},
		cli.StringFlag{
			Name:  "tone-map",
			Usage: "hue or clamp",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "run",
			Usage: "trace a scene and export frames",
			Description: `
Load a scene, keep one emission worker per CPU tracing photons into the
shared buffer and tone-map it at --fps. SIGUSR1 exports the current frame
into --dir; the last frame is exported to --out (or a timestamped file in
--dir) on exit.`,
			ArgsUsage: "[scene.json]",
			Flags: append([]cli.Flag{
				cli.IntFlag{
					Name:  "workers, w",
					Usage: "emission workers, 0 = one per CPU",
				},
				cli.DurationFlag{
					Name:  "duration, d",
					Usage: "stop after this long, 0 = run until interrupted",
				},
				cli.IntFlag{
					Name:  "fps",
					Value: photons2d.FPS,
					Usage: "frames rendered per second",
				},
				cli.Float64Flag{
					Name:  "exposure-step",
					Usage: "exposure delta applied once per frame",
				},
				cli.StringFlag{
					Name:  "out, o",
					Usage: "image filename for the final frame (.png, .bmp, .tif)",
				},
				cli.StringFlag{
					Name:  "dir",
					Value: photons2d.SnapshotDir,
					Usage: "directory for timestamped screenshots",
				},
				cli.Float64Flag{
					Name:  "scale",
					Value: 1,
					Usage: "upscale exported frames by this factor",
				},
				cli.BoolFlag{
					Name:  "overlay",
					Usage: "draw segments and lights over exported frames",
				},
				cli.StringFlag{
					Name:  "gif",
					Usage: "record every rendered frame into this animated GIF",
				},
				cli.IntFlag{
					Name:  "gif-delay",
					Value: 5,
					Usage: "GIF frame delay in 100ths of a second",
				},
				cli.IntFlag{
					Name:  "gif-frames",
					Value: 300,
					Usage: "maximum number of GIF frames, 0 = unlimited",
				},
			}, sceneFlags...),
			Action: RunScene,
		},
		{
			Name:      "scene",
			Usage:     "print the segments and lights of a scene",
			ArgsUsage: "[scene.json]",
			Flags:     sceneFlags,
			Action:    ShowScene,
		},
		{
			Name:  "bench",
			Usage: "measure ray throughput",
			Description: `
Build the scene once per worker count, emit for --duration and report the
number of rays traced per second.`,
			ArgsUsage: "[scene.json]",
			Flags: append([]cli.Flag{
				cli.IntSliceFlag{
					Name:  "workers, w",
					Usage: "worker counts to measure (repeatable), default 1 and one per CPU",
				},
				cli.DurationFlag{
					Name:  "duration, d",
					Value: photons2d.BenchDuration,
					Usage: "emission time per worker count",
				},
			}, sceneFlags...),
			Action: Bench,
		},
	}
	return app
}

func main() {
	stopProfile := func() {}
	if os.Getenv("PROFILE") != "" {
		f, err := os.Create("cpu.out")
		if err != nil {
			panic(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			panic(err)
		}
		stopProfile = func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}
	}

	err := newApp().Run(os.Args)
	stopProfile()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
