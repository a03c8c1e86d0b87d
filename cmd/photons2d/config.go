package main

import (
	"errors"
	"io/fs"

	"github.com/lukaszgryglicki/photons2d/internal/photons2d"
	"github.com/urfave/cli"
)

// loadScene reads the scene named by the first argument, or the default
// scene file. When no argument is given and the default file is missing
// the built-in three-light scene is used. Flags override file values.
func loadScene(ctx *cli.Context) (*photons2d.Config, error) {
	path := ctx.Args().First()
	explicit := path != ""
	if !explicit {
		path = photons2d.SceneFile
	}
	cfg, err := photons2d.LoadConfig(path)
	switch {
	case err == nil:
	case !explicit && errors.Is(err, fs.ErrNotExist):
		logger.Noticef("no %s, using the built-in scene", path)
		cfg = photons2d.DefaultConfig()
	default:
		return nil, err
	}
	applyFlags(cfg, ctx)
	return cfg, nil
}

func applyFlags(cfg *photons2d.Config, ctx *cli.Context) {
	if ctx.IsSet("width") {
		cfg.Width = ctx.Int("width")
	}
	if ctx.IsSet("height") {
		cfg.Height = ctx.Int("height")
	}
	if ctx.IsSet("exposure") {
		exposure := ctx.Float64("exposure")
		cfg.Exposure = &exposure
	}
	if ctx.IsSet("seed") {
		cfg.Seed = ctx.Int64("seed")
	}
	if ctx.IsSet("max-bounces") {
		cfg.MaxBounces = ctx.Int("max-bounces")
	}
	if ctx.IsSet("tone-map") {
		cfg.ToneMap = ctx.String("tone-map")
	}
}
