package main

import (
	"github.com/urfave/cli"
)

// ShowScene prints the walls and lights of a scene.
func ShowScene(ctx *cli.Context) error {
	setupLogging(ctx)

	cfg, err := loadScene(ctx)
	if err != nil {
		return err
	}
	w, err := cfg.Build()
	if err != nil {
		return err
	}
	logger.Noticef("scene %dx%d, exposure %g, max bounces %d\n%s",
		w.Width, w.Height, w.Exposure(), w.MaxBounces, sceneTables(w))
	return nil
}
