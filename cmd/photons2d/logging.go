package main

import (
	"os"

	"github.com/lukaszgryglicki/photons2d/internal/log"
	"github.com/urfave/cli"
)

var logger = log.New("photons2d-cli")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") || os.Getenv("DEBUG") != "" {
		log.SetLevel(log.Debug)
	}
}
