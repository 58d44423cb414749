package main

import (
	"github.com/silbinarywolf/tictactoe-client/internal/config"
	"github.com/silbinarywolf/tictactoe-client/internal/log"
	"github.com/urfave/cli"
)

// setupLogging applies the config's log level, -v and -vv take precedence
func setupLogging(ctx *cli.Context, cfg *config.Config) {
	if level, err := log.ParseLevel(cfg.Log.Level); err == nil {
		log.SetLevel(level)
	}

	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
