package main

import (
	"os"

	"github.com/silbinarywolf/tictactoe-client/internal/log"
	"github.com/urfave/cli"
)

var logger = log.New("tictactoe-client")

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "tictactoe-client"
	app.Usage = "draw a tic-tac-toe board (or a test pattern) every frame"
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
		cli.StringFlag{
			Name:  "config, c",
			Usage: "YAML config file, defaults to the user config directory",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "run",
			Usage: "open the window and start the render loop",
			Description: `
Draw the configured backend once per frame. The session backend is a local
game: left click takes a tile, right click takes back the last move, R starts
a new round and Escape quits.

Headless builds (-tags headless) tick on a timer instead of a window and stop
after --frames frames, optionally saving the last one with --snapshot.`,
			Flags:  runFlags,
			Action: Run,
		},
		{
			Name:   "config",
			Usage:  "print the effective config as YAML",
			Flags:  runFlags,
			Action: PrintConfig,
		},
	}
	// Running without a command (ie. in the browser) starts the client
	app.Flags = append(app.Flags, runFlags...)
	app.Action = Run

	if err := app.Run(os.Args); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}
