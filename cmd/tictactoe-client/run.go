package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/silbinarywolf/tictactoe-client/internal/app"
	"github.com/silbinarywolf/tictactoe-client/internal/config"
	"github.com/urfave/cli"
)

var runFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "backend, b",
		Usage: "what to draw: triangle, grid or session",
	},
	cli.IntFlag{
		Name:  "rows",
		Usage: "rows of the grid and the game board",
	},
	cli.IntFlag{
		Name:  "cols",
		Usage: "columns of the grid and the game board",
	},
	cli.BoolFlag{
		Name:  "fps",
		Usage: "log the frame rate every 100 frames (--fps=false to turn off)",
	},
	cli.IntFlag{
		Name:  "frames",
		Usage: "stop after this many frames, 0 runs until the window closes",
	},
	cli.StringFlag{
		Name:  "snapshot, o",
		Usage: "save the last frame to this PNG file when the run ends",
	},
}

// flagSource is the part of *cli.Context the run flags are read from
type flagSource interface {
	IsSet(name string) bool
	String(name string) string
	Int(name string) int
	Bool(name string) bool
}

// Run the client until the window closes or the frame limit is reached
func Run(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	setupLogging(ctx, cfg)
	logger.Infof("starting %s backend on surface %q", cfg.Render.Backend, cfg.Render.Surface)
	return app.StartApp(cfg)
}

// PrintConfig writes the config Run would use to stdout
func PrintConfig(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(ctx.App.Writer, string(data))
	return err
}

func loadConfig(ctx *cli.Context) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if path := ctx.GlobalString("config"); path != "" {
		cfg, err = config.LoadFromPath(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}
	if err := applyRunFlags(cfg, ctx); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyRunFlags overrides the config with every run flag that was set
func applyRunFlags(cfg *config.Config, flags flagSource) error {
	if flags.IsSet("backend") {
		cfg.Render.Backend = config.Backend(flags.String("backend"))
	}
	if flags.IsSet("rows") {
		cfg.Render.Grid.Rows = flags.Int("rows")
		cfg.Game.Rows = flags.Int("rows")
	}
	if flags.IsSet("cols") {
		cfg.Render.Grid.Cols = flags.Int("cols")
		cfg.Game.Cols = flags.Int("cols")
	}
	if flags.IsSet("rows") || flags.IsSet("cols") {
		// a smaller board keeps the game winnable
		if longest := max(cfg.Game.Rows, cfg.Game.Cols); longest > 0 && cfg.Game.LengthToWin > longest {
			cfg.Game.LengthToWin = longest
		}
	}
	if flags.IsSet("fps") {
		cfg.Render.Instrument = flags.Bool("fps")
	}
	if flags.IsSet("frames") {
		cfg.Render.MaxFrames = flags.Int("frames")
	}
	if flags.IsSet("snapshot") {
		cfg.Snapshot = flags.String("snapshot")
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid flags")
	}
	return nil
}
