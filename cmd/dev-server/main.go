package main

import (
	"os"

	"github.com/silbinarywolf/tictactoe-client/cmd/dev-server/internal/devwebserver"
	"github.com/silbinarywolf/tictactoe-client/internal/log"
	"github.com/urfave/cli"
)

var logger = log.New("dev-server")

// main builds the client to wasm on request and serves it with an
// index.html and wasm_exec.js
func main() {
	app := cli.NewApp()
	app.Name = "dev-server"
	app.Usage = "serve a wasm build of the client for local development"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "port",
			Value: ":8080",
			Usage: "address to listen on",
		},
		cli.StringFlag{
			Name:  "tags",
			Usage: "a list of build tags to consider satisfied during the build",
		},
		cli.StringFlag{
			Name:  "package",
			Value: devwebserver.DefaultPackage,
			Usage: "main package to build",
		},
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
	}
	app.Action = serve

	if err := app.Run(os.Args); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func serve(ctx *cli.Context) error {
	if ctx.Bool("v") {
		log.SetLevel(log.Debug)
	}
	server, err := devwebserver.New(devwebserver.Options{
		Port:      ctx.String("port"),
		Directory: ".",
		Tags:      ctx.String("tags"),
		Package:   ctx.String("package"),
	})
	if err != nil {
		return err
	}
	defer server.Close()
	return server.ListenAndServe()
}
