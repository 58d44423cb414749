package main

import (
	"net/http"
	"os"

	"github.com/silbinarywolf/tictactoe-client/internal/log"
	"github.com/urfave/cli"
)

var logger = log.New("asset-server")

// main will start serving all files in the "dist" folder on the server
// on port 8080
func main() {
	app := cli.NewApp()
	app.Name = "asset-server"
	app.Usage = "serve a built wasm client"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "dir",
			Value: "./dist",
			Usage: "folder to serve",
		},
		cli.StringFlag{
			Name:  "port",
			Value: ":8080",
			Usage: "address to listen on",
		},
	}
	app.Action = func(ctx *cli.Context) error {
		dir := ctx.String("dir")
		if _, err := os.Stat(dir); err != nil {
			return err
		}
		http.Handle("/", http.FileServer(http.Dir(dir)))
		logger.Noticef("Serving %s, listening on %s...", dir, ctx.String("port"))
		return http.ListenAndServe(ctx.String("port"), nil)
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}
