// Command gatsp searches for a short closed tour through a set of cities
// with a genetic algorithm.
//
//	gatsp --predefined --evolutions 2000 --pool 20 --graph route.svg
//	gatsp --config run.yaml --report run.json
//
// Flags given on the command line override values from --config.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "gatsp:", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "gatsp"
	app.Usage = "genetic-algorithm solver for the Euclidean travelling salesman problem"
	app.Version = "0.1.0"
	app.Flags = flags()
	app.Action = run
	return app
}
