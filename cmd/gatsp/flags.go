package main

import (
	"errors"

	"github.com/urfave/cli"

	"github.com/katalvlaran/gatsp/config"
)

var errConflictingSources = errors.New("choose at most one of --generated, --predefined, --cities-file")

func flags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{Name: "config, c", Usage: "YAML run configuration"},
		cli.BoolFlag{Name: "generated", Usage: "use randomly generated cities"},
		cli.BoolFlag{Name: "predefined", Usage: "use the built-in 10-city sample"},
		cli.StringFlag{Name: "cities-file", Usage: "read cities from a .json or .yaml file"},
		cli.IntFlag{Name: "cities", Value: config.Default().Cities.Count, Usage: "number of generated cities"},
		cli.Float64Flag{Name: "max", Value: config.Default().Cities.MaxCoordinate, Usage: "upper bound of generated coordinates"},
		cli.IntFlag{Name: "evolutions, e", Value: config.Default().Generations, Usage: "number of generations"},
		cli.IntFlag{Name: "pool, p", Value: config.Default().Population, Usage: "population size"},
		cli.Float64Flag{Name: "elite", Value: config.Default().EliteFraction, Usage: "fraction of tours kept unchanged"},
		cli.Float64Flag{Name: "mutate", Value: config.Default().MutationRate, Usage: "mutation probability"},
		cli.Int64Flag{Name: "seed", Usage: "random seed (0 picks one from the clock)"},
		cli.StringFlag{Name: "graph, g", Usage: "write the best route as SVG"},
		cli.StringFlag{Name: "chart", Usage: "write the convergence chart as SVG"},
		cli.StringFlag{Name: "report, r", Usage: "write a JSON run report"},
		cli.IntFlag{Name: "log-every", Value: config.Default().LogEvery, Usage: "log progress every N generations"},
		cli.BoolFlag{Name: "polish", Usage: "improve the final tour with 2-opt"},
		cli.IntFlag{Name: "polish-moves", Usage: "cap on 2-opt moves (0 = until local optimum)"},
		cli.BoolFlag{Name: "verbose", Usage: "human-readable debug logging"},
	}
}

// resolveConfig loads --config (or the defaults) and applies every flag the
// user set explicitly.
func resolveConfig(c *cli.Context) (config.Config, error) {
	cfg := config.Default()
	if path := c.String("config"); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return config.Config{}, err
		}
	}

	sources := 0
	if c.Bool("generated") {
		cfg.Cities.Source = config.SourceGenerated
		sources++
	}
	if c.Bool("predefined") {
		cfg.Cities.Source = config.SourcePredefined
		sources++
	}
	if c.IsSet("cities-file") {
		cfg.Cities.Source = config.SourceFile
		cfg.Cities.File = c.String("cities-file")
		sources++
	}
	if sources > 1 {
		return config.Config{}, errConflictingSources
	}

	if c.IsSet("cities") {
		cfg.Cities.Count = c.Int("cities")
	}
	if c.IsSet("max") {
		cfg.Cities.MaxCoordinate = c.Float64("max")
	}
	if c.IsSet("evolutions") {
		cfg.Generations = c.Int("evolutions")
	}
	if c.IsSet("pool") {
		cfg.Population = c.Int("pool")
	}
	if c.IsSet("elite") {
		cfg.EliteFraction = c.Float64("elite")
	}
	if c.IsSet("mutate") {
		cfg.MutationRate = c.Float64("mutate")
	}
	if c.IsSet("seed") {
		cfg.Seed = c.Int64("seed")
	}
	if c.IsSet("log-every") {
		cfg.LogEvery = c.Int("log-every")
	}
	if c.Bool("polish") {
		cfg.Polish = true
	}
	if c.IsSet("polish-moves") {
		cfg.PolishMoves = c.Int("polish-moves")
	}
	if c.IsSet("graph") {
		cfg.Output.Graph = c.String("graph")
	}
	if c.IsSet("chart") {
		cfg.Output.Chart = c.String("chart")
	}
	if c.IsSet("report") {
		cfg.Output.Report = c.String("report")
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
