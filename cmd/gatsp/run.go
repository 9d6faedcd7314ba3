package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli"
	"go.uber.org/zap"

	"github.com/katalvlaran/gatsp/cities"
	"github.com/katalvlaran/gatsp/config"
	"github.com/katalvlaran/gatsp/evolve"
	"github.com/katalvlaran/gatsp/genetic"
	"github.com/katalvlaran/gatsp/geom"
	"github.com/katalvlaran/gatsp/render"
	"github.com/katalvlaran/gatsp/report"
)

// Random stream ids split off the run seed.
const (
	cityStream uint64 = 1
	gaStream   uint64 = 2
)

func run(c *cli.Context) error {
	cfg, err := resolveConfig(c)
	if err != nil {
		return err
	}

	logger, err := newLogger(c.Bool("verbose"))
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck
	log := logger.Sugar()

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	base := genetic.NewRand(cfg.Seed)

	pts, err := loadCities(cfg.Cities, genetic.DeriveRand(base, cityStream))
	if err != nil {
		return err
	}
	log.Infow("starting",
		"cities", len(pts),
		"source", cfg.Cities.Source,
		"population", cfg.Population,
		"generations", cfg.Generations,
		"seed", cfg.Seed,
	)

	opts := evolve.Options{
		GA:          cfg.GA(),
		Every:       cfg.LogEvery,
		KeepHistory: true,
		Observer: func(s genetic.Stats) {
			log.Infow("generation",
				"gen", s.Generation,
				"best", s.Best,
				"mean", s.Mean,
				"stddev", s.StdDev,
			)
		},
	}
	opts.GA.Rand = genetic.DeriveRand(base, gaStream)
	if opts.Every <= 0 {
		opts.Every = cfg.Generations
	}

	res, err := evolve.Run(pts, cfg.Population, cfg.Generations, opts)
	if err != nil {
		return err
	}

	if cfg.Polish {
		polished, moves := res.Best.TwoOpt(cfg.PolishMoves)
		log.Infow("polished",
			"moves", moves,
			"before", res.Best.Length(),
			"after", polished.Length(),
		)
		res.Best = polished
	}

	if err := writeOutputs(cfg.Output, res, log); err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "%s generations in %s: best distance %s (from %s)\n",
		humanize.Comma(int64(res.Generations)),
		res.Elapsed.Round(time.Millisecond),
		humanize.FtoaWithDigits(res.Best.Length(), 3),
		humanize.FtoaWithDigits(res.Initial.Best, 3),
	)
	fmt.Fprintln(c.App.Writer, res.Best)
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func loadCities(cc config.CitiesConfig, rng *rand.Rand) ([]geom.Point, error) {
	switch cc.Source {
	case config.SourcePredefined:
		return cities.Sample(), nil
	case config.SourceFile:
		return cities.Load(cc.File)
	default:
		return cities.Random(cc.Count, cc.MaxCoordinate, rng)
	}
}

func writeOutputs(out config.OutputConfig, res evolve.Result, log *zap.SugaredLogger) error {
	if out.Graph != "" {
		opts := render.DefaultOptions()
		opts.Title = fmt.Sprintf("distance %.3f", res.Best.Length())
		if err := writeFile(out.Graph, func(w io.Writer) error {
			return render.Route(w, res.Best, opts)
		}); err != nil {
			return err
		}
		log.Infow("route written", "path", out.Graph)
	}

	if out.Chart != "" {
		opts := render.DefaultOptions()
		opts.Title = "convergence"
		if err := writeFile(out.Chart, func(w io.Writer) error {
			return render.Convergence(w, res.History, opts)
		}); err != nil {
			return err
		}
		log.Infow("chart written", "path", out.Chart)
	}

	if out.Report != "" {
		sys, err := report.CollectSysInfo()
		if err != nil {
			log.Warnw("system info incomplete", "error", err)
		}
		if err := writeFile(out.Report, func(w io.Writer) error {
			return report.Write(w, report.FromResult(res, &sys))
		}); err != nil {
			return err
		}
		log.Infow("report written", "path", out.Report)
	}
	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}
