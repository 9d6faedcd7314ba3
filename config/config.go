// Package config holds the run configuration shared by the CLI: where the
// cities come from, population and generation counts, GA tunables, and
// output paths. A YAML file is decoded over Default() and validated with
// struct tags.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gatsp/cities"
	"github.com/katalvlaran/gatsp/genetic"
)

// City sources.
const (
	SourceGenerated  = "generated"
	SourcePredefined = "predefined"
	SourceFile       = "file"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full run configuration.
type Config struct {
	Cities CitiesConfig `yaml:"cities"`

	Population  int `yaml:"population" validate:"gt=0"`
	Generations int `yaml:"generations" validate:"gt=0"`

	EliteFraction float64 `yaml:"elite_fraction" validate:"gte=0,lte=1"`
	MutationRate  float64 `yaml:"mutation_rate" validate:"gte=0,lte=1"`
	PoolScale     float64 `yaml:"pool_scale" validate:"gte=0"`
	MaxCopies     int     `yaml:"max_copies" validate:"gte=0"`
	Seed          int64   `yaml:"seed"`

	// LogEvery is the progress logging cadence in generations; 0 logs only
	// the first and last generation.
	LogEvery int `yaml:"log_every" validate:"gte=0"`

	// Polish runs 2-opt on the final best tour; PolishMoves caps accepted
	// moves (0 = until no move improves).
	Polish      bool `yaml:"polish"`
	PolishMoves int  `yaml:"polish_moves" validate:"gte=0"`

	Output OutputConfig `yaml:"output"`
}

// CitiesConfig selects the city source.
type CitiesConfig struct {
	Source        string  `yaml:"source" validate:"oneof=generated predefined file"`
	Count         int     `yaml:"count" validate:"gt=0"`
	MaxCoordinate float64 `yaml:"max_coordinate" validate:"gt=0"`
	File          string  `yaml:"file" validate:"required_if=Source file"`
}

// OutputConfig lists optional output files; empty means "do not write".
type OutputConfig struct {
	Graph  string `yaml:"graph"`
	Chart  string `yaml:"chart"`
	Report string `yaml:"report"`
}

// Default returns the stock configuration: 10 generated cities in
// [0,100)², population 10, 1000 generations, default GA tunables.
func Default() Config {
	ga := genetic.DefaultOptions()
	return Config{
		Cities: CitiesConfig{
			Source:        SourceGenerated,
			Count:         cities.DefaultCount,
			MaxCoordinate: cities.DefaultMaxCoordinate,
		},
		Population:    10,
		Generations:   1000,
		EliteFraction: ga.EliteFraction,
		MutationRate:  ga.MutationRate,
		PoolScale:     ga.PoolScale,
		MaxCopies:     ga.MaxCopies,
		LogEvery:      100,
	}
}

// Decode reads YAML from r over Default() and validates the result.
// Unknown keys are rejected.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load opens path and decodes it with Decode.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks struct-tag constraints. The error wraps both
// ErrInvalidConfig and the validator.ValidationErrors describing each field.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// GA maps the tunables onto genetic.Options.
func (c Config) GA() genetic.Options {
	return genetic.Options{
		EliteFraction: c.EliteFraction,
		MutationRate:  c.MutationRate,
		PoolScale:     c.PoolScale,
		MaxCopies:     c.MaxCopies,
		Seed:          c.Seed,
	}
}
