// Package cities - generators and loaders.
//
// Design:
//   - Randomness is explicit: Random takes a *rand.Rand and never falls back
//     to a time-based source.
//   - Loaders validate coordinates and reject empty sets.
package cities

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/gatsp/geom"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultCount is the number of random cities when none is requested.
	DefaultCount = 10

	// DefaultMaxCoordinate bounds random coordinates to [0, DefaultMaxCoordinate).
	DefaultMaxCoordinate = 100
)

var (
	// ErrInvalidCount indicates a non-positive city count.
	ErrInvalidCount = errors.New("cities: count must be positive")

	// ErrInvalidMax indicates a non-positive or non-finite coordinate bound.
	ErrInvalidMax = errors.New("cities: max coordinate must be positive and finite")

	// ErrNeedRand indicates a nil random source.
	ErrNeedRand = errors.New("cities: rng is required")

	// ErrEmpty indicates a decoded file without cities.
	ErrEmpty = errors.New("cities: no cities in input")

	// ErrUnknownFormat indicates a file extension Load does not understand.
	ErrUnknownFormat = errors.New("cities: unknown file format")
)

// Random returns count cities with integer coordinates drawn uniformly
// from [0, maxCoord) on both axes.
//
// Complexity: O(count).
func Random(count int, maxCoord float64, rng *rand.Rand) ([]geom.Point, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCount, count)
	}
	if !(maxCoord > 0) || math.IsInf(maxCoord, 0) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidMax, maxCoord)
	}
	if rng == nil {
		return nil, ErrNeedRand
	}

	out := make([]geom.Point, count)

	var i int
	for i = range out {
		out[i] = geom.Pt(math.Floor(rng.Float64()*maxCoord), math.Floor(rng.Float64()*maxCoord))
	}
	return out, nil
}

// Sample returns the predefined 10-city instance.
func Sample() []geom.Point {
	return geom.FromPairs([][2]float64{
		{6, 10}, {11, 13}, {6, 13}, {4, 14}, {18, 6},
		{15, 10}, {12, 16}, {11, 19}, {11, 0}, {16, 6},
	})
}

// Decode reads a JSON array of {"x","y"} objects.
func Decode(r io.Reader) ([]geom.Point, error) {
	var pts []geom.Point

	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&pts); err != nil {
		return nil, fmt.Errorf("cities: decode json: %w", err)
	}
	return checked(pts)
}

// DecodeYAML reads a YAML sequence of {x, y} mappings.
func DecodeYAML(r io.Reader) ([]geom.Point, error) {
	var pts []geom.Point

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&pts); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("cities: decode yaml: %w", err)
	}
	return checked(pts)
}

// Encode writes pts as an indented JSON array.
func Encode(w io.Writer, pts []geom.Point) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(pts)
}

// Load reads a city file, choosing the decoder by extension
// (.json, .yaml, .yml).
func Load(path string) ([]geom.Point, error) {
	var decode func(io.Reader) ([]geom.Point, error)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		decode = Decode
	case ".yaml", ".yml":
		decode = DecodeYAML
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	pts, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return pts, nil
}

func checked(pts []geom.Point) ([]geom.Point, error) {
	if len(pts) == 0 {
		return nil, ErrEmpty
	}
	if err := geom.Validate(pts); err != nil {
		return nil, err
	}
	return pts, nil
}
