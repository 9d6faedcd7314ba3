// Package genetic - sentinel errors.
//
// Error policy:
//   - Only package-level sentinels are exposed; branch with errors.Is.
//   - Every input-validation sentinel also matches ErrInvalidInput.
//   - Context is attached with %w at the call site, never baked into sentinels.
package genetic

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the umbrella for all caller mistakes detected before
// any evolutionary work begins.
var ErrInvalidInput = errors.New("genetic: invalid input")

var (
	// ErrEmptyCities indicates an empty city list.
	ErrEmptyCities = fmt.Errorf("%w: empty city list", ErrInvalidInput)

	// ErrInvalidSize indicates a non-positive population size.
	ErrInvalidSize = fmt.Errorf("%w: population size must be positive", ErrInvalidInput)

	// ErrBadOption indicates an out-of-range tunable in Options.
	ErrBadOption = fmt.Errorf("%w: option out of range", ErrInvalidInput)

	// ErrDegenerateFitness indicates a city set whose every tour has length 0
	// (a single city or all cities coincident), so fitness 1/length is undefined.
	ErrDegenerateFitness = fmt.Errorf("%w: zero-length tours have no finite fitness", ErrInvalidInput)
)

// ErrEmptyPopulation is returned by Fittest on a population with no tours.
var ErrEmptyPopulation = errors.New("genetic: empty population")
