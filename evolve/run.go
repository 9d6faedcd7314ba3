// Package evolve - generation loop.
package evolve

import (
	"fmt"
	"time"

	"github.com/katalvlaran/gatsp/geom"
	"github.com/katalvlaran/gatsp/genetic"
	"github.com/katalvlaran/gatsp/tour"
)

// ErrInvalidGenerations indicates a non-positive generation count.
var ErrInvalidGenerations = fmt.Errorf("%w: generation count must be positive", genetic.ErrInvalidInput)

// Observer receives per-generation statistics. Generation 0 describes the
// seeded population before any Advance.
type Observer func(genetic.Stats)

// Options configures Run.
//
// Fields:
//   - GA: population tunables (elite fraction, mutation rate, seed, ...).
//   - Observer: optional progress callback.
//   - Every: call Observer every Every generations (≤0 ⇒ 1); generation 0
//     and the final generation are always reported.
//   - KeepHistory: record Stats of every generation in Result.History.
type Options struct {
	GA          genetic.Options
	Observer    Observer
	Every       int
	KeepHistory bool
}

// DefaultOptions returns genetic.DefaultOptions with history recording on.
func DefaultOptions() Options {
	return Options{
		GA:          genetic.DefaultOptions(),
		Every:       1,
		KeepHistory: true,
	}
}

// Result is the outcome of a run.
type Result struct {
	// Best is an independent copy of the fittest tour of the final generation.
	Best *tour.Tour

	// Initial and Final describe generation 0 and the last generation.
	Initial genetic.Stats
	Final   genetic.Stats

	// History holds one entry per generation (0..Generations) when KeepHistory is set.
	History []genetic.Stats

	Population  int
	Generations int
	Elapsed     time.Duration
}

// Run seeds a population of populationSize random tours over cities, calls
// Advance exactly generations times, and returns the fittest tour.
//
// Errors are reported before any evolutionary work: ErrInvalidGenerations,
// plus everything genetic.New returns. All of them match genetic.ErrInvalidInput.
//
// Complexity: O(generations · P · n) where P is the mating-pool size.
func Run(cities []geom.Point, populationSize, generations int, opts Options) (Result, error) {
	if generations <= 0 {
		return Result{}, fmt.Errorf("%w: got %d", ErrInvalidGenerations, generations)
	}
	pop, err := genetic.New(populationSize, cities, opts.GA)
	if err != nil {
		return Result{}, err
	}

	var (
		start = time.Now()
		every = opts.Every
		res   = Result{Population: populationSize, Generations: generations}
		s     genetic.Stats
		g     int
	)
	if every <= 0 {
		every = 1
	}
	if opts.KeepHistory {
		res.History = make([]genetic.Stats, 0, generations+1)
	}

	pop.Rank()
	s = pop.Stats()
	res.Initial = s
	res.record(s, opts, true)

	for g = 1; g <= generations; g++ {
		pop.Advance()
		if !opts.KeepHistory && opts.Observer == nil {
			continue
		}
		s = pop.Stats()
		res.record(s, opts, g%every == 0 || g == generations)
	}

	res.Best, err = pop.Fittest()
	if err != nil {
		return Result{}, err
	}
	res.Final = pop.Stats()
	res.Elapsed = time.Since(start)
	return res, nil
}

// record appends to History and notifies the observer when due.
func (r *Result) record(s genetic.Stats, opts Options, notify bool) {
	if opts.KeepHistory {
		r.History = append(r.History, s)
	}
	if notify && opts.Observer != nil {
		opts.Observer(s)
	}
}
