// Package genetic - Population state and the generational step.
//
// Contracts:
//   - Size is fixed for the lifetime of a Population.
//   - Every tour is a permutation of the seed city set.
//   - Only the Population mutates its own tour collection; accessors hand out clones.
package genetic

import (
	"cmp"
	"fmt"
	"math"
	"math/rand"
	"slices"

	"github.com/katalvlaran/gatsp/geom"
	"github.com/katalvlaran/gatsp/tour"
)

// Population is a fixed-size collection of tours plus its evolution state.
type Population struct {
	tours      []*tour.Tour
	opts       Options
	rng        *rand.Rand
	generation int
}

// New seeds a population with size independent, uniformly random
// permutations of cities. Each tour owns its own route copy.
//
// Errors (all match ErrInvalidInput):
//   - ErrEmptyCities: len(cities)==0.
//   - ErrInvalidSize: size ≤ 0.
//   - ErrBadOption: see Options.Validate.
//   - geom.ErrNonFinite: NaN/Inf coordinates (wrapped with ErrInvalidInput).
//   - ErrDegenerateFitness: every tour would have length 0.
//
// Complexity: O(size·n) time and space.
func New(size int, cities []geom.Point, opts Options) (*Population, error) {
	if err := validateSeed(size, cities, opts); err != nil {
		return nil, err
	}

	var (
		rng   = opts.source()
		tours = make([]*tour.Tour, size)
		route []geom.Point
		i     int
	)
	for i = 0; i < size; i++ {
		route = geom.Clone(cities)
		shufflePointsInPlace(route, rng)
		tours[i] = tour.New(route)
	}

	return &Population{tours: tours, opts: opts, rng: rng}, nil
}

// FromTours builds a population from existing tours (cloned). All tours must
// visit the same multiset of cities as the first one.
func FromTours(tours []*tour.Tour, opts Options) (*Population, error) {
	if len(tours) == 0 {
		return nil, ErrInvalidSize
	}
	cities := tours[0].Route()
	if err := validateSeed(len(tours), cities, opts); err != nil {
		return nil, err
	}

	var (
		own = make([]*tour.Tour, len(tours))
		i   int
	)
	for i = range tours {
		if err := tour.ValidatePermutationOf(tours[i], cities); err != nil {
			return nil, fmt.Errorf("%w: tour %d: %w", ErrInvalidInput, i, err)
		}
		own[i] = tours[i].Clone()
	}

	return &Population{tours: own, opts: opts, rng: opts.source()}, nil
}

// validateSeed runs all pre-evolution checks shared by New and FromTours.
func validateSeed(size int, cities []geom.Point, opts Options) error {
	if len(cities) == 0 {
		return ErrEmptyCities
	}
	if size <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	if err := opts.Validate(); err != nil {
		return err
	}
	if err := geom.Validate(cities); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if geom.AllCoincident(cities) {
		return fmt.Errorf("%w: %d coincident cities", ErrDegenerateFitness, len(cities))
	}
	return nil
}

// Size returns the fixed number of tours.
func (p *Population) Size() int { return len(p.tours) }

// Generation returns how many times Advance has completed.
func (p *Population) Generation() int { return p.generation }

// Options returns the tunables the population was built with.
func (p *Population) Options() Options { return p.opts }

// Tours returns deep copies of the current tours in storage order.
func (p *Population) Tours() []*tour.Tour { return cloneAll(p.tours) }

// Rank evaluates tours that are not evaluated yet (cached values are kept),
// sorts the population by descending fitness with a stable sort, and returns
// the population's own tours in that order.
//
// Complexity: O(n·u + s·log s) where u is the number of unevaluated tours.
func (p *Population) Rank() []*tour.Tour {
	rankTours(p.tours)
	return p.tours
}

// Advance replaces the population with the next generation. See the package
// documentation for the six steps.
//
// Complexity: O(P·n) time and space, where P is the mating-pool size.
func (p *Population) Advance() {
	var (
		size       = len(p.tours)
		ranked     = p.Rank()
		eliteCount = p.eliteCount()
	)

	// Elites and the old generation are cloned before the pool is mutated.
	elites := cloneAll(ranked[:eliteCount])
	previous := cloneAll(ranked)

	pool := p.matingPool(ranked)
	p.mutatePool(pool)
	rankTours(pool)

	keep := size - eliteCount
	if keep > len(pool) {
		keep = len(pool)
	}
	pool = pool[:keep]

	next := make([]*tour.Tour, 0, eliteCount+keep+size)
	next = append(next, elites...)
	next = append(next, pool...)
	next = append(next, previous...)
	rankTours(next)

	p.tours = slices.Clone(next[:size])
	p.generation++
}

// Fittest returns a copy of the tour with the highest fitness. The population
// is scanned, not sorted; ties resolve to the earliest tour.
//
// Complexity: O(s) for evaluated tours.
func (p *Population) Fittest() (*tour.Tour, error) {
	if len(p.tours) == 0 {
		return nil, ErrEmptyPopulation
	}

	var (
		best = p.tours[0]
		i    int
	)
	for i = 1; i < len(p.tours); i++ {
		if p.tours[i].Fitness() > best.Fitness() {
			best = p.tours[i]
		}
	}
	return best.Clone(), nil
}

// eliteCount is ⌊size·EliteFraction⌋.
func (p *Population) eliteCount() int {
	return int(math.Floor(float64(len(p.tours)) * p.opts.EliteFraction))
}

// rankTours evaluates lazily and stable-sorts by descending fitness.
func rankTours(ts []*tour.Tour) {
	var i int
	for i = range ts {
		if !ts[i].IsEvaluated() {
			ts[i].Evaluate()
		}
	}
	slices.SortStableFunc(ts, func(a, b *tour.Tour) int {
		return cmp.Compare(b.Fitness(), a.Fitness())
	})
}

// cloneAll deep-copies every tour.
func cloneAll(ts []*tour.Tour) []*tour.Tour {
	out := make([]*tour.Tour, len(ts))

	var i int
	for i = range ts {
		out[i] = ts[i].Clone()
	}
	return out
}
