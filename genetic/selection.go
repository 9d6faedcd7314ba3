// Package genetic - mating pool construction and mutation.
//
// Selection is fitness-proportionate by replication: a tour appears in the
// pool copies(fitness) times. The max(1, …) floor keeps weak tours in the
// pool at least once; the optional MaxCopies ceiling bounds pool growth.
package genetic

import (
	"math"

	"github.com/katalvlaran/gatsp/tour"
)

// copies returns the replication count for a tour of the given fitness.
//
//	copies = max(1, ⌊fitness·PoolScale⌋), then min(·, MaxCopies) if MaxCopies > 0.
//
// Non-finite or non-positive products collapse to 1 (or MaxCopies for +Inf
// when capped).
//
// Complexity: O(1).
func (o Options) copies(fitness float64) int {
	var w = math.Floor(fitness * o.PoolScale)

	if math.IsInf(w, 1) && o.MaxCopies > 0 {
		return o.MaxCopies
	}
	if math.IsNaN(w) || math.IsInf(w, 0) || w < 1 {
		return 1
	}
	if o.MaxCopies > 0 && w > float64(o.MaxCopies) {
		return o.MaxCopies
	}
	if w > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(w)
}

// matingPool replicates each ranked tour according to its fitness. Every
// replica is an independent deep copy, so mutating one never touches another
// or the source. Pool order follows rank order.
//
// Complexity: O(P·n) where P is the resulting pool size.
func (p *Population) matingPool(ranked []*tour.Tour) []*tour.Tour {
	var (
		counts = make([]int, len(ranked))
		total  int
		i, k   int
	)
	for i = range ranked {
		counts[i] = p.opts.copies(ranked[i].Fitness())
		total += counts[i]
	}

	pool := make([]*tour.Tour, 0, total)
	for i = range ranked {
		for k = 0; k < counts[i]; k++ {
			pool = append(pool, ranked[i].Clone())
		}
	}
	return pool
}

// mutatePool mutates each entry independently with probability MutationRate.
// Mutated tours re-evaluate themselves.
//
// Complexity: O(P) draws plus O(n) per mutation.
func (p *Population) mutatePool(pool []*tour.Tour) {
	var i int
	for i = range pool {
		if p.rng.Float64() < p.opts.MutationRate {
			pool[i].Mutate(p.rng)
		}
	}
}
