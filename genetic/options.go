package genetic

import (
	"fmt"
	"math"
	"math/rand"
)

const (
	// DefaultEliteFraction is the share of top tours carried over unchanged.
	DefaultEliteFraction = 0.2

	// DefaultMutationRate is the per-pool-entry mutation probability.
	DefaultMutationRate = 0.1

	// DefaultPoolScale multiplies fitness to get the mating-pool replication count.
	DefaultPoolScale = 100

	// DefaultMaxCopies caps replication of a single tour in the mating pool.
	// Only tours shorter than PoolScale/DefaultMaxCopies ever hit it.
	DefaultMaxCopies = 1000
)

// Options tunes a Population.
//
// Fields:
//   - EliteFraction: share of the ranked population kept as elites, in [0,1].
//   - MutationRate: probability that a pool entry is mutated, in [0,1].
//   - PoolScale: replication multiplier: copies = max(1, ⌊fitness·PoolScale⌋).
//     Fitness is 1/length, so the useful magnitude depends on coordinate scale.
//     0 puts every tour in the pool exactly once.
//   - MaxCopies: upper bound on copies per tour; 0 disables the cap.
//   - Seed: seed for the internal source; 0 selects a fixed default.
//   - Rand: explicit source; takes precedence over Seed when non-nil.
type Options struct {
	EliteFraction float64
	MutationRate  float64
	PoolScale     float64
	MaxCopies     int
	Seed          int64
	Rand          *rand.Rand
}

// DefaultOptions returns the conventional tunables (0.2 elite, 0.1 mutation,
// pool scale 100, copies capped at 1000, default seed).
func DefaultOptions() Options {
	return Options{
		EliteFraction: DefaultEliteFraction,
		MutationRate:  DefaultMutationRate,
		PoolScale:     DefaultPoolScale,
		MaxCopies:     DefaultMaxCopies,
	}
}

// Validate checks every tunable is finite and in range.
// The returned error wraps ErrBadOption.
//
// Complexity: O(1).
func (o Options) Validate() error {
	if !inUnit(o.EliteFraction) {
		return fmt.Errorf("%w: EliteFraction=%v not in [0,1]", ErrBadOption, o.EliteFraction)
	}
	if !inUnit(o.MutationRate) {
		return fmt.Errorf("%w: MutationRate=%v not in [0,1]", ErrBadOption, o.MutationRate)
	}
	if math.IsNaN(o.PoolScale) || math.IsInf(o.PoolScale, 0) || o.PoolScale < 0 {
		return fmt.Errorf("%w: PoolScale=%v must be finite and non-negative", ErrBadOption, o.PoolScale)
	}
	if o.MaxCopies < 0 {
		return fmt.Errorf("%w: MaxCopies=%d must be non-negative", ErrBadOption, o.MaxCopies)
	}
	return nil
}

// source resolves the RNG: explicit Rand first, then Seed.
func (o Options) source() *rand.Rand {
	if o.Rand != nil {
		return o.Rand
	}
	return NewRand(o.Seed)
}

func inUnit(x float64) bool {
	return !math.IsNaN(x) && x >= 0 && x <= 1
}
