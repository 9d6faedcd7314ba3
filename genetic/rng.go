// Package genetic - RNG utilities.
//
// Goals:
//   - Determinism: same seed ⇒ identical runs.
//   - Encapsulation: one factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
//   - Use DeriveRand to split independent streams (e.g. city generation vs. evolution).
package genetic

import (
	"math/rand"

	"github.com/katalvlaran/gatsp/geom"
)

// defaultRNGSeed is the fixed seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// NewRand returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed is used verbatim.
//
// Complexity: O(1).
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream id with a SplitMix64 finalizer
// so that neighbouring stream ids give uncorrelated seeds.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// DeriveRand creates an independent deterministic stream from base and a
// stream id. base.Int63() is consumed once, so deriving the same id twice
// from one base yields two different streams. A nil base uses the default seed.
//
// Complexity: O(1).
func DeriveRand(base *rand.Rand, stream uint64) *rand.Rand {
	var parent int64
	if base == nil {
		parent = defaultRNGSeed
	} else {
		parent = base.Int63()
	}
	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}

// shufflePointsInPlace performs an in-place Fisher–Yates shuffle, giving a
// uniformly random permutation.
//
// Complexity: O(n) time, O(1) extra space.
func shufflePointsInPlace(a []geom.Point, rng *rand.Rand) {
	var (
		n = len(a)
		i int
		j int
	)
	for i = n - 1; i > 0; i-- {
		j = rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
