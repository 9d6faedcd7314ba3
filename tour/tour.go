// Package tour - Tour type, evaluation cache, and mutation operator.
//
// Design:
//   - Route storage is private; accessors return copies.
//   - Cyclic adjacency uses explicit modular indexing (i+1)%n.
//   - No logging, no panics on user input.
package tour

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/katalvlaran/gatsp/geom"
)

// ErrNotPermutation is returned when a route is not a rearrangement of the
// expected city multiset.
var ErrNotPermutation = errors.New("tour: route is not a permutation of the city set")

// Tour is one candidate cyclic route.
type Tour struct {
	route     []geom.Point
	length    float64
	fitness   float64
	evaluated bool
}

// New returns an unevaluated Tour over a private copy of route.
//
// Complexity: O(n) time, O(n) space.
func New(route []geom.Point) *Tour {
	return &Tour{route: geom.Clone(route)}
}

// Len returns the number of stops N.
func (t *Tour) Len() int { return len(t.route) }

// At returns the i-th stop. It panics on out-of-range i like a slice index.
func (t *Tour) At(i int) geom.Point { return t.route[i] }

// Route returns a copy of the visiting order.
func (t *Tour) Route() []geom.Point { return geom.Clone(t.route) }

// Length returns the total cyclic distance, including the closing edge
// route[N-1] -> route[0]. Cached after Evaluate; otherwise it is computed
// on the fly without touching the cache.
//
// Complexity: O(1) when evaluated, O(n) otherwise.
func (t *Tour) Length() float64 {
	if t.evaluated {
		return t.length
	}
	return cycleLength(t.route)
}

// Fitness returns 1/Length. A zero-length tour yields +Inf.
func (t *Tour) Fitness() float64 {
	if t.evaluated {
		return t.fitness
	}
	return fitnessOf(cycleLength(t.route))
}

// IsDegenerate reports whether the tour has zero total length.
func (t *Tour) IsDegenerate() bool {
	return t.Length() == 0
}

// IsEvaluated reports whether length and fitness are cached for the
// current route.
func (t *Tour) IsEvaluated() bool { return t.evaluated }

// Evaluate computes and caches length, then fitness. Calling it again
// without an intervening mutation leaves the cache unchanged.
//
// Complexity: O(n) on first call, O(1) afterwards.
func (t *Tour) Evaluate() {
	if t.evaluated {
		return
	}
	t.length = cycleLength(t.route)
	t.fitness = fitnessOf(t.length)
	t.evaluated = true
}

// Invalidate drops the cached length and fitness.
func (t *Tour) Invalidate() {
	t.length = 0
	t.fitness = 0
	t.evaluated = false
}

// Mutate reverses a random sub-sequence in place and re-evaluates.
//
// Two indices i, j are drawn uniformly from [0, N) and ordered so i <= j;
// route[i:j) is then reversed. i == j (or j == i+1) leaves the route
// unchanged, which is a valid outcome.
//
// Complexity: O(n) time (dominated by re-evaluation), O(1) extra space.
func (t *Tour) Mutate(rng *rand.Rand) {
	var n = len(t.route)
	if n == 0 {
		return
	}

	var (
		i = rng.Intn(n)
		j = rng.Intn(n)
	)
	if i > j {
		i, j = j, i
	}
	reverseSegment(t.route, i, j)

	t.Invalidate()
	t.Evaluate()
}

// Clone returns a deep copy, cache included.
func (t *Tour) Clone() *Tour {
	return &Tour{
		route:     geom.Clone(t.route),
		length:    t.length,
		fitness:   t.fitness,
		evaluated: t.evaluated,
	}
}

// String renders "{ fitness: F, p1/p2/.../pN}" with F to three decimals.
func (t *Tour) String() string {
	var (
		b strings.Builder
		i int
	)
	fmt.Fprintf(&b, "{ fitness: %.3f, ", t.Fitness())
	for i = range t.route {
		if i > 0 {
			b.WriteByte('/')
		}
		b.WriteString(t.route[i].String())
	}
	b.WriteByte('}')
	return b.String()
}

// cycleLength sums d(route[i], route[(i+1)%n]) over all i.
// For n==1 the only edge is a self-loop of length 0.
//
// Complexity: O(n).
func cycleLength(route []geom.Point) float64 {
	var (
		n     = len(route)
		total float64
		i     int
	)
	for i = 0; i < n; i++ {
		total += route[i].Distance(route[(i+1)%n])
	}
	return total
}

// fitnessOf maps a length to 1/length, with +Inf for zero length.
func fitnessOf(length float64) float64 {
	if length == 0 {
		return math.Inf(1)
	}
	return 1 / length
}

// reverseSegment reverses the half-open range route[i:j) in place.
// Contract: 0 ≤ i ≤ j ≤ len(route).
//
// Complexity: O(j-i) time, O(1) space.
func reverseSegment(route []geom.Point, i, j int) {
	for j--; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}
}
