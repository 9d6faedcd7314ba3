package tour_test

import (
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/katalvlaran/gatsp/geom"
	"github.com/katalvlaran/gatsp/tour"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// square is the 5x5 rectangle used throughout: perimeter 20, fitness 0.05.
func square() []geom.Point {
	return []geom.Point{geom.Pt(0, 0), geom.Pt(5, 0), geom.Pt(5, 5), geom.Pt(0, 5)}
}

// TestTour_RectangleLengthAndFitness pins the reference numbers of the square.
func TestTour_RectangleLengthAndFitness(t *testing.T) {
	tr := tour.New(square())
	assert.False(t, tr.IsEvaluated())

	assert.Equal(t, 20.0, tr.Length())
	assert.Equal(t, 0.05, tr.Fitness())
	assert.False(t, tr.IsEvaluated(), "Length/Fitness on an unevaluated tour must not fill the cache")

	tr.Evaluate()
	require.True(t, tr.IsEvaluated())
	assert.Equal(t, 20.0, tr.Length())
	assert.Equal(t, 0.05, tr.Fitness())
}

// TestTour_ClosingEdgeCounted checks that the return leg is part of the length.
func TestTour_ClosingEdgeCounted(t *testing.T) {
	tr := tour.New([]geom.Point{geom.Pt(0, 0), geom.Pt(3, 4)})
	assert.Equal(t, 10.0, tr.Length(), "there and back again")
}

// TestTour_SingleCityDegenerate covers the zero-length policy (+Inf fitness).
func TestTour_SingleCityDegenerate(t *testing.T) {
	tr := tour.New([]geom.Point{geom.Pt(7, 7)})
	tr.Evaluate()
	assert.Equal(t, 0.0, tr.Length())
	assert.True(t, math.IsInf(tr.Fitness(), 1))
	assert.True(t, tr.IsDegenerate())

	tr = tour.New([]geom.Point{geom.Pt(1, 1), geom.Pt(1, 1), geom.Pt(1, 1)})
	assert.True(t, tr.IsDegenerate())
	assert.False(t, math.IsNaN(tr.Fitness()))
}

// TestTour_NewCopiesInput makes sure the caller's slice is never aliased.
func TestTour_NewCopiesInput(t *testing.T) {
	src := square()
	tr := tour.New(src)
	src[0] = geom.Pt(100, 100)
	assert.Equal(t, geom.Pt(0, 0), tr.At(0))

	r := tr.Route()
	r[1] = geom.Pt(-1, -1)
	assert.Equal(t, geom.Pt(5, 0), tr.At(1), "Route must return a copy")
}

// TestTour_EvaluateIdempotent checks the cache does not drift on repeated calls.
func TestTour_EvaluateIdempotent(t *testing.T) {
	tr := tour.New(square())
	tr.Evaluate()
	l, f := tr.Length(), tr.Fitness()
	tr.Evaluate()
	assert.Equal(t, l, tr.Length())
	assert.Equal(t, f, tr.Fitness())

	tr.Invalidate()
	assert.False(t, tr.IsEvaluated())
	assert.Equal(t, l, tr.Length())
}

// TestTour_MutatePreservesMultiset runs many mutations on a 12-city route and
// checks N and the visited multiset never change.
func TestTour_MutatePreservesMultiset(t *testing.T) {
	cities := make([]geom.Point, 0, 12)
	for i := 0; i < 12; i++ {
		cities = append(cities, geom.Pt(float64(i*i%7), float64(i%5)))
	}
	tr := tour.New(cities)
	rng := rand.New(rand.NewSource(42))

	for k := 0; k < 500; k++ {
		tr.Mutate(rng)
		require.Equal(t, len(cities), tr.Len())
		require.NoError(t, tour.ValidatePermutationOf(tr, cities))
		require.True(t, tr.IsEvaluated(), "mutation re-evaluates")
		require.InDelta(t, 1/tr.Length(), tr.Fitness(), 1e-15)
	}
}

// TestTour_MutateReversesDrawnSegment replays the RNG draws to predict the result.
func TestTour_MutateReversesDrawnSegment(t *testing.T) {
	cities := make([]geom.Point, 9)
	for i := range cities {
		cities[i] = geom.Pt(float64(i), 0)
	}

	for seed := int64(1); seed <= 20; seed++ {
		probe := rand.New(rand.NewSource(seed))
		i, j := probe.Intn(len(cities)), probe.Intn(len(cities))
		if i > j {
			i, j = j, i
		}
		want := geom.Clone(cities)
		slices.Reverse(want[i:j])

		tr := tour.New(cities)
		tr.Mutate(rand.New(rand.NewSource(seed)))
		assert.Equal(t, want, tr.Route(), "seed %d, segment [%d,%d)", seed, i, j)
	}
}

// TestTour_CloneIndependent checks deep-copy semantics in both directions.
func TestTour_CloneIndependent(t *testing.T) {
	a := tour.New(square())
	a.Evaluate()
	b := a.Clone()
	assert.True(t, b.IsEvaluated())
	assert.Equal(t, a.Fitness(), b.Fitness())

	rng := rand.New(rand.NewSource(3))
	before := a.Route()
	for k := 0; k < 50; k++ {
		b.Mutate(rng)
	}
	assert.Equal(t, before, a.Route(), "mutating the clone must not touch the source")
}

func TestTour_String(t *testing.T) {
	tr := tour.New(square())
	assert.Equal(t, "{ fitness: 0.050, (0,0)/(5,0)/(5,5)/(0,5)}", tr.String())
}

func TestValidatePermutationOf(t *testing.T) {
	cities := []geom.Point{geom.Pt(1, 1), geom.Pt(1, 1), geom.Pt(2, 2)}

	assert.NoError(t, tour.ValidatePermutationOf(tour.New([]geom.Point{geom.Pt(2, 2), geom.Pt(1, 1), geom.Pt(1, 1)}), cities))
	assert.ErrorIs(t, tour.ValidatePermutationOf(tour.New([]geom.Point{geom.Pt(2, 2), geom.Pt(2, 2), geom.Pt(1, 1)}), cities), tour.ErrNotPermutation)
	assert.ErrorIs(t, tour.ValidatePermutationOf(tour.New(cities[:2]), cities), tour.ErrNotPermutation)
}
