package tour_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gatsp/geom"
	"github.com/katalvlaran/gatsp/tour"
)

func TestTwoOpt_UncrossesSquare(t *testing.T) {
	crossed := tour.New([]geom.Point{geom.Pt(0, 0), geom.Pt(10, 10), geom.Pt(10, 0), geom.Pt(0, 10)})
	before := crossed.Length()

	polished, moves := crossed.TwoOpt(0)
	require.True(t, polished.IsEvaluated())
	assert.Equal(t, 1, moves)
	assert.InDelta(t, 40.0, polished.Length(), 1e-9)
	assert.InDelta(t, before, crossed.Length(), 1e-12, "input tour untouched")
	assert.NoError(t, tour.ValidatePermutationOf(polished, crossed.Route()))
}

func TestTwoOpt_NeverLengthens(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	pts := make([]geom.Point, 30)
	for i := range pts {
		pts[i] = geom.Pt(rng.Float64()*100, rng.Float64()*100)
	}
	start := tour.New(pts)

	polished, moves := start.TwoOpt(0)
	assert.Positive(t, moves)
	assert.LessOrEqual(t, polished.Length(), start.Length())
	assert.NoError(t, tour.ValidatePermutationOf(polished, pts))

	again, more := polished.TwoOpt(0)
	assert.Zero(t, more, "local optimum is stable")
	assert.InDelta(t, polished.Length(), again.Length(), 1e-9)
}

func TestTwoOpt_MoveCap(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	pts := make([]geom.Point, 25)
	for i := range pts {
		pts[i] = geom.Pt(rng.Float64()*50, rng.Float64()*50)
	}
	_, moves := tour.New(pts).TwoOpt(1)
	assert.Equal(t, 1, moves)
}

func TestTwoOpt_ShortTours(t *testing.T) {
	tri := tour.New([]geom.Point{geom.Pt(0, 0), geom.Pt(3, 0), geom.Pt(0, 4)})
	polished, moves := tri.TwoOpt(0)
	assert.Zero(t, moves)
	assert.Equal(t, tri.Route(), polished.Route())
	assert.InDelta(t, 12.0, polished.Length(), 1e-9)
}
