package genetic_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/gatsp/geom"
	"github.com/katalvlaran/gatsp/genetic"
	"github.com/katalvlaran/gatsp/tour"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions_Copies(t *testing.T) {
	def := genetic.DefaultOptions()
	capped := def
	capped.MaxCopies = 3
	flat := def
	flat.PoolScale = 0
	uncapped := def
	uncapped.MaxCopies = 0

	cases := []struct {
		name    string
		o       genetic.Options
		fitness float64
		want    int
	}{
		{"square", def, 0.05, 5},
		{"floor", def, 0.0599, 5},
		{"tiny fitness floors to one", def, 0.001, 1},
		{"zero fitness", def, 0, 1},
		{"scale zero", flat, 0.5, 1},
		{"capped", capped, 0.05, 3},
		{"default cap", def, 50, genetic.DefaultMaxCopies},
		{"uncapped large", uncapped, 50, 5000},
		{"inf capped", capped, math.Inf(1), 3},
		{"inf uncapped", uncapped, math.Inf(1), 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.o.Copies(tc.fitness))
		})
	}
}

// TestMatingPool_ReplicationAndIndependence checks the pool size equals the
// sum of replication counts and that replicas are independent clones.
func TestMatingPool_ReplicationAndIndependence(t *testing.T) {
	sq := []geom.Point{geom.Pt(0, 0), geom.Pt(5, 0), geom.Pt(5, 5), geom.Pt(0, 5)}
	long := tour.New([]geom.Point{sq[0], sq[2], sq[1], sq[3]})

	p, err := genetic.FromTours([]*tour.Tour{tour.New(sq), long}, genetic.DefaultOptions())
	require.NoError(t, err)

	pool := p.MatingPool()
	wantLong := genetic.DefaultOptions().Copies(long.Fitness())
	require.Len(t, pool, 5+wantLong)

	// Rank order: the square copies come first.
	for i := 0; i < 5; i++ {
		assert.Equal(t, 0.05, pool[i].Fitness())
	}

	rng := rand.New(rand.NewSource(9))
	for k := 0; k < 20; k++ {
		pool[0].Mutate(rng)
	}
	assert.Equal(t, sq, pool[1].Route(), "replicas must not alias each other")
	assert.Equal(t, sq, p.TourAt(0).Route(), "replicas must not alias the population")
}
