package cities_test

import (
	"bytes"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/gatsp/cities"
	"github.com/katalvlaran/gatsp/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandom_BoundsAndIntegers(t *testing.T) {
	pts, err := cities.Random(200, 50, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.Len(t, pts, 200)
	for _, p := range pts {
		assert.GreaterOrEqual(t, p.X, 0.0)
		assert.Less(t, p.X, 50.0)
		assert.GreaterOrEqual(t, p.Y, 0.0)
		assert.Less(t, p.Y, 50.0)
		assert.Equal(t, math.Floor(p.X), p.X)
		assert.Equal(t, math.Floor(p.Y), p.Y)
	}
}

func TestRandom_Deterministic(t *testing.T) {
	a, err := cities.Random(10, 100, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	b, err := cities.Random(10, 100, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRandom_Errors(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	_, err := cities.Random(0, 100, rng)
	assert.ErrorIs(t, err, cities.ErrInvalidCount)
	_, err = cities.Random(5, 0, rng)
	assert.ErrorIs(t, err, cities.ErrInvalidMax)
	_, err = cities.Random(5, math.NaN(), rng)
	assert.ErrorIs(t, err, cities.ErrInvalidMax)
	_, err = cities.Random(5, 10, nil)
	assert.ErrorIs(t, err, cities.ErrNeedRand)
}

func TestSample(t *testing.T) {
	s := cities.Sample()
	require.Len(t, s, 10)
	assert.Equal(t, geom.Pt(6, 10), s[0])
	assert.Equal(t, geom.Pt(16, 6), s[9])

	s[0] = geom.Pt(0, 0)
	assert.Equal(t, geom.Pt(6, 10), cities.Sample()[0], "Sample returns a fresh slice")
}

func TestDecode_JSON(t *testing.T) {
	pts, err := cities.Decode(strings.NewReader(`[{"x":6,"y":10},{"x":11.5,"y":13}]`))
	require.NoError(t, err)
	assert.Equal(t, []geom.Point{geom.Pt(6, 10), geom.Pt(11.5, 13)}, pts)

	_, err = cities.Decode(strings.NewReader(`[]`))
	assert.ErrorIs(t, err, cities.ErrEmpty)

	_, err = cities.Decode(strings.NewReader(`[{"x":1,"y":2,"z":3}]`))
	assert.Error(t, err, "unknown fields are rejected")
}

func TestDecodeYAML(t *testing.T) {
	doc := "- {x: 1, y: 2}\n- x: 3\n  y: 4\n"
	pts, err := cities.DecodeYAML(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, []geom.Point{geom.Pt(1, 2), geom.Pt(3, 4)}, pts)

	_, err = cities.DecodeYAML(strings.NewReader(""))
	assert.ErrorIs(t, err, cities.ErrEmpty)
}

func TestEncode_RoundTripsThroughLoad(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, cities.Encode(&buf, cities.Sample()))

	dir := t.TempDir()
	path := filepath.Join(dir, "sample.json")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	pts, err := cities.Load(path)
	require.NoError(t, err)
	assert.Equal(t, cities.Sample(), pts)
}

func TestLoad_Errors(t *testing.T) {
	_, err := cities.Load("cities.csv")
	assert.ErrorIs(t, err, cities.ErrUnknownFormat)

	_, err = cities.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
