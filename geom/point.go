// Package geom - point type and slice helpers.
//
// Design:
//   - Value semantics only; a Point is never mutated after construction.
//   - No logging, no panics on user input - only sentinel errors.
package geom

import (
	"errors"
	"fmt"
	"math"
)

// ErrNonFinite is returned when a coordinate is NaN or ±Inf.
var ErrNonFinite = errors.New("geom: non-finite coordinate")

// Point is a city location in the plane.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Distance returns the Euclidean distance between p and q.
// It is symmetric, non-negative, and zero iff the coordinates are equal.
//
// Complexity: O(1).
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Equal reports whether p and q have identical coordinates.
func (p Point) Equal(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

// IsFinite reports whether both coordinates are finite numbers.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// String renders p as "(x,y)" using the shortest exact float formatting.
func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// FromPairs converts raw {x, y} pairs into Points.
//
// Complexity: O(n) time, O(n) space.
func FromPairs(pairs [][2]float64) []Point {
	out := make([]Point, len(pairs))

	var i int
	for i = range pairs {
		out[i] = Point{X: pairs[i][0], Y: pairs[i][1]}
	}
	return out
}

// Clone returns an independent copy of pts. Nil stays nil.
func Clone(pts []Point) []Point {
	if pts == nil {
		return nil
	}
	out := make([]Point, len(pts))
	copy(out, pts)
	return out
}

// Validate checks that every point has finite coordinates.
// The returned error wraps ErrNonFinite and names the first offending index.
//
// Complexity: O(n).
func Validate(pts []Point) error {
	var i int
	for i = range pts {
		if !pts[i].IsFinite() {
			return fmt.Errorf("%w: point %d %v", ErrNonFinite, i, pts[i])
		}
	}
	return nil
}

// AllCoincident reports whether every point equals the first one.
// Any cyclic tour over such a set has length 0. Empty input reports false.
//
// Complexity: O(n).
func AllCoincident(pts []Point) bool {
	if len(pts) == 0 {
		return false
	}

	var i int
	for i = 1; i < len(pts); i++ {
		if !pts[i].Equal(pts[0]) {
			return false
		}
	}
	return true
}
