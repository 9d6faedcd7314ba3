// Package geom provides the planar point type the TSP packages are built on.
//
// A Point is an immutable (X, Y) coordinate pair with a Euclidean metric.
// Points carry no identity beyond their coordinates: two cities at the same
// location are interchangeable for distance purposes, while a tour still
// treats them as distinct stops by position.
//
//	a := geom.Pt(0, 0)
//	b := geom.Pt(5, 5)
//	d := a.Distance(b) // √50 ≈ 7.0711
//
// Everything here is pure and allocation-free except the slice helpers
// (FromPairs, Clone), which return fresh slices by contract.
package geom
