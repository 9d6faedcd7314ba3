// Package render draws tours and run histories with gonum.org/v1/plot.
//
// Route draws the visiting order as a closed polyline through every city,
// returning to the first one, with the cities marked. Convergence
// plots best and mean tour length against generation. Both write to an
// io.Writer in any format gonum/plot supports ("svg", "png", "pdf", ...).
package render
