package genetic

import "github.com/katalvlaran/gatsp/tour"

// Test-only hooks into unexported state. Compiled only with `go test`.

// Copies exposes the replication rule.
func (o Options) Copies(fitness float64) int { return o.copies(fitness) }

// TourAt returns the stored tour itself (no clone) so tests can probe aliasing.
func (p *Population) TourAt(i int) *tour.Tour { return p.tours[i] }

// MatingPool exposes pool construction over the current ranking.
func (p *Population) MatingPool() []*tour.Tour { return p.matingPool(p.Rank()) }

// EliteCount exposes ⌊size·EliteFraction⌋.
func (p *Population) EliteCount() int { return p.eliteCount() }
