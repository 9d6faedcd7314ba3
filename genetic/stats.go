package genetic

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats summarizes one generation by tour length (shorter is better).
type Stats struct {
	Generation  int     `json:"generation"`
	Best        float64 `json:"best"`
	Worst       float64 `json:"worst"`
	Mean        float64 `json:"mean"`
	StdDev      float64 `json:"stddev"`
	BestFitness float64 `json:"best_fitness"`
}

// Stats computes length statistics over the current tours without touching
// their evaluation caches. StdDev is the sample standard deviation and is 0
// for a single-tour population.
//
// Complexity: O(s) for evaluated tours, O(s·n) otherwise.
func (p *Population) Stats() Stats {
	if len(p.tours) == 0 {
		return Stats{Generation: p.generation}
	}

	lengths := make([]float64, len(p.tours))

	var i int
	for i = range p.tours {
		lengths[i] = p.tours[i].Length()
	}

	s := Stats{
		Generation: p.generation,
		Best:       floats.Min(lengths),
		Worst:      floats.Max(lengths),
		Mean:       stat.Mean(lengths, nil),
	}
	if len(lengths) > 1 {
		s.StdDev = stat.StdDev(lengths, nil)
	}
	if s.Best > 0 {
		s.BestFitness = 1 / s.Best
	}
	return s
}
