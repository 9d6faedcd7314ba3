package evolve

import (
	"errors"
	"fmt"

	"github.com/montanaflynn/stats"
)

// ErrNoHistory is returned by Summary when the run kept no history.
var ErrNoHistory = errors.New("evolve: run has no history")

// Summary condenses the per-generation best lengths of a run.
type Summary struct {
	InitialBest float64 `json:"initial_best"`
	FinalBest   float64 `json:"final_best"`
	// Improvement is 1 - FinalBest/InitialBest (0 when nothing improved).
	Improvement float64 `json:"improvement"`
	MeanBest    float64 `json:"mean_best"`
	MedianBest  float64 `json:"median_best"`
	P90Best     float64 `json:"p90_best"`
	// LastGain is the last generation in which the best length improved.
	LastGain int `json:"last_gain"`
}

// Summary computes run-level statistics from History.
func (r Result) Summary() (Summary, error) {
	if len(r.History) == 0 {
		return Summary{}, ErrNoHistory
	}

	best := make(stats.Float64Data, len(r.History))

	var (
		s    Summary
		err  error
		i    int
		prev = r.History[0].Best
	)
	for i = range r.History {
		best[i] = r.History[i].Best
		if r.History[i].Best < prev {
			s.LastGain = r.History[i].Generation
			prev = r.History[i].Best
		}
	}

	s.InitialBest = r.History[0].Best
	s.FinalBest = r.History[len(r.History)-1].Best
	if s.InitialBest > 0 {
		s.Improvement = 1 - s.FinalBest/s.InitialBest
	}
	if s.MeanBest, err = best.Mean(); err != nil {
		return Summary{}, fmt.Errorf("evolve: mean: %w", err)
	}
	if s.MedianBest, err = best.Median(); err != nil {
		return Summary{}, fmt.Errorf("evolve: median: %w", err)
	}
	if s.P90Best, err = stats.Percentile(best, 90); err != nil {
		return Summary{}, fmt.Errorf("evolve: percentile: %w", err)
	}
	return s, nil
}
