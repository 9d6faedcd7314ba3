package tour

import (
	"fmt"

	"github.com/katalvlaran/gatsp/geom"
)

// ValidatePermutationOf checks that t visits exactly the points of cities,
// each as many times as it occurs there. Order is irrelevant.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutationOf(t *Tour, cities []geom.Point) error {
	if t.Len() != len(cities) {
		return fmt.Errorf("%w: %d stops, want %d", ErrNotPermutation, t.Len(), len(cities))
	}
	counts := make(map[geom.Point]int, len(cities))

	var i int
	for i = range cities {
		counts[cities[i]]++
	}
	for i = range t.route {
		counts[t.route[i]]--
		if counts[t.route[i]] < 0 {
			return fmt.Errorf("%w: extra visit to %v", ErrNotPermutation, t.route[i])
		}
	}
	return nil
}
