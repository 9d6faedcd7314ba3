package tour

import "github.com/katalvlaran/gatsp/geom"

// twoOptEps is the minimum gain a 2-opt move must deliver to be applied.
const twoOptEps = 1e-12

// TwoOpt polishes a copy of t with first-improvement 2-opt and returns the
// copy (evaluated) together with the number of accepted moves. The scan
// restarts after every accepted move and stops at a local optimum, or after
// maxMoves moves when maxMoves > 0. t itself is not modified.
//
// A move picks cut positions 1 ≤ i < k ≤ N-1 around a=route[i-1], b=route[i],
// c=route[k], d=route[(k+1)%N] and reverses route[i..k] when
// d(a,c) + d(b,d) < d(a,b) + d(c,d).
//
// Complexity: O(n²) per pass, O(n) per accepted move.
func (t *Tour) TwoOpt(maxMoves int) (*Tour, int) {
	var (
		out      = t.Clone()
		r        = out.route
		n        = len(r)
		accepted int
	)
	if n < 4 {
		out.Evaluate()
		return out, 0
	}

	for {
		var (
			improved   bool
			i, k       int
			delta      float64
			a, b, c, d geom.Point
		)
		for i = 1; i <= n-2 && !improved; i++ {
			for k = i + 1; k <= n-1; k++ {
				a, b, c, d = r[i-1], r[i], r[k], r[(k+1)%n]
				delta = a.Distance(c) + b.Distance(d) - a.Distance(b) - c.Distance(d)
				if delta >= -twoOptEps {
					continue
				}
				reverseSegment(r, i, k+1)
				accepted++
				improved = true
				break
			}
		}
		if !improved || (maxMoves > 0 && accepted >= maxMoves) {
			break
		}
	}

	out.Invalidate()
	out.Evaluate()
	return out, accepted
}
