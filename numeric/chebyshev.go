package numeric

import "math"

// Chebyshev returns the Chebyshev (max-norm) distance for a pair of
// coordinate deltas: max(|dx|, |dy|). This is the metric used by the
// tolerance-ball point equality test: two points are indistinguishable
// within a tolerance radius r iff Chebyshev(p.X-q.X, p.Y-q.Y) <= r.
func Chebyshev(dx, dy float64) float64 {
	return math.Max(math.Abs(dx), math.Abs(dy))
}
