package searcher

import "math"

// sqrtLogRatio computes sqrt(ln(parentVisits)/childVisits), the
// exploration term shared by every UCB1-family score in this package.
func sqrtLogRatio(parentVisits, childVisits int) float64 {
	return math.Sqrt(math.Log(float64(parentVisits)) / float64(childVisits))
}
