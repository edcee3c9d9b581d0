// File: estimator.go
// Role: the normal-CDF degree-of-controllability estimator of spec.md
// §4.6.
package prob

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// ConflictProbability estimates the probability that the sum of
// independent U[0, l_i] variables (one per contingent edge implicated in
// the conflict) is at most S = sum(lengths) + cycleWeight, via a normal
// approximation with mean = sum(l_i)/2 and variance = sum(l_i^2)/12.
//
// A conflict with zero variance (every length is 0) degenerates to a
// step function rather than calling distuv.Normal with Sigma=0, which
// would divide by zero inside its CDF.
func ConflictProbability(cs ConflictSlack) float64 {
	var sum, sumSquares float64
	for _, l := range cs.Lengths {
		sum += l
		sumSquares += l * l
	}
	mean := sum / 2
	variance := sumSquares / 12
	s := sum + cs.CycleWeight

	if variance == 0 {
		if s >= mean {
			return 1.0
		}
		return 0.0
	}

	sigma := math.Sqrt(variance)
	n := distuv.Normal{Mu: mean, Sigma: sigma}
	return n.CDF(s)
}

// Estimate is the overall degree of controllability: the product of
// every conflict's independent probability, per spec.md §4.6.
func Estimate(conflicts []ConflictSlack) float64 {
	degree := 1.0
	for _, cs := range conflicts {
		degree *= ConflictProbability(cs)
	}
	return degree
}
