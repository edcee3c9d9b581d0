package prob_test

import (
	"testing"

	"github.com/katalvlaran/stnu/prob"
	"github.com/stretchr/testify/require"
)

// TestProbabilitySanity mirrors spec.md §8 scenario 6.
func TestProbabilitySanity(t *testing.T) {
	cs := prob.ConflictSlack{Lengths: []float64{10, 10, 10}, CycleWeight: -15}
	p := prob.ConflictProbability(cs)
	require.InDelta(t, 0.5, p, 1e-9)
}

func TestZeroVarianceDegeneratesToStepFunction(t *testing.T) {
	cs := prob.ConflictSlack{Lengths: []float64{0, 0}, CycleWeight: 0}
	require.Equal(t, 1.0, prob.ConflictProbability(cs))

	negative := prob.ConflictSlack{Lengths: []float64{0, 0}, CycleWeight: -1}
	require.Equal(t, 0.0, prob.ConflictProbability(negative))
}

func TestEstimateMultipliesIndependentConflicts(t *testing.T) {
	a := prob.ConflictSlack{Lengths: []float64{10, 10, 10}, CycleWeight: -15}
	b := prob.ConflictSlack{Lengths: []float64{10, 10, 10}, CycleWeight: -15}
	require.InDelta(t, 0.25, prob.Estimate([]prob.ConflictSlack{a, b}), 1e-9)
}
