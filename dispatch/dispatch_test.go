package dispatch_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/stnu/core"
	"github.com/katalvlaran/stnu/dispatch"
	"github.com/stretchr/testify/require"
)

// TestTrivialContingentAlwaysDispatches mirrors spec.md §8 scenario 1.
func TestTrivialContingentAlwaysDispatches(t *testing.T) {
	s := core.New()
	require.NoError(t, s.AddEdge(0, 1, 1, 3, core.Contingent))

	stats := dispatch.Simulate(context.Background(), s, 1000, 42, dispatch.Late)
	require.Equal(t, 1000, stats.Trials)
	require.Equal(t, 1.0, stats.SuccessRate)
}

// TestDispatchWithinWindows mirrors spec.md §8's "Dispatch within
// windows" invariant directly against the scheduled times of a
// successful trial.
func TestDispatchWithinWindows(t *testing.T) {
	s := core.New()
	require.NoError(t, s.AddEdge(0, 1, 1, 5, core.Contingent))
	require.NoError(t, s.AddEdge(1, 2, 0, 2, core.Requirement))

	real := dispatch.Realization{1: 3}
	trial := dispatch.Once(s, real, dispatch.Options{})
	require.True(t, trial.Success)

	diff := trial.Schedule[2] - trial.Schedule[1]
	require.True(t, diff <= 2+dispatch.Epsilon)
	require.True(t, diff >= -dispatch.Epsilon)
}

// TestInconsistentNetworkNotAttempted mirrors spec.md §8 scenario 5.
func TestInconsistentNetworkNotAttempted(t *testing.T) {
	s := core.New()
	require.NoError(t, s.AddEdge(0, 1, 5, core.Inf, core.Requirement))
	require.NoError(t, s.AddEdge(1, 0, 5, core.Inf, core.Requirement))

	trial := dispatch.Once(s, dispatch.Realization{}, dispatch.Options{})
	require.False(t, trial.Success)
	require.ErrorIs(t, trial.Err, dispatch.ErrInconsistentNetwork)
}
