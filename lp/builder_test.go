package lp_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/stnu/core"
	"github.com/katalvlaran/stnu/lp"
	"github.com/katalvlaran/stnu/lp/gonumsolver"
	"github.com/stretchr/testify/require"
)

// TestProportionChainYieldsOneSixth mirrors spec.md §8 scenario 3: a chain
// of three contingent edges [0,10] whose end must fall within 25 of the
// start leaves 5 units of slack to remove from the chain's 30-unit reach,
// so the proportion variant shrinks each edge by delta=5/30=1/6.
func TestProportionChainYieldsOneSixth(t *testing.T) {
	s := core.New()
	require.NoError(t, s.AddEdge(0, 1, 0, 10, core.Contingent))
	require.NoError(t, s.AddEdge(1, 2, 0, 10, core.Contingent))
	require.NoError(t, s.AddEdge(2, 3, 0, 10, core.Contingent))
	require.NoError(t, s.AddEdge(3, 0, -25, 0, core.Requirement))
	s.SetMakespan(100)

	solver := gonumsolver.New()
	sk := lp.BuildProportion(s, solver)
	require.NoError(t, solver.Solve(context.Background()))
	require.Equal(t, lp.Optimal, solver.Status())

	delta := solver.Value(sk.Delta)
	require.InDelta(t, 1.0/6.0, delta, 0.05)
}

// TestSuperIntervalOfFullyControllableNetwork mirrors spec.md §8 scenario
// 1: a single unconstrained contingent edge [1,3] under makespan 10. The
// SuperInterval LP widens the upper bound up to the makespan (eps+ = 7)
// and the lower bound down to 0 (eps- = 1), for a total of 8.
func TestSuperIntervalOfFullyControllableNetwork(t *testing.T) {
	s := core.New()
	require.NoError(t, s.AddEdge(0, 1, 1, 3, core.Contingent))
	s.SetMakespan(10)

	solver := gonumsolver.New()
	sk := lp.BuildSuperInterval(s, solver, lp.Naive)
	require.NoError(t, solver.Solve(context.Background()))
	require.Equal(t, lp.Optimal, solver.Status())

	ref := lp.Ref{From: 0, To: 1}
	ep := solver.Value(sk.EpsPlus[ref])
	em := solver.Value(sk.EpsMinus[ref])
	require.InDelta(t, 8.0, ep+em, 0.05)
}
