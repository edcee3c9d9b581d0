package relax_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/stnu/core"
	"github.com/katalvlaran/stnu/dc"
	"github.com/katalvlaran/stnu/lp"
	"github.com/katalvlaran/stnu/lp/gonumsolver"
	"github.com/katalvlaran/stnu/relax"
	"github.com/stretchr/testify/require"
)

func newGonumSolver() lp.Solver { return gonumsolver.New() }

func TestRunReturnsAlreadyDCWithoutShrinking(t *testing.T) {
	s := core.New()
	require.NoError(t, s.AddEdge(0, 1, 1, 3, core.Contingent))
	s.SetMakespan(10)

	out := relax.Run(context.Background(), s, newGonumSolver, 0, nil)
	require.Equal(t, relax.AlreadyDC, out.Status)
	require.Equal(t, 0, out.Iterations)
	require.Empty(t, out.Cycles)
}

func TestRunRepairsUncontrollableDiamond(t *testing.T) {
	s := core.New()
	require.NoError(t, s.AddEdge(0, 1, 1, 5, core.Contingent))
	require.NoError(t, s.AddEdge(0, 2, 1, 5, core.Contingent))
	require.NoError(t, s.AddEdge(1, 3, 0, 2, core.Requirement))
	require.NoError(t, s.AddEdge(2, 3, 0, 2, core.Requirement))
	s.SetMakespan(20)

	out := relax.Run(context.Background(), s, newGonumSolver, 50, nil)
	require.Equal(t, relax.Repaired, out.Status)
	require.NotEmpty(t, out.Cycles)

	res := dc.Check(out.Network, dc.Options{})
	require.True(t, res.DC)
}
