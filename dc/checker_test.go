package dc_test

import (
	"testing"

	"github.com/katalvlaran/stnu/core"
	"github.com/katalvlaran/stnu/dc"
	"github.com/stretchr/testify/require"
)

func TestTrivialContingentIsDC(t *testing.T) {
	s := core.New()
	require.NoError(t, s.AddEdge(0, 1, 1, 3, core.Contingent))

	res := dc.Check(s, dc.Options{})
	require.True(t, res.DC)
}

func TestUncontrollableDiamondIsNotDC(t *testing.T) {
	s := core.New()
	require.NoError(t, s.AddEdge(0, 1, 1, 5, core.Contingent))
	require.NoError(t, s.AddEdge(0, 2, 1, 5, core.Contingent))
	require.NoError(t, s.AddEdge(1, 3, 0, 2, core.Requirement))
	require.NoError(t, s.AddEdge(2, 3, 0, 2, core.Requirement))

	res := dc.Check(s, dc.Options{})
	require.False(t, res.DC)
	require.NotEmpty(t, res.CycleEdges)
}

func TestDCPreservedUnderClone(t *testing.T) {
	s := core.New()
	require.NoError(t, s.AddEdge(0, 1, 1, 3, core.Contingent))

	r1 := dc.Check(s, dc.Options{})
	r2 := dc.Check(s.Clone(), dc.Options{})
	require.Equal(t, r1.DC, r2.DC)
}
