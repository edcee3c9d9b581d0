package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/stnu/core"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// randomChain builds a path 0 -> 1 -> ... -> n of requirement edges with
// random, always-satisfiable [lb, ub] bounds, per rapid's generate-random-
// small-instances convention (pgregory.net/rapid, the pack's only
// property-testing dependency).
func randomChain(t *rapid.T) *core.STNU {
	n := rapid.IntRange(1, 6).Draw(t, "n")
	s := core.New()
	for i := 0; i < n; i++ {
		lb := rapid.Float64Range(0, 10).Draw(t, fmt.Sprintf("lb_%d", i))
		width := rapid.Float64Range(0, 10).Draw(t, fmt.Sprintf("width_%d", i))
		require.NoError(t, s.AddEdge(i, i+1, lb, lb+width, core.Requirement))
	}
	return s
}

func TestMinimalIsIdempotentProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := randomChain(t)

		m1, err := s.Minimal()
		require.NoError(t, err)

		m2, err := m1.Minimal()
		require.NoError(t, err)

		for _, e := range m1.Edges() {
			other, ok := m2.GetEdge(e.From, e.To)
			require.True(t, ok)
			require.InDelta(t, e.Cij, other.Cij, 1e-9)
			require.InDelta(t, e.Cji, other.Cji, 1e-9)
		}
	})
}

func TestCloneIsConsistentWithOriginalProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := randomChain(t)
		clone := s.Clone()
		require.Equal(t, s.IsConsistent(), clone.IsConsistent())
	})
}
