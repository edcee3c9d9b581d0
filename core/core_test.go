package core_test

import (
	"testing"

	"github.com/katalvlaran/stnu/core"
	"github.com/stretchr/testify/require"
)

func TestAddEdgeRejectsEmptyInterval(t *testing.T) {
	s := core.New()
	err := s.AddEdge(0, 1, 5, 1, core.Requirement)
	require.ErrorIs(t, err, core.ErrEmptyInterval)
}

func TestContingentSinkUniqueness(t *testing.T) {
	s := core.New()
	require.NoError(t, s.AddEdge(0, 1, 1, 3, core.Contingent))
	err := s.AddEdge(2, 1, 1, 3, core.Contingent)
	require.ErrorIs(t, err, core.ErrDuplicateContingentSink)
}

func TestMinimalIdempotent(t *testing.T) {
	s := core.New()
	require.NoError(t, s.AddEdge(0, 1, 1, 5, core.Requirement))
	require.NoError(t, s.AddEdge(1, 2, 1, 5, core.Requirement))
	require.NoError(t, s.AddEdge(0, 2, 0, 20, core.Requirement))

	m1, err := s.Minimal()
	require.NoError(t, err)
	m2, err := m1.Minimal()
	require.NoError(t, err)

	for _, e1 := range m1.Edges() {
		e2, ok := m2.GetEdge(e1.From, e1.To)
		require.True(t, ok)
		require.Equal(t, e1.Cij, e2.Cij)
		require.Equal(t, e1.Cji, e2.Cji)
	}
}

func TestMinimalDetectsInconsistency(t *testing.T) {
	s := core.New()
	require.NoError(t, s.AddEdge(0, 1, 5, core.Inf, core.Requirement))
	require.NoError(t, s.AddEdge(1, 0, 5, core.Inf, core.Requirement))
	_, err := s.Minimal()
	require.ErrorIs(t, err, core.ErrInconsistent)
}

func TestStrongControllabilityOfFullyControllableNetwork(t *testing.T) {
	s := core.New()
	require.NoError(t, s.AddEdge(0, 1, 1, 5, core.Requirement))
	require.NoError(t, s.AddEdge(1, 2, 1, 5, core.Requirement))

	ok, reduced, err := s.IsStronglyControllable()
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, reduced.IsConsistent())
}

func TestCloneIsIndependent(t *testing.T) {
	s := core.New()
	require.NoError(t, s.AddEdge(0, 1, 1, 5, core.Requirement))
	clone := s.Clone()
	clone.UpdateEdge(0, 1, 3, false)

	orig, _ := s.GetEdge(0, 1)
	cloned, _ := clone.GetEdge(0, 1)
	require.Equal(t, 5.0, orig.Cij)
	require.Equal(t, 3.0, cloned.Cij)
}
