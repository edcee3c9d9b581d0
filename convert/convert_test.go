package convert_test

import (
	"testing"

	"github.com/katalvlaran/stnu/convert"
	"github.com/katalvlaran/stnu/core"
	"github.com/stretchr/testify/require"
)

func TestConvertControllableAndBounded(t *testing.T) {
	edges := []convert.RawEdge{
		{StartEventName: "a", EndEventName: "b", Type: "controllable", Properties: map[string]float64{"lb": 0, "ub": 5}},
		{StartEventName: "b", EndEventName: "c", Type: "uncontrollable_bounded", Properties: map[string]float64{"lb": 1, "ub": 3}},
	}
	s, err := convert.Convert(edges, convert.Options{})
	require.NoError(t, err)

	a, b := 1, 2
	e, ok := s.GetEdge(a, b)
	require.True(t, ok)
	require.Equal(t, core.Requirement, e.Type)
}

func TestConvertNonUniformDistributionUsesSigmaK(t *testing.T) {
	edges := []convert.RawEdge{
		{StartEventName: "x", EndEventName: "y", Type: "gaussian", Properties: map[string]float64{"mean": 10, "sigma": 2}},
	}
	s, err := convert.Convert(edges, convert.Options{SigmaK: 1.5})
	require.NoError(t, err)

	e, ok := s.GetEdge(1, 2)
	require.True(t, ok)
	require.InDelta(t, 7.0, e.Lower(), 1e-9)
	require.InDelta(t, 13.0, e.Upper(), 1e-9)
	require.Equal(t, "Empirical", e.Dist.Kind)
}

func TestConvertRejectsMissingProperties(t *testing.T) {
	edges := []convert.RawEdge{
		{StartEventName: "a", EndEventName: "b", Type: "controllable", Properties: map[string]float64{"lb": 0}},
	}
	_, err := convert.Convert(edges, convert.Options{})
	require.ErrorIs(t, err, convert.ErrMalformed)
}
