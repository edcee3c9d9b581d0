package stnujson_test

import (
	"testing"

	"github.com/katalvlaran/stnu/core"
	"github.com/katalvlaran/stnu/stnujson"
	"github.com/stretchr/testify/require"
)

func TestExportImportRoundTrip(t *testing.T) {
	s := core.New()
	require.NoError(t, s.AddEdge(0, 1, 1, 3, core.Contingent))
	require.NoError(t, s.AddEdge(1, 2, 0, 5, core.Requirement))

	data, err := stnujson.Export(s)
	require.NoError(t, err)

	out, err := stnujson.Import(data)
	require.NoError(t, err)
	require.ElementsMatch(t, s.Vertices(), out.Vertices())

	e, ok := out.GetEdge(0, 1)
	require.True(t, ok)
	require.Equal(t, core.Contingent, e.Type)
	require.Equal(t, 1.0, e.Lower())
	require.Equal(t, 3.0, e.Upper())
}

func TestImportRejectsMalformedJSON(t *testing.T) {
	_, err := stnujson.Import([]byte(`{not json`))
	require.ErrorIs(t, err, stnujson.ErrMalformed)
}

func TestImportRejectsDuplicateContingentSink(t *testing.T) {
	doc := []byte(`{
		"nodes": [{"node_id": 1, "min_domain": 0, "max_domain": "inf"}],
		"constraints": [
			{"first_node": 0, "second_node": 1, "type": "stcu", "min_duration": 1, "max_duration": 3},
			{"first_node": 2, "second_node": 1, "type": "stcu", "min_duration": 1, "max_duration": 3}
		]
	}`)
	_, err := stnujson.Import(doc)
	require.ErrorIs(t, err, stnujson.ErrMalformed)
}
