package json

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evolens/cadence/cadence/dataset"
	"github.com/evolens/cadence/cadence/release"
	"github.com/evolens/cadence/cadence/result"
	"github.com/evolens/cadence/cadence/selection"
	"github.com/evolens/cadence/cadence/version"
)

func TestJSONPresenter(t *testing.T) {
	res := result.Result{
		Ecosystem: version.CargoEcosystem,
		Classified: []release.ClassifiedRelease{
			{
				Release: release.Release{
					Package:     "serde",
					Raw:         "1.0.0",
					Version:     version.New(1, 0, 0),
					Date:        time.Date(2019, 6, 1, 0, 0, 0, 0, time.UTC),
					VersionRank: 1,
					DateRank:    1,
				},
				Kind: release.InitialUpdate,
			},
		},
		Resolutions: []selection.Resolution{
			{Target: "serde", Constraint: ">=1.0.0", Interval: "[1.0.0, inf.inf.inf)", Descriptors: version.Descriptors{Major: true, Minor: true, Patch: true}, SelectedRank: 1},
		},
		Edges: []result.ResolvedEdge{
			{Edge: dataset.Edge{Source: "tokio", SourceVersion: "1.0.0", SourceRank: 1, Target: "serde", Constraint: ">=1.0.0"}, Interval: "[1.0.0, inf.inf.inf)", SelectedRank: 1},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, NewPresenter(res).Present(&buf))

	// comparison operators in constraints must not be HTML-escaped
	assert.Contains(t, buf.String(), ">=1.0.0")

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, "cargo", doc["ecosystem"])

	releases, ok := doc["releases"].([]interface{})
	require.True(t, ok)
	require.Len(t, releases, 1)
	first, ok := releases[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "serde", first["package"])
	assert.Equal(t, "initial", first["kind"])

	edges, ok := doc["edges"].([]interface{})
	require.True(t, ok)
	require.Len(t, edges, 1)
	edge, ok := edges[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "tokio", edge["source"])
	assert.Equal(t, float64(1), edge["selected"])
}
