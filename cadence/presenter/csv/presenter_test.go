package csv

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evolens/cadence/cadence/dataset"
	"github.com/evolens/cadence/cadence/result"
	"github.com/evolens/cadence/cadence/version"
)

func TestCSVPresenter(t *testing.T) {
	res := result.Result{
		Ecosystem: version.NpmEcosystem,
		Edges: []result.ResolvedEdge{
			{
				Edge:         dataset.Edge{Source: "app", SourceVersion: "1.0.0", SourceRank: 1, Target: "lib", Constraint: "^1.0.0"},
				Interval:     "[1.0.0, 2.0.0)",
				Descriptors:  version.Descriptors{Minor: true, Patch: true},
				SelectedRank: 3,
			},
			{
				Edge:        dataset.Edge{Source: "app", SourceVersion: "1.0.0", SourceRank: 1, Target: "lib", Constraint: "bogus"},
				Interval:    "(empty)",
				Descriptors: version.Descriptors{Empty: true},
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, NewPresenter(res).Present(&buf))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{
		"source", "version", "rank", "target", "constraint", "interval", "selected", "c_empty", "c_dev", "c_major", "c_minor", "c_patch",
	}, rows[0])
	assert.Equal(t, []string{
		"app", "1.0.0", "1", "lib", "^1.0.0", "[1.0.0, 2.0.0)", "3", "false", "false", "false", "true", "true",
	}, rows[1])
	assert.Equal(t, "", rows[2][6])
	assert.Equal(t, "true", rows[2][7])
}
