package table

import (
	"bytes"
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

func TestTablePresenter(t *testing.T) {
	res := result.Result{
		Ecosystem: version.NpmEcosystem,
		Classified: []release.ClassifiedRelease{
			{
				Release: release.Release{
					Package:     "lib",
					Raw:         "1.0.0",
					Version:     version.New(1, 0, 0),
					Date:        time.Date(2019, 6, 1, 0, 0, 0, 0, time.UTC),
					VersionRank: 1,
					DateRank:    1,
				},
				Kind: release.InitialUpdate,
			},
			{
				Release: release.Release{
					Package:     "lib",
					Raw:         "1.0.1",
					Version:     version.New(1, 0, 1),
					Date:        time.Date(2019, 7, 1, 0, 0, 0, 0, time.UTC),
					VersionRank: 2,
					DateRank:    2,
				},
				Kind:       release.PatchUpdate,
				Backported: true,
			},
		},
		Resolutions: []selection.Resolution{
			{Target: "lib", Constraint: "^1.0.0", Interval: "[1.0.0, 2.0.0)", Descriptors: version.Descriptors{Minor: true, Patch: true}, SelectedRank: 2},
			{Target: "lib", Constraint: "bogus", Interval: "(empty)", Descriptors: version.Descriptors{Empty: true}},
		},
		Edges: []result.ResolvedEdge{
			{Edge: dataset.Edge{Source: "app", SourceVersion: "1.0.0", SourceRank: 1, Target: "lib", Constraint: "^1.0.0"}, Interval: "[1.0.0, 2.0.0)", SelectedRank: 2},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, NewPresenter(res).Present(&buf))
	actual := buf.String()

	assert.Contains(t, actual, "Ecosystem: npm")
	assert.Contains(t, actual, "Packages analyzed")
	assert.Contains(t, actual, "Releases classified")
	assert.Contains(t, actual, "Initial updates")
	assert.Contains(t, actual, "Patch updates")
	assert.Contains(t, actual, "Backported releases")
	assert.Contains(t, actual, "Distinct constraints")
	assert.Contains(t, actual, "Unsatisfiable")
	assert.Contains(t, actual, "Minor-crossing")
}

func TestTablePresenterNoReleases(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPresenter(result.Result{}).Present(&buf))
	assert.Equal(t, "No releases analyzed\n", buf.String())
}
