package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evolens/cadence/cadence/release"
	"github.com/evolens/cadence/cadence/version"
)

func testRelease(t *testing.T, raw string, versionRank, dateRank int, date time.Time) release.Release {
	t.Helper()
	v, err := version.Parse(raw)
	require.NoError(t, err)
	return release.Release{
		Package:     "lib",
		Raw:         raw,
		Version:     v,
		Date:        date,
		VersionRank: versionRank,
		DateRank:    dateRank,
	}
}

func day(n int) time.Time {
	return time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func TestClassifyEmptyHistory(t *testing.T) {
	assert.Nil(t, Classify(release.History{Package: "lib"}))
}

func TestClassifySingleRelease(t *testing.T) {
	h := release.History{
		Package: "lib",
		Releases: []release.Release{
			testRelease(t, "1.0.0", 1, 1, day(0)),
		},
	}

	classified := Classify(h)
	require.Len(t, classified, 1)
	assert.Equal(t, release.InitialUpdate, classified[0].Kind)
	assert.False(t, classified[0].Backported)
}

func TestClassifyUpdateKinds(t *testing.T) {
	h := release.History{
		Package: "lib",
		Releases: []release.Release{
			testRelease(t, "1.0.0", 1, 1, day(0)),
			testRelease(t, "1.1.0", 2, 2, day(1)),
			testRelease(t, "1.1.1", 3, 3, day(2)),
			testRelease(t, "2.0.0", 4, 4, day(3)),
		},
	}

	classified := Classify(h)
	require.Len(t, classified, 4)

	kinds := make([]release.UpdateKind, 0, len(classified))
	for _, rel := range classified {
		kinds = append(kinds, rel.Kind)
		assert.False(t, rel.Backported, rel.Raw)
	}
	assert.Equal(t, []release.UpdateKind{
		release.InitialUpdate,
		release.MinorUpdate,
		release.PatchUpdate,
		release.MajorUpdate,
	}, kinds)
}

func TestClassifyBackportAttribution(t *testing.T) {
	// version order: 1.0.0, 1.1.0, 1.2.0, 2.0.0, 3.0.0
	// date order:    1.0.0, 1.1.0, 2.0.0, 1.2.0, 3.0.0
	// 1.2.0 lands on the 1.x line after 2.0.0 shipped, so it is a backport
	// attributed to 2.0.0 or 3.0.0, whichever was published closer in time.
	build := func(backportDate, thirdMajorDate time.Time) release.History {
		return release.History{
			Package: "lib",
			Releases: []release.Release{
				testRelease(t, "1.0.0", 1, 1, day(0)),
				testRelease(t, "1.1.0", 2, 2, day(10)),
				testRelease(t, "1.2.0", 3, 4, backportDate),
				testRelease(t, "2.0.0", 4, 3, day(20)),
				testRelease(t, "3.0.0", 5, 5, thirdMajorDate),
			},
		}
	}

	tests := []struct {
		name           string
		backportDate   time.Time
		thirdMajor     time.Time
		backportedFrom int
	}{
		{
			name:           "closer to the release it trails",
			backportDate:   day(21),
			thirdMajor:     day(40),
			backportedFrom: 4,
		},
		{
			name:           "closer to the successor",
			backportDate:   day(38),
			thirdMajor:     day(40),
			backportedFrom: 5,
		},
		{
			name:           "equidistant goes to the successor",
			backportDate:   day(30),
			thirdMajor:     day(40),
			backportedFrom: 5,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			classified := Classify(build(test.backportDate, test.thirdMajor))
			require.Len(t, classified, 5)

			kinds := make([]release.UpdateKind, 0, len(classified))
			for _, rel := range classified {
				kinds = append(kinds, rel.Kind)
			}
			assert.Equal(t, []release.UpdateKind{
				release.InitialUpdate,
				release.MinorUpdate,
				release.MinorUpdate,
				release.MajorUpdate,
				release.MajorUpdate,
			}, kinds)

			for _, rel := range classified {
				if rel.Raw == "1.2.0" {
					assert.True(t, rel.Backported)
					assert.Equal(t, test.backportedFrom, rel.BackportedFrom)
					continue
				}
				assert.False(t, rel.Backported, rel.Raw)
				assert.Zero(t, rel.BackportedFrom, rel.Raw)
			}
		})
	}
}

func TestClassifyBackportWithoutSuccessor(t *testing.T) {
	// 1.0.1 follows 2.0.0 chronologically and the most advanced release has
	// no successor, so the backport falls back to 2.0.0 itself.
	h := release.History{
		Package: "lib",
		Releases: []release.Release{
			testRelease(t, "1.0.0", 1, 1, day(0)),
			testRelease(t, "1.0.1", 2, 3, day(25)),
			testRelease(t, "2.0.0", 3, 2, day(20)),
		},
	}

	classified := Classify(h)
	require.Len(t, classified, 3)
	assert.True(t, classified[1].Backported)
	assert.Equal(t, 3, classified[1].BackportedFrom)
}
