/*
Package selection determines which concrete release of a target package a
dependency constraint resolves to: the highest-versioned release the
constraint's interval accepts, mirroring how package managers prefer the
newest compatible release.
*/
package selection

import (
	"sort"

	"github.com/evolens/cadence/cadence/release"
	"github.com/evolens/cadence/cadence/version"
)

// Resolution is the outcome for one distinct (target, constraint) pair. A
// SelectedRank of 0 means no known release satisfies the constraint: a
// first-class outcome, not an error. The result is shared by every
// dependency edge carrying the same pair.
type Resolution struct {
	Target       string              `json:"target"`
	Constraint   string              `json:"constraint"`
	Interval     string              `json:"interval"`
	Descriptors  version.Descriptors `json:"descriptors"`
	SelectedRank int                 `json:"selected,omitempty"`
}

// Satisfiable reports whether any release was selected.
func (r Resolution) Satisfiable() bool {
	return r.SelectedRank != 0
}

// Select returns the VersionRank of the highest release contained in the
// interval, or 0 when the interval accepts none of them.
func Select(releases []release.ClassifiedRelease, interval version.Interval) int {
	if interval.IsEmpty() {
		return 0
	}

	descending := make([]release.ClassifiedRelease, len(releases))
	copy(descending, releases)
	sort.Slice(descending, func(i, j int) bool {
		return descending[i].VersionRank > descending[j].VersionRank
	})

	for _, rel := range descending {
		if interval.Contains(rel.Version) {
			// releases are visited newest-first, so the first hit wins
			return rel.VersionRank
		}
	}
	return 0
}

// Resolve evaluates every distinct constraint against one target package's
// release set. Constraints are looked up through the cache so each raw
// string is parsed at most once per batch.
func Resolve(target string, releases []release.ClassifiedRelease, constraints []string, cache *version.ConstraintCache) []Resolution {
	resolutions := make([]Resolution, 0, len(constraints))
	for _, raw := range constraints {
		parsed := cache.Get(raw)
		resolutions = append(resolutions, Resolution{
			Target:       target,
			Constraint:   raw,
			Interval:     parsed.Interval.String(),
			Descriptors:  parsed.Descriptors,
			SelectedRank: Select(releases, parsed.Interval),
		})
	}
	return resolutions
}
