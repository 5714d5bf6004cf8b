/*
Package history labels each release of a package with its update kind and
detects backported releases: fixes published on an older major line after a
newer major line already existed.
*/
package history

import (
	"sort"
	"time"

	"github.com/evolens/cadence/cadence/release"
	"github.com/evolens/cadence/cadence/version"
)

// Classify derives one ClassifiedRelease per input release. It is a total
// function of the history: every release gets a kind, and backport
// detection/attribution always resolves to an existing neighbor.
func Classify(h release.History) []release.ClassifiedRelease {
	if len(h.Releases) == 0 {
		return nil
	}

	byVersion := make([]release.Release, len(h.Releases))
	copy(byVersion, h.Releases)
	sort.Slice(byVersion, func(i, j int) bool {
		return byVersion[i].VersionRank < byVersion[j].VersionRank
	})

	classified := make([]release.ClassifiedRelease, len(byVersion))
	byRank := make(map[int]*release.ClassifiedRelease, len(byVersion))
	for idx, rel := range byVersion {
		kind := release.InitialUpdate
		if idx > 0 {
			kind = updateKind(byVersion[idx-1].Version, rel.Version)
		}
		classified[idx] = release.ClassifiedRelease{Release: rel, Kind: kind}
		byRank[rel.VersionRank] = &classified[idx]
	}

	detectBackports(classified, byRank)

	return classified
}

// updateKind picks the first of major, minor, patch (in that priority) that
// advanced. A version-number no-op falls back to patch; the dataset
// preparation deduplicates triples so this is not expected to occur.
func updateKind(prev, cur version.Version) release.UpdateKind {
	switch {
	case cur.Major > prev.Major:
		return release.MajorUpdate
	case cur.Minor > prev.Minor:
		return release.MinorUpdate
	case cur.Patch > prev.Patch:
		return release.PatchUpdate
	}
	return release.PatchUpdate
}

// detectBackports walks the history chronologically, tracking the highest
// major and highest version rank seen so far. A release on a strictly older
// major line than one already published is a backport; it is attributed to
// whichever of the most advanced release (rank R) or its successor (rank
// R+1) was published closest in time, ties going to the successor.
func detectBackports(classified []release.ClassifiedRelease, byRank map[int]*release.ClassifiedRelease) {
	byDate := make([]*release.ClassifiedRelease, 0, len(classified))
	for idx := range classified {
		byDate = append(byDate, &classified[idx])
	}
	sort.Slice(byDate, func(i, j int) bool {
		if byDate[i].DateRank != byDate[j].DateRank {
			return byDate[i].DateRank < byDate[j].DateRank
		}
		return byDate[i].VersionRank < byDate[j].VersionRank
	})

	var highestMajor version.Part
	var highestRank int
	for idx, rel := range byDate {
		if idx > 0 && rel.Version.Major < highestMajor {
			rel.Backported = true
			rel.BackportedFrom = attributeBackport(rel, highestRank, byRank)
		}
		if rel.Version.Major > highestMajor || idx == 0 {
			highestMajor = rel.Version.Major
		}
		if rel.VersionRank > highestRank {
			highestRank = rel.VersionRank
		}
	}
}

func attributeBackport(backport *release.ClassifiedRelease, highestRank int, byRank map[int]*release.ClassifiedRelease) int {
	previous := byRank[highestRank]
	next, hasNext := byRank[highestRank+1]
	if !hasNext {
		// a missing neighbor is infinitely distant, never selected
		return previous.VersionRank
	}

	distPrevious := absDuration(backport.Date.Sub(previous.Date))
	distNext := absDuration(backport.Date.Sub(next.Date))
	if distNext <= distPrevious {
		return next.VersionRank
	}
	return previous.VersionRank
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
