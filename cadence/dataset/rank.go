package dataset

import (
	"sort"

	"github.com/evolens/cadence/cadence/release"
	"github.com/evolens/cadence/cadence/version"
	"github.com/evolens/cadence/internal/log"
)

// BuildHistories turns raw release records into per-package histories with
// dense version and date ranks. Records whose version is not a plain
// major.minor.patch triple (prereleases, build metadata, junk) are dropped.
// When a package publishes the same triple more than once only the latest
// publication survives, so ranks are unambiguous.
func BuildHistories(records []ReleaseRecord) []release.History {
	byPackage := make(map[string]map[version.Version]release.Release)
	var dropped int
	for _, rec := range records {
		ver, err := version.Parse(rec.Version)
		if err != nil {
			dropped++
			continue
		}
		triples, exists := byPackage[rec.Package]
		if !exists {
			triples = make(map[version.Version]release.Release)
			byPackage[rec.Package] = triples
		}
		if existing, exists := triples[ver]; exists && existing.Date.After(rec.Date) {
			continue
		}
		triples[ver] = release.Release{
			Package: rec.Package,
			Raw:     rec.Version,
			Version: ver,
			Date:    rec.Date,
		}
	}
	if dropped > 0 {
		log.Debugf("dropped %d release records with non-compliant versions", dropped)
	}

	histories := make([]release.History, 0, len(byPackage))
	for pkg, triples := range byPackage {
		releases := make([]release.Release, 0, len(triples))
		for _, rel := range triples {
			releases = append(releases, rel)
		}
		assignRanks(releases)
		histories = append(histories, release.History{
			Package:  pkg,
			Releases: releases,
		})
	}

	sort.Slice(histories, func(i, j int) bool {
		return histories[i].Package < histories[j].Package
	})

	return histories
}

// assignRanks orders the slice by ascending version, numbers the releases
// 1..N, then numbers them again by publication date with version order
// breaking date ties.
func assignRanks(releases []release.Release) {
	sort.Slice(releases, func(i, j int) bool {
		return releases[i].Version.LessThan(releases[j].Version)
	})
	for idx := range releases {
		releases[idx].VersionRank = idx + 1
	}

	byDate := make([]*release.Release, 0, len(releases))
	for idx := range releases {
		byDate = append(byDate, &releases[idx])
	}
	sort.Slice(byDate, func(i, j int) bool {
		if !byDate[i].Date.Equal(byDate[j].Date) {
			return byDate[i].Date.Before(byDate[j].Date)
		}
		return byDate[i].VersionRank < byDate[j].VersionRank
	})
	for idx, rel := range byDate {
		rel.DateRank = idx + 1
	}
}
