package dataset

import (
	"regexp"
	"sort"
	"time"

	"github.com/scylladb/go-set/strset"

	"github.com/evolens/cadence/cadence/release"
	"github.com/evolens/cadence/cadence/version"
	"github.com/evolens/cadence/internal/log"
	"github.com/evolens/cadence/internal/stringutil"
)

// Edge is a dependency declared by the latest release of the source
// package: source (at its newest version and rank) constrains target.
type Edge struct {
	Source        string `json:"source"`
	SourceVersion string `json:"sourceVersion"`
	SourceRank    int    `json:"sourceRank"`
	Target        string `json:"target"`
	Constraint    string `json:"constraint"`
}

// name patterns of known npm spam campaigns (mass-published junk packages)
var (
	spamPrefixes = []string{
		"@ryancavanaugh/pkg",
		"all-packages-",
		"cool-",
		"neat-",
		"wowdude-",
		"npmdoc-",
		"npmtest-",
		"npm-ghost-",
	}
	spamSuffixes     = []string{"-cdn"}
	ghostNamePattern = regexp.MustCompile(`^ghost-\d+$`)
)

// dependency kinds that install with the package (others are dev/test only)
var runtimeKinds = strset.New("", "normal", "runtime")

// DropSpam removes releases of packages matching known spam campaigns.
// Only the npm registry is affected; other ecosystems pass through.
func DropSpam(records []ReleaseRecord, ecosystem version.Ecosystem) []ReleaseRecord {
	if ecosystem != version.NpmEcosystem {
		return records
	}
	kept := make([]ReleaseRecord, 0, len(records))
	for _, rec := range records {
		if isSpam(rec.Package) {
			continue
		}
		kept = append(kept, rec)
	}
	if removed := len(records) - len(kept); removed > 0 {
		log.Debugf("dropped %d release records from spam packages", removed)
	}
	return kept
}

func isSpam(pkg string) bool {
	return stringutil.HasAnyOfPrefixes(pkg, spamPrefixes...) ||
		stringutil.HasAnyOfSuffixes(pkg, spamSuffixes...) ||
		ghostNamePattern.MatchString(pkg)
}

// FilterActive keeps only packages whose most recent release is on or after
// the cutoff, discarding abandoned packages.
func FilterActive(histories []release.History, cutoff time.Time) []release.History {
	if cutoff.IsZero() {
		return histories
	}
	kept := make([]release.History, 0, len(histories))
	for _, h := range histories {
		latest := LatestRelease(h)
		if latest.Date.Before(cutoff) {
			continue
		}
		kept = append(kept, h)
	}
	log.Debugf("kept %d of %d packages active since %s", len(kept), len(histories), cutoff.Format("2006-01-02"))
	return kept
}

// LatestRelease returns the most recently published release of a history
// (the highest DateRank). The history must not be empty.
func LatestRelease(h release.History) release.Release {
	latest := h.Releases[0]
	for _, rel := range h.Releases[1:] {
		if rel.DateRank > latest.DateRank {
			latest = rel
		}
	}
	return latest
}

// FilterEdges reduces raw dependency records to the edges the analysis
// resolves: runtime dependencies declared by the latest release of a known
// source package, pointing at a known target package.
func FilterEdges(records []DependencyRecord, histories []release.History) []Edge {
	latestBySource := make(map[string]release.Release, len(histories))
	for _, h := range histories {
		latestBySource[h.Package] = LatestRelease(h)
	}

	edges := make([]Edge, 0, len(records))
	for _, rec := range records {
		if !runtimeKinds.Has(rec.Kind) {
			continue
		}
		latest, known := latestBySource[rec.Source]
		if !known || rec.Version != latest.Raw {
			continue
		}
		if _, known := latestBySource[rec.Target]; !known {
			continue
		}
		edges = append(edges, Edge{
			Source:        rec.Source,
			SourceVersion: latest.Raw,
			SourceRank:    latest.VersionRank,
			Target:        rec.Target,
			Constraint:    rec.Constraint,
		})
	}
	log.Debugf("kept %d of %d dependency records as current runtime edges", len(edges), len(records))
	return edges
}

// RequiredTargets returns the packages depended upon by at least
// minDependents distinct source packages, sorted by name. A minDependents
// of zero or less admits every target.
func RequiredTargets(edges []Edge, minDependents int) *strset.Set {
	dependents := make(map[string]*strset.Set)
	for _, e := range edges {
		sources, exists := dependents[e.Target]
		if !exists {
			sources = strset.New()
			dependents[e.Target] = sources
		}
		sources.Add(e.Source)
	}

	required := strset.New()
	for target, sources := range dependents {
		if minDependents <= 0 || sources.Size() >= minDependents {
			required.Add(target)
		}
	}
	return required
}

// SelectEdges keeps the edges whose target is in the required set, in a
// deterministic (source, target) order.
func SelectEdges(edges []Edge, required *strset.Set) []Edge {
	kept := make([]Edge, 0, len(edges))
	for _, e := range edges {
		if required.Has(e.Target) {
			kept = append(kept, e)
		}
	}
	sort.Slice(kept, func(i, j int) bool {
		if kept[i].Source != kept[j].Source {
			return kept[i].Source < kept[j].Source
		}
		return kept[i].Target < kept[j].Target
	})
	return kept
}
