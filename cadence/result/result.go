/*
Package result holds the complete output of one analysis run: classified
release histories, per-constraint resolutions, and the resolved dependency
edges, plus summary aggregation over all of it.
*/
package result

import (
	"fmt"

	"github.com/mitchellh/hashstructure/v2"

	"github.com/evolens/cadence/cadence/dataset"
	"github.com/evolens/cadence/cadence/release"
	"github.com/evolens/cadence/cadence/selection"
	"github.com/evolens/cadence/cadence/version"
)

// ResolvedEdge is a dependency edge joined with the resolution of its
// (target, constraint) pair.
type ResolvedEdge struct {
	dataset.Edge
	Interval     string              `json:"interval"`
	Descriptors  version.Descriptors `json:"descriptors"`
	SelectedRank int                 `json:"selected,omitempty"`
}

// Result is everything one analysis run produced.
type Result struct {
	Ecosystem   version.Ecosystem           `json:"ecosystem"`
	Classified  []release.ClassifiedRelease `json:"releases"`
	Resolutions []selection.Resolution      `json:"resolutions"`
	Edges       []ResolvedEdge              `json:"edges"`
}

// Summary are the headline aggregates of a Result.
type Summary struct {
	Packages      int
	Releases      int
	Backports     int
	KindCounts    map[release.UpdateKind]int
	Constraints   int
	Edges         int
	Unsatisfiable int
	Descriptors   DescriptorCounts
}

// DescriptorCounts tallies how many distinct constraints carry each
// classification flag.
type DescriptorCounts struct {
	Empty int
	Dev   int
	Major int
	Minor int
	Patch int
}

// Summarize computes the aggregates shown by the table presenter.
func (r Result) Summarize() Summary {
	s := Summary{
		KindCounts:  make(map[release.UpdateKind]int),
		Constraints: len(r.Resolutions),
		Edges:       len(r.Edges),
	}

	packages := make(map[string]struct{})
	for _, rel := range r.Classified {
		packages[rel.Package] = struct{}{}
		s.KindCounts[rel.Kind]++
		if rel.Backported {
			s.Backports++
		}
	}
	s.Packages = len(packages)
	s.Releases = len(r.Classified)

	for _, res := range r.Resolutions {
		if !res.Satisfiable() {
			s.Unsatisfiable++
		}
		d := res.Descriptors
		if d.Empty {
			s.Descriptors.Empty++
		}
		if d.Dev {
			s.Descriptors.Dev++
		}
		if d.Major {
			s.Descriptors.Major++
		}
		if d.Minor {
			s.Descriptors.Minor++
		}
		if d.Patch {
			s.Descriptors.Patch++
		}
	}

	return s
}

// Digest returns a stable hash of the result, used to confirm that repeated
// runs over the same snapshot produce identical output.
func (r Result) Digest() (string, error) {
	hash, err := hashstructure.Hash(r, hashstructure.FormatV2, nil)
	if err != nil {
		return "", fmt.Errorf("unable to hash result: %w", err)
	}
	return fmt.Sprintf("%016x", hash), nil
}
