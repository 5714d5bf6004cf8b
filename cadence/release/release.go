package release

import (
	"time"

	"github.com/evolens/cadence/cadence/version"
)

// Release is one published version of a package. Both ranks are dense 1..N
// orderings within the package: VersionRank ascends by semantic version,
// DateRank by publication date (ties broken by VersionRank). Ranks are
// assigned by the dataset preparation step and never recomputed here.
type Release struct {
	Package     string          `json:"package"`
	Raw         string          `json:"version"`
	Version     version.Version `json:"-"`
	Date        time.Time       `json:"date"`
	VersionRank int             `json:"rank"`
	DateRank    int             `json:"rankDate"`
}

// History is the full release sequence of one package, ordered by
// ascending VersionRank.
type History struct {
	Package  string
	Releases []Release
}

// ClassifiedRelease is a Release labeled with its update kind and backport
// determination. BackportedFrom is the VersionRank of the release the
// backport was issued against, 0 when the release is not a backport.
type ClassifiedRelease struct {
	Release
	Kind           UpdateKind `json:"kind"`
	Backported     bool       `json:"backported"`
	BackportedFrom int        `json:"backportedFrom,omitempty"`
}
