package version

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// Part is a single version component. The Inf sentinel orders above every
// finite value and is used for open-ended interval bounds and for the
// synthetic probe versions that classify constraint openness.
type Part int64

const Inf Part = math.MaxInt64

func (p Part) String() string {
	if p == Inf {
		return "inf"
	}
	return strconv.FormatInt(int64(p), 10)
}

// succ returns the next representable part, saturating at Inf.
func (p Part) succ() Part {
	if p == Inf {
		return Inf
	}
	return p + 1
}

// Version is a (major, minor, patch) triple ordered lexicographically.
// Two versions with identical components compare equal regardless of the
// string they were parsed from.
type Version struct {
	Major Part `json:"major"`
	Minor Part `json:"minor"`
	Patch Part `json:"patch"`
}

// Infinite orders above every concrete version and acts as the "no upper
// bound" marker on ranges.
var Infinite = Version{Major: Inf, Minor: Inf, Patch: Inf}

// Zero is the lowest concrete version.
var Zero = Version{}

// versionPattern accepts exactly three dot-separated numeric components with
// no trailing qualifier; everything else (prereleases, build metadata,
// 2-component or 4-component numbers) is rejected upstream of the core.
var versionPattern = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)$`)

// ErrNotSemantic indicates a raw version string that does not reduce to a
// clean (major, minor, patch) triple.
var ErrNotSemantic = fmt.Errorf("version is not a plain major.minor.patch triple")

func New(major, minor, patch Part) Version {
	return Version{Major: major, Minor: minor, Patch: patch}
}

// Parse converts a raw release version string into a Version. Only strict
// three-component numeric strings are accepted; callers are expected to drop
// anything else (the same filter the upstream data preparation applies).
func Parse(raw string) (Version, error) {
	fields := versionPattern.FindStringSubmatch(raw)
	if fields == nil {
		return Version{}, fmt.Errorf("unable to parse version %q: %w", raw, ErrNotSemantic)
	}

	parts := make([]Part, 3)
	for i, field := range fields[1:] {
		value, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return Version{}, fmt.Errorf("unable to parse version %q: %w", raw, err)
		}
		parts[i] = Part(value)
	}

	return Version{Major: parts[0], Minor: parts[1], Patch: parts[2]}, nil
}

// Compare returns -1, 0, or 1 if v is smaller, equal, or larger than other.
func (v Version) Compare(other Version) int {
	if v.Major != other.Major {
		return comparePart(v.Major, other.Major)
	}
	if v.Minor != other.Minor {
		return comparePart(v.Minor, other.Minor)
	}
	return comparePart(v.Patch, other.Patch)
}

func comparePart(a, b Part) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (v Version) Equal(other Version) bool {
	return v == other
}

func (v Version) LessThan(other Version) bool {
	return v.Compare(other) < 0
}

func (v Version) String() string {
	return fmt.Sprintf("%s.%s.%s", v.Major, v.Minor, v.Patch)
}

// succPatch is the immediate successor of v in the stable release space,
// used to canonicalize inclusive upper bounds into exclusive ones.
func (v Version) succPatch() Version {
	return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch.succ()}
}

// nextMinor is the first version of the following minor line (1.2.x -> 1.3.0).
func (v Version) nextMinor() Version {
	return Version{Major: v.Major, Minor: v.Minor.succ()}
}

// nextMajor is the first version of the following major line (1.x.y -> 2.0.0).
func (v Version) nextMajor() Version {
	return Version{Major: v.Major.succ()}
}
