package version

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrEmptyInterval is returned when a bound is requested from an interval
// that contains no versions. Callers should check IsEmpty first.
var ErrEmptyInterval = errors.New("interval is empty: bounds are undefined")

// Range is a contiguous span of versions: the lower bound is inclusive, the
// upper bound exclusive. An upper bound of Infinite means "unbounded above".
type Range struct {
	Lower Version `json:"lower"`
	Upper Version `json:"upper"`
}

func NewRange(lower, upper Version) Range {
	return Range{Lower: lower, Upper: upper}
}

func (r Range) Contains(v Version) bool {
	return v.Compare(r.Lower) >= 0 && v.Compare(r.Upper) < 0
}

// isEmpty reports a zero-width (or inverted) range.
func (r Range) isEmpty() bool {
	return r.Lower.Compare(r.Upper) >= 0
}

func (r Range) String() string {
	return fmt.Sprintf("[%s, %s)", r.Lower, r.Upper)
}

// Interval is a finite, possibly-empty union of disjoint ranges kept sorted
// by lower bound. Unions (not single ranges) are required since real
// constraint grammars express disjunctions ("this major line OR that one").
type Interval struct {
	ranges []Range
}

// Empty returns the interval that contains no versions.
func Empty() Interval {
	return Interval{}
}

// Any returns the interval that contains every version.
func Any() Interval {
	return Interval{ranges: []Range{{Lower: Zero, Upper: Infinite}}}
}

// NewInterval normalizes the given ranges into a canonical interval: sorted
// by lower bound, zero-width ranges dropped, and overlapping or adjacent
// ranges merged into one.
func NewInterval(ranges ...Range) Interval {
	kept := make([]Range, 0, len(ranges))
	for _, r := range ranges {
		if !r.isEmpty() {
			kept = append(kept, r)
		}
	}

	sort.Slice(kept, func(i, j int) bool {
		if c := kept[i].Lower.Compare(kept[j].Lower); c != 0 {
			return c < 0
		}
		return kept[i].Upper.Compare(kept[j].Upper) < 0
	})

	var merged []Range
	for _, r := range kept {
		if len(merged) == 0 {
			merged = append(merged, r)
			continue
		}
		last := &merged[len(merged)-1]
		if r.Lower.Compare(last.Upper) <= 0 {
			// overlapping or contiguous with the previous range
			if r.Upper.Compare(last.Upper) > 0 {
				last.Upper = r.Upper
			}
			continue
		}
		merged = append(merged, r)
	}

	return Interval{ranges: merged}
}

func (i Interval) IsEmpty() bool {
	return len(i.ranges) == 0
}

// Ranges returns a copy of the constituent ranges in ascending order.
func (i Interval) Ranges() []Range {
	out := make([]Range, len(i.ranges))
	copy(out, i.ranges)
	return out
}

// Contains reports whether v falls within any constituent range. Ranges are
// disjoint, so at most one can match.
func (i Interval) Contains(v Version) bool {
	for _, r := range i.ranges {
		if r.Contains(v) {
			return true
		}
	}
	return false
}

// LowestBound returns the inclusive lower bound of the lowest range.
func (i Interval) LowestBound() (Version, error) {
	if i.IsEmpty() {
		return Version{}, ErrEmptyInterval
	}
	return i.ranges[0].Lower, nil
}

// HighestBound returns the exclusive upper bound of the highest range.
func (i Interval) HighestBound() (Version, error) {
	if i.IsEmpty() {
		return Version{}, ErrEmptyInterval
	}
	return i.ranges[len(i.ranges)-1].Upper, nil
}

// Union returns the interval accepting versions from either operand.
func (i Interval) Union(other Interval) Interval {
	return NewInterval(append(i.Ranges(), other.ranges...)...)
}

// Intersect returns the interval accepting only versions in both operands.
func (i Interval) Intersect(other Interval) Interval {
	var out []Range
	for _, a := range i.ranges {
		for _, b := range other.ranges {
			lower := a.Lower
			if b.Lower.Compare(lower) > 0 {
				lower = b.Lower
			}
			upper := a.Upper
			if b.Upper.Compare(upper) < 0 {
				upper = b.Upper
			}
			out = append(out, Range{Lower: lower, Upper: upper})
		}
	}
	return NewInterval(out...)
}

func (i Interval) String() string {
	if i.IsEmpty() {
		return "(empty)"
	}
	parts := make([]string, len(i.ranges))
	for idx, r := range i.ranges {
		parts[idx] = r.String()
	}
	return strings.Join(parts, " || ")
}
