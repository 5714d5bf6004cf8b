package version

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	opEqual       operator = "="
	opNotEqual    operator = "!="
	opGreater     operator = ">"
	opGreaterEq   operator = ">="
	opLess        operator = "<"
	opLessEq      operator = "<="
	opTilde       operator = "~"
	opCaret       operator = "^"
	opPessimistic operator = "~>"
	opNone        operator = ""
)

type operator string

// operator group only matches on the supported range operators; the version
// group takes everything that is left on the token.
var unitPattern = regexp.MustCompile(`^(?P<operator>~>|>=|=>|<=|=<|!=|<>|==|\^|~|>|<|=)?\s*(?P<version>.+)$`)

// rangeUnit is one operator/version pair pulled out of a constraint phrase.
type rangeUnit struct {
	op      operator
	version partial
}

func splitUnit(token string) (rangeUnit, error) {
	match := unitPattern.FindStringSubmatch(token)
	if match == nil {
		return rangeUnit{}, fmt.Errorf("unable to split constraint unit from %q", token)
	}

	op, err := parseOperator(match[1])
	if err != nil {
		return rangeUnit{}, err
	}

	p, err := parsePartial(match[2])
	if err != nil {
		return rangeUnit{}, err
	}

	return rangeUnit{op: op, version: p}, nil
}

func parseOperator(op string) (operator, error) {
	switch op {
	case "", "=", "==":
		if op == "" {
			return opNone, nil
		}
		return opEqual, nil
	case "!=", "<>":
		return opNotEqual, nil
	case ">":
		return opGreater, nil
	case ">=", "=>":
		return opGreaterEq, nil
	case "<":
		return opLess, nil
	case "<=", "=<":
		return opLessEq, nil
	case "~":
		return opTilde, nil
	case "^":
		return opCaret, nil
	case "~>":
		return opPessimistic, nil
	}
	return "", fmt.Errorf("unknown operator: %q", op)
}

// partial is a version reference as written inside a constraint: possibly
// truncated (1, 1.2), possibly wildcarded (1.2.x, *), possibly carrying a
// prerelease or build tail that the stable release space cannot represent.
type partial struct {
	major, minor, patch Part
	any                 bool // the major component itself is a wildcard
	wild                bool // any component is a wildcard
	hasMinor, hasPatch  bool
	pre                 bool // a -prerelease/+build tail was present
}

var numericComponent = regexp.MustCompile(`^\d+$`)

func parsePartial(raw string) (partial, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "v")
	raw = strings.TrimPrefix(raw, "V")
	if raw == "" {
		return partial{}, fmt.Errorf("empty version reference")
	}

	var p partial

	// a -prerelease or +build tail cannot land on a stable triple; keep only
	// the fact that it was there so bounds can be projected correctly
	if idx := strings.IndexAny(raw, "-+"); idx != -1 {
		if idx == 0 {
			return partial{}, fmt.Errorf("version reference %q has no numeric head", raw)
		}
		p.pre = true
		raw = raw[:idx]
	}
	raw = strings.TrimSuffix(raw, ".")

	components := strings.Split(raw, ".")
	if len(components) > 3 {
		return partial{}, fmt.Errorf("version reference %q has more than three components", raw)
	}

	for idx, component := range components {
		if isWildcard(component) {
			p.wild = true
			if idx == 0 {
				p.any = true
			}
			// everything after a wildcard only restates it
			break
		}
		if !numericComponent.MatchString(component) {
			return partial{}, fmt.Errorf("invalid version component %q in %q", component, raw)
		}
		value, err := strconv.ParseInt(component, 10, 64)
		if err != nil {
			return partial{}, fmt.Errorf("invalid version component %q in %q: %w", component, raw, err)
		}
		switch idx {
		case 0:
			p.major = Part(value)
		case 1:
			p.minor = Part(value)
			p.hasMinor = true
		case 2:
			p.patch = Part(value)
			p.hasPatch = true
		}
	}

	return p, nil
}

func isWildcard(component string) bool {
	switch component {
	case "x", "X", "*":
		return true
	}
	return false
}

// floor is the lowest stable triple the partial can denote (missing
// components zero-filled).
func (p partial) floor() Version {
	if p.any {
		return Zero
	}
	return Version{Major: p.major, Minor: p.minor, Patch: p.patch}
}

// precisionUpper is the exclusive upper bound of the span the partial covers
// at its written precision: 1 -> 2.0.0, 1.2 -> 1.3.0, 1.2.3 -> 1.2.4.
func (p partial) precisionUpper() Version {
	switch {
	case p.any:
		return Infinite
	case p.hasPatch:
		return p.floor().succPatch()
	case p.hasMinor:
		return Version{Major: p.major, Minor: p.minor.succ()}
	}
	return Version{Major: p.major.succ()}
}

// The builders below turn one unit into an Interval over the stable triple
// space. Prerelease-tailed references are projected onto that space: a lower
// bound floors to its triple (stable x.y.z sorts above any x.y.z-pre), an
// upper bound excludes the triple, and equality can never match.

func anyRange() Interval {
	return Any()
}

// exactZeroFill: "= 1.2" matches version 1.2 alone, which normalizes to
// 1.2.0 (gem and composer equality semantics).
func exactZeroFill(p partial) Interval {
	if p.pre {
		return Empty()
	}
	if p.any {
		return Any()
	}
	return NewInterval(Range{Lower: p.floor(), Upper: p.floor().succPatch()})
}

// exactPrecision: "1.2" covers the whole 1.2.x line (npm bare/wildcard
// version semantics).
func exactPrecision(p partial) Interval {
	if p.pre {
		return Empty()
	}
	return NewInterval(Range{Lower: p.floor(), Upper: p.precisionUpper()})
}

func notEqual(p partial) Interval {
	if p.pre || p.any {
		return Any()
	}
	return NewInterval(
		Range{Lower: Zero, Upper: p.floor()},
		Range{Lower: p.floor().succPatch(), Upper: Infinite},
	)
}

func greaterOrEqual(p partial) Interval {
	return NewInterval(Range{Lower: p.floor(), Upper: Infinite})
}

// greater: with zero-fill semantics "> 1.2" admits 1.2.1 (the first triple
// above 1.2.0); with precision semantics (npm) it skips the whole 1.2.x line.
func greater(p partial, precision bool) Interval {
	if p.pre {
		// "> x.y.z-pre" admits the stable x.y.z itself
		return NewInterval(Range{Lower: p.floor(), Upper: Infinite})
	}
	lower := p.floor().succPatch()
	if precision && !p.hasPatch {
		lower = p.precisionUpper()
	}
	return NewInterval(Range{Lower: lower, Upper: Infinite})
}

func less(p partial) Interval {
	return NewInterval(Range{Lower: Zero, Upper: p.floor()})
}

func lessOrEqual(p partial, precision bool) Interval {
	if p.pre {
		// "<= x.y.z-pre" excludes the stable x.y.z
		return NewInterval(Range{Lower: Zero, Upper: p.floor()})
	}
	upper := p.floor().succPatch()
	if precision && !p.hasPatch {
		upper = p.precisionUpper()
	}
	return NewInterval(Range{Lower: Zero, Upper: upper})
}

// caret: anything compatible with the leftmost non-zero component.
func caret(p partial) Interval {
	if p.any {
		return Any()
	}
	var upper Version
	switch {
	case p.major > 0 || !p.hasMinor:
		upper = Version{Major: p.major.succ()}
	case p.minor > 0 || !p.hasPatch:
		upper = Version{Major: p.major, Minor: p.minor.succ()}
	default:
		upper = p.floor().succPatch()
	}
	return NewInterval(Range{Lower: p.floor(), Upper: upper})
}

// tildeNpm: patch-level changes if a minor is given, minor-level otherwise.
func tildeNpm(p partial) Interval {
	if p.any {
		return Any()
	}
	var upper Version
	if p.hasMinor {
		upper = Version{Major: p.major, Minor: p.minor.succ()}
	} else {
		upper = Version{Major: p.major.succ()}
	}
	return NewInterval(Range{Lower: p.floor(), Upper: upper})
}

// pessimistic: the "drop the last written digit" rule shared by the gem ~>
// operator and the composer ~ operator.
func pessimistic(p partial) Interval {
	if p.any {
		return Any()
	}
	var upper Version
	if p.hasPatch {
		upper = Version{Major: p.major, Minor: p.minor.succ()}
	} else {
		upper = Version{Major: p.major.succ()}
	}
	return NewInterval(Range{Lower: p.floor(), Upper: upper})
}

// hyphen: "A - B" with an inclusive upper side honoring B's precision
// ("1.2 - 2.3" admits every 2.3.x release).
func hyphen(lower, upper partial) Interval {
	var top Version
	switch {
	case upper.pre:
		top = upper.floor()
	default:
		top = upper.precisionUpper()
	}
	return NewInterval(Range{Lower: lower.floor(), Upper: top})
}
