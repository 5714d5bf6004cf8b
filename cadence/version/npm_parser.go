package version

import (
	"fmt"
	"regexp"
	"strings"
)

// npmParser understands node-semver range syntax: caret and tilde ranges,
// comparison operators, hyphen ranges, x-ranges, space-separated AND and
// "||"-separated OR.
type npmParser struct{}

var bareOperatorPattern = regexp.MustCompile(`^(~>|>=|=>|<=|=<|!=|<>|==|\^|~|>|<|=)$`)

func (npmParser) Parse(raw string) (Interval, error) {
	phrase := strings.TrimSpace(raw)
	if phrase == "" {
		return Empty(), fmt.Errorf("empty npm constraint")
	}

	result := Empty()
	for _, orPart := range strings.Split(phrase, "||") {
		interval, err := parseNpmComparatorSet(orPart)
		if err != nil {
			return Empty(), err
		}
		result = result.Union(interval)
	}

	return result, nil
}

func parseNpmComparatorSet(phrase string) (Interval, error) {
	tokens := joinDanglingOperators(strings.Fields(phrase))
	if len(tokens) == 0 {
		return Empty(), fmt.Errorf("empty npm comparator set")
	}

	result := Any()
	for idx := 0; idx < len(tokens); {
		if idx+2 < len(tokens) && tokens[idx+1] == "-" {
			lower, err := parsePartial(tokens[idx])
			if err != nil {
				return Empty(), err
			}
			upper, err := parsePartial(tokens[idx+2])
			if err != nil {
				return Empty(), err
			}
			result = result.Intersect(hyphen(lower, upper))
			idx += 3
			continue
		}

		unit, err := splitUnit(tokens[idx])
		if err != nil {
			return Empty(), err
		}
		interval, err := npmUnitInterval(unit)
		if err != nil {
			return Empty(), err
		}
		result = result.Intersect(interval)
		idx++
	}

	return result, nil
}

// joinDanglingOperators re-attaches operators that were written with a space
// before their version (">= 1.2.3").
func joinDanglingOperators(tokens []string) []string {
	var out []string
	for idx := 0; idx < len(tokens); idx++ {
		token := tokens[idx]
		if bareOperatorPattern.MatchString(token) && idx+1 < len(tokens) {
			out = append(out, token+tokens[idx+1])
			idx++
			continue
		}
		out = append(out, token)
	}
	return out
}

func npmUnitInterval(unit rangeUnit) (Interval, error) {
	switch unit.op {
	case opNone, opEqual:
		return exactPrecision(unit.version), nil
	case opCaret:
		return caret(unit.version), nil
	case opTilde:
		return tildeNpm(unit.version), nil
	case opGreater:
		return greater(unit.version, true), nil
	case opGreaterEq:
		return greaterOrEqual(unit.version), nil
	case opLess:
		return less(unit.version), nil
	case opLessEq:
		return lessOrEqual(unit.version, true), nil
	}
	return Empty(), fmt.Errorf("operator %q is not part of the npm range grammar", unit.op)
}
