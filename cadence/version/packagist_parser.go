package version

import (
	"fmt"
	"strings"
)

// packagistParser understands composer constraint syntax: caret, the
// composer flavour of tilde ("~1.2" allows any 1.x >= 1.2), comparison
// operators (including "!=" / "<>"), hyphen ranges, wildcards, comma- or
// space-separated AND, and "||" (or single "|") OR.
type packagistParser struct{}

func (packagistParser) Parse(raw string) (Interval, error) {
	phrase := strings.TrimSpace(raw)
	if phrase == "" {
		return Empty(), fmt.Errorf("empty packagist constraint")
	}

	// composer accepts both "||" and "|" as the OR separator
	phrase = strings.ReplaceAll(phrase, "||", "|")

	result := Empty()
	for _, orPart := range strings.Split(phrase, "|") {
		interval, err := parsePackagistComparatorSet(orPart)
		if err != nil {
			return Empty(), err
		}
		result = result.Union(interval)
	}

	return result, nil
}

func parsePackagistComparatorSet(phrase string) (Interval, error) {
	phrase = strings.ReplaceAll(phrase, ",", " ")
	tokens := joinDanglingOperators(strings.Fields(phrase))
	if len(tokens) == 0 {
		return Empty(), fmt.Errorf("empty packagist comparator set")
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
		interval, err := packagistUnitInterval(unit)
		if err != nil {
			return Empty(), err
		}
		result = result.Intersect(interval)
		idx++
	}

	return result, nil
}

func packagistUnitInterval(unit rangeUnit) (Interval, error) {
	switch unit.op {
	case opNone, opEqual:
		// "1.0.*" spans its precision; a bare "1.0" is the exact version
		// 1.0(.0), composer zero-fills for equality
		if unit.version.wild || unit.version.any {
			return exactPrecision(unit.version), nil
		}
		return exactZeroFill(unit.version), nil
	case opCaret:
		return caret(unit.version), nil
	case opTilde:
		return pessimistic(unit.version), nil
	case opNotEqual:
		return notEqual(unit.version), nil
	case opGreater:
		return greater(unit.version, false), nil
	case opGreaterEq:
		return greaterOrEqual(unit.version), nil
	case opLess:
		return less(unit.version), nil
	case opLessEq:
		return lessOrEqual(unit.version, false), nil
	}
	return Empty(), fmt.Errorf("operator %q is not part of the composer constraint grammar", unit.op)
}
