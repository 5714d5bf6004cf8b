package version

import (
	"fmt"
	"strings"
)

// cargoParser understands Cargo requirement syntax: comma-separated
// requirements where a bare version is a caret requirement, plus tilde,
// wildcard, and comparison requirements. Cargo has no OR operator.
type cargoParser struct{}

func (cargoParser) Parse(raw string) (Interval, error) {
	phrase := strings.TrimSpace(raw)
	if phrase == "" {
		return Empty(), fmt.Errorf("empty cargo constraint")
	}

	result := Any()
	for _, token := range strings.Split(phrase, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			return Empty(), fmt.Errorf("empty requirement in cargo constraint %q", raw)
		}
		unit, err := splitUnit(token)
		if err != nil {
			return Empty(), err
		}
		interval, err := cargoUnitInterval(unit)
		if err != nil {
			return Empty(), err
		}
		result = result.Intersect(interval)
	}

	return result, nil
}

func cargoUnitInterval(unit rangeUnit) (Interval, error) {
	switch unit.op {
	case opNone:
		// a bare or wildcard version: "1.2.3" means "^1.2.3", "1.2.*" spans
		// the written precision
		if unit.version.wild || unit.version.any {
			return exactPrecision(unit.version), nil
		}
		return caret(unit.version), nil
	case opEqual:
		return exactPrecision(unit.version), nil
	case opCaret:
		return caret(unit.version), nil
	case opTilde:
		return tildeNpm(unit.version), nil
	case opGreater:
		return greater(unit.version, false), nil
	case opGreaterEq:
		return greaterOrEqual(unit.version), nil
	case opLess:
		return less(unit.version), nil
	case opLessEq:
		return lessOrEqual(unit.version, false), nil
	}
	return Empty(), fmt.Errorf("operator %q is not part of the cargo requirement grammar", unit.op)
}
