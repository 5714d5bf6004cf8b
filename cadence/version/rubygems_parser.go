package version

import (
	"fmt"
	"strings"
)

// rubygemsParser understands gem requirement syntax: comma-separated
// requirements using =, !=, >, >=, <, <= and the pessimistic operator "~>".
// Gem requirements have no OR operator and no wildcards.
type rubygemsParser struct{}

func (rubygemsParser) Parse(raw string) (Interval, error) {
	phrase := strings.TrimSpace(raw)
	if phrase == "" {
		return Empty(), fmt.Errorf("empty rubygems constraint")
	}

	result := Any()
	for _, token := range strings.Split(phrase, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			return Empty(), fmt.Errorf("empty requirement in rubygems constraint %q", raw)
		}
		unit, err := splitUnit(token)
		if err != nil {
			return Empty(), err
		}
		interval, err := rubygemsUnitInterval(unit)
		if err != nil {
			return Empty(), err
		}
		result = result.Intersect(interval)
	}

	return result, nil
}

func rubygemsUnitInterval(unit rangeUnit) (Interval, error) {
	if unit.version.wild || unit.version.any {
		return Empty(), fmt.Errorf("gem requirements have no wildcard syntax")
	}
	switch unit.op {
	case opNone, opEqual:
		return exactZeroFill(unit.version), nil
	case opNotEqual:
		return notEqual(unit.version), nil
	case opPessimistic:
		return pessimistic(unit.version), nil
	case opGreater:
		return greater(unit.version, false), nil
	case opGreaterEq:
		return greaterOrEqual(unit.version), nil
	case opLess:
		return less(unit.version), nil
	case opLessEq:
		return lessOrEqual(unit.version, false), nil
	}
	return Empty(), fmt.Errorf("operator %q is not part of the gem requirement grammar", unit.op)
}
