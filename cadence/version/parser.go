package version

import (
	"fmt"

	"github.com/evolens/cadence/internal/log"
)

// ConstraintParser converts one ecosystem's raw dependency-constraint syntax
// into a canonical Interval. Implementations are pure functions of their
// input.
type ConstraintParser interface {
	Parse(raw string) (Interval, error)
}

// GetParser returns the constraint parser for the given ecosystem.
func GetParser(ecosystem Ecosystem) (ConstraintParser, error) {
	switch ecosystem {
	case NpmEcosystem:
		return npmParser{}, nil
	case CargoEcosystem:
		return cargoParser{}, nil
	case PackagistEcosystem:
		return packagistParser{}, nil
	case RubygemsEcosystem:
		return rubygemsParser{}, nil
	}
	return nil, fmt.Errorf("could not find constraint parser for ecosystem: %s", ecosystem)
}

// MustGetParser is meant for testing only, do not use within the library.
func MustGetParser(ecosystem Ecosystem) ConstraintParser {
	parser, err := GetParser(ecosystem)
	if err != nil {
		panic(err)
	}
	return parser
}

// ParseOrEmpty degrades any parse failure to the empty interval. Constraints
// are research data; one malformed entry must not abort a batch.
func ParseOrEmpty(parser ConstraintParser, raw string) Interval {
	interval, err := parser.Parse(raw)
	if err != nil {
		log.Debugf("unparseable constraint %q treated as empty: %v", raw, err)
		return Empty()
	}
	return interval
}
