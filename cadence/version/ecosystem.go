package version

import "strings"

const (
	UnknownEcosystem Ecosystem = iota
	NpmEcosystem
	CargoEcosystem
	PackagistEcosystem
	RubygemsEcosystem
)

// Ecosystem identifies a package registry namespace with its own constraint
// syntax.
type Ecosystem int

var ecosystemStr = []string{
	"UnknownEcosystem",
	"npm",
	"cargo",
	"packagist",
	"rubygems",
}

var Ecosystems = []Ecosystem{
	NpmEcosystem,
	CargoEcosystem,
	PackagistEcosystem,
	RubygemsEcosystem,
}

func ParseEcosystem(userStr string) Ecosystem {
	switch strings.ToLower(userStr) {
	case NpmEcosystem.String(), "node", "javascript":
		return NpmEcosystem
	case CargoEcosystem.String(), "crates", "rust":
		return CargoEcosystem
	case PackagistEcosystem.String(), "composer", "php":
		return PackagistEcosystem
	case RubygemsEcosystem.String(), "gem", "ruby":
		return RubygemsEcosystem
	}
	return UnknownEcosystem
}

func (e Ecosystem) String() string {
	if int(e) >= len(ecosystemStr) || e < 0 {
		return ecosystemStr[0]
	}
	return ecosystemStr[e]
}

// MarshalText makes the ecosystem render as its name in JSON documents.
func (e Ecosystem) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}
