package config

import "github.com/spf13/viper"

// export holds optional CSV export destinations (a .gz suffix enables
// compression); empty paths disable the export.
type export struct {
	Releases string `yaml:"releases" json:"releases" mapstructure:"releases"`
	Edges    string `yaml:"edges" json:"edges" mapstructure:"edges"`
}

func (cfg export) loadDefaultValues(v *viper.Viper) {
	v.SetDefault("export.releases", "")
	v.SetDefault("export.edges", "")
}
