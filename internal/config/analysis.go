package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// analysis contains the knobs of the analysis pipeline itself.
type analysis struct {
	Workers        int       `yaml:"workers" json:"workers" mapstructure:"workers"`                         // number of concurrent workers (0 = one per CPU)
	MinDependents  int       `yaml:"min-dependents" json:"min-dependents" mapstructure:"min-dependents"`   // only analyze targets with at least this many dependents
	ActiveSince    string    `yaml:"active-since" json:"active-since" mapstructure:"active-since"`         // drop packages with no release after this date (YYYY-MM-DD, empty disables)
	ActiveSinceOpt time.Time `yaml:"-" json:"-"`
}

func (cfg analysis) loadDefaultValues(v *viper.Viper) {
	v.SetDefault("analysis.workers", 0)
	v.SetDefault("analysis.min-dependents", 5)
	v.SetDefault("analysis.active-since", "2019-01-01")
}

func (cfg *analysis) parseConfigValues() error {
	if cfg.ActiveSince == "" {
		return nil
	}
	cutoff, err := time.Parse("2006-01-02", cfg.ActiveSince)
	if err != nil {
		return fmt.Errorf("bad analysis.active-since value '%s': %w", cfg.ActiveSince, err)
	}
	cfg.ActiveSinceOpt = cutoff
	return nil
}
