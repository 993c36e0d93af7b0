package model

import "runtime"

// Config holds the complete run configuration
type Config struct {
	Dumps   DumpsConfig   `yaml:"dumps" mapstructure:"dumps"`
	CSV     CSVConfig     `yaml:"csv" mapstructure:"csv"`
	Scoring ScoringConfig `yaml:"scoring" mapstructure:"scoring"`
	Output  OutputConfig  `yaml:"output" mapstructure:"output"`
}

// DumpsConfig points at the knowledge-base dump files
type DumpsConfig struct {
	Types      string `yaml:"types" mapstructure:"types"`           // instance-types dump path
	Properties string `yaml:"properties" mapstructure:"properties"` // infobox-properties dump path
}

// CSVConfig configures column-mode input bag loading
type CSVConfig struct {
	File      string `yaml:"file" mapstructure:"file"`           // delimited file path ("" = literal mode)
	Separator string `yaml:"separator" mapstructure:"separator"` // cell separator, default TAB
	Column    int    `yaml:"column" mapstructure:"column"`       // zero-based column index
}

// ScoringConfig configures the comparison phase
type ScoringConfig struct {
	TopK    int `yaml:"top_k" mapstructure:"top_k"`     // number of ranked pairs to print
	Workers int `yaml:"workers" mapstructure:"workers"` // concurrent scoring workers
}

// OutputConfig controls diagnostics
type OutputConfig struct {
	Verbose bool `yaml:"verbose" mapstructure:"verbose"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		CSV: CSVConfig{
			Separator: "\t",
			Column:    0,
		},
		Scoring: ScoringConfig{
			TopK:    100,
			Workers: runtime.NumCPU(),
		},
	}
}
