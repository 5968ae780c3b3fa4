// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config is the root-level settings struct and is a mix
// of settings available in configs.yaml and those
// available from the command line
type Config struct {
	// the upstream anchor motif (5'->3')
	Upstream string `mapstructure:"upstream"`

	// the downstream anchor motif (5'->3')
	Downstream string `mapstructure:"downstream"`

	// the directory holding the input FASTQ files
	ReadsDir string `mapstructure:"reads-dir"`

	// the base directory results are written beneath
	ResultsBase string `mapstructure:"results-base"`

	// the maximum length of an extracted sequence
	MaxLength int `mapstructure:"max-length"`
}

// New returns a new Config struct populated by
// Viper settings (either from the local configs.yaml)
// and/or command line arguments
func New() *Config {
	viper.SetDefault("reads-dir", filepath.Join("inputs", "qc_reads"))
	viper.SetDefault("results-base", "results")
	viper.SetDefault("max-length", 40)

	c := &Config{}
	if err := viper.Unmarshal(c); err != nil {
		log.Fatalf("unable to decode settings: %v", err)
	}

	return c
}

// OutputDir is the directory consensus results are written to.
func (c *Config) OutputDir() string {
	return filepath.Join(c.ResultsBase, "consensus")
}

// LogBase is the directory run logs are written beneath.
func (c *Config) LogBase() string {
	return filepath.Join(c.ResultsBase, "consensus", "logs")
}
