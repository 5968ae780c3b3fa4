// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestNew(t *testing.T) {
	viper.Reset()
	viper.Set("upstream", "ACGTACGT")
	viper.Set("downstream", "TTGACCTG")

	c := New()

	if c.Upstream != "ACGTACGT" {
		t.Errorf("Config.Upstream = %v, want %v", c.Upstream, "ACGTACGT")
	}
	if c.Downstream != "TTGACCTG" {
		t.Errorf("Config.Downstream = %v, want %v", c.Downstream, "TTGACCTG")
	}

	// unset settings fall back to their defaults
	if c.MaxLength != 40 {
		t.Errorf("Config.MaxLength = %v, want 40", c.MaxLength)
	}
	if c.ReadsDir != filepath.Join("inputs", "qc_reads") {
		t.Errorf("Config.ReadsDir = %v, want %v", c.ReadsDir, filepath.Join("inputs", "qc_reads"))
	}
	if c.ResultsBase != "results" {
		t.Errorf("Config.ResultsBase = %v, want results", c.ResultsBase)
	}

	viper.Reset()
}

func TestConfig_OutputDir(t *testing.T) {
	c := &Config{ResultsBase: "results"}

	if got := c.OutputDir(); got != filepath.Join("results", "consensus") {
		t.Errorf("Config.OutputDir() = %v", got)
	}
	if got := c.LogBase(); got != filepath.Join("results", "consensus", "logs") {
		t.Errorf("Config.LogBase() = %v", got)
	}
}
