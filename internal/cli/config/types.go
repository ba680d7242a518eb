// Package config provides configuration management for the standardcheck CLI.
//
// Values are layered with koanf: built-in defaults, then a standardcheck.yaml
// file, then STANDARDCHECK_* environment variables, then flags the user set
// explicitly.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// Config holds all CLI configuration options.
type Config struct {
	Standards []string `koanf:"standards"`
	Delimiter string   `koanf:"delimiter"`
	Catalog   string   `koanf:"catalog"` // external catalog replacing the built-in one
	Output    string   `koanf:"output"`
	Exclude   []string `koanf:"exclude"`
	Verbose   bool     `koanf:"verbose"`
}

// Default configuration values.
const (
	DefaultStandard  = "TESTING"
	DefaultDelimiter = ":"
	DefaultOutput    = "plain"
	EnvPrefix        = "STANDARDCHECK_"
)

// ConfigFileNames are searched, in order, when no config file is given.
var ConfigFileNames = []string{"standardcheck.yaml", "standardcheck.yml"}

// ErrBadDelimiter is returned when the delimiter is empty.
var ErrBadDelimiter = errors.New("bad delimiter")

// ErrBadOutput is returned for an unknown output mode.
var ErrBadOutput = errors.New("bad output mode")

var outputModes = []string{"plain", "text", "markdown", "json", "auto"}

// OutputModes lists the accepted values of the output key.
func OutputModes() []string {
	out := make([]string, len(outputModes))
	copy(out, outputModes)
	return out
}

// Validate checks values that cannot be caught by decoding.
func (c *Config) Validate() error {
	if c.Delimiter == "" {
		return ErrBadDelimiter
	}
	mode := strings.ToLower(c.Output)
	for _, m := range outputModes {
		if mode == m {
			return nil
		}
	}
	return fmt.Errorf("%w %q (want %s)", ErrBadOutput, c.Output, strings.Join(outputModes, "|"))
}
