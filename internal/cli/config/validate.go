package config

import (
	"fmt"
	"slices"
)

var validFormats = []string{"auto", "text", "markdown", "json"}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Output == "" {
		return fmt.Errorf("output is required (use %q for stdout)", StdoutPath)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", c.Timeout)
	}
	if !slices.Contains(validFormats, c.Format) {
		return fmt.Errorf("unknown format %q (use: auto, text, markdown, json)", c.Format)
	}
	return nil
}

// WritesToStdout reports whether the descriptor goes to standard output.
func (c *Config) WritesToStdout() bool {
	return c.Output == StdoutPath
}
