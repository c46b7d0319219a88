// Package config provides configuration management for the generate-roblox-std CLI.
package config

import "time"

// Config holds all CLI configuration options.
type Config struct {
	Output  string        `koanf:"output"`   // descriptor path, "-" for stdout
	APIDump string        `koanf:"api_dump"` // file path or URL; empty for the upstream dump
	Timeout time.Duration `koanf:"timeout"`
	Strict  bool          `koanf:"strict"`
	Verbose bool          `koanf:"verbose"`
	Format  string        `koanf:"format"`
}

// Default configuration values.
const (
	DefaultOutput  = "roblox.yml"
	DefaultTimeout = 30 * time.Second
	DefaultFormat  = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	EnvPrefix      = "ROBLOXSTD_"
	StdoutPath     = "-"
)

// configFileNames are searched in the working directory when --config is not given.
var configFileNames = []string{"robloxstd.yaml", "robloxstd.yml"}

// Defaults returns the built-in configuration.
func Defaults() *Config {
	return &Config{
		Output:  DefaultOutput,
		Timeout: DefaultTimeout,
		Format:  DefaultFormat,
	}
}
