package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.StringP("output", "o", "", "")
	flags.String("api-dump", "", "")
	flags.Duration("timeout", 0, "")
	flags.Bool("strict", false, "")
	flags.BoolP("verbose", "v", false, "")
	flags.String("format", "", "")
	require.NoError(t, flags.Parse(args))
	return flags
}

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(t.TempDir(), "", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultOutput, cfg.Output)
	assert.Equal(t, "", cfg.APIDump)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.Equal(t, DefaultFormat, cfg.Format)
	assert.False(t, cfg.Strict)
	assert.Empty(t, cfg.File)
}

func TestLoadFrom_Precedence(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "robloxstd.yaml"), []byte(`output: from-file.yml
api_dump: dumps/API-Dump.json
timeout: 5s
format: text
`), 0o600))

	t.Run("file over defaults", func(t *testing.T) {
		cfg, err := LoadFrom(dir, "", newFlags(t))
		require.NoError(t, err)
		assert.Equal(t, "from-file.yml", cfg.Output)
		assert.Equal(t, 5*time.Second, cfg.Timeout)
		assert.Equal(t, "text", cfg.Format)
		assert.Equal(t, filepath.Join(dir, "robloxstd.yaml"), cfg.File)
		assert.Equal(t, filepath.Join(dir, "dumps", "API-Dump.json"), cfg.APIDump, "relative to the config file")
	})

	t.Run("env over file", func(t *testing.T) {
		t.Setenv("ROBLOXSTD_OUTPUT", "from-env.yml")
		t.Setenv("ROBLOXSTD_STRICT", "true")
		cfg, err := LoadFrom(dir, "", newFlags(t))
		require.NoError(t, err)
		assert.Equal(t, "from-env.yml", cfg.Output)
		assert.True(t, cfg.Strict)
	})

	t.Run("flags over env", func(t *testing.T) {
		t.Setenv("ROBLOXSTD_OUTPUT", "from-env.yml")
		cfg, err := LoadFrom(dir, "", newFlags(t, "--output", "from-flag.yml", "--api-dump", "local.json", "--timeout", "1m"))
		require.NoError(t, err)
		assert.Equal(t, "from-flag.yml", cfg.Output)
		assert.Equal(t, "local.json", cfg.APIDump, "flag paths stay relative to the working directory")
		assert.Equal(t, time.Minute, cfg.Timeout)
	})

	t.Run("unset flags do not override", func(t *testing.T) {
		cfg, err := LoadFrom(dir, "", newFlags(t, "--verbose"))
		require.NoError(t, err)
		assert.Equal(t, "from-file.yml", cfg.Output)
		assert.True(t, cfg.Verbose)
	})
}

func TestLoadFrom_ExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: \"-\"\napi_dump: https://example.com/dump.json\n"), 0o600))

	cfg, err := LoadFrom(t.TempDir(), path, nil)
	require.NoError(t, err)
	assert.True(t, cfg.WritesToStdout())
	assert.Equal(t, "https://example.com/dump.json", cfg.APIDump, "URLs are not resolved as paths")
	assert.Equal(t, path, cfg.File)
}

func TestLoadFrom_Errors(t *testing.T) {
	t.Run("missing explicit file", func(t *testing.T) {
		_, err := LoadFrom(t.TempDir(), filepath.Join(t.TempDir(), "nope.yaml"), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error reading config file")
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := LoadFrom(t.TempDir(), "", newFlags(t, "--format", "xml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown format")
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		errSubstr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "empty output", mutate: func(c *Config) { c.Output = "" }, errSubstr: "output is required"},
		{name: "negative timeout", mutate: func(c *Config) { c.Timeout = -time.Second }, errSubstr: "timeout"},
		{name: "bad format", mutate: func(c *Config) { c.Format = "html" }, errSubstr: "unknown format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.errSubstr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}
}

func TestGetLogger(t *testing.T) {
	assert.NotNil(t, GetLogger(context.Background()), "falls back to a discard logger")

	logger := NewLogger(os.Stderr, true)
	ctx := WithLogger(context.Background(), logger)
	assert.Same(t, logger, GetLogger(ctx))
}

func TestFromContext(t *testing.T) {
	assert.Equal(t, Defaults(), FromContext(context.Background()).Config)

	loaded := &Loaded{Config: &Config{Output: "x.yml"}, File: "robloxstd.yaml"}
	ctx := WithConfig(context.Background(), loaded)
	assert.Same(t, loaded, FromContext(ctx))
}
