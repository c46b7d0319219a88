package commands

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/leapstack-labs/robloxstd/internal/cli/config"
	"github.com/leapstack-labs/robloxstd/internal/cli/output"
	clitest "github.com/leapstack-labs/robloxstd/internal/cli/testutil"
	"github.com/leapstack-labs/robloxstd/internal/roblox"
	"github.com/leapstack-labs/robloxstd/internal/testutil"
	"github.com/leapstack-labs/robloxstd/pkg/stdlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeDescriptor generates a descriptor from the base test dump into dir.
func writeDescriptor(t *testing.T, dir string) string {
	t.Helper()

	gen := roblox.New(
		roblox.WithVersion("0.9.0"),
		roblox.WithClock(func() time.Time { return time.Unix(1700000000, 0) }),
	)
	data, _, err := gen.GenerateFrom(testutil.NewBaseDump().Build())
	require.NoError(t, err)

	path := filepath.Join(dir, "roblox.yml")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestInspect_JSON(t *testing.T) {
	path := writeDescriptor(t, t.TempDir())
	cfg := config.Defaults()
	cfg.Format = "json"

	out, err := execute(t, NewInspectCommand(), cfg, path)
	require.NoError(t, err)

	var summary inspectSummary
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	assert.Equal(t, path, summary.File)
	assert.Equal(t, "roblox", summary.Name)
	assert.Equal(t, "luau", summary.Base)
	require.NotNil(t, summary.LastUpdated)
	assert.Equal(t, int64(1700000000), *summary.LastUpdated)
	require.NotNil(t, summary.Version)
	assert.Equal(t, "0.9.0", *summary.Version)
	assert.Equal(t, 6, summary.Stats.Classes)
	assert.Contains(t, summary.LuaVersions, "luau", "inherited through the base chain")
}

func TestInspect_Markdown(t *testing.T) {
	path := writeDescriptor(t, t.TempDir())
	cfg := config.Defaults()
	cfg.Format = "markdown"

	out, err := execute(t, NewInspectCommand(), cfg, path)
	require.NoError(t, err)

	assert.Contains(t, out, "# Standard Library Roblox")
	assert.Contains(t, out, "- **base**: luau")
	assert.Contains(t, out, "- **generator version**: 0.9.0")
	assert.Contains(t, out, "2023-11-14T22:13:20Z")
	assert.Contains(t, out, "| Entry")
}

func TestInspect_ResolvesBase(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yml")
	require.NoError(t, os.WriteFile(path, []byte("base: lua51\nname: custom\nglobals:\n  extra:\n    any: true\n"), 0o600))

	base, err := stdlib.FromName("lua51")
	require.NoError(t, err)

	cfg := config.Defaults()
	cfg.Format = "json"
	out, err := execute(t, NewInspectCommand(), cfg, path)
	require.NoError(t, err)

	var summary inspectSummary
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	assert.Equal(t, len(base.Globals)+1, summary.Stats.Globals)
}

func TestInspect_Errors(t *testing.T) {
	dir := t.TempDir()
	invalid := filepath.Join(dir, "invalid.yml")
	require.NoError(t, os.WriteFile(invalid, []byte("globals: [unclosed"), 0o600))
	unknownBase := filepath.Join(dir, "unknown.yml")
	require.NoError(t, os.WriteFile(unknownBase, []byte("base: nope\n"), 0o600))

	tests := []struct {
		name      string
		path      string
		errSubstr string
		errIs     error
	}{
		{name: "missing file", path: filepath.Join(dir, "missing.yml"), errSubstr: "failed to read"},
		{name: "invalid yaml", path: invalid, errSubstr: "failed to parse"},
		{name: "unknown base", path: unknownBase, errSubstr: "failed to resolve base", errIs: stdlib.ErrUnknownLibrary},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, NewInspectCommand(), config.Defaults(), tt.path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
			}
		})
	}
}

func TestInspect_RendersCleanMarkdown(t *testing.T) {
	path := writeDescriptor(t, t.TempDir())

	tr := clitest.NewTestRenderer(output.ModeMarkdown)
	cmd := NewInspectCommand()
	cmd.SetOut(tr.Out)
	cmd.SetErr(tr.ErrOut)
	cmd.SetArgs([]string{path})

	cfg := config.Defaults()
	cfg.Format = string(output.ModeMarkdown)
	require.NoError(t, cmd.ExecuteContext(config.WithConfig(context.Background(), &config.Loaded{Config: cfg})))

	assert.Equal(t, output.ModeMarkdown, tr.EffectiveMode())
	clitest.AssertNoANSI(t, tr.Output())
	clitest.AssertValidMarkdown(t, tr.Output())
	assert.Empty(t, tr.ErrorOutput())
}
