package commands

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/leapstack-labs/robloxstd/internal/cli/config"
	"github.com/leapstack-labs/robloxstd/internal/roblox"
	"github.com/leapstack-labs/robloxstd/internal/testutil"
	"github.com/leapstack-labs/robloxstd/pkg/apidump"
	"github.com/leapstack-labs/robloxstd/pkg/stdlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersion_Markdown(t *testing.T) {
	cfg := config.Defaults()
	cfg.Format = "markdown"

	out, err := execute(t, NewVersionCommand("1.2.3"), cfg)
	require.NoError(t, err)

	assert.Contains(t, out, "generate-roblox-std v1.2.3")
	assert.Contains(t, out, "- **last_selene_version**: 1.2.3")
	assert.Contains(t, out, "- **base library**: roblox_base")
	assert.Contains(t, out, "- **bundled libraries**: lua51, luau, roblox_base")
	assert.Contains(t, out, apidump.DefaultURL)
}

func TestVersion_JSON(t *testing.T) {
	cfg := config.Defaults()
	cfg.Format = "json"

	out, err := execute(t, NewVersionCommand("dev"), cfg)
	require.NoError(t, err)

	var info versionInfo
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, "dev", info.Version)
	assert.Equal(t, stdlib.BuiltinNames(), info.BundledLibraries)
	assert.Equal(t, stdlib.RobloxBaseName, info.BaseLibrary)
}

func TestVersion_MatchesStampedDescriptor(t *testing.T) {
	cfg := config.Defaults()
	cfg.Format = "json"

	out, err := execute(t, NewVersionCommand("4.5.6"), cfg)
	require.NoError(t, err)
	var info versionInfo
	require.NoError(t, json.Unmarshal([]byte(out), &info))

	_, std, err := roblox.New(roblox.WithVersion("4.5.6")).GenerateFrom(testutil.NewBaseDump().Build())
	require.NoError(t, err)
	require.NotNil(t, std.LastSeleneVersion)
	assert.Equal(t, *std.LastSeleneVersion, info.LastSeleneVersion)
}

func TestVersion_RejectsArgs(t *testing.T) {
	_, err := execute(t, NewVersionCommand("dev"), config.Defaults(), "extra")
	assert.Error(t, err)
}
