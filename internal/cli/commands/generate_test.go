package commands

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/leapstack-labs/robloxstd/internal/cli/config"
	"github.com/leapstack-labs/robloxstd/internal/roblox"
	"github.com/leapstack-labs/robloxstd/internal/testutil"
	"github.com/leapstack-labs/robloxstd/pkg/apidump"
	"github.com/leapstack-labs/robloxstd/pkg/stdlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const generatedPrefix = "# This file was @generated by generate-roblox-std at "

func generateConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()

	cfg := config.Defaults()
	cfg.APIDump = testutil.WriteDumpFile(t, dir)
	cfg.Output = filepath.Join(dir, "roblox.yml")
	cfg.Format = "markdown"
	return cfg
}

func TestGenerate_WritesFile(t *testing.T) {
	cfg := generateConfig(t)

	out, err := execute(t, NewGenerateCommand("1.0.0"), cfg)
	require.NoError(t, err)

	assert.Contains(t, out, "Wrote "+cfg.Output)
	assert.Contains(t, out, "globals")
	assert.Contains(t, out, "struct members")

	data, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), generatedPrefix))

	std, err := stdlib.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, stdlib.NewField(stdlib.StructKind("DataModel")), std.Globals["game"])
	assert.Contains(t, std.Structs, "Workspace")
	assert.Contains(t, std.Globals, "Enum.KeyCode.A")
	require.NotNil(t, std.LastSeleneVersion)
	assert.Equal(t, "1.0.0", *std.LastSeleneVersion)
}

func TestGenerate_Stdout(t *testing.T) {
	cfg := generateConfig(t)
	cfg.Output = config.StdoutPath

	out, err := execute(t, NewGenerateCommand("test"), cfg)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, generatedPrefix))
	assert.NotContains(t, out, "Wrote", "no summary is mixed into the descriptor")

	_, err = stdlib.Parse([]byte(out))
	assert.NoError(t, err)
}

func TestGenerate_JSONSummary(t *testing.T) {
	cfg := generateConfig(t)
	cfg.Format = "json"

	out, err := execute(t, NewGenerateCommand("2.0.0"), cfg)
	require.NoError(t, err)

	var summary generateSummary
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	assert.Equal(t, cfg.Output, summary.Output)
	assert.Equal(t, cfg.APIDump, summary.Source)
	assert.Equal(t, "2.0.0", summary.Version)
	assert.Equal(t, 6, summary.Stats.Classes)
	assert.Greater(t, summary.Stats.Structs, 0)
}

func TestGenerate_HTTPSource(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(testutil.BaseDumpJSON))
	}))
	defer server.Close()

	cfg := generateConfig(t)
	cfg.APIDump = server.URL

	out, err := execute(t, NewGenerateCommand("test"), cfg)
	require.NoError(t, err)
	assert.Contains(t, out, server.URL)
	assert.FileExists(t, cfg.Output)
}

func TestGenerate_Errors(t *testing.T) {
	t.Run("fetch failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		cfg := generateConfig(t)
		cfg.APIDump = server.URL

		_, err := execute(t, NewGenerateCommand("test"), cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, apidump.ErrFetchFailed)
		assert.NoFileExists(t, cfg.Output)
	})

	t.Run("malformed dump", func(t *testing.T) {
		cfg := generateConfig(t)
		require.NoError(t, os.WriteFile(cfg.APIDump, []byte(`{"Classes": [`), 0o600))

		_, err := execute(t, NewGenerateCommand("test"), cfg)
		assert.ErrorIs(t, err, apidump.ErrParseFailed)
	})

	t.Run("watch needs a file", func(t *testing.T) {
		cfg := generateConfig(t)
		cfg.APIDump = "https://example.invalid/API-Dump.json"

		_, err := execute(t, NewGenerateCommand("test"), cfg, "--watch")
		assert.ErrorIs(t, err, errWatchNeedsFile)
	})

	t.Run("unwritable output", func(t *testing.T) {
		cfg := generateConfig(t)
		cfg.Output = filepath.Join(t.TempDir(), "missing", "roblox.yml")

		_, err := execute(t, NewGenerateCommand("test"), cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to write")
	})
}

func TestGenerate_StrictMembers(t *testing.T) {
	dump := strings.Replace(testutil.BaseDumpJSON, `"Members": []}`,
		`"Members": [{"MemberType": "Mystery", "Name": "Unexpected"}]}`, 1)

	tests := []struct {
		name    string
		strict  bool
		wantErr error
	}{
		{name: "lenient skips unknown members", strict: false},
		{name: "strict rejects unknown members", strict: true, wantErr: roblox.ErrUnknownMember},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := generateConfig(t)
			cfg.Strict = tt.strict
			require.NoError(t, os.WriteFile(cfg.APIDump, []byte(dump), 0o600))

			_, err := execute(t, NewGenerateCommand("test"), cfg)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestWatchFile(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteDumpFile(t, dir)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	changes := make(chan struct{}, 1)
	done := make(chan error, 1)
	go func() {
		done <- watchFile(ctx, testutil.NewTestLogger(t), path, changes)
	}()
	go func() {
		for range changes {
			calls.Add(1)
		}
	}()

	assert.Eventually(t, func() bool {
		_ = os.WriteFile(path, []byte(testutil.BaseDumpJSON), 0o600)
		return calls.Load() > 0
	}, 5*time.Second, 200*time.Millisecond)

	time.Sleep(3 * watchDebounce)
	other := calls.Load()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "unrelated.json"), []byte("{}"), 0o600))
	time.Sleep(3 * watchDebounce)
	assert.Equal(t, other, calls.Load(), "changes to other files are ignored")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watchFile did not return after cancel")
	}
}
