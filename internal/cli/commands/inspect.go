package commands

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/leapstack-labs/robloxstd/internal/cli/output"
	"github.com/leapstack-labs/robloxstd/internal/roblox"
	"github.com/leapstack-labs/robloxstd/pkg/stdlib"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// inspectSummary is the JSON shape of an inspect result.
type inspectSummary struct {
	File        string       `json:"file"`
	Name        string       `json:"name"`
	Base        string       `json:"base,omitempty"`
	LuaVersions []string     `json:"lua_versions,omitempty"`
	LastUpdated *int64       `json:"last_updated,omitempty"`
	Version     *string      `json:"last_selene_version,omitempty"`
	Stats       roblox.Stats `json:"stats"`
}

// NewInspectCommand creates the inspect command.
func NewInspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Summarize a standard library descriptor",
		Long: `Parse a selene standard library YAML file, resolve its base chain
against the bundled libraries and print what it contains.`,
		Example: `  # Summarize a generated descriptor
  generate-roblox-std inspect roblox.yml

  # As JSON
  generate-roblox-std inspect roblox.yml --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args[0])
		},
	}
	return cmd
}

func runInspect(cmd *cobra.Command, path string) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	std, err := stdlib.Parse(data)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	summary := inspectSummary{
		File:        path,
		Name:        std.Name,
		Base:        std.Base,
		LuaVersions: std.LuaVersions,
		LastUpdated: std.LastUpdated,
		Version:     std.LastSeleneVersion,
	}

	if std.Base != "" {
		base, err := stdlib.FromName(std.Base)
		if err != nil {
			return fmt.Errorf("failed to resolve base of %s: %w", path, err)
		}
		std.Extend(base)
		summary.LuaVersions = std.LuaVersions
		cmdCtx.Logger.Debug("resolved base library", "base", summary.Base)
	}
	summary.Stats = roblox.StatsOf(std)

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(summary)
	}

	r.Header(1, "Standard Library "+displayName(summary.Name))
	r.Println(output.FormatKeyValue("file", summary.File))
	if summary.Base != "" {
		r.Println(output.FormatKeyValue("base", summary.Base))
	}
	if len(summary.LuaVersions) > 0 {
		r.Println(output.FormatKeyValue("lua versions", strings.Join(summary.LuaVersions, ", ")))
	}
	if summary.LastUpdated != nil {
		updated := time.Unix(*summary.LastUpdated, 0).UTC().Format(time.RFC3339)
		r.Println(output.FormatKeyValue("last updated", updated))
	}
	if summary.Version != nil {
		r.Println(output.FormatKeyValue("generator version", *summary.Version))
	}
	r.Println()
	r.Table([]string{"Entry", "Count"}, statsRows(summary.Stats))
	return nil
}

func displayName(name string) string {
	if name == "" {
		return "(unnamed)"
	}
	return cases.Title(language.English).String(name)
}
