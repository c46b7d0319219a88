package commands

import (
	"strings"

	"github.com/leapstack-labs/robloxstd/internal/cli/output"
	"github.com/leapstack-labs/robloxstd/pkg/apidump"
	"github.com/leapstack-labs/robloxstd/pkg/stdlib"
	"github.com/spf13/cobra"
)

// versionInfo is what a build of the generator stamps into and bundles with the
// descriptors it writes.
type versionInfo struct {
	Version           string   `json:"version"`
	LastSeleneVersion string   `json:"last_selene_version"`
	BaseLibrary       string   `json:"base_library"`
	BundledLibraries  []string `json:"bundled_libraries"`
	DefaultAPIDump    string   `json:"default_api_dump"`
}

// NewVersionCommand creates the version command.
func NewVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Display the generator version, the last_selene_version it records in generated
descriptors and the standard libraries bundled with this build.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := NewCommandContext(cmd).Renderer
			info := versionInfo{
				Version:           version,
				LastSeleneVersion: version,
				BaseLibrary:       stdlib.RobloxBaseName,
				BundledLibraries:  stdlib.BuiltinNames(),
				DefaultAPIDump:    apidump.DefaultURL,
			}

			if r.EffectiveMode() == output.ModeJSON {
				return r.JSON(info)
			}

			r.Println("generate-roblox-std v" + info.Version)
			r.Println(output.FormatKeyValue("last_selene_version", info.LastSeleneVersion))
			r.Println(output.FormatKeyValue("base library", info.BaseLibrary))
			r.Println(output.FormatKeyValue("bundled libraries", strings.Join(info.BundledLibraries, ", ")))
			r.Println(output.FormatKeyValue("default API dump", info.DefaultAPIDump))
			return nil
		},
	}
}
