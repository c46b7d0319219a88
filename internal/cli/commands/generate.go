package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"github.com/leapstack-labs/robloxstd/internal/cli/output"
	"github.com/leapstack-labs/robloxstd/internal/roblox"
	"github.com/leapstack-labs/robloxstd/pkg/apidump"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"
)

// errWatchNeedsFile is returned when --watch is combined with a remote dump.
var errWatchNeedsFile = errors.New("--watch requires --api-dump to name a local file")

// generateSummary is the JSON shape of a generate result.
type generateSummary struct {
	Output  string       `json:"output"`
	Source  string       `json:"source"`
	Version string       `json:"version"`
	Stats   roblox.Stats `json:"stats"`
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the Roblox standard library",
		Long: `Load the Roblox API dump and write the selene standard library descriptor.

The dump is fetched from the Roblox-Client-Tracker repository unless --api-dump
names another URL or a local file. The descriptor is written to roblox.yml by
default; use --output - to write it to stdout.`,
		Example: `  # Generate roblox.yml from the upstream dump
  generate-roblox-std generate

  # Generate from a local dump and print the YAML
  generate-roblox-std generate --api-dump API-Dump.json --output -

  # Regenerate whenever the local dump changes
  generate-roblox-std generate --api-dump API-Dump.json --watch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return RunGenerate(cmd, version)
		},
	}
	AddGenerateFlags(cmd.Flags())
	return cmd
}

// AddGenerateFlags registers the flags local to generation. The root command shares
// them because generating is its default action.
func AddGenerateFlags(flags *pflag.FlagSet) {
	flags.Bool("watch", false, "Regenerate when the local API dump changes")
}

// RunGenerate generates the descriptor once, or on every dump change with --watch.
func RunGenerate(cmd *cobra.Command, version string) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg

	src := apidump.NewSource(cfg.APIDump, cfg.Timeout)
	gen := roblox.New(
		roblox.WithSource(src),
		roblox.WithLogger(cmdCtx.Logger),
		roblox.WithStrictMembers(cfg.Strict),
		roblox.WithVersion(version),
	)

	watch, _ := cmd.Flags().GetBool("watch")
	if !watch {
		return generateOnce(cmd.Context(), cmdCtx, gen)
	}

	fileSrc, ok := src.(*apidump.FileSource)
	if !ok {
		return errWatchNeedsFile
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	if err := generateOnce(ctx, cmdCtx, gen); err != nil {
		cmdCtx.Renderer.Warning(err.Error())
	}

	changes := make(chan struct{}, 1)
	eg, egctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return watchFile(egctx, cmdCtx.Logger, fileSrc.Path, changes)
	})
	eg.Go(func() error {
		for {
			select {
			case <-egctx.Done():
				return nil
			case <-changes:
				cmdCtx.Logger.Debug("API dump changed, regenerating", "path", fileSrc.Path)
				if err := generateOnce(egctx, cmdCtx, gen); err != nil {
					cmdCtx.Renderer.Warning(err.Error())
				}
			}
		}
	})
	return eg.Wait()
}

func generateOnce(ctx context.Context, cmdCtx *CommandContext, gen *roblox.Generator) error {
	cfg := cmdCtx.Cfg
	r := cmdCtx.Renderer

	data, std, err := gen.Generate(ctx)
	if err != nil {
		return err
	}

	if cfg.WritesToStdout() {
		_, err := r.Writer().Write(data)
		return err
	}

	if err := os.WriteFile(cfg.Output, data, 0o644); err != nil { //nolint:gosec // descriptor is meant to be shared
		return fmt.Errorf("failed to write %s: %w", cfg.Output, err)
	}

	summary := generateSummary{
		Output:  cfg.Output,
		Source:  sourceName(cfg.APIDump),
		Version: *std.LastSeleneVersion,
		Stats:   roblox.StatsOf(std),
	}

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(summary)
	}

	r.Success("Wrote " + summary.Output)
	r.StatusLine("source", summary.Source, "")
	r.Table([]string{"Entry", "Count"}, statsRows(summary.Stats))
	return nil
}

func sourceName(location string) string {
	if location == "" {
		return apidump.DefaultURL
	}
	return location
}

func statsRows(s roblox.Stats) [][]string {
	return [][]string{
		{"globals", strconv.Itoa(s.Globals)},
		{"structs", strconv.Itoa(s.Structs)},
		{"struct members", strconv.Itoa(s.StructMembers)},
		{"classes", strconv.Itoa(s.Classes)},
		{"deprecated", strconv.Itoa(s.Deprecated)},
	}
}
