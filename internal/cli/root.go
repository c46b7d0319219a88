// Package cli provides the command-line interface for generate-roblox-std.
package cli

import (
	"fmt"
	"os"

	"github.com/leapstack-labs/robloxstd/internal/cli/commands"
	"github.com/leapstack-labs/robloxstd/internal/cli/config"
	"github.com/leapstack-labs/robloxstd/internal/cli/output"
	"github.com/spf13/cobra"
)

var cfgFile string

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "generate-roblox-std",
		Short: "Generate the selene standard library for Roblox",
		Long: `generate-roblox-std reads the Roblox API dump and writes a selene standard
library descriptor (roblox.yml) describing every service, class, enum and
constructor available to Roblox scripts.

Run without a subcommand to generate.`,
		Version: Version,
		Args:    cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			loaded, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			logger := config.NewLogger(cmd.ErrOrStderr(), loaded.Verbose)
			ctx := config.WithConfig(cmd.Context(), loaded)
			ctx = config.WithLogger(ctx, logger)
			cmd.SetContext(ctx)

			if loaded.File != "" {
				logger.Debug("using config file", "path", loaded.File)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return commands.RunGenerate(cmd, Version)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Set version template
	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
Roblox standard library generator for selene
`)

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./robloxstd.yaml)")
	rootCmd.PersistentFlags().StringP("output", "o", "", `Descriptor path, "-" for stdout (default: roblox.yml)`)
	rootCmd.PersistentFlags().String("api-dump", "", "API dump URL or file (default: upstream Roblox-Client-Tracker dump)")
	rootCmd.PersistentFlags().Duration("timeout", 0, "Timeout for fetching the API dump (default: 30s)")
	rootCmd.PersistentFlags().Bool("strict", false, "Fail on unknown API dump member types")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringP("format", "f", "", "Summary format (auto|text|markdown|json)")

	commands.AddGenerateFlags(rootCmd.Flags())

	// Register completion for format flag
	_ = rootCmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return output.ValidModes, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("api-dump", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"json"}, cobra.ShellCompDirectiveFilterFileExt
	})

	// Add subcommands
	rootCmd.AddCommand(commands.NewGenerateCommand(Version))
	rootCmd.AddCommand(commands.NewInspectCommand())
	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(NewCompletionCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// NewCompletionCommand creates the completion command.
func NewCompletionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for generate-roblox-std.

To load completions:

Bash:
  $ source <(generate-roblox-std completion bash)

Zsh:
  $ generate-roblox-std completion zsh > "${fpath[1]}/_generate-roblox-std"

Fish:
  $ generate-roblox-std completion fish | source

PowerShell:
  PS> generate-roblox-std completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
	return cmd
}
