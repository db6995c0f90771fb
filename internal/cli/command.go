package cli

import (
	"fmt"
	"slices"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/idelchi/folderstat/internal/integration"
	"github.com/idelchi/folderstat/internal/log"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// Output formats.
const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputTSV   = "tsv"
)

// allowedOutputs lists the values accepted by --output.
//
//nolint:gochecknoglobals // Config constant
var allowedOutputs = []string{OutputTable, OutputJSON, OutputTSV}

// globals holds the persistent flags shared by every subcommand.
type globals struct {
	verbosity   int
	logFormat   string
	output      string
	debug       bool
	follow      bool
	integration bool
}

// addGlobalFlags registers the persistent flags on fs.
func addGlobalFlags(fs *pflag.FlagSet, g *globals) {
	fs.IntVarP(&g.verbosity, "verbosity", "v", log.VerbosityWarn,
		"Verbosity level (0=error, 1=warn, 2=info, 3=debug, 4=trace)")
	fs.StringVar(&g.logFormat, "log-format", "text", "Log format: text or json")
	fs.StringVarP(&g.output, "output", "o", OutputTable, "Output format: table, json or tsv")
	fs.BoolVar(&g.debug, "debug", false, "Enable debug output (same as -v 3)")
	fs.BoolVarP(&g.follow, "follow", "L", false, "Follow symbolic links while walking")
}

// validate checks the global flags and applies them to the logger.
func (g *globals) validate(cmd *cobra.Command) error {
	if !slices.Contains(allowedOutputs, g.output) {
		return fmt.Errorf("invalid output format %q: must be one of %v", g.output, allowedOutputs)
	}

	if g.logFormat != "text" && g.logFormat != "json" {
		return fmt.Errorf("invalid log format %q: must be text or json", g.logFormat)
	}

	if g.debug && g.verbosity < log.VerbosityDebug {
		g.verbosity = log.VerbosityDebug
	}

	log.Init(g.verbosity, g.logFormat, cmd.ErrOrStderr())

	return nil
}

// Command builds the root command with all subcommands attached.
func (c CLI) Command() *cobra.Command {
	g := &globals{}

	root := &cobra.Command{
		Use:   "folderstat",
		Short: "Inspect, compare and tidy directories",
		Long: heredoc.Doc(`
			folderstat lists directory contents with size and date metadata,
			compares two directories by name, finds large old files, and
			includes small helpers to generate dummy files and clean CSV files.

			The '--init' flag prints a zsh integration script that binds an
			fzf picker over 'folderstat list'.
		`),
		Version:       c.version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return g.validate(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !g.integration {
				return cmd.Help()
			}

			rendered, err := integration.Render()
			if err != nil {
				return fmt.Errorf("rendering integration script: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)

			return err
		},
	}

	addGlobalFlags(root.PersistentFlags(), g)
	root.Flags().BoolVarP(&g.integration, "init", "i", false, "Output init script for shell usage")

	root.AddCommand(
		listCommand(g),
		compareCommand(g),
		oldCommand(g),
		createCommand(g),
		cleanCommand(g),
	)

	return root
}

// Execute runs the CLI with the process arguments.
func (c CLI) Execute() error {
	return c.Command().Execute()
}
