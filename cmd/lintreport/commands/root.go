// Package commands implements the CLI commands for lintreport.
package commands

import (
	"context"

	"github.com/irahardianto/lintreport/internal/engine/config"
	"github.com/irahardianto/lintreport/internal/platform/logger"
	"github.com/spf13/cobra"
)

// Global flag values accessible to all commands.
var (
	flagConfig   string
	flagTool     string
	flagToolArgs []string
	flagImage    string
	flagDetails  bool
	flagNoColor  bool
	flagDebug    bool
	flagLogJSON  bool
)

// Report-only flag values.
var (
	flagVerbose     bool
	flagDirectories []string
	flagConsolidate bool
	flagQuiet       bool
)

// rootCmd is the base command for the lintreport CLI.
var rootCmd = &cobra.Command{
	Use:   "lintreport",
	Short: "Summarize which pylint messages a code base triggers",
	Long: `lintreport runs pylint over each configured directory, collects the
message codes it reports and prints them either as a comma-separated list or,
with --verbose, one line per code with its symbolic name and description.

Results are grouped per directory unless --consolidate merges them into a
single sorted list. The report goes to stdout; progress and logs go to stderr.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		l := logger.New(cmd.ErrOrStderr(), flagDebug, flagLogJSON)
		ctx := logger.WithContext(cmd.Context(), l)
		cmd.SetContext(ctx)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runReport(cmd)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Read settings from a YAML file; explicitly set flags take precedence")
	pf.StringVar(&flagTool, "tool", config.DefaultTool, "Analyzer executable to invoke")
	pf.StringArrayVar(&flagToolArgs, "tool-arg", nil, "Extra argument passed to the analyzer before the target (repeatable)")
	pf.StringVar(&flagImage, "image", "", "Run the analyzer inside a container from this image")
	pf.BoolVar(&flagDetails, "details", false, "With verbose output, also print each message's details")
	pf.BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	pf.BoolVar(&flagDebug, "debug", false, "Enable debug logging on stderr")
	pf.BoolVar(&flagLogJSON, "log-json", false, "Write logs as JSON")

	f := rootCmd.Flags()
	f.BoolVar(&flagVerbose, "verbose", false, "Print each code with its name and description")
	f.StringSliceVar(&flagDirectories, "directories", config.DefaultDirectories, "Comma-separated directories to scan, in order")
	f.BoolVar(&flagConsolidate, "consolidate", false, "Merge all directories into a single list")
	f.BoolVar(&flagQuiet, "quiet", false, "Suppress progress output on stderr")
}

// Execute runs the root command with ctx, which carries process signal cancellation.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
