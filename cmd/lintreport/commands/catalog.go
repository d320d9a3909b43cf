package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/irahardianto/lintreport/internal/engine/catalog"
	"github.com/irahardianto/lintreport/internal/engine/formatter"
	"github.com/irahardianto/lintreport/internal/engine/scanner"
	"github.com/spf13/cobra"
)

// errEmptyCatalog is returned when the analyzer's listing contains no entries.
var errEmptyCatalog = errors.New("message catalog is empty; is --tool a pylint-compatible analyzer?")

var catalogCmd = &cobra.Command{
	Use:   "catalog [codes...]",
	Short: "Print the analyzer's message catalog",
	Long: `Print every message the analyzer can emit as "<code> - <name> (<description>)".
With codes given, print only those; an unknown code is an error.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := resolveConfig(ctx, cmd)
		if err != nil {
			return err
		}
		// Nothing is scanned, so directory settings do not matter here.
		if err := cfg.ValidateTool(); err != nil {
			return err
		}

		toolRunner, closeRunner, err := newToolRunner(ctx, cfg.Image)
		if err != nil {
			return err
		}
		defer closeRunner()

		cat, err := catalog.Load(ctx, toolRunner, cfg.Tool, cfg.Args)
		if err != nil {
			return err
		}
		return printCatalog(cmd.OutOrStdout(), cat, args, cfg.Details)
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}

// printCatalog writes the verbose line for each requested code, or for the
// whole catalog when codes is empty.
func printCatalog(w io.Writer, cat *catalog.Catalog, codes []string, details bool) error {
	if cat.Len() == 0 {
		return errEmptyCatalog
	}

	if len(codes) == 0 {
		codes = cat.Codes()
	}
	normalized := make([]string, len(codes))
	for i, c := range codes {
		normalized[i] = strings.ToUpper(strings.TrimSpace(c))
	}

	f := formatter.New(formatter.Options{Consolidate: true, Verbose: true, Details: details})
	out, err := f.Format([]scanner.DirectoryReport{{Codes: normalized}}, cat)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, out)
	return err
}
