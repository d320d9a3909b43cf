// Package formatter renders directory reports as terse or verbose text.
package formatter

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/fatih/color"

	"github.com/irahardianto/lintreport/internal/engine/catalog"
	"github.com/irahardianto/lintreport/internal/engine/scanner"
)

// Catalog resolves codes to their catalog entries for verbose output.
type Catalog interface {
	Lookup(code string) (catalog.Entry, error)
}

// Options controls the shape of the report.
type Options struct {
	// Consolidate merges all directories into one unlabelled block.
	Consolidate bool
	// Verbose prints "<code> - <name> (<description>)" per code instead of a comma list.
	Verbose bool
	// Details adds the catalog details under each verbose line.
	Details bool
	// Color highlights directory labels.
	Color bool
}

// Formatter turns directory reports into the final report text.
type Formatter struct {
	opts  Options
	label *color.Color
}

// New creates a new Formatter.
func New(opts Options) *Formatter {
	label := color.New(color.FgCyan, color.Bold)
	if opts.Color {
		label.EnableColor()
	} else {
		label.DisableColor()
	}
	return &Formatter{opts: opts, label: label}
}

// Format renders reports in the order given. cat is only consulted in
// verbose mode; a code it does not know aborts rendering with a
// *catalog.LookupError.
func (f *Formatter) Format(reports []scanner.DirectoryReport, cat Catalog) (string, error) {
	var b strings.Builder

	if f.opts.Consolidate {
		lists := make([][]string, 0, len(reports))
		for _, r := range reports {
			lists = append(lists, r.Codes)
		}
		codes := scanner.MergeCodes(lists...)
		if err := f.writeBlock(&b, codes, cat); err != nil {
			return "", withDirectory(err, firstReporter(reports, err))
		}
		return b.String(), nil
	}

	for _, r := range reports {
		b.WriteString(f.label.Sprint(r.Directory))
		b.WriteString("\n")
		if err := f.writeBlock(&b, r.Codes, cat); err != nil {
			return "", withDirectory(err, r.Directory)
		}
		b.WriteString("\n")
	}
	return b.String(), nil
}

// writeBlock writes one terse line or a run of verbose lines for codes.
func (f *Formatter) writeBlock(b *strings.Builder, codes []string, cat Catalog) error {
	if !f.opts.Verbose {
		b.WriteString(strings.Join(codes, ","))
		b.WriteString("\n")
		return nil
	}

	for _, code := range codes {
		entry, err := cat.Lookup(code)
		if err != nil {
			return err
		}
		fmt.Fprintf(b, "%s - %s (%s)\n", code, entry.Name, entry.Description)
		if f.opts.Details && entry.Details != "" {
			fmt.Fprintf(b, "    %s\n", entry.Details)
		}
	}
	return nil
}

// withDirectory attaches dir to a lookup failure so the message names where the code came from.
func withDirectory(err error, dir string) error {
	var lookupErr *catalog.LookupError
	if errors.As(err, &lookupErr) && lookupErr.Directory == "" {
		return &catalog.LookupError{Code: lookupErr.Code, Directory: dir}
	}
	return err
}

// firstReporter returns the first directory whose report contains the failing code.
func firstReporter(reports []scanner.DirectoryReport, err error) string {
	var lookupErr *catalog.LookupError
	if !errors.As(err, &lookupErr) {
		return ""
	}
	for _, r := range reports {
		if slices.Contains(r.Codes, lookupErr.Code) {
			return r.Directory
		}
	}
	return ""
}
