package commands

import (
	"context"

	"github.com/irahardianto/lintreport/internal/engine/catalog"
	"github.com/irahardianto/lintreport/internal/engine/runner"
	"github.com/irahardianto/lintreport/internal/engine/scanner"
	"github.com/irahardianto/lintreport/internal/engine/tool"
)

// CatalogLoader runs the analyzer in listing mode and parses its message catalog.
type CatalogLoader func(ctx context.Context, r tool.Runner, name string, args []string) (*catalog.Catalog, error)

// ScanRunner abstracts the in-order scan of every configured directory.
type ScanRunner interface {
	ScanAll(ctx context.Context, s runner.DirectoryScanner, dirs []string) ([]scanner.DirectoryReport, error)
}
