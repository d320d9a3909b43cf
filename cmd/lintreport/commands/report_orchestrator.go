package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/irahardianto/lintreport/internal/engine/config"
	"github.com/irahardianto/lintreport/internal/engine/formatter"
	"github.com/irahardianto/lintreport/internal/engine/scanner"
	"github.com/irahardianto/lintreport/internal/engine/tool"
	"github.com/irahardianto/lintreport/internal/platform/logger"
)

// Report runs one lint report with injected dependencies.
// This struct enables testing the orchestration logic without a real analyzer.
type Report struct {
	// Tool runs the analyzer, on the host or inside a container.
	Tool tool.Runner

	// LoadCatalog obtains the analyzer's message catalog.
	LoadCatalog CatalogLoader

	// Scans runs the per-directory scans in order.
	Scans ScanRunner

	// Stdout receives the report text.
	Stdout io.Writer
}

// Execute loads the catalog, scans every directory, then formats and prints
// the report. Nothing is printed unless every step succeeds.
func (r *Report) Execute(ctx context.Context, cfg *config.Config, color bool) error {
	log := logger.FromContext(ctx)
	log.Debug("report started", "directories", cfg.Directories, "tool", cfg.Tool, "image", cfg.Image)

	// 1. The catalog is loaded up front so a missing analyzer fails before any scan.
	cat, err := r.LoadCatalog(ctx, r.Tool, cfg.Tool, cfg.Args)
	if err != nil {
		return err
	}

	// 2. Scan each directory in configuration order.
	s := scanner.New(r.Tool, cfg.Tool, cfg.Args)
	reports, err := r.Scans.ScanAll(ctx, s, cfg.Directories)
	if err != nil {
		return err
	}

	// 3. Render.
	f := formatter.New(formatter.Options{
		Consolidate: cfg.Consolidate,
		Verbose:     cfg.Verbose,
		Details:     cfg.Details,
		Color:       color,
	})
	out, err := f.Format(reports, cat)
	if err != nil {
		return err
	}

	// 4. Print.
	if _, err := fmt.Fprint(r.Stdout, out); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	log.Debug("report completed", "directories", len(reports))
	return nil
}
