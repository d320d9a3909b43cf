// Package runner scans the configured directories one after another.
package runner

import (
	"context"
	"time"

	"github.com/irahardianto/lintreport/internal/engine/scanner"
	"github.com/irahardianto/lintreport/internal/platform/logger"
)

// DirectoryScanner abstracts a single-directory scan for testability.
type DirectoryScanner interface {
	Scan(ctx context.Context, dir string) (*scanner.DirectoryReport, error)
}

// Engine runs scans strictly in sequence.
type Engine struct {
	// Progress is an optional progress tracker. If nil, no progress output is produced.
	Progress *Progress
}

// NewEngine creates a new scan engine.
func NewEngine() *Engine {
	return &Engine{}
}

// NewEngineWithProgress creates a new scan engine with progress tracking.
func NewEngineWithProgress(p *Progress) *Engine {
	return &Engine{Progress: p}
}

// ScanAll scans dirs in the order given and returns one report per directory
// in that same order. The first failure aborts the run; no partial result is
// returned.
func (e *Engine) ScanAll(ctx context.Context, s DirectoryScanner, dirs []string) ([]scanner.DirectoryReport, error) {
	log := logger.FromContext(ctx)
	log.Debug("Engine.ScanAll started", "directories", len(dirs))
	start := time.Now()

	reports := make([]scanner.DirectoryReport, 0, len(dirs))
	for _, dir := range dirs {
		if e.Progress != nil {
			e.Progress.OnStart(dir)
		}

		dirStart := time.Now()
		report, err := s.Scan(ctx, dir)
		if err != nil {
			if e.Progress != nil {
				e.Progress.OnFailure(dir, err)
			}
			return nil, err
		}

		if e.Progress != nil {
			e.Progress.OnComplete(dir, len(report.Codes), time.Since(dirStart))
		}
		reports = append(reports, *report)
	}

	if e.Progress != nil {
		e.Progress.Finish()
	}

	log.Debug("Engine.ScanAll completed", "directories", len(reports), "duration", time.Since(start))
	return reports, nil
}
