// Package scanner runs the analyzer against a directory and harvests the
// diagnostic codes it reports.
package scanner

import (
	"context"
	"fmt"

	"github.com/irahardianto/lintreport/internal/engine/tool"
	"github.com/irahardianto/lintreport/internal/platform/logger"
)

// DirectoryReport holds the distinct codes observed for one target directory.
type DirectoryReport struct {
	Directory string
	Codes     []string
}

// Scanner invokes the analyzer once per directory.
type Scanner struct {
	runner tool.Runner
	name   string
	args   []string
}

// New creates a Scanner that runs `name [args...] <dir>` through runner.
func New(runner tool.Runner, name string, args []string) *Scanner {
	return &Scanner{runner: runner, name: name, args: args}
}

// Scan runs the analyzer against dir and extracts the reported codes from
// its stdout. The directory is not checked first: whatever the analyzer
// prints about it is harvested like any other output.
func (s *Scanner) Scan(ctx context.Context, dir string) (*DirectoryReport, error) {
	log := logger.FromContext(ctx)

	argv := append(append([]string{}, s.args...), dir)
	res, err := s.runner.Run(ctx, s.name, argv...)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}

	status := Status(res.ExitCode)
	if status.Has(StatusUsage) {
		log.Warn("analyzer reported a usage error", "directory", dir, "exit_code", res.ExitCode, "stderr", string(res.Stderr))
	}

	report := &DirectoryReport{
		Directory: dir,
		Codes:     ExtractCodes(string(res.Stdout)),
	}
	log.Debug("directory scanned", "directory", dir, "status", status.String(), "codes", len(report.Codes), "duration", res.Duration)
	return report, nil
}
