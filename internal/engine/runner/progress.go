package runner

import (
	"fmt"
	"io"
	"time"
)

// Progress renders scan status to an io.Writer (typically stderr).
// Output is suppressed with --quiet or when stderr is not a terminal.
type Progress struct {
	w          io.Writer
	suppressed bool
	total      int
	scanned    int
	codes      int
	elapsed    time.Duration
}

// NewProgress creates a new progress tracker writing to w.
// If suppressed is true, no output is produced.
func NewProgress(w io.Writer, suppressed bool, totalDirs int) *Progress {
	return &Progress{
		w:          w,
		suppressed: suppressed,
		total:      totalDirs,
	}
}

// OnStart is called before a directory is scanned.
func (p *Progress) OnStart(dir string) {
	if p.suppressed {
		return
	}
	fmt.Fprintf(p.w, "⏳ Scanning %s (%d/%d)\n", dir, p.scanned+1, p.total)
}

// OnComplete is called after a directory scan succeeds.
func (p *Progress) OnComplete(dir string, codes int, dur time.Duration) {
	p.scanned++
	p.codes += codes
	p.elapsed += dur

	if p.suppressed {
		return
	}
	fmt.Fprintf(p.w, "✅ %s  %d code(s)  %s\n", dir, codes, formatDuration(dur))
}

// OnFailure is called when a directory scan cannot be run.
func (p *Progress) OnFailure(dir string, err error) {
	if p.suppressed {
		return
	}
	fmt.Fprintf(p.w, "💥 %s  %v\n", dir, err)
}

// Finish prints a summary line after all directories are scanned.
func (p *Progress) Finish() {
	if p.suppressed {
		return
	}
	fmt.Fprintf(p.w, "Scanned %d director(ies), %d code(s) in %s\n", p.scanned, p.codes, formatDuration(p.elapsed))
}

// formatDuration formats a duration for display.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}
