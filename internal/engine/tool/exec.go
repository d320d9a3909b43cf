package tool

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"time"

	"github.com/irahardianto/lintreport/internal/platform/logger"
)

// ExecRunner implements Runner with os/exec on the local host.
type ExecRunner struct {
	// WorkDir is the working directory for the analyzer.
	// If empty, the current directory is used.
	WorkDir string
}

// NewExecRunner creates a new ExecRunner with the given working directory.
func NewExecRunner(workDir string) *ExecRunner {
	return &ExecRunner{WorkDir: workDir}
}

// Run executes name with args and returns its captured output.
// An *exec.ExitError is folded into Result.ExitCode; every other failure
// becomes an *InvocationError.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (*Result, error) {
	log := logger.FromContext(ctx)
	log.Debug("ExecRunner.Run started", "name", name, "args", args, "dir", r.WorkDir)
	start := time.Now()

	cmd := exec.CommandContext(ctx, name, args...) // #nosec G204 -- analyzer name and args come from the operator's own flags
	cmd.Dir = r.WorkDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, r.invocationError(name, args, ctxErr)
	}

	result := &Result{
		Stdout:   stdout.Bytes(),
		Stderr:   stderr.Bytes(),
		Duration: time.Since(start),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, r.invocationError(name, args, err)
		}
		result.ExitCode = exitErr.ExitCode()
	}

	log.Debug("ExecRunner.Run completed", "name", name, "exit_code", result.ExitCode, "duration", result.Duration)
	return result, nil
}

func (r *ExecRunner) invocationError(name string, args []string, err error) *InvocationError {
	return &InvocationError{
		Args: append([]string{name}, args...),
		Dir:  r.WorkDir,
		Err:  err,
	}
}
