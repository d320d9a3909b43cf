// Package tool runs the external analyzer as a subprocess and captures its output.
package tool

import (
	"context"
	"strings"
	"time"
)

// Result holds the outcome of one analyzer invocation.
// A non-zero ExitCode is a normal outcome: the analyzer reports findings through it.
type Result struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
	Duration time.Duration
}

// Runner abstracts process execution for testability.
// Production code uses ExecRunner (local) or pool.ContainerRunner (--image).
type Runner interface {
	// Run starts name with args and waits for it to exit.
	// The error is non-nil only when the process could not be run at all.
	Run(ctx context.Context, name string, args ...string) (*Result, error)
}

// InvocationError reports that the analyzer could not be started or awaited.
type InvocationError struct {
	Args []string
	Dir  string
	Err  error
}

func (e *InvocationError) Error() string {
	msg := "invoking " + strings.Join(e.Args, " ")
	if e.Dir != "" {
		msg += " (in " + e.Dir + ")"
	}
	return msg + ": " + e.Err.Error()
}

func (e *InvocationError) Unwrap() error {
	return e.Err
}
