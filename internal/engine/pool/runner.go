package pool

import (
	"context"
	"errors"
	"fmt"

	"github.com/irahardianto/lintreport/internal/engine/tool"
)

// ErrNotRunnable is wrapped when the container's shell-convention exit status
// says the analyzer binary is missing (127) or not executable (126).
var ErrNotRunnable = errors.New("analyzer not runnable in container")

// ContainerRunner implements tool.Runner by exec'ing into a single container
// that is started on first use and removed by Close.
type ContainerRunner struct {
	runtime  ContainerRuntime
	executor *Executor
	image    string
	project  string
	session  *Session
}

// NewContainerRunner creates a runner for img with projectPath mounted at /workspace.
func NewContainerRunner(runtime ContainerRuntime, img, projectPath string) *ContainerRunner {
	return &ContainerRunner{
		runtime:  runtime,
		executor: NewExecutor(runtime),
		image:    img,
		project:  projectPath,
	}
}

// Run implements tool.Runner. Any Docker failure, or an exit status of 126
// or 127, is reported as a *tool.InvocationError.
func (r *ContainerRunner) Run(ctx context.Context, name string, args ...string) (*tool.Result, error) {
	argv := append([]string{name}, args...)

	if r.session == nil {
		s, err := StartSession(ctx, r.runtime, r.image, r.project)
		if err != nil {
			return nil, r.invocationError(argv, err)
		}
		r.session = s
	}

	res, err := r.executor.Run(ctx, r.session.ID, argv)
	if err != nil {
		return nil, r.invocationError(argv, err)
	}

	if res.ExitCode == 126 || res.ExitCode == 127 {
		return nil, r.invocationError(argv, fmt.Errorf("%w: exit status %d: %s", ErrNotRunnable, res.ExitCode, res.Stderr))
	}
	return res, nil
}

// Close removes the container if one was started.
func (r *ContainerRunner) Close(ctx context.Context) error {
	if r.session == nil {
		return nil
	}
	err := r.session.Close(ctx)
	r.session = nil
	return err
}

func (r *ContainerRunner) invocationError(argv []string, err error) *tool.InvocationError {
	return &tool.InvocationError{Args: argv, Dir: r.image + ":" + workspace, Err: err}
}
