package pool

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/pkg/stdcopy"

	"github.com/irahardianto/lintreport/internal/engine/tool"
	"github.com/irahardianto/lintreport/internal/platform/logger"
)

// Executor runs commands inside a running container.
type Executor struct {
	runtime ContainerRuntime
}

// NewExecutor creates a new Executor.
func NewExecutor(runtime ContainerRuntime) *Executor {
	return &Executor{runtime: runtime}
}

// Run execs argv in containerID without a shell and waits for it to exit.
// There is no timeout; only ctx cancellation stops the wait.
func (e *Executor) Run(ctx context.Context, containerID string, argv []string) (*tool.Result, error) {
	log := logger.FromContext(ctx)
	log.Debug("Executor.Run started", "container_id", containerID, "argv", argv)
	start := time.Now()

	// Tty must be false for stdcopy to separate stdout and stderr.
	execConfig := container.ExecOptions{
		Cmd:          argv,
		AttachStdout: true,
		AttachStderr: true,
		Tty:          false,
	}

	execIDResp, err := e.runtime.ContainerExecCreate(ctx, containerID, execConfig)
	if err != nil {
		return nil, fmt.Errorf("creating exec: %w", err)
	}
	execID := execIDResp.ID

	resp, err := e.runtime.ContainerExecAttach(ctx, execID, container.ExecAttachOptions{Tty: false})
	if err != nil {
		return nil, fmt.Errorf("attaching to exec: %w", err)
	}
	defer resp.Close()

	var stdoutBuf, stderrBuf bytes.Buffer
	outputDone := make(chan error, 1)

	go func() {
		_, err := stdcopy.StdCopy(&stdoutBuf, &stderrBuf, resp.Reader)
		outputDone <- err
	}()

	select {
	case err := <-outputDone:
		if err != nil {
			return nil, fmt.Errorf("reading output: %w", err)
		}
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	inspect, err := e.runtime.ContainerExecInspect(ctx, execID)
	if err != nil {
		return nil, fmt.Errorf("inspecting exec: %w", err)
	}

	result := &tool.Result{
		Stdout:   stdoutBuf.Bytes(),
		Stderr:   stderrBuf.Bytes(),
		ExitCode: inspect.ExitCode,
		Duration: time.Since(start),
	}
	log.Debug("Executor.Run completed", "container_id", containerID, "exit_code", result.ExitCode, "duration", result.Duration)
	return result, nil
}
