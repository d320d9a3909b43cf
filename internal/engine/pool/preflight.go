package pool

import (
	"context"
	"fmt"
	"strings"
)

// PreflightError wraps a Docker connectivity error with an actionable hint.
type PreflightError struct {
	Hint  string
	Cause error
}

func (e *PreflightError) Error() string {
	return fmt.Sprintf("--image needs Docker: %s", e.Hint)
}

func (e *PreflightError) Unwrap() error {
	return e.Cause
}

// CheckDocker verifies the Docker daemon is reachable before any container is created.
func CheckDocker(ctx context.Context, runtime ContainerRuntime) error {
	if err := runtime.Ping(ctx); err != nil {
		return classifyDockerError(err)
	}
	return nil
}

// classifyDockerError inspects the error message to produce a user hint.
func classifyDockerError(err error) *PreflightError {
	msg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(msg, "permission denied"):
		return &PreflightError{
			Hint:  "permission denied on the Docker socket; add yourself to the docker group (sudo usermod -aG docker $USER) and re-login",
			Cause: err,
		}
	case strings.Contains(msg, "connection refused"), strings.Contains(msg, "is the docker daemon running"):
		return &PreflightError{
			Hint:  "the Docker daemon is not running; start it (sudo systemctl start docker) or drop --image to run the analyzer locally",
			Cause: err,
		}
	default:
		return &PreflightError{
			Hint:  "Docker is not reachable; install it from https://docker.com or drop --image to run the analyzer locally",
			Cause: err,
		}
	}
}
