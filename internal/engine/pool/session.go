package pool

import (
	"context"
	"fmt"
	"io"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/api/types/mount"

	"github.com/irahardianto/lintreport/internal/platform/logger"
)

const (
	labelManaged = "lintreport.managed"
	labelImage   = "lintreport.image"
	labelProject = "lintreport.project"
)

// Session is one running container that analyzer invocations are exec'd into.
type Session struct {
	runtime ContainerRuntime
	ID      string
}

// StartSession pulls img, then creates and starts an idle container with
// projectPath mounted read-only at /workspace.
func StartSession(ctx context.Context, runtime ContainerRuntime, img, projectPath string) (*Session, error) {
	log := logger.FromContext(ctx)
	log.Debug("StartSession started", "image", img, "project", projectPath)

	if err := pullImage(ctx, runtime, img); err != nil {
		return nil, err
	}

	config := &container.Config{
		Image:      img,
		Entrypoint: []string{"sleep", "infinity"},
		Labels: map[string]string{
			labelManaged: "true",
			labelImage:   img,
			labelProject: projectPath,
		},
		WorkingDir: workspace,
	}
	hostConfig := &container.HostConfig{
		Mounts: []mount.Mount{projectMount(projectPath), tmpMount()},
	}

	resp, err := runtime.ContainerCreate(ctx, config, hostConfig, nil, nil, "")
	if err != nil {
		return nil, fmt.Errorf("creating container: %w", err)
	}

	if err := runtime.ContainerStart(ctx, resp.ID, container.StartOptions{}); err != nil {
		_ = runtime.ContainerRemove(ctx, resp.ID, container.RemoveOptions{Force: true})
		return nil, fmt.Errorf("starting container: %w", err)
	}

	log.Debug("container started", "container_id", resp.ID, "image", img)
	return &Session{runtime: runtime, ID: resp.ID}, nil
}

// Close force-removes the container.
func (s *Session) Close(ctx context.Context) error {
	if err := s.runtime.ContainerRemove(ctx, s.ID, container.RemoveOptions{Force: true}); err != nil {
		return fmt.Errorf("removing container %s: %w", s.ID, err)
	}
	logger.FromContext(ctx).Debug("container removed", "container_id", s.ID)
	return nil
}

// pullImage pulls img and drains the progress stream, which is where Docker
// reports pull failures.
func pullImage(ctx context.Context, runtime ContainerRuntime, img string) error {
	reader, err := runtime.ImagePull(ctx, img, image.PullOptions{})
	if err != nil {
		return fmt.Errorf("pulling image %q: %w", img, err)
	}
	if reader == nil {
		return nil
	}
	defer reader.Close()

	if _, err := io.Copy(io.Discard, reader); err != nil {
		return fmt.Errorf("reading image pull response: %w", err)
	}
	return nil
}
