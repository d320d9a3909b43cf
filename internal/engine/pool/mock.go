package pool

import (
	"context"
	"io"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/api/types/network"
	v1 "github.com/opencontainers/image-spec/specs-go/v1"
)

// MockRuntime is a test double for ContainerRuntime.
// It records the configuration it was handed so tests can assert on it.
type MockRuntime struct {
	PingErr         error
	ImagePullErr    error
	ImagePullReader io.ReadCloser
	CreateResp      container.CreateResponse
	CreateErr       error
	StartErr        error
	RemoveErr       error
	ExecCreateResp  container.ExecCreateResponse
	ExecCreateErr   error
	ExecAttachResp  types.HijackedResponse
	ExecAttachErr   error
	ExecInspectResp container.ExecInspect
	ExecInspectErr  error

	Pulled      []string
	Created     *container.Config
	HostConfig  *container.HostConfig
	Removed     []string
	ExecOptions []container.ExecOptions
}

func (m *MockRuntime) Ping(_ context.Context) error {
	return m.PingErr
}

func (m *MockRuntime) ImagePull(_ context.Context, ref string, _ image.PullOptions) (io.ReadCloser, error) {
	m.Pulled = append(m.Pulled, ref)
	return m.ImagePullReader, m.ImagePullErr
}

func (m *MockRuntime) ContainerCreate(_ context.Context, config *container.Config, hostConfig *container.HostConfig, _ *network.NetworkingConfig, _ *v1.Platform, _ string) (container.CreateResponse, error) {
	m.Created = config
	m.HostConfig = hostConfig
	return m.CreateResp, m.CreateErr
}

func (m *MockRuntime) ContainerStart(_ context.Context, _ string, _ container.StartOptions) error {
	return m.StartErr
}

func (m *MockRuntime) ContainerRemove(_ context.Context, containerID string, _ container.RemoveOptions) error {
	m.Removed = append(m.Removed, containerID)
	return m.RemoveErr
}

func (m *MockRuntime) ContainerExecCreate(_ context.Context, _ string, config container.ExecOptions) (container.ExecCreateResponse, error) {
	m.ExecOptions = append(m.ExecOptions, config)
	return m.ExecCreateResp, m.ExecCreateErr
}

func (m *MockRuntime) ContainerExecAttach(_ context.Context, _ string, _ container.ExecAttachOptions) (types.HijackedResponse, error) {
	return m.ExecAttachResp, m.ExecAttachErr
}

func (m *MockRuntime) ContainerExecInspect(_ context.Context, _ string) (container.ExecInspect, error) {
	return m.ExecInspectResp, m.ExecInspectErr
}
