package pool

import (
	"github.com/docker/docker/api/types/mount"
)

// workspace is where the project root appears inside the container.
const workspace = "/workspace"

// projectMount bind-mounts the project root read-only; the analyzer never writes.
func projectMount(path string) mount.Mount {
	return mount.Mount{
		Type:     mount.TypeBind,
		Source:   path,
		Target:   workspace,
		ReadOnly: true,
	}
}

// tmpMount gives the analyzer a writable /tmp for its own caches.
func tmpMount() mount.Mount {
	return mount.Mount{
		Type:   mount.TypeTmpfs,
		Target: "/tmp",
	}
}
