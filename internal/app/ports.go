package app

import (
	"context"

	"github.com/hylla/listan/internal/domain"
)

// Backend is the mocked request layer behind the coordinator. Every call
// suspends for a simulated latency before resolving.
type Backend interface {
	FetchSnapshot(ctx context.Context) (domain.Snapshot, error)
	SaveTask(ctx context.Context, task domain.Task) error
	DeleteTask(ctx context.Context, id string) error
	SaveProject(ctx context.Context, project domain.Project) error
	DeleteProject(ctx context.Context, id string) error
}

// NetworkStatus exposes the connected flag the refresh shell checks before
// issuing a fetch.
type NetworkStatus interface {
	Connected() bool
}
