package app

import (
	"context"

	"github.com/hylla/listan/internal/domain"
)

// LoadInitial performs the first fetch. Same full-replace policy as Refresh.
func (c *Coordinator) LoadInitial(ctx context.Context) error {
	return c.Refresh(ctx)
}

// Refresh replaces both raw collections with a freshly fetched snapshot.
// Overlapping refreshes collapse into the most recent one: each call takes a
// monotonically increasing token, and a response whose token has been
// superseded is discarded so an out-of-order response can never overwrite a
// newer one. A failed fetch leaves the previous collections intact.
func (c *Coordinator) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.refreshToken++
	token := c.refreshToken
	c.mu.Unlock()

	if c.status != nil && !c.status.Connected() {
		c.log.Debug("refresh skipped", "reason", "offline")
		return &FetchFailure{Err: ErrOffline}
	}

	snap, err := c.backend.FetchSnapshot(ctx)
	if err != nil {
		c.log.Warn("refresh failed", "err", err)
		return &FetchFailure{Err: err}
	}

	projects, tasks := c.normalizeSnapshot(snap)

	c.mu.Lock()
	defer c.mu.Unlock()
	if token != c.refreshToken {
		c.log.Debug("refresh discarded", "token", token, "latest", c.refreshToken)
		return ErrStaleRefresh
	}
	c.projects = projects
	c.tasks = tasks
	c.prevTaskStatus = make(map[string]domain.TaskStatus)
	c.prevProjectStatus = make(map[string]domain.ProjectStatus)
	c.log.Info("collection replaced", "projects", len(projects), "tasks", len(tasks))
	return nil
}

// normalizeSnapshot maps raw records into canonical items. Records with
// out-of-enum values are quarantined: skipped with a warning, never admitted
// into the collection.
func (c *Coordinator) normalizeSnapshot(snap domain.Snapshot) ([]domain.Project, []domain.Task) {
	names := domain.ProjectNameIndex(snap.Projects)

	projects := make([]domain.Project, 0, len(snap.Projects))
	for _, rec := range snap.Projects {
		project, err := domain.NormalizeProject(rec)
		if err != nil {
			c.log.Warn("record quarantined", "err", err)
			continue
		}
		projects = append(projects, project)
	}

	tasks := make([]domain.Task, 0, len(snap.Tasks))
	for _, rec := range snap.Tasks {
		task, err := domain.NormalizeTask(rec, names)
		if err != nil {
			c.log.Warn("record quarantined", "err", err)
			continue
		}
		tasks = append(tasks, task)
	}
	return projects, tasks
}
