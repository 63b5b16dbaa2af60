// Package app owns the raw collections and every write path into them. All
// mutations are optimistic: the local change lands first, the backing request
// follows, and a failed request rolls the collection back to its pre-mutation
// snapshot. Reads hand out copies, so the engine's derived views stay
// reproducible from (collection, filter) at any point in time.
package app

import (
	"context"
	"io"
	"slices"
	"sync"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/hylla/listan/internal/domain"
	"github.com/hylla/listan/internal/haptics"
)

// IDGenerator returns unique identifiers for new items.
type IDGenerator func() string

// Clock returns the current time.
type Clock func() time.Time

// Options holds optional coordinator collaborators.
type Options struct {
	Haptics haptics.Sink
	Logger  *charmlog.Logger
}

// Coordinator applies optimistic mutations to the raw task and project
// collections and reconciles them against the mocked backend. Mutations
// against the same item id are serialized through a per-item gate so racing
// calls cannot lose updates.
type Coordinator struct {
	backend Backend
	status  NetworkStatus
	idGen   IDGenerator
	clock   Clock
	sink    haptics.Sink
	log     *charmlog.Logger

	mu       sync.Mutex
	tasks    []domain.Task
	projects []domain.Project
	// prevTaskStatus remembers the pre-completion status per task so a
	// toggle out of completed restores it.
	prevTaskStatus    map[string]domain.TaskStatus
	prevProjectStatus map[string]domain.ProjectStatus
	refreshToken      uint64

	gatesMu sync.Mutex
	gates   map[string]*sync.Mutex
}

// New constructs a coordinator.
func New(backend Backend, status NetworkStatus, idGen IDGenerator, clock Clock, opts Options) *Coordinator {
	if idGen == nil {
		idGen = func() string { return "" }
	}
	if clock == nil {
		clock = time.Now
	}
	if opts.Haptics == nil {
		opts.Haptics = haptics.Noop()
	}
	if opts.Logger == nil {
		opts.Logger = charmlog.New(io.Discard)
	}
	return &Coordinator{
		backend:           backend,
		status:            status,
		idGen:             idGen,
		clock:             clock,
		sink:              opts.Haptics,
		log:               opts.Logger,
		prevTaskStatus:    make(map[string]domain.TaskStatus),
		prevProjectStatus: make(map[string]domain.ProjectStatus),
		gates:             make(map[string]*sync.Mutex),
	}
}

// Tasks returns a copy of the raw task collection.
func (c *Coordinator) Tasks() []domain.Task {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.tasks)
}

// Projects returns a copy of the raw project collection.
func (c *Coordinator) Projects() []domain.Project {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.projects)
}

// Task looks up one task by id.
func (c *Coordinator) Task(id string) (domain.Task, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if idx := c.taskIndex(id); idx >= 0 {
		return c.tasks[idx], true
	}
	return domain.Task{}, false
}

// Project looks up one project by id.
func (c *Coordinator) Project(id string) (domain.Project, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if idx := c.projectIndex(id); idx >= 0 {
		return c.projects[idx], true
	}
	return domain.Project{}, false
}

// lockItem serializes mutations per item id. The returned func releases the
// gate.
func (c *Coordinator) lockItem(id string) func() {
	c.gatesMu.Lock()
	gate, ok := c.gates[id]
	if !ok {
		gate = &sync.Mutex{}
		c.gates[id] = gate
	}
	c.gatesMu.Unlock()
	gate.Lock()
	return gate.Unlock
}

// ToggleTaskStatus flips the task between completed and its previous
// non-completed status, locally first, then confirms against the backend.
// On failure the task reverts to its exact pre-toggle snapshot.
func (c *Coordinator) ToggleTaskStatus(ctx context.Context, id string) (domain.Task, error) {
	defer c.lockItem(id)()

	c.mu.Lock()
	idx := c.taskIndex(id)
	if idx < 0 {
		c.mu.Unlock()
		return domain.Task{}, ErrNotFound
	}
	before := c.tasks[idx]
	target := domain.TaskStatusCompleted
	if before.Status == domain.TaskStatusCompleted {
		target = c.prevTaskStatus[id]
		if target == "" || target == domain.TaskStatusCompleted {
			target = domain.TaskStatusTodo
		}
	} else {
		c.prevTaskStatus[id] = before.Status
	}
	updated := before
	if err := updated.SetStatus(target, c.clock()); err != nil {
		c.mu.Unlock()
		return domain.Task{}, err
	}
	c.tasks[idx] = updated
	c.mu.Unlock()

	if err := c.backend.SaveTask(ctx, updated); err != nil {
		c.restoreTask(before)
		c.sink.Emit(haptics.KindError)
		c.log.Warn("toggle rolled back", "task", id, "err", err)
		return domain.Task{}, &MutationFailure{Op: "toggle status", ItemID: id, Err: err}
	}
	c.sink.Emit(haptics.KindSuccess)
	return updated, nil
}

// DeleteTask removes the task immediately and confirms against the backend.
// On failure the task reappears at its original index, not at the end.
func (c *Coordinator) DeleteTask(ctx context.Context, id string) error {
	defer c.lockItem(id)()

	c.mu.Lock()
	idx := c.taskIndex(id)
	if idx < 0 {
		c.mu.Unlock()
		return ErrNotFound
	}
	removed := c.tasks[idx]
	c.tasks = slices.Delete(c.tasks, idx, idx+1)
	c.mu.Unlock()

	if err := c.backend.DeleteTask(ctx, id); err != nil {
		c.mu.Lock()
		at := min(idx, len(c.tasks))
		c.tasks = slices.Insert(c.tasks, at, removed)
		c.mu.Unlock()
		c.sink.Emit(haptics.KindError)
		c.log.Warn("delete rolled back", "task", id, "err", err)
		return &MutationFailure{Op: "delete", ItemID: id, Err: err}
	}
	c.mu.Lock()
	delete(c.prevTaskStatus, id)
	c.mu.Unlock()
	c.sink.Emit(haptics.KindSuccess)
	return nil
}

// ToggleProjectStatus is the project counterpart of ToggleTaskStatus.
func (c *Coordinator) ToggleProjectStatus(ctx context.Context, id string) (domain.Project, error) {
	defer c.lockItem(id)()

	c.mu.Lock()
	idx := c.projectIndex(id)
	if idx < 0 {
		c.mu.Unlock()
		return domain.Project{}, ErrNotFound
	}
	before := c.projects[idx]
	target := domain.ProjectStatusCompleted
	if before.Status == domain.ProjectStatusCompleted {
		target = c.prevProjectStatus[id]
		if target == "" || target == domain.ProjectStatusCompleted {
			target = domain.ProjectStatusNotStarted
		}
	} else {
		c.prevProjectStatus[id] = before.Status
	}
	updated := before
	if err := updated.SetStatus(target, c.clock()); err != nil {
		c.mu.Unlock()
		return domain.Project{}, err
	}
	c.projects[idx] = updated
	c.mu.Unlock()

	if err := c.backend.SaveProject(ctx, updated); err != nil {
		c.restoreProject(before)
		c.sink.Emit(haptics.KindError)
		c.log.Warn("toggle rolled back", "project", id, "err", err)
		return domain.Project{}, &MutationFailure{Op: "toggle status", ItemID: id, Err: err}
	}
	c.sink.Emit(haptics.KindSuccess)
	return updated, nil
}

// DeleteProject is the project counterpart of DeleteTask.
func (c *Coordinator) DeleteProject(ctx context.Context, id string) error {
	defer c.lockItem(id)()

	c.mu.Lock()
	idx := c.projectIndex(id)
	if idx < 0 {
		c.mu.Unlock()
		return ErrNotFound
	}
	removed := c.projects[idx]
	c.projects = slices.Delete(c.projects, idx, idx+1)
	c.mu.Unlock()

	if err := c.backend.DeleteProject(ctx, id); err != nil {
		c.mu.Lock()
		at := min(idx, len(c.projects))
		c.projects = slices.Insert(c.projects, at, removed)
		c.mu.Unlock()
		c.sink.Emit(haptics.KindError)
		c.log.Warn("delete rolled back", "project", id, "err", err)
		return &MutationFailure{Op: "delete", ItemID: id, Err: err}
	}
	c.mu.Lock()
	delete(c.prevProjectStatus, id)
	c.mu.Unlock()
	c.sink.Emit(haptics.KindSuccess)
	return nil
}

// taskIndex returns the index of the task with the id, or -1. Callers hold mu.
func (c *Coordinator) taskIndex(id string) int {
	return slices.IndexFunc(c.tasks, func(t domain.Task) bool { return t.ID == id })
}

// projectIndex returns the index of the project with the id, or -1. Callers hold mu.
func (c *Coordinator) projectIndex(id string) int {
	return slices.IndexFunc(c.projects, func(p domain.Project) bool { return p.ID == id })
}

// restoreTask writes the snapshot back over the current entry for its id.
// With per-item serialization no later mutation can have interleaved.
func (c *Coordinator) restoreTask(snapshot domain.Task) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if idx := c.taskIndex(snapshot.ID); idx >= 0 {
		c.tasks[idx] = snapshot
	}
}

func (c *Coordinator) restoreProject(snapshot domain.Project) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if idx := c.projectIndex(snapshot.ID); idx >= 0 {
		c.projects[idx] = snapshot
	}
}
