// Package backend simulates the request layer: an in-memory dataset behind
// per-call latency and injectable failures. There is no real persistence or
// wire protocol; "the server" is this process.
package backend

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/hylla/listan/internal/domain"
)

// ErrSimulated is the base error for injected request failures.
var ErrSimulated = errors.New("simulated request failure")

// Config controls the simulated request behavior.
type Config struct {
	// Latency is the simulated round-trip delay per call.
	Latency time.Duration
	// FailureRate is the probability in [0, 1) that a call fails.
	FailureRate float64
	// Seed makes the failure sequence reproducible.
	Seed uint64
}

// DefaultConfig returns the demo behavior: noticeable but short latency, no
// random failures.
func DefaultConfig() Config {
	return Config{Latency: 350 * time.Millisecond}
}

// Client is the mocked backend. Mutations update the in-memory dataset so a
// later fetch reflects committed changes.
type Client struct {
	cfg Config
	log *charmlog.Logger

	mu       sync.Mutex
	rng      *rand.Rand
	failNext int
	data     domain.Snapshot
}

// New constructs a client over the snapshot. A nil logger discards.
func New(cfg Config, snap domain.Snapshot, logger *charmlog.Logger) *Client {
	if logger == nil {
		logger = charmlog.New(io.Discard)
	}
	return &Client{
		cfg:  cfg,
		log:  logger,
		rng:  rand.New(rand.NewPCG(cfg.Seed, cfg.Seed)),
		data: snap,
	}
}

// FailNext forces the next n calls to fail, regardless of the failure rate.
func (c *Client) FailNext(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failNext = n
}

// FetchSnapshot returns a copy of the current dataset after the simulated
// latency.
func (c *Client) FetchSnapshot(ctx context.Context) (domain.Snapshot, error) {
	if err := c.roundTrip(ctx, "fetch_snapshot"); err != nil {
		return domain.Snapshot{}, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return domain.Snapshot{
		Projects: slices.Clone(c.data.Projects),
		Tasks:    slices.Clone(c.data.Tasks),
	}, nil
}

// SaveTask upserts the task record.
func (c *Client) SaveTask(ctx context.Context, task domain.Task) error {
	if err := c.roundTrip(ctx, "save_task"); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	rec := taskRecord(task)
	idx := slices.IndexFunc(c.data.Tasks, func(r domain.TaskRecord) bool { return r.ID == task.ID })
	if idx >= 0 {
		c.data.Tasks[idx] = rec
	} else {
		c.data.Tasks = append(c.data.Tasks, rec)
	}
	return nil
}

// DeleteTask removes the task record.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	if err := c.roundTrip(ctx, "delete_task"); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data.Tasks = slices.DeleteFunc(c.data.Tasks, func(r domain.TaskRecord) bool { return r.ID == id })
	return nil
}

// SaveProject upserts the project record.
func (c *Client) SaveProject(ctx context.Context, project domain.Project) error {
	if err := c.roundTrip(ctx, "save_project"); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	rec := projectRecord(project)
	idx := slices.IndexFunc(c.data.Projects, func(r domain.ProjectRecord) bool { return r.ID == project.ID })
	if idx >= 0 {
		c.data.Projects[idx] = rec
	} else {
		c.data.Projects = append(c.data.Projects, rec)
	}
	return nil
}

// DeleteProject removes the project record.
func (c *Client) DeleteProject(ctx context.Context, id string) error {
	if err := c.roundTrip(ctx, "delete_project"); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data.Projects = slices.DeleteFunc(c.data.Projects, func(r domain.ProjectRecord) bool { return r.ID == id })
	return nil
}

// roundTrip suspends for the simulated latency, honoring context
// cancellation, then applies failure injection.
func (c *Client) roundTrip(ctx context.Context, op string) error {
	if c.cfg.Latency > 0 {
		timer := time.NewTimer(c.cfg.Latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failNext > 0 {
		c.failNext--
		c.log.Debug("injected failure", "op", op)
		return fmt.Errorf("%s: %w", op, ErrSimulated)
	}
	if c.cfg.FailureRate > 0 && c.rng.Float64() < c.cfg.FailureRate {
		c.log.Debug("random failure", "op", op)
		return fmt.Errorf("%s: %w", op, ErrSimulated)
	}
	return nil
}

// taskRecord flattens a canonical task back into its raw record shape.
func taskRecord(t domain.Task) domain.TaskRecord {
	return domain.TaskRecord{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		Priority:    string(t.Priority),
		DueDate:     t.DueDate,
		ProjectRef:  t.ProjectRef,
		Assignees:   slices.Clone(t.Assignees),
		CompletedAt: t.CompletedAt,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// projectRecord flattens a canonical project back into its raw record shape.
func projectRecord(p domain.Project) domain.ProjectRecord {
	return domain.ProjectRecord{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Status:      string(p.Status),
		Priority:    string(p.Priority),
		DueDate:     p.DueDate,
		Assignees:   slices.Clone(p.Assignees),
		CompletedAt: p.CompletedAt,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
