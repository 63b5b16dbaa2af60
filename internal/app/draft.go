package app

import (
	"context"
	"strings"
	"time"

	"github.com/hylla/listan/internal/domain"
	"github.com/hylla/listan/internal/haptics"
)

// dueLayout is the wire format for due dates entered in forms.
const dueLayout = "2006-01-02"

// TaskDraft is a create/edit form submission for a task. Due is the raw form
// value and must parse as a calendar date.
type TaskDraft struct {
	Title       string
	Description string
	Priority    domain.Priority
	Due         string
	ProjectRef  string
	Assignees   []domain.UserRef
}

// ProjectDraft is a create/edit form submission for a project.
type ProjectDraft struct {
	Title       string
	Description string
	Priority    domain.Priority
	Due         string
	Assignees   []domain.UserRef
}

// validateDraft checks the shared required fields: title, and a well-formed
// due date. It returns nil field errors when the draft is clean.
func validateDraft(title, due string) (*time.Time, FieldErrors) {
	errs := FieldErrors{}
	if strings.TrimSpace(title) == "" {
		errs["title"] = "required"
	}
	due = strings.TrimSpace(due)
	var dueDate *time.Time
	switch {
	case due == "":
		errs["due"] = "required"
	default:
		parsed, err := time.Parse(dueLayout, due)
		if err != nil {
			errs["due"] = "expected " + dueLayout
		} else {
			parsed = parsed.UTC()
			dueDate = &parsed
		}
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return dueDate, nil
}

// CreateTask validates the draft, appends the new task optimistically, and
// confirms against the backend. Invalid drafts never reach the collection;
// the caller gets field-level reasons instead.
func (c *Coordinator) CreateTask(ctx context.Context, draft TaskDraft) (domain.Task, error) {
	dueDate, fieldErrs := validateDraft(draft.Title, draft.Due)
	if fieldErrs != nil {
		return domain.Task{}, fieldErrs
	}

	c.mu.Lock()
	projectName := ""
	for _, p := range c.projects {
		if p.ID == draft.ProjectRef {
			projectName = p.Title
			break
		}
	}
	c.mu.Unlock()

	task, err := domain.NewTask(domain.TaskInput{
		ID:          c.idGen(),
		Title:       draft.Title,
		Description: draft.Description,
		Status:      domain.TaskStatusTodo,
		Priority:    draft.Priority,
		DueDate:     dueDate,
		ProjectRef:  draft.ProjectRef,
		ProjectName: projectName,
		Assignees:   draft.Assignees,
	}, c.clock())
	if err != nil {
		return domain.Task{}, err
	}

	defer c.lockItem(task.ID)()
	c.mu.Lock()
	c.tasks = append(c.tasks, task)
	c.mu.Unlock()

	if err := c.backend.SaveTask(ctx, task); err != nil {
		c.mu.Lock()
		if idx := c.taskIndex(task.ID); idx >= 0 {
			c.tasks = append(c.tasks[:idx], c.tasks[idx+1:]...)
		}
		c.mu.Unlock()
		c.sink.Emit(haptics.KindError)
		c.log.Warn("create rolled back", "task", task.ID, "err", err)
		return domain.Task{}, &MutationFailure{Op: "create", ItemID: task.ID, Err: err}
	}
	c.sink.Emit(haptics.KindSuccess)
	return task, nil
}

// UpdateTask validates the draft and merges it into the existing task
// optimistically, rolling back on a failed backing request.
func (c *Coordinator) UpdateTask(ctx context.Context, id string, draft TaskDraft) (domain.Task, error) {
	dueDate, fieldErrs := validateDraft(draft.Title, draft.Due)
	if fieldErrs != nil {
		return domain.Task{}, fieldErrs
	}

	defer c.lockItem(id)()
	c.mu.Lock()
	idx := c.taskIndex(id)
	if idx < 0 {
		c.mu.Unlock()
		return domain.Task{}, ErrNotFound
	}
	before := c.tasks[idx]
	updated := before
	if err := updated.UpdateDetails(draft.Title, draft.Description, draft.Priority, dueDate, c.clock()); err != nil {
		c.mu.Unlock()
		return domain.Task{}, err
	}
	c.tasks[idx] = updated
	c.mu.Unlock()

	if err := c.backend.SaveTask(ctx, updated); err != nil {
		c.restoreTask(before)
		c.sink.Emit(haptics.KindError)
		c.log.Warn("update rolled back", "task", id, "err", err)
		return domain.Task{}, &MutationFailure{Op: "update", ItemID: id, Err: err}
	}
	c.sink.Emit(haptics.KindSuccess)
	return updated, nil
}

// CreateProject is the project counterpart of CreateTask.
func (c *Coordinator) CreateProject(ctx context.Context, draft ProjectDraft) (domain.Project, error) {
	dueDate, fieldErrs := validateDraft(draft.Title, draft.Due)
	if fieldErrs != nil {
		return domain.Project{}, fieldErrs
	}

	project, err := domain.NewProject(domain.ProjectInput{
		ID:          c.idGen(),
		Title:       draft.Title,
		Description: draft.Description,
		Status:      domain.ProjectStatusNotStarted,
		Priority:    draft.Priority,
		DueDate:     dueDate,
		Assignees:   draft.Assignees,
	}, c.clock())
	if err != nil {
		return domain.Project{}, err
	}

	defer c.lockItem(project.ID)()
	c.mu.Lock()
	c.projects = append(c.projects, project)
	c.mu.Unlock()

	if err := c.backend.SaveProject(ctx, project); err != nil {
		c.mu.Lock()
		if idx := c.projectIndex(project.ID); idx >= 0 {
			c.projects = append(c.projects[:idx], c.projects[idx+1:]...)
		}
		c.mu.Unlock()
		c.sink.Emit(haptics.KindError)
		c.log.Warn("create rolled back", "project", project.ID, "err", err)
		return domain.Project{}, &MutationFailure{Op: "create", ItemID: project.ID, Err: err}
	}
	c.sink.Emit(haptics.KindSuccess)
	return project, nil
}

// UpdateProject is the project counterpart of UpdateTask.
func (c *Coordinator) UpdateProject(ctx context.Context, id string, draft ProjectDraft) (domain.Project, error) {
	dueDate, fieldErrs := validateDraft(draft.Title, draft.Due)
	if fieldErrs != nil {
		return domain.Project{}, fieldErrs
	}

	defer c.lockItem(id)()
	c.mu.Lock()
	idx := c.projectIndex(id)
	if idx < 0 {
		c.mu.Unlock()
		return domain.Project{}, ErrNotFound
	}
	before := c.projects[idx]
	updated := before
	if err := updated.UpdateDetails(draft.Title, draft.Description, draft.Priority, dueDate, c.clock()); err != nil {
		c.mu.Unlock()
		return domain.Project{}, err
	}
	c.projects[idx] = updated
	c.mu.Unlock()

	if err := c.backend.SaveProject(ctx, updated); err != nil {
		c.restoreProject(before)
		c.sink.Emit(haptics.KindError)
		c.log.Warn("update rolled back", "project", id, "err", err)
		return domain.Project{}, &MutationFailure{Op: "update", ItemID: id, Err: err}
	}
	c.sink.Emit(haptics.KindSuccess)
	return updated, nil
}
