package domain

import (
	"fmt"
	"time"
)

// TaskRecord is the raw shape of a task as returned by a fetch, before
// normalization into the canonical Task.
type TaskRecord struct {
	ID          string
	Title       string
	Description string
	Status      string
	Priority    string
	DueDate     *time.Time
	ProjectRef  string
	Assignees   []UserRef
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProjectRecord is the raw shape of a project as returned by a fetch.
type ProjectRecord struct {
	ID          string
	Title       string
	Description string
	Status      string
	Priority    string
	DueDate     *time.Time
	Assignees   []UserRef
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Snapshot is one fetched collection state: everything a screen needs to
// rebuild its raw collection from scratch.
type Snapshot struct {
	Projects []ProjectRecord
	Tasks    []TaskRecord
}

// NormalizeTask maps a raw record into the canonical shape. Missing optional
// fields default (Assignees = nil, CompletedAt = nil); a record whose status
// or priority is outside the enum is rejected.
func NormalizeTask(rec TaskRecord, projectNames map[string]string) (Task, error) {
	status := normalizeTaskStatus(TaskStatus(rec.Status))
	if rec.Status == "" {
		status = TaskStatusTodo
	}
	if !isValidTaskStatus(status) {
		return Task{}, fmt.Errorf("task %s: status %q: %w", rec.ID, rec.Status, ErrInvalidStatus)
	}
	priority := normalizePriority(Priority(rec.Priority))
	if rec.Priority == "" {
		priority = PriorityMedium
	}
	if !isValidPriority(priority) {
		return Task{}, fmt.Errorf("task %s: priority %q: %w", rec.ID, rec.Priority, ErrInvalidPriority)
	}

	projectName := projectNames[rec.ProjectRef]
	task, err := NewTask(TaskInput{
		ID:          rec.ID,
		Title:       rec.Title,
		Description: rec.Description,
		Status:      status,
		Priority:    priority,
		DueDate:     rec.DueDate,
		ProjectRef:  rec.ProjectRef,
		ProjectName: projectName,
		Assignees:   rec.Assignees,
	}, fallbackTime(rec.CreatedAt))
	if err != nil {
		return Task{}, fmt.Errorf("task %s: %w", rec.ID, err)
	}
	task.UpdatedAt = fallbackTime(rec.UpdatedAt)
	// Trust the source timestamp over the transition-derived one when present.
	if rec.CompletedAt != nil && task.Status == TaskStatusCompleted {
		task.CompletedAt = normalizeDate(rec.CompletedAt)
	}
	return task, nil
}

// NormalizeProject maps a raw record into the canonical shape.
func NormalizeProject(rec ProjectRecord) (Project, error) {
	status := normalizeProjectStatus(ProjectStatus(rec.Status))
	if rec.Status == "" {
		status = ProjectStatusNotStarted
	}
	if !isValidProjectStatus(status) {
		return Project{}, fmt.Errorf("project %s: status %q: %w", rec.ID, rec.Status, ErrInvalidStatus)
	}
	priority := normalizePriority(Priority(rec.Priority))
	if rec.Priority == "" {
		priority = PriorityMedium
	}
	if !isValidPriority(priority) {
		return Project{}, fmt.Errorf("project %s: priority %q: %w", rec.ID, rec.Priority, ErrInvalidPriority)
	}

	project, err := NewProject(ProjectInput{
		ID:          rec.ID,
		Title:       rec.Title,
		Description: rec.Description,
		Status:      status,
		Priority:    priority,
		DueDate:     rec.DueDate,
		Assignees:   rec.Assignees,
	}, fallbackTime(rec.CreatedAt))
	if err != nil {
		return Project{}, fmt.Errorf("project %s: %w", rec.ID, err)
	}
	project.UpdatedAt = fallbackTime(rec.UpdatedAt)
	if rec.CompletedAt != nil && project.Status == ProjectStatusCompleted {
		project.CompletedAt = normalizeDate(rec.CompletedAt)
	}
	return project, nil
}

// ProjectNameIndex builds the ref-resolution map used by NormalizeTask.
func ProjectNameIndex(records []ProjectRecord) map[string]string {
	out := make(map[string]string, len(records))
	for _, rec := range records {
		if rec.ID == "" {
			continue
		}
		out[rec.ID] = rec.Title
	}
	return out
}

func fallbackTime(ts time.Time) time.Time {
	if ts.IsZero() {
		return time.Unix(0, 0).UTC()
	}
	return ts
}
