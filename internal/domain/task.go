package domain

import (
	"strings"
	"time"
)

// UnknownProjectName is rendered for tasks whose project reference dangles.
const UnknownProjectName = "Unknown"

// Task is the canonical task shape consumed by the list engine.
type Task struct {
	ID          string
	Title       string
	Description string
	Status      TaskStatus
	Priority    Priority
	DueDate     *time.Time
	ProjectRef  string
	// ProjectName is resolved against the snapshot at normalization time.
	// A dangling ProjectRef resolves to UnknownProjectName.
	ProjectName string
	Assignees   []UserRef
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TaskInput holds input values for constructing a task.
type TaskInput struct {
	ID          string
	Title       string
	Description string
	Status      TaskStatus
	Priority    Priority
	DueDate     *time.Time
	ProjectRef  string
	ProjectName string
	Assignees   []UserRef
}

// NewTask validates and constructs a task.
func NewTask(in TaskInput, now time.Time) (Task, error) {
	in.ID = strings.TrimSpace(in.ID)
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.ProjectRef = strings.TrimSpace(in.ProjectRef)
	in.ProjectName = strings.TrimSpace(in.ProjectName)

	if in.ID == "" {
		return Task{}, ErrInvalidID
	}
	if in.Title == "" {
		return Task{}, ErrInvalidTitle
	}
	if in.Status == "" {
		in.Status = TaskStatusTodo
	}
	in.Status = normalizeTaskStatus(in.Status)
	if !isValidTaskStatus(in.Status) {
		return Task{}, ErrInvalidStatus
	}
	if in.Priority == "" {
		in.Priority = PriorityMedium
	}
	in.Priority = normalizePriority(in.Priority)
	if !isValidPriority(in.Priority) {
		return Task{}, ErrInvalidPriority
	}
	if in.ProjectName == "" {
		in.ProjectName = UnknownProjectName
	}

	task := Task{
		ID:          in.ID,
		Title:       in.Title,
		Description: in.Description,
		Status:      in.Status,
		Priority:    in.Priority,
		DueDate:     normalizeDate(in.DueDate),
		ProjectRef:  in.ProjectRef,
		ProjectName: in.ProjectName,
		Assignees:   normalizeAssignees(in.Assignees),
		CreatedAt:   now.UTC(),
		UpdatedAt:   now.UTC(),
	}
	if task.Status == TaskStatusCompleted {
		ts := now.UTC()
		task.CompletedAt = &ts
	}
	return task, nil
}

// SetStatus transitions the task, maintaining the CompletedAt invariant:
// set exactly when entering completed, cleared when leaving it.
func (t *Task) SetStatus(status TaskStatus, now time.Time) error {
	status = normalizeTaskStatus(status)
	if !isValidTaskStatus(status) {
		return ErrInvalidStatus
	}
	entering := status == TaskStatusCompleted && t.Status != TaskStatusCompleted
	leaving := status != TaskStatusCompleted && t.Status == TaskStatusCompleted
	t.Status = status
	switch {
	case entering:
		ts := now.UTC()
		t.CompletedAt = &ts
	case leaving:
		t.CompletedAt = nil
	}
	t.UpdatedAt = now.UTC()
	return nil
}

// UpdateDetails replaces the editable fields after validation.
func (t *Task) UpdateDetails(title, description string, priority Priority, dueDate *time.Time, now time.Time) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrInvalidTitle
	}
	priority = normalizePriority(priority)
	if !isValidPriority(priority) {
		return ErrInvalidPriority
	}
	t.Title = title
	t.Description = strings.TrimSpace(description)
	t.Priority = priority
	t.DueDate = normalizeDate(dueDate)
	t.UpdatedAt = now.UTC()
	return nil
}

// Overdue reports whether the task is past due and not completed.
func (t Task) Overdue(now time.Time) bool {
	return t.DueDate != nil && t.DueDate.Before(now) && t.Status != TaskStatusCompleted
}

func normalizeDate(ts *time.Time) *time.Time {
	if ts == nil {
		return nil
	}
	v := ts.UTC().Truncate(time.Second)
	return &v
}
