package domain

import (
	"strings"
	"time"
)

// Project is the canonical project shape consumed by the list engine.
type Project struct {
	ID          string
	Title       string
	Description string
	Status      ProjectStatus
	Priority    Priority
	DueDate     *time.Time
	Assignees   []UserRef
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProjectInput holds input values for constructing a project.
type ProjectInput struct {
	ID          string
	Title       string
	Description string
	Status      ProjectStatus
	Priority    Priority
	DueDate     *time.Time
	Assignees   []UserRef
}

// NewProject validates and constructs a project.
func NewProject(in ProjectInput, now time.Time) (Project, error) {
	in.ID = strings.TrimSpace(in.ID)
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)

	if in.ID == "" {
		return Project{}, ErrInvalidID
	}
	if in.Title == "" {
		return Project{}, ErrInvalidTitle
	}
	if in.Status == "" {
		in.Status = ProjectStatusNotStarted
	}
	in.Status = normalizeProjectStatus(in.Status)
	if !isValidProjectStatus(in.Status) {
		return Project{}, ErrInvalidStatus
	}
	if in.Priority == "" {
		in.Priority = PriorityMedium
	}
	in.Priority = normalizePriority(in.Priority)
	if !isValidPriority(in.Priority) {
		return Project{}, ErrInvalidPriority
	}

	project := Project{
		ID:          in.ID,
		Title:       in.Title,
		Description: in.Description,
		Status:      in.Status,
		Priority:    in.Priority,
		DueDate:     normalizeDate(in.DueDate),
		Assignees:   normalizeAssignees(in.Assignees),
		CreatedAt:   now.UTC(),
		UpdatedAt:   now.UTC(),
	}
	if project.Status == ProjectStatusCompleted {
		ts := now.UTC()
		project.CompletedAt = &ts
	}
	return project, nil
}

// SetStatus transitions the project, maintaining the CompletedAt invariant.
func (p *Project) SetStatus(status ProjectStatus, now time.Time) error {
	status = normalizeProjectStatus(status)
	if !isValidProjectStatus(status) {
		return ErrInvalidStatus
	}
	entering := status == ProjectStatusCompleted && p.Status != ProjectStatusCompleted
	leaving := status != ProjectStatusCompleted && p.Status == ProjectStatusCompleted
	p.Status = status
	switch {
	case entering:
		ts := now.UTC()
		p.CompletedAt = &ts
	case leaving:
		p.CompletedAt = nil
	}
	p.UpdatedAt = now.UTC()
	return nil
}

// UpdateDetails replaces the editable fields after validation.
func (p *Project) UpdateDetails(title, description string, priority Priority, dueDate *time.Time, now time.Time) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrInvalidTitle
	}
	priority = normalizePriority(priority)
	if !isValidPriority(priority) {
		return ErrInvalidPriority
	}
	p.Title = title
	p.Description = strings.TrimSpace(description)
	p.Priority = priority
	p.DueDate = normalizeDate(dueDate)
	p.UpdatedAt = now.UTC()
	return nil
}

// Overdue reports whether the project is past due and not completed.
func (p Project) Overdue(now time.Time) bool {
	return p.DueDate != nil && p.DueDate.Before(now) && p.Status != ProjectStatusCompleted
}
