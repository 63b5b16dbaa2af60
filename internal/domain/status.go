package domain

import (
	"slices"
	"strings"
)

// TaskStatus represents the lifecycle status of a task.
type TaskStatus string

// Canonical task statuses in board-column order.
const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusBlocked    TaskStatus = "blocked"
	TaskStatusCompleted  TaskStatus = "completed"
)

// ProjectStatus represents the lifecycle status of a project.
type ProjectStatus string

// Canonical project statuses in board-column order.
const (
	ProjectStatusNotStarted ProjectStatus = "not_started"
	ProjectStatusInProgress ProjectStatus = "in_progress"
	ProjectStatusOnHold     ProjectStatus = "on_hold"
	ProjectStatusCompleted  ProjectStatus = "completed"
)

// Priority represents task/project urgency.
type Priority string

// Priority values from least to most urgent.
const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

var taskStatusOrder = []TaskStatus{
	TaskStatusTodo,
	TaskStatusInProgress,
	TaskStatusBlocked,
	TaskStatusCompleted,
}

var projectStatusOrder = []ProjectStatus{
	ProjectStatusNotStarted,
	ProjectStatusInProgress,
	ProjectStatusOnHold,
	ProjectStatusCompleted,
}

var priorityOrder = []Priority{
	PriorityLow,
	PriorityMedium,
	PriorityHigh,
	PriorityCritical,
}

// TaskStatusOrder returns the fixed, domain-defined column order for task boards.
func TaskStatusOrder() []TaskStatus {
	return slices.Clone(taskStatusOrder)
}

// ProjectStatusOrder returns the fixed, domain-defined column order for project boards.
func ProjectStatusOrder() []ProjectStatus {
	return slices.Clone(projectStatusOrder)
}

// normalizeTaskStatus canonicalizes common aliases before validation.
func normalizeTaskStatus(status TaskStatus) TaskStatus {
	switch strings.TrimSpace(strings.ToLower(string(status))) {
	case "todo", "to-do", "to_do":
		return TaskStatusTodo
	case "in_progress", "in-progress", "in progress", "progress", "doing":
		return TaskStatusInProgress
	case "blocked":
		return TaskStatusBlocked
	case "completed", "complete", "done":
		return TaskStatusCompleted
	default:
		return TaskStatus(strings.TrimSpace(strings.ToLower(string(status))))
	}
}

// normalizeProjectStatus canonicalizes common aliases before validation.
func normalizeProjectStatus(status ProjectStatus) ProjectStatus {
	switch strings.TrimSpace(strings.ToLower(string(status))) {
	case "not_started", "not-started", "not started", "new":
		return ProjectStatusNotStarted
	case "in_progress", "in-progress", "in progress", "progress", "active":
		return ProjectStatusInProgress
	case "on_hold", "on-hold", "on hold", "paused":
		return ProjectStatusOnHold
	case "completed", "complete", "done":
		return ProjectStatusCompleted
	default:
		return ProjectStatus(strings.TrimSpace(strings.ToLower(string(status))))
	}
}

func isValidTaskStatus(status TaskStatus) bool {
	return slices.Contains(taskStatusOrder, status)
}

func isValidProjectStatus(status ProjectStatus) bool {
	return slices.Contains(projectStatusOrder, status)
}

func normalizePriority(priority Priority) Priority {
	return Priority(strings.TrimSpace(strings.ToLower(string(priority))))
}

func isValidPriority(priority Priority) bool {
	return slices.Contains(priorityOrder, priority)
}

// TaskStatusLabel returns the display label for a task status.
func TaskStatusLabel(status TaskStatus) string {
	switch status {
	case TaskStatusTodo:
		return "To Do"
	case TaskStatusInProgress:
		return "In Progress"
	case TaskStatusBlocked:
		return "Blocked"
	case TaskStatusCompleted:
		return "Completed"
	default:
		return string(status)
	}
}

// ProjectStatusLabel returns the display label for a project status.
func ProjectStatusLabel(status ProjectStatus) string {
	switch status {
	case ProjectStatusNotStarted:
		return "Not Started"
	case ProjectStatusInProgress:
		return "In Progress"
	case ProjectStatusOnHold:
		return "On Hold"
	case ProjectStatusCompleted:
		return "Completed"
	default:
		return string(status)
	}
}

// TaskStatusRank returns the domain rank used for status sorting and board columns.
func TaskStatusRank(status TaskStatus) int {
	if idx := slices.Index(taskStatusOrder, status); idx >= 0 {
		return idx
	}
	return len(taskStatusOrder)
}

// ProjectStatusRank returns the domain rank used for status sorting and board columns.
func ProjectStatusRank(status ProjectStatus) int {
	if idx := slices.Index(projectStatusOrder, status); idx >= 0 {
		return idx
	}
	return len(projectStatusOrder)
}

// PriorityRank returns the sort rank for a priority: higher is more urgent.
// Unknown priorities rank below low.
func PriorityRank(priority Priority) int {
	return slices.Index(priorityOrder, priority)
}
