package domain

import (
	"errors"
	"testing"
	"time"
)

func TestNewTaskDefaultsAndTrimming(t *testing.T) {
	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	task, err := NewTask(TaskInput{
		ID:    " t1 ",
		Title: "  Ship feature ",
	}, now)
	if err != nil {
		t.Fatalf("NewTask() error = %v", err)
	}
	if task.ID != "t1" {
		t.Fatalf("unexpected id %q", task.ID)
	}
	if task.Title != "Ship feature" {
		t.Fatalf("unexpected title %q", task.Title)
	}
	if task.Status != TaskStatusTodo {
		t.Fatalf("expected default todo, got %q", task.Status)
	}
	if task.Priority != PriorityMedium {
		t.Fatalf("expected default medium, got %q", task.Priority)
	}
	if task.ProjectName != UnknownProjectName {
		t.Fatalf("expected unknown project name, got %q", task.ProjectName)
	}
	if task.CompletedAt != nil {
		t.Fatal("expected completed_at to be nil")
	}
}

func TestNewTaskValidation(t *testing.T) {
	now := time.Now()
	if _, err := NewTask(TaskInput{Title: "ok"}, now); err != ErrInvalidID {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
	if _, err := NewTask(TaskInput{ID: "t1", Title: "   "}, now); err != ErrInvalidTitle {
		t.Fatalf("expected ErrInvalidTitle, got %v", err)
	}
	if _, err := NewTask(TaskInput{ID: "t1", Title: "ok", Status: "bogus"}, now); err != ErrInvalidStatus {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if _, err := NewTask(TaskInput{ID: "t1", Title: "ok", Priority: "urgent-ish"}, now); err != ErrInvalidPriority {
		t.Fatalf("expected ErrInvalidPriority, got %v", err)
	}
}

func TestSetStatusCompletedAtInvariant(t *testing.T) {
	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	task, err := NewTask(TaskInput{ID: "t1", Title: "test", Status: TaskStatusInProgress}, now)
	if err != nil {
		t.Fatalf("NewTask() error = %v", err)
	}

	later := now.Add(time.Hour)
	if err := task.SetStatus(TaskStatusCompleted, later); err != nil {
		t.Fatalf("SetStatus() error = %v", err)
	}
	if task.CompletedAt == nil || !task.CompletedAt.Equal(later) {
		t.Fatalf("expected completed_at %v, got %v", later, task.CompletedAt)
	}

	// Completed -> completed keeps the original timestamp.
	if err := task.SetStatus(TaskStatusCompleted, later.Add(time.Hour)); err != nil {
		t.Fatalf("SetStatus() error = %v", err)
	}
	if !task.CompletedAt.Equal(later) {
		t.Fatalf("expected completed_at unchanged, got %v", task.CompletedAt)
	}

	if err := task.SetStatus(TaskStatusBlocked, later.Add(2*time.Hour)); err != nil {
		t.Fatalf("SetStatus() error = %v", err)
	}
	if task.CompletedAt != nil {
		t.Fatalf("expected completed_at cleared, got %v", task.CompletedAt)
	}
}

func TestStatusAliasNormalization(t *testing.T) {
	now := time.Now()
	task, err := NewTask(TaskInput{ID: "t1", Title: "test", Status: "In Progress"}, now)
	if err != nil {
		t.Fatalf("NewTask() error = %v", err)
	}
	if task.Status != TaskStatusInProgress {
		t.Fatalf("expected in_progress, got %q", task.Status)
	}

	project, err := NewProject(ProjectInput{ID: "p1", Title: "test", Status: "Not Started"}, now)
	if err != nil {
		t.Fatalf("NewProject() error = %v", err)
	}
	if project.Status != ProjectStatusNotStarted {
		t.Fatalf("expected not_started, got %q", project.Status)
	}
}

func TestTaskOverdue(t *testing.T) {
	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	due := now.Add(-24 * time.Hour)
	task, err := NewTask(TaskInput{ID: "t1", Title: "late", DueDate: &due}, now)
	if err != nil {
		t.Fatalf("NewTask() error = %v", err)
	}
	if !task.Overdue(now) {
		t.Fatal("expected overdue")
	}
	if err := task.SetStatus(TaskStatusCompleted, now); err != nil {
		t.Fatalf("SetStatus() error = %v", err)
	}
	if task.Overdue(now) {
		t.Fatal("completed tasks are never overdue")
	}
}

func TestNormalizeAssigneesDedupes(t *testing.T) {
	now := time.Now()
	task, err := NewTask(TaskInput{
		ID:    "t1",
		Title: "test",
		Assignees: []UserRef{
			{ID: "u1", Name: "Ana"},
			{ID: "u2", Name: "Jonas"},
			{ID: "u1", Name: "Ana Again"},
			{ID: "", Name: "ghost"},
		},
	}, now)
	if err != nil {
		t.Fatalf("NewTask() error = %v", err)
	}
	if len(task.Assignees) != 2 {
		t.Fatalf("expected 2 assignees, got %d", len(task.Assignees))
	}
	if task.Assignees[0].ID != "u1" || task.Assignees[1].ID != "u2" {
		t.Fatalf("unexpected assignee order %+v", task.Assignees)
	}
}

func TestNormalizeTaskResolvesProjectName(t *testing.T) {
	names := map[string]string{"p1": "Website Redesign"}
	task, err := NormalizeTask(TaskRecord{
		ID:         "t1",
		Title:      "test",
		Status:     "todo",
		Priority:   "high",
		ProjectRef: "p1",
	}, names)
	if err != nil {
		t.Fatalf("NormalizeTask() error = %v", err)
	}
	if task.ProjectName != "Website Redesign" {
		t.Fatalf("unexpected project name %q", task.ProjectName)
	}

	dangling, err := NormalizeTask(TaskRecord{
		ID:         "t2",
		Title:      "orphan",
		Status:     "todo",
		Priority:   "low",
		ProjectRef: "p-gone",
	}, names)
	if err != nil {
		t.Fatalf("NormalizeTask() error = %v", err)
	}
	if dangling.ProjectName != UnknownProjectName {
		t.Fatalf("expected %q, got %q", UnknownProjectName, dangling.ProjectName)
	}
}

func TestNormalizeTaskRejectsOutOfEnum(t *testing.T) {
	_, err := NormalizeTask(TaskRecord{ID: "t1", Title: "test", Status: "paused"}, nil)
	if !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	_, err = NormalizeTask(TaskRecord{ID: "t1", Title: "test", Status: "todo", Priority: "p0"}, nil)
	if !errors.Is(err, ErrInvalidPriority) {
		t.Fatalf("expected ErrInvalidPriority, got %v", err)
	}
	_, err = NormalizeProject(ProjectRecord{ID: "p1", Title: "test", Status: "archived"})
	if !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestNormalizeTaskDefaultsMissingFields(t *testing.T) {
	task, err := NormalizeTask(TaskRecord{ID: "t1", Title: "bare"}, nil)
	if err != nil {
		t.Fatalf("NormalizeTask() error = %v", err)
	}
	if task.Status != TaskStatusTodo || task.Priority != PriorityMedium {
		t.Fatalf("unexpected defaults status=%q priority=%q", task.Status, task.Priority)
	}
	if task.Assignees != nil {
		t.Fatalf("expected nil assignees, got %v", task.Assignees)
	}
	if task.CreatedAt.IsZero() {
		t.Fatal("expected fallback created_at")
	}
}

func TestNormalizeTaskTrustsSourceCompletedAt(t *testing.T) {
	completed := time.Date(2026, 8, 1, 9, 30, 0, 0, time.UTC)
	task, err := NormalizeTask(TaskRecord{
		ID:          "t1",
		Title:       "done already",
		Status:      "completed",
		CompletedAt: &completed,
		CreatedAt:   completed.Add(-48 * time.Hour),
	}, nil)
	if err != nil {
		t.Fatalf("NormalizeTask() error = %v", err)
	}
	if task.CompletedAt == nil || !task.CompletedAt.Equal(completed) {
		t.Fatalf("expected source completed_at %v, got %v", completed, task.CompletedAt)
	}
}

func TestPriorityRankOrdering(t *testing.T) {
	if PriorityRank(PriorityCritical) <= PriorityRank(PriorityHigh) {
		t.Fatal("critical must outrank high")
	}
	if PriorityRank(PriorityHigh) <= PriorityRank(PriorityMedium) {
		t.Fatal("high must outrank medium")
	}
	if PriorityRank(PriorityMedium) <= PriorityRank(PriorityLow) {
		t.Fatal("medium must outrank low")
	}
	if PriorityRank("bogus") >= PriorityRank(PriorityLow) {
		t.Fatal("unknown priorities rank below low")
	}
}

func TestProjectSetStatusCompletedAt(t *testing.T) {
	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	project, err := NewProject(ProjectInput{ID: "p1", Title: "test", Status: ProjectStatusInProgress}, now)
	if err != nil {
		t.Fatalf("NewProject() error = %v", err)
	}
	later := now.Add(time.Hour)
	if err := project.SetStatus(ProjectStatusCompleted, later); err != nil {
		t.Fatalf("SetStatus() error = %v", err)
	}
	if project.CompletedAt == nil {
		t.Fatal("expected completed_at set")
	}
	if err := project.SetStatus(ProjectStatusOnHold, later.Add(time.Hour)); err != nil {
		t.Fatalf("SetStatus() error = %v", err)
	}
	if project.CompletedAt != nil {
		t.Fatal("expected completed_at cleared")
	}
}
