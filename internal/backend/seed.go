package backend

import (
	"time"

	"github.com/hylla/listan/internal/domain"
)

// SeedSnapshot builds the demo dataset the client serves on first fetch.
// Everything is anchored to now so due dates stay plausible.
func SeedSnapshot(now time.Time) domain.Snapshot {
	now = now.UTC()
	day := func(offset int) *time.Time {
		ts := now.AddDate(0, 0, offset)
		return &ts
	}

	ana := domain.UserRef{ID: "u-1", Name: "Ana Flores"}
	jonas := domain.UserRef{ID: "u-2", Name: "Jonas Berg"}
	mei := domain.UserRef{ID: "u-3", Name: "Mei Tanaka"}
	sam := domain.UserRef{ID: "u-4", Name: "Sam Okafor"}

	projects := []domain.ProjectRecord{
		{
			ID:          "p-website",
			Title:       "Website Redesign",
			Description: "New marketing site with a refreshed brand.",
			Status:      "in_progress",
			Priority:    "high",
			DueDate:     day(21),
			Assignees:   []domain.UserRef{ana, jonas},
			CreatedAt:   now.AddDate(0, -2, 0),
			UpdatedAt:   now.AddDate(0, 0, -3),
		},
		{
			ID:          "p-mobile",
			Title:       "Mobile App",
			Description: "Companion app for iOS and Android.",
			Status:      "not_started",
			Priority:    "medium",
			DueDate:     day(60),
			Assignees:   []domain.UserRef{mei},
			CreatedAt:   now.AddDate(0, -1, 0),
			UpdatedAt:   now.AddDate(0, 0, -10),
		},
		{
			ID:          "p-infra",
			Title:       "Infrastructure Migration",
			Description: "Move workloads to the new cluster.",
			Status:      "on_hold",
			Priority:    "critical",
			DueDate:     day(14),
			Assignees:   []domain.UserRef{sam, ana},
			CreatedAt:   now.AddDate(0, -3, 0),
			UpdatedAt:   now.AddDate(0, 0, -1),
		},
	}

	completed := now.AddDate(0, 0, -2)
	tasks := []domain.TaskRecord{
		{
			ID:          "t-1",
			Title:       "Draft landing page copy",
			Description: "Hero section, pricing table, and the FAQ.\n\n- tone: friendly\n- keep it under 400 words",
			Status:      "in_progress",
			Priority:    "high",
			DueDate:     day(3),
			ProjectRef:  "p-website",
			Assignees:   []domain.UserRef{ana},
			CreatedAt:   now.AddDate(0, 0, -12),
			UpdatedAt:   now.AddDate(0, 0, -1),
		},
		{
			ID:          "t-2",
			Title:       "Design system tokens",
			Description: "Color, spacing, and typography tokens shared with the app.",
			Status:      "todo",
			Priority:    "medium",
			DueDate:     day(7),
			ProjectRef:  "p-website",
			Assignees:   []domain.UserRef{jonas, ana},
			CreatedAt:   now.AddDate(0, 0, -9),
			UpdatedAt:   now.AddDate(0, 0, -9),
		},
		{
			ID:          "t-3",
			Title:       "Set up CI pipeline",
			Description: "Lint, test, and preview deploys on every branch.",
			Status:      "completed",
			Priority:    "high",
			DueDate:     day(-4),
			ProjectRef:  "p-infra",
			Assignees:   []domain.UserRef{sam},
			CompletedAt: &completed,
			CreatedAt:   now.AddDate(0, 0, -20),
			UpdatedAt:   completed,
		},
		{
			ID:          "t-4",
			Title:       "Audit login flow",
			Description: "Session expiry is inconsistent between clients.",
			Status:      "blocked",
			Priority:    "critical",
			DueDate:     day(-1),
			ProjectRef:  "p-mobile",
			Assignees:   []domain.UserRef{mei, sam},
			CreatedAt:   now.AddDate(0, 0, -6),
			UpdatedAt:   now.AddDate(0, 0, -2),
		},
		{
			ID:          "t-5",
			Title:       "Write onboarding screens",
			Description: "Three-step carousel with skip.",
			Status:      "todo",
			Priority:    "low",
			DueDate:     day(10),
			ProjectRef:  "p-mobile",
			Assignees:   []domain.UserRef{mei},
			CreatedAt:   now.AddDate(0, 0, -5),
			UpdatedAt:   now.AddDate(0, 0, -5),
		},
		{
			ID:          "t-6",
			Title:       "Rotate TLS certificates",
			Description: "Staging first, then production.",
			Status:      "in_progress",
			Priority:    "critical",
			DueDate:     day(1),
			ProjectRef:  "p-infra",
			Assignees:   []domain.UserRef{sam},
			CreatedAt:   now.AddDate(0, 0, -3),
			UpdatedAt:   now,
		},
		{
			ID:         "t-7",
			Title:      "Triage inbox feedback",
			Status:     "todo",
			Priority:   "low",
			DueDate:    day(5),
			ProjectRef: "p-archived", // dangling on purpose: renders as Unknown
			CreatedAt:  now.AddDate(0, 0, -2),
			UpdatedAt:  now.AddDate(0, 0, -2),
		},
	}

	return domain.Snapshot{Projects: projects, Tasks: tasks}
}
