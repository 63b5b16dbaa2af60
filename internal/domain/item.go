package domain

import "time"

// The list engine is generic over Task and Project. These accessors are the
// shared contract both shapes implement.

func (t Task) ItemID() string      { return t.ID }
func (t Task) SortTitle() string   { return t.Title }
func (t Task) StatusKey() string   { return string(t.Status) }
func (t Task) StatusRank() int     { return TaskStatusRank(t.Status) }
func (t Task) PriorityKey() string { return string(t.Priority) }
func (t Task) PriorityRank() int   { return PriorityRank(t.Priority) }
func (t Task) DueAt() *time.Time   { return t.DueDate }
func (t Task) ScopeKey() string    { return t.ProjectRef }

// SearchFields returns the haystacks for substring search: title, description
// and the resolved project name.
func (t Task) SearchFields() []string {
	return []string{t.Title, t.Description, t.ProjectName}
}

func (p Project) ItemID() string      { return p.ID }
func (p Project) SortTitle() string   { return p.Title }
func (p Project) StatusKey() string   { return string(p.Status) }
func (p Project) StatusRank() int     { return ProjectStatusRank(p.Status) }
func (p Project) PriorityKey() string { return string(p.Priority) }
func (p Project) PriorityRank() int   { return PriorityRank(p.Priority) }
func (p Project) DueAt() *time.Time   { return p.DueDate }

// ScopeKey is empty: projects are not scoped by a parent collection.
func (p Project) ScopeKey() string { return "" }

func (p Project) SearchFields() []string {
	return []string{p.Title, p.Description}
}
