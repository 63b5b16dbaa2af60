// Package engine derives the visible collection shown by a list screen from
// the raw collection and per-screen filter state, and reshapes it for the
// active view mode. Everything in this package is pure: the same inputs always
// produce the same ordered output, and the raw collection is never mutated.
package engine

import (
	"slices"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// FilterAll disables a filter stage.
const FilterAll = "all"

// SortKey selects the sort comparator applied after filtering.
type SortKey string

// Supported sort keys. An unknown key falls back to insertion order.
const (
	SortNone     SortKey = ""
	SortDueDate  SortKey = "due_date"
	SortPriority SortKey = "priority"
	SortStatus   SortKey = "status"
	SortTitle    SortKey = "title"
)

// Item is the contract shared by the task and project shapes.
type Item interface {
	ItemID() string
	SortTitle() string
	SearchFields() []string
	StatusKey() string
	StatusRank() int
	PriorityKey() string
	PriorityRank() int
	DueAt() *time.Time
	ScopeKey() string
}

// FilterState holds the per-screen filter criteria. Fields are independent
// and combine with logical AND; empty or FilterAll means "no constraint".
type FilterState struct {
	SearchText string
	Status     string
	Priority   string
	Scope      string
	Sort       SortKey
}

// IsDefault reports whether the state constrains nothing.
func (f FilterState) IsDefault() bool {
	return strings.TrimSpace(f.SearchText) == "" &&
		stageDisabled(f.Status) && stageDisabled(f.Priority) && stageDisabled(f.Scope) &&
		f.Sort == SortNone
}

// titleCollator orders titles locale-aware; constructed once, used read-only.
var titleCollator = collate.New(language.English, collate.IgnoreCase)

// DeriveVisible derives the ordered visible collection from the raw
// collection and filter state. The input slice is never modified.
func DeriveVisible[T Item](items []T, f FilterState) []T {
	needle := strings.ToLower(strings.TrimSpace(f.SearchText))

	out := make([]T, 0, len(items))
	for _, item := range items {
		if needle != "" && !matchesSearch(item, needle) {
			continue
		}
		if !stageDisabled(f.Status) && item.StatusKey() != f.Status {
			continue
		}
		if !stageDisabled(f.Priority) && item.PriorityKey() != f.Priority {
			continue
		}
		if !stageDisabled(f.Scope) && item.ScopeKey() != f.Scope {
			continue
		}
		out = append(out, item)
	}

	sortVisible(out, f.Sort)
	return out
}

func stageDisabled(value string) bool {
	return value == "" || value == FilterAll
}

// matchesSearch reports whether any search field contains the needle,
// case-insensitive.
func matchesSearch(item Item, needle string) bool {
	for _, field := range item.SearchFields() {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// sortVisible applies the stable comparator for the sort key in place.
// Unknown keys keep insertion order.
func sortVisible[T Item](items []T, key SortKey) {
	switch key {
	case SortDueDate:
		slices.SortStableFunc(items, compareDueDate[T])
	case SortPriority:
		slices.SortStableFunc(items, func(a, b T) int {
			return b.PriorityRank() - a.PriorityRank()
		})
	case SortStatus:
		slices.SortStableFunc(items, func(a, b T) int {
			return a.StatusRank() - b.StatusRank()
		})
	case SortTitle:
		slices.SortStableFunc(items, func(a, b T) int {
			return titleCollator.CompareString(a.SortTitle(), b.SortTitle())
		})
	}
}

// compareDueDate orders dated items ascending; undated items sort after all
// dated ones regardless of direction.
func compareDueDate[T Item](a, b T) int {
	da, db := a.DueAt(), b.DueAt()
	switch {
	case da == nil && db == nil:
		return 0
	case da == nil:
		return 1
	case db == nil:
		return -1
	default:
		return da.Compare(*db)
	}
}
