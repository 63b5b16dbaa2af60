package domain

import "strings"

// UserRef references an assignee. Display order of a task's assignee list is
// meaningful; duplicate ids are treated as the same person.
type UserRef struct {
	ID   string
	Name string
}

// normalizeAssignees trims entries and drops empties and duplicate ids while
// preserving display order.
func normalizeAssignees(in []UserRef) []UserRef {
	if len(in) == 0 {
		return nil
	}
	out := make([]UserRef, 0, len(in))
	seen := map[string]struct{}{}
	for _, ref := range in {
		ref.ID = strings.TrimSpace(ref.ID)
		ref.Name = strings.TrimSpace(ref.Name)
		if ref.ID == "" {
			continue
		}
		if _, ok := seen[ref.ID]; ok {
			continue
		}
		seen[ref.ID] = struct{}{}
		out = append(out, ref)
	}
	return out
}
