package app

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrNotFound and related errors describe coordinator failures.
var (
	ErrNotFound     = errors.New("not found")
	ErrOffline      = errors.New("offline")
	ErrStaleRefresh = errors.New("stale refresh discarded")
)

// FieldErrors carries field-level validation failures back to the form.
// Invalid drafts never reach the collection.
type FieldErrors map[string]string

func (f FieldErrors) Error() string {
	fields := make([]string, 0, len(f))
	for field := range f {
		fields = append(fields, field)
	}
	slices.Sort(fields)
	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+f[field])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// MutationFailure is a failed backing request for an optimistic mutation.
// By the time the caller sees it the collection has been rolled back to its
// pre-mutation snapshot. Non-fatal, no automatic retry.
type MutationFailure struct {
	Op     string
	ItemID string
	Err    error
}

func (e *MutationFailure) Error() string {
	return fmt.Sprintf("%s %s: %v (rolled back)", e.Op, e.ItemID, e.Err)
}

func (e *MutationFailure) Unwrap() error { return e.Err }

// FetchFailure is a failed refresh or initial load. The previous raw
// collection is left intact; there is no partial overwrite.
type FetchFailure struct {
	Err error
}

func (e *FetchFailure) Error() string {
	return fmt.Sprintf("fetch failed: %v", e.Err)
}

func (e *FetchFailure) Unwrap() error { return e.Err }
