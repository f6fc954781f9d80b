// Package task implements the task lifecycle for a personal tracker.
//
// The Store owns the one task collection. Tasks are created incomplete
// and visible, toggled complete, archived in bulk, and finally either
// un-completed back into view, deleted, or expired by the retention
// policy 30 days after archival.
//
// The public API mirrors the CLI commands:
//   - Create, Toggle, Edit, Remove for single-task lifecycle
//   - ArchiveCompleted, ClearVisible for bulk actions
//   - Visible, Archived, ByFilter, Counts for querying
//   - Prune for applying the retention policy
//
// Every function that depends on the current time takes it as an
// explicit parameter; the package never reads the wall clock itself.
package task

import (
	"errors"
	"time"
)

var (
	// ErrTaskNotFound is returned when no task matches an ID or prefix.
	ErrTaskNotFound = errors.New("task not found")

	// ErrAmbiguousIDPrefix is returned when an ID prefix matches multiple tasks.
	ErrAmbiguousIDPrefix = errors.New("ambiguous task ID prefix")

	// ErrInvalidFilter is returned when a filter name is not recognized.
	ErrInvalidFilter = errors.New("invalid filter")
)

// Task is a single tracked item.
type Task struct {
	// ID is a unique identifier (8-char alphanumeric, derived from the
	// initial text + creation time).
	ID string `json:"id"`

	// Text is the task's display text, non-empty after normalization.
	Text string `json:"text"`

	// Completed reports whether the task has been marked done.
	Completed bool `json:"completed"`

	// DueDate is the stored due-date string ("" when unset). Date-only
	// values carry no time component; date-time values carry an
	// explicit one. See package duedate.
	DueDate string `json:"due_date,omitempty"`

	// CreatedAt is when the task was created.
	CreatedAt time.Time `json:"created_at"`

	// CompletedAt is when the task was marked complete (nil while incomplete).
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	// ArchivedAt is when the task was archived (nil while visible).
	// Only a completed task can be archived.
	ArchivedAt *time.Time `json:"archived_at,omitempty"`
}

// IsArchived reports whether the task has been moved to the archive.
func (t Task) IsArchived() bool {
	return t.ArchivedAt != nil
}

// IsVisible reports whether the task appears in normal filtered views.
func (t Task) IsVisible() bool {
	return t.ArchivedAt == nil
}
