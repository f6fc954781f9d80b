package task

import (
	"strings"
	"time"

	internalstrings "github.com/example/daytask/internal/strings"
)

// Create adds a new task at the front of the collection, so display
// order stays newest-created-first. Empty text (after whitespace
// normalization) is silently rejected and the collection is unchanged.
// Returns the created task, or nil when the input was rejected.
func (s *Store) Create(text, dueDate string, now time.Time) *Task {
	text = internalstrings.NormalizeWhitespace(text)
	if text == "" {
		return nil
	}

	created := Task{
		ID:        GenerateID(text, now),
		Text:      text,
		DueDate:   strings.TrimSpace(dueDate),
		CreatedAt: now,
	}

	next := make([]Task, 0, len(s.tasks)+1)
	next = append(next, created)
	next = append(next, s.tasks...)
	s.replace(next)

	return &created
}

// Toggle flips a task's completion state. Completing sets CompletedAt;
// un-completing clears CompletedAt and ArchivedAt, since a task can
// only live in the archive while completed. Returns the updated task,
// or nil if no task matches.
func (s *Store) Toggle(id string, now time.Time) *Task {
	index, ok := s.indexOf(id)
	if !ok {
		return nil
	}

	next := s.Tasks()
	t := &next[index]
	if t.Completed {
		t.Completed = false
		t.CompletedAt = nil
		t.ArchivedAt = nil
	} else {
		t.Completed = true
		at := now
		t.CompletedAt = &at
	}

	updated := *t
	s.replace(next)
	return &updated
}

// Edit updates a task's text and due date in place without touching
// completion state. Empty text abandons the edit entirely (cancel on
// empty, not an error); a blank due date clears any existing one.
// Returns the updated task, or nil if the edit was abandoned or no
// task matches.
func (s *Store) Edit(id, text, dueDate string) *Task {
	text = internalstrings.NormalizeWhitespace(text)
	if text == "" {
		return nil
	}

	index, ok := s.indexOf(id)
	if !ok {
		return nil
	}

	next := s.Tasks()
	next[index].Text = text
	next[index].DueDate = strings.TrimSpace(dueDate)

	updated := next[index]
	s.replace(next)
	return &updated
}

// Remove deletes a task unconditionally, whatever its state.
func (s *Store) Remove(id string) {
	index, ok := s.indexOf(id)
	if !ok {
		return
	}

	next := make([]Task, 0, len(s.tasks)-1)
	next = append(next, s.tasks[:index]...)
	next = append(next, s.tasks[index+1:]...)
	s.replace(next)
}

// ArchiveCompleted moves every completed, not-yet-archived task into
// the archive. Tasks already archived are untouched, so the operation
// is idempotent. A completed task missing its completion timestamp
// (data migrated from an older format) is backfilled with now.
func (s *Store) ArchiveCompleted(now time.Time) {
	changed := false
	next := s.Tasks()
	for i := range next {
		if !next[i].Completed || next[i].ArchivedAt != nil {
			continue
		}
		at := now
		next[i].ArchivedAt = &at
		if next[i].CompletedAt == nil {
			next[i].CompletedAt = &at
		}
		changed = true
	}

	if changed {
		s.replace(next)
	}
}

// ClearVisible removes every task that is not archived, regardless of
// completion state. The archive survives.
func (s *Store) ClearVisible() {
	next := make([]Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if t.IsArchived() {
			next = append(next, t)
		}
	}

	if len(next) != len(s.tasks) {
		s.replace(next)
	}
}

// indexOf resolves an ID or unique prefix to a collection index.
func (s *Store) indexOf(id string) (int, bool) {
	resolved, err := NewIDIndex(s.tasks).Resolve(strings.TrimSpace(id))
	if err != nil {
		return 0, false
	}

	for i := range s.tasks {
		if strings.EqualFold(s.tasks[i].ID, resolved) {
			return i, true
		}
	}

	return 0, false
}
