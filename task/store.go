package task

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	internalstrings "github.com/example/daytask/internal/strings"
)

// Blobstore is the persistence adapter: an opaque byte-blob store.
// The Store treats it as best-effort durability; the in-memory
// collection stays authoritative for the session.
type Blobstore interface {
	// Load returns the stored blob, or nil if nothing has been stored.
	Load() ([]byte, error)

	// Save replaces the stored blob.
	Save(data []byte) error
}

// Store owns the task collection and all mutating operations.
//
// Every mutation replaces the collection wholesale (old slice -> new
// slice), so readers holding a snapshot never observe a partial
// update. Persistence fires as a side effect after each mutation and
// never rolls the mutation back.
type Store struct {
	blobs Blobstore
	tasks []Task

	// OnSaveError, when non-nil, observes persistence failures.
	OnSaveError func(error)
}

// Open loads the task collection from the blob store and applies the
// retention policy to discard stale archived tasks immediately.
//
// Malformed persisted data downgrades to an empty collection; only an
// I/O failure from the blob store is an error.
func Open(blobs Blobstore, now time.Time) (*Store, error) {
	data, err := blobs.Load()
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}

	store := &Store{
		blobs: blobs,
		tasks: decodeTasks(data, now),
	}
	store.Prune(now)
	return store, nil
}

// decodeTasks deserializes a task collection blob. Fields absent in
// older data default safely: a completed task without a completion
// timestamp gets one now, and completion-state invariants are
// re-established. A malformed or non-array blob is treated as no data.
func decodeTasks(data []byte, now time.Time) []Task {
	if len(data) == 0 {
		return nil
	}

	var tasks []Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil
	}

	kept := tasks[:0]
	for _, t := range tasks {
		t.Text = internalstrings.NormalizeWhitespace(t.Text)
		if t.ID == "" || t.Text == "" {
			continue
		}
		if !t.Completed {
			t.CompletedAt = nil
			t.ArchivedAt = nil
		} else if t.CompletedAt == nil {
			at := now
			t.CompletedAt = &at
		}
		kept = append(kept, t)
	}

	return kept
}

// Tasks returns a snapshot of the whole collection, archived included,
// in display order (newest created first).
func (s *Store) Tasks() []Task {
	return append([]Task(nil), s.tasks...)
}

// Get returns the task matching an ID or unique ID prefix.
func (s *Store) Get(id string) (*Task, error) {
	resolved, err := NewIDIndex(s.tasks).Resolve(strings.TrimSpace(id))
	if err != nil {
		return nil, err
	}

	for i := range s.tasks {
		if strings.EqualFold(s.tasks[i].ID, resolved) {
			found := s.tasks[i]
			return &found, nil
		}
	}

	return nil, ErrTaskNotFound
}

// replace swaps in the next collection and persists it.
func (s *Store) replace(tasks []Task) {
	s.tasks = tasks
	s.persist()
}

// persist serializes the collection into the blob store. Failures are
// reported through OnSaveError and otherwise ignored: durability is
// best-effort and must never roll back an applied mutation.
func (s *Store) persist() {
	data, err := json.MarshalIndent(s.tasks, "", "  ")
	if err == nil {
		err = s.blobs.Save(data)
	}
	if err != nil && s.OnSaveError != nil {
		s.OnSaveError(fmt.Errorf("save tasks: %w", err))
	}
}
