package task

import (
	"errors"
	"testing"
	"time"
)

func TestParseFilter(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		want    Filter
		wantErr bool
	}{
		{
			name:  "all",
			input: "all",
			want:  FilterAll,
		},
		{
			name:  "active uppercase",
			input: "ACTIVE",
			want:  FilterActive,
		},
		{
			name:  "completed padded",
			input: "  completed ",
			want:  FilterCompleted,
		},
		{
			name:  "empty defaults to all",
			input: "",
			want:  FilterAll,
		},
		{
			name:    "unknown",
			input:   "archivedish",
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseFilter(tc.input)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidFilter) {
					t.Fatalf("expected ErrInvalidFilter, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("ParseFilter(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestByFilter(t *testing.T) {
	store, _ := newTestStore(t)
	now := testNow()

	active := store.Create("active task", "", now)
	done := store.Create("done task", "", now.Add(time.Second))
	store.Toggle(done.ID, now.Add(time.Minute))

	hidden := store.Create("hidden task", "", now.Add(2*time.Second))
	store.Toggle(hidden.ID, now.Add(time.Minute))
	// Archive only the task completed last; un-complete keeps the other
	// one visible completed.
	store.Toggle(done.ID, now.Add(2*time.Minute))
	store.ArchiveCompleted(now.Add(3*time.Minute))
	store.Toggle(done.ID, now.Add(4*time.Minute))

	all := store.ByFilter(FilterAll)
	if len(all) != 2 {
		t.Fatalf("expected 2 visible tasks, got %d", len(all))
	}

	activeTasks := store.ByFilter(FilterActive)
	if len(activeTasks) != 1 || activeTasks[0].ID != active.ID {
		t.Fatalf("expected only %s active, got %+v", active.ID, activeTasks)
	}

	completedTasks := store.ByFilter(FilterCompleted)
	if len(completedTasks) != 1 || completedTasks[0].ID != done.ID {
		t.Fatalf("expected only %s completed, got %+v", done.ID, completedTasks)
	}
}

func TestArchived_SortsNewestFirst(t *testing.T) {
	store, _ := newTestStore(t)
	now := testNow()

	older := store.Create("older", "", now)
	store.Toggle(older.ID, now)
	store.ArchiveCompleted(now.Add(time.Hour))

	newer := store.Create("newer", "", now.Add(time.Second))
	store.Toggle(newer.ID, now.Add(time.Second))
	store.ArchiveCompleted(now.Add(48 * time.Hour))

	archived := store.Archived()
	if len(archived) != 2 {
		t.Fatalf("expected 2 archived tasks, got %d", len(archived))
	}
	if archived[0].ID != newer.ID || archived[1].ID != older.ID {
		t.Fatalf("expected newest-archived first, got %s then %s", archived[0].ID, archived[1].ID)
	}
}

func TestCounts(t *testing.T) {
	store, _ := newTestStore(t)
	now := time.Date(2024, 6, 5, 12, 0, 0, 0, time.Local)

	store.Create("overdue", "2024-06-01", now)
	store.Create("due later", "2024-06-20", now.Add(time.Second))
	store.Create("no due date", "", now.Add(2*time.Second))
	store.Create("bad due date", "garbage", now.Add(3*time.Second))

	done := store.Create("done and overdue", "2024-06-01", now.Add(4*time.Second))
	store.Toggle(done.ID, now.Add(time.Minute))

	gone := store.Create("archived", "2024-06-01", now.Add(5*time.Second))
	store.Toggle(gone.ID, now.Add(time.Minute))
	store.Toggle(done.ID, now.Add(2*time.Minute))
	store.ArchiveCompleted(now.Add(3*time.Minute))
	store.Toggle(done.ID, now.Add(4*time.Minute))

	counts := store.Counts(now.Add(time.Hour))
	if counts.Total != 5 {
		t.Errorf("Total = %d, want 5", counts.Total)
	}
	if counts.Completed != 1 {
		t.Errorf("Completed = %d, want 1", counts.Completed)
	}
	if counts.Remaining != 4 {
		t.Errorf("Remaining = %d, want 4", counts.Remaining)
	}
	// Only the visible, incomplete, overdue task counts; the completed
	// one and the archived one do not.
	if counts.Overdue != 1 {
		t.Errorf("Overdue = %d, want 1", counts.Overdue)
	}
}
