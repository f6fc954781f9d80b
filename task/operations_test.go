package task

import (
	"testing"
	"time"
)

func TestCreate(t *testing.T) {
	store, _ := newTestStore(t)
	now := testNow()

	created := store.Create("Buy milk", "", now)
	if created == nil {
		t.Fatal("expected a created task")
	}
	if created.ID == "" {
		t.Error("expected a non-empty ID")
	}
	if created.Completed {
		t.Error("new tasks start incomplete")
	}
	if created.CompletedAt != nil || created.ArchivedAt != nil {
		t.Error("new tasks have no completion or archival timestamps")
	}
	if !created.CreatedAt.Equal(now) {
		t.Errorf("expected CreatedAt %v, got %v", now, created.CreatedAt)
	}
}

func TestCreate_EmptyTextIsSilentNoop(t *testing.T) {
	store, blobs := newTestStore(t)

	store.Create("seed", "", testNow())
	savesBefore := blobs.saves

	cases := []string{"", "   ", "\t\n ", " \n\t\n "}
	for _, text := range cases {
		if created := store.Create(text, "", testNow()); created != nil {
			t.Errorf("Create(%q) should be rejected, got %+v", text, created)
		}
	}

	if got := len(store.Tasks()); got != 1 {
		t.Fatalf("collection should be unchanged, got %d tasks", got)
	}
	if blobs.saves != savesBefore {
		t.Error("rejected creates must not persist")
	}
}

func TestCreate_NormalizesWhitespace(t *testing.T) {
	store, _ := newTestStore(t)

	created := store.Create("  Buy   more\tmilk \n", "", testNow())
	if created == nil {
		t.Fatal("expected a created task")
	}
	if created.Text != "Buy more milk" {
		t.Fatalf("expected normalized text, got %q", created.Text)
	}
}

func TestCreate_InsertsAtFront(t *testing.T) {
	store, _ := newTestStore(t)
	now := testNow()

	store.Create("first", "", now)
	store.Create("second", "", now.Add(time.Second))
	store.Create("third", "", now.Add(2*time.Second))

	tasks := store.Tasks()
	if len(tasks) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(tasks))
	}
	for i, want := range []string{"third", "second", "first"} {
		if tasks[i].Text != want {
			t.Errorf("position %d = %q, want %q", i, tasks[i].Text, want)
		}
	}
}

func TestCreate_KeepsDueDate(t *testing.T) {
	store, _ := newTestStore(t)

	created := store.Create("pay rent", " 2024-06-10 ", testNow())
	if created.DueDate != "2024-06-10" {
		t.Fatalf("expected trimmed due date, got %q", created.DueDate)
	}
}

func TestToggle_IsItsOwnInverse(t *testing.T) {
	store, _ := newTestStore(t)
	now := testNow()

	created := store.Create("Buy milk", "", now)

	completed := store.Toggle(created.ID, now.Add(time.Minute))
	if completed == nil {
		t.Fatal("expected an updated task")
	}
	if !completed.Completed {
		t.Error("expected task to be completed")
	}
	if completed.CompletedAt == nil || !completed.CompletedAt.Equal(now.Add(time.Minute)) {
		t.Errorf("expected CompletedAt set to toggle time, got %v", completed.CompletedAt)
	}

	reverted := store.Toggle(created.ID, now.Add(2*time.Minute))
	if reverted.Completed {
		t.Error("expected task to be incomplete again")
	}
	if reverted.CompletedAt != nil {
		t.Error("un-completing must clear CompletedAt")
	}
	if reverted.ArchivedAt != nil {
		t.Error("un-completing must clear ArchivedAt")
	}
}

func TestToggle_UncompletingArchivedTaskUnarchives(t *testing.T) {
	store, _ := newTestStore(t)
	now := testNow()

	created := store.Create("Buy milk", "", now)
	store.Toggle(created.ID, now)
	store.ArchiveCompleted(now.Add(time.Hour))

	if len(store.Archived()) != 1 {
		t.Fatal("expected task in the archive")
	}

	reverted := store.Toggle(created.ID, now.Add(2*time.Hour))
	if reverted == nil {
		t.Fatal("expected an updated task")
	}
	if reverted.ArchivedAt != nil {
		t.Error("an archived task can only exist while completed")
	}
	if len(store.Archived()) != 0 {
		t.Error("archive should be empty after un-completing")
	}
	if len(store.Visible()) != 1 {
		t.Error("task should be visible again")
	}
}

func TestToggle_UnknownIDIsNoop(t *testing.T) {
	store, _ := newTestStore(t)
	store.Create("Buy milk", "", testNow())

	if updated := store.Toggle("zzzzzzzz", testNow()); updated != nil {
		t.Fatalf("expected nil for unknown ID, got %+v", updated)
	}
}

func TestToggle_ResolvesUniquePrefix(t *testing.T) {
	store, _ := newTestStore(t)
	created := store.Create("Buy milk", "", testNow())

	updated := store.Toggle(created.ID[:4], testNow())
	if updated == nil || updated.ID != created.ID {
		t.Fatalf("expected prefix to resolve to %s, got %+v", created.ID, updated)
	}
}

func TestEdit(t *testing.T) {
	store, _ := newTestStore(t)
	now := testNow()

	created := store.Create("Buy milk", "2024-06-10", now)
	store.Toggle(created.ID, now)

	updated := store.Edit(created.ID, "Buy oat milk", "2024-06-12T09:00")
	if updated == nil {
		t.Fatal("expected an updated task")
	}
	if updated.Text != "Buy oat milk" {
		t.Errorf("expected updated text, got %q", updated.Text)
	}
	if updated.DueDate != "2024-06-12T09:00" {
		t.Errorf("expected updated due date, got %q", updated.DueDate)
	}
	if !updated.Completed || updated.CompletedAt == nil {
		t.Error("edit must not touch completion state")
	}
}

func TestEdit_EmptyTextAbandonsEdit(t *testing.T) {
	store, blobs := newTestStore(t)

	created := store.Create("Buy milk", "2024-06-10", testNow())
	savesBefore := blobs.saves

	if updated := store.Edit(created.ID, "   ", ""); updated != nil {
		t.Fatalf("expected abandoned edit, got %+v", updated)
	}

	current, err := store.Get(created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if current.Text != "Buy milk" || current.DueDate != "2024-06-10" {
		t.Errorf("task should be unchanged, got %+v", current)
	}
	if blobs.saves != savesBefore {
		t.Error("abandoned edits must not persist")
	}
}

func TestEdit_BlankDueDateClears(t *testing.T) {
	store, _ := newTestStore(t)

	created := store.Create("Buy milk", "2024-06-10", testNow())
	updated := store.Edit(created.ID, "Buy milk", "")
	if updated.DueDate != "" {
		t.Fatalf("expected cleared due date, got %q", updated.DueDate)
	}
}

func TestRemove(t *testing.T) {
	store, _ := newTestStore(t)
	now := testNow()

	keep := store.Create("keep", "", now)
	gone := store.Create("gone", "", now.Add(time.Second))

	store.Remove(gone.ID)

	tasks := store.Tasks()
	if len(tasks) != 1 || tasks[0].ID != keep.ID {
		t.Fatalf("expected only %s to remain, got %+v", keep.ID, tasks)
	}

	// Removing works in any state, archived included.
	store.Toggle(keep.ID, now)
	store.ArchiveCompleted(now)
	store.Remove(keep.ID)
	if len(store.Tasks()) != 0 {
		t.Fatal("expected empty collection")
	}
}

func TestArchiveCompleted(t *testing.T) {
	store, _ := newTestStore(t)
	now := testNow()

	done := store.Create("done", "", now)
	open := store.Create("still open", "", now.Add(time.Second))
	store.Toggle(done.ID, now.Add(time.Minute))

	archiveTime := now.Add(time.Hour)
	store.ArchiveCompleted(archiveTime)

	archived := store.Archived()
	if len(archived) != 1 || archived[0].ID != done.ID {
		t.Fatalf("expected %s archived, got %+v", done.ID, archived)
	}
	if !archived[0].ArchivedAt.Equal(archiveTime) {
		t.Errorf("expected ArchivedAt %v, got %v", archiveTime, archived[0].ArchivedAt)
	}

	visible := store.Visible()
	if len(visible) != 1 || visible[0].ID != open.ID {
		t.Fatalf("expected %s to stay visible, got %+v", open.ID, visible)
	}
}

func TestArchiveCompleted_IsIdempotent(t *testing.T) {
	store, _ := newTestStore(t)
	now := testNow()

	created := store.Create("done", "", now)
	store.Toggle(created.ID, now)

	firstArchive := now.Add(time.Hour)
	store.ArchiveCompleted(firstArchive)
	store.ArchiveCompleted(now.Add(48 * time.Hour))

	archived := store.Archived()
	if len(archived) != 1 {
		t.Fatalf("expected 1 archived task, got %d", len(archived))
	}
	if !archived[0].ArchivedAt.Equal(firstArchive) {
		t.Errorf("second archive must not touch ArchivedAt: got %v, want %v",
			archived[0].ArchivedAt, firstArchive)
	}
}

func TestArchiveCompleted_BackfillsMissingCompletedAt(t *testing.T) {
	// Data marked complete without a timestamp, as migrated from an
	// older format, bypassing Open's own backfill.
	blobs := &memBlobstore{}
	store, err := Open(blobs, testNow())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	store.tasks = []Task{{ID: "abc12345", Text: "migrated", Completed: true}}

	archiveTime := testNow().Add(time.Hour)
	store.ArchiveCompleted(archiveTime)

	archived := store.Archived()
	if len(archived) != 1 {
		t.Fatalf("expected 1 archived task, got %d", len(archived))
	}
	if archived[0].CompletedAt == nil || !archived[0].CompletedAt.Equal(archiveTime) {
		t.Errorf("expected CompletedAt backfilled to %v, got %v", archiveTime, archived[0].CompletedAt)
	}
}

func TestClearVisible(t *testing.T) {
	store, _ := newTestStore(t)
	now := testNow()

	archivedTask := store.Create("archived", "", now)
	store.Toggle(archivedTask.ID, now)
	store.ArchiveCompleted(now)

	store.Create("open", "", now.Add(time.Second))
	doneTask := store.Create("done but visible", "", now.Add(2*time.Second))
	store.Toggle(doneTask.ID, now.Add(time.Minute))

	store.ClearVisible()

	if len(store.Visible()) != 0 {
		t.Errorf("expected no visible tasks, got %+v", store.Visible())
	}

	archived := store.Archived()
	if len(archived) != 1 || archived[0].ID != archivedTask.ID {
		t.Fatalf("archive must survive clearing, got %+v", archived)
	}
}
