package task

import (
	"fmt"
	"math"
	"time"
)

// RetentionWindow is how long an archived task is kept before it
// expires: exactly 30 days.
const RetentionWindow = 30 * 24 * time.Hour

// IsExpired reports whether an archived task has outlived the
// retention window at now. Tasks that were never archived do not
// expire.
func IsExpired(t Task, now time.Time) bool {
	if t.ArchivedAt == nil {
		return false
	}
	return now.Sub(*t.ArchivedAt) > RetentionWindow
}

// PruneExpired removes every expired task from the collection. When
// nothing has expired it returns the input slice unchanged, so callers
// can cheaply detect that no downstream update is needed.
func PruneExpired(tasks []Task, now time.Time) []Task {
	expired := false
	for _, t := range tasks {
		if IsExpired(t, now) {
			expired = true
			break
		}
	}
	if !expired {
		return tasks
	}

	kept := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if !IsExpired(t, now) {
			kept = append(kept, t)
		}
	}
	return kept
}

// RemainingLabel describes how long an archived task will be kept:
// "Expires today" once the expiry instant is within the current day,
// otherwise "Keeps for N more days" with N rounded up to whole days.
// Non-archived tasks render as an empty label.
func RemainingLabel(t Task, now time.Time) string {
	if t.ArchivedAt == nil {
		return ""
	}

	left := t.ArchivedAt.Add(RetentionWindow).Sub(now)
	if left <= 0 {
		return "Expires today"
	}

	days := int(math.Ceil(left.Hours() / 24))
	if days == 1 {
		return "Keeps for 1 more day"
	}
	return fmt.Sprintf("Keeps for %d more days", days)
}

// Prune applies the retention policy to the collection, persisting
// only when something was removed. The policy itself is stateless;
// callers decide the cadence. Open runs it once at load, and the CLI
// re-runs it on every invocation.
func (s *Store) Prune(now time.Time) bool {
	pruned := PruneExpired(s.tasks, now)
	if len(pruned) == len(s.tasks) {
		return false
	}

	s.replace(pruned)
	return true
}
