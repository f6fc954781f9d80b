package task

import (
	"fmt"
	"sort"
	"time"

	"github.com/example/daytask/duedate"
	internalstrings "github.com/example/daytask/internal/strings"
)

// Filter selects a slice of the visible tasks.
type Filter string

const (
	// FilterAll selects every visible task.
	FilterAll Filter = "all"

	// FilterActive selects visible tasks that are not completed.
	FilterActive Filter = "active"

	// FilterCompleted selects visible tasks that are completed.
	FilterCompleted Filter = "completed"
)

// ValidFilters returns all valid filter values.
func ValidFilters() []Filter {
	return []Filter{FilterAll, FilterActive, FilterCompleted}
}

// ParseFilter normalizes a filter name, accepting any casing and
// surrounding whitespace.
func ParseFilter(value string) (Filter, error) {
	filter := Filter(internalstrings.NormalizeLowerTrimSpace(value))
	if filter == "" {
		return FilterAll, nil
	}
	for _, valid := range ValidFilters() {
		if filter == valid {
			return filter, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidFilter, value)
}

// Visible returns the tasks shown in normal views, in display order.
func (s *Store) Visible() []Task {
	visible := make([]Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if t.IsVisible() {
			visible = append(visible, t)
		}
	}
	return visible
}

// Archived returns the archived tasks, newest-archived first.
func (s *Store) Archived() []Task {
	archived := make([]Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if t.IsArchived() {
			archived = append(archived, t)
		}
	}

	sort.SliceStable(archived, func(i, j int) bool {
		return archived[i].ArchivedAt.After(*archived[j].ArchivedAt)
	})

	return archived
}

// ByFilter returns the visible tasks selected by filter.
func (s *Store) ByFilter(filter Filter) []Task {
	visible := s.Visible()
	if filter == FilterAll || filter == "" {
		return visible
	}

	selected := visible[:0]
	for _, t := range visible {
		switch filter {
		case FilterActive:
			if !t.Completed {
				selected = append(selected, t)
			}
		case FilterCompleted:
			if t.Completed {
				selected = append(selected, t)
			}
		}
	}
	return selected
}

// Counts aggregates the visible tasks.
type Counts struct {
	// Total is the number of visible tasks.
	Total int

	// Completed is the number of visible completed tasks.
	Completed int

	// Remaining is the number of visible incomplete tasks.
	Remaining int

	// Overdue is the number of visible incomplete tasks whose due date
	// has passed.
	Overdue int
}

// Counts computes aggregates over the visible tasks at now.
func (s *Store) Counts(now time.Time) Counts {
	var counts Counts
	for _, t := range s.tasks {
		if t.IsArchived() {
			continue
		}
		counts.Total++
		if t.Completed {
			counts.Completed++
			continue
		}
		counts.Remaining++
		if duedate.Parse(t.DueDate).IsOverdue(now) {
			counts.Overdue++
		}
	}
	return counts
}
