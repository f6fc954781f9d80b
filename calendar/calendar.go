// Package calendar aggregates tasks into a month view.
//
// A month is rendered as Sunday-first weeks of seven cells. Cells
// outside the month are empty padding; neighboring months are never
// fetched. Due dates are bucketed by their YYYY-MM-DD day key over the
// visible, incomplete tasks only.
package calendar

import (
	"time"

	"github.com/example/daytask/duedate"
	"github.com/example/daytask/task"
)

// Week is one calendar row: seven day-of-month cells, where 0 marks an
// empty padding cell outside the month.
type Week [7]int

// MonthGrid produces the weeks of a month. The first week is
// left-padded with empty cells up to the month's starting weekday
// (Sunday = 0) and the last week is right-padded to seven cells.
func MonthGrid(year int, month time.Month) []Week {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	startWeekday := int(first.Weekday())

	var weeks []Week
	var week Week
	cell := startWeekday

	for day := 1; day <= daysInMonth; day++ {
		week[cell] = day
		cell++
		if cell == len(week) {
			weeks = append(weeks, week)
			week = Week{}
			cell = 0
		}
	}

	if cell > 0 {
		weeks = append(weeks, week)
	}

	return weeks
}

// DayEntry aggregates the tasks due on one calendar day.
type DayEntry struct {
	// Count is the number of incomplete visible tasks due that day.
	Count int

	// Texts lists those tasks' display texts in collection order.
	Texts []string
}

// DueIndex buckets the visible, incomplete tasks by due-date day key.
// Completed tasks never count toward a day's badge, and malformed due
// dates simply fall out of the index.
func DueIndex(tasks []task.Task) map[string]DayEntry {
	index := make(map[string]DayEntry)
	for _, t := range tasks {
		if t.IsArchived() || t.Completed {
			continue
		}
		key, ok := duedate.Parse(t.DueDate).DayKey()
		if !ok {
			continue
		}
		entry := index[key]
		entry.Count++
		entry.Texts = append(entry.Texts, t.Text)
		index[key] = entry
	}
	return index
}

// Anchor is the month a calendar view is looking at.
type Anchor struct {
	Year  int
	Month time.Month
}

// AnchorAt returns the anchor for the month containing t.
func AnchorAt(t time.Time) Anchor {
	return Anchor{Year: t.Year(), Month: t.Month()}
}

// Next moves the anchor one month forward. Navigation has no bounds.
func (a Anchor) Next() Anchor {
	if a.Month == time.December {
		return Anchor{Year: a.Year + 1, Month: time.January}
	}
	return Anchor{Year: a.Year, Month: a.Month + 1}
}

// Prev moves the anchor one month back.
func (a Anchor) Prev() Anchor {
	if a.Month == time.January {
		return Anchor{Year: a.Year - 1, Month: time.December}
	}
	return Anchor{Year: a.Year, Month: a.Month - 1}
}

// DayKey returns the YYYY-MM-DD key for a day of the anchored month.
func (a Anchor) DayKey(day int) string {
	return time.Date(a.Year, a.Month, day, 0, 0, 0, 0, time.Local).Format("2006-01-02")
}

// Contains reports whether t falls inside the anchored month.
func (a Anchor) Contains(t time.Time) bool {
	return t.Year() == a.Year && t.Month() == a.Month
}
