package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/example/daytask/duedate"
	"github.com/example/daytask/internal/ui"
	"github.com/example/daytask/task"
)

// printTaskTable prints tasks in a table format.
func printTaskTable(tasks []task.Task, now time.Time) {
	if len(tasks) == 0 {
		fmt.Println("No tasks found.")
		return
	}

	fmt.Print(formatTaskTable(tasks, nil, ui.HighlightID, now))
}

func formatTaskTable(tasks []task.Task, prefixLengths map[string]int, highlight func(string, int) string, now time.Time) string {
	builder := ui.NewTableBuilder([]string{"ID", "STATE", "AGE", "DUE", "TEXT"}, len(tasks))

	if prefixLengths == nil {
		prefixLengths = taskIDPrefixLengths(tasks)
	}

	for _, t := range tasks {
		text := ui.TruncateTableCell(t.Text)
		prefixLen := prefixLengths[strings.ToLower(t.ID)]
		highlighted := highlight(t.ID, prefixLen)
		row := []string{
			highlighted,
			stateCell(t),
			ui.FormatDurationShort(now.Sub(t.CreatedAt)),
			dueCell(t, now),
			text,
		}
		builder.AddRow(row)
	}

	return builder.String()
}

// printArchivedTable prints archived tasks with their retention labels.
func printArchivedTable(tasks []task.Task, now time.Time) {
	if len(tasks) == 0 {
		fmt.Println("No archived tasks.")
		return
	}

	fmt.Print(formatArchivedTable(tasks, nil, ui.HighlightID, now))
}

func formatArchivedTable(tasks []task.Task, prefixLengths map[string]int, highlight func(string, int) string, now time.Time) string {
	builder := ui.NewTableBuilder([]string{"ID", "ARCHIVED", "RETENTION", "TEXT"}, len(tasks))

	if prefixLengths == nil {
		prefixLengths = taskIDPrefixLengths(tasks)
	}

	for _, t := range tasks {
		archivedAgo := "-"
		if t.ArchivedAt != nil {
			archivedAgo = ui.FormatTimeAgo(*t.ArchivedAt, now)
		}
		prefixLen := prefixLengths[strings.ToLower(t.ID)]
		row := []string{
			highlight(t.ID, prefixLen),
			archivedAgo,
			task.RemainingLabel(t, now),
			ui.TruncateTableCell(t.Text),
		}
		builder.AddRow(row)
	}

	return builder.String()
}

func taskIDPrefixLengths(tasks []task.Task) map[string]int {
	index := task.NewIDIndex(tasks)
	return index.PrefixLengths()
}

func stateCell(t task.Task) string {
	if t.Completed {
		return "done"
	}
	return "open"
}

func dueCell(t task.Task, now time.Time) string {
	due := duedate.Parse(t.DueDate)
	if due.Kind() == duedate.KindInvalid {
		return "invalid"
	}
	label := due.RelativeLabel(now)
	if label == "" {
		return "-"
	}
	return label
}
