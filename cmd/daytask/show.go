package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/daytask/duedate"
	"github.com/example/daytask/internal/markdown"
	"github.com/example/daytask/internal/ui"
	"github.com/example/daytask/task"
)

var showCmd = &cobra.Command{
	Use:   "show <id>...",
	Short: "Show detailed information about tasks",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runShow,
}

var showJSON bool

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output as JSON")
}

func runShow(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	var items []task.Task
	for _, arg := range args {
		resolved, err := store.Get(arg)
		if err != nil {
			return describeIDError(arg, err)
		}
		items = append(items, *resolved)
	}

	if showJSON {
		return encodeJSONToStdout(items)
	}

	prefixLengths := taskIDPrefixLengths(store.Tasks())
	for i, item := range items {
		if i > 0 {
			fmt.Println()
		}
		printTaskDetail(item, prefixLengths)
	}
	return nil
}

// printTaskDetail prints detailed information about a task.
func printTaskDetail(t task.Task, prefixLengths map[string]int) {
	now := commandNow()

	fmt.Printf("ID:       %s\n", ui.HighlightID(t.ID, ui.PrefixLength(prefixLengths, t.ID)))
	fmt.Printf("State:    %s\n", stateCell(t))
	fmt.Printf("Created:  %s\n", t.CreatedAt.Format("2006-01-02 15:04:05"))

	if t.CompletedAt != nil {
		fmt.Printf("Done:     %s\n", t.CompletedAt.Format("2006-01-02 15:04:05"))
	}
	if t.ArchivedAt != nil {
		fmt.Printf("Archived: %s (%s)\n",
			t.ArchivedAt.Format("2006-01-02 15:04:05"),
			strings.ToLower(task.RemainingLabel(t, now)))
	}

	due := duedate.Parse(t.DueDate)
	if due.Kind() == duedate.KindInvalid {
		fmt.Printf("Due:      invalid (%s)\n", t.DueDate)
	} else if due.IsSet() {
		fmt.Printf("Due:      %s (%s)\n", due.ExactLabel(), due.RelativeLabel(now))
	}

	fmt.Printf("\n%s\n", formatTaskText(t.Text))
}

const taskDetailLineWidth = 80

func formatTaskText(value string) string {
	rendered := markdown.Render(taskDetailLineWidth, value)
	if strings.TrimSpace(rendered) == "" {
		return "-"
	}
	return rendered
}
