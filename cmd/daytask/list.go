package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/daytask/task"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var (
	listFilter string
	listJSON   bool
)

var archivedCmd = &cobra.Command{
	Use:   "archived",
	Short: "List archived tasks and their remaining retention",
	Args:  cobra.NoArgs,
	RunE:  runArchived,
}

var archivedJSON bool

func init() {
	rootCmd.AddCommand(listCmd, archivedCmd)

	listCmd.Flags().StringVar(&listFilter, "filter", "", "Filter tasks (all, active, completed)")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
	archivedCmd.Flags().BoolVar(&archivedJSON, "json", false, "Output as JSON")
}

func runList(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	filter, err := task.ParseFilter(listFilter)
	if err != nil {
		return fmt.Errorf("--filter %q: valid values are all, active, completed", listFilter)
	}

	tasks := store.ByFilter(filter)
	if listJSON {
		return encodeJSONToStdout(tasks)
	}

	now := commandNow()
	printTaskTable(tasks, now)
	printCountsFooter(store.Counts(now))
	return nil
}

func runArchived(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	archived := store.Archived()
	if archivedJSON {
		return encodeJSONToStdout(archived)
	}

	printArchivedTable(archived, commandNow())
	return nil
}

func printCountsFooter(counts task.Counts) {
	if counts.Total == 0 {
		return
	}

	line := fmt.Sprintf("%d remaining, %d completed", counts.Remaining, counts.Completed)
	if counts.Overdue > 0 {
		line += fmt.Sprintf(", %d overdue", counts.Overdue)
	}
	fmt.Println(line)
}
