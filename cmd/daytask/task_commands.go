package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/daytask/task"
)

var addCmd = &cobra.Command{
	Use:   "add <text>...",
	Short: "Add a new task",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAdd,
}

var addDue string

var doneCmd = &cobra.Command{
	Use:   "done <id>...",
	Short: "Toggle completion for one or more tasks",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDone,
}

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a task's text or due date",
	Args:  cobra.ExactArgs(1),
	RunE:  runEdit,
}

var (
	editText string
	editDue  string
)

var rmCmd = &cobra.Command{
	Use:   "rm <id>...",
	Short: "Delete one or more tasks",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRm,
}

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Move all completed tasks to the archive",
	Args:  cobra.NoArgs,
	RunE:  runArchive,
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every task on the list",
	Args:  cobra.NoArgs,
	RunE:  runClear,
}

var clearForce bool

func init() {
	rootCmd.AddCommand(addCmd, doneCmd, editCmd, rmCmd, archiveCmd, clearCmd)

	addCmd.Flags().StringVar(&addDue, "due", "", "Due date (YYYY-MM-DD or YYYY-MM-DDTHH:MM)")
	editCmd.Flags().StringVar(&editText, "text", "", "New task text")
	editCmd.Flags().StringVar(&editDue, "due", "", "New due date; pass an empty string to clear")
	clearCmd.Flags().BoolVarP(&clearForce, "force", "f", false, "Skip the confirmation prompt")

	addDueFlagAliases(addCmd, editCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	created := store.Create(strings.Join(args, " "), addDue, commandNow())
	if created == nil {
		// Blank input is ignored, matching an empty submit in a form.
		return nil
	}

	fmt.Println(created.ID)
	return nil
}

func runDone(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	now := commandNow()
	for _, arg := range args {
		resolved, err := store.Get(arg)
		if err != nil {
			return describeIDError(arg, err)
		}

		toggled := store.Toggle(resolved.ID, now)
		if toggled == nil {
			return fmt.Errorf("toggle task %s: %w", arg, task.ErrTaskNotFound)
		}

		state := "open"
		if toggled.Completed {
			state = "done"
		}
		fmt.Printf("%s %s\n", toggled.ID, state)
	}
	return nil
}

func runEdit(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	existing, err := store.Get(args[0])
	if err != nil {
		return describeIDError(args[0], err)
	}

	text := existing.Text
	if cmd.Flags().Changed("text") {
		text = editText
	}
	due := existing.DueDate
	if cmd.Flags().Changed("due") {
		due = editDue
	}

	updated := store.Edit(existing.ID, text, due)
	if updated == nil {
		// Blank text abandons the edit, like cancelling out of a form.
		return nil
	}

	fmt.Println(updated.ID)
	return nil
}

func runRm(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	for _, arg := range args {
		resolved, err := store.Get(arg)
		if err != nil {
			return describeIDError(arg, err)
		}
		store.Remove(resolved.ID)
		fmt.Printf("%s removed\n", resolved.ID)
	}
	return nil
}

func runArchive(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	before := len(store.Visible())
	store.ArchiveCompleted(commandNow())
	archived := before - len(store.Visible())
	fmt.Printf("Archived %d task(s)\n", archived)
	return nil
}

func runClear(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	visible := store.Visible()
	if len(visible) == 0 {
		fmt.Println("Nothing to clear.")
		return nil
	}

	if !clearForce {
		ok, err := clearPrompter.Confirm(fmt.Sprintf("Delete all %d task(s)?", len(visible)))
		if err != nil {
			return fmt.Errorf("read confirmation: %w", err)
		}
		if !ok {
			fmt.Println("Aborted.")
			return nil
		}
	}

	store.ClearVisible()
	fmt.Printf("Cleared %d task(s)\n", len(visible))
	return nil
}

// clearPrompter is swapped out in tests.
var clearPrompter task.Prompter = task.StdioPrompter{}

func describeIDError(arg string, err error) error {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		return fmt.Errorf("no task matches %q", arg)
	case errors.Is(err, task.ErrAmbiguousIDPrefix):
		return fmt.Errorf("%q matches more than one task, use a longer prefix", arg)
	}
	return err
}
