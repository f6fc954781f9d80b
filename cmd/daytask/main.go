// Package main implements the daytask CLI tool.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/daytask/internal/config"
	"github.com/example/daytask/internal/ui"
	"github.com/example/daytask/storage"
	"github.com/example/daytask/task"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "daytask",
	Short:        "Daytask - a small task tracker with due dates",
	SilenceUsage: true,
}

// commandNow is the single source of wall-clock time for commands.
func commandNow() time.Time {
	return time.Now()
}

// openStore loads the configuration and opens the task store at the
// configured data path. Save failures are reported on stderr but never
// abort a command; mutations always stick in memory.
func openStore() (*task.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if mode, ok := ui.ParseColorMode(cfg.UI.Color); ok {
		ui.SetColorMode(mode)
	}

	dataPath, err := cfg.DataPath()
	if err != nil {
		return nil, err
	}

	store, err := task.Open(storage.NewFileStore(dataPath), time.Now())
	if err != nil {
		return nil, err
	}

	store.OnSaveError = func(saveErr error) {
		fmt.Fprintf(os.Stderr, "warning: could not save tasks: %v\n", saveErr)
	}
	return store, nil
}
