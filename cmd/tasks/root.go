package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/tasklog/tasks/internal/config"
	"github.com/tasklog/tasks/internal/manager"
)

var mgr *manager.Manager

var rootCmd = &cobra.Command{
	Use:   "tasks",
	Short: "A task list manager",
	Long: `A personal task list manager.

Tasks are stored as plain text lines, one per task, with metadata
embedded in the text itself: +tags, @high/@medium/@low priorities,
@due(...) dates, and @blocked/@delayed flags.

Set TASKS_PATH to change where tasks are stored.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		mgr, err = manager.New(cfg)
		return err
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func taskID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid task id %q", arg)
	}
	return id, nil
}
