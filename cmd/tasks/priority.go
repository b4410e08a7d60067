package main

import (
	"github.com/spf13/cobra"
)

var priorityCmd = &cobra.Command{
	Use:     "priority <id> <level>",
	Aliases: []string{"p"},
	Short:   "set the priority level of a task",
	Long: `Set the priority level of a task.

Levels are low, medium and high, abbreviated l/m/h or 1/2/3.
Use none, n or 0 to clear the priority.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := taskID(args[0])
		if err != nil {
			return err
		}
		return mgr.SetPriority(id, args[1])
	},
}

func init() {
	rootCmd.AddCommand(priorityCmd)
}
