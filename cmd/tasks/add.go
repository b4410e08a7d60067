package main

import (
	"strings"

	"github.com/spf13/cobra"
)

var addComplete bool

var addCmd = &cobra.Command{
	Use:     "add <message>...",
	Aliases: []string{"a"},
	Short:   "add a new task",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := mgr.Add(strings.Join(args, " "), addComplete)
		return err
	},
}

func init() {
	addCmd.Flags().BoolVarP(&addComplete, "complete", "c", false, "mark the task as completed")
	rootCmd.AddCommand(addCmd)
}
