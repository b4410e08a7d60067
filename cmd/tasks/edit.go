package main

import (
	"strings"

	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:     "edit <id> <message>...",
	Aliases: []string{"e"},
	Short:   "replace a task's message",
	Args:    cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := taskID(args[0])
		if err != nil {
			return err
		}
		return mgr.Edit(id, strings.Join(args[1:], " "))
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
}
