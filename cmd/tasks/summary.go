package main

import (
	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:     "summary",
	Aliases: []string{"s"},
	Short:   "print a standup-style summary",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr.Summary(cmd.OutOrStdout())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}
