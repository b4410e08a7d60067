package main

import (
	"github.com/spf13/cobra"
)

var useCmd = &cobra.Command{
	Use:   "use <organization>",
	Short: "switch the context to work in",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return mgr.Use(args[0])
	},
}

func init() {
	rootCmd.AddCommand(useCmd)
}
