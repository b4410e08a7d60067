package main

import (
	"github.com/spf13/cobra"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "move completed and cancelled tasks to the archive",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return mgr.Clean()
	},
}

func init() {
	rootCmd.AddCommand(cleanCmd)
}
