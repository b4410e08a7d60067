package main

import (
	"github.com/spf13/cobra"
)

// idCmd builds a command whose single argument is a task id.
func idCmd(use, short string, aliases []string, op func(int) error) *cobra.Command {
	return &cobra.Command{
		Use:     use + " <id>",
		Aliases: aliases,
		Short:   short,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := taskID(args[0])
			if err != nil {
				return err
			}
			return op(id)
		},
	}
}

func init() {
	rootCmd.AddCommand(
		idCmd("complete", "mark a task as completed", []string{"c"}, func(id int) error { return mgr.Complete(id) }),
		idCmd("uncomplete", "reopen a completed task", []string{"u", "C"}, func(id int) error { return mgr.Uncomplete(id) }),
		idCmd("cancel", "mark a task as cancelled", nil, func(id int) error { return mgr.Cancel(id) }),
		idCmd("remove", "remove a task", []string{"rm"}, func(id int) error { return mgr.Remove(id) }),
		idCmd("block", "flag a task as blocked", []string{"b"}, func(id int) error { return mgr.Block(id) }),
		idCmd("unblock", "clear a task's blocked flag", []string{"B"}, func(id int) error { return mgr.Unblock(id) }),
		idCmd("delay", "flag a task as delayed", []string{"d"}, func(id int) error { return mgr.Delay(id) }),
		idCmd("undelay", "clear a task's delayed flag", []string{"D"}, func(id int) error { return mgr.Undelay(id) }),
		idCmd("archive", "move a task to the archive", nil, func(id int) error { return mgr.Archive(id) }),
	)
}
