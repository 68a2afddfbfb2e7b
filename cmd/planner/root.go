package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	return newRootCommandWith(nil)
}

func newRootCommandWith(setup func(*commandContext)) *cobra.Command {
	var userFlag int64

	ctx := newCommandContext(&userFlag)
	if setup != nil {
		setup(ctx)
	}

	rootCmd := &cobra.Command{
		Use:           "planner",
		Short:         "Plan and schedule posts across channels",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			ctx.shutdown()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().Int64VarP(&userFlag, "user", "u", 0, "User the posts belong to")

	rootCmd.AddCommand(newPlacementsCommand())
	rootCmd.AddCommand(newMonthCommand(ctx))
	rootCmd.AddCommand(newPreviewCommand())
	rootCmd.AddCommand(newPostsCommand(ctx))
	rootCmd.AddCommand(newScheduleCommand(ctx))
	rootCmd.AddCommand(newTokenCommand(ctx))

	return rootCmd
}
