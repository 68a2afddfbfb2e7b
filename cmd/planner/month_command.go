package main

import (
	"fmt"
	"time"

	"github.com/maheshrc27/postplanner/internal/calendar"
	"github.com/maheshrc27/postplanner/internal/models"
	"github.com/spf13/cobra"
)

func newMonthCommand(ctx *commandContext) *cobra.Command {
	var year, month int
	var plain bool

	cmd := &cobra.Command{
		Use:   "month",
		Short: "Draw a month grid with the number of posts per day",
		RunE: func(cmd *cobra.Command, args []string) error {
			today := ctx.now()
			if year == 0 {
				year = today.Year()
			}
			if month == 0 {
				month = int(today.Month())
			}
			if month < 1 || month > 12 {
				return fmt.Errorf("month must be between 1 and 12")
			}

			var posts []*models.ScheduledPost
			if userID, err := ctx.requireUser(); err == nil {
				svc, err := ctx.scheduleService(cmd.Context())
				if err != nil {
					return err
				}
				if posts, err = svc.ListPosts(cmd.Context(), userID); err != nil {
					return err
				}
			}

			opts := calendar.DefaultOptions()
			if plain {
				opts = calendar.Options{ShowTitle: true, ShowHeader: true, ShowCounts: true}
			}
			m := calendar.BuildMonth(year, time.Month(month), posts, today)
			fmt.Fprintln(cmd.OutOrStdout(), calendar.Render(m, opts))
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Year (defaults to the current year)")
	cmd.Flags().IntVar(&month, "month", 0, "Month 1-12 (defaults to the current month)")
	cmd.Flags().BoolVar(&plain, "plain", false, "Disable colors")
	return cmd
}
