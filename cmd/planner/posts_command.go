package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/maheshrc27/postplanner/internal/models"
	"github.com/spf13/cobra"
)

func newPostsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "posts",
		Short: "List scheduled posts",
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := ctx.requireUser()
			if err != nil {
				return err
			}
			svc, err := ctx.scheduleService(cmd.Context())
			if err != nil {
				return err
			}
			posts, err := svc.ListPosts(cmd.Context(), userID)
			if err != nil {
				return err
			}

			if len(posts) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No posts scheduled")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), postsTable(posts))
			return nil
		},
	}
}

func postsTable(posts []*models.ScheduledPost) string {
	rows := make([][]string, 0, len(posts))
	for _, p := range posts {
		rows = append(rows, []string{
			strconv.FormatInt(p.ID, 10),
			p.ScheduledDate + " " + p.ScheduledTime,
			p.Channel,
			p.Placement,
			p.Status,
			strconv.Itoa(len(p.MediaRefs)),
			truncate(p.Caption, 32),
		})
	}
	return renderTable(
		[]string{"ID", "When", "Channel", "Placement", "Status", "Media", "Caption"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignLeft},
	)
}

func truncate(s string, limit int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-1]) + "…"
}
