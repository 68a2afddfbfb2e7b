package main

import (
	"errors"
	"fmt"

	"github.com/maheshrc27/postplanner/internal/catalog"
	"github.com/spf13/cobra"
)

func newScheduleCommand(ctx *commandContext) *cobra.Command {
	var (
		channels  []string
		placement string
		caption   string
		media     []string
		mediaKind string
		date      string
		at        string
		pillarID  int64
		asDraft   bool
	)

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Schedule one post per channel, all or nothing",
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := ctx.requireUser()
			if err != nil {
				return err
			}
			parsed, err := catalog.ParseChannels(channels)
			if err != nil {
				return err
			}
			p, err := catalog.ParsePlacement(placement)
			if err != nil {
				return err
			}

			svc, err := ctx.scheduleService(cmd.Context())
			if err != nil {
				return err
			}
			sess, err := svc.OpenSession(cmd.Context(), userID, date)
			if err != nil {
				return err
			}
			defer sess.Close()

			if _, err := sess.SelectChannels(parsed...); err != nil {
				return err
			}
			steps := []error{
				sess.SetPlacement(p),
				sess.SetCaption(caption),
				sess.SetMedia(media, mediaKind),
				sess.SetTime(at),
				sess.SetPillar(pillarID),
				sess.SetAsDraft(asDraft),
			}
			if err := errors.Join(steps...); err != nil {
				return err
			}

			res, err := sess.Submit()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Batch %s: %d post(s) created\n", res.BatchID, len(res.Created))
			fmt.Fprintln(out, postsTable(res.Created))
			if res.Stale {
				fmt.Fprintln(out, "Warning: post list could not be refreshed")
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&channels, "channel", nil, "Channel to post to (repeatable)")
	cmd.Flags().StringVar(&placement, "placement", "", "Placement type shared by every channel")
	cmd.Flags().StringVar(&caption, "caption", "", "Caption text")
	cmd.Flags().StringSliceVar(&media, "media", nil, "Media reference (repeatable)")
	cmd.Flags().StringVar(&mediaKind, "kind", "", "Media kind: image, carousel or video")
	cmd.Flags().StringVar(&date, "date", "", "Date as YYYY-MM-DD")
	cmd.Flags().StringVar(&at, "time", "", "Time as HH:MM")
	cmd.Flags().Int64Var(&pillarID, "pillar", 0, "Content pillar id")
	cmd.Flags().BoolVar(&asDraft, "draft", false, "Save as draft instead of scheduling")
	_ = cmd.MarkFlagRequired("channel")
	_ = cmd.MarkFlagRequired("date")
	return cmd
}

