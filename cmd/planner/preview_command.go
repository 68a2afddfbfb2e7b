package main

import (
	"fmt"

	"github.com/maheshrc27/postplanner/internal/catalog"
	"github.com/maheshrc27/postplanner/internal/preview"
	"github.com/spf13/cobra"
)

func newPreviewCommand() *cobra.Command {
	var (
		channels  []string
		placement string
		caption   string
		media     []string
		mediaKind string
		name      string
		handle    string
		width     int
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Draw how a draft would look on each channel",
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := catalog.ParseChannels(channels)
			if err != nil {
				return err
			}

			in := preview.Input{
				Caption:   caption,
				Media:     media,
				MediaKind: mediaKind,
				Author:    preview.Author{Name: name, Handle: handle},
			}
			if placement != "" {
				if in.Placement, err = catalog.ParsePlacement(placement); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			if len(parsed) == 0 {
				fmt.Fprintln(out, preview.Draw(preview.Render(in), width))
				return nil
			}
			for _, node := range preview.RenderAll(parsed, in) {
				fmt.Fprintln(out, preview.Draw(node, width))
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&channels, "channel", nil, "Channel to preview (repeatable)")
	cmd.Flags().StringVar(&placement, "placement", "", "Placement type: Post, Story, Reel or Article")
	cmd.Flags().StringVar(&caption, "caption", "", "Caption text")
	cmd.Flags().StringSliceVar(&media, "media", nil, "Media reference (repeatable)")
	cmd.Flags().StringVar(&mediaKind, "kind", "", "Media kind: image, carousel or video")
	cmd.Flags().StringVar(&name, "name", "", "Author display name")
	cmd.Flags().StringVar(&handle, "handle", "", "Author handle")
	cmd.Flags().IntVar(&width, "width", 48, "Preview width in columns")
	return cmd
}
