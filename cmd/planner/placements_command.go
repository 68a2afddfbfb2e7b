package main

import (
	"fmt"
	"strings"

	"github.com/maheshrc27/postplanner/internal/catalog"
	"github.com/spf13/cobra"
)

func newPlacementsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "placements [channel...]",
		Short: "List placements shared by the given channels, or every channel's placements",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				rows := make([][]string, 0, len(catalog.Channels()))
				for _, ch := range catalog.Channels() {
					var labels []string
					for _, p := range catalog.SupportedPlacements(ch) {
						labels = append(labels, fmt.Sprintf("%s (%s)", p, catalog.LabelFor(ch, p)))
					}
					rows = append(rows, []string{string(ch), strings.Join(labels, ", ")})
				}
				fmt.Fprintln(out, renderTable([]string{"Channel", "Placements"}, rows, nil))
				return nil
			}

			channels, err := catalog.ParseChannels(args)
			if err != nil {
				return err
			}
			common, err := catalog.ResolvePlacements(channels)
			if err != nil {
				return err
			}
			for _, p := range common {
				fmt.Fprintln(out, p)
			}
			return nil
		},
	}
}
