package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/LdDl/tracklets/trackio"
)

func newTrackletsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "tracklets IN",
		Short: "List tracklets of every track",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			trks, err := trackio.ReadFile(args[0])
			if err != nil {
				return err
			}
			rows := make([]table.Row, 0)
			frames := 0
			for _, track := range trks {
				for _, tracklet := range track.Tracklets() {
					rows = append(rows, table.Row{
						track.GetObjectID(),
						track.GetObjectType(),
						tracklet.Start,
						tracklet.End,
						tracklet.Len(),
					})
					frames += tracklet.Len()
				}
			}
			ctx.logger.Debug("tracklets listed", "tracks", len(trks), "tracklets", len(rows))
			columns := []tableColumn{
				{Title: "Object", Align: text.AlignRight},
				{Title: "Type", Align: text.AlignLeft},
				{Title: "Start", Align: text.AlignRight},
				{Title: "End", Align: text.AlignRight},
				{Title: "Frames", Align: text.AlignRight},
			}
			footer := table.Row{"Total", "", "", "", frames}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(columns, rows, footer))
			return nil
		},
	}
}
