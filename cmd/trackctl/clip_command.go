package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LdDl/tracklets/trackio"
	"github.com/LdDl/tracklets/tracks"
)

func newClipCommand(ctx *commandContext) *cobra.Command {
	var startFrame int
	var endFrame int

	cmd := &cobra.Command{
		Use:   "clip IN OUT",
		Short: "Keep frames [start, end] renumbered from 1",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if endFrame < startFrame {
				return fmt.Errorf("--end (%d) must not be less than --start (%d)", endFrame, startFrame)
			}
			trks, err := trackio.ReadFile(args[0])
			if err != nil {
				return err
			}
			clipped := make([]*tracks.Track, 0, len(trks))
			for _, track := range trks {
				c := tracks.Clip(track, startFrame, endFrame)
				if c.Len() == 0 {
					continue
				}
				clipped = append(clipped, c)
			}
			ctx.logger.Info("tracks clipped", "start", startFrame, "end", endFrame, "kept", len(clipped), "dropped", len(trks)-len(clipped))
			return trackio.WriteFile(args[1], clipped)
		},
	}
	cmd.Flags().IntVar(&startFrame, "start", 1, "First frame to keep")
	cmd.Flags().IntVar(&endFrame, "end", 0, "Last frame to keep")
	_ = cmd.MarkFlagRequired("end")
	return cmd
}
