package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/LdDl/tracklets/trackio"
	"github.com/LdDl/tracklets/tracks"
)

func newSmoothCommand(ctx *commandContext) *cobra.Command {
	var saveName string
	var method string

	cmd := &cobra.Command{
		Use:   "smooth IN OUT",
		Short: "Interpolate short gaps and smooth every track",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if method != "" {
				if err := cfg.OverrideMethod(method); err != nil {
					return err
				}
			}
			options, err := cfg.SmoothOptions()
			if err != nil {
				return err
			}

			trks, err := trackio.ReadFile(args[0])
			if err != nil {
				return err
			}
			before := countObservations(trks)
			pathBefore := totalPathLength(trks)
			started := time.Now()
			if err := tracks.SmoothenAll(cmd.Context(), trks, options, cfg.Workers.Count); err != nil {
				return err
			}
			ctx.logger.Info("tracks smoothed",
				"tracks", len(trks),
				"method", cfg.Smoothing.Method,
				"interpolated", countObservations(trks)-before,
				"path_before", pathBefore,
				"path_after", totalPathLength(trks),
				"elapsed", time.Since(started),
			)

			if err := trackio.WriteFile(args[1], trks); err != nil {
				return err
			}
			if saveName != "" {
				st, err := ctx.openStore()
				if err != nil {
					return err
				}
				defer st.Close()
				id, err := st.SaveSession(cmd.Context(), saveName, trks)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), id.String())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&saveName, "save", "", "Also store result as a session with this name")
	cmd.Flags().StringVar(&method, "method", "", "Override smoothing method (gaussian, kalman)")
	return cmd
}

func countObservations(trks []*tracks.Track) int {
	total := 0
	for _, track := range trks {
		total += track.Len()
	}
	return total
}

// totalPathLength sums center travel distance of every track
func totalPathLength(trks []*tracks.Track) float64 {
	total := 0.0
	for _, track := range trks {
		total += track.PathLength()
	}
	return total
}
