package main

import (
	"fmt"
	"image/color"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/LdDl/tracklets/trackio"
	"github.com/LdDl/tracklets/tracks"
)

var channelNames = map[tracks.Format][4]string{
	tracks.FormatOriginSize: {"x", "y", "width", "height"},
	tracks.FormatTwoPoints:  {"x1", "y1", "x2", "y2"},
}

func newPlotCommand(ctx *commandContext) *cobra.Command {
	var objectID int64
	var channel int

	cmd := &cobra.Command{
		Use:   "plot IN PNG",
		Short: "Plot raw and smoothed values of one geometry channel",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if channel < 0 || channel > 3 {
				return fmt.Errorf("--channel must be between 0 and 3, got %d", channel)
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			options, err := cfg.SmoothOptions()
			if err != nil {
				return err
			}
			trks, err := trackio.ReadFile(args[0])
			if err != nil {
				return err
			}
			var raw *tracks.Track
			for _, track := range trks {
				if track.GetObjectID() == objectID {
					raw = track
					break
				}
			}
			if raw == nil {
				return fmt.Errorf("object %d not found in %s", objectID, args[0])
			}
			smoothed := raw.Clone()
			if err := tracks.Smoothen(smoothed, options); err != nil {
				return err
			}
			if err := savePlot(args[1], raw, smoothed, channel); err != nil {
				return err
			}
			ctx.logger.Info("plot saved", "path", args[1], "object_id", objectID, "channel", channel)
			return nil
		},
	}
	cmd.Flags().Int64Var(&objectID, "object", 0, "Object id to plot")
	cmd.Flags().IntVar(&channel, "channel", 0, "Geometry channel (0-3)")
	return cmd
}

func savePlot(path string, raw, smoothed *tracks.Track, channel int) error {
	name := channelNames[raw.GetFormat()][channel]
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Object %d (%s) - %s", raw.GetObjectID(), raw.GetObjectType(), name)
	p.X.Label.Text = "Frame"
	p.Y.Label.Text = name

	rawPts := channelPoints(raw, channel)
	scatter, err := plotter.NewScatter(rawPts)
	if err != nil {
		return err
	}
	scatter.GlyphStyle.Color = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	p.Add(scatter)
	p.Legend.Add("raw", scatter)

	// one line per tracklet so gaps stay visible
	for i, tracklet := range smoothed.Tracklets() {
		pts := make(plotter.XYs, 0, tracklet.Len())
		for frame := tracklet.Start; frame <= tracklet.End; frame++ {
			g, _ := smoothed.Observation(frame)
			pts = append(pts, plotter.XY{X: float64(frame), Y: g[channel]})
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		line.Color = tracks.ColorFor(raw.GetObjectID())
		line.Width = vg.Points(1.5)
		p.Add(line)
		if i == 0 {
			p.Legend.Add("smoothed", line)
		}
	}
	p.Legend.Top = true

	return p.Save(8*vg.Inch, 4*vg.Inch, path)
}

func channelPoints(track *tracks.Track, channel int) plotter.XYs {
	frames := track.Frames()
	pts := make(plotter.XYs, 0, len(frames))
	for _, frame := range frames {
		g, _ := track.Observation(frame)
		pts = append(pts, plotter.XY{X: float64(frame), Y: g[channel]})
	}
	return pts
}
