package main

import (
	"fmt"
	"math"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gogpu/meter"
)

var geometryCmd = &cobra.Command{
	Use:   "geometry",
	Short: "Print the layout derived from the canvas size",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		g := meter.ComputeGeometry(cfg.Width, cfg.Height)
		ratio := math.Max(0, math.Min(1, cfg.Value/cfg.Max))

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		rows := []struct {
			name  string
			value float64
		}{
			{"width", g.Width},
			{"height", g.Height},
			{"line_width", g.LineWidth},
			{"radius", g.Radius},
			{"large_font_size", g.LargeFontSize},
			{"small_font_size", g.SmallFontSize},
			{"center_x", g.CenterX},
			{"center_y", g.CenterY},
			{"sagitta", g.Sagitta},
			{"arc_y", g.ArcY},
			{"text_y", g.TextY()},
			{"arc_start", meter.ArcStart},
			{"arc_end", meter.ArcEnd(ratio)},
		}
		for _, r := range rows {
			fmt.Fprintf(tw, "%s\t%.4f\n", r.name, r.value)
		}
		fmt.Fprintf(tw, "frames\t%d\n", meter.FrameCount(cfg.From/cfg.Max, ratio))
		return tw.Flush()
	},
}
