package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the final state of a meter to a PNG file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("output")

		canvas, err := newImageCanvas(cfg)
		if err != nil {
			return err
		}
		defer canvas.Close()

		m, err := newMeter(cfg, canvas)
		if err != nil {
			return err
		}
		if err := m.Draw(); err != nil {
			return err
		}
		if err := m.Finish(); err != nil {
			return err
		}
		if err := canvas.SavePNG(out); err != nil {
			return fmt.Errorf("save %s: %w", out, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%dx%d)\n", out, cfg.Width, cfg.Height)
		return nil
	},
}

func init() {
	renderCmd.Flags().StringP("output", "o", "meter.png", "output PNG file")
}
