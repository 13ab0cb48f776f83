package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gogpu/meter/recording"
)

var traceCmd = &cobra.Command{
	Use:   "trace",
	Short: "Print the drawing commands of a draw and its transition",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all-frames")
		replay, _ := cmd.Flags().GetString("replay")

		rec := recording.NewCanvas(cfg.Width, cfg.Height)
		m, err := newMeter(cfg, rec)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		drawErr := m.Draw()
		fmt.Fprintln(w, "# draw")
		printCommands(w, rec.Commands())
		final := append([]recording.Command(nil), rec.Commands()...)

		frame := 0
		for m.Animating() {
			rec.Reset()
			if err := m.Step(); err != nil {
				return err
			}
			frame++
			if all || !m.Animating() {
				fmt.Fprintf(w, "# frame %d\n", frame)
				printCommands(w, rec.Commands())
			}
		}
		final = append(final, rec.Commands()...)
		fmt.Fprintf(w, "# %d frames\n", frame)

		if replay != "" {
			canvas, err := newImageCanvas(cfg)
			if err != nil {
				return err
			}
			defer canvas.Close()
			if err := recording.Playback(final, canvas.Surface()); err != nil {
				return err
			}
			if err := canvas.SavePNG(replay); err != nil {
				return err
			}
			fmt.Fprintf(w, "# replayed to %s\n", replay)
		}
		return drawErr
	},
}

func init() {
	traceCmd.Flags().Bool("all-frames", false, "print every frame, not only the last")
	traceCmd.Flags().String("replay", "", "replay the draw and the last frame onto a PNG file")
}

func printCommands(w io.Writer, cmds []recording.Command) {
	for _, c := range cmds {
		fmt.Fprintf(w, "  %s\n", c)
	}
}
