package main

import (
	"bufio"
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/meter"
	"github.com/gogpu/meter/surface/ggsurface"
)

var animateCmd = &cobra.Command{
	Use:   "animate",
	Short: "Render the transition from --from to --value as PNG frames or a GIF",
	Long: `Render every frame of the transition from --from to --value.

With an output ending in .gif the frames are written as one animated GIF,
otherwise the output is a directory that receives frame-000.png, ...`,
	Args: cobra.NoArgs,
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
		frames, err := captureFrames(m, canvas)
		if err != nil {
			return err
		}

		if strings.EqualFold(filepath.Ext(out), ".gif") {
			err = writeGIF(out, frames, cfg.Workers)
		} else {
			err = writePNGs(out, frames, cfg.Workers)
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %d frames to %s\n", len(frames), out)
		return nil
	},
}

func init() {
	animateCmd.Flags().StringP("output", "o", "frames", "output directory, or a .gif file")
}

// captureFrames draws the meter and steps the transition to its end,
// copying the pixels after every frame.
func captureFrames(m *meter.Meter, canvas *ggsurface.Canvas) ([]image.Image, error) {
	if err := m.Draw(); err != nil {
		return nil, err
	}
	frames := []image.Image{canvas.Image()}
	for m.Animating() {
		if err := m.Step(); err != nil {
			return nil, err
		}
		frames = append(frames, canvas.Image())
	}
	return frames, nil
}

// writePNGs encodes frames into dir concurrently.
func writePNGs(dir string, frames []image.Image, workers int) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	var g errgroup.Group
	g.SetLimit(workers)
	for i, img := range frames {
		g.Go(func() error {
			return savePNG(filepath.Join(dir, fmt.Sprintf("frame-%03d.png", i)), img)
		})
	}
	return g.Wait()
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	if err := png.Encode(w, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// frameDelay is the GIF delay per frame in 1/100 s, the closest to the
// 60 fps the transition is timed for.
const frameDelay = 2

// writeGIF quantizes frames concurrently and writes one animated GIF.
func writeGIF(path string, frames []image.Image, workers int) error {
	paletted := make([]*image.Paletted, len(frames))
	var g errgroup.Group
	g.SetLimit(workers)
	for i, img := range frames {
		g.Go(func() error {
			p := image.NewPaletted(img.Bounds(), palette.Plan9)
			draw.FloydSteinberg.Draw(p, img.Bounds(), img, image.Point{})
			paletted[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	anim := &gif.GIF{Image: paletted, Delay: make([]int, len(paletted))}
	for i := range anim.Delay {
		anim.Delay[i] = frameDelay
	}
	// Hold the final state for a second.
	anim.Delay[len(anim.Delay)-1] = 100

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := gif.EncodeAll(f, anim); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
