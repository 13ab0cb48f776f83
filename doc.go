// Package meter provides a radial gauge that shows a value against a
// maximum as a three-quarter arc, with an animated sweep whenever the
// value changes.
//
// # Overview
//
// A [Meter] paints on any [Canvas]: something with a pixel size and a 2D
// drawing [Surface] similar to an HTML canvas context. The
// surface/ggsurface package provides one backed by github.com/gogpu/gg,
// and the recording package provides one that records drawing commands.
//
// # Quick Start
//
//	canvas, _ := ggsurface.New(300, 300)
//	m, _ := meter.New(canvas, 100, meter.WithLabel("% disk"))
//
//	m.SetValue(50)
//	m.Draw()
//	for m.Animating() {
//	    m.Step()
//	}
//	canvas.SavePNG("meter.png")
//
// # Layout
//
// All sizes derive from the canvas width W and height H, so a meter
// scales with its canvas:
//   - arc radius 0.75*W/2, stroke width W/27
//   - value font round(0.15*W) pixels, label font half of that
//   - the arc starts at 135° and sweeps 270° clockwise, leaving a 90°
//     gap at the bottom; it is shifted down by half its sagitta so the
//     visible part is centered vertically
//
// Geometry is recomputed on every [Meter.Draw], so resizing the canvas
// between draws is fine.
//
// # Animation
//
// [Meter.SetValue] keeps the old value as the previous value.
// [Meter.Draw] paints background, text and the arc at the previous value,
// then arms a [Transition] towards the current value. The host advances
// it one frame at a time with [Meter.Step], or by elapsed time with
// [Meter.Tick]. A transition always lasts about 0.66 s at 60 frames per
// second, whatever the size of the jump. Drawing again cancels the
// transition in progress.
//
// No goroutines or timers are involved; see the frameloop package for a
// driver that runs a meter on its own goroutine.
//
// # Concurrency
//
// A Meter is not safe for concurrent use.
package meter
