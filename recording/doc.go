// Package recording provides a meter.Canvas that records drawing calls
// instead of rasterizing them.
//
// Every surface call becomes a typed [Command]. Commands that paint
// (FillRect, Stroke, FillText) also carry a snapshot of the style in
// effect, and Stroke carries the path it stroked, so a recording can be
// inspected without replaying the state machine:
//
//	c := recording.NewCanvas(300, 300)
//	m, _ := meter.New(c, 100)
//	m.SetValue(50)
//	m.Draw()
//
//	for _, cmd := range c.Strokes() {
//	    fmt.Println(cmd.Style.Stroke, cmd.Path[0].End)
//	}
//
// A recording can be replayed onto another surface with [Playback].
//
// Text is measured with a [MetricsFunc]; the default, [FixedMetrics],
// models a monospace font so layouts are predictable in tests.
package recording
