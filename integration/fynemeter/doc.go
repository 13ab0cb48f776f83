// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package fynemeter shows a meter in a fyne window.
//
// The [Widget] renders the meter with ggsurface into an image and shows
// it through a canvas.Image. Value changes run the meter transition on a
// fyne.Animation, so the arc sweeps at the toolkit's frame rate:
//
//	w, err := fynemeter.New(100, fyne.NewSize(240, 240), meter.WithLabel("% cpu"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	window.SetContent(w)
//	w.SetValue(42)
//
// Resizing the widget resizes the backing canvas, so the meter is always
// drawn at the widget's size.
package fynemeter
