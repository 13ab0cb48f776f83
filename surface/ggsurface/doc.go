// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ggsurface renders meters with github.com/gogpu/gg.
//
// A [Canvas] owns a gg.Context and implements both meter.Canvas and
// meter.Surface. Fonts named by a meter.Font ("bold 41px Arial") are
// resolved by a [FontResolver]: faces registered for the family and
// weight first, then the Go fonts bundled with golang.org/x/image.
//
// Software rendering:
//
//	c, err := ggsurface.New(300, 300)
//	if err != nil {
//	    return err
//	}
//	m, _ := meter.New(c, 100)
//	m.SetValue(42)
//	m.Draw()
//	m.Finish()
//	c.SavePNG("meter.png")
//
// GPU-backed rendering in a gogpu window uses [NewGPU] with the window's
// device provider; the canvas uploads itself on Flush like a
// ggcanvas.Canvas.
//
// Text width is measured with HarfBuzz shaping from
// github.com/go-text/typesetting, so kerning is reflected in the layout.
// [WithoutShaping] falls back to summing glyph advances.
package ggsurface
