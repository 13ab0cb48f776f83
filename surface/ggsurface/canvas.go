// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggsurface

import (
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/integration/ggcanvas"

	"github.com/gogpu/meter"
)

// Option configures a Canvas.
type Option func(*config)

type config struct {
	fonts *FontResolver
	shape bool
}

func defaultConfig() config {
	return config{shape: true}
}

// WithFontResolver resolves fonts with r instead of the shared
// DefaultFontResolver.
func WithFontResolver(r *FontResolver) Option {
	return func(c *config) {
		c.fonts = r
	}
}

// WithoutShaping measures text by summing glyph advances instead of
// shaping it with HarfBuzz.
func WithoutShaping() Option {
	return func(c *config) {
		c.shape = false
	}
}

// arc is a pending arc of the current path.
type arc struct {
	cx, cy, r  float64
	start, end float64
	ccw        bool
}

// Canvas is a meter.Canvas backed by a gg.Context.
//
// Canvas keeps the canvas-style drawing state (separate fill and stroke
// colors, current font, current path) and translates each paint call to
// gg. It is NOT safe for concurrent use.
type Canvas struct {
	dc    *gg.Context
	gpu   *ggcanvas.Canvas
	fonts *FontResolver
	shape bool

	fill      meter.Color
	stroke    meter.Color
	lineWidth float64
	lineCap   meter.LineCap
	font      meter.Font
	path      []arc
}

// New creates a software-rendered canvas.
func New(width, height int, opts ...Option) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	return newCanvas(gg.NewContext(width, height), nil, opts), nil
}

func newCanvas(dc *gg.Context, gpu *ggcanvas.Canvas, opts []Option) *Canvas {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.fonts == nil {
		cfg.fonts = DefaultFontResolver()
	}
	return &Canvas{
		dc:        dc,
		gpu:       gpu,
		fonts:     cfg.fonts,
		shape:     cfg.shape,
		fill:      meter.Black,
		stroke:    meter.Black,
		lineWidth: 1,
	}
}

// Context returns the underlying gg context, or nil after Close.
func (c *Canvas) Context() *gg.Context { return c.dc }

// Width implements meter.Canvas. A closed canvas has no area.
func (c *Canvas) Width() int {
	if c.dc == nil {
		return 0
	}
	return c.dc.Width()
}

// Height implements meter.Canvas.
func (c *Canvas) Height() int {
	if c.dc == nil {
		return 0
	}
	return c.dc.Height()
}

// Surface implements meter.Canvas.
func (c *Canvas) Surface() meter.Surface { return c }

// Resize changes the pixel size and clears the canvas. Redraw the meter
// afterwards.
func (c *Canvas) Resize(width, height int) error {
	if c.dc == nil {
		return ErrClosed
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	if c.gpu != nil {
		return c.gpu.Resize(width, height)
	}
	return c.dc.Resize(width, height)
}

// Image returns the current pixels.
func (c *Canvas) Image() image.Image {
	if c.dc == nil {
		return image.NewRGBA(image.Rectangle{})
	}
	return c.dc.Image()
}

// EncodePNG writes the current pixels as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if c.dc == nil {
		return ErrClosed
	}
	return c.dc.EncodePNG(w)
}

// SavePNG writes the current pixels to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	if c.dc == nil {
		return ErrClosed
	}
	return c.dc.SavePNG(path)
}

// Close releases the context (and the GPU texture for NewGPU canvases).
// Close is idempotent.
func (c *Canvas) Close() error {
	if c.dc == nil {
		return nil
	}
	var err error
	if c.gpu != nil {
		err = c.gpu.Close()
	} else {
		err = c.dc.Close()
	}
	c.dc = nil
	c.gpu = nil
	return err
}

func (c *Canvas) markDirty() {
	if c.gpu != nil {
		c.gpu.MarkDirty()
	}
}

func (c *Canvas) SetFillColor(col meter.Color)   { c.fill = col }
func (c *Canvas) SetStrokeColor(col meter.Color) { c.stroke = col }
func (c *Canvas) SetLineWidth(w float64)         { c.lineWidth = w }
func (c *Canvas) SetLineCap(lc meter.LineCap)    { c.lineCap = lc }
func (c *Canvas) SetFont(f meter.Font)           { c.font = f }
func (c *Canvas) BeginPath()                     { c.path = c.path[:0] }

// Arc appends an arc to the current path. A counterclockwise arc covers
// the same points as the clockwise arc with swapped angles.
func (c *Canvas) Arc(cx, cy, r, start, end float64, counterclockwise bool) {
	c.path = append(c.path, arc{cx: cx, cy: cy, r: r, start: start, end: end, ccw: counterclockwise})
}

// FillRect implements meter.Surface.
func (c *Canvas) FillRect(x, y, w, h float64) error {
	if c.dc == nil {
		return ErrClosed
	}
	c.dc.ClearPath()
	setColor(c.dc, c.fill)
	c.dc.DrawRectangle(x, y, w, h)
	err := c.dc.Fill()
	c.markDirty()
	return err
}

// Stroke strokes the current path. The path is kept, as on an HTML
// canvas. Zero-length arcs with a round cap paint a dot.
func (c *Canvas) Stroke() error {
	if c.dc == nil {
		return ErrClosed
	}
	dc := c.dc
	dc.ClearPath()
	setColor(dc, c.stroke)
	dc.SetLineWidth(c.lineWidth)
	dc.SetLineCap(ggLineCap(c.lineCap))

	var dots []arc
	drawn := false
	for _, a := range c.path {
		start, end := a.start, a.end
		if a.ccw {
			start, end = end, start
		}
		if start == end {
			dots = append(dots, a)
			continue
		}
		dc.DrawArc(a.cx, a.cy, a.r, start, end)
		drawn = true
	}

	var errs []error
	if drawn {
		errs = append(errs, dc.Stroke())
	}
	if c.lineCap == meter.LineCapRound {
		for _, a := range dots {
			x, y := pointOn(a)
			dc.DrawCircle(x, y, c.lineWidth/2)
			errs = append(errs, dc.Fill())
		}
	}
	c.markDirty()
	return errors.Join(errs...)
}

// FillText draws text with its baseline at y.
func (c *Canvas) FillText(s string, x, y float64) error {
	if c.dc == nil {
		return ErrClosed
	}
	if s == "" {
		return nil
	}
	res, err := c.fonts.resolve(c.font)
	if err != nil {
		return err
	}
	c.dc.SetFont(res.face)
	setColor(c.dc, c.fill)
	c.dc.DrawString(s, x, y)
	c.markDirty()
	return nil
}

// MeasureText implements meter.Surface. Text in a font that cannot be
// resolved measures zero.
func (c *Canvas) MeasureText(s string) meter.TextMetrics {
	res, err := c.fonts.resolve(c.font)
	if err != nil {
		meter.Logger().Debug("ggsurface: measure without face",
			slog.String("font", c.font.String()), slog.Any("error", err))
		return meter.TextMetrics{}
	}
	return measure(res, s, c.shape)
}

// setColor selects a straight-alpha color as the gg brush.
func setColor(dc *gg.Context, col meter.Color) {
	dc.SetRGBA(col.R, col.G, col.B, col.A)
}

func ggLineCap(lc meter.LineCap) gg.LineCap {
	switch lc {
	case meter.LineCapRound:
		return gg.LineCapRound
	case meter.LineCapSquare:
		return gg.LineCapSquare
	default:
		return gg.LineCapButt
	}
}

// pointOn returns the start point of an arc.
func pointOn(a arc) (x, y float64) {
	sin, cos := math.Sincos(a.start)
	return a.cx + a.r*cos, a.cy + a.r*sin
}

var (
	_ meter.Canvas  = (*Canvas)(nil)
	_ meter.Surface = (*Canvas)(nil)
)
