package recording

import (
	"unicode/utf8"

	"github.com/gogpu/meter"
)

// MetricsFunc measures text for a font.
type MetricsFunc func(f meter.Font, text string) meter.TextMetrics

// FixedMetrics models a monospace font: every rune advances 0.6 em,
// glyphs rise 0.7 em above the baseline and drop 0.05 em below it.
// Empty text measures zero.
func FixedMetrics(f meter.Font, text string) meter.TextMetrics {
	if text == "" {
		return meter.TextMetrics{}
	}
	return meter.TextMetrics{
		Width:   0.6 * f.Size * float64(utf8.RuneCountInString(text)),
		Ascent:  0.7 * f.Size,
		Descent: 0.05 * f.Size,
	}
}

// Canvas records surface calls. It implements both meter.Canvas and
// meter.Surface. It is not safe for concurrent use.
type Canvas struct {
	width, height int

	style    Style
	path     []Arc
	commands []Command

	metrics MetricsFunc
	failure error
}

// Option configures a Canvas.
type Option func(*Canvas)

// WithMetrics replaces FixedMetrics.
func WithMetrics(fn MetricsFunc) Option {
	return func(c *Canvas) {
		c.metrics = fn
	}
}

// NewCanvas creates a recording canvas of the given pixel size.
func NewCanvas(width, height int, opts ...Option) *Canvas {
	c := &Canvas{
		width:   width,
		height:  height,
		metrics: FixedMetrics,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Width implements meter.Canvas.
func (c *Canvas) Width() int { return c.width }

// Height implements meter.Canvas.
func (c *Canvas) Height() int { return c.height }

// Surface implements meter.Canvas.
func (c *Canvas) Surface() meter.Surface { return c }

// Resize changes the reported pixel size.
func (c *Canvas) Resize(width, height int) {
	c.width, c.height = width, height
}

// FailWith makes FillRect, Stroke and FillText return err (after
// recording). Pass nil to succeed again.
func (c *Canvas) FailWith(err error) {
	c.failure = err
}

// Commands returns the recorded commands.
func (c *Canvas) Commands() []Command { return c.commands }

// Reset forgets recorded commands. Style state is kept, as a real
// surface would keep it.
func (c *Canvas) Reset() {
	c.commands = c.commands[:0]
}

// Strokes returns the recorded Stroke commands.
func (c *Canvas) Strokes() []Command { return c.filter(CmdStroke) }

// Texts returns the recorded FillText commands.
func (c *Canvas) Texts() []Command { return c.filter(CmdFillText) }

// Rects returns the recorded FillRect commands.
func (c *Canvas) Rects() []Command { return c.filter(CmdFillRect) }

func (c *Canvas) filter(t CommandType) []Command {
	var out []Command
	for _, cmd := range c.commands {
		if cmd.Type == t {
			out = append(out, cmd)
		}
	}
	return out
}

func (c *Canvas) record(cmd Command) {
	c.commands = append(c.commands, cmd)
}

func (c *Canvas) SetFillColor(col meter.Color) {
	c.style.Fill = col
	c.record(Command{Type: CmdSetFillColor, Color: col})
}

func (c *Canvas) SetStrokeColor(col meter.Color) {
	c.style.Stroke = col
	c.record(Command{Type: CmdSetStrokeColor, Color: col})
}

func (c *Canvas) SetLineWidth(w float64) {
	c.style.LineWidth = w
	c.record(Command{Type: CmdSetLineWidth, Width: w})
}

func (c *Canvas) SetLineCap(lc meter.LineCap) {
	c.style.LineCap = lc
	c.record(Command{Type: CmdSetLineCap, Cap: lc})
}

func (c *Canvas) SetFont(f meter.Font) {
	c.style.Font = f
	c.record(Command{Type: CmdSetFont, Font: f})
}

func (c *Canvas) FillRect(x, y, w, h float64) error {
	c.record(Command{Type: CmdFillRect, Rect: Rect{X: x, Y: y, W: w, H: h}, Style: c.style})
	return c.failure
}

func (c *Canvas) BeginPath() {
	c.path = nil
	c.record(Command{Type: CmdBeginPath})
}

func (c *Canvas) Arc(cx, cy, r, start, end float64, counterclockwise bool) {
	a := Arc{CX: cx, CY: cy, R: r, Start: start, End: end, Counterclockwise: counterclockwise}
	c.path = append(c.path, a)
	c.record(Command{Type: CmdArc, Arc: a})
}

func (c *Canvas) Stroke() error {
	path := make([]Arc, len(c.path))
	copy(path, c.path)
	c.record(Command{Type: CmdStroke, Style: c.style, Path: path})
	return c.failure
}

func (c *Canvas) FillText(text string, x, y float64) error {
	c.record(Command{Type: CmdFillText, Text: text, X: x, Y: y, Style: c.style})
	return c.failure
}

func (c *Canvas) MeasureText(text string) meter.TextMetrics {
	return c.metrics(c.style.Font, text)
}

var (
	_ meter.Canvas  = (*Canvas)(nil)
	_ meter.Surface = (*Canvas)(nil)
)
