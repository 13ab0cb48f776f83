package meter

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"
)

// Meter is a radial gauge showing a value against a fixed maximum as a
// 270° arc, with a large readout of the value and a small label.
//
// A Meter is not safe for concurrent use. Mutate and draw it from one
// goroutine, or hand it to a frameloop.Loop.
type Meter struct {
	canvas   Canvas
	maxValue float64

	value         float64
	previousValue float64
	label         string

	background     Color
	foreground     Color
	unfilledColor  Color
	smallTextColor Color

	fontFamily string
	fontWeight string
	largeFont  Font
	smallFont  Font

	geom       Geometry
	transition Transition
	pending    time.Duration

	format ValueFormatter
}

// New creates a meter drawing on canvas with the scale ceiling maxValue.
// maxValue must be positive and finite.
func New(canvas Canvas, maxValue float64, opts ...Option) (*Meter, error) {
	if canvas == nil {
		return nil, ErrNilCanvas
	}
	if maxValue <= 0 || math.IsNaN(maxValue) || math.IsInf(maxValue, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMaxValue, maxValue)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	m := &Meter{
		canvas:         canvas,
		maxValue:       maxValue,
		label:          o.label,
		background:     MustParseColor(LightTheme.Background),
		foreground:     MustParseColor(LightTheme.Foreground),
		unfilledColor:  MustParseColor(LightTheme.Unfilled),
		smallTextColor: MustParseColor(LightTheme.SmallText),
		fontFamily:     LightTheme.FontFamily,
		fontWeight:     LightTheme.FontWeight,
		format:         o.valueFormatter(),
	}
	m.updateSizes()
	if o.theme != nil {
		if err := m.ApplyTheme(*o.theme); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// MaxValue returns the scale ceiling.
func (m *Meter) MaxValue() float64 { return m.maxValue }

// Value returns the current value.
func (m *Meter) Value() float64 { return m.value }

// PreviousValue returns the value that was current before the last
// SetValue.
func (m *Meter) PreviousValue() float64 { return m.previousValue }

// SetValue stores a new value and keeps the old one as the previous
// value. The display changes on the next Draw.
func (m *Meter) SetValue(v float64) {
	m.previousValue = m.value
	m.value = v
}

// Ratio returns the fraction of the arc the current value fills, in [0, 1].
func (m *Meter) Ratio() float64 { return m.ratioOf(m.value) }

func (m *Meter) ratioOf(v float64) float64 {
	return clampRatio(v / m.maxValue)
}

// Label returns the text drawn beside the value.
func (m *Meter) Label() string { return m.label }

// SetLabel sets the text drawn beside the value.
func (m *Meter) SetLabel(label string) { m.label = label }

func (m *Meter) Background() Color { return m.background }

func (m *Meter) SetBackground(c Color) { m.background = c }

func (m *Meter) Foreground() Color { return m.foreground }

func (m *Meter) SetForeground(c Color) { m.foreground = c }

// UnfilledColor returns the color of the track.
func (m *Meter) UnfilledColor() Color { return m.unfilledColor }

func (m *Meter) SetUnfilledColor(c Color) { m.unfilledColor = c }

// SmallTextColor returns the color of the label.
func (m *Meter) SmallTextColor() Color { return m.smallTextColor }

func (m *Meter) SetSmallTextColor(c Color) { m.smallTextColor = c }

// SetBackgroundHex parses and sets the background color.
func (m *Meter) SetBackgroundHex(s string) error { return m.setColor(&m.background, s) }

// SetForegroundHex parses and sets the foreground color.
func (m *Meter) SetForegroundHex(s string) error { return m.setColor(&m.foreground, s) }

// SetUnfilledColorHex parses and sets the track color.
func (m *Meter) SetUnfilledColorHex(s string) error { return m.setColor(&m.unfilledColor, s) }

// SetSmallTextColorHex parses and sets the label color.
func (m *Meter) SetSmallTextColorHex(s string) error { return m.setColor(&m.smallTextColor, s) }

func (m *Meter) setColor(dst *Color, s string) error {
	c, err := ParseColor(s)
	if err != nil {
		return err
	}
	*dst = c
	return nil
}

// FontFamily returns the typeface family.
func (m *Meter) FontFamily() string { return m.fontFamily }

// SetFontFamily sets the typeface family and updates both fonts.
func (m *Meter) SetFontFamily(family string) {
	m.fontFamily = family
	m.updateFonts()
}

// FontWeight returns the typeface weight.
func (m *Meter) FontWeight() string { return m.fontWeight }

// SetFontWeight sets the typeface weight and updates both fonts.
func (m *Meter) SetFontWeight(weight string) {
	m.fontWeight = weight
	m.updateFonts()
}

// LargeFont returns the font of the value readout.
func (m *Meter) LargeFont() Font { return m.largeFont }

// SmallFont returns the font of the label; its size is half the large one.
func (m *Meter) SmallFont() Font { return m.smallFont }

// Geometry returns the geometry computed by the last Draw (or New).
func (m *Meter) Geometry() Geometry { return m.geom }

// ApplyTheme sets every non-empty field of t. If a color is invalid
// nothing is changed.
func (m *Meter) ApplyTheme(t Theme) error {
	tc, err := t.colors()
	if err != nil {
		return err
	}
	for _, f := range []struct {
		src *Color
		dst *Color
	}{
		{tc.background, &m.background},
		{tc.foreground, &m.foreground},
		{tc.unfilled, &m.unfilledColor},
		{tc.smallText, &m.smallTextColor},
	} {
		if f.src != nil {
			*f.dst = *f.src
		}
	}
	if t.FontFamily != "" {
		m.fontFamily = t.FontFamily
	}
	if t.FontWeight != "" {
		m.fontWeight = t.FontWeight
	}
	m.updateFonts()
	return nil
}

// updateSizes recomputes everything that depends on the canvas size.
func (m *Meter) updateSizes() {
	m.geom = ComputeGeometry(m.canvas.Width(), m.canvas.Height())
	m.updateFonts()
}

func (m *Meter) updateFonts() {
	m.largeFont, m.smallFont = fontPair(m.fontWeight, m.fontFamily, m.geom.LargeFontSize)
}

// Draw repaints the whole meter and starts the transition of the arc
// from the previous value to the current one. Any transition still in
// progress is cancelled first.
//
// Draw paints the first frame (the previous value); advance the rest
// with Step or Tick.
func (m *Meter) Draw() error {
	m.transition.Cancel()
	m.pending = 0
	m.updateSizes()

	log := Logger()
	if m.geom.Empty() {
		log.Warn("meter: canvas has no area, skipping draw",
			slog.Float64("width", m.geom.Width), slog.Float64("height", m.geom.Height))
		return nil
	}

	startRatio := m.ratioOf(m.previousValue)
	endRatio := m.ratioOf(m.value)
	log.Debug("meter: draw",
		slog.Float64("width", m.geom.Width),
		slog.Float64("height", m.geom.Height),
		slog.Float64("radius", m.geom.Radius),
		slog.Float64("start_ratio", startRatio),
		slog.Float64("end_ratio", endRatio))

	s := m.canvas.Surface()
	err := errors.Join(
		m.paintBackground(s),
		m.paintText(s),
		m.paintArc(s, startRatio),
	)
	m.transition.Start(startRatio, endRatio)
	if err != nil {
		log.Warn("meter: draw failed", slog.Any("error", err))
	}
	return err
}

// Animating reports whether a transition is in progress.
func (m *Meter) Animating() bool { return m.transition.Active() }

// Step paints the next frame of the transition. It does nothing when no
// transition is in progress.
func (m *Meter) Step() error {
	if !m.transition.Active() {
		return nil
	}
	ratio, done := m.transition.Advance()
	err := m.paintArc(m.canvas.Surface(), ratio)
	if done {
		m.pending = 0
		Logger().Debug("meter: transition finished", slog.Float64("ratio", ratio))
	}
	if err != nil {
		Logger().Warn("meter: frame failed", slog.Float64("ratio", ratio), slog.Any("error", err))
	}
	return err
}

// Tick advances the transition by elapsed real time, painting one frame
// per FrameInterval. Leftover time carries over to the next Tick.
func (m *Meter) Tick(dt time.Duration) error {
	if !m.transition.Active() {
		m.pending = 0
		return nil
	}
	m.pending += dt
	var errs []error
	for m.pending >= FrameInterval && m.transition.Active() {
		m.pending -= FrameInterval
		if err := m.Step(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Finish jumps to the end of the transition, painting only the final
// frame.
func (m *Meter) Finish() error {
	if !m.transition.Active() {
		return nil
	}
	m.transition.Start(m.transition.EndRatio(), m.transition.EndRatio())
	return m.Step()
}

// Cancel stops the transition without painting. The arc stays at the
// last painted frame.
func (m *Meter) Cancel() {
	m.transition.Cancel()
	m.pending = 0
}

// Transition returns a copy of the transition state.
func (m *Meter) Transition() Transition { return m.transition }
