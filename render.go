package meter

import "errors"

// referenceDigits is measured to size the text block, so the value's
// baseline does not move with the digits actually shown.
const referenceDigits = "0123456789"

// paintBackground clears the whole canvas with the background color.
func (m *Meter) paintBackground(s Surface) error {
	s.SetFillColor(m.background)
	return s.FillRect(0, 0, m.geom.Width, m.geom.Height)
}

// paintArc draws the track and, on top of it, the fill up to ratio.
func (m *Meter) paintArc(s Surface, ratio float64) error {
	g := m.geom
	s.SetLineWidth(g.LineWidth)
	s.SetLineCap(LineCapRound)

	s.SetStrokeColor(m.unfilledColor)
	s.BeginPath()
	s.Arc(g.CenterX, g.ArcY, g.Radius, ArcStart, ArcStart+ArcLength, false)
	trackErr := s.Stroke()

	s.SetStrokeColor(m.foreground)
	s.BeginPath()
	s.Arc(g.CenterX, g.ArcY, g.Radius, ArcStart, ArcEnd(ratio), false)
	fillErr := s.Stroke()

	return errors.Join(trackErr, fillErr)
}

// textLayout is the placement of the value and label runs.
type textLayout struct {
	value, label   string
	valueX, labelX float64
	baseline       float64
}

// layoutText measures the value and label and centers them as one block
// around (CenterX, TextY). It leaves the small font selected.
func (m *Meter) layoutText(s Surface) textLayout {
	g := m.geom

	s.SetFont(m.largeFont)
	ref := s.MeasureText(referenceDigits)
	fontHeight := ref.Height()
	baselineOffset := ref.Ascent

	value := m.format(m.value)
	valueWidth := s.MeasureText(value).Width

	s.SetFont(m.smallFont)
	labelWidth := s.MeasureText(m.label).Width

	spacer := fontHeight / 10
	textWidth := valueWidth + spacer + labelWidth
	textX := g.CenterX - textWidth/2

	return textLayout{
		value:    value,
		label:    m.label,
		valueX:   textX,
		labelX:   textX + valueWidth + spacer,
		baseline: g.TextY() - fontHeight/2 + baselineOffset,
	}
}

// paintText draws the value in the large font and foreground color, then
// the label in the small font and small-text color.
func (m *Meter) paintText(s Surface) error {
	l := m.layoutText(s)

	s.SetFont(m.largeFont)
	s.SetFillColor(m.foreground)
	valueErr := s.FillText(l.value, l.valueX, l.baseline)

	s.SetFont(m.smallFont)
	s.SetFillColor(m.smallTextColor)
	labelErr := s.FillText(l.label, l.labelX, l.baseline)

	return errors.Join(valueErr, labelErr)
}
