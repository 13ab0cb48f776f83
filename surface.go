package meter

// LineCap specifies the shape of stroke endpoints.
type LineCap int

const (
	// LineCapButt ends a stroke flat at its endpoint.
	LineCapButt LineCap = iota
	// LineCapRound ends a stroke with a half circle.
	LineCapRound
	// LineCapSquare ends a stroke with a half square.
	LineCapSquare
)

// String returns the canvas keyword for the cap.
func (c LineCap) String() string {
	switch c {
	case LineCapButt:
		return "butt"
	case LineCapRound:
		return "round"
	case LineCapSquare:
		return "square"
	default:
		return "unknown"
	}
}

// TextMetrics describes the extent of a measured text run in pixels.
type TextMetrics struct {
	// Width is the advance width of the run.
	Width float64

	// Ascent is the distance from the baseline to the top of the
	// highest glyph actually present in the run (positive).
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the
	// lowest glyph actually present in the run (positive).
	Descent float64
}

// Height returns Ascent + Descent.
func (m TextMetrics) Height() float64 {
	return m.Ascent + m.Descent
}

// Surface is the 2D drawing context a Meter paints on.
//
// The coordinate system has its origin at the top-left, y growing down.
// Angles are in radians from the positive x axis, growing clockwise on
// screen. A Surface keeps style state (colors, line width, cap, font)
// between calls, like an HTML canvas 2D context.
type Surface interface {
	SetFillColor(c Color)
	SetStrokeColor(c Color)
	SetLineWidth(w float64)
	SetLineCap(c LineCap)
	SetFont(f Font)

	// FillRect fills a rectangle with the fill color.
	FillRect(x, y, w, h float64) error

	// BeginPath discards the current path.
	BeginPath()

	// Arc appends a circular arc to the current path.
	Arc(cx, cy, r, start, end float64, counterclockwise bool)

	// Stroke strokes the current path with the stroke color, width and cap.
	Stroke() error

	// FillText draws text with the current font and fill color.
	// y is the alphabetic baseline.
	FillText(text string, x, y float64) error

	// MeasureText measures text with the current font.
	MeasureText(text string) TextMetrics
}

// Canvas is a pixel surface owned by the host.
// Width and Height are read on every draw so that resizes take effect.
type Canvas interface {
	Width() int
	Height() int
	Surface() Surface
}
