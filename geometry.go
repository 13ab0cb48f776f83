package meter

import "math"

// Arc constants. The gauge spans three quarters of a circle starting at
// 135° (clockwise from the positive x axis), leaving a 90° gap centered
// at the bottom.
const (
	ArcStart  = math.Pi/4 + math.Pi/2
	ArcLength = math.Pi * 2 * 0.75
)

// Geometry holds every size-dependent quantity of a meter, derived from
// the canvas pixel size.
type Geometry struct {
	Width, Height float64

	// LineWidth is the stroke width of both arc layers.
	LineWidth float64

	// Radius of the arc; its diameter spans 75% of the canvas width.
	Radius float64

	LargeFontSize float64
	SmallFontSize float64

	// CenterX, CenterY is the nominal canvas center.
	CenterX, CenterY float64

	// Sagitta is the distance from the chord across the bottom gap to the
	// bottom of the full circle.
	Sagitta float64

	// ArcY is the vertical center of the arc: CenterY shifted down by half
	// the sagitta, which centers the visible part of the arc.
	ArcY float64
}

// ComputeGeometry derives the meter geometry for a canvas size.
func ComputeGeometry(width, height int) Geometry {
	w, h := float64(width), float64(height)
	g := Geometry{
		Width:         w,
		Height:        h,
		LineWidth:     w / 27,
		Radius:        w * 0.75 / 2,
		LargeFontSize: math.Round(w * 0.15),
		CenterX:       w / 2,
		CenterY:       h / 2,
	}
	g.SmallFontSize = g.LargeFontSize / 2
	g.Sagitta = g.Radius * (1 - math.Cos(math.Pi/4))
	g.ArcY = g.CenterY + g.Sagitta/2
	return g
}

// Empty reports whether the canvas has no drawable area.
func (g Geometry) Empty() bool {
	return g.Width <= 0 || g.Height <= 0
}

// TextY is the vertical center of the value/label block, halfway between
// the canvas center and the arc center.
func (g Geometry) TextY() float64 {
	return g.ArcY - (g.ArcY-g.CenterY)/2
}

// ArcEnd returns the end angle of the fill arc for a ratio.
// The ratio is clamped to [0, 1].
func ArcEnd(ratio float64) float64 {
	return ArcStart + ArcLength*clampRatio(ratio)
}

// clampRatio limits a ratio to [0, 1]; NaN becomes 0.
func clampRatio(r float64) float64 {
	if math.IsNaN(r) {
		return 0
	}
	return clamp01(r)
}
