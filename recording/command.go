package recording

import (
	"fmt"
	"strconv"

	"github.com/gogpu/meter"
)

// CommandType identifies the surface call a command records.
type CommandType uint8

const (
	// Style commands
	CmdSetFillColor   CommandType = iota // Set fill color
	CmdSetStrokeColor                    // Set stroke color
	CmdSetLineWidth                      // Set stroke width
	CmdSetLineCap                        // Set stroke cap
	CmdSetFont                           // Set font

	// Path commands
	CmdBeginPath // Discard the current path
	CmdArc       // Append an arc

	// Drawing commands
	CmdFillRect // Fill a rectangle
	CmdStroke   // Stroke the current path
	CmdFillText // Draw text
)

var commandTypeNames = [...]string{
	CmdSetFillColor:   "SetFillColor",
	CmdSetStrokeColor: "SetStrokeColor",
	CmdSetLineWidth:   "SetLineWidth",
	CmdSetLineCap:     "SetLineCap",
	CmdSetFont:        "SetFont",
	CmdBeginPath:      "BeginPath",
	CmdArc:            "Arc",
	CmdFillRect:       "FillRect",
	CmdStroke:         "Stroke",
	CmdFillText:       "FillText",
}

// String returns the name of the surface call.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Arc is a circular arc segment of a path.
type Arc struct {
	CX, CY, R        float64
	Start, End       float64
	Counterclockwise bool
}

// Sweep returns the angular length of the arc in radians.
func (a Arc) Sweep() float64 {
	if a.Counterclockwise {
		return a.Start - a.End
	}
	return a.End - a.Start
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Style is the drawing state in effect when a paint command ran.
type Style struct {
	Fill      meter.Color
	Stroke    meter.Color
	LineWidth float64
	LineCap   meter.LineCap
	Font      meter.Font
}

// Command is one recorded surface call. Only the fields that belong to
// Type are set.
type Command struct {
	Type CommandType

	// Color for CmdSetFillColor and CmdSetStrokeColor.
	Color meter.Color
	// Width for CmdSetLineWidth.
	Width float64
	// Cap for CmdSetLineCap.
	Cap meter.LineCap
	// Font for CmdSetFont.
	Font meter.Font

	// Arc for CmdArc.
	Arc Arc
	// Rect for CmdFillRect.
	Rect Rect
	// Text and its baseline origin for CmdFillText.
	Text string
	X, Y float64

	// Style for CmdFillRect, CmdStroke and CmdFillText.
	Style Style
	// Path for CmdStroke.
	Path []Arc
}

// String formats the command on one line.
func (c Command) String() string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', 3, 64) }
	switch c.Type {
	case CmdSetFillColor, CmdSetStrokeColor:
		return fmt.Sprintf("%s %s", c.Type, c.Color)
	case CmdSetLineWidth:
		return fmt.Sprintf("%s %s", c.Type, f(c.Width))
	case CmdSetLineCap:
		return fmt.Sprintf("%s %s", c.Type, c.Cap)
	case CmdSetFont:
		return fmt.Sprintf("%s %q", c.Type, c.Font)
	case CmdArc:
		return fmt.Sprintf("%s center=(%s,%s) r=%s start=%s end=%s ccw=%t", c.Type,
			f(c.Arc.CX), f(c.Arc.CY), f(c.Arc.R), f(c.Arc.Start), f(c.Arc.End), c.Arc.Counterclockwise)
	case CmdFillRect:
		return fmt.Sprintf("%s (%s,%s %sx%s) fill=%s", c.Type,
			f(c.Rect.X), f(c.Rect.Y), f(c.Rect.W), f(c.Rect.H), c.Style.Fill)
	case CmdStroke:
		return fmt.Sprintf("%s arcs=%d color=%s width=%s cap=%s", c.Type,
			len(c.Path), c.Style.Stroke, f(c.Style.LineWidth), c.Style.LineCap)
	case CmdFillText:
		return fmt.Sprintf("%s %q at (%s,%s) font=%q fill=%s", c.Type,
			c.Text, f(c.X), f(c.Y), c.Style.Font, c.Style.Fill)
	default:
		return c.Type.String()
	}
}
