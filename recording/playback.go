package recording

import (
	"errors"

	"github.com/gogpu/meter"
)

// Playback replays commands onto a surface, in order, and returns the
// errors of the paint calls joined.
func Playback(cmds []Command, s meter.Surface) error {
	var errs []error
	for _, cmd := range cmds {
		switch cmd.Type {
		case CmdSetFillColor:
			s.SetFillColor(cmd.Color)
		case CmdSetStrokeColor:
			s.SetStrokeColor(cmd.Color)
		case CmdSetLineWidth:
			s.SetLineWidth(cmd.Width)
		case CmdSetLineCap:
			s.SetLineCap(cmd.Cap)
		case CmdSetFont:
			s.SetFont(cmd.Font)
		case CmdBeginPath:
			s.BeginPath()
		case CmdArc:
			a := cmd.Arc
			s.Arc(a.CX, a.CY, a.R, a.Start, a.End, a.Counterclockwise)
		case CmdFillRect:
			r := cmd.Rect
			errs = append(errs, s.FillRect(r.X, r.Y, r.W, r.H))
		case CmdStroke:
			errs = append(errs, s.Stroke())
		case CmdFillText:
			errs = append(errs, s.FillText(cmd.Text, cmd.X, cmd.Y))
		}
	}
	return errors.Join(errs...)
}
