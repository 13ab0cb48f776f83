// Package frameloop runs a meter on its own goroutine.
//
// A [Loop] owns a *meter.Meter. Other goroutines reach it only through
// [Loop.Do], which runs a function on the loop goroutine and waits for
// its result. While the meter is animating the loop ticks it at the
// frame interval; when the transition ends the ticker is stopped, so an
// idle loop costs nothing.
//
//	l := frameloop.New(m)
//	go l.Run(ctx)
//
//	// from any goroutine
//	l.SetValue(ctx, 73)
//
// Time comes from a [Clock], which tests replace with a fake one.
package frameloop
