package meter

import "time"

// Animation timing. A transition always takes TransitionSeconds at
// FrameRate, whatever the size of the jump: larger jumps move the arc
// faster, not for longer.
const (
	FrameRate         = 60
	TransitionSeconds = 0.66

	// TransitionFrames divides the ratio delta into per-frame steps.
	TransitionFrames = FrameRate * TransitionSeconds

	// FrameInterval is the real time between two frames.
	FrameInterval = time.Second / FrameRate
)

// TransitionDuration is the nominal wall-clock length of a transition.
const TransitionDuration = time.Duration(TransitionSeconds * float64(time.Second))

// Transition sweeps a ratio from a start to an end value in fixed steps.
//
//	Idle --Start--> Animating --Advance (target reached)--> Idle
//	                Animating --Cancel--> Idle
//
// The zero value is Idle.
type Transition struct {
	ratio    float64
	endRatio float64
	step     float64
	active   bool
}

// Start begins a sweep from one ratio to another, replacing any sweep in
// progress.
func (t *Transition) Start(from, to float64) {
	t.ratio = from
	t.endRatio = to
	t.step = (to - from) / TransitionFrames
	t.active = true
}

// Advance moves the sweep one frame. It returns the ratio to paint for
// this frame and whether the sweep is finished. The finishing frame
// always returns exactly the end ratio, including for zero-length sweeps.
func (t *Transition) Advance() (ratio float64, done bool) {
	if !t.active {
		return t.endRatio, true
	}
	if (t.step > 0 && t.ratio < t.endRatio) || (t.step < 0 && t.ratio > t.endRatio) {
		ratio = t.ratio
		t.ratio += t.step
		return ratio, false
	}
	t.ratio = t.endRatio
	t.active = false
	return t.endRatio, true
}

// Cancel stops the sweep where it is.
func (t *Transition) Cancel() {
	t.active = false
}

// Active reports whether a sweep is in progress.
func (t *Transition) Active() bool { return t.active }

// Ratio returns the ratio the next frame will paint.
func (t *Transition) Ratio() float64 { return t.ratio }

// EndRatio returns the target ratio.
func (t *Transition) EndRatio() float64 { return t.endRatio }

// StepSize returns the per-frame ratio increment (negative when
// sweeping down).
func (t *Transition) StepSize() float64 { return t.step }

// FrameCount returns how many Advance calls a sweep from one ratio to
// another takes, the finishing frame included. It is always at least 1.
func FrameCount(from, to float64) int {
	var t Transition
	t.Start(from, to)
	n := 0
	for {
		n++
		if _, done := t.Advance(); done {
			return n
		}
	}
}
