package frameloop

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gogpu/meter"
)

var (
	// ErrRunning is returned by Run when the loop is already running.
	ErrRunning = errors.New("frameloop: already running")

	// ErrStopped is returned once the loop has exited.
	ErrStopped = errors.New("frameloop: stopped")
)

const (
	stateIdle int32 = iota
	stateRunning
	stateStopped
)

// Option configures a Loop.
type Option func(*Loop)

// WithInterval sets the ticker period. The meter still advances by
// elapsed time, so a longer interval paints several frames per tick.
func WithInterval(d time.Duration) Option {
	return func(l *Loop) {
		if d > 0 {
			l.interval = d
		}
	}
}

// WithClock replaces SystemClock.
func WithClock(c Clock) Option {
	return func(l *Loop) {
		l.clock = c
	}
}

type request struct {
	fn    func(*meter.Meter) error
	reply chan error
}

// Loop drives one meter from a single goroutine.
type Loop struct {
	m        *meter.Meter
	interval time.Duration
	clock    Clock

	requests chan request
	stop     chan struct{}
	stopOnce sync.Once
	done     chan struct{}
	state    atomic.Int32
}

// New creates a loop for m. The loop takes ownership: after Run starts,
// touch m only through Do.
func New(m *meter.Meter, opts ...Option) *Loop {
	l := &Loop{
		m:        m,
		interval: meter.FrameInterval,
		clock:    SystemClock{},
		requests: make(chan request),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run processes requests and frames until ctx is done or Stop is called.
// It returns ctx.Err() or nil after Stop.
func (l *Loop) Run(ctx context.Context) error {
	if !l.state.CompareAndSwap(stateIdle, stateRunning) {
		if l.state.Load() == stateStopped {
			return ErrStopped
		}
		return ErrRunning
	}
	defer func() {
		l.state.Store(stateStopped)
		close(l.done)
	}()

	log := meter.Logger()
	var (
		ticker Ticker
		tickC  <-chan time.Time
		last   time.Time
	)
	startTicker := func() {
		if ticker != nil {
			return
		}
		ticker = l.clock.NewTicker(l.interval)
		tickC = ticker.C()
		last = l.clock.Now()
		log.Debug("frameloop: ticker started", slog.Duration("interval", l.interval))
	}
	stopTicker := func() {
		if ticker == nil {
			return
		}
		ticker.Stop()
		ticker, tickC = nil, nil
		log.Debug("frameloop: ticker stopped")
	}
	defer stopTicker()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-l.stop:
			return nil

		case req := <-l.requests:
			req.reply <- req.fn(l.m)
			if l.m.Animating() {
				startTicker()
			} else {
				stopTicker()
			}

		case now := <-tickC:
			dt := now.Sub(last)
			last = now
			if err := l.m.Tick(dt); err != nil {
				log.Warn("frameloop: frame failed", slog.Any("error", err))
			}
			if !l.m.Animating() {
				stopTicker()
			}
		}
	}
}

// Do runs fn on the loop goroutine and returns its error. It blocks
// until the loop picks the request up, so calling Do before Run only
// returns once Run has started (or ctx is done).
func (l *Loop) Do(ctx context.Context, fn func(*meter.Meter) error) error {
	req := request{fn: fn, reply: make(chan error, 1)}
	select {
	case l.requests <- req:
	case <-ctx.Done():
		return ctx.Err()
	case <-l.done:
		return ErrStopped
	}
	select {
	case err := <-req.reply:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// SetValue sets the meter value and draws, starting a transition.
func (l *Loop) SetValue(ctx context.Context, v float64) error {
	return l.Do(ctx, func(m *meter.Meter) error {
		m.SetValue(v)
		return m.Draw()
	})
}

// Stop makes Run return. It is safe to call more than once and from any
// goroutine.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
}

// Done is closed when Run has returned.
func (l *Loop) Done() <-chan struct{} { return l.done }
