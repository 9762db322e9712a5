// Package loop drives a per-frame callback with a clamped delta time.
//
// A Clock is idle until Start registers a callback. Every frame after that
// reports dt = now - previous frame, clamped to [0, MaxDelta], so a stalled
// host (minimised window, suspended terminal) resumes without a jump.
// Callbacks run one at a time on the caller's goroutine.
package loop

import (
	"context"
	"errors"
	"time"
)

// MaxDelta is the largest dt a frame reports, in seconds.
const MaxDelta = 1.0 / 30.0

var (
	ErrNilCallback = errors.New("loop: nil callback")
	ErrRunning     = errors.New("loop: clock already running")
	// ErrStopped is returned by a Scheduler that has no more frames.
	ErrStopped = errors.New("loop: scheduler stopped")
)

// Scheduler hands out frame timestamps. NextFrame blocks until the next frame
// is due.
type Scheduler interface {
	NextFrame(ctx context.Context) (time.Time, error)
}

// Clock converts frame timestamps into clamped deltas.
type Clock struct {
	now func() time.Time
	cb  func(dt float64)

	last  time.Time
	total float64
	delta float64
}

// NewClock returns an idle clock. now defaults to time.Now.
func NewClock(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{now: now}
}

// Start registers cb and moves the clock to running.
func (c *Clock) Start(cb func(dt float64)) error {
	if cb == nil {
		return ErrNilCallback
	}
	if c.cb != nil {
		return ErrRunning
	}
	c.cb = cb
	return nil
}

func (c *Clock) Running() bool { return c.cb != nil }

// Total is the sum of all reported deltas, in seconds.
func (c *Clock) Total() float64 { return c.total }

// Delta is the dt of the most recent frame.
func (c *Clock) Delta() float64 { return c.delta }

// Reset clears the accumulated time. The callback stays registered.
func (c *Clock) Reset() {
	c.last = time.Time{}
	c.total = 0
	c.delta = 0
}

// Tick runs one frame at now and returns the dt passed to the callback.
// The first frame has no predecessor and reports MaxDelta. An idle clock
// ignores ticks.
func (c *Clock) Tick(now time.Time) float64 {
	if c.cb == nil {
		return 0
	}
	dt := MaxDelta
	if !c.last.IsZero() {
		dt = now.Sub(c.last).Seconds()
	}
	if dt > MaxDelta {
		dt = MaxDelta
	}
	if dt < 0 {
		dt = 0
	}
	c.last = now

	c.total += dt
	c.delta = dt
	c.cb(dt)
	return dt
}

// TickNow runs one frame at the clock's current time.
func (c *Clock) TickNow() float64 { return c.Tick(c.now()) }

// Run pulls frames from s until ctx ends or s runs out. A scheduler that
// returns ErrStopped ends the run cleanly.
func (c *Clock) Run(ctx context.Context, s Scheduler) error {
	if c.cb == nil {
		return ErrNilCallback
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		now, err := s.NextFrame(ctx)
		if err != nil {
			if errors.Is(err, ErrStopped) {
				return nil
			}
			return err
		}
		c.Tick(now)
	}
}
