package loop

import (
	"context"
	"time"
)

// Frames is a finite Scheduler that replays fixed timestamps without waiting.
type Frames struct {
	times []time.Time
	next  int
}

// NewFrames replays times in order.
func NewFrames(times ...time.Time) *Frames {
	return &Frames{times: times}
}

// Steady returns n frames spaced step apart, starting at start.
func Steady(start time.Time, step time.Duration, n int) *Frames {
	times := make([]time.Time, n)
	for i := range times {
		times[i] = start.Add(time.Duration(i) * step)
	}
	return &Frames{times: times}
}

func (f *Frames) NextFrame(ctx context.Context) (time.Time, error) {
	if err := ctx.Err(); err != nil {
		return time.Time{}, err
	}
	if f.next >= len(f.times) {
		return time.Time{}, ErrStopped
	}
	t := f.times[f.next]
	f.next++
	return t, nil
}

// Remaining is the number of frames not yet handed out.
func (f *Frames) Remaining() int { return len(f.times) - f.next }
