package loop

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"
)

func TestStartStates(t *testing.T) {
	c := NewClock(nil)
	if c.Running() {
		t.Fatal("new clock should be idle")
	}
	if got := c.Tick(time.Unix(1, 0)); got != 0 {
		t.Fatalf("idle tick dt = %v", got)
	}
	if err := c.Start(nil); !errors.Is(err, ErrNilCallback) {
		t.Fatalf("Start(nil) = %v", err)
	}
	if err := c.Start(func(float64) {}); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if !c.Running() {
		t.Fatal("clock should be running")
	}
	if err := c.Start(func(float64) {}); !errors.Is(err, ErrRunning) {
		t.Fatalf("second Start = %v", err)
	}
}

func TestStallIsClamped(t *testing.T) {
	var got []float64
	c := NewClock(nil)
	_ = c.Start(func(dt float64) { got = append(got, dt) })

	base := time.Unix(0, 0)
	c.Tick(base)
	c.Tick(base.Add(5000 * time.Millisecond))

	if len(got) != 2 {
		t.Fatalf("callbacks = %d", len(got))
	}
	if got[1] != MaxDelta {
		t.Fatalf("stalled dt = %v want %v", got[1], MaxDelta)
	}
	if c.Delta() != MaxDelta {
		t.Fatalf("Delta = %v", c.Delta())
	}
}

func TestFirstFrameAndSteadyDeltas(t *testing.T) {
	c := NewClock(nil)
	var dts []float64
	_ = c.Start(func(dt float64) { dts = append(dts, dt) })

	base := time.Unix(100, 0)
	c.Tick(base)
	c.Tick(base.Add(16 * time.Millisecond))
	c.Tick(base.Add(26 * time.Millisecond))
	// Clock going backwards never yields a negative step.
	c.Tick(base.Add(20 * time.Millisecond))

	want := []float64{MaxDelta, 0.016, 0.010, 0}
	for i := range want {
		if math.Abs(dts[i]-want[i]) > 1e-12 {
			t.Fatalf("dt[%d] = %v want %v", i, dts[i], want[i])
		}
	}
	if math.Abs(c.Total()-(MaxDelta+0.026)) > 1e-12 {
		t.Fatalf("Total = %v", c.Total())
	}

	c.Reset()
	if c.Total() != 0 || c.Delta() != 0 {
		t.Fatalf("Reset left total=%v delta=%v", c.Total(), c.Delta())
	}
	if !c.Running() {
		t.Fatal("Reset should keep the callback")
	}
}

func TestRunDrivesSyntheticFrames(t *testing.T) {
	c := NewClock(nil)
	n := 0
	_ = c.Start(func(dt float64) {
		n++
		if dt > MaxDelta {
			t.Fatalf("dt %v above MaxDelta", dt)
		}
	})

	frames := Steady(time.Unix(0, 0), 10*time.Millisecond, 120)
	if err := c.Run(context.Background(), frames); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if n != 120 {
		t.Fatalf("frames run = %d", n)
	}
	if frames.Remaining() != 0 {
		t.Fatalf("remaining = %d", frames.Remaining())
	}
	// 1 first frame at MaxDelta, 119 frames at 10ms.
	want := MaxDelta + 119*0.010
	if math.Abs(c.Total()-want) > 1e-9 {
		t.Fatalf("Total = %v want %v", c.Total(), want)
	}
}

func TestRunStopsOnContext(t *testing.T) {
	c := NewClock(nil)
	ctx, cancel := context.WithCancel(context.Background())
	n := 0
	_ = c.Start(func(float64) {
		n++
		if n == 3 {
			cancel()
		}
	})
	err := c.Run(ctx, Steady(time.Unix(0, 0), time.Millisecond, 100))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run = %v", err)
	}
	if n != 3 {
		t.Fatalf("frames after cancel = %d", n)
	}
}

func TestRunRequiresCallback(t *testing.T) {
	c := NewClock(nil)
	if err := c.Run(context.Background(), NewFrames()); !errors.Is(err, ErrNilCallback) {
		t.Fatalf("Run idle = %v", err)
	}
}

func TestTickNowUsesInjectedClock(t *testing.T) {
	now := time.Unix(50, 0)
	c := NewClock(func() time.Time { return now })
	_ = c.Start(func(float64) {})
	c.TickNow()
	now = now.Add(20 * time.Millisecond)
	if dt := c.TickNow(); math.Abs(dt-0.020) > 1e-12 {
		t.Fatalf("dt = %v", dt)
	}
}
