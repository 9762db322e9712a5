package hal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"starfield/demolib/loop"
	"starfield/internal/logging"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled       bool
	Width, Height int
	Hz            int
	// Ticks stops the run after N frames (0 = run until ctx ends).
	Ticks uint64
	// Snapshot, when set, is a PNG path written with the last frame.
	Snapshot string
}

// RunHeadless runs the app against an off-screen display.
func RunHeadless(ctx context.Context, newApp NewAppFunc, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	h, err := newHost(cfg.Width, cfg.Height)
	if err != nil {
		return err
	}
	app, err := newApp(h)
	if err != nil {
		return err
	}

	s := newTickerScheduler(d, cfg.Ticks)
	defer s.stop()

	log := logging.Logger()
	log.Info("headless run", "width", cfg.Width, "height", cfg.Height, "hz", cfg.Hz, "ticks", cfg.Ticks)
	err = app.Run(ctx, s)
	log.Info("headless stopped", "frames", s.n, "err", err)

	if cfg.Snapshot != "" && (err == nil || errors.Is(err, context.Canceled)) {
		if serr := h.d.SavePNG(cfg.Snapshot); serr != nil {
			return serr
		}
	}
	return err
}

// tickerScheduler hands out one frame per tick, optionally up to a limit.
type tickerScheduler struct {
	t      *time.Ticker
	limit  uint64
	n      uint64
	before func()
}

func newTickerScheduler(d time.Duration, limit uint64) *tickerScheduler {
	return &tickerScheduler{t: time.NewTicker(d), limit: limit}
}

func (s *tickerScheduler) NextFrame(ctx context.Context) (time.Time, error) {
	if s.before != nil && s.n > 0 {
		s.before()
	}
	if s.limit > 0 && s.n >= s.limit {
		return time.Time{}, loop.ErrStopped
	}
	select {
	case <-ctx.Done():
		return time.Time{}, ctx.Err()
	case now := <-s.t.C:
		s.n++
		return now, nil
	}
}

func (s *tickerScheduler) stop() { s.t.Stop() }
