// Package app wires the starfield into a host: it owns the canvas, the
// field, the frame clock and the HUD, and runs one frame per host tick.
package app

import (
	"context"
	"fmt"
	"image/color"
	"log/slog"
	"time"

	"tinygo.org/x/drivers"

	"starfield/demolib/canvas"
	"starfield/demolib/hud"
	"starfield/demolib/loop"
	"starfield/demolib/rng"
	"starfield/demos/starfield"
	"starfield/hal"
	"starfield/internal/buildinfo"
	"starfield/internal/logging"
)

// App is the simulation context. Only the frame callback touches its state.
type App struct {
	h   hal.HAL
	cfg Config
	log *slog.Logger

	c     *canvas.Canvas
	rnd   *rng.Rand
	field *starfield.Field
	clock *loop.Clock

	hud  *hud.HUD
	text drivers.Displayer
	bg   color.Color

	frames     uint64
	drawErrors uint64
	paused     bool
	fatal      error
}

// New binds the host display, seeds the generator, builds the field and
// starts the frame clock.
func New(h hal.HAL, cfg Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	d := h.Display()
	c, err := canvas.New(d.Surface())
	if err != nil {
		return nil, err
	}
	bg, err := canvas.ParseColor(cfg.Background)
	if err != nil {
		return nil, fmt.Errorf("%w: background: %v", ErrInvalidConfig, err)
	}

	rnd := rng.New(0)
	if cfg.Seed != nil {
		rnd.Seed(*cfg.Seed)
	} else {
		rnd.SeedFromTime()
	}

	field, err := starfield.NewField(cfg.Stars, c.Width(), c.Height(), rnd)
	if err != nil {
		return nil, err
	}
	c.TranslateToCenter()

	a := &App{
		h:     h,
		cfg:   cfg,
		log:   logging.Logger().With("component", "app"),
		c:     c,
		rnd:   rnd,
		field: field,
		clock: loop.NewClock(nil),
		bg:    canvas.Opaque(bg),
		text:  hud.NewPixmapDisplay(d.Pixmap()),
	}
	a.hud = hud.New(a.infoLines()...)
	a.hud.SetEnabled(cfg.HUD)
	if err := a.clock.Start(a.frame); err != nil {
		return nil, err
	}

	a.log.Info("starfield ready",
		"width", c.Width(), "height", c.Height(),
		"seed", rnd.InitialSeed(), "stars", cfg.Stars.Count,
		"growth", cfg.Stars.Growth, "speed_source", cfg.Stars.Speed)
	return a, nil
}

func (a *App) infoLines() []string {
	hint := "space pause  h hud"
	if a.cfg.Stars.Speed == starfield.SpeedPointer {
		hint = "move the pointer to change speed"
	}
	return []string{
		buildinfo.Title(),
		fmt.Sprintf("seed %d", a.rnd.InitialSeed()),
		hint,
	}
}

func (a *App) Field() *starfield.Field { return a.field }
func (a *App) HUD() *hud.HUD           { return a.hud }
func (a *App) Frames() uint64          { return a.frames }
func (a *App) Seed() uint32            { return a.rnd.InitialSeed() }
func (a *App) Paused() bool            { return a.paused }

// Err is the error that stopped the app, if any.
func (a *App) Err() error { return a.fatal }

// Step runs one frame at now. It does nothing once a frame has panicked.
func (a *App) Step(now time.Time) {
	if a.fatal != nil {
		return
	}
	a.clock.Tick(now)
}

// Run pulls frames from s until ctx ends, s runs out or a frame panics.
func (a *App) Run(ctx context.Context, s loop.Scheduler) error {
	if a.fatal != nil {
		return a.fatal
	}
	return a.clock.Run(ctx, &guardedScheduler{s: s, a: a})
}

// guardedScheduler stops the clock after a panicked frame.
type guardedScheduler struct {
	s loop.Scheduler
	a *App
}

func (g *guardedScheduler) NextFrame(ctx context.Context) (time.Time, error) {
	if g.a.fatal != nil {
		return time.Time{}, g.a.fatal
	}
	return g.s.NextFrame(ctx)
}

func (a *App) frame(dt float64) {
	defer a.recoverFrame()

	a.frames++
	a.handleKeys()
	a.hud.Observe(dt)
	if a.paused {
		dt = 0
	}
	if x, y, ok := a.h.Pointer().Position(); ok {
		a.field.SetPointer(x, y)
	}

	err := a.c.Clear(a.bg)
	if err == nil {
		err = a.c.ScopedDraw(func() error {
			return a.field.UpdateAndDraw(dt, a.c)
		})
	}
	if err != nil {
		a.drawErrors++
		if a.drawErrors == 1 {
			a.log.Warn("frame draw failed", "frame", a.frames, "err", err)
		} else {
			a.log.Debug("frame draw failed", "frame", a.frames, "err", err)
		}
	}

	if err := a.hud.Draw(a.text, a.field.Len()); err != nil {
		a.log.Debug("hud draw failed", "err", err)
	}
}

func (a *App) handleKeys() {
	kb := a.h.Keyboard()
	if kb == nil {
		return
	}
	ch := kb.Events()
	for {
		select {
		case ev := <-ch:
			if ev.Code != hal.KeyRune {
				continue
			}
			switch ev.Rune {
			case ' ':
				a.paused = !a.paused
				a.log.Debug("pause", "paused", a.paused)
			case 'h', 'H':
				a.hud.SetEnabled(!a.hud.Enabled())
			}
		default:
			return
		}
	}
}
