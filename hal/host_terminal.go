package hal

import (
	"context"
	"errors"
	"image"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	xdraw "golang.org/x/image/draw"

	"starfield/internal/logging"
)

// halfBlock paints the top half of a cell with the foreground colour and the
// bottom half with the background, giving two pixel rows per terminal row.
const halfBlock = '▀'

// TerminalConfig controls the terminal host runner.
type TerminalConfig struct {
	// Width and Height are the render resolution. Zero derives it from the
	// terminal size times PixelsPerCell.
	Width, Height int
	PixelsPerCell int
	Hz            int
	Ticks         uint64
}

// RunTerminal renders frames into the controlling terminal with tcell. Escape,
// q or Ctrl-C end the run.
func RunTerminal(ctx context.Context, newApp NewAppFunc, cfg TerminalConfig) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	return runTerminal(ctx, screen, newApp, cfg)
}

func runTerminal(ctx context.Context, screen tcell.Screen, newApp NewAppFunc, cfg TerminalConfig) error {
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	if cfg.Hz <= 0 {
		cfg.Hz = 30
	}
	if cfg.PixelsPerCell <= 0 {
		cfg.PixelsPerCell = 4
	}
	cols, rows := screen.Size()
	if cfg.Width <= 0 {
		cfg.Width = cols * cfg.PixelsPerCell
	}
	if cfg.Height <= 0 {
		cfg.Height = rows * 2 * cfg.PixelsPerCell
	}

	h, err := newHost(cfg.Width, cfg.Height)
	if err != nil {
		return err
	}
	app, err := newApp(h)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	t := &termPresenter{screen: screen, h: h}
	go t.pollEvents(cancel)

	s := newTickerScheduler(time.Second/time.Duration(cfg.Hz), cfg.Ticks)
	s.before = t.present
	defer s.stop()

	logging.Logger().Info("terminal run", "cols", cols, "rows", rows, "width", cfg.Width, "height", cfg.Height)
	err = app.Run(ctx, s)
	if errors.Is(err, context.Canceled) && t.quit.Load() {
		return nil
	}
	return err
}

type termPresenter struct {
	screen tcell.Screen
	h      *hostHAL
	buf    *image.RGBA
	quit   atomic.Bool
}

// present downscales the frame to the terminal grid and shows it.
func (t *termPresenter) present() {
	cols, rows := t.screen.Size()
	if cols <= 0 || rows <= 0 {
		return
	}
	if t.buf == nil || t.buf.Rect.Dx() != cols || t.buf.Rect.Dy() != rows*2 {
		t.buf = image.NewRGBA(image.Rect(0, 0, cols, rows*2))
	}
	pm := t.h.d.Pixmap()
	xdraw.ApproxBiLinear.Scale(t.buf, t.buf.Bounds(), pm, pm.Bounds(), xdraw.Src, nil)

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			top := t.buf.RGBAAt(x, y*2)
			bot := t.buf.RGBAAt(x, y*2+1)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bot.R), int32(bot.G), int32(bot.B)))
			t.screen.SetContent(x, y, halfBlock, nil, style)
		}
	}
	t.screen.Show()
}

// pollEvents runs until the screen is finalised.
func (t *termPresenter) pollEvents(stop context.CancelFunc) {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC,
				ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
				t.quit.Store(true)
				stop()
			case ev.Key() == tcell.KeyRune:
				t.h.kbd.emit(KeyEvent{Code: KeyRune, Rune: ev.Rune()})
			}
		case *tcell.EventMouse:
			cx, cy := ev.Position()
			t.h.ptr.set(t.cellToPixel(cx, cy))
			t.h.ptr.scroll(wheelDelta(ev.Buttons()))
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}
}

// cellToPixel maps a cell to the display pixel under its centre.
func (t *termPresenter) cellToPixel(cx, cy int) (x, y float64) {
	cols, rows := t.screen.Size()
	if cols <= 0 || rows <= 0 {
		return 0, 0
	}
	d := t.h.d
	x = (float64(cx) + 0.5) * float64(d.Width()) / float64(cols)
	y = (float64(cy) + 0.5) * float64(d.Height()) / float64(rows)
	return x, y
}

func wheelDelta(b tcell.ButtonMask) (dx, dy float64) {
	if b&tcell.WheelUp != 0 {
		dy++
	}
	if b&tcell.WheelDown != 0 {
		dy--
	}
	if b&tcell.WheelLeft != 0 {
		dx--
	}
	if b&tcell.WheelRight != 0 {
		dx++
	}
	return dx, dy
}
