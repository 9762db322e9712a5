package hal

import (
	"fmt"
	"sync"

	"github.com/gogpu/gg"

	"starfield/demolib/canvas"
	"starfield/internal/logging"
)

type hostHAL struct {
	d   *hostDisplay
	ptr *hostPointer
	kbd *hostKeyboard
}

// New returns a host HAL with a width×height software display.
func New(width, height int) (HAL, error) {
	return newHost(width, height)
}

func newHost(width, height int) (*hostHAL, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	return &hostHAL{
		d:   newHostDisplay(width, height),
		ptr: &hostPointer{},
		kbd: newHostKeyboard(),
	}, nil
}

func (h *hostHAL) Display() Display   { return h.d }
func (h *hostHAL) Pointer() Pointer   { return h.ptr }
func (h *hostHAL) Keyboard() Keyboard { return h.kbd }

type hostDisplay struct {
	pm *gg.Pixmap
	dc *gg.Context
	s  *canvas.GG
}

func newHostDisplay(width, height int) *hostDisplay {
	pm := gg.NewPixmap(width, height)
	dc := gg.NewContext(width, height, gg.WithPixmap(pm))
	return &hostDisplay{pm: pm, dc: dc, s: canvas.NewGG(dc)}
}

func (d *hostDisplay) Width() int              { return d.pm.Width() }
func (d *hostDisplay) Height() int             { return d.pm.Height() }
func (d *hostDisplay) Surface() canvas.Surface { return d.s }
func (d *hostDisplay) Pixmap() *gg.Pixmap      { return d.pm }

func (d *hostDisplay) SavePNG(path string) error {
	if err := d.dc.SavePNG(path); err != nil {
		return fmt.Errorf("hal: snapshot %s: %w", path, err)
	}
	logging.Logger().Info("snapshot written", "path", path, "width", d.Width(), "height", d.Height())
	return nil
}

// hostPointer is written by input goroutines and read by the frame callback.
type hostPointer struct {
	mu     sync.Mutex
	x, y   float64
	wx, wy float64
	seen   bool
}

func (p *hostPointer) Position() (x, y float64, ok bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.x, p.y, p.seen
}

func (p *hostPointer) Wheel() (x, y float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.wx, p.wy
}

func (p *hostPointer) scroll(dx, dy float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.wx += dx
	p.wy += dy
}

func (p *hostPointer) set(x, y float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.x, p.y, p.seen = x, y, true
}

type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, 64)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

// emit drops the event when nobody is draining the queue.
func (k *hostKeyboard) emit(ev KeyEvent) {
	select {
	case k.ch <- ev:
	default:
	}
}
