// Package hal is the boundary between the demo and the machine it runs on:
// a pixel display, a pointer and a keyboard, plus the host loops that drive
// frames (window, terminal, headless).
package hal

import (
	"context"
	"errors"
	"time"

	"github.com/gogpu/gg"

	"starfield/demolib/canvas"
	"starfield/demolib/loop"
)

var (
	ErrNotImplemented = errors.New("not implemented")
	ErrInvalidSize    = errors.New("hal: invalid display size")
)

// Display is a software-rendered RGBA frame.
type Display interface {
	Width() int
	Height() int
	// Surface draws into the frame.
	Surface() canvas.Surface
	// Pixmap is the frame's pixel store, shared with the presenters.
	Pixmap() *gg.Pixmap
	SavePNG(path string) error
}

// Pointer reports the last known pointer location in display pixels and the
// scroll accumulated since the host started.
type Pointer interface {
	// Position returns ok=false until the host has seen the pointer.
	Position() (x, y float64, ok bool)
	Wheel() (x, y float64)
}

// KeyCode is a minimal key identifier.
type KeyCode uint8

const (
	KeyUnknown KeyCode = iota
	KeyRune
	KeyEscape
)

// KeyEvent is a key press.
type KeyEvent struct {
	Code KeyCode
	Rune rune
}

// Keyboard provides key presses (best-effort on each host).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// HAL provides the only contact point between the demo and the outside world.
type HAL interface {
	Display() Display
	Pointer() Pointer
	Keyboard() Keyboard
}

// App is what a host drives. Window hosts call Step once per display frame;
// headless and terminal hosts hand their scheduler to Run.
type App interface {
	Step(now time.Time)
	Run(ctx context.Context, s loop.Scheduler) error
}

// NewAppFunc builds the app once the host HAL exists.
type NewAppFunc func(HAL) (App, error)
