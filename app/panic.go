package app

import (
	"errors"
	"fmt"
	"image/color"
	"runtime/debug"
	"strings"

	"github.com/gogpu/gg"
	"tinygo.org/x/tinyfont"
)

var ErrFramePanic = errors.New("app: frame panicked")

// recoverFrame turns a panic inside a frame into a stopped app with the panic
// report painted over the display.
func (a *App) recoverFrame() {
	v := recover()
	if v == nil {
		return
	}
	stack := debug.Stack()
	a.fatal = fmt.Errorf("%w: %v", ErrFramePanic, v)
	a.log.Error("frame panic", "frame", a.frames, "panic", v, "stack", string(stack))
	a.drawPanic(v, stack)
}

func (a *App) drawPanic(v any, stack []byte) {
	pm := a.h.Display().Pixmap()
	if pm == nil {
		return
	}
	pm.Clear(gg.White)

	font := a.hud.Font()
	lineHeight := a.hud.LineHeight()
	_, outboxWidth := tinyfont.LineWidth(font, "0")
	if outboxWidth == 0 || lineHeight <= 0 {
		return
	}
	cols := pm.Width() / int(outboxWidth)
	if cols <= 0 {
		cols = 1
	}

	lines := []string{
		"starfield panic:",
		fmt.Sprintf("frame: %d", a.frames),
		fmt.Sprintf("panic: %v", v),
		"stack:",
	}
	for _, line := range strings.Split(string(stack), "\n") {
		if line != "" {
			lines = append(lines, strings.ReplaceAll(line, "\t", "  "))
		}
	}

	fg := color.RGBA{A: 0xff}
	y := lineHeight
	for _, line := range lines {
		for line != "" {
			if int(y) > pm.Height() {
				return
			}
			chunk, rest := splitRunes(line, cols)
			tinyfont.WriteLine(a.text, font, 0, y, chunk, fg)
			y += lineHeight
			line = strings.TrimLeft(rest, " ")
		}
	}
}

// splitRunes cuts s after n runes.
func splitRunes(s string, n int) (head, tail string) {
	if n <= 0 {
		return "", s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i], s[i:]
		}
		count++
	}
	return s, ""
}
