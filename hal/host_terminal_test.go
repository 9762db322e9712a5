package hal

import (
	"context"
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestRunTerminalRendersAndQuits(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")

	var (
		host    HAL
		cell    rune
		px, py  float64
		tracked bool
	)
	err := runTerminal(context.Background(), screen, func(h HAL) (App, error) {
		host = h
		return &frameApp{h: h, onFrame: func(n int) error {
			if err := paint(h, color.NRGBA{R: 0xff, A: 0xff}); err != nil {
				return err
			}
			switch {
			case n == 3:
				cell, _, _, _ = screen.GetContent(0, 0)
				_ = screen.PostEvent(tcell.NewEventMouse(40, 12, tcell.ButtonNone, tcell.ModNone))
			case n > 3 && !tracked:
				if x, y, ok := h.Pointer().Position(); ok {
					px, py, tracked = x, y, true
					_ = screen.PostEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
				}
			}
			return nil
		}}, nil
	}, TerminalConfig{Width: 320, Height: 200, Hz: 500, Ticks: 2000})
	if err != nil {
		t.Fatalf("runTerminal: %v", err)
	}
	if host == nil {
		t.Fatal("app never built")
	}
	if cell != halfBlock {
		t.Fatalf("cell (0,0) = %q", cell)
	}
	if !tracked {
		t.Fatal("mouse event never reached the pointer")
	}
	cols, rows := 80, 25
	wantX := 40.5 * 320 / float64(cols)
	wantY := 12.5 * 200 / float64(rows)
	if px != wantX || py != wantY {
		t.Fatalf("pointer = %v,%v want %v,%v", px, py, wantX, wantY)
	}
}

func TestRunTerminalDerivesResolution(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	var w, h int
	err := runTerminal(context.Background(), screen, func(hh HAL) (App, error) {
		w, h = hh.Display().Width(), hh.Display().Height()
		return &frameApp{h: hh}, nil
	}, TerminalConfig{PixelsPerCell: 2, Hz: 1000, Ticks: 1})
	if err != nil {
		t.Fatalf("runTerminal: %v", err)
	}
	if w != 80*2 || h != 25*2*2 {
		t.Fatalf("resolution %dx%d", w, h)
	}
}
