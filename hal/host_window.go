//go:build cgo

package hal

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"starfield/internal/buildinfo"
	"starfield/internal/logging"
)

// RunWindow opens a desktop window that shows the display and forwards the
// cursor and key presses. It blocks until the window closes or Escape is
// pressed.
func RunWindow(newApp NewAppFunc, cfg WindowConfig) error {
	cfg = cfg.withDefaults()
	h, err := newHost(cfg.Width, cfg.Height)
	if err != nil {
		return err
	}
	app, err := newApp(h)
	if err != nil {
		return err
	}

	g := &hostGame{h: h, app: app}
	ebiten.SetWindowTitle(buildinfo.Title())
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)
	ebiten.SetTPS(cfg.TPS)

	logging.Logger().Info("window run", "width", cfg.Width, "height", cfg.Height, "scale", cfg.Scale, "tps", cfg.TPS)
	err = ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

type hostGame struct {
	h   *hostHAL
	app App
	img *ebiten.Image
}

func (g *hostGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for _, r := range ebiten.AppendInputChars(nil) {
		g.h.kbd.emit(KeyEvent{Code: KeyRune, Rune: r})
	}

	// Cursor coordinates are already in layout (display) pixels.
	x, y := ebiten.CursorPosition()
	if x >= 0 && y >= 0 && x < g.h.d.Width() && y < g.h.d.Height() {
		g.h.ptr.set(float64(x), float64(y))
	}

	if wx, wy := ebiten.Wheel(); wx != 0 || wy != 0 {
		g.h.ptr.scroll(wx, wy)
	}

	g.app.Step(time.Now())
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	d := g.h.d
	if g.img == nil {
		g.img = ebiten.NewImage(d.Width(), d.Height())
	}
	g.img.WritePixels(d.pm.Data())
	screen.DrawImage(g.img, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.d.Width(), g.h.d.Height()
}
