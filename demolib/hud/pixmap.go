package hud

import (
	"image/color"

	"github.com/gogpu/gg"
)

// PixmapDisplay exposes a gg pixmap as a tinyfont target.
type PixmapDisplay struct {
	pm *gg.Pixmap
}

func NewPixmapDisplay(pm *gg.Pixmap) *PixmapDisplay {
	return &PixmapDisplay{pm: pm}
}

func (d *PixmapDisplay) Size() (x, y int16) {
	if d.pm == nil {
		return 0, 0
	}
	return int16(d.pm.Width()), int16(d.pm.Height())
}

func (d *PixmapDisplay) SetPixel(x, y int16, c color.RGBA) {
	if d.pm == nil {
		return
	}
	d.pm.SetPixel(int(x), int(y), gg.RGBA{
		R: float64(c.R) / 0xff,
		G: float64(c.G) / 0xff,
		B: float64(c.B) / 0xff,
		A: float64(c.A) / 0xff,
	})
}

// Display is a no-op: the pixmap is presented by the host.
func (d *PixmapDisplay) Display() error { return nil }
