package canvas

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"

	"starfield/demolib/vmath"
)

// ParseColor accepts "#rgb", "#rrggbb" or an SVG colour name ("white", "skyblue").
func ParseColor(s string) (colorful.Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		if len(s) == 4 {
			s = "#" + strings.Repeat(s[1:2], 2) + strings.Repeat(s[2:3], 2) + strings.Repeat(s[3:4], 2)
		}
		c, err := colorful.Hex(s)
		if err != nil {
			return colorful.Color{}, fmt.Errorf("canvas: bad colour %q: %w", s, err)
		}
		return c, nil
	}
	rgba, ok := colornames.Map[strings.ToLower(s)]
	if !ok {
		return colorful.Color{}, fmt.Errorf("canvas: unknown colour %q", s)
	}
	c, _ := colorful.MakeColor(rgba)
	return c, nil
}

// WithAlpha returns c with alpha a in [0, 1].
func WithAlpha(c colorful.Color, a float64) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(vmath.Clamp(a, 0, 1)*0xFF + 0.5)}
}

// Opaque returns c as a fully opaque colour.
func Opaque(c colorful.Color) color.NRGBA {
	return WithAlpha(c, 1)
}
