package canvas

import (
	"errors"
	"fmt"
	"image/color"

	"starfield/demolib/vmath"
)

var ErrInvalidSurface = errors.New("canvas: invalid surface")

// Black is the default clear colour.
var Black color.Color = color.NRGBA{A: 0xFF}

// Canvas draws onto the bound Surface.
type Canvas struct {
	s Surface
}

// New returns a canvas bound to s.
func New(s Surface) (*Canvas, error) {
	c := &Canvas{}
	if err := c.Bind(s); err != nil {
		return nil, err
	}
	return c, nil
}

// Bind attaches the canvas to s. Zero-sized surfaces are rejected.
func (c *Canvas) Bind(s Surface) error {
	if s == nil {
		return fmt.Errorf("%w: nil surface", ErrInvalidSurface)
	}
	if s.Width() <= 0 || s.Height() <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidSurface, s.Width(), s.Height())
	}
	c.s = s
	return nil
}

func (c *Canvas) Surface() Surface { return c.s }
func (c *Canvas) Width() int       { return c.s.Width() }
func (c *Canvas) Height() int      { return c.s.Height() }

// ScopedDraw saves the surface state, runs body and restores the state on
// every exit path, including a panic in body.
func (c *Canvas) ScopedDraw(body func() error) error {
	c.s.Save()
	defer c.s.Restore()
	return body()
}

// TranslateToCenter moves the origin to the middle of the surface.
func (c *Canvas) TranslateToCenter() {
	c.s.Translate(float64(c.s.Width())*0.5, float64(c.s.Height())*0.5)
}

// Clear paints the whole visible area with col (opaque black when nil). The
// rectangle is twice the surface size so it covers a translated origin. The
// current fill colour is left unchanged.
func (c *Canvas) Clear(col color.Color) error {
	if col == nil {
		col = Black
	}
	w := float64(c.s.Width())
	h := float64(c.s.Height())
	return c.ClearRect(-w, -h, w*2, h*2, col)
}

// ClearRect fills one rectangle with col and restores the fill colour.
func (c *Canvas) ClearRect(x, y, w, h float64, col color.Color) error {
	prev := c.s.FillColor()
	c.s.SetFillColor(col)
	c.s.BeginPath()
	c.s.Rect(x, y, w, h)
	err := c.s.Fill()
	c.s.SetFillColor(prev)
	return err
}

func (c *Canvas) SetFill(col color.Color)   { c.s.SetFillColor(col) }
func (c *Canvas) SetStroke(col color.Color) { c.s.SetStrokeColor(col) }

// FillCircle fills a full circle of radius r at (x, y).
func (c *Canvas) FillCircle(x, y, r float64) error {
	return c.FillArc(x, y, r, 0, vmath.TwoPi, true)
}

// FillArc fills the arc from start to end (radians), closing the path first
// when closePath is set.
func (c *Canvas) FillArc(x, y, r, start, end float64, closePath bool) error {
	c.s.BeginPath()
	c.s.Arc(x, y, r, start, end)
	if closePath {
		c.s.ClosePath()
	}
	return c.s.Fill()
}

// DrawLine strokes a segment from (x1, y1) to (x2, y2).
func (c *Canvas) DrawLine(x1, y1, x2, y2 float64) error {
	c.s.BeginPath()
	c.s.MoveTo(x1, y1)
	c.s.LineTo(x2, y2)
	c.s.ClosePath()
	return c.s.Stroke()
}
