package canvas

import (
	"image/color"

	"github.com/gogpu/gg"
)

type ggStyle struct {
	fill   color.Color
	stroke color.Color
}

// GG is a Surface backed by a gg software context.
//
// gg keeps one brush for both fill and stroke and its Push/Pop only covers the
// transform, so GG tracks the two colours itself and selects the brush right
// before each Fill or Stroke.
type GG struct {
	dc    *gg.Context
	style ggStyle
	stack []ggStyle
}

// NewGG wraps dc. Fill and stroke start as opaque white.
func NewGG(dc *gg.Context) *GG {
	return &GG{
		dc: dc,
		style: ggStyle{
			fill:   color.White,
			stroke: color.White,
		},
	}
}

// Context returns the underlying gg context.
func (s *GG) Context() *gg.Context { return s.dc }

func (s *GG) Width() int  { return s.dc.Width() }
func (s *GG) Height() int { return s.dc.Height() }

func (s *GG) Save() {
	s.stack = append(s.stack, s.style)
	s.dc.Push()
}

func (s *GG) Restore() {
	if n := len(s.stack); n > 0 {
		s.style = s.stack[n-1]
		s.stack = s.stack[:n-1]
	}
	s.dc.Pop()
}

func (s *GG) Translate(x, y float64) { s.dc.Translate(x, y) }

func (s *GG) SetFillColor(c color.Color)   { s.style.fill = c }
func (s *GG) SetStrokeColor(c color.Color) { s.style.stroke = c }
func (s *GG) FillColor() color.Color       { return s.style.fill }
func (s *GG) StrokeColor() color.Color     { return s.style.stroke }

func (s *GG) BeginPath()              { s.dc.ClearPath() }
func (s *GG) MoveTo(x, y float64)     { s.dc.MoveTo(x, y) }
func (s *GG) LineTo(x, y float64)     { s.dc.LineTo(x, y) }
func (s *GG) ClosePath()              { s.dc.ClosePath() }
func (s *GG) Rect(x, y, w, h float64) { s.dc.DrawRectangle(x, y, w, h) }

func (s *GG) Arc(x, y, r, startAngle, endAngle float64) {
	s.dc.DrawArc(x, y, r, startAngle, endAngle)
}

func (s *GG) Fill() error {
	s.dc.SetFillBrush(gg.Solid(toRGBA(s.style.fill)))
	return s.dc.Fill()
}

func (s *GG) Stroke() error {
	s.dc.SetStrokeBrush(gg.Solid(toRGBA(s.style.stroke)))
	return s.dc.Stroke()
}

// toRGBA converts through NRGBA so translucent colours reach gg unpremultiplied.
func toRGBA(c color.Color) gg.RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return gg.RGBA{
		R: float64(n.R) / 0xFF,
		G: float64(n.G) / 0xFF,
		B: float64(n.B) / 0xFF,
		A: float64(n.A) / 0xFF,
	}
}
