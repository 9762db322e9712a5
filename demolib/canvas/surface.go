// Package canvas wraps a persistent 2D drawing surface with the small set of
// immediate-mode helpers the demos use.
//
// A Canvas is bound to one Surface for its lifetime. The Surface is owned by the
// host; the canvas never creates, resizes or destroys it.
package canvas

import "image/color"

// Surface is an immediate-mode 2D drawing target with a fixed pixel size.
//
// Save/Restore must cover the transform and the fill/stroke colours. Path
// building calls accumulate until Fill or Stroke consumes the path.
type Surface interface {
	Width() int
	Height() int

	Save()
	Restore()
	Translate(x, y float64)

	SetFillColor(c color.Color)
	SetStrokeColor(c color.Color)
	FillColor() color.Color
	StrokeColor() color.Color

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Arc(x, y, r, startAngle, endAngle float64)
	Rect(x, y, w, h float64)
	ClosePath()
	Fill() error
	Stroke() error
}
