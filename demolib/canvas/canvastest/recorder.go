// Package canvastest provides a canvas.Surface that records calls instead of drawing.
package canvastest

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
)

// Op is one recorded surface call.
type Op struct {
	Name  string
	Args  []float64
	Color color.Color
}

func (o Op) String() string {
	if len(o.Args) == 0 {
		return o.Name
	}
	parts := make([]string, len(o.Args))
	for i, a := range o.Args {
		parts[i] = fmt.Sprintf("%g", a)
	}
	return o.Name + "(" + strings.Join(parts, ",") + ")"
}

type style struct {
	fill, stroke color.Color
	tx, ty       float64
}

// Recorder implements canvas.Surface. Fill and Stroke record the colour in
// effect at the time of the call.
type Recorder struct {
	W, H int

	// FailFill makes Fill return an error.
	FailFill bool

	Ops   []Op
	cur   style
	stack []style
}

func New(w, h int) *Recorder {
	return &Recorder{W: w, H: h, cur: style{fill: color.White, stroke: color.White}}
}

func (r *Recorder) add(name string, args ...float64) {
	r.Ops = append(r.Ops, Op{Name: name, Args: args})
}

// Depth is the number of unmatched Save calls.
func (r *Recorder) Depth() int { return len(r.stack) }

// Offset is the accumulated translation.
func (r *Recorder) Offset() (x, y float64) { return r.cur.tx, r.cur.ty }

// Names lists the recorded call names in order.
func (r *Recorder) Names() []string {
	out := make([]string, len(r.Ops))
	for i, op := range r.Ops {
		out[i] = op.Name
	}
	return out
}

// Find returns the recorded ops with the given name.
func (r *Recorder) Find(name string) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Name == name {
			out = append(out, op)
		}
	}
	return out
}

func (r *Recorder) Reset() { r.Ops = r.Ops[:0] }

func (r *Recorder) Width() int  { return r.W }
func (r *Recorder) Height() int { return r.H }

func (r *Recorder) Save() {
	r.stack = append(r.stack, r.cur)
	r.add("Save")
}

func (r *Recorder) Restore() {
	if n := len(r.stack); n > 0 {
		r.cur = r.stack[n-1]
		r.stack = r.stack[:n-1]
	}
	r.add("Restore")
}

func (r *Recorder) Translate(x, y float64) {
	r.cur.tx += x
	r.cur.ty += y
	r.add("Translate", x, y)
}

func (r *Recorder) SetFillColor(c color.Color)   { r.cur.fill = c }
func (r *Recorder) SetStrokeColor(c color.Color) { r.cur.stroke = c }
func (r *Recorder) FillColor() color.Color       { return r.cur.fill }
func (r *Recorder) StrokeColor() color.Color     { return r.cur.stroke }

func (r *Recorder) BeginPath()          { r.add("BeginPath") }
func (r *Recorder) MoveTo(x, y float64) { r.add("MoveTo", x, y) }
func (r *Recorder) LineTo(x, y float64) { r.add("LineTo", x, y) }
func (r *Recorder) ClosePath()          { r.add("ClosePath") }

func (r *Recorder) Arc(x, y, rad, start, end float64) {
	r.add("Arc", x, y, rad, start, end)
}

func (r *Recorder) Rect(x, y, w, h float64) {
	r.add("Rect", x, y, w, h)
}

func (r *Recorder) Fill() error {
	r.Ops = append(r.Ops, Op{Name: "Fill", Color: r.cur.fill})
	if r.FailFill {
		return errors.New("canvastest: fill failed")
	}
	return nil
}

func (r *Recorder) Stroke() error {
	r.Ops = append(r.Ops, Op{Name: "Stroke", Color: r.cur.stroke})
	return nil
}
