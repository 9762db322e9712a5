// Package starfield simulates stars flying outward from the centre of a
// surface, growing and leaving longer trails as they speed up.
//
// Coordinates are centre-relative: the canvas is expected to be translated so
// that (0, 0) is the middle of the surface. Stars live in one slice and are
// addressed by index; a star that leaves the surface is respawned in place.
package starfield

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"starfield/demolib/canvas"
	"starfield/demolib/rng"
	"starfield/demolib/vmath"
)

// Field owns the stars and the bounds they move in.
type Field struct {
	p     Params
	rnd   *rng.Rand
	color colorful.Color

	w, h        float64
	maxDistance float64

	stars []Star

	spawnIn  float64
	pointer  vmath.Vec2
	modifier float64

	respawns uint64
}

// NewField builds a field for a w×h surface. With GrowthFixed every star is
// created and respawned here, consuming values from r in order.
func NewField(p Params, w, h int, r *rng.Rand) (*Field, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if r == nil {
		return nil, fmt.Errorf("%w: nil random generator", ErrInvalidConfig)
	}
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: surface size %dx%d", ErrInvalidConfig, w, h)
	}
	if float64(w) <= 2*p.Gap || float64(h) <= 2*p.Gap {
		return nil, fmt.Errorf("%w: surface %dx%d too small for spawn gap %v", ErrInvalidConfig, w, h, p.Gap)
	}
	col, err := canvas.ParseColor(p.Color)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	f := &Field{
		p:           p,
		rnd:         r,
		color:       col,
		w:           float64(w),
		h:           float64(h),
		maxDistance: math.Max(float64(w), float64(h)),
		stars:       make([]Star, 0, p.Count),
		pointer:     vmath.V2(float64(w)*0.5, float64(h)*0.5),
		modifier:    p.PointerMinModifier,
	}
	if p.Growth == GrowthFixed {
		for i := 0; i < p.Count; i++ {
			f.add()
		}
	}
	return f, nil
}

func (f *Field) Params() Params        { return f.p }
func (f *Field) Len() int              { return len(f.stars) }
func (f *Field) Cap() int              { return f.p.Count }
func (f *Field) MaxDistance() float64  { return f.maxDistance }
func (f *Field) Respawns() uint64      { return f.respawns }
func (f *Field) Color() colorful.Color { return f.color }

// Star returns the i-th star in draw order.
func (f *Field) Star(i int) *Star { return &f.stars[i] }

// Stars returns the live slice; callers must not append to it.
func (f *Field) Stars() []Star { return f.stars }

// SetPointer records the pointer in surface-local coordinates (origin at the
// top-left corner).
func (f *Field) SetPointer(x, y float64) {
	f.pointer = vmath.V2(x, y)
}

// Modifier is the speed multiplier star i moves with this frame.
func (f *Field) Modifier(i int) float64 {
	if f.p.Speed == SpeedPointer {
		return f.modifier
	}
	return f.stars[i].SpeedModifier
}

func (f *Field) add() {
	f.stars = append(f.stars, Star{})
	f.reset(len(f.stars) - 1)
}

// reset re-rolls star i inside the inset spawn rectangle.
func (f *Field) reset(i int) {
	left := int(-f.w*0.5 + f.p.Gap)
	right := int(f.w*0.5 - f.p.Gap)
	top := int(-f.h*0.5 + f.p.Gap)
	bottom := int(f.h*0.5 - f.p.Gap)

	x := f.rnd.IntRange(left, right)
	y := f.rnd.IntRange(top, bottom)

	s := &f.stars[i]
	s.StartPos = vmath.V2(float64(x), float64(y))
	s.CurrPos = s.StartPos

	v := s.StartPos.Sub(vmath.Zero)
	s.Angle = v.Angle()
	s.Direction = v.Unit()
	s.Distance = 0
	s.Speed = f.p.MinSpeed
	s.Size = 0
	s.TrailSize = 0
	s.TrailAlpha = 0

	s.SpeedModifier = f.rnd.FloatRange(f.p.MinModifier, f.p.MaxModifier)
}

// Respawn restarts star i from a new random position.
func (f *Field) Respawn(i int) {
	f.reset(i)
	f.respawns++
}

// Update advances star i by dt seconds and respawns it when it leaves the
// surface.
func (f *Field) Update(i int, dt float64) {
	p := &f.p
	s := &f.stars[i]

	s.Distance = s.StartPos.Distance(s.CurrPos)
	s.Speed = vmath.MapRange(s.Distance, 0, f.maxDistance, p.MinSpeed, p.MaxSpeed) * f.Modifier(i)
	s.Size = vmath.MapRange(s.Speed, p.MinSpeed, p.MaxSpeed, p.MinSize, p.MaxSize)
	s.TrailSize = vmath.MapRange(s.Speed, p.MinSpeed, p.MaxSpeed, p.TrailMinSize, p.TrailMaxSize)
	s.TrailAlpha = vmath.MapRange(s.TrailSize, p.TrailMinSize, p.TrailMaxSize, p.TrailMinAlpha, p.TrailMaxAlpha)

	s.CurrPos.X += s.Speed * math.Cos(s.Angle) * dt
	s.CurrPos.Y += s.Speed * math.Sin(s.Angle) * dt

	if f.outside(s.CurrPos) {
		f.Respawn(i)
	}
}

func (f *Field) outside(v vmath.Vec2) bool {
	hw := f.w * 0.5
	hh := f.h * 0.5
	return v.X < -hw || v.X > hw || v.Y < -hh || v.Y > hh
}

// Draw renders star i: a filled dot of radius Size and a trail line whose
// opacity follows TrailAlpha.
func (f *Field) Draw(i int, c *canvas.Canvas) error {
	s := &f.stars[i]
	end := s.TrailEnd()
	if err := c.FillCircle(s.CurrPos.X, s.CurrPos.Y, s.Size); err != nil {
		return err
	}
	c.SetStroke(canvas.WithAlpha(f.color, s.TrailAlpha))
	return c.DrawLine(s.CurrPos.X, s.CurrPos.Y, end.X, end.Y)
}

// Grow runs the spawn timer for GrowthSpawn fields. It returns true when a
// star was added.
func (f *Field) Grow(dt float64) bool {
	if f.p.Growth != GrowthSpawn || len(f.stars) >= f.p.Count {
		return false
	}
	f.spawnIn -= dt
	if f.spawnIn >= 0 {
		return false
	}
	f.spawnIn = f.rnd.FloatRange(0, f.p.SpawnDelayMax)
	f.add()
	return true
}

// UpdateAndDraw advances the whole field by dt and draws every star right
// after its own update, in insertion order.
func (f *Field) UpdateAndDraw(dt float64, c *canvas.Canvas) error {
	if f.p.Speed == SpeedPointer {
		centre := vmath.V2(f.w*0.5, f.h*0.5)
		f.modifier = vmath.MapRange(f.pointer.Distance(centre), 0, f.maxDistance,
			f.p.PointerMinModifier, f.p.PointerMaxModifier)
	}
	f.Grow(dt)

	c.SetFill(canvas.Opaque(f.color))
	var first error
	for i := range f.stars {
		f.Update(i, dt)
		if err := f.Draw(i, c); err != nil && first == nil {
			first = err
		}
	}
	return first
}
