package vmath

import "math"

// Vec2 is a 2D point or direction. Methods never modify the receiver.
type Vec2 struct {
	X, Y float64
}

// Zero is the origin.
var Zero = Vec2{}

func V2(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) Add(o Vec2) Vec2           { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2           { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(s float64) Vec2      { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Copy() Vec2                { return v }
func (v Vec2) Equals(o Vec2) bool        { return v.X == o.X && v.Y == o.Y }
func (v Vec2) Distance(o Vec2) float64   { return Distance(v.X, v.Y, o.X, o.Y) }
func (v Vec2) DistanceSq(o Vec2) float64 { return DistanceSq(v.X, v.Y, o.X, o.Y) }

func (v Vec2) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Unit returns v scaled to length 1, or the zero vector when v has no length.
func (v Vec2) Unit() Vec2 {
	l := v.Magnitude()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Angle is atan2(y, x) in radians.
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}
