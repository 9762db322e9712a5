// Package vmath holds the scalar and 2D vector helpers used by the demos.
//
// Everything here is a pure function on values; nothing keeps state.
package vmath

import "math"

const (
	Pi    = math.Pi
	TwoPi = 2 * math.Pi
)

// Clamp limits v to [min, max].
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Normalize maps v from [min, max] onto [0, 1] without clamping.
func Normalize(v, min, max float64) float64 {
	return (v - min) / (max - min)
}

// Denormalize maps n from [0, 1] onto [min, max] without clamping.
func Denormalize(n, min, max float64) float64 {
	return n*(max-min) + min
}

// MapRange rescales v from [srcMin, srcMax] to [dstMin, dstMax] and clamps the
// result to the destination interval. A degenerate source or destination range
// yields dstMax.
func MapRange(v, srcMin, srcMax, dstMin, dstMax float64) float64 {
	if srcMin == srcMax || dstMin == dstMax {
		return dstMax
	}
	n := Normalize(v, srcMin, srcMax)
	return Clamp(Denormalize(n, dstMin, dstMax), math.Min(dstMin, dstMax), math.Max(dstMin, dstMax))
}

// Distance is the euclidean distance between (x1, y1) and (x2, y2).
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Sqrt(DistanceSq(x1, y1, x2, y2))
}

func DistanceSq(x1, y1, x2, y2 float64) float64 {
	x := x2 - x1
	y := y2 - y1
	return x*x + y*y
}
