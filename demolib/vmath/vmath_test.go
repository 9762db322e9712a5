package vmath

import (
	"math"
	"testing"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestMapRangeDegenerate(t *testing.T) {
	if got := MapRange(5, 3, 3, 10, 20); got != 20 {
		t.Fatalf("degenerate source: got %v want 20", got)
	}
	if got := MapRange(5, 0, 10, 7, 7); got != 7 {
		t.Fatalf("degenerate destination: got %v want 7", got)
	}
	for _, v := range []float64{-100, 0, 3, 1e9} {
		if got := MapRange(v, 1, 1, -4, 9); got != 9 {
			t.Fatalf("MapRange(%v, 1, 1, -4, 9) = %v", v, got)
		}
	}
}

func TestMapRangeLinearAndClamped(t *testing.T) {
	cases := []struct {
		v, s0, s1, d0, d1, want float64
	}{
		{50, 0, 100, 0, 1, 0.5},
		{0, 0, 100, 0, 1, 0},
		{100, 0, 100, 0, 1, 1},
		{150, 0, 100, 0, 1, 1},
		{-5, 0, 100, 0, 1, 0},
		{50, 50, 900, 0, 4, 0},
		{900, 50, 900, 0, 30, 30},
		{15, 0, 30, 0, 0.5, 0.25},
		// Reversed destination still clamps to [min, max].
		{25, 0, 100, 1, 0, 0.75},
		{200, 0, 100, 1, 0, 0},
	}
	for _, c := range cases {
		if got := MapRange(c.v, c.s0, c.s1, c.d0, c.d1); !near(got, c.want) {
			t.Fatalf("MapRange(%v, %v, %v, %v, %v) = %v want %v", c.v, c.s0, c.s1, c.d0, c.d1, got, c.want)
		}
	}
}

func TestMapRangeMonotonic(t *testing.T) {
	prev := MapRange(0, 0, 100, 0, 1)
	for v := 0.0; v <= 100; v += 0.25 {
		got := MapRange(v, 0, 100, 0, 1)
		if got < prev {
			t.Fatalf("not monotonic at %v: %v < %v", v, got, prev)
		}
		prev = got
	}
}

func TestNormalizeDenormalize(t *testing.T) {
	if got := Normalize(75, 50, 150); got != 0.25 {
		t.Fatalf("Normalize = %v", got)
	}
	if got := Denormalize(0.25, 50, 150); got != 75 {
		t.Fatalf("Denormalize = %v", got)
	}
	if got := Clamp(5, 0, 4); got != 4 {
		t.Fatalf("Clamp high = %v", got)
	}
	if got := Clamp(-1, 0, 4); got != 0 {
		t.Fatalf("Clamp low = %v", got)
	}
	if got := Clamp(2, 0, 4); got != 2 {
		t.Fatalf("Clamp inside = %v", got)
	}
}

func TestUnit(t *testing.T) {
	if got := V2(0, 0).Unit(); !got.Equals(Zero) {
		t.Fatalf("unit of zero = %+v", got)
	}
	got := V2(3, 4).Unit()
	if !near(got.X, 0.6) || !near(got.Y, 0.8) {
		t.Fatalf("unit(3,4) = %+v", got)
	}
	if !near(V2(-7, 24).Unit().Magnitude(), 1) {
		t.Fatalf("unit length != 1")
	}
}

func TestVectorArithmetic(t *testing.T) {
	a := V2(1, 2)
	b := V2(3, -5)

	if got := a.Add(b); !got.Equals(V2(4, -3)) {
		t.Fatalf("Add = %+v", got)
	}
	if got := a.Sub(b); !got.Equals(V2(-2, 7)) {
		t.Fatalf("Sub = %+v", got)
	}
	if got := b.Scale(2); !got.Equals(V2(6, -10)) {
		t.Fatalf("Scale = %+v", got)
	}
	if got := a.Copy(); !got.Equals(a) {
		t.Fatalf("Copy = %+v", got)
	}
	if a.Equals(b) {
		t.Fatalf("Equals reported true for different vectors")
	}
	if got := V2(0, 0).Distance(V2(3, 4)); got != 5 {
		t.Fatalf("Distance = %v", got)
	}
	if got := V2(0, 0).DistanceSq(V2(3, 4)); got != 25 {
		t.Fatalf("DistanceSq = %v", got)
	}
	if got := V2(0, 2).Angle(); !near(got, Pi/2) {
		t.Fatalf("Angle = %v", got)
	}
	if got := Distance(1, 1, 4, 5); got != 5 {
		t.Fatalf("Distance fn = %v", got)
	}
	// Operations leave the receiver untouched.
	if !a.Equals(V2(1, 2)) {
		t.Fatalf("receiver mutated: %+v", a)
	}
}
