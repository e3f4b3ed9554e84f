package vmath

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNormalizeAngleRange(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, -math.Pi},
		{-math.Pi, -math.Pi},
		{3.5 * math.Pi, -math.Pi / 2},
		{2 * math.Pi, 0},
	}
	for _, c := range cases {
		got := NormalizeAngle(c.in)
		if !almostEqual(got, c.want) {
			t.Errorf("NormalizeAngle(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestNormalizedZeroSafe(t *testing.T) {
	zero := Vec2{}.Normalized()
	if zero.X != 0 || zero.Y != 0 {
		t.Errorf("Normalized zero vector should stay zero, got %+v", zero)
	}

	unit := Vec2{X: 3, Y: 4}.Normalized()
	if !almostEqual(unit.Length(), 1) {
		t.Errorf("Normalized length = %v, want 1", unit.Length())
	}
}

func TestClampLength(t *testing.T) {
	v := Vec2{X: 30, Y: 40}
	clamped := v.ClampLength(10)
	if !almostEqual(clamped.Length(), 10) {
		t.Errorf("clamped length = %v, want 10", clamped.Length())
	}

	short := Vec2{X: 1, Y: 2}
	if got := short.ClampLength(10); got != short {
		t.Errorf("vector within limit should be unchanged, got %+v", got)
	}
}

func TestRotatedQuarterTurn(t *testing.T) {
	v := Vec2{X: 1, Y: 0}.Rotated(math.Pi / 2)
	if !almostEqual(v.X, 0) || !almostEqual(v.Y, 1) {
		t.Errorf("quarter turn of (1,0) = %+v, want (0,1)", v)
	}
}

func TestWrapTorus(t *testing.T) {
	w, h := 800.0, 600.0
	cases := []struct {
		in, want Vec2
	}{
		{Vec2{X: -5, Y: 100}, Vec2{X: 795, Y: 100}},
		{Vec2{X: 805, Y: 100}, Vec2{X: 5, Y: 100}},
		{Vec2{X: 100, Y: -1}, Vec2{X: 100, Y: 599}},
		{Vec2{X: 100, Y: 601}, Vec2{X: 100, Y: 1}},
		{Vec2{X: 400, Y: 300}, Vec2{X: 400, Y: 300}},
	}
	for _, c := range cases {
		got := c.in.Wrap(w, h)
		if !almostEqual(got.X, c.want.X) || !almostEqual(got.Y, c.want.Y) {
			t.Errorf("Wrap(%+v) = %+v, want %+v", c.in, got, c.want)
		}
	}
}

func TestFastRandDeterministic(t *testing.T) {
	a := NewFastRand(42)
	b := NewFastRand(42)
	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("same seed diverged at step %d", i)
		}
	}
}

func TestFastRandFloat64Range(t *testing.T) {
	rng := NewFastRand(7)
	for i := 0; i < 1000; i++ {
		v := rng.Float64()
		if v < 0 || v >= 1 {
			t.Fatalf("Float64() = %v out of [0,1)", v)
		}
	}
}

func TestFastRandZeroSeedRemapped(t *testing.T) {
	rng := NewFastRand(0)
	if rng.Next() == 0 {
		t.Error("zero seed should be remapped, generator stuck at zero")
	}
}
