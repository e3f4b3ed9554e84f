package vmath

import "math"

// Vec2 is a 2D vector in continuous arena space
type Vec2 struct {
	X, Y float64
}

// FromAngle returns the unit vector pointing along angle (radians)
func FromAngle(a float64) Vec2 {
	return Vec2{X: math.Cos(a), Y: math.Sin(a)}
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v scaled by factor
func (v Vec2) Scale(factor float64) Vec2 {
	return Vec2{X: v.X * factor, Y: v.Y * factor}
}

// Dot returns the dot product of v and o
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the z component of the 3D cross product
func (v Vec2) Cross(o Vec2) float64 {
	return v.X*o.Y - v.Y*o.X
}

// Length returns the Euclidean magnitude
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// LengthSq returns the squared magnitude without sqrt
func (v Vec2) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalized returns the unit vector in the direction of v, zero-safe
func (v Vec2) Normalized() Vec2 {
	mag := v.Length()
	if mag < Epsilon {
		return Vec2{}
	}
	return Vec2{X: v.X / mag, Y: v.Y / mag}
}

// ClampLength limits v to maxLen while preserving direction
// Returns v unchanged if its magnitude is already within maxLen
func (v Vec2) ClampLength(maxLen float64) Vec2 {
	lenSq := v.LengthSq()
	if lenSq <= maxLen*maxLen {
		return v
	}
	return v.Normalized().Scale(maxLen)
}

// Rotated returns v rotated by angle (radians)
func (v Vec2) Rotated(angle float64) Vec2 {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Angle returns the direction of v in radians
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Perpendicular returns v rotated 90° counter-clockwise
func (v Vec2) Perpendicular() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// DistanceTo returns the Euclidean distance between v and o
func (v Vec2) DistanceTo(o Vec2) float64 {
	return v.Sub(o).Length()
}

// DistanceSqTo returns the squared distance between v and o
func (v Vec2) DistanceSqTo(o Vec2) float64 {
	return v.Sub(o).LengthSq()
}

// IsFinite reports whether both components are finite
func (v Vec2) IsFinite() bool {
	return IsFinite(v.X) && IsFinite(v.Y)
}

// Wrap maps v into the [0,width)×[0,height) torus
// One period is enough: nothing moves more than a full arena per tick
func (v Vec2) Wrap(width, height float64) Vec2 {
	out := v
	if out.X < 0 {
		out.X += width
	} else if out.X >= width {
		out.X -= width
	}
	if out.Y < 0 {
		out.Y += height
	} else if out.Y >= height {
		out.Y -= height
	}
	return out
}
