package common

import "math"

// Vec2 represents a 2D vector. It doubles as a point in logical or screen space.
type Vec2 struct {
	X, Y float64
}

// Add adds two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub subtracts other from v.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Scale multiplies the vector by a scalar.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Len returns the length (magnitude) of the vector.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns the Euclidean distance between v and other.
func (v Vec2) Dist(other Vec2) float64 {
	return other.Sub(v).Len()
}

// Normalize returns a unit vector in the same direction.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return v.Scale(1 / l)
}

// LeftNormal returns v rotated by +90 degrees: (-y, x).
func (v Vec2) LeftNormal() Vec2 {
	return Vec2{-v.Y, v.X}
}

// Mid returns the midpoint between v and other.
func (v Vec2) Mid(other Vec2) Vec2 {
	return Vec2{(v.X + other.X) / 2, (v.Y + other.Y) / 2}
}

// IsFinite reports whether both components are finite numbers.
func (v Vec2) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) && !math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}
