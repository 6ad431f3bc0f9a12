package core

import "math"

// Vec2 is a 2D vector in screen space.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Len returns the vector magnitude.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Normalize returns a unit vector in the direction of v. A zero-length
// vector normalizes to the +X unit vector instead of producing NaN.
func (v Vec2) Normalize() Vec2 {
	m := v.Len()
	if m == 0 {
		return Vec2{X: 1}
	}
	return Vec2{v.X / m, v.Y / m}
}

// Vec3 is a 3D vector in scene space.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Scale returns v scaled by s.
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Len returns the vector magnitude.
func (v Vec3) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns a unit vector in the direction of v. A zero-length
// vector normalizes to the +X unit vector instead of producing NaN.
func (v Vec3) Normalize() Vec3 {
	m := v.Len()
	if m == 0 {
		return Vec3{X: 1}
	}
	return Vec3{v.X / m, v.Y / m, v.Z / m}
}

// Finite reports whether all components are finite numbers.
func (v Vec3) Finite() bool {
	return finite(v.X) && finite(v.Y) && finite(v.Z)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Clamp limits f to the inclusive range [lo, hi].
func Clamp(f, lo, hi float64) float64 {
	if f < lo {
		return lo
	}
	if f > hi {
		return hi
	}
	return f
}

// RGB holds a color with float32 channels in [0, 1].
type RGB struct {
	R, G, B float32
}

// Lerp interpolates between a and b by t in [0, 1].
func (a RGB) Lerp(b RGB, t float32) RGB {
	return RGB{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
	}
}
