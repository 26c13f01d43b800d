// Package math provides float32 vector, quaternion and matrix types for
// placing render primitives.
package math

import "math"

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float32
}

// UnitY is the canonical up axis.
var UnitY = Vec3{0, 1, 0}

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns v * scalar.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product.
func (v Vec3) Dot(other Vec3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// Length returns the magnitude. Components are squared in float64 so
// large coordinates do not overflow.
func (v Vec3) Length() float32 {
	x, y, z := float64(v.X), float64(v.Y), float64(v.Z)
	return float32(math.Sqrt(x*x + y*y + z*z))
}

// NormalizeEps divides v by (|v| + eps). The result is always finite but
// only approximately unit length.
func (v Vec3) NormalizeEps(eps float32) Vec3 {
	return v.Scale(1 / (v.Length() + eps))
}

// Midpoint returns the point halfway between v and other.
func (v Vec3) Midpoint(other Vec3) Vec3 {
	return v.Add(other).Scale(0.5)
}

// IsFinite reports whether no component is NaN or infinite.
func (v Vec3) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z)
}

// Array returns the components as a [3]float32.
func (v Vec3) Array() [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

func isFinite(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}
