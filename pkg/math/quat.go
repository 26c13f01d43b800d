package math

import "math"

// Quat represents a quaternion for 3D rotations.
// Components are stored as X, Y, Z, W where W is the scalar part.
type Quat struct {
	X, Y, Z, W float32
}

// QuatIdentity returns an identity quaternion (no rotation).
func QuatIdentity() Quat {
	return Quat{X: 0, Y: 0, Z: 0, W: 1}
}

// QuatFromAxisAngle creates a quaternion from axis-angle rotation.
// axis should be normalized, angle is in radians.
func QuatFromAxisAngle(axis Vec3, angle float32) Quat {
	halfAngle := float64(angle) / 2
	s := float32(math.Sin(halfAngle))
	return Quat{
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
		W: float32(math.Cos(halfAngle)),
	}
}

// QuatFromRotationVector creates a unit quaternion from a rotation vector,
// whose direction is the rotation axis and whose length is the angle in
// radians. A zero vector yields the identity.
func QuatFromRotationVector(rv Vec3) Quat {
	x, y, z := float64(rv.X), float64(rv.Y), float64(rv.Z)
	angle := math.Sqrt(x*x + y*y + z*z)
	if angle == 0 {
		return QuatIdentity()
	}
	s := math.Sin(angle/2) / angle
	return Quat{
		X: float32(x * s),
		Y: float32(y * s),
		Z: float32(z * s),
		W: float32(math.Cos(angle / 2)),
	}
}

// Length returns the quaternion norm.
func (q Quat) Length() float32 {
	x, y, z, w := float64(q.X), float64(q.Y), float64(q.Z), float64(q.W)
	return float32(math.Sqrt(x*x + y*y + z*z + w*w))
}

// Normalize returns a normalized quaternion.
func (q Quat) Normalize() Quat {
	length := q.Length()
	if length < 0.0001 {
		return QuatIdentity()
	}
	invLen := 1.0 / length
	return Quat{
		X: q.X * invLen,
		Y: q.Y * invLen,
		Z: q.Z * invLen,
		W: q.W * invLen,
	}
}

// Rotate applies the rotation to v. q must be a unit quaternion.
func (q Quat) Rotate(v Vec3) Vec3 {
	u := Vec3{q.X, q.Y, q.Z}
	t := u.Cross(v).Scale(2)
	return v.Add(t.Scale(q.W)).Add(u.Cross(t))
}

// AxisAngle returns the rotation axis and angle in radians.
// The identity rotation reports the X axis and a zero angle.
func (q Quat) AxisAngle() (Vec3, float32) {
	q = q.Normalize()
	w := math.Max(-1, math.Min(1, float64(q.W)))
	s := math.Sqrt(1 - w*w)
	if s < 1e-7 {
		return Vec3{1, 0, 0}, 0
	}
	axis := Vec3{float32(float64(q.X) / s), float32(float64(q.Y) / s), float32(float64(q.Z) / s)}
	return axis, float32(2 * math.Acos(w))
}

// IsFinite reports whether no component is NaN or infinite.
func (q Quat) IsFinite() bool {
	return isFinite(q.X) && isFinite(q.Y) && isFinite(q.Z) && isFinite(q.W)
}

// ToMat4 converts the quaternion to a 4x4 rotation matrix.
func (q Quat) ToMat4() Mat4 {
	// Normalize first
	q = q.Normalize()

	xx := q.X * q.X
	xy := q.X * q.Y
	xz := q.X * q.Z
	xw := q.X * q.W
	yy := q.Y * q.Y
	yz := q.Y * q.Z
	yw := q.Y * q.W
	zz := q.Z * q.Z
	zw := q.Z * q.W

	return Mat4{
		1 - 2*(yy+zz), 2 * (xy + zw), 2 * (xz - yw), 0,
		2 * (xy - zw), 1 - 2*(xx+zz), 2 * (yz + xw), 0,
		2 * (xz + yw), 2 * (yz - xw), 1 - 2*(xx+yy), 0,
		0, 0, 0, 1,
	}
}
