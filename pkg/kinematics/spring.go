// Package kinematics computes render transforms for springs.
//
// A spring is drawn as a primitive whose canonical long axis is +Y with
// unit height, centered on the origin. SpringTransform places, orients and
// stretches that primitive so it spans two particle positions.
package kinematics

import (
	"math"

	smath "github.com/Faultbox/springsheet/pkg/math"
	"github.com/Faultbox/springsheet/pkg/sheet"
)

// Epsilon guards the two normalizations in SpringTransform.
const Epsilon = 1e-6

var (
	// Up is the canonical long axis of a spring primitive.
	Up = smath.UnitY

	// FallbackAxis is the rotation axis used when a spring points straight
	// down, where the rotation from Up is a half turn about any
	// perpendicular axis. It applies only while |Up x dir| <= Epsilon.
	// Slightly further from straight down the rotation axis is still
	// divided by |Up x dir| + Epsilon, which shortens the rotation: a
	// direction 1e-5 off -Up is reached to within about 16 degrees.
	FallbackAxis = smath.Vec3{X: 1, Y: 0, Z: 0}
)

// Transform places a spring primitive.
type Transform struct {
	Position smath.Vec3 // midpoint of the two particles
	Rotation smath.Quat // unit quaternion taking Up onto the spring direction
	Scale    smath.Vec3 // (1, length, 1)
}

// SpringTransform returns the transform of the spring between a and b.
func SpringTransform(a, b smath.Vec3) Transform {
	rel := b.Sub(a)
	length := rel.Length()

	return Transform{
		Position: a.Midpoint(b),
		Rotation: rotationFromUp(rel.Scale(1 / (length + Epsilon))),
		Scale:    smath.Vec3{X: 1, Y: length, Z: 1},
	}
}

// rotationFromUp returns the rotation taking Up onto dir. dir is expected
// to be at most unit length; the zero vector yields the identity.
func rotationFromUp(dir smath.Vec3) smath.Quat {
	cross := Up.Cross(dir)
	dot := math.Max(-1, math.Min(1, float64(Up.Dot(dir))))

	if dot < 0 && cross.Length() <= Epsilon {
		return smath.QuatFromAxisAngle(FallbackAxis, math.Pi)
	}

	axis := cross.NormalizeEps(Epsilon)
	angle := float32(math.Acos(dot))
	return smath.QuatFromRotationVector(axis.Scale(angle))
}

// Length returns the spring length encoded in the scale.
func (t Transform) Length() float32 {
	return t.Scale.Y
}

// Matrix returns the model matrix translate * rotate * scale.
func (t Transform) Matrix() smath.Mat4 {
	return smath.Compose(t.Position, t.Rotation, t.Scale)
}

// Endpoints maps the ends of the unit primitive, (0, -0.5, 0) and
// (0, 0.5, 0), into world space.
func (t Transform) Endpoints() (smath.Vec3, smath.Vec3) {
	half := t.Rotation.Rotate(smath.Vec3{Y: 0.5 * t.Scale.Y})
	return t.Position.Sub(half), t.Position.Add(half)
}

// Batch computes the transform of every spring for one pose, in edge
// order. Edges are checked before anything is computed.
func Batch(positions []smath.Vec3, edges []sheet.Edge) ([]Transform, error) {
	if err := sheet.ValidateEdges(edges, len(positions)); err != nil {
		return nil, err
	}
	out := make([]Transform, len(edges))
	for i, e := range edges {
		out[i] = SpringTransform(positions[e.A], positions[e.B])
	}
	return out, nil
}
