package kinematics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	smath "github.com/Faultbox/springsheet/pkg/math"
	"github.com/Faultbox/springsheet/pkg/sheet"
)

func assertVecNear(t *testing.T, want, got smath.Vec3, delta float64, msgAndArgs ...any) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, delta, msgAndArgs...)
	assert.InDelta(t, want.Y, got.Y, delta, msgAndArgs...)
	assert.InDelta(t, want.Z, got.Z, delta, msgAndArgs...)
}

func TestSpringTransform_AlongUp(t *testing.T) {
	xf := SpringTransform(smath.Vec3{}, smath.Vec3{Y: 2})

	assert.Equal(t, smath.Vec3{Y: 1}, xf.Position)
	assert.Equal(t, smath.Vec3{X: 1, Y: 2, Z: 1}, xf.Scale)
	assert.Equal(t, smath.QuatIdentity(), xf.Rotation)
}

func TestSpringTransform_AlongX(t *testing.T) {
	xf := SpringTransform(smath.Vec3{}, smath.Vec3{X: 1})

	assert.Equal(t, smath.Vec3{X: 0.5}, xf.Position)
	assert.Equal(t, smath.Vec3{X: 1, Y: 1, Z: 1}, xf.Scale)

	axis, angle := xf.Rotation.AxisAngle()
	assert.InDelta(t, math.Pi/2, angle, 1e-5)
	assertVecNear(t, smath.Vec3{Z: -1}, axis, 1e-5)
	assert.InDelta(t, 1, xf.Rotation.Length(), 1e-6)
}

func TestSpringTransform_ZeroLength(t *testing.T) {
	p := smath.Vec3{X: 1.5, Y: -2, Z: 0.25}
	xf := SpringTransform(p, p)

	assert.Equal(t, p, xf.Position)
	assert.Equal(t, float32(0), xf.Scale.Y)
	assert.Equal(t, float32(0), xf.Length())
	assert.True(t, xf.Rotation.IsFinite())
	assert.Equal(t, smath.QuatIdentity(), xf.Rotation)
}

func TestSpringTransform_PointingDown(t *testing.T) {
	a := smath.Vec3{X: 1, Y: 0, Z: 0}
	b := smath.Vec3{X: 1, Y: -3, Z: 0}
	xf := SpringTransform(a, b)

	require.True(t, xf.Rotation.IsFinite())
	assert.InDelta(t, 1, xf.Rotation.Length(), 1e-6)

	axis, angle := xf.Rotation.AxisAngle()
	assert.InDelta(t, math.Pi, angle, 1e-5)
	assertVecNear(t, FallbackAxis, axis, 1e-5)

	assertVecNear(t, smath.Vec3{Y: -1}, xf.Rotation.Rotate(Up), 1e-5)
	assert.Equal(t, float32(3), xf.Length())
}

func TestSpringTransform_NearlyDown(t *testing.T) {
	// Within Epsilon of straight down the fallback half turn applies.
	xf := SpringTransform(smath.Vec3{}, smath.Vec3{X: 1e-7, Y: -1})
	assertVecNear(t, smath.Vec3{Y: -1}, xf.Rotation.Rotate(Up), 1e-6)

	// Just outside it the epsilon-shortened axis gives a finite unit
	// rotation that undershoots the half turn.
	dir := smath.Vec3{X: 1e-5, Y: -1}
	xf = SpringTransform(smath.Vec3{}, dir)
	require.True(t, xf.Rotation.IsFinite())
	assert.InDelta(t, 1, xf.Rotation.Length(), 1e-6)

	_, angle := xf.Rotation.AxisAngle()
	assert.Less(t, float64(angle), math.Pi-0.1)
	got := xf.Rotation.Rotate(Up)
	assert.Less(t, got.Y, float32(-0.9))
	assert.Greater(t, float64(got.Dot(dir)), math.Cos(20*math.Pi/180))
}

func TestSpringTransform_LargeCoordinates(t *testing.T) {
	a := smath.Vec3{X: 1e20}
	b := smath.Vec3{X: -1e20}
	xf := SpringTransform(a, b)

	require.True(t, xf.Rotation.IsFinite())
	require.True(t, xf.Scale.IsFinite())
	assert.InDelta(t, 2e20, xf.Length(), 1e14)
	assert.Equal(t, smath.Vec3{}, xf.Position)
	assertVecNear(t, smath.Vec3{X: -1}, xf.Rotation.Rotate(Up), 1e-5)
}

func TestSpringTransform_Symmetry(t *testing.T) {
	a := smath.Vec3{X: 0.3, Y: -1.7, Z: 2.2}
	b := smath.Vec3{X: -4.1, Y: 0.6, Z: 1.0}

	ab := SpringTransform(a, b)
	ba := SpringTransform(b, a)

	assert.Equal(t, ab.Position, ba.Position)
	assert.Equal(t, ab.Scale.Y, ba.Scale.Y)
	assert.NotEqual(t, ab.Rotation, ba.Rotation)

	// Reversed springs point in opposite directions.
	dab := ab.Rotation.Rotate(Up)
	dba := ba.Rotation.Rotate(Up)
	assertVecNear(t, dab.Scale(-1), dba, 1e-4)
}

func TestSpringTransform_SpansEndpoints(t *testing.T) {
	pairs := [][2]smath.Vec3{
		{{X: 1, Y: 2, Z: 3}, {X: 4, Y: -1, Z: 5}},
		{{X: 0, Y: 0, Z: 0}, {X: 0, Y: 0, Z: -2}},
		{{X: -1, Y: 1, Z: 0}, {X: 1, Y: 1.5, Z: 0}},
		{{X: 2, Y: 2, Z: 2}, {X: 2, Y: -2, Z: 2}},
	}

	for _, p := range pairs {
		xf := SpringTransform(p[0], p[1])

		lo, hi := xf.Endpoints()
		assertVecNear(t, p[0], lo, 1e-4, "pair %v", p)
		assertVecNear(t, p[1], hi, 1e-4, "pair %v", p)

		m := xf.Matrix()
		assertVecNear(t, p[1], m.TransformVec3(smath.Vec3{Y: 0.5}), 1e-4, "pair %v", p)
		assertVecNear(t, p[0], m.TransformVec3(smath.Vec3{Y: -0.5}), 1e-4, "pair %v", p)
	}
}

func TestSpringTransform_Deterministic(t *testing.T) {
	a := smath.Vec3{X: 0.1, Y: 0.2, Z: 0.3}
	b := smath.Vec3{X: 0.7, Y: -0.4, Z: 0.9}
	assert.Equal(t, SpringTransform(a, b), SpringTransform(a, b))
}

func TestBatch(t *testing.T) {
	m, err := sheet.Generate(sheet.Grid{SpringsRow: 1, SpringsCol: 2, RestLengthRow: 1, RestLengthCol: 2, Diagonal: true})
	require.NoError(t, err)

	xfs, err := Batch(m.RestPositions, m.Edges)
	require.NoError(t, err)
	require.Len(t, xfs, len(m.Edges))

	for i, xf := range xfs {
		assert.InDelta(t, m.RestLengths[i], xf.Length(), 1e-5, "spring %d", i)
		e := m.Edges[i]
		assert.Equal(t, SpringTransform(m.RestPositions[e.A], m.RestPositions[e.B]), xf)
	}
}

func TestBatch_OutOfRange(t *testing.T) {
	positions := []smath.Vec3{{}, {X: 1}}
	xfs, err := Batch(positions, []sheet.Edge{{A: 0, B: 1}, {A: 1, B: 2}})
	assert.Nil(t, xfs)
	assert.ErrorIs(t, err, sheet.ErrEdgeOutOfRange)
}
