// Package render turns rollouts into per-frame sphere and cylinder
// primitives and hands them to a Renderer.
package render

import (
	smath "github.com/Faultbox/springsheet/pkg/math"
)

// Color is an RGB triple in [0, 1].
type Color [3]float32

// Primitive colors.
var (
	Red  = Color{1, 0, 0}
	Blue = Color{0, 0, 1}
)

// UpAxis is the up axis of every scene produced here.
const UpAxis = "Y"

// Renderer receives primitives frame by frame. Render calls are only valid
// between BeginFrame and EndFrame.
type Renderer interface {
	BeginFrame(t float32)
	RenderSphere(name string, pos smath.Vec3, rot smath.Quat, radius float32, color Color)
	RenderCylinder(name string, pos smath.Vec3, rot smath.Quat, scale smath.Vec3, radius, halfHeight float32, color Color)
	EndFrame() error
}

// Style controls how particles and springs are drawn.
type Style struct {
	ParticleRadius   float32
	ParticleColor    Color
	SpringRadius     float32
	SpringHalfHeight float32
	SpringColor      Color
}

// DefaultStyle returns red particles of radius 0.1 and thin blue springs.
func DefaultStyle() Style {
	return Style{
		ParticleRadius:   0.1,
		ParticleColor:    Red,
		SpringRadius:     0.04,
		SpringHalfHeight: 0.5,
		SpringColor:      Blue,
	}
}
