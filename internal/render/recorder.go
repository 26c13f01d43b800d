package render

import (
	"errors"
	"fmt"

	smath "github.com/Faultbox/springsheet/pkg/math"
)

var (
	errNoFrame      = errors.New("render call outside of a frame")
	errFrameOpen    = errors.New("frame begun twice")
	errDuplicateKey = errors.New("duplicate primitive name")
)

// Sphere is a recorded particle primitive.
type Sphere struct {
	Name   string
	Pos    smath.Vec3
	Rot    smath.Quat
	Radius float32
	Color  Color
}

// Cylinder is a recorded spring primitive.
type Cylinder struct {
	Name       string
	Pos        smath.Vec3
	Rot        smath.Quat
	Scale      smath.Vec3
	Radius     float32
	HalfHeight float32
	Color      Color
}

// Frame holds the primitives of one timestamp.
type Frame struct {
	Time      float32
	Spheres   []Sphere
	Cylinders []Cylinder
}

// Scene is a timestamped sequence of frames.
type Scene struct {
	FPS    int
	UpAxis string
	Frames []Frame
}

// Recorder is a Renderer that keeps every frame in memory.
type Recorder struct {
	scene Scene
	cur   *Frame
	names map[string]bool
	err   error
}

// NewRecorder returns an empty recorder for a scene played at fps.
func NewRecorder(fps int) *Recorder {
	return &Recorder{scene: Scene{FPS: fps, UpAxis: UpAxis}}
}

// BeginFrame starts a frame at time t.
func (r *Recorder) BeginFrame(t float32) {
	if r.cur != nil {
		r.fail(errFrameOpen)
		return
	}
	r.cur = &Frame{Time: t}
	r.names = make(map[string]bool)
}

// RenderSphere records a sphere in the current frame.
func (r *Recorder) RenderSphere(name string, pos smath.Vec3, rot smath.Quat, radius float32, color Color) {
	if !r.claim(name) {
		return
	}
	r.cur.Spheres = append(r.cur.Spheres, Sphere{Name: name, Pos: pos, Rot: rot, Radius: radius, Color: color})
}

// RenderCylinder records a cylinder in the current frame.
func (r *Recorder) RenderCylinder(name string, pos smath.Vec3, rot smath.Quat, scale smath.Vec3, radius, halfHeight float32, color Color) {
	if !r.claim(name) {
		return
	}
	r.cur.Cylinders = append(r.cur.Cylinders, Cylinder{
		Name: name, Pos: pos, Rot: rot, Scale: scale,
		Radius: radius, HalfHeight: halfHeight, Color: color,
	})
}

// EndFrame closes the current frame and reports any misuse since the
// previous EndFrame.
func (r *Recorder) EndFrame() error {
	if r.cur == nil && r.err == nil {
		r.err = errNoFrame
	}
	if r.err != nil {
		err := r.err
		r.err, r.cur = nil, nil
		return err
	}
	r.scene.Frames = append(r.scene.Frames, *r.cur)
	r.cur = nil
	return nil
}

// Scene returns the recorded scene.
func (r *Recorder) Scene() *Scene {
	return &r.scene
}

func (r *Recorder) claim(name string) bool {
	if r.cur == nil {
		r.fail(errNoFrame)
		return false
	}
	if r.names[name] {
		r.fail(fmt.Errorf("%w: %s", errDuplicateKey, name))
		return false
	}
	r.names[name] = true
	return true
}

func (r *Recorder) fail(err error) {
	if r.err == nil {
		r.err = err
	}
}
