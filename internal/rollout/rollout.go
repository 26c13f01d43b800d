package rollout

import (
	"fmt"
	"math"

	smath "github.com/Faultbox/springsheet/pkg/math"
	"github.com/Faultbox/springsheet/pkg/sheet"
)

// Rollout is one simulated trajectory of a sheet: a pose per frame, the
// springs connecting its particles and the time of each frame.
type Rollout struct {
	Frames  [][]smath.Vec3
	Springs []sheet.Edge
	Times   []float32
}

// New validates and assembles a rollout. The slices are not copied.
func New(frames [][]smath.Vec3, springs []sheet.Edge, times []float32) (*Rollout, error) {
	if len(frames) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 frames to render, got %d", ErrInvalidRollout, len(frames))
	}
	if len(times) != len(frames) {
		return nil, fmt.Errorf("%w: %d times for %d frames", ErrInvalidRollout, len(times), len(frames))
	}
	n := len(frames[0])
	for i, f := range frames {
		if len(f) != n {
			return nil, fmt.Errorf("%w: frame %d has %d particles, frame 0 has %d", ErrInvalidRollout, i, len(f), n)
		}
	}
	for i := 1; i < len(times); i++ {
		if !(times[i] > times[i-1]) {
			return nil, fmt.Errorf("%w: time %d (%v) does not follow %v", ErrInvalidRollout, i, times[i], times[i-1])
		}
	}
	if err := sheet.ValidateEdges(springs, n); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRollout, err)
	}
	return &Rollout{Frames: frames, Springs: springs, Times: times}, nil
}

// FromParams builds one rollout per trajectory in positions
// (rollouts x steps x particles). Each trajectory is subsampled by
// p.SimSubsteps and timed with p.FrameDT.
func FromParams(p *Params, positions [][][]smath.Vec3) ([]*Rollout, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	times := TimeVector(p.FrameDT, p.SimFrames)

	out := make([]*Rollout, 0, len(positions))
	for i, traj := range positions {
		ro, err := New(Subsample(traj, p.SimSubsteps), p.SpringTopology, times)
		if err != nil {
			return nil, fmt.Errorf("rollout %d: %w", i, err)
		}
		out = append(out, ro)
	}
	return out, nil
}

// Static returns a rollout that holds the rest pose of m for frames
// frames. The pose is replicated at every one of frames*substeps simulation
// steps and goes through FromParams like stored simulation output.
func Static(m *sheet.Mesh, frames, substeps int, frameDT float32) (*Rollout, error) {
	p := ParamsFromMesh(m)
	p.SetPlayback(frames, substeps, frameDT)
	if err := p.Validate(); err != nil {
		return nil, err
	}
	ros, err := FromParams(&p, [][][]smath.Vec3{RestTrajectory(m, p.SimSteps)})
	if err != nil {
		return nil, err
	}
	return ros[0], nil
}

// RestTrajectory returns steps copies of the rest pose of m. The frames
// share the mesh's position slice.
func RestTrajectory(m *sheet.Mesh, steps int) [][]smath.Vec3 {
	traj := make([][]smath.Vec3, max(steps, 0))
	for i := range traj {
		traj[i] = m.RestPositions
	}
	return traj
}

// Subsample keeps every step-th element starting from the first.
func Subsample[T any](s []T, step int) []T {
	if step <= 1 {
		return s
	}
	out := make([]T, 0, (len(s)+step-1)/step)
	for i := 0; i < len(s); i += step {
		out = append(out, s[i])
	}
	return out
}

// TimeVector returns dt*i for i in [0, n).
func TimeVector(dt float32, n int) []float32 {
	times := make([]float32, n)
	for i := range times {
		times[i] = dt * float32(i)
	}
	return times
}

// NumFrames returns the number of frames.
func (r *Rollout) NumFrames() int {
	return len(r.Frames)
}

// NumParticles returns the number of particles per frame.
func (r *Rollout) NumParticles() int {
	return len(r.Frames[0])
}

// NumSprings returns the number of springs.
func (r *Rollout) NumSprings() int {
	return len(r.Springs)
}

// FrameDT returns the spacing of the first two frames.
func (r *Rollout) FrameDT() float32 {
	return r.Times[1] - r.Times[0]
}

// FPS returns the playback rate, 1/FrameDT rounded to an integer.
func (r *Rollout) FPS() int {
	return int(math.Round(1 / float64(r.FrameDT())))
}

// Duration returns the time of the last frame.
func (r *Rollout) Duration() float32 {
	return r.Times[len(r.Times)-1]
}
