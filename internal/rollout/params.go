// Package rollout holds simulation parameters and per-rollout trajectories
// as typed records, validated once when they enter the program.
package rollout

import (
	"errors"
	"fmt"

	smath "github.com/Faultbox/springsheet/pkg/math"
	"github.com/Faultbox/springsheet/pkg/sheet"
)

// Rollout errors.
var (
	ErrInvalidParams  = errors.New("invalid simulation params")
	ErrInvalidRollout = errors.New("invalid rollout")
)

// Params are the stored parameters of a simulated sheet.
type Params struct {
	ParticleMasses []float32
	ParticleRadii  []float32
	NumSpringsRow  int
	NumSpringsCol  int
	KinParticles   []int // particles driven kinematically (pinned)

	SpringTopology       []sheet.Edge
	SpringKs             []float32
	SpringBs             []float32
	SpringRestLengths    []float32
	SpringLimitMaxStrain bool
	SpringStrainMaxs     []float32
	SpringLimitCompress  bool
	SpringStrainMins     []float32
	RayleighB            float32

	RestPositions []smath.Vec3
	Gravity       float32
	Ground        bool

	FrameDT     float32
	SimDuration float32
	SimFrames   int
	SimSubsteps int
	SimDT       float32
	SimSteps    int
}

// ParamsFromMesh fills the topology fields of a Params from a generated
// sheet. Playback fields are left for the caller.
func ParamsFromMesh(m *sheet.Mesh) Params {
	return Params{
		NumSpringsRow:     m.Grid.SpringsRow,
		NumSpringsCol:     m.Grid.SpringsCol,
		SpringTopology:    m.Edges,
		SpringRestLengths: m.RestLengths,
		RestPositions:     m.RestPositions,
		SimSubsteps:       1,
	}
}

// SetPlayback fills the timing fields for frames rendered frames of
// frameDT seconds, each simulated in substeps steps.
func (p *Params) SetPlayback(frames, substeps int, frameDT float32) {
	p.FrameDT = frameDT
	p.SimFrames = frames
	p.SimSubsteps = substeps
	p.SimSteps = frames * substeps
	p.SimDuration = frameDT * float32(frames)
	if substeps > 0 {
		p.SimDT = frameDT / float32(substeps)
	}
}

// NumParticles returns the particle count implied by the grid counts.
func (p *Params) NumParticles() int {
	return (p.NumSpringsRow + 1) * (p.NumSpringsCol + 1)
}

// Validate checks internal consistency of the parameters.
func (p *Params) Validate() error {
	if p.NumSpringsRow < 0 || p.NumSpringsCol < 0 {
		return fmt.Errorf("%w: negative spring count %dx%d", ErrInvalidParams, p.NumSpringsRow, p.NumSpringsCol)
	}
	if p.FrameDT <= 0 {
		return fmt.Errorf("%w: frame dt %v must be positive", ErrInvalidParams, p.FrameDT)
	}
	if p.SimFrames < 2 {
		return fmt.Errorf("%w: need at least 2 frames, got %d", ErrInvalidParams, p.SimFrames)
	}
	if p.SimSubsteps < 1 {
		return fmt.Errorf("%w: substeps %d must be at least 1", ErrInvalidParams, p.SimSubsteps)
	}

	n := p.NumParticles()
	if len(p.RestPositions) != 0 && len(p.RestPositions) != n {
		return fmt.Errorf("%w: %d rest positions for %d particles", ErrInvalidParams, len(p.RestPositions), n)
	}
	perParticle := []namedValues{{"masses", p.ParticleMasses}, {"radii", p.ParticleRadii}}
	for _, v := range perParticle {
		if len(v.values) != 0 && len(v.values) != n {
			return fmt.Errorf("%w: %d particle %s for %d particles", ErrInvalidParams, len(v.values), v.name, n)
		}
	}
	for _, k := range p.KinParticles {
		if k < 0 || k >= n {
			return fmt.Errorf("%w: kinematic particle %d out of range", ErrInvalidParams, k)
		}
	}

	if err := sheet.ValidateEdges(p.SpringTopology, n); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidParams, err)
	}
	ns := len(p.SpringTopology)
	perSpring := []namedValues{
		{"ks", p.SpringKs},
		{"bs", p.SpringBs},
		{"rest length", p.SpringRestLengths},
		{"strain max", p.SpringStrainMaxs},
		{"strain min", p.SpringStrainMins},
	}
	for _, v := range perSpring {
		if len(v.values) != 0 && len(v.values) != ns {
			return fmt.Errorf("%w: %d spring %s values for %d springs", ErrInvalidParams, len(v.values), v.name, ns)
		}
	}
	for i, l0 := range p.SpringRestLengths {
		if l0 <= 0 {
			return fmt.Errorf("%w: spring %d rest length %v must be positive", ErrInvalidParams, i, l0)
		}
	}
	return nil
}

type namedValues struct {
	name   string
	values []float32
}
