package render

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/springsheet/internal/logger"
	"github.com/Faultbox/springsheet/internal/rollout"
	"github.com/Faultbox/springsheet/pkg/kinematics"
	smath "github.com/Faultbox/springsheet/pkg/math"
)

// Driver renders rollouts.
type Driver struct {
	Style Style

	// Workers bounds how many frames have their spring transforms computed
	// concurrently. Zero or less means one.
	Workers int
}

// NewDriver returns a driver with the given style and worker count.
func NewDriver(style Style, workers int) *Driver {
	return &Driver{Style: style, Workers: workers}
}

// ParticleName names the sphere of particle i.
func ParticleName(i int) string {
	return fmt.Sprintf("particle_%02d", i)
}

// SpringName names the cylinder of spring i.
func SpringName(i int) string {
	return fmt.Sprintf("spring_%02d", i)
}

// Run renders every frame of ro into r. Spring transforms may be computed
// out of order, but primitives reach r in frame order, particles before
// springs, each by index.
func (d *Driver) Run(ctx context.Context, r Renderer, ro *rollout.Rollout) error {
	xforms, err := d.transforms(ctx, ro)
	if err != nil {
		return err
	}

	logger.Debug("rendering rollout",
		zap.Int("frames", ro.NumFrames()),
		zap.Int("particles", ro.NumParticles()),
		zap.Int("springs", ro.NumSprings()),
		zap.Int("fps", ro.FPS()))

	for i, pose := range ro.Frames {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := d.renderFrame(r, ro.Times[i], pose, xforms[i]); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
	}
	return nil
}

func (d *Driver) transforms(ctx context.Context, ro *rollout.Rollout) ([][]kinematics.Transform, error) {
	out := make([][]kinematics.Transform, ro.NumFrames())

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(d.Workers, 1))
	for i, pose := range ro.Frames {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			xf, err := kinematics.Batch(pose, ro.Springs)
			if err != nil {
				return fmt.Errorf("frame %d: %w", i, err)
			}
			out[i] = xf
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (d *Driver) renderFrame(r Renderer, t float32, pose []smath.Vec3, xforms []kinematics.Transform) error {
	s := d.Style

	r.BeginFrame(t)
	for i, p := range pose {
		r.RenderSphere(ParticleName(i), p, smath.QuatIdentity(), s.ParticleRadius, s.ParticleColor)
	}
	for i, xf := range xforms {
		r.RenderCylinder(SpringName(i), xf.Position, xf.Rotation, xf.Scale, s.SpringRadius, s.SpringHalfHeight, s.SpringColor)
	}
	return r.EndFrame()
}
