package render

import (
	"go.uber.org/zap"

	"github.com/Faultbox/springsheet/internal/logger"
	smath "github.com/Faultbox/springsheet/pkg/math"
)

// LogRenderer logs a summary of every frame and forwards all calls to Next
// when it is set.
type LogRenderer struct {
	Next Renderer
	Log  *zap.Logger

	time      float32
	spheres   int
	cylinders int
	stretch   float32
}

// NewLogRenderer wraps next. next may be nil; a nil log uses the global
// logger.
func NewLogRenderer(next Renderer, log *zap.Logger) *LogRenderer {
	if log == nil {
		log = logger.Log
	}
	return &LogRenderer{Next: next, Log: log}
}

// BeginFrame resets the frame summary.
func (l *LogRenderer) BeginFrame(t float32) {
	l.time, l.spheres, l.cylinders, l.stretch = t, 0, 0, 0
	if l.Next != nil {
		l.Next.BeginFrame(t)
	}
}

// RenderSphere counts a particle.
func (l *LogRenderer) RenderSphere(name string, pos smath.Vec3, rot smath.Quat, radius float32, color Color) {
	l.spheres++
	if l.Next != nil {
		l.Next.RenderSphere(name, pos, rot, radius, color)
	}
}

// RenderCylinder counts a spring and tracks the longest one.
func (l *LogRenderer) RenderCylinder(name string, pos smath.Vec3, rot smath.Quat, scale smath.Vec3, radius, halfHeight float32, color Color) {
	l.cylinders++
	l.stretch = max(l.stretch, scale.Y)
	if l.Next != nil {
		l.Next.RenderCylinder(name, pos, rot, scale, radius, halfHeight, color)
	}
}

// EndFrame logs the frame summary at debug level.
func (l *LogRenderer) EndFrame() error {
	l.Log.Debug("frame",
		zap.Float32("time", l.time),
		zap.Int("spheres", l.spheres),
		zap.Int("cylinders", l.cylinders),
		zap.Float32("max_spring_length", l.stretch))
	if l.Next != nil {
		return l.Next.EndFrame()
	}
	return nil
}
