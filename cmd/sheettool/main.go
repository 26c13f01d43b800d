// sheettool generates mass-spring sheets and previews their render
// primitives.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"go.uber.org/zap"

	"github.com/Faultbox/springsheet/internal/config"
	"github.com/Faultbox/springsheet/internal/logger"
	"github.com/Faultbox/springsheet/internal/render"
	"github.com/Faultbox/springsheet/internal/rollout"
	"github.com/Faultbox/springsheet/pkg/kinematics"
	smath "github.com/Faultbox/springsheet/pkg/math"
	"github.com/Faultbox/springsheet/pkg/sheet"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "mesh":
		err = cmdMesh(args)
	case "xform":
		err = cmdXform(args)
	case "render":
		err = cmdRender(args)
	case "config":
		err = cmdConfig(args)
	case "help", "-h", "--help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	logger.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`sheettool - mass-spring sheet utility

Usage:
  sheettool <command> [options]

Commands:
  mesh   [grid flags] [-positions]     Print the springs of a generated sheet
  xform  <ax> <ay> <az> <bx> <by> <bz> Print the transform of one spring
  render [grid flags] [playback flags] Drive the renderer over a rest-pose rollout
  config [-save]                       Print (or save) the effective config

Grid flags:
  -rows N -cols N -row-length L -col-length L -diagonal

Playback flags:
  -frames N -dt SECONDS -substeps N -workers N

Examples:
  sheettool mesh -rows 2 -cols 3
  sheettool xform 0 0 0 1 0 0
  sheettool render -rows 4 -cols 4 -diagonal -frames 30 -debug`)
}

// setup parses the shared flags, loads config and starts the logger.
func setup(name string, args []string, extra func(fs *flag.FlagSet)) (*config.Config, error) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	f := config.RegisterFlags(fs)
	if extra != nil {
		extra(fs)
	}
	fs.Parse(args)

	cfg, err := config.Load(f)
	if err != nil {
		return nil, err
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	logger.Sugar.Debugf("config: %+v", cfg)
	return cfg, nil
}

func cmdMesh(args []string) error {
	var positions *bool
	cfg, err := setup("mesh", args, func(fs *flag.FlagSet) {
		positions = fs.Bool("positions", false, "Also print particle rest positions")
	})
	if err != nil {
		return err
	}

	m, err := sheet.Generate(cfg.Grid())
	if err != nil {
		return err
	}
	logger.Info("sheet generated",
		zap.Int("particles", m.NumParticles()),
		zap.Int("springs", m.NumSprings()))

	b := m.Bounds()
	fmt.Printf("Particles: %d\n", m.NumParticles())
	fmt.Printf("Springs:   %d\n", m.NumSprings())
	fmt.Printf("Bounds:    %v - %v\n", fmtVec(b.Min), fmtVec(b.Max))
	fmt.Println()

	if *positions {
		for i, p := range m.RestPositions {
			fmt.Printf("particle %4d  %s\n", i, fmtVec(p))
		}
		fmt.Println()
	}
	for i, e := range m.Edges {
		fmt.Printf("spring %4d  %-12s %-10s l0=%g\n", i, e, m.Kind(i), m.RestLengths[i])
	}
	return nil
}

func cmdXform(args []string) error {
	if len(args) != 6 {
		return fmt.Errorf("usage: sheettool xform <ax> <ay> <az> <bx> <by> <bz>")
	}
	var v [6]float32
	for i, a := range args {
		f, err := strconv.ParseFloat(a, 32)
		if err != nil {
			return fmt.Errorf("argument %d: %w", i+1, err)
		}
		v[i] = float32(f)
	}

	a := smath.Vec3{X: v[0], Y: v[1], Z: v[2]}
	b := smath.Vec3{X: v[3], Y: v[4], Z: v[5]}
	xf := kinematics.SpringTransform(a, b)
	axis, angle := xf.Rotation.AxisAngle()

	fmt.Printf("Position: %s\n", fmtVec(xf.Position))
	fmt.Printf("Rotation: (%g, %g, %g, %g)\n", xf.Rotation.X, xf.Rotation.Y, xf.Rotation.Z, xf.Rotation.W)
	fmt.Printf("          %g rad about %s\n", angle, fmtVec(axis))
	fmt.Printf("Scale:    %s\n", fmtVec(xf.Scale))

	m := xf.Matrix()
	fmt.Println("Matrix:")
	for row := 0; row < 4; row++ {
		fmt.Printf("  [%9.4f %9.4f %9.4f %9.4f]\n", m[row], m[4+row], m[8+row], m[12+row])
	}
	return nil
}

func cmdRender(args []string) error {
	cfg, err := setup("render", args, nil)
	if err != nil {
		return err
	}

	m, err := sheet.Generate(cfg.Grid())
	if err != nil {
		return err
	}
	ro, err := rollout.Static(m, cfg.Playback.Frames, cfg.Playback.Substeps, cfg.Playback.FrameDT)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rec := render.NewRecorder(ro.FPS())
	r := render.NewLogRenderer(rec, logger.Named("render"))
	d := render.NewDriver(cfg.Style(), cfg.Render.Workers)
	if err := d.Run(ctx, r, ro); err != nil {
		return err
	}

	scene := rec.Scene()
	logger.Info("rollout rendered",
		zap.Int("frames", len(scene.Frames)),
		zap.Int("fps", scene.FPS))

	fmt.Printf("Frames:    %d @ %d fps (up %s)\n", len(scene.Frames), scene.FPS, scene.UpAxis)
	fmt.Printf("Duration:  %gs\n", ro.Duration())
	if len(scene.Frames) > 0 {
		f := scene.Frames[0]
		fmt.Printf("Per frame: %d spheres, %d cylinders\n", len(f.Spheres), len(f.Cylinders))
	}
	return nil
}

func cmdConfig(args []string) error {
	var save *bool
	cfg, err := setup("config", args, func(fs *flag.FlagSet) {
		save = fs.Bool("save", false, "Write the effective config to the user config dir")
	})
	if err != nil {
		return err
	}

	if *save {
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Printf("Saved to %s\n", config.ConfigDir())
		return nil
	}

	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	os.Stdout.Write(data)
	return nil
}

func fmtVec(v smath.Vec3) string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}
