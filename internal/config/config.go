// Package config handles springsheet configuration loading and management.
package config

import (
	"fmt"

	"github.com/Faultbox/springsheet/internal/render"
	"github.com/Faultbox/springsheet/pkg/sheet"
)

// Config holds all settings.
type Config struct {
	Sheet    SheetConfig    `yaml:"sheet"`
	Render   RenderConfig   `yaml:"render"`
	Playback PlaybackConfig `yaml:"playback"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// SheetConfig describes the generated sheet.
type SheetConfig struct {
	SpringsRow    int     `yaml:"springs_row"`
	SpringsCol    int     `yaml:"springs_col"`
	RestLengthRow float32 `yaml:"rest_length_row"`
	RestLengthCol float32 `yaml:"rest_length_col"`
	Diagonal      bool    `yaml:"diagonal"`
}

// RenderConfig holds primitive styling and parallelism.
type RenderConfig struct {
	ParticleRadius   float32      `yaml:"particle_radius"`
	ParticleColor    render.Color `yaml:"particle_color,flow"`
	SpringRadius     float32      `yaml:"spring_radius"`
	SpringHalfHeight float32      `yaml:"spring_half_height"`
	SpringColor      render.Color `yaml:"spring_color,flow"`
	Workers          int          `yaml:"workers"`
}

// PlaybackConfig holds frame timing.
type PlaybackConfig struct {
	Frames   int     `yaml:"frames"`
	FrameDT  float32 `yaml:"frame_dt"`
	Substeps int     `yaml:"substeps"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	style := render.DefaultStyle()
	return &Config{
		Sheet: SheetConfig{
			SpringsRow:    2,
			SpringsCol:    3,
			RestLengthRow: 1.0,
			RestLengthCol: 1.0,
			Diagonal:      false,
		},
		Render: RenderConfig{
			ParticleRadius:   style.ParticleRadius,
			ParticleColor:    style.ParticleColor,
			SpringRadius:     style.SpringRadius,
			SpringHalfHeight: style.SpringHalfHeight,
			SpringColor:      style.SpringColor,
			Workers:          4,
		},
		Playback: PlaybackConfig{
			Frames:   60,
			FrameDT:  1.0 / 30,
			Substeps: 1,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Grid returns the sheet grid.
func (c *Config) Grid() sheet.Grid {
	return sheet.Grid{
		SpringsRow:    c.Sheet.SpringsRow,
		SpringsCol:    c.Sheet.SpringsCol,
		RestLengthRow: c.Sheet.RestLengthRow,
		RestLengthCol: c.Sheet.RestLengthCol,
		Diagonal:      c.Sheet.Diagonal,
	}
}

// Style returns the render style.
func (c *Config) Style() render.Style {
	return render.Style{
		ParticleRadius:   c.Render.ParticleRadius,
		ParticleColor:    c.Render.ParticleColor,
		SpringRadius:     c.Render.SpringRadius,
		SpringHalfHeight: c.Render.SpringHalfHeight,
		SpringColor:      c.Render.SpringColor,
	}
}

// Validate checks the settings that the rest of the program relies on.
func (c *Config) Validate() error {
	if err := c.Grid().Validate(); err != nil {
		return err
	}
	if c.Playback.Frames < 2 {
		return fmt.Errorf("playback needs at least 2 frames, got %d", c.Playback.Frames)
	}
	if c.Playback.FrameDT <= 0 {
		return fmt.Errorf("playback frame_dt %v must be positive", c.Playback.FrameDT)
	}
	if c.Playback.Substeps < 1 {
		return fmt.Errorf("playback substeps %d must be at least 1", c.Playback.Substeps)
	}
	if c.Render.ParticleRadius <= 0 || c.Render.SpringRadius <= 0 {
		return fmt.Errorf("render radii must be positive")
	}
	return nil
}
