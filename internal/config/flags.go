package config

import "flag"

// Flags are the command-line overrides for a Config.
type Flags struct {
	fs *flag.FlagSet

	config    *string
	debug     *bool
	logFile   *string
	rows      *int
	cols      *int
	rowLength *float64
	colLength *float64
	diagonal  *bool
	frames    *int
	frameDT   *float64
	substeps  *int
	workers   *int
}

// RegisterFlags defines the config flags on fs.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	return &Flags{
		fs:        fs,
		config:    fs.String("config", "", "Path to config file"),
		debug:     fs.Bool("debug", false, "Enable debug logging"),
		logFile:   fs.String("log-file", "", "Also write logs to this file"),
		rows:      fs.Int("rows", 0, "Springs along a column"),
		cols:      fs.Int("cols", 0, "Springs along a row"),
		rowLength: fs.Float64("row-length", 0, "Rest length of vertical springs"),
		colLength: fs.Float64("col-length", 0, "Rest length of horizontal springs"),
		diagonal:  fs.Bool("diagonal", false, "Add diagonal springs"),
		frames:    fs.Int("frames", 0, "Number of frames"),
		frameDT:   fs.Float64("dt", 0, "Seconds between frames"),
		substeps:  fs.Int("substeps", 0, "Simulation steps per frame"),
		workers:   fs.Int("workers", 0, "Frames transformed concurrently"),
	}
}

// ConfigPath returns the explicit config path if provided via --config flag.
func (f *Flags) ConfigPath() string {
	return *f.config
}

// apply copies every flag that was set on the command line into cfg.
func (f *Flags) apply(cfg *Config) {
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "debug":
			if *f.debug {
				cfg.Logging.Level = "debug"
			}
		case "log-file":
			cfg.Logging.LogFile = *f.logFile
		case "rows":
			cfg.Sheet.SpringsRow = *f.rows
		case "cols":
			cfg.Sheet.SpringsCol = *f.cols
		case "row-length":
			cfg.Sheet.RestLengthRow = float32(*f.rowLength)
		case "col-length":
			cfg.Sheet.RestLengthCol = float32(*f.colLength)
		case "diagonal":
			cfg.Sheet.Diagonal = *f.diagonal
		case "frames":
			cfg.Playback.Frames = *f.frames
		case "dt":
			cfg.Playback.FrameDT = float32(*f.frameDT)
		case "substeps":
			cfg.Playback.Substeps = *f.substeps
		case "workers":
			cfg.Render.Workers = *f.workers
		}
	})
}
