package config

import "flag"

// cliFlags holds the command-line overrides bound to one FlagSet.
type cliFlags struct {
	fs *flag.FlagSet

	config     *string
	saveConfig *bool
	debug      *bool
	width      *int
	height     *int
	fill       *int
	seed       *string
	randomSeed *bool
	squareSize *float64
	wallHeight *float64
	out        *string
}

func newCLIFlags(fs *flag.FlagSet) *cliFlags {
	d := Default()
	return &cliFlags{
		fs:         fs,
		config:     fs.String("config", "", "Path to config file"),
		saveConfig: fs.Bool("save-config", false, "Save the effective config to the user config directory"),
		debug:      fs.Bool("debug", false, "Enable debug logging"),
		width:      fs.Int("width", d.Map.Width, "Map width in cells"),
		height:     fs.Int("height", d.Map.Height, "Map height in cells"),
		fill:       fs.Int("fill", d.Map.FillPercent, "Random fill percent (0-100, values outside fill nothing or everything)"),
		seed:       fs.String("seed", d.Map.Seed, "Seed string"),
		randomSeed: fs.Bool("random-seed", false, "Derive the seed from the current time"),
		squareSize: fs.Float64("square-size", float64(d.Mesh.SquareSize), "World size of one map cell"),
		wallHeight: fs.Float64("wall-height", float64(d.Mesh.WallHeight), "Wall extrusion height"),
		out:        fs.String("out", d.Output.Dir, "Output directory"),
	}
}

var cli = newCLIFlags(flag.CommandLine)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *cli.config
}

// SaveRequested reports whether --save-config was given.
func SaveRequested() bool {
	return *cli.saveConfig
}

// apply copies only the flags that were passed on the command line, so
// any explicit value (a negative fill, a zero wall height) overrides the
// file.
func (f *cliFlags) apply(cfg *Config) {
	set := make(map[string]bool)
	f.fs.Visit(func(fl *flag.Flag) {
		set[fl.Name] = true
	})

	if set["debug"] && *f.debug {
		cfg.Logging.Level = "debug"
	}
	if set["width"] {
		cfg.Map.Width = *f.width
	}
	if set["height"] {
		cfg.Map.Height = *f.height
	}
	if set["fill"] {
		cfg.Map.FillPercent = *f.fill
	}
	if set["seed"] {
		cfg.Map.Seed = *f.seed
		cfg.Map.UseRandomSeed = false
	}
	if set["random-seed"] {
		cfg.Map.UseRandomSeed = *f.randomSeed
	}
	if set["square-size"] {
		cfg.Mesh.SquareSize = float32(*f.squareSize)
	}
	if set["wall-height"] {
		cfg.Mesh.WallHeight = float32(*f.wallHeight)
	}
	if set["out"] {
		cfg.Output.Dir = *f.out
	}
}
