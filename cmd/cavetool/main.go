// cavetool is a CLI utility for previewing, inspecting and batch
// generating caves.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/cavemesh/internal/cave"
	"github.com/Faultbox/cavemesh/internal/config"
	"github.com/Faultbox/cavemesh/internal/export"
	"github.com/Faultbox/cavemesh/internal/logger"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "preview", "p":
		cmdPreview(args)
	case "stats", "s":
		cmdStats(args)
	case "batch", "b":
		cmdBatch(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`cavetool - procedural cave utility

Usage:
  cavetool <command> [options]

Commands:
  preview [map flags]                    Print the bordered map as ASCII
  stats [map flags]                      Show mesh and outline statistics
  batch [map flags] -n N -out DIR        Generate N seeds and export OBJ files

Map flags:
  -width N -height N -fill N -seed S -random-seed -square-size F -wall-height F -v

Examples:
  cavetool preview -width 60 -height 30 -seed grotto
  cavetool stats -fill 50
  cavetool batch -n 16 -prefix cave -out ./caves`)
}

// mapFlags binds the shared generation flags onto cfg.
type mapFlags struct {
	cfg        *config.Config
	squareSize float64
	wallHeight float64
	verbose    bool
}

func newMapFlags(fs *flag.FlagSet) *mapFlags {
	cfg := config.Default()
	mf := &mapFlags{
		cfg:        cfg,
		squareSize: float64(cfg.Mesh.SquareSize),
		wallHeight: float64(cfg.Mesh.WallHeight),
	}
	fs.IntVar(&cfg.Map.Width, "width", cfg.Map.Width, "Map width in cells")
	fs.IntVar(&cfg.Map.Height, "height", cfg.Map.Height, "Map height in cells")
	fs.IntVar(&cfg.Map.FillPercent, "fill", cfg.Map.FillPercent, "Random fill percent (0-100)")
	fs.StringVar(&cfg.Map.Seed, "seed", cfg.Map.Seed, "Seed string")
	fs.BoolVar(&cfg.Map.UseRandomSeed, "random-seed", false, "Derive the seed from the current time")
	fs.Float64Var(&mf.squareSize, "square-size", mf.squareSize, "World size of one map cell")
	fs.Float64Var(&mf.wallHeight, "wall-height", mf.wallHeight, "Wall extrusion height")
	fs.BoolVar(&mf.verbose, "v", false, "Verbose logging")
	return mf
}

// resolve finishes flag binding and sets up logging.
func (mf *mapFlags) resolve() *config.Config {
	mf.cfg.Mesh.SquareSize = float32(mf.squareSize)
	mf.cfg.Mesh.WallHeight = float32(mf.wallHeight)
	mf.cfg.Logging.Level = "warn"
	if mf.verbose {
		mf.cfg.Logging.Level = "debug"
	}

	if err := mf.cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(mf.cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	return mf.cfg
}

func generate(cfg *config.Config) *cave.Result {
	res, err := cave.Generate(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return res
}

func cmdPreview(args []string) {
	fs := flag.NewFlagSet("preview", flag.ExitOnError)
	mf := newMapFlags(fs)
	fs.Parse(args)

	cfg := mf.resolve()
	defer logger.Sync()

	res := generate(cfg)
	fmt.Print(res.Map.String())
	fmt.Fprintf(os.Stderr, "\n(seed %q, %dx%d)\n", res.Seed, res.Map.Width, res.Map.Height)
}

func cmdStats(args []string) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	mf := newMapFlags(fs)
	fs.Parse(args)

	cfg := mf.resolve()
	defer logger.Sync()

	s := generate(cfg).Stats()

	fmt.Printf("Seed:      %s\n", s.Seed)
	fmt.Printf("Map:       %dx%d (%d wall cells)\n", s.MapWidth, s.MapHeight, s.WallCells)
	fmt.Printf("Floor:     %d vertices, %d triangles\n", s.FloorVertices, s.FloorTriangles)
	fmt.Printf("Walls:     %d vertices, %d triangles\n", s.WallVertices, s.WallTriangles)
	fmt.Printf("Outlines:  %d\n", s.Outlines)
	if len(s.OutlineLengths) > 0 {
		shown := s.OutlineLengths
		if len(shown) > 10 {
			shown = shown[:10]
		}
		parts := make([]string, len(shown))
		for i, n := range shown {
			parts[i] = fmt.Sprint(n)
		}
		fmt.Printf("Longest:   %s\n", strings.Join(parts, ", "))
	}
	fmt.Println()
	fmt.Println("Squares by configuration:")
	for code, count := range s.Configurations {
		if count > 0 {
			fmt.Printf("  %04b  %d\n", code, count)
		}
	}
}

func cmdBatch(args []string) {
	fs := flag.NewFlagSet("batch", flag.ExitOnError)
	mf := newMapFlags(fs)
	count := fs.Int("n", 8, "Number of caves to generate")
	prefix := fs.String("prefix", "cave", "Seed and file name prefix")
	outDir := fs.String("out", "out", "Output directory")
	jobs := fs.Int("j", runtime.NumCPU(), "Concurrent generations")
	fs.Parse(args)

	base := mf.resolve()
	defer logger.Sync()

	if *count <= 0 || *jobs <= 0 {
		fmt.Fprintln(os.Stderr, "Usage: cavetool batch -n N (N > 0) -j J (J > 0)")
		os.Exit(1)
	}

	var g errgroup.Group
	g.SetLimit(*jobs)

	for i := range *count {
		name := fmt.Sprintf("%s-%d", *prefix, i)

		cfg := *base
		cfg.Map.Seed = name
		cfg.Map.UseRandomSeed = false

		g.Go(func() error {
			res, err := cave.Generate(&cfg)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			files, err := export.Save(*outDir, name, &cfg, res)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			logger.Debug("batch item written", zap.String("obj", files.OBJ))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d caves to %s\n", *count, *outDir)
}
