// Package cave runs the full generation pipeline: cave map, sampling grid,
// floor triangulation, outline tracing and wall extrusion.
package cave

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/cavemesh/internal/config"
	"github.com/Faultbox/cavemesh/internal/engine/marching"
	"github.com/Faultbox/cavemesh/internal/logger"
	"github.com/Faultbox/cavemesh/pkg/cavemap"
)

// Result holds everything produced by one generation.
type Result struct {
	Seed     string       // Seed actually used, resolved when random
	Map      *cavemap.Map // Bordered map
	Grid     *marching.SquareGrid
	Floor    *marching.Mesh
	Walls    *marching.Mesh
	Outlines []marching.Outline
}

// Generate runs one complete generation. Nothing is reused between calls.
func Generate(cfg *config.Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := logger.Named("cave")
	start := time.Now()

	m, seed, err := cavemap.Generate(cavemap.Params{
		Width:         cfg.Map.Width,
		Height:        cfg.Map.Height,
		FillPercent:   cfg.Map.FillPercent,
		Seed:          cfg.Map.Seed,
		UseRandomSeed: cfg.Map.UseRandomSeed,
	})
	if err != nil {
		return nil, fmt.Errorf("generating map: %w", err)
	}
	log.Debug("map generated",
		zap.String("seed", seed),
		zap.Int("width", m.Width),
		zap.Int("height", m.Height),
		zap.Int("walls", m.WallCount()))

	res, err := BuildMesh(m, cfg.Mesh)
	if err != nil {
		return nil, err
	}
	res.Seed = seed

	log.Info("cave generated",
		zap.String("seed", seed),
		zap.Int("floor_vertices", len(res.Floor.Vertices)),
		zap.Int("floor_triangles", res.Floor.TriangleCount()),
		zap.Int("outlines", len(res.Outlines)),
		zap.Int("wall_triangles", res.Walls.TriangleCount()),
		zap.Duration("elapsed", time.Since(start)))

	return res, nil
}

// BuildMesh extracts floor and wall meshes from an existing map. The
// returned Result has no Seed.
func BuildMesh(m *cavemap.Map, cfg config.MeshConfig) (*Result, error) {
	if cfg.SquareSize <= 0 {
		return nil, fmt.Errorf("%w: square size %g must be positive", config.ErrInvalidConfiguration, cfg.SquareSize)
	}

	log := logger.Named("marching")

	grid := marching.NewSquareGrid(m, cfg.SquareSize)
	log.Debug("sampling grid built",
		zap.Int("nodes", grid.NodeCount()),
		zap.Int("squares", len(grid.Squares())))

	// Floor and wall passes would assign identical vertex indices, so one
	// triangulation serves both.
	tri := marching.Triangulate(grid)
	log.Debug("triangulated",
		zap.Int("vertices", len(tri.Vertices)),
		zap.Int("triangles", len(tri.Triangles)))

	outlines, err := tri.Outlines()
	if err != nil {
		return nil, fmt.Errorf("tracing outlines: %w", err)
	}
	log.Debug("outlines traced", zap.Int("outlines", len(outlines)))

	return &Result{
		Map:      m,
		Grid:     grid,
		Floor:    tri.Mesh(),
		Walls:    marching.ExtrudeWalls(tri.Vertices, outlines, cfg.WallHeight),
		Outlines: outlines,
	}, nil
}
