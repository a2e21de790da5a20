package cave

import "sort"

// Stats summarizes a generation.
type Stats struct {
	Seed           string  `yaml:"seed"`
	MapWidth       int     `yaml:"map_width"`
	MapHeight      int     `yaml:"map_height"`
	WallCells      int     `yaml:"wall_cells"`
	FloorVertices  int     `yaml:"floor_vertices"`
	FloorTriangles int     `yaml:"floor_triangles"`
	WallVertices   int     `yaml:"wall_vertices"`
	WallTriangles  int     `yaml:"wall_triangles"`
	Outlines       int     `yaml:"outlines"`
	OutlineLengths []int   `yaml:"outline_lengths,flow"` // Longest first
	Configurations [16]int `yaml:"configurations,flow"`
}

// Stats computes summary numbers for r.
func (r *Result) Stats() Stats {
	s := Stats{
		Seed:           r.Seed,
		MapWidth:       r.Map.Width,
		MapHeight:      r.Map.Height,
		WallCells:      r.Map.WallCount(),
		FloorVertices:  len(r.Floor.Vertices),
		FloorTriangles: r.Floor.TriangleCount(),
		WallVertices:   len(r.Walls.Vertices),
		WallTriangles:  r.Walls.TriangleCount(),
		Outlines:       len(r.Outlines),
		Configurations: r.Grid.ConfigurationHistogram(),
	}

	s.OutlineLengths = make([]int, len(r.Outlines))
	for i, o := range r.Outlines {
		s.OutlineLengths[i] = len(o)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(s.OutlineLengths)))
	return s
}
