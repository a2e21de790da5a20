package marching

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/zyedidia/generic/mapset"
)

// squarePoint names one of the eight points of a square.
type squarePoint uint8

const (
	pTopLeft squarePoint = iota
	pTopRight
	pBottomRight
	pBottomLeft
	pCentreTop
	pCentreRight
	pCentreBottom
	pCentreLeft
)

// configurationPoints lists, per configuration, the polygon to fan from its
// first point. Order sets the winding.
var configurationPoints = [16][]squarePoint{
	0: nil,
	// 1 point
	1: {pCentreLeft, pCentreBottom, pBottomLeft},
	2: {pBottomRight, pCentreBottom, pCentreRight},
	4: {pTopRight, pCentreRight, pCentreTop},
	8: {pTopLeft, pCentreTop, pCentreLeft},
	// 2 points
	3:  {pCentreRight, pBottomRight, pBottomLeft, pCentreLeft},
	6:  {pCentreTop, pTopRight, pBottomRight, pCentreBottom},
	9:  {pTopLeft, pCentreTop, pCentreBottom, pBottomLeft},
	12: {pTopLeft, pTopRight, pCentreRight, pCentreLeft},
	5:  {pCentreTop, pTopRight, pCentreRight, pCentreBottom, pBottomLeft, pCentreLeft},
	10: {pTopLeft, pCentreTop, pCentreRight, pBottomRight, pCentreBottom, pCentreLeft},
	// 3 points
	7:  {pCentreTop, pTopRight, pBottomRight, pBottomLeft, pCentreLeft},
	11: {pTopLeft, pCentreTop, pCentreRight, pBottomRight, pBottomLeft},
	13: {pTopLeft, pTopRight, pCentreRight, pCentreBottom, pBottomLeft},
	14: {pTopLeft, pTopRight, pBottomRight, pCentreBottom, pCentreLeft},
	// 4 points
	15: {pTopLeft, pTopRight, pBottomRight, pBottomLeft},
}

func (s *Square) point(p squarePoint) NodeID {
	switch p {
	case pTopLeft:
		return s.TopLeft
	case pTopRight:
		return s.TopRight
	case pBottomRight:
		return s.BottomRight
	case pBottomLeft:
		return s.BottomLeft
	case pCentreTop:
		return s.CentreTop
	case pCentreRight:
		return s.CentreRight
	case pCentreBottom:
		return s.CentreBottom
	default:
		return s.CentreLeft
	}
}

// Triangulation is the result of one triangulation pass over a square grid.
type Triangulation struct {
	Vertices  []mgl32.Vec3
	Triangles []Triangle

	grid        *SquareGrid
	vertexIndex []int32            // per NodeID, -1 until emitted
	adjacency   [][]int            // vertex -> indices into Triangles
	interior    mapset.Set[uint32] // corners of fully solid squares
}

// Triangulate emits triangles for every square of g, in column order.
// Each node gets a vertex index the first time any square references it.
func Triangulate(g *SquareGrid) *Triangulation {
	t := &Triangulation{
		grid:        g,
		vertexIndex: make([]int32, g.NodeCount()),
		interior:    mapset.New[uint32](),
	}
	for i := range t.vertexIndex {
		t.vertexIndex[i] = -1
	}

	for _, s := range g.Squares() {
		t.triangulateSquare(&s)
	}
	return t
}

func (t *Triangulation) triangulateSquare(s *Square) {
	points := configurationPoints[s.Configuration]
	if len(points) == 0 {
		return
	}

	var idx [6]uint32
	for i, p := range points {
		idx[i] = t.assign(s.point(p))
	}
	for i := 2; i < len(points); i++ {
		t.addTriangle(idx[0], idx[i-1], idx[i])
	}

	// A fully solid square cannot put its corners on an outline
	if s.Configuration == 15 {
		for i := range 4 {
			t.interior.Put(idx[i])
		}
	}
}

// assign returns the vertex index of a node, emitting it on first use.
func (t *Triangulation) assign(id NodeID) uint32 {
	if v := t.vertexIndex[id]; v >= 0 {
		return uint32(v)
	}
	v := uint32(len(t.Vertices))
	t.vertexIndex[id] = int32(v)
	t.Vertices = append(t.Vertices, t.grid.Position(id))
	t.adjacency = append(t.adjacency, nil)
	return v
}

func (t *Triangulation) addTriangle(a, b, c uint32) {
	tri := Triangle{a, b, c}
	ti := len(t.Triangles)
	t.Triangles = append(t.Triangles, tri)
	for _, v := range tri {
		t.adjacency[v] = append(t.adjacency[v], ti)
	}
}

// TrianglesContaining returns the triangles that reference vertex v, in
// creation order.
func (t *Triangulation) TrianglesContaining(v uint32) []Triangle {
	if int(v) >= len(t.adjacency) {
		return nil
	}
	tris := make([]Triangle, len(t.adjacency[v]))
	for i, ti := range t.adjacency[v] {
		tris[i] = t.Triangles[ti]
	}
	return tris
}

// IsInterior reports whether v was pre-marked as a fully solid corner.
func (t *Triangulation) IsInterior(v uint32) bool {
	return t.interior.Has(v)
}

// Indices flattens the triangles into an index buffer.
func (t *Triangulation) Indices() []uint32 {
	indices := make([]uint32, 0, len(t.Triangles)*3)
	for _, tri := range t.Triangles {
		indices = append(indices, tri[0], tri[1], tri[2])
	}
	return indices
}

// Mesh returns the triangulation as a floor mesh with normals and bounds.
func (t *Triangulation) Mesh() *Mesh {
	vertices := make([]mgl32.Vec3, len(t.Vertices))
	copy(vertices, t.Vertices)
	m := &Mesh{
		Vertices: vertices,
		Indices:  t.Indices(),
	}
	m.RecalculateNormals()
	m.RecalculateBounds()
	return m
}
