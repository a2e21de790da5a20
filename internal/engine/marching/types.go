package marching

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Triangle is an ordered triple of vertex indices.
type Triangle [3]uint32

// Contains reports whether the triangle references vertex v.
func (t Triangle) Contains(v uint32) bool {
	return t[0] == v || t[1] == v || t[2] == v
}

// Outline is a closed boundary polyline. The first and last indices are
// the same vertex.
type Outline []uint32

// Mesh holds vertex and index buffers ready for upload.
type Mesh struct {
	Vertices []mgl32.Vec3
	Normals  []mgl32.Vec3
	Indices  []uint32
	Bounds   Bounds
}

// TriangleCount returns the number of triangles in the index buffer.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Bounds holds the axis-aligned bounding box of a mesh.
type Bounds struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}
