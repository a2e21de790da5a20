package marching

import (
	"github.com/go-gl/mathgl/mgl32"
)

// RecalculateNormals sets each vertex normal to the normalized sum of the
// face normals of its triangles. Larger faces weigh more.
func (m *Mesh) RecalculateNormals() {
	normals := make([]mgl32.Vec3, len(m.Vertices))

	for i := 0; i+2 < len(m.Indices); i += 3 {
		a, b, c := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		edge1 := m.Vertices[b].Sub(m.Vertices[a])
		edge2 := m.Vertices[c].Sub(m.Vertices[a])
		face := edge1.Cross(edge2)

		normals[a] = normals[a].Add(face)
		normals[b] = normals[b].Add(face)
		normals[c] = normals[c].Add(face)
	}

	for i := range normals {
		normals[i] = normalize(normals[i])
	}
	m.Normals = normals
}

// RecalculateBounds updates the axis-aligned bounding box.
func (m *Mesh) RecalculateBounds() {
	if len(m.Vertices) == 0 {
		m.Bounds = Bounds{}
		return
	}

	b := Bounds{Min: m.Vertices[0], Max: m.Vertices[0]}
	for _, p := range m.Vertices[1:] {
		updateBounds(&b, p)
	}
	m.Bounds = b
}

func updateBounds(b *Bounds, p mgl32.Vec3) {
	for i := range 3 {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
}

// normalize falls back to +Y for degenerate vectors.
func normalize(v mgl32.Vec3) mgl32.Vec3 {
	if v.Len() < 0.0001 {
		return mgl32.Vec3{0, 1, 0}
	}
	return v.Normalize()
}
