package marching

import (
	"github.com/go-gl/mathgl/mgl32"
)

// DefaultWallHeight is the extrusion depth used when none is configured.
const DefaultWallHeight float32 = 5

// ExtrudeWalls builds a wall ribbon below every outline. Each segment owns
// its four vertices; nothing is shared with the floor or other segments.
func ExtrudeWalls(vertices []mgl32.Vec3, outlines []Outline, wallHeight float32) *Mesh {
	down := mgl32.Vec3{0, -wallHeight, 0}

	segments := 0
	for _, outline := range outlines {
		if len(outline) > 1 {
			segments += len(outline) - 1
		}
	}

	m := &Mesh{
		Vertices: make([]mgl32.Vec3, 0, segments*4),
		Indices:  make([]uint32, 0, segments*6),
	}

	for _, outline := range outlines {
		for i := 0; i < len(outline)-1; i++ {
			start := uint32(len(m.Vertices))
			topLeft := vertices[outline[i]]
			topRight := vertices[outline[i+1]]

			m.Vertices = append(m.Vertices,
				topLeft,
				topRight,
				topLeft.Add(down),  // bottom left
				topRight.Add(down), // bottom right
			)

			m.Indices = append(m.Indices,
				start+0, start+2, start+3,
				start+3, start+1, start+0,
			)
		}
	}

	m.RecalculateNormals()
	m.RecalculateBounds()
	return m
}
