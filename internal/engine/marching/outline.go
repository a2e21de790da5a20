package marching

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// ErrOrphanVertex means a vertex was emitted without any triangle.
var ErrOrphanVertex = errors.New("vertex has no adjacent triangles")

const noVertex = -1

// IsOutlineEdge reports whether edge (a, b) belongs to exactly one
// triangle.
func (t *Triangulation) IsOutlineEdge(a, b uint32) bool {
	return t.sharedTriangleCount(a, b) == 1
}

func (t *Triangulation) sharedTriangleCount(a, b uint32) int {
	count := 0
	for _, ti := range t.adjacency[a] {
		if t.Triangles[ti].Contains(b) {
			count++
		}
	}
	return count
}

// Outlines traces every boundary loop of the triangulation. Vertices are
// scanned in index order and each loop is walked until no unchecked
// boundary neighbour remains, then closed on its start vertex.
func (t *Triangulation) Outlines() ([]Outline, error) {
	checked := mapset.New[uint32]()
	t.interior.Each(func(v uint32) {
		checked.Put(v)
	})

	var outlines []Outline
	for i := range t.Vertices {
		start := uint32(i)
		if checked.Has(start) {
			continue
		}

		next, err := t.connectedOutlineVertex(start, checked)
		if err != nil {
			return nil, err
		}
		if next == noVertex {
			continue
		}

		checked.Put(start)
		outline := Outline{start}
		for next != noVertex {
			v := uint32(next)
			outline = append(outline, v)
			checked.Put(v)

			next, err = t.connectedOutlineVertex(v, checked)
			if err != nil {
				return nil, err
			}
		}
		outlines = append(outlines, append(outline, start))
	}
	return outlines, nil
}

// connectedOutlineVertex returns the first unchecked vertex sharing an
// outline edge with v, scanning v's triangles in creation order.
func (t *Triangulation) connectedOutlineVertex(v uint32, checked mapset.Set[uint32]) (int64, error) {
	tris := t.adjacency[v]
	if len(tris) == 0 {
		return noVertex, fmt.Errorf("%w: %d", ErrOrphanVertex, v)
	}

	for _, ti := range tris {
		for _, u := range t.Triangles[ti] {
			if u == v || checked.Has(u) {
				continue
			}
			if t.IsOutlineEdge(v, u) {
				return int64(u), nil
			}
		}
	}
	return noVertex, nil
}
