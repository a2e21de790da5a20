// Package marching converts cave maps into floor and wall meshes using
// marching squares.
package marching

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/cavemesh/pkg/cavemap"
)

// NodeID identifies a sampling node. Every control node owns three IDs:
// itself, the edge midpoint above it and the edge midpoint to its right.
type NodeID int32

const (
	nodeControl = iota
	nodeAbove
	nodeRight
	nodesPerControl
)

// Square is one marching squares cell built from four control nodes and
// the four edge midpoints between them.
type Square struct {
	TopLeft, TopRight, BottomRight, BottomLeft       NodeID
	CentreTop, CentreRight, CentreBottom, CentreLeft NodeID
	Configuration                                    uint8 // 8*TL + 4*TR + 2*BR + 1*BL
}

// SquareGrid holds the sampling nodes for a map. Node positions are stored
// in a flat table keyed by NodeID, so squares sharing an edge refer to the
// same midpoint ID instead of recomputing it.
type SquareGrid struct {
	NodeCountX int
	NodeCountY int
	SquareSize float32

	positions []mgl32.Vec3
	active    []bool
	squares   []Square // x*(NodeCountY-1) + y
}

// NewSquareGrid builds the control node grid and squares for m. Nodes are
// centred on the origin in the XZ plane with +Z as "up" on the map.
func NewSquareGrid(m *cavemap.Map, squareSize float32) *SquareGrid {
	g := &SquareGrid{
		NodeCountX: m.Width,
		NodeCountY: m.Height,
		SquareSize: squareSize,
		positions:  make([]mgl32.Vec3, m.Width*m.Height*nodesPerControl),
		active:     make([]bool, m.Width*m.Height),
	}

	mapWidth := float32(g.NodeCountX) * squareSize
	mapHeight := float32(g.NodeCountY) * squareSize
	half := squareSize / 2

	for x := 0; x < g.NodeCountX; x++ {
		for y := 0; y < g.NodeCountY; y++ {
			pos := mgl32.Vec3{
				-mapWidth/2 + float32(x)*squareSize + half,
				0,
				-mapHeight/2 + float32(y)*squareSize + half,
			}
			g.active[g.controlIndex(x, y)] = m.IsWall(x, y)
			g.positions[g.ControlNode(x, y)] = pos
			g.positions[g.AboveNode(x, y)] = pos.Add(mgl32.Vec3{0, 0, half})
			g.positions[g.RightNode(x, y)] = pos.Add(mgl32.Vec3{half, 0, 0})
		}
	}

	if g.NodeCountX < 2 || g.NodeCountY < 2 {
		return g
	}

	g.squares = make([]Square, (g.NodeCountX-1)*(g.NodeCountY-1))
	for x := 0; x < g.NodeCountX-1; x++ {
		for y := 0; y < g.NodeCountY-1; y++ {
			g.squares[x*(g.NodeCountY-1)+y] = g.newSquare(x, y)
		}
	}
	return g
}

// newSquare builds square (x,y), whose top edge lies on node row y+1.
func (g *SquareGrid) newSquare(x, y int) Square {
	s := Square{
		TopLeft:     g.ControlNode(x, y+1),
		TopRight:    g.ControlNode(x+1, y+1),
		BottomRight: g.ControlNode(x+1, y),
		BottomLeft:  g.ControlNode(x, y),
	}
	s.CentreTop = g.RightNode(x, y+1)
	s.CentreRight = g.AboveNode(x+1, y)
	s.CentreBottom = g.RightNode(x, y)
	s.CentreLeft = g.AboveNode(x, y)

	if g.active[g.controlIndex(x, y+1)] {
		s.Configuration += 8
	}
	if g.active[g.controlIndex(x+1, y+1)] {
		s.Configuration += 4
	}
	if g.active[g.controlIndex(x+1, y)] {
		s.Configuration += 2
	}
	if g.active[g.controlIndex(x, y)] {
		s.Configuration += 1
	}
	return s
}

func (g *SquareGrid) controlIndex(x, y int) int {
	return x*g.NodeCountY + y
}

// ControlNode returns the ID of control node (x, y).
func (g *SquareGrid) ControlNode(x, y int) NodeID {
	return NodeID(g.controlIndex(x, y)*nodesPerControl + nodeControl)
}

// AboveNode returns the ID of the edge midpoint between (x, y) and (x, y+1).
func (g *SquareGrid) AboveNode(x, y int) NodeID {
	return NodeID(g.controlIndex(x, y)*nodesPerControl + nodeAbove)
}

// RightNode returns the ID of the edge midpoint between (x, y) and (x+1, y).
func (g *SquareGrid) RightNode(x, y int) NodeID {
	return NodeID(g.controlIndex(x, y)*nodesPerControl + nodeRight)
}

// NodeCount returns the size of the node table.
func (g *SquareGrid) NodeCount() int {
	return len(g.positions)
}

// Position returns the world position of a node.
func (g *SquareGrid) Position(id NodeID) mgl32.Vec3 {
	return g.positions[id]
}

// Active reports whether control node (x, y) is solid.
func (g *SquareGrid) Active(x, y int) bool {
	return g.active[g.controlIndex(x, y)]
}

// SquaresX returns the number of square columns.
func (g *SquareGrid) SquaresX() int {
	if g.squares == nil {
		return 0
	}
	return g.NodeCountX - 1
}

// SquaresY returns the number of square rows.
func (g *SquareGrid) SquaresY() int {
	if g.squares == nil {
		return 0
	}
	return g.NodeCountY - 1
}

// Square returns square (x, y).
func (g *SquareGrid) Square(x, y int) Square {
	return g.squares[x*(g.NodeCountY-1)+y]
}

// Squares returns all squares in column order.
func (g *SquareGrid) Squares() []Square {
	return g.squares
}

// ConfigurationHistogram counts squares per configuration.
func (g *SquareGrid) ConfigurationHistogram() [16]int {
	var hist [16]int
	for _, s := range g.squares {
		hist[s.Configuration]++
	}
	return hist
}
