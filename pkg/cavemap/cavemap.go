// Package cavemap generates binary cave layouts with a cellular automaton.
package cavemap

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSize is returned for non-positive map dimensions.
var ErrInvalidSize = errors.New("invalid map size")

// Cell is the state of a single map cell.
type Cell uint8

// Cell values.
const (
	Open Cell = 0
	Wall Cell = 1
)

// String returns the ASCII glyph for the cell.
func (c Cell) String() string {
	if c == Wall {
		return "#"
	}
	return "."
}

// Map is a fixed-size grid of cells. Y increases upward.
type Map struct {
	Width  int
	Height int
	Cells  []Cell // x + y*Width
}

// New creates an all-open map.
func New(width, height int) (*Map, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	return &Map{
		Width:  width,
		Height: height,
		Cells:  make([]Cell, width*height),
	}, nil
}

// InBounds reports whether (x, y) lies inside the map.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// At returns the cell at (x, y). Out-of-bounds coordinates read as Wall.
func (m *Map) At(x, y int) Cell {
	if !m.InBounds(x, y) {
		return Wall
	}
	return m.Cells[x+y*m.Width]
}

// Set stores a cell value. Out-of-bounds writes are ignored.
func (m *Map) Set(x, y int, c Cell) {
	if !m.InBounds(x, y) {
		return
	}
	m.Cells[x+y*m.Width] = c
}

// IsWall reports whether (x, y) is a wall.
func (m *Map) IsWall(x, y int) bool {
	return m.At(x, y) == Wall
}

// WallCount returns the number of wall cells.
func (m *Map) WallCount() int {
	n := 0
	for _, c := range m.Cells {
		if c == Wall {
			n++
		}
	}
	return n
}

// String renders the map with the highest row first.
func (m *Map) String() string {
	var sb strings.Builder
	sb.Grow((m.Width + 1) * m.Height)
	for y := m.Height - 1; y >= 0; y-- {
		for x := 0; x < m.Width; x++ {
			sb.WriteString(m.At(x, y).String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// FromRows parses an ASCII map as produced by String. The first row is the
// top of the map. '#' is a wall, anything else is open.
func FromRows(rows ...string) (*Map, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidSize)
	}
	width := len(rows[0])
	m, err := New(width, len(rows))
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("row %d: expected %d columns, got %d", i, width, len(row))
		}
		y := m.Height - 1 - i
		for x := 0; x < width; x++ {
			if row[x] == '#' {
				m.Set(x, y, Wall)
			}
		}
	}
	return m, nil
}
