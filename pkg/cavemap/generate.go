package cavemap

import (
	"hash/fnv"
	"math/rand/v2"
	"strconv"
	"time"
)

// Generation constants.
const (
	SmoothIterations = 5 // Smoothing passes applied after the random fill
	BorderSize       = 5 // Wall ring added around the smoothed map
)

// Params controls cave generation.
//
// FillPercent is nominally in [0,100]. Values below 0 never produce an
// interior wall and values above 100 always do; neither is an error.
type Params struct {
	Width         int
	Height        int
	FillPercent   int
	Seed          string
	UseRandomSeed bool
}

// timeNow is swapped in tests.
var timeNow = time.Now

// SeedFromTime derives a seed string from the current time.
func SeedFromTime() string {
	return strconv.FormatInt(timeNow().UnixNano(), 10)
}

// NewRand returns a deterministic generator for the given seed string.
func NewRand(seed string) *rand.Rand {
	h := fnv.New64a()
	_, _ = h.Write([]byte(seed))
	sum := h.Sum64()
	return rand.New(rand.NewPCG(sum, sum^0x9e3779b97f4a7c15))
}

// Generate builds a smoothed cave map and embeds it in a BorderSize wall
// ring. It returns the bordered map and the seed that was used.
func Generate(p Params) (*Map, string, error) {
	m, err := New(p.Width, p.Height)
	if err != nil {
		return nil, "", err
	}

	seed := p.Seed
	if p.UseRandomSeed {
		seed = SeedFromTime()
	}

	RandomFill(m, NewRand(seed), p.FillPercent)
	for range SmoothIterations {
		Smooth(m)
	}

	return WithBorder(m, BorderSize), seed, nil
}

// RandomFill fills the interior with walls at fillPercent density. The
// outer ring is always wall and consumes no random draws.
func RandomFill(m *Map, rng *rand.Rand, fillPercent int) {
	for x := 0; x < m.Width; x++ {
		for y := 0; y < m.Height; y++ {
			if x == 0 || x == m.Width-1 || y == 0 || y == m.Height-1 {
				m.Set(x, y, Wall)
				continue
			}
			if rng.IntN(100) < fillPercent {
				m.Set(x, y, Wall)
			} else {
				m.Set(x, y, Open)
			}
		}
	}
}

// Smooth applies one cellular automaton pass in place. Cells are visited
// column by column, so later cells see neighbours already updated in the
// same pass.
func Smooth(m *Map) {
	for x := 0; x < m.Width; x++ {
		for y := 0; y < m.Height; y++ {
			walls := SurroundingWallCount(m, x, y)
			switch {
			case m.At(x, y) == Wall && walls < 4:
				m.Set(x, y, Open)
			case m.At(x, y) == Open && walls >= 5:
				m.Set(x, y, Wall)
			}
		}
	}
}

// SurroundingWallCount counts walls among the 8 neighbours of (x, y).
// Neighbours outside the map count as walls.
func SurroundingWallCount(m *Map, x, y int) int {
	count := 0
	for nx := x - 1; nx <= x+1; nx++ {
		for ny := y - 1; ny <= y+1; ny++ {
			if nx == x && ny == y {
				continue
			}
			if m.IsWall(nx, ny) {
				count++
			}
		}
	}
	return count
}

// WithBorder returns a copy of m surrounded by size wall cells on every side.
func WithBorder(m *Map, size int) *Map {
	w := m.Width + size*2
	h := m.Height + size*2
	bordered := &Map{Width: w, Height: h, Cells: make([]Cell, w*h)}
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			if x >= size && x < m.Width+size && y >= size && y < m.Height+size {
				bordered.Set(x, y, m.At(x-size, y-size))
			} else {
				bordered.Set(x, y, Wall)
			}
		}
	}
	return bordered
}
