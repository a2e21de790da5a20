package cavemap

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInvalidSize(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"zero width", 0, 10},
		{"zero height", 10, 0},
		{"negative width", -1, 10},
		{"negative height", 10, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.width, tt.height)
			if !errors.Is(err, ErrInvalidSize) {
				t.Errorf("expected ErrInvalidSize, got %v", err)
			}
		})
	}
}

func TestMapOutOfBoundsIsWall(t *testing.T) {
	m, err := New(3, 3)
	require.NoError(t, err)

	assert.Equal(t, Open, m.At(1, 1))
	assert.Equal(t, Wall, m.At(-1, 0))
	assert.Equal(t, Wall, m.At(0, 3))

	// Writes outside the map are dropped
	m.Set(5, 5, Wall)
	assert.Equal(t, 0, m.WallCount())
}

func TestFromRowsRoundTrip(t *testing.T) {
	rows := []string{
		"####",
		"#..#",
		"#.##",
		"####",
	}
	m, err := FromRows(rows...)
	require.NoError(t, err)

	// First row is the top of the map
	assert.Equal(t, Open, m.At(1, 2))
	assert.Equal(t, Open, m.At(1, 1))
	assert.Equal(t, Wall, m.At(2, 1))

	assert.Equal(t, "####\n#..#\n#.##\n####\n", m.String())
}

func TestFromRowsRagged(t *testing.T) {
	_, err := FromRows("###", "##")
	assert.Error(t, err)
}

func TestSurroundingWallCount(t *testing.T) {
	m, err := FromRows(
		"...",
		".#.",
		"...",
	)
	require.NoError(t, err)

	// Centre sees only open neighbours
	assert.Equal(t, 0, SurroundingWallCount(m, 1, 1))
	// Corner sees 5 out-of-bounds walls plus the centre
	assert.Equal(t, 6, SurroundingWallCount(m, 0, 0))
	// Edge middle sees 3 out-of-bounds walls plus the centre
	assert.Equal(t, 4, SurroundingWallCount(m, 1, 0))
}

func TestSmoothRemovesIsolatedWall(t *testing.T) {
	m, err := FromRows(
		".......",
		".......",
		".......",
		"...#...",
		".......",
		".......",
		".......",
	)
	require.NoError(t, err)

	Smooth(m)

	if m.At(3, 3) != Open {
		t.Error("isolated wall with no wall neighbours should become open")
	}
}

func TestSmoothFillsEnclosedOpenCell(t *testing.T) {
	m, err := FromRows(
		"###",
		"#.#",
		"###",
	)
	require.NoError(t, err)

	Smooth(m)

	assert.Equal(t, 9, m.WallCount(), "open cell with 8 wall neighbours should become wall")
}

func TestSmoothIsInPlace(t *testing.T) {
	// Column x=0 is visited first. (0,1) has walls at (0,0),(0,2),(1,0),(1,2)
	// plus 3 out-of-bounds cells and turns to wall. A double-buffered pass
	// would leave (1,1) open because it only sees 4 walls; in place it sees
	// the updated (0,1) and becomes wall too.
	m, err := FromRows(
		"##.",
		"...",
		"##.",
	)
	require.NoError(t, err)

	Smooth(m)

	assert.Equal(t, Wall, m.At(0, 1))
	assert.Equal(t, Wall, m.At(1, 1))
}

func TestRandomFillOuterRing(t *testing.T) {
	m, err := New(12, 9)
	require.NoError(t, err)

	RandomFill(m, NewRand("ring"), 0)

	for x := 0; x < m.Width; x++ {
		for y := 0; y < m.Height; y++ {
			edge := x == 0 || y == 0 || x == m.Width-1 || y == m.Height-1
			if edge && m.At(x, y) != Wall {
				t.Errorf("edge cell (%d,%d) should be wall", x, y)
			}
			if !edge && m.At(x, y) != Open {
				t.Errorf("interior cell (%d,%d) should be open with 0%% fill", x, y)
			}
		}
	}
}

func TestRandomFillOutOfRangePercent(t *testing.T) {
	m, err := New(10, 10)
	require.NoError(t, err)

	RandomFill(m, NewRand("x"), -20)
	assert.Equal(t, 36, m.WallCount(), "negative fill should leave only the ring")

	RandomFill(m, NewRand("x"), 250)
	assert.Equal(t, 100, m.WallCount(), "fill above 100 should wall everything")
}

func TestGenerateBorderInvariant(t *testing.T) {
	m, _, err := Generate(Params{Width: 30, Height: 20, FillPercent: 47, Seed: "border"})
	require.NoError(t, err)

	assert.Equal(t, 30+BorderSize*2, m.Width)
	assert.Equal(t, 20+BorderSize*2, m.Height)

	for x := 0; x < m.Width; x++ {
		for y := 0; y < m.Height; y++ {
			if x < BorderSize || y < BorderSize || x >= m.Width-BorderSize || y >= m.Height-BorderSize {
				if m.At(x, y) != Wall {
					t.Fatalf("border cell (%d,%d) is not wall", x, y)
				}
			}
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	p := Params{Width: 40, Height: 30, FillPercent: 45, Seed: "determinism"}

	a, seedA, err := Generate(p)
	require.NoError(t, err)
	b, seedB, err := Generate(p)
	require.NoError(t, err)

	assert.Equal(t, seedA, seedB)
	assert.Equal(t, a.Cells, b.Cells)

	p.Seed = "something else"
	c, _, err := Generate(p)
	require.NoError(t, err)
	assert.NotEqual(t, a.Cells, c.Cells)
}

func TestGenerateFullFill(t *testing.T) {
	m, _, err := Generate(Params{Width: 10, Height: 10, FillPercent: 100, Seed: "x"})
	require.NoError(t, err)
	assert.Equal(t, m.Width*m.Height, m.WallCount())
}

func TestGenerateRandomSeed(t *testing.T) {
	orig := timeNow
	defer func() { timeNow = orig }()
	timeNow = func() time.Time { return time.Unix(0, 1234567) }

	_, seed, err := Generate(Params{Width: 5, Height: 5, Seed: "ignored", UseRandomSeed: true})
	require.NoError(t, err)
	assert.Equal(t, "1234567", seed)
}

func TestGenerateInvalidSize(t *testing.T) {
	_, _, err := Generate(Params{Width: -1, Height: 10})
	assert.ErrorIs(t, err, ErrInvalidSize)
}
