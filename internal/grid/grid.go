// internal/grid/grid.go
//
// The letter board for a single round.
// Defines:
//   - Coord: an immutable (row, col) pair with 8-directional adjacency.
//   - Grid:  a rectangular board of lowercase letters, fixed for the round.
//
// Grids are generated uniformly at random from a–z, either from crypto
// entropy (normal play) or from an explicit seed (daily puzzles, tests).

package grid

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

const (
	// DefaultRows and DefaultCols are the standard board dimensions.
	DefaultRows = 4
	DefaultCols = 4
)

// Coord identifies one cell on a Grid. Zero-based, row-major.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Adjacent reports whether o is one of c's 8 neighbors (row and column
// each differ by at most 1, and o is not c itself).
func (c Coord) Adjacent(o Coord) bool {
	dr, dc := o.Row-c.Row, o.Col-c.Col
	if dr < -1 || dr > 1 || dc < -1 || dc > 1 {
		return false
	}
	return dr != 0 || dc != 0
}

// Grid is the fixed letter board for one round. It is immutable after
// construction; all letters are lowercase a–z.
type Grid struct {
	rows, cols int
	letters    []rune // row-major, rows*cols cells
}

// New constructs a Grid of uniformly random letters using crypto entropy.
func New(rows, cols int) (*Grid, error) {
	var b [8]byte
	_, _ = cryptorand.Read(b[:])
	return FromSeed(rows, cols, int64(binary.BigEndian.Uint64(b[:])))
}

// FromSeed constructs a Grid of uniformly random letters from a
// deterministic seed. Equal seeds and dimensions produce equal grids.
func FromSeed(rows, cols int, seed int64) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, errors.New("grid: dimensions must be at least 1x1")
	}
	rng := rand.New(rand.NewSource(seed))
	letters := make([]rune, rows*cols)
	for i := range letters {
		letters[i] = rune('a' + rng.Intn(26))
	}
	return &Grid{rows: rows, cols: cols, letters: letters}, nil
}

// FromRows constructs a Grid from explicit row strings, one character per
// cell. Rows must be non-empty and of equal length; letters are lowercased.
func FromRows(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, errors.New("grid: dimensions must be at least 1x1")
	}
	cols := len([]rune(rows[0]))
	letters := make([]rune, 0, len(rows)*cols)
	for i, row := range rows {
		rs := []rune(strings.ToLower(row))
		if len(rs) != cols {
			return nil, fmt.Errorf("grid: row %d has %d cells, want %d", i, len(rs), cols)
		}
		letters = append(letters, rs...)
	}
	return &Grid{rows: len(rows), cols: cols, letters: letters}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether c addresses a cell on this grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Letter returns the lowercase letter at c, or 0 if c is out of bounds.
func (g *Grid) Letter(c Coord) rune {
	if !g.InBounds(c) {
		return 0
	}
	return g.letters[c.Row*g.cols+c.Col]
}

// RowStrings renders the board as one string per row, for transport.
func (g *Grid) RowStrings() []string {
	out := make([]string, g.rows)
	for r := 0; r < g.rows; r++ {
		out[r] = string(g.letters[r*g.cols : (r+1)*g.cols])
	}
	return out
}
