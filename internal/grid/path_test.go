package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExistsOnBoard(t *testing.T) {
	board := []string{
		"cats",
		"doge",
		"xyzw",
		"qrst",
	}

	tests := []struct {
		name string
		word string
		want bool
	}{
		{"top row word", "cat", true},
		{"full top row", "cats", true},
		{"uppercase input", "CAT", true},
		{"diagonal and vertical", "cod", true}, // c(0,0) o(1,1) d(1,0)
		{"zigzag of diagonals", "gato", true},  // g(1,2) a(0,1) t(0,2) o(1,1)
		{"letters present but never adjacent", "sog", false},
		{"single letter present", "z", true},
		{"single letter absent", "u", false},
		{"absent word", "mouse", false},
		{"empty word", "", false},
		{"word longer than board", "catsdogexyzwqrstx", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustGrid(t, board)
			assert.Equal(t, tt.want, ExistsOnBoard(tt.word, g))
		})
	}
}

func TestExistsOnBoardNoCellReuse(t *testing.T) {
	// "aba" needs two distinct a-cells; this board only has one.
	g := mustGrid(t, []string{"ab"})
	assert.False(t, ExistsOnBoard("aba", g))

	// With a second a available the alternate path must be found.
	g = mustGrid(t, []string{"aba"})
	assert.True(t, ExistsOnBoard("aba", g))
}

func TestExistsOnBoardVisitedIsolation(t *testing.T) {
	// Failed attempts must unmark every cell they touched so later
	// attempts (and sibling branches) see a clean board.
	g := mustGrid(t, []string{
		"ax",
		"ba",
	})
	assert.True(t, ExistsOnBoard("ab", g))
	assert.True(t, ExistsOnBoard("aba", g))   // a(0,0) b(1,0) a(1,1)
	assert.False(t, ExistsOnBoard("abab", g)) // only one b on the board
}

func TestExistsOnBoardDuplicateLetters(t *testing.T) {
	g := mustGrid(t, []string{
		"oo",
		"to",
	})
	assert.True(t, ExistsOnBoard("too", g))
	assert.True(t, ExistsOnBoard("oot", g))
	assert.False(t, ExistsOnBoard("oooo", g), "four o's need four distinct cells")
	assert.True(t, ExistsOnBoard("ooo", g))
}

func TestExistsOnBoardSingleCell(t *testing.T) {
	g, err := FromRows([]string{"q"})
	require.NoError(t, err)
	assert.True(t, ExistsOnBoard("q", g))
	assert.False(t, ExistsOnBoard("qq", g))
}

func TestExistsOnBoardNilGrid(t *testing.T) {
	assert.False(t, ExistsOnBoard("cat", nil))
}
