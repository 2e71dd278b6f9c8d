package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordAdjacent(t *testing.T) {
	tests := []struct {
		name string
		a, b Coord
		want bool
	}{
		{"right neighbor", Coord{1, 1}, Coord{1, 2}, true},
		{"left neighbor", Coord{1, 1}, Coord{1, 0}, true},
		{"above", Coord{1, 1}, Coord{0, 1}, true},
		{"below", Coord{1, 1}, Coord{2, 1}, true},
		{"diagonal up-left", Coord{1, 1}, Coord{0, 0}, true},
		{"diagonal down-right", Coord{1, 1}, Coord{2, 2}, true},
		{"same cell", Coord{1, 1}, Coord{1, 1}, false},
		{"two columns away", Coord{1, 1}, Coord{1, 3}, false},
		{"two rows away", Coord{1, 1}, Coord{3, 1}, false},
		{"knight move", Coord{1, 1}, Coord{2, 3}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Adjacent(tt.b))
			assert.Equal(t, tt.want, tt.b.Adjacent(tt.a), "adjacency must be symmetric")
		})
	}
}

func TestFromRows(t *testing.T) {
	g, err := FromRows([]string{"CAts", "doge"})
	require.NoError(t, err)
	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 4, g.Cols())
	assert.Equal(t, 'c', g.Letter(Coord{0, 0}), "letters are lowercased")
	assert.Equal(t, 'e', g.Letter(Coord{1, 3}))
	assert.Equal(t, []string{"cats", "doge"}, g.RowStrings())
}

func TestFromRowsRejectsBadShapes(t *testing.T) {
	_, err := FromRows(nil)
	assert.Error(t, err)
	_, err = FromRows([]string{""})
	assert.Error(t, err)
	_, err = FromRows([]string{"abc", "ab"})
	assert.Error(t, err)
}

func TestLetterOutOfBounds(t *testing.T) {
	g, err := FromRows([]string{"ab", "cd"})
	require.NoError(t, err)
	assert.False(t, g.InBounds(Coord{-1, 0}))
	assert.False(t, g.InBounds(Coord{0, 2}))
	assert.True(t, g.InBounds(Coord{1, 1}))
	assert.Equal(t, rune(0), g.Letter(Coord{2, 0}))
}

func TestFromSeedDeterministic(t *testing.T) {
	a, err := FromSeed(4, 4, 42)
	require.NoError(t, err)
	b, err := FromSeed(4, 4, 42)
	require.NoError(t, err)
	assert.Equal(t, a.RowStrings(), b.RowStrings())

	c, err := FromSeed(4, 4, 43)
	require.NoError(t, err)
	assert.NotEqual(t, a.RowStrings(), c.RowStrings())
}

func TestFromSeedRejectsBadDimensions(t *testing.T) {
	_, err := FromSeed(0, 4, 1)
	assert.Error(t, err)
	_, err = FromSeed(4, -1, 1)
	assert.Error(t, err)
}

func TestNewLettersInRange(t *testing.T) {
	g, err := New(4, 4)
	require.NoError(t, err)
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			l := g.Letter(Coord{r, c})
			assert.True(t, l >= 'a' && l <= 'z', "letter %q out of range", l)
		}
	}
}
