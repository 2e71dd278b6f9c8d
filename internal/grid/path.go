// internal/grid/path.go
//
// Board-feasibility check: does SOME legal path on the grid spell a given
// word? Independent of whatever path the player actually tapped.
//
// Algorithm: from every cell matching the word's first letter, run a
// depth-first backtracking search over the 8 neighbor directions, using
// each cell at most once per attempt. The visited buffer is unmarked on
// every failed branch so no state leaks between sibling branches or
// between starting cells. Worst case is exponential in word length, which
// is fine for 16-cell boards and short words.

package grid

import "strings"

// ExistsOnBoard reports whether some contiguous, non-revisiting path of
// 8-adjacent cells on g spells word (case-insensitively). The empty word
// is never on the board.
func ExistsOnBoard(word string, g *Grid) bool {
	if g == nil || word == "" {
		return false
	}
	w := []rune(strings.ToLower(word))
	visited := make([]bool, g.rows*g.cols)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.search(w, 0, r, c, visited) {
				return true
			}
		}
	}
	return false
}

// search extends a path that has matched w[:i] onto cell (r, c).
// visited holds the cells used by the current attempt only.
func (g *Grid) search(w []rune, i, r, c int, visited []bool) bool {
	if i == len(w) {
		return true
	}
	if r < 0 || r >= g.rows || c < 0 || c >= g.cols {
		return false
	}
	k := r*g.cols + c
	if visited[k] || g.letters[k] != w[i] {
		return false
	}
	visited[k] = true
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if g.search(w, i+1, r+dr, c+dc, visited) {
				visited[k] = false
				return true
			}
		}
	}
	visited[k] = false
	return false
}
