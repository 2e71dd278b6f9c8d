// internal/grid/selection.go
//
// Selection is the player's in-progress tile path: an ordered,
// duplicate-free sequence of coordinates in which each consecutive pair is
// 8-directionally adjacent. It is mutated only by append-last and
// remove-last; Tap implements the tap-to-select / tap-last-to-undo gesture
// contract used by input collaborators.

package grid

import "errors"

var (
	ErrOutOfBounds  = errors.New("selection: coordinate out of bounds")
	ErrNotAdjacent  = errors.New("selection: coordinate not adjacent to last")
	ErrAlreadyInUse = errors.New("selection: coordinate already selected")
)

// Selection is an ordered path of distinct, pairwise-adjacent coordinates
// on one grid.
type Selection struct {
	g      *Grid
	coords []Coord
}

// NewSelection returns an empty Selection bound to g.
func NewSelection(g *Grid) *Selection {
	return &Selection{g: g}
}

// Append adds c to the end of the path. It fails if c is out of bounds,
// already selected, or not adjacent to the current last coordinate.
func (s *Selection) Append(c Coord) error {
	if !s.g.InBounds(c) {
		return ErrOutOfBounds
	}
	if s.Contains(c) {
		return ErrAlreadyInUse
	}
	if n := len(s.coords); n > 0 && !s.coords[n-1].Adjacent(c) {
		return ErrNotAdjacent
	}
	s.coords = append(s.coords, c)
	return nil
}

// RemoveLast drops the most recently appended coordinate, if any.
func (s *Selection) RemoveLast() {
	if n := len(s.coords); n > 0 {
		s.coords = s.coords[:n-1]
	}
}

// Tap applies the tile-tap gesture: tapping the last selected coordinate
// removes it, tapping any other selected coordinate is rejected, and
// tapping a fresh coordinate appends it (subject to Append's checks).
func (s *Selection) Tap(c Coord) error {
	if n := len(s.coords); n > 0 && s.coords[n-1] == c {
		s.RemoveLast()
		return nil
	}
	return s.Append(c)
}

// Clear empties the path, e.g. after a submit or reset.
func (s *Selection) Clear() { s.coords = s.coords[:0] }

// Contains reports whether c is anywhere in the path.
func (s *Selection) Contains(c Coord) bool {
	for _, have := range s.coords {
		if have == c {
			return true
		}
	}
	return false
}

// Len returns the number of selected coordinates.
func (s *Selection) Len() int { return len(s.coords) }

// Coords returns a copy of the path in selection order.
func (s *Selection) Coords() []Coord {
	out := make([]Coord, len(s.coords))
	copy(out, s.coords)
	return out
}

// Word returns the candidate word spelled by the path: the letters at each
// coordinate, concatenated in selection order. Always lowercase.
func (s *Selection) Word() string {
	letters := make([]rune, len(s.coords))
	for i, c := range s.coords {
		letters[i] = s.g.Letter(c)
	}
	return string(letters)
}
