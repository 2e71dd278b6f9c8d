// internal/game/score.go
//
// Word scoring. The table is fixed game policy and must not change:
// clients and stored high scores depend on it.

package game

// Score maps a word's letter count to its point value:
// 3–4 letters → 1, 5 → 2, 6 → 3, 7 → 5, 8 or more → 11.
// Words shorter than 3 letters score nothing.
func Score(word string) int {
	switch n := len(word); {
	case n < 3:
		return 0
	case n <= 4:
		return 1
	case n == 5:
		return 2
	case n == 6:
		return 3
	case n == 7:
		return 5
	default:
		return 11
	}
}
