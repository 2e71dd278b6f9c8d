// internal/game/types.go
//
// Core type definitions for the round engine.
// Defines:
//   - State: lifecycle of a round (notStarted/inProgress/ended).
//   - Result: the outcome of one word submission.
//   - Snapshot: a read-only copy of round state for transport/observers.
//   - Collaborator contracts: Dictionary, ScoreStore, FlagStore.

package game

import (
	"context"

	"github.com/Jacoba1100254352/Boggle/internal/rules"
)

// State is the coarse lifecycle of a round.
type State string

const (
	StateNotStarted State = "notStarted"
	StateInProgress State = "inProgress"
	StateEnded      State = "ended"
)

// Rejection reasons produced by the session itself (rule reasons come from
// the rules package).
const (
	ReasonNotInDictionary = "not in dictionary"
	ReasonNotOnBoard      = "not on board"
	ReasonNotInProgress   = "round not in progress"
)

// Result reports the outcome of one submission. An ignored submission
// (empty word) has Accepted false and an empty Reason.
type Result struct {
	Word     string `json:"word"`
	Accepted bool   `json:"accepted"`
	Reason   string `json:"reason,omitempty"`
	Points   int    `json:"points"` // base points from the scoring table
	Bonus    int    `json:"bonus"`  // extra points awarded by a rule
	Score    int    `json:"score"`  // round score after this submission
}

// Snapshot is a read-only copy of round state, safe to hand to observers
// and encoders without holding the session lock.
type Snapshot struct {
	ID            string      `json:"id"`
	Board         []string    `json:"board"` // one string per row
	FoundWords    []string    `json:"foundWords"`
	Score         int         `json:"score"`
	HighScore     int         `json:"highScore"`
	TimeRemaining int         `json:"timeRemaining"`
	State         State       `json:"state"`
	Flags         rules.Flags `json:"-"`
	EnabledRules  []string    `json:"enabledRules"`
}

// Dictionary is the word-list membership test. Words are handed over
// lowercase.
type Dictionary interface {
	Contains(word string) bool
}

// DictionaryFunc adapts a plain function to the Dictionary interface.
type DictionaryFunc func(word string) bool

// Contains implements Dictionary.
func (f DictionaryFunc) Contains(word string) bool { return f(word) }

// ScoreStore persists the high score across rounds. Failures are
// non-fatal: the session falls back to 0 on load and drops failed saves.
type ScoreStore interface {
	LoadHighScore(ctx context.Context) (int, error)
	SaveHighScore(ctx context.Context, score int) error
}

// FlagStore persists rule-flag preferences. Failures are non-fatal: the
// session falls back to all rules enabled.
type FlagStore interface {
	LoadFlags(ctx context.Context) (rules.Flags, error)
	SaveFlags(ctx context.Context, fs rules.Flags) error
}
