// internal/rules/rules.go
//
// Word-policy rules for the game.
// Defines:
//   - Outcome: the tagged result of evaluating one word (accepted with a
//     non-negative bonus, or rejected with a human-readable reason).
//   - Context: the read-only game snapshot rules evaluate against.
//   - Rule:    the single capability every rule implements.
//   - Built-in rules: MinimumLength and UniqueWords.
//
// Rules never see or mutate round state beyond the Context they are handed.

package rules

import "github.com/Jacoba1100254352/Boggle/internal/grid"

// DefaultMinLength is the standard shortest playable word.
const DefaultMinLength = 3

// Rejection reasons for the built-in rules. Surfaced verbatim to players.
const (
	ReasonTooShort      = "word too short"
	ReasonAlreadyPlayed = "word already played"
)

// Outcome is the result of evaluating one word: exactly one of accepted
// (with Bonus >= 0) or rejected (with Reason set).
type Outcome struct {
	Rejected bool
	Reason   string // set only when Rejected
	Bonus    int    // extra points; > 0 short-circuits the pipeline
}

// Accept returns an accepting Outcome with no bonus.
func Accept() Outcome { return Outcome{} }

// AcceptBonus returns an accepting Outcome awarding bonus extra points.
func AcceptBonus(bonus int) Outcome { return Outcome{Bonus: bonus} }

// Reject returns a rejecting Outcome carrying a user-facing reason.
func Reject(reason string) Outcome { return Outcome{Rejected: true, Reason: reason} }

// Context is the read-only snapshot a rule evaluates against: the active
// board and the lowercase words already accepted this round.
type Context struct {
	Grid          *grid.Grid
	PreviousWords map[string]struct{}
}

// Played reports whether word was already accepted this round.
func (c Context) Played(word string) bool {
	_, ok := c.PreviousWords[word]
	return ok
}

// Rule evaluates one lowercase candidate word against one context and
// produces one Outcome. path is the player's actual selection, available
// to rules that care about how the word was traced.
type Rule interface {
	Evaluate(word string, path *grid.Selection, ctx Context) Outcome
}

// MinimumLength rejects words shorter than Min letters (DefaultMinLength
// when Min is zero).
type MinimumLength struct {
	Min int
}

// Evaluate implements Rule.
func (r MinimumLength) Evaluate(word string, _ *grid.Selection, _ Context) Outcome {
	min := r.Min
	if min <= 0 {
		min = DefaultMinLength
	}
	if len(word) < min {
		return Reject(ReasonTooShort)
	}
	return Accept()
}

// UniqueWords rejects words that were already accepted this round.
type UniqueWords struct{}

// Evaluate implements Rule.
func (UniqueWords) Evaluate(word string, _ *grid.Selection, ctx Context) Outcome {
	if ctx.Played(word) {
		return Reject(ReasonAlreadyPlayed)
	}
	return Accept()
}
