// internal/rules/engine.go
//
// Engine runs an ordered rule pipeline over one candidate word.
//
// Short-circuit semantics:
//   - The first rejection stops the pipeline and is returned verbatim.
//   - The first positive bonus stops the pipeline and wins outright;
//     bonuses are never accumulated across rules.
//   - Otherwise (including an empty pipeline) the word is accepted with
//     no bonus.

package rules

import "github.com/Jacoba1100254352/Boggle/internal/grid"

// Engine holds an ordered list of rules. It knows nothing about their
// concrete kinds.
type Engine struct {
	rules []Rule
}

// NewEngine builds an Engine evaluating rs in the given order.
func NewEngine(rs ...Rule) *Engine {
	return &Engine{rules: rs}
}

// ForFlags builds the pipeline for the enabled flags, always in canonical
// order (minimum length, then uniqueness) regardless of toggle history.
func ForFlags(fs Flags) *Engine {
	var rs []Rule
	if fs.Has(FlagMinimumLength) {
		rs = append(rs, MinimumLength{})
	}
	if fs.Has(FlagUniqueWords) {
		rs = append(rs, UniqueWords{})
	}
	return NewEngine(rs...)
}

// Evaluate runs the pipeline over one lowercase word.
func (e *Engine) Evaluate(word string, path *grid.Selection, ctx Context) Outcome {
	for _, r := range e.rules {
		out := r.Evaluate(word, path, ctx)
		if out.Rejected || out.Bonus > 0 {
			return out
		}
	}
	return Accept()
}

// Len returns the number of rules in the pipeline.
func (e *Engine) Len() int { return len(e.rules) }
