// internal/rules/flags.go
//
// Flags is the persisted set of enabled rule policies, backed by a small
// bit-set. The flag-to-rule mapping lives here so the pipeline is always
// rebuilt in the same canonical order no matter how flags were toggled.

package rules

// Flag identifies one togglable rule policy.
type Flag uint8

const (
	FlagMinimumLength Flag = 1 << iota
	FlagUniqueWords
)

// String returns the stable wire name of the flag.
func (f Flag) String() string {
	switch f {
	case FlagMinimumLength:
		return "minimumLength"
	case FlagUniqueWords:
		return "uniqueWords"
	}
	return "unknown"
}

// ParseFlag maps a wire name back to its Flag. Returns false for names it
// does not know.
func ParseFlag(name string) (Flag, bool) {
	switch name {
	case "minimumLength":
		return FlagMinimumLength, true
	case "uniqueWords":
		return FlagUniqueWords, true
	}
	return 0, false
}

// Flags is a set of enabled rule policies.
type Flags uint8

// DefaultFlags enables every built-in rule.
func DefaultFlags() Flags {
	return Flags(FlagMinimumLength | FlagUniqueWords)
}

// Has reports whether f is enabled.
func (fs Flags) Has(f Flag) bool { return fs&Flags(f) != 0 }

// Toggle flips f and returns the updated set.
func (fs Flags) Toggle(f Flag) Flags { return fs ^ Flags(f) }

// Names returns the wire names of the enabled flags in canonical order.
func (fs Flags) Names() []string {
	out := []string{}
	for _, f := range []Flag{FlagMinimumLength, FlagUniqueWords} {
		if fs.Has(f) {
			out = append(out, f.String())
		}
	}
	return out
}
