// internal/words/words.go
//
// Dictionary management for the game engine.
//
// Responsibilities:
//   - Load the word list from an environment-provided file or fall back to
//     the embedded default list.
//   - Maintain a set for the membership test the round session needs.
//
// Word list format: one word per line, case-insensitive. Only alphabetic
// words of at least three letters are kept; everything is normalized to
// lowercase.
//
// Environment variables:
//   WORDS_FILE=/path/to/words.txt
//
// Initialization is run once (sync.Once).

package words

import (
	"bufio"
	"errors"
	"os"
	"strings"
	"sync"

	"github.com/Jacoba1100254352/Boggle/assets"
)

const minWordLen = 3

var (
	initOnce   sync.Once
	wordSet    map[string]struct{}
	initialErr error
)

// Init loads the word list exactly once.
// Returns an error if the list ends up empty.
func Init() error {
	initOnce.Do(func() {
		var list []string

		if path := os.Getenv("WORDS_FILE"); path != "" {
			var err error
			list, err = readWordFile(path)
			if err != nil {
				initialErr = err
				return
			}
		} else {
			embedded, err := assets.DefaultWordList()
			if err != nil {
				initialErr = err
				return
			}
			list = keepValid(embedded)
		}

		wordSet = toSet(list)
		if len(wordSet) == 0 {
			initialErr = errors.New("words: word list is empty")
		}
	})
	return initialErr
}

// readWordFile loads one word per line from a file, lowercases, trims, and
// keeps only valid alphabetic words of playable length.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.TrimSpace(strings.ToLower(sc.Text()))
		if len(w) >= minWordLen && isAlpha(w) {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

// keepValid filters an already-lowercased list down to playable words.
func keepValid(list []string) []string {
	out := list[:0]
	for _, w := range list {
		if len(w) >= minWordLen && isAlpha(w) {
			out = append(out, w)
		}
	}
	return out
}

// toSet converts a list of strings into a lookup set.
func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// Contains reports whether w is in the dictionary.
func Contains(w string) bool {
	_, ok := wordSet[strings.ToLower(w)]
	return ok
}

// Count returns the number of loaded words.
func Count() int { return len(wordSet) }
