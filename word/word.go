// Package word provides the fixed-length, case-normalized word type shared
// by the evaluator, the outcome matrix, and the players.
package word

import (
	"fmt"

	"github.com/ashgrove-labs/wordle-solver/internal/wordleerr"
)

// L is the fixed word length the whole solver is specified against.
const L = 5

// Word is an immutable length-L word over the 26-letter alphabet,
// canonicalized to uppercase ASCII.
type Word [L]byte

// New validates and canonicalizes s into a Word. It rejects strings whose
// length differs from L or that contain a byte outside 'A'-'Z'/'a'-'z'.
func New(s string) (Word, error) {
	var w Word
	if len(s) != L {
		return w, fmt.Errorf("%w: word %q must be %d letters, got %d",
			wordleerr.ErrBadWord, s, L, len(s))
	}
	for i := 0; i < L; i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
			w[i] = c - 'a' + 'A'
		case c >= 'A' && c <= 'Z':
			w[i] = c
		default:
			return Word{}, fmt.Errorf("%w: word %q contains non-letter %q",
				wordleerr.ErrBadWord, s, c)
		}
	}
	return w, nil
}

// MustNew is like New but panics on an invalid word. Intended for literal
// words known to be valid at compile time (tests, embedded defaults).
func MustNew(s string) Word {
	w, err := New(s)
	if err != nil {
		panic(err)
	}
	return w
}

// String renders the word as an uppercase string.
func (w Word) String() string {
	return string(w[:])
}

// Less reports whether w sorts lexicographically before o, used to break
// ties on guess ranking.
func (w Word) Less(o Word) bool {
	return w.String() < o.String()
}
