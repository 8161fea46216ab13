// Package evaluator implements the deterministic feedback function that
// scores a guess against a target word.
package evaluator

import (
	"github.com/ashgrove-labs/wordle-solver/pattern"
	"github.com/ashgrove-labs/wordle-solver/word"
)

// Score computes the feedback pattern for guess against target using the
// standard two-pass Wordle rule: correct letters are marked first and
// consume their target position, then remaining guess letters are matched
// against remaining unconsumed target positions left to right.
func Score(target, guess word.Word) pattern.Pattern {
	var p pattern.Pattern
	var consumed [word.L]bool

	for i := 0; i < word.L; i++ {
		if guess[i] == target[i] {
			p[i] = pattern.Correct
			consumed[i] = true
		}
	}

	for i := 0; i < word.L; i++ {
		if p[i] == pattern.Correct {
			continue
		}
		matched := false
		for j := 0; j < word.L; j++ {
			if !consumed[j] && target[j] == guess[i] {
				consumed[j] = true
				matched = true
				break
			}
		}
		if matched {
			p[i] = pattern.Misplaced
		} else {
			p[i] = pattern.Absent
		}
	}

	return p
}
