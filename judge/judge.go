// Package judge implements the trivial game-state machine that counts
// guesses and detects the terminal state, as specified in spec §4.7. It
// is an external collaborator to the decision engine: it owns the target
// word and scores guesses via the evaluator, but never ranks or chooses
// them.
package judge

import (
	"fmt"

	"github.com/ashgrove-labs/wordle-solver/evaluator"
	"github.com/ashgrove-labs/wordle-solver/internal/wordleerr"
	"github.com/ashgrove-labs/wordle-solver/pattern"
	"github.com/ashgrove-labs/wordle-solver/word"
)

// MaxGuesses is the fixed number of guesses allowed per game.
const MaxGuesses = 6

// Outcome is a single recorded guess with the feedback it produced.
// Carried over from original_source's GuessOutcome so the interactive
// player can render per-turn feedback (spec §7).
type Outcome struct {
	Guess   word.Word
	Pattern pattern.Pattern
	Code    pattern.Code
}

// Game is the judge-owned state for one playthrough: the target, the
// guesses made so far, and the terminal flags.
type Game struct {
	target      word.Word
	guessesMade int
	history     []Outcome
	over        bool
	solved      bool
}

// New creates a Game for the given target word.
func New(target word.Word) *Game {
	return &Game{target: target}
}

// Target returns the game's target word.
func (g *Game) Target() word.Word { return g.target }

// IsOver reports whether the game has reached a terminal state.
func (g *Game) IsOver() bool { return g.over }

// Solved reports whether the game ended because the target was guessed.
func (g *Game) Solved() bool { return g.solved }

// GuessesMade returns the number of guesses recorded so far.
func (g *Game) GuessesMade() int { return g.guessesMade }

// History returns every recorded guess outcome, in order.
func (g *Game) History() []Outcome { return g.history }

// RecordGuess scores guess against the target, appends it to history, and
// updates the terminal flags. It fails with ErrGameOver if called after
// the game has already ended.
func (g *Game) RecordGuess(guess word.Word) (Outcome, error) {
	if g.over {
		return Outcome{}, fmt.Errorf("%w: game already over after %d guesses",
			wordleerr.ErrGameOver, g.guessesMade)
	}

	p := evaluator.Score(g.target, guess)
	code := pattern.Encode(p)
	outcome := Outcome{Guess: guess, Pattern: p, Code: code}

	g.history = append(g.history, outcome)
	g.guessesMade++

	if code == pattern.TerminalCode {
		g.over = true
		g.solved = true
	} else if g.guessesMade == MaxGuesses {
		g.over = true
	}

	return outcome, nil
}

// Score is the evaluation harness's per-game score (spec §4.7):
// max_guesses - guesses_made + 1 if solved, else 0 for an unsolved game.
func (g *Game) Score() int {
	if !g.solved {
		return 0
	}
	return MaxGuesses - g.guessesMade + 1
}
