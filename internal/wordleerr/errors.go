// Package wordleerr defines the sentinel error kinds shared across the
// solver. Callers compare with errors.Is; details are attached with
// fmt.Errorf's %w verb.
package wordleerr

import "errors"

var (
	// ErrBadWord is returned when a word fails the length or alphabet
	// check at load time or at guess time.
	ErrBadWord = errors.New("BAD_WORD")

	// ErrGameOver is returned when a guess is attempted on a terminal game.
	ErrGameOver = errors.New("GAME_OVER")

	// ErrEmptyPosterior is returned when filtering a Posterior removes
	// every survivor, indicating an inconsistent feedback sequence.
	ErrEmptyPosterior = errors.New("EMPTY_POSTERIOR")

	// ErrUnknownGuess is returned when a guess word is not in the
	// allowed-guesses column space of the Outcome Matrix.
	ErrUnknownGuess = errors.New("UNKNOWN_GUESS")

	// ErrCorruptMatrix is returned when a persisted matrix fails its
	// header or size check on load.
	ErrCorruptMatrix = errors.New("CORRUPT_MATRIX")
)
