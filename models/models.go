// Package models defines the wire types for the suggestion HTTP service:
// request/response JSON shapes built on word.Word and pattern.Pattern
// instead of the ad hoc rune/color types a from-scratch API would reach for.
package models

import (
	"encoding/json"

	"github.com/ashgrove-labs/wordle-solver/pattern"
	"github.com/ashgrove-labs/wordle-solver/word"
)

// GuessEntry represents a single guess with its observed feedback.
type GuessEntry struct {
	Guess   word.Word       `json:"-"`
	Pattern pattern.Pattern `json:"-"`
}

// guessEntryWire is the JSON shape of a GuessEntry: the guess as a string
// and the feedback as its compact C/O/_ rendering (spec §4.2 pattern
// notation).
type guessEntryWire struct {
	Word     string `json:"word"`
	Feedback string `json:"feedback"`
}

// MarshalJSON implements custom JSON marshaling for GuessEntry.
func (ge GuessEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal(guessEntryWire{
		Word:     ge.Guess.String(),
		Feedback: ge.Pattern.String(),
	})
}

// UnmarshalJSON implements custom JSON unmarshaling for GuessEntry.
func (ge *GuessEntry) UnmarshalJSON(data []byte) error {
	var wire guessEntryWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	w, err := word.New(wire.Word)
	if err != nil {
		return err
	}
	p, err := pattern.Parse(wire.Feedback)
	if err != nil {
		return err
	}
	ge.Guess = w
	ge.Pattern = p
	return nil
}

// GameState is the canonical state of one game in progress: the full
// history of guess/feedback pairs, from which a Posterior can be rebuilt by
// replaying Filter (spec §4.1, §4.4).
type GameState struct {
	History []GuessEntry `json:"history"`
}

// SuggestRequest is the incoming request to the suggest endpoint.
// MaxDepth is the deepest ranking streamed: 1 streams only the Greedy
// ranking, 2 streams the Greedy ranking and then the Two-Step ranking
// (spec §4.5, §4.6).
type SuggestRequest struct {
	GameState GameState `json:"gameState"`
	MaxDepth  int       `json:"maxDepth"`
}

// CloseRequest asks the service to cancel an ongoing suggestion stream.
type CloseRequest struct {
	StreamID string `json:"streamId"`
}

// SuggestionItem is a single ranked guess with its score.
type SuggestionItem struct {
	Word  string  `json:"word"`
	Score float64 `json:"score"`
}

// SuggestionsEvent carries the top-ranked suggestions at the current depth
// of a streaming suggestion computation (spec §7).
type SuggestionsEvent struct {
	StreamID         string           `json:"streamId"`
	Suggestions      []SuggestionItem `json:"suggestions"`
	TopSuggestion    *SuggestionItem  `json:"topSuggestion"`
	Depth            int              `json:"depth"`
	RemainingAnswers int              `json:"remainingAnswers"`
}
