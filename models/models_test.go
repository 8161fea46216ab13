package models

import (
	"encoding/json"
	"testing"

	"github.com/ashgrove-labs/wordle-solver/pattern"
	"github.com/ashgrove-labs/wordle-solver/word"
)

func TestGuessEntryJSONRoundTrip(t *testing.T) {
	ge := GuessEntry{
		Guess:   word.MustNew("crate"),
		Pattern: pattern.Pattern{pattern.Correct, pattern.Misplaced, pattern.Absent, pattern.Absent, pattern.Correct},
	}

	data, err := json.Marshal(ge)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var got GuessEntry
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.Guess != ge.Guess || got.Pattern != ge.Pattern {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, ge)
	}
}

func TestGuessEntryUnmarshalRejectsBadFeedback(t *testing.T) {
	data := []byte(`{"word":"crate","feedback":"XXXXX"}`)
	var ge GuessEntry
	if err := json.Unmarshal(data, &ge); err == nil {
		t.Error("expected error for invalid feedback symbol")
	}
}

func TestSuggestRequestMarshaling(t *testing.T) {
	req := SuggestRequest{
		GameState: GameState{
			History: []GuessEntry{
				{
					Guess:   word.MustNew("crate"),
					Pattern: pattern.Pattern{pattern.Absent, pattern.Absent, pattern.Absent, pattern.Absent, pattern.Absent},
				},
			},
		},
		MaxDepth: 2,
	}

	data, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var got SuggestRequest
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if got.MaxDepth != 2 {
		t.Errorf("MaxDepth = %d, want 2", got.MaxDepth)
	}
	if len(got.GameState.History) != 1 {
		t.Fatalf("History length = %d, want 1", len(got.GameState.History))
	}
	if got.GameState.History[0].Guess != req.GameState.History[0].Guess {
		t.Errorf("history guess mismatch: got %s, want %s",
			got.GameState.History[0].Guess, req.GameState.History[0].Guess)
	}
}

func TestSuggestionsEventMarshaling(t *testing.T) {
	top := SuggestionItem{Word: "crate", Score: 5.9}
	ev := SuggestionsEvent{
		StreamID:         "stream-1",
		Suggestions:      []SuggestionItem{top},
		TopSuggestion:    &top,
		Depth:            1,
		RemainingAnswers: 42,
	}

	data, err := json.Marshal(ev)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var got SuggestionsEvent
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.StreamID != ev.StreamID || got.Depth != ev.Depth || got.RemainingAnswers != ev.RemainingAnswers {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, ev)
	}
	if got.TopSuggestion == nil || got.TopSuggestion.Word != "crate" {
		t.Errorf("TopSuggestion mismatch: %+v", got.TopSuggestion)
	}
}
