package evaluator

import (
	"testing"

	"github.com/ashgrove-labs/wordle-solver/pattern"
	"github.com/ashgrove-labs/wordle-solver/word"
)

func score(t *testing.T, target, guess string) string {
	t.Helper()
	return Score(word.MustNew(target), word.MustNew(guess)).String()
}

func TestSpecScenarios(t *testing.T) {
	tests := []struct {
		target, guess, want string
	}{
		{"crate", "fusil", "_____"},
		{"crate", "trace", "OCCOC"},
		{"crate", "treat", "OCOO_"},
		{"crate", "treta", "_COCO"},
	}
	for _, tt := range tests {
		if got := score(t, tt.target, tt.guess); got != tt.want {
			t.Errorf("Score(%s, %s) = %s, want %s", tt.target, tt.guess, got, tt.want)
		}
	}
}

func TestSelfSolve(t *testing.T) {
	words := []string{"crate", "slate", "mount", "fizzy", "xylyl"}
	for _, w := range words {
		got := Score(word.MustNew(w), word.MustNew(w))
		if pattern.Encode(got) != pattern.TerminalCode {
			t.Errorf("Score(%s, %s) = %v, want all-correct", w, w, got)
		}
	}
}

func TestDuplicateLetterBudget(t *testing.T) {
	// guess has three P's, target only has two -> at most two non-Absent P markings.
	target := word.MustNew("apple")
	guess := word.MustNew("puppy")
	p := Score(target, guess)

	nonAbsentP := 0
	for i, c := range guess {
		if c == 'P' && p[i] != pattern.Absent {
			nonAbsentP++
		}
	}
	targetPCount := 0
	for _, c := range target {
		if c == 'P' {
			targetPCount++
		}
	}
	if nonAbsentP > targetPCount {
		t.Errorf("got %d non-absent P markings, target only has %d P's", nonAbsentP, targetPCount)
	}
}

func TestCorrectPositionsMatchTarget(t *testing.T) {
	target := word.MustNew("robot")
	guess := word.MustNew("round")
	p := Score(target, guess)
	for i := 0; i < word.L; i++ {
		if p[i] == pattern.Correct && guess[i] != target[i] {
			t.Errorf("position %d marked Correct but guess[%d]=%c != target[%d]=%c",
				i, i, guess[i], i, target[i])
		}
	}
}

func TestIdenticalWordsAllCorrect(t *testing.T) {
	w := word.MustNew("crate")
	p := Score(w, w)
	for i, s := range p {
		if s != pattern.Correct {
			t.Errorf("position %d = %v, want Correct", i, s)
		}
	}
}

func TestAdditionalDuplicateCases(t *testing.T) {
	if got := score(t, "ROUND", "ROBOT"); got != "CC___" {
		t.Errorf("ROUND/ROBOT = %s, want CC___", got)
	}
}
