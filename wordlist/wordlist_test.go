package wordlist

import (
	"strings"
	"testing"

	"github.com/ashgrove-labs/wordle-solver/word"
)

func TestLoadValid(t *testing.T) {
	r := strings.NewReader("crate\nSLATE\n  mount  \n\n# comment\nvouch\n")
	l, err := Load(r)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if l.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", l.Len())
	}
	for _, w := range []string{"crate", "slate", "mount", "vouch"} {
		if !l.Contains(word.MustNew(w)) {
			t.Errorf("Contains(%s) = false, want true", w)
		}
	}
}

func TestLoadRejectsBadWord(t *testing.T) {
	r := strings.NewReader("crate\nabc\n")
	if _, err := Load(r); err == nil {
		t.Error("expected error for short word")
	}
}

func TestLoadRejectsEmpty(t *testing.T) {
	r := strings.NewReader("\n\n")
	if _, err := Load(r); err == nil {
		t.Error("expected error for empty wordlist")
	}
}

func TestLoadDeduplicates(t *testing.T) {
	r := strings.NewReader("crate\ncrate\nCRATE\n")
	l, err := Load(r)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if l.Len() != 1 {
		t.Errorf("Len() = %d, want 1", l.Len())
	}
}

func TestDefaultVocabulariesLoad(t *testing.T) {
	answers, err := DefaultAnswers()
	if err != nil {
		t.Fatalf("DefaultAnswers: %v", err)
	}
	if answers.Len() == 0 {
		t.Fatal("DefaultAnswers() is empty")
	}

	guesses, err := DefaultGuesses()
	if err != nil {
		t.Fatalf("DefaultGuesses: %v", err)
	}
	if guesses.Len() < answers.Len() {
		t.Errorf("DefaultGuesses().Len() = %d, smaller than DefaultAnswers().Len() = %d", guesses.Len(), answers.Len())
	}

	for _, w := range answers.Words() {
		if !guesses.Contains(w) {
			t.Errorf("default guesses missing answer word %s", w)
			break
		}
	}
}
