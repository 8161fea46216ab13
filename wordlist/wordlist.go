// Package wordlist loads and validates the solution and guess vocabularies
// a Matrix is built from (spec §3, §9). It generalizes the teacher's
// data.WordlistMaps singleton: the same O(1) membership lookups, built from
// either an embedded default pair or a caller-supplied word file.
package wordlist

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/ashgrove-labs/wordle-solver/internal/wordleerr"
	"github.com/ashgrove-labs/wordle-solver/word"
)

//go:embed wordlists/answers.txt wordlists/guesses_extra.txt
var embedded embed.FS

// List is a loaded vocabulary: the ordered words plus an O(1) membership
// index, mirroring the teacher's WordlistMaps (answersMap/guessesMap +
// RWMutex) generalized to a single reusable type for either role.
type List struct {
	words []word.Word
	mu    sync.RWMutex
	index map[word.Word]struct{}
}

func newList(words []word.Word) *List {
	idx := make(map[word.Word]struct{}, len(words))
	ordered := make([]word.Word, 0, len(words))
	for _, w := range words {
		if _, dup := idx[w]; dup {
			continue
		}
		idx[w] = struct{}{}
		ordered = append(ordered, w)
	}
	return &List{words: ordered, index: idx}
}

// Words returns the vocabulary in load order. The returned slice must not
// be mutated.
func (l *List) Words() []word.Word { return l.words }

// Len returns the number of distinct words in the vocabulary.
func (l *List) Len() int { return len(l.words) }

// Contains reports whether w is a member of the vocabulary.
func (l *List) Contains(w word.Word) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.index[w]
	return ok
}

// Load reads one word per line from r, trimming whitespace and skipping
// blank lines, and fails with ErrBadWord on the first malformed entry. This
// is the strict path for caller-supplied vocabularies (spec §3: "solution
// list" / "guess list" inputs to Build).
func Load(r io.Reader) (*List, error) {
	var words []word.Word
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		w, err := word.New(text)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %q: %v", wordleerr.ErrBadWord, line, text, err)
		}
		words = append(words, w)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading wordlist: %w", err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("%w: wordlist is empty", wordleerr.ErrBadWord)
	}
	return newList(words), nil
}

// LoadFile opens path and loads it via Load.
func LoadFile(path string) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening wordlist %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

var (
	defaultOnce    sync.Once
	defaultAnswers *List
	defaultGuesses *List
	defaultLoadErr error
)

// loadLenient builds a List from an embedded file, silently dropping any
// malformed line instead of failing: the embedded defaults are a
// convenience starter vocabulary, not a validated user input.
func loadLenient(name string) ([]word.Word, error) {
	f, err := embedded.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var words []word.Word
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		w, err := word.New(text)
		if err != nil {
			continue
		}
		words = append(words, w)
	}
	return words, scanner.Err()
}

func loadDefaults() {
	answers, err := loadLenient("wordlists/answers.txt")
	if err != nil {
		defaultLoadErr = fmt.Errorf("loading embedded answers: %w", err)
		return
	}
	extra, err := loadLenient("wordlists/guesses_extra.txt")
	if err != nil {
		defaultLoadErr = fmt.Errorf("loading embedded guesses: %w", err)
		return
	}

	defaultAnswers = newList(answers)
	defaultGuesses = newList(append(append([]word.Word(nil), answers...), extra...))
}

// DefaultAnswers returns the embedded default solution vocabulary.
func DefaultAnswers() (*List, error) {
	defaultOnce.Do(loadDefaults)
	return defaultAnswers, defaultLoadErr
}

// DefaultGuesses returns the embedded default guess vocabulary: the default
// answers plus a wider set of valid-but-unlikely guesses, mirroring Wordle's
// own answers/guesses split (spec §3, §9).
func DefaultGuesses() (*List, error) {
	defaultOnce.Do(loadDefaults)
	return defaultGuesses, defaultLoadErr
}
