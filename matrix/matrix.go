// Package matrix implements the dense Outcome Matrix mapping
// (solution, guess) pairs to packed feedback codes.
package matrix

import (
	"fmt"

	"github.com/ashgrove-labs/wordle-solver/internal/wordleerr"
	"github.com/ashgrove-labs/wordle-solver/pattern"
	"github.com/ashgrove-labs/wordle-solver/word"
)

// Matrix is a dense S-by-A table of pattern codes, where S is the number of
// solutions (rows) and A is the number of allowed guesses (columns). It is
// immutable once built and safe for concurrent read access.
type Matrix struct {
	solutions []word.Word
	guesses   []word.Word

	solIndex   map[word.Word]int
	guessIndex map[word.Word]int

	// data is row-major: data[s*A+g] == code(score(solutions[s], guesses[g])).
	data []pattern.Code
}

// S returns the number of solution rows.
func (m *Matrix) S() int { return len(m.solutions) }

// A returns the number of guess columns.
func (m *Matrix) A() int { return len(m.guesses) }

// Solutions returns the ordered solution word list backing the rows.
func (m *Matrix) Solutions() []word.Word { return m.solutions }

// Guesses returns the ordered guess word list backing the columns.
func (m *Matrix) Guesses() []word.Word { return m.guesses }

// SolutionIndex looks up the row index of a solution word.
func (m *Matrix) SolutionIndex(w word.Word) (int, bool) {
	i, ok := m.solIndex[w]
	return i, ok
}

// GuessIndex looks up the column index of a guess word.
func (m *Matrix) GuessIndex(w word.Word) (int, bool) {
	i, ok := m.guessIndex[w]
	return i, ok
}

// Get returns the pattern code for solution row s and guess column g.
func (m *Matrix) Get(s, g int) (pattern.Code, error) {
	if s < 0 || s >= m.S() || g < 0 || g >= m.A() {
		return 0, fmt.Errorf("matrix: index (%d, %d) out of bounds (%d, %d)", s, g, m.S(), m.A())
	}
	return m.data[s*m.A()+g], nil
}

// Column returns the full column of codes for guess index g, one entry per
// solution row, in row order.
func (m *Matrix) Column(g int) []pattern.Code {
	col := make([]pattern.Code, m.S())
	a := m.A()
	for s := 0; s < m.S(); s++ {
		col[s] = m.data[s*a+g]
	}
	return col
}

// ForEachRestricted calls fn once for every survivor index in survivors,
// passing the survivor's position within the survivors slice and the code
// produced by guess column g for that survivor's solution row. This is the
// row-restricted column view from spec §4.3, expressed as a callback to
// avoid allocating a fresh slice on every ranking call.
func (m *Matrix) ForEachRestricted(g int, survivors []int, fn func(survivorPos, code int)) {
	a := m.A()
	for pos, s := range survivors {
		fn(pos, int(m.data[s*a+g]))
	}
}

// GuessWord resolves a guess index back to its Word.
func (m *Matrix) GuessWord(g int) word.Word { return m.guesses[g] }

// SolutionWord resolves a solution index back to its Word.
func (m *Matrix) SolutionWord(s int) word.Word { return m.solutions[s] }

func buildIndex(words []word.Word) (map[word.Word]int, error) {
	idx := make(map[word.Word]int, len(words))
	for i, w := range words {
		if _, dup := idx[w]; dup {
			return nil, fmt.Errorf("%w: duplicate word %s in word list", wordleerr.ErrBadWord, w)
		}
		idx[w] = i
	}
	return idx, nil
}
