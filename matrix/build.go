package matrix

import (
	"runtime"
	"sync"

	"github.com/ashgrove-labs/wordle-solver/evaluator"
	"github.com/ashgrove-labs/wordle-solver/pattern"
	"github.com/ashgrove-labs/wordle-solver/word"
)

// Build computes the Outcome Matrix for the given solutions (rows) and
// guesses (columns). Rows are independent, so the solution index space is
// partitioned into contiguous ranges across a pool of workers, each of
// which writes only into its own disjoint slice of the output array -
// there is no shared mutable state beyond that write-once array.
//
// workers <= 0 defaults to runtime.NumCPU().
func Build(solutions, guesses []word.Word, workers int) (*Matrix, error) {
	solIndex, err := buildIndex(solutions)
	if err != nil {
		return nil, err
	}
	guessIndex, err := buildIndex(guesses)
	if err != nil {
		return nil, err
	}

	m := &Matrix{
		solutions:  append([]word.Word(nil), solutions...),
		guesses:    append([]word.Word(nil), guesses...),
		solIndex:   solIndex,
		guessIndex: guessIndex,
		data:       make([]pattern.Code, len(solutions)*len(guesses)),
	}

	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(solutions) {
		workers = len(solutions)
	}
	if workers < 1 {
		workers = 1
	}

	rowsPerWorker := (len(solutions) + workers - 1) / workers

	var wg sync.WaitGroup
	for worker := 0; worker < workers; worker++ {
		start := worker * rowsPerWorker
		stop := start + rowsPerWorker
		if stop > len(solutions) {
			stop = len(solutions)
		}
		if start >= stop {
			continue
		}

		wg.Add(1)
		go func(start, stop int) {
			defer wg.Done()
			m.buildRows(start, stop)
		}(start, stop)
	}
	wg.Wait()

	return m, nil
}

// buildRows fills data for solution rows [start, stop), iterating guesses
// on the inside so that scoring is localized to one target per outer step.
func (m *Matrix) buildRows(start, stop int) {
	a := m.A()
	for s := start; s < stop; s++ {
		target := m.solutions[s]
		base := s * a
		for g, guess := range m.guesses {
			p := evaluator.Score(target, guess)
			m.data[base+g] = pattern.Encode(p)
		}
	}
}
