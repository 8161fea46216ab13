// Package players implements the Greedy and Two-Step guess-ranking
// strategies built on top of a Posterior (spec §4.5, §4.6), ported from
// original_source's player/greedy.py and player/two_step.py and
// generalized to this module's Matrix-backed Posterior.
package players

import (
	"github.com/ashgrove-labs/wordle-solver/pattern"
	"github.com/ashgrove-labs/wordle-solver/posterior"
	"github.com/ashgrove-labs/wordle-solver/word"
)

// DefaultEntropyCacheSize is the recommended memoization cache size for a
// single player instance (spec §9: "a few hundred to a few thousand").
const DefaultEntropyCacheSize = 1024

// Greedy picks the guess with maximum one-step expected information gain,
// per spec §4.5.
type Greedy struct {
	starting *posterior.Posterior
	current  *posterior.Posterior
	cache    *posterior.EntropyCache
}

// NewGreedy creates a Greedy player starting from the given Posterior.
func NewGreedy(starting *posterior.Posterior) (*Greedy, error) {
	cache, err := posterior.NewEntropyCache(DefaultEntropyCacheSize)
	if err != nil {
		return nil, err
	}
	return &Greedy{starting: starting, current: starting, cache: cache}, nil
}

// StartNewGame resets the player to its starting Posterior.
func (g *Greedy) StartNewGame() { g.current = g.starting }

// Current returns the player's current Posterior.
func (g *Greedy) Current() *posterior.Posterior { return g.current }

// NextGuess returns the highest-ranked guess: if at most two survivors
// remain, the first survivor in insertion order; otherwise the top-ranked
// guess from AllCandidateEntropies.
func (g *Greedy) NextGuess() word.Word {
	if g.current.Len() <= 2 {
		return g.current.FirstSurvivor()
	}
	return g.cache.AllCandidateEntropies(g.current)[0].Guess
}

// Update filters the player's Posterior by the observed feedback.
func (g *Greedy) Update(code pattern.Code, guessWord word.Word) error {
	next, err := g.current.Filter(code, guessWord)
	if err != nil {
		return err
	}
	g.current = next
	return nil
}
