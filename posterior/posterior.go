// Package posterior maintains the current belief state over possible
// Wordle solutions: the surviving candidates, their weights, and the
// entropy-based ranking of guesses against them.
package posterior

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/ashgrove-labs/wordle-solver/internal/wordleerr"
	"github.com/ashgrove-labs/wordle-solver/matrix"
	"github.com/ashgrove-labs/wordle-solver/pattern"
	"github.com/ashgrove-labs/wordle-solver/word"
)

// Posterior is the belief state: a non-empty, insertion-ordered set of
// survivor indices into a shared Matrix's solution list, each with a
// positive weight, plus the borrowed Matrix itself.
type Posterior struct {
	m         *matrix.Matrix
	survivors []int
	weights   []float64
	total     float64
	fp        string
}

// NewInitial builds the starting Posterior over every solution row of m.
// weights is optional; nil means uniform weight 1 for every solution.
func NewInitial(m *matrix.Matrix, weights map[word.Word]float64) (*Posterior, error) {
	survivors := make([]int, m.S())
	w := make([]float64, m.S())
	for i := range survivors {
		survivors[i] = i
		if weights == nil {
			w[i] = 1
		} else {
			ww, ok := weights[m.SolutionWord(i)]
			if !ok {
				ww = 1
			}
			w[i] = ww
		}
	}
	return newPosterior(m, survivors, w)
}

func newPosterior(m *matrix.Matrix, survivors []int, weights []float64) (*Posterior, error) {
	if len(survivors) == 0 {
		return nil, fmt.Errorf("%w: no surviving solutions", wordleerr.ErrEmptyPosterior)
	}
	var total float64
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return nil, fmt.Errorf("%w: non-positive total weight", wordleerr.ErrEmptyPosterior)
	}
	return &Posterior{
		m:         m,
		survivors: survivors,
		weights:   weights,
		total:     total,
		fp:        fingerprint(survivors),
	}, nil
}

// fingerprint hashes the sorted survivor index list, giving a stable
// identity for a Posterior regardless of the construction path that
// produced it (spec §5/§9).
func fingerprint(survivors []int) string {
	sorted := append([]int(nil), survivors...)
	sort.Ints(sorted)

	var sb strings.Builder
	for _, s := range sorted {
		sb.WriteString(strconv.Itoa(s))
		sb.WriteByte(',')
	}
	sum := md5.Sum([]byte(sb.String()))
	return hex.EncodeToString(sum[:])
}

// Fingerprint returns the Posterior's cache identity (see EntropyCache).
func (p *Posterior) Fingerprint() string { return p.fp }

// Len returns the number of surviving candidate solutions.
func (p *Posterior) Len() int { return len(p.survivors) }

// Survivors returns the survivor indices into the Matrix's solution list,
// in insertion order. The returned slice must not be mutated.
func (p *Posterior) Survivors() []int { return p.survivors }

// Words returns the survivor words, in the same insertion order as
// Survivors.
func (p *Posterior) Words() []word.Word {
	out := make([]word.Word, len(p.survivors))
	for i, s := range p.survivors {
		out[i] = p.m.SolutionWord(s)
	}
	return out
}

// FirstSurvivor returns the first survivor in insertion order - the
// endgame pick used by both players when len(survivors) <= 2 (spec §4.5,
// §9 "Ambiguity in the source - endgame pick").
func (p *Posterior) FirstSurvivor() word.Word {
	return p.m.SolutionWord(p.survivors[0])
}

// Entropy returns the Shannon entropy, in bits, of the normalized survivor
// weight distribution.
func (p *Posterior) Entropy() float64 {
	return entropyOf(p.weights, p.total)
}

func entropyOf(weights []float64, total float64) float64 {
	var h float64
	for _, w := range weights {
		if w <= 0 {
			continue
		}
		prob := w / total
		h -= prob * math.Log2(prob)
	}
	return h
}

// Total returns the sum of survivor weights.
func (p *Posterior) Total() float64 { return p.total }

// GroupWeights partitions the current survivors by the pattern code that
// guess column g would produce against each, returning the summed weight
// per code. This is the W_c quantity from spec §4.4.
func (p *Posterior) GroupWeights(g int) map[pattern.Code]float64 {
	groupWeight := make(map[pattern.Code]float64)
	p.m.ForEachRestricted(g, p.survivors, func(pos, code int) {
		groupWeight[pattern.Code(code)] += p.weights[pos]
	})
	return groupWeight
}

// CandidateEntropy returns the entropy of the outcome distribution that
// guess column g induces over the current survivors: the ranking score
// from spec §4.4, equal to the expected information gain under uniform
// within-group weights.
func (p *Posterior) CandidateEntropy(g int) float64 {
	groupWeight := p.GroupWeights(g)
	weights := make([]float64, 0, len(groupWeight))
	for _, w := range groupWeight {
		weights = append(weights, w)
	}
	return entropyOf(weights, p.total)
}

// CandidateScore pairs a guess word with its ranking score.
type CandidateScore struct {
	Guess      word.Word
	GuessIndex int
	Score      float64
}

// AllCandidateEntropies computes CandidateEntropy for every guess column,
// sorted descending by score with ties broken lexicographically by guess
// word (spec §4.4). Uncached; callers that repeat this per Posterior
// should go through an EntropyCache instead.
func (p *Posterior) AllCandidateEntropies() []CandidateScore {
	guesses := p.m.Guesses()
	out := make([]CandidateScore, len(guesses))
	for g, w := range guesses {
		out[g] = CandidateScore{Guess: w, GuessIndex: g, Score: p.CandidateEntropy(g)}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Guess.Less(out[j].Guess)
	})
	return out
}

// Filter returns a new Posterior containing only the survivors for which
// guess g would have produced code, per spec §4.4. It fails with
// ErrEmptyPosterior if no survivor matches, and ErrUnknownGuess if
// guessWord is not a column of the underlying Matrix.
func (p *Posterior) Filter(code pattern.Code, guessWord word.Word) (*Posterior, error) {
	g, ok := p.m.GuessIndex(guessWord)
	if !ok {
		return nil, fmt.Errorf("%w: %s", wordleerr.ErrUnknownGuess, guessWord)
	}

	var newSurvivors []int
	var newWeights []float64
	p.m.ForEachRestricted(g, p.survivors, func(pos, c int) {
		if pattern.Code(c) == code {
			newSurvivors = append(newSurvivors, p.survivors[pos])
			newWeights = append(newWeights, p.weights[pos])
		}
	})

	return newPosterior(p.m, newSurvivors, newWeights)
}
