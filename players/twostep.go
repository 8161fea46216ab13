package players

import (
	"sort"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/ashgrove-labs/wordle-solver/pattern"
	"github.com/ashgrove-labs/wordle-solver/posterior"
	"github.com/ashgrove-labs/wordle-solver/word"
)

// DefaultShortlistSize bounds how many step-1 candidates get a full
// step-2 look-ahead, trading optimality for speed (spec §4.6).
const DefaultShortlistSize = 40

// DefaultNextGuessCacheSize bounds the memoized next_guess results (spec
// §4.6, §9: LRU, a few hundred to a few thousand entries).
const DefaultNextGuessCacheSize = 512

// TwoStep picks the guess maximizing one-step entropy plus expected
// best-next-step entropy over a shortlist of step-1 candidates (spec
// §4.6), ported from original_source's player/two_step.py.
type TwoStep struct {
	starting *posterior.Posterior
	current  *posterior.Posterior

	opening *word.Word
	k       int

	entropyCache   *posterior.EntropyCache
	nextGuessCache *lru.Cache[string, word.Word]
}

// TwoStepOption configures NewTwoStep.
type TwoStepOption func(*twoStepConfig)

type twoStepConfig struct {
	opening            *word.Word
	shortlistSize      int
	entropyCacheSize   int
	nextGuessCacheSize int
}

// WithOpening precomputes the first guess of every game, skipping the
// most expensive decision (spec §4.6: "precomputed offline; amortizes the
// most expensive decision").
func WithOpening(w word.Word) TwoStepOption {
	return func(c *twoStepConfig) { c.opening = &w }
}

// WithShortlistSize overrides the number of step-1 candidates considered
// for step-2 look-ahead (K in spec §4.6).
func WithShortlistSize(k int) TwoStepOption {
	return func(c *twoStepConfig) { c.shortlistSize = k }
}

// NewTwoStep creates a TwoStep player starting from the given Posterior.
func NewTwoStep(starting *posterior.Posterior, opts ...TwoStepOption) (*TwoStep, error) {
	cfg := twoStepConfig{
		shortlistSize:      DefaultShortlistSize,
		entropyCacheSize:   DefaultEntropyCacheSize,
		nextGuessCacheSize: DefaultNextGuessCacheSize,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	entropyCache, err := posterior.NewEntropyCache(cfg.entropyCacheSize)
	if err != nil {
		return nil, err
	}
	nextGuessCache, err := lru.New[string, word.Word](cfg.nextGuessCacheSize)
	if err != nil {
		return nil, err
	}

	return &TwoStep{
		starting:       starting,
		current:        starting,
		opening:        cfg.opening,
		k:              cfg.shortlistSize,
		entropyCache:   entropyCache,
		nextGuessCache: nextGuessCache,
	}, nil
}

// StartNewGame resets the player to its starting Posterior.
func (t *TwoStep) StartNewGame() { t.current = t.starting }

// Current returns the player's current Posterior.
func (t *TwoStep) Current() *posterior.Posterior { return t.current }

// NextGuess applies, in order: the fixed opener (if configured and this is
// the first guess of the game), the endgame rule for <=2 survivors, a
// memoized lookup, and finally the full two-step ranking.
func (t *TwoStep) NextGuess() word.Word {
	if t.opening != nil && t.current.Fingerprint() == t.starting.Fingerprint() {
		return *t.opening
	}
	if t.current.Len() <= 2 {
		return t.current.FirstSurvivor()
	}
	if cached, ok := t.nextGuessCache.Get(t.current.Fingerprint()); ok {
		return cached
	}

	guess := t.bestTwoStepGuess()
	t.nextGuessCache.Add(t.current.Fingerprint(), guess)
	return guess
}

// Update filters the player's Posterior by the observed feedback.
func (t *TwoStep) Update(code pattern.Code, guessWord word.Word) error {
	next, err := t.current.Filter(code, guessWord)
	if err != nil {
		return err
	}
	t.current = next
	return nil
}

// TwoStepScore ranks a guess by its combined one-step and expected
// two-step entropy (spec §4.6).
type TwoStepScore struct {
	Guess word.Word
	E1    float64
	E2    float64
	Total float64
}

func (t *TwoStep) bestTwoStepGuess() word.Word {
	ranked := t.RankCandidates(t.current, t.k)
	return ranked[0].Guess
}

// RankCandidates scores the top-k one-step candidates of p (by E1) with a
// full two-step look-ahead, returning them sorted descending by combined
// score with ties broken by E1 then lexicographically (spec §4.6). k<=0
// ranks every guess column. Exposed for callers, such as the suggestion
// service, that need the ranked list rather than just the top pick.
func (t *TwoStep) RankCandidates(p *posterior.Posterior, k int) []TwoStepScore {
	ranked := t.entropyCache.AllCandidateEntropies(p)

	if k <= 0 || k > len(ranked) {
		k = len(ranked)
	}
	shortlist := ranked[:k]

	scores := make([]TwoStepScore, len(shortlist))
	for i, cand := range shortlist {
		e2 := t.expectedStepTwoEntropyFor(p, cand.GuessIndex, cand.Guess)
		scores[i] = TwoStepScore{Guess: cand.Guess, E1: cand.Score, E2: e2, Total: cand.Score + e2}
	}

	sort.Slice(scores, func(i, j int) bool {
		if scores[i].Total != scores[j].Total {
			return scores[i].Total > scores[j].Total
		}
		if scores[i].E1 != scores[j].E1 {
			return scores[i].E1 > scores[j].E1
		}
		return scores[i].Guess.Less(scores[j].Guess)
	})

	return scores
}

// expectedStepTwoEntropy computes E2(g) against the player's current
// Posterior; a thin convenience wrapper over expectedStepTwoEntropyFor.
func (t *TwoStep) expectedStepTwoEntropy(guessIndex int, guessWord word.Word) float64 {
	return t.expectedStepTwoEntropyFor(t.current, guessIndex, guessWord)
}

// expectedStepTwoEntropyFor computes E2(g) relative to p: the
// probability-weighted best next-step candidate_entropy over every outcome
// g could produce against p's survivors. Branches that would leave a single
// survivor contribute 0 without being computed, since a solved game needs
// no more information (spec §4.6 edge case) - and this also falls out for
// free from CandidateEntropy, which is always 0 over a single-survivor
// Posterior.
func (t *TwoStep) expectedStepTwoEntropyFor(p *posterior.Posterior, guessIndex int, guessWord word.Word) float64 {
	groups := p.GroupWeights(guessIndex)
	total := p.Total()

	var e2 float64
	for code, weight := range groups {
		prob := weight / total

		next, err := p.Filter(code, guessWord)
		if err != nil {
			// a code with positive group weight always yields at least
			// one survivor by construction; this should be unreachable.
			continue
		}
		if next.Len() <= 1 {
			continue
		}

		best := t.entropyCache.AllCandidateEntropies(next)[0].Score
		e2 += prob * best
	}
	return e2
}
