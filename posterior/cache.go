package posterior

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// EntropyCache memoizes AllCandidateEntropies by Posterior fingerprint,
// directly grounded in the teacher's CachedFilterCandidateWords: an LRU
// cache guarding a recomputation that is pure in the key (spec §4.4, §4.6,
// §5, §9). A player owns its own cache instance, so concurrent evaluation
// workers never contend on one lock (spec §5).
type EntropyCache struct {
	cache *lru.Cache[string, []CandidateScore]
}

// NewEntropyCache creates a cache holding up to size Posteriors' worth of
// rankings. Spec §9 recommends a few hundred to a few thousand entries.
func NewEntropyCache(size int) (*EntropyCache, error) {
	c, err := lru.New[string, []CandidateScore](size)
	if err != nil {
		return nil, err
	}
	return &EntropyCache{cache: c}, nil
}

// AllCandidateEntropies returns p.AllCandidateEntropies(), computing and
// caching it on first use for p's fingerprint.
func (c *EntropyCache) AllCandidateEntropies(p *Posterior) []CandidateScore {
	if cached, ok := c.cache.Get(p.fp); ok {
		return cached
	}
	scores := p.AllCandidateEntropies()
	c.cache.Add(p.fp, scores)
	return scores
}
