// Package bank fronts the question bank with a small read-through cache.
// Pack planning queries the bank several times per invocation (full pool,
// pair set, concept set) and the underlying rows change only on reseed, so
// per-subcategory pools are cached behind an LRU.
package bank

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/abhisek/catprep/internal/pack"
	"github.com/abhisek/catprep/internal/store"
)

const defaultCacheSize = 64

// Bank serves planner candidates and bank-derived label sets.
type Bank struct {
	repo  store.QuestionRepo
	pools *lru.Cache[string, []pack.QuestionCandidate]
}

// poolAllKey is the cache key for the full active pool. Subcategory names
// come from bank data and never collide with it.
const poolAllKey = "\x00all"

// New creates a Bank over the given repository.
func New(repo store.QuestionRepo) (*Bank, error) {
	pools, err := lru.New[string, []pack.QuestionCandidate](defaultCacheSize)
	if err != nil {
		return nil, fmt.Errorf("create pool cache: %w", err)
	}
	return &Bank{repo: repo, pools: pools}, nil
}

// Pool returns all active, non-excluded candidates in stable order.
func (b *Bank) Pool(ctx context.Context) ([]pack.QuestionCandidate, error) {
	if cached, ok := b.pools.Get(poolAllKey); ok {
		return cached, nil
	}
	pool, err := b.repo.ActiveCandidates(ctx)
	if err != nil {
		return nil, err
	}
	b.pools.Add(poolAllKey, pool)
	return pool, nil
}

// PoolBySubcategory returns active candidates for one subcategory.
func (b *Bank) PoolBySubcategory(ctx context.Context, subcategory string) ([]pack.QuestionCandidate, error) {
	if cached, ok := b.pools.Get(subcategory); ok {
		return cached, nil
	}
	pool, err := b.repo.CandidatesBySubcategory(ctx, subcategory)
	if err != nil {
		return nil, err
	}
	b.pools.Add(subcategory, pool)
	return pool, nil
}

// ValidPairs returns the set of (subcategory:type) pairs present in the
// active bank.
func (b *Bank) ValidPairs(ctx context.Context) (map[string]bool, error) {
	return b.repo.ValidPairs(ctx)
}

// KnownConcepts returns the set of concept labels present in the active
// bank.
func (b *Bank) KnownConcepts(ctx context.Context) (map[string]bool, error) {
	return b.repo.KnownConcepts(ctx)
}

// Invalidate drops all cached pools. Call after reseeding the bank.
func (b *Bank) Invalidate() {
	b.pools.Purge()
}
