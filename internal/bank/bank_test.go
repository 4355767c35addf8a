package bank

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/catprep/internal/pack"
	"github.com/abhisek/catprep/internal/store"
	"github.com/abhisek/catprep/internal/studyplan"
)

// countingRepo is a stub QuestionRepo that counts query calls.
type countingRepo struct {
	pool        []pack.QuestionCandidate
	activeCalls int
	subCalls    int
}

func (r *countingRepo) Seed(context.Context, []store.QuestionRow) (int, error) { return 0, nil }

func (r *countingRepo) ActiveCandidates(context.Context) ([]pack.QuestionCandidate, error) {
	r.activeCalls++
	return r.pool, nil
}

func (r *countingRepo) CandidatesBySubcategory(_ context.Context, sub string) ([]pack.QuestionCandidate, error) {
	r.subCalls++
	var out []pack.QuestionCandidate
	for _, q := range r.pool {
		if q.Subcategory == sub {
			out = append(out, q)
		}
	}
	return out, nil
}

func (r *countingRepo) StudyQuestions(context.Context) ([]studyplan.BankQuestion, error) {
	return nil, nil
}

func (r *countingRepo) ValidPairs(context.Context) (map[string]bool, error) {
	pairs := make(map[string]bool)
	for _, q := range r.pool {
		pairs[q.Pair()] = true
	}
	return pairs, nil
}

func (r *countingRepo) KnownConcepts(context.Context) (map[string]bool, error) {
	concepts := make(map[string]bool)
	for _, q := range r.pool {
		for _, c := range q.CoreConcepts {
			concepts[c] = true
		}
	}
	return concepts, nil
}

func testRepo() *countingRepo {
	return &countingRepo{pool: []pack.QuestionCandidate{
		{QuestionID: "q1", Band: pack.BandEasy, Subcategory: "Arithmetic", TypeOfQuestion: "Percentages", CoreConcepts: []string{"percentage change"}},
		{QuestionID: "q2", Band: pack.BandMedium, Subcategory: "Algebra", TypeOfQuestion: "Quadratics", CoreConcepts: []string{"roots"}},
	}}
}

func TestPool_CachesAcrossCalls(t *testing.T) {
	repo := testRepo()
	b, err := New(repo)
	require.NoError(t, err)

	ctx := context.Background()
	first, err := b.Pool(ctx)
	require.NoError(t, err)
	second, err := b.Pool(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.activeCalls, "second call should hit the cache")
}

func TestPoolBySubcategory_CachedPerSubcategory(t *testing.T) {
	repo := testRepo()
	b, err := New(repo)
	require.NoError(t, err)

	ctx := context.Background()
	arith, err := b.PoolBySubcategory(ctx, "Arithmetic")
	require.NoError(t, err)
	require.Len(t, arith, 1)
	assert.Equal(t, "q1", arith[0].QuestionID)

	_, err = b.PoolBySubcategory(ctx, "Arithmetic")
	require.NoError(t, err)
	assert.Equal(t, 1, repo.subCalls)

	_, err = b.PoolBySubcategory(ctx, "Algebra")
	require.NoError(t, err)
	assert.Equal(t, 2, repo.subCalls, "a new subcategory misses the cache")
}

func TestInvalidate_DropsCachedPools(t *testing.T) {
	repo := testRepo()
	b, err := New(repo)
	require.NoError(t, err)

	ctx := context.Background()
	_, err = b.Pool(ctx)
	require.NoError(t, err)

	b.Invalidate()

	_, err = b.Pool(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.activeCalls, "invalidation should force a reload")
}

func TestPairAndConceptSetsPassThrough(t *testing.T) {
	b, err := New(testRepo())
	require.NoError(t, err)

	ctx := context.Background()
	pairs, err := b.ValidPairs(ctx)
	require.NoError(t, err)
	assert.True(t, pairs["Arithmetic:Percentages"])
	assert.True(t, pairs["Algebra:Quadratics"])

	concepts, err := b.KnownConcepts(ctx)
	require.NoError(t, err)
	assert.True(t, concepts["percentage change"])
	assert.True(t, concepts["roots"])
}
