package planner

import (
	"testing"

	"github.com/abhisek/catprep/internal/pack"
	"github.com/abhisek/catprep/internal/readiness"
)

func TestBuildPayload_ColdStartDiversityConstraint(t *testing.T) {
	pool, pairs, concepts := testPool(2 * pack.Size)
	in := testInputs(pool, pairs, concepts)
	in.ColdStart = true

	p, _ := buildPayload(in)

	if !p.ColdStart {
		t.Error("payload should carry the cold-start flag")
	}
	if p.Constraints.MinDistinctPairs != ColdStartMinDistinctPairs {
		t.Errorf("min_distinct_pairs = %d, want %d", p.Constraints.MinDistinctPairs, ColdStartMinDistinctPairs)
	}

	in.ColdStart = false
	p, _ = buildPayload(in)
	if p.Constraints.MinDistinctPairs != 0 {
		t.Errorf("min_distinct_pairs should be absent outside cold start, got %d", p.Constraints.MinDistinctPairs)
	}
}

func TestBuildPayload_RelaxationLadderOrder(t *testing.T) {
	// A pool with no readiness signal leaves the initial Weak-only focus
	// empty, forcing the full ladder: coverage debt widens before readiness
	// targeting.
	pool, pairs, concepts := testPool(2 * pack.Size)
	in := testInputs(pool, pairs, concepts)
	in.Readiness = nil
	in.SemanticIDs = nil

	_, relaxed := buildPayload(in)

	if len(relaxed) == 0 {
		t.Fatal("expected relaxations with no preferred candidates")
	}
	names := make([]string, len(relaxed))
	for i, r := range relaxed {
		names[i] = r.Name
	}
	for i, r := range relaxed {
		if r.Name == "readiness_targeting" {
			for _, later := range relaxed[i:] {
				if later.Name == "coverage_debt" {
					t.Fatalf("coverage_debt relaxed after readiness_targeting: %v", names)
				}
			}
		}
	}
	for _, r := range relaxed {
		if r.Reason == "" {
			t.Errorf("relaxation %s has no reason", r.Name)
		}
	}
}

func TestBuildPayload_NoRelaxationWhenFocusSuffices(t *testing.T) {
	pool, pairs, concepts := testPool(2 * pack.Size)
	in := testInputs(pool, pairs, concepts)

	_, relaxed := buildPayload(in)
	if len(relaxed) != 0 {
		t.Errorf("expected no relaxations with %d preferred candidates, got %v", len(pool), relaxed)
	}
}

func TestBuildPayload_CandidateCap(t *testing.T) {
	pool, pairs, concepts := testPool(100)
	in := testInputs(pool, pairs, concepts)

	p, _ := buildPayload(in)
	if len(p.Candidates) != maxPayloadCandidates {
		t.Errorf("payload carries %d candidates, want cap %d", len(p.Candidates), maxPayloadCandidates)
	}
	if p.PoolSize != len(pool) {
		t.Errorf("pool_size = %d, want %d", p.PoolSize, len(pool))
	}
}

func TestBuildPayload_PreferredCandidatesFirst(t *testing.T) {
	pool, pairs, concepts := testPool(2 * pack.Size)
	in := testInputs(pool, pairs, concepts)

	// The first six pool entries cover a strong concept, the rest a weak
	// one. Enough weak candidates remain that no relaxation fires, so the
	// preferred (weak) candidates must lead the payload ahead of earlier
	// pool positions.
	for i := 0; i < 6; i++ {
		pool[i].CoreConcepts = []string{"strong concept"}
	}
	in.SemanticIDs = map[string]string{
		"percentage change": "id-pc",
		"strong concept":    "id-strong",
	}
	in.Readiness = map[string]readiness.Level{
		"id-pc":     readiness.Weak,
		"id-strong": readiness.Strong,
	}

	p, relaxed := buildPayload(in)
	if len(relaxed) != 0 {
		t.Fatalf("expected no relaxations, got %v", relaxed)
	}
	if p.Candidates[0].ID != pool[6].QuestionID {
		t.Errorf("first payload candidate = %s, want first preferred %s", p.Candidates[0].ID, pool[6].QuestionID)
	}
	// The six strong-concept candidates trail the preferred block.
	tail := p.Candidates[len(p.Candidates)-6:]
	for i, c := range tail {
		if c.ID != pool[i].QuestionID {
			t.Errorf("trailing candidate %d = %s, want deferred %s", i, c.ID, pool[i].QuestionID)
		}
	}
}

func TestDebtTier(t *testing.T) {
	debt := map[string]float64{
		"high":   0.9,
		"medium": 0.5,
		"low":    0.1,
	}

	tests := []struct {
		pair string
		want urgency
	}{
		{"high", urgencyHigh},
		{"medium", urgencyMedium},
		{"low", urgencyLow},
		{"never-practiced", urgencyHigh},
	}
	for _, tt := range tests {
		if got := debtTier(debt, tt.pair); got != tt.want {
			t.Errorf("debtTier(%s) = %v, want %v", tt.pair, got, tt.want)
		}
	}
}

func TestWeakestReadiness(t *testing.T) {
	in := Inputs{
		SemanticIDs: map[string]string{"a": "id-a", "b": "id-b"},
		Readiness: map[string]readiness.Level{
			"id-a": readiness.Strong,
			"id-b": readiness.Weak,
		},
	}

	q := pack.QuestionCandidate{CoreConcepts: []string{"a", "b"}}
	if got := weakestReadiness(in, q); got != readiness.Weak {
		t.Errorf("weakestReadiness = %s, want %s", got, readiness.Weak)
	}

	// No resolvable concepts falls back to the neutral default.
	q = pack.QuestionCandidate{CoreConcepts: []string{"unmapped"}}
	if got := weakestReadiness(in, q); got != readiness.Moderate {
		t.Errorf("weakestReadiness = %s, want %s", got, readiness.Moderate)
	}
}
