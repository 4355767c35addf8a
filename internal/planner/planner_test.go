package planner

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/abhisek/catprep/internal/llm"
	"github.com/abhisek/catprep/internal/pack"
	"github.com/abhisek/catprep/internal/readiness"
)

// testPool builds a pool whose first 12 entries satisfy the mandatory
// constraints, so both LLM selections and the deterministic fallback can be
// validated cleanly. Extra entries pad the pool beyond pack size.
func testPool(extra int) ([]pack.QuestionCandidate, map[string]bool, map[string]bool) {
	bands := []pack.Band{
		pack.BandEasy, pack.BandEasy, pack.BandEasy,
		pack.BandMedium, pack.BandMedium, pack.BandMedium,
		pack.BandMedium, pack.BandMedium, pack.BandMedium,
		pack.BandHard, pack.BandHard, pack.BandHard,
	}

	pool := make([]pack.QuestionCandidate, 0, pack.Size+extra)
	for i := 0; i < pack.Size+extra; i++ {
		band := pack.BandMedium
		if i < len(bands) {
			band = bands[i]
		}
		q := pack.QuestionCandidate{
			QuestionID:     fmt.Sprintf("q%02d", i+1),
			Band:           band,
			Subcategory:    "Arithmetic",
			TypeOfQuestion: "Percentages",
			CoreConcepts:   []string{"percentage change"},
		}
		if i < 2 {
			q.PYQFrequencyScore = 1.6
		}
		pool = append(pool, q)
	}

	validPairs := map[string]bool{"Arithmetic:Percentages": true}
	knownConcepts := map[string]bool{"percentage change": true}
	return pool, validPairs, knownConcepts
}

func testInputs(pool []pack.QuestionCandidate, pairs, concepts map[string]bool) Inputs {
	// Every candidate's concept is Weak and every pair is unscored (high
	// urgency), so with a large enough pool no adaptive relaxation fires.
	return Inputs{
		UserID:        "u1",
		Pool:          pool,
		Readiness:     map[string]readiness.Level{"id-pc": readiness.Weak},
		SemanticIDs:   map[string]string{"percentage change": "id-pc"},
		ValidPairs:    pairs,
		KnownConcepts: concepts,
	}
}

func planJSON(ids []string, reasoning string) json.RawMessage {
	body, _ := json.Marshal(planResponse{SelectedIDs: ids, Reasoning: reasoning})
	return body
}

func poolIDs(pool []pack.QuestionCandidate, n int) []string {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = pool[i].QuestionID
	}
	return ids
}

func TestBuildPack_LLMSuccess(t *testing.T) {
	pool, pairs, concepts := testPool(2 * pack.Size)
	ids := poolIDs(pool, pack.Size)
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: planJSON(ids, "weak percentages, high coverage debt"),
	})

	p := New(mock, 0)
	result, outcome := p.BuildPack(context.Background(), testInputs(pool, pairs, concepts))

	if outcome.State != StateValidated {
		t.Fatalf("state = %s, want %s (validation: %v)", outcome.State, StateValidated, outcome.Validation.Errors)
	}
	if outcome.Reasoning == "" {
		t.Error("expected reasoning to be carried through")
	}
	if result.PlanID == "" {
		t.Error("expected a plan ID")
	}
	got := result.QuestionIDs()
	for i, id := range ids {
		if got[i] != id {
			t.Errorf("question %d = %s, want %s", i, got[i], id)
		}
	}
	if len(result.Report.Relaxed) != 0 {
		t.Errorf("expected no relaxations, got %v", result.Report.Relaxed)
	}
}

func TestBuildPack_LLMFailureFallsBack(t *testing.T) {
	pool, pairs, concepts := testPool(8)
	mock := llm.NewMockProvider() // no responses: every call fails

	p := New(mock, 0)
	result, outcome := p.BuildPack(context.Background(), testInputs(pool, pairs, concepts))

	if !outcome.DegradedAt(StageLLM) {
		t.Error("expected LLM-stage degradation")
	}
	if len(result.Questions) != pack.Size {
		t.Fatalf("fallback pack has %d questions, want %d", len(result.Questions), pack.Size)
	}
	// The fallback is literally the first 12 pool entries, in order.
	for i, q := range result.Questions {
		if q.QuestionID != pool[i].QuestionID {
			t.Errorf("fallback question %d = %s, want %s", i, q.QuestionID, pool[i].QuestionID)
		}
	}
	found := false
	for _, r := range result.Report.Relaxed {
		if r.Name == "llm_planning" {
			found = true
			if r.Reason == "" {
				t.Error("llm_planning relaxation must carry the failure reason")
			}
		}
	}
	if !found {
		t.Errorf("expected an llm_planning relaxation, got %v", result.Report.Relaxed)
	}
}

func TestBuildPack_PartialSelectionFilled(t *testing.T) {
	pool, pairs, concepts := testPool(8)
	// Five valid IDs, one unknown, one duplicate. The planner drops the bad
	// entries and fills from the pool in order.
	ids := append(poolIDs(pool, 5), "nonexistent", pool[0].QuestionID)
	mock := llm.NewMockProvider(llm.MockResponse{Content: planJSON(ids, "partial")})

	p := New(mock, 0)
	result, _ := p.BuildPack(context.Background(), testInputs(pool, pairs, concepts))

	if len(result.Questions) != pack.Size {
		t.Fatalf("pack has %d questions, want %d", len(result.Questions), pack.Size)
	}
	seen := make(map[string]bool)
	for _, q := range result.Questions {
		if seen[q.QuestionID] {
			t.Errorf("duplicate question %s in pack", q.QuestionID)
		}
		seen[q.QuestionID] = true
	}
	for i := 0; i < 5; i++ {
		if result.Questions[i].QuestionID != pool[i].QuestionID {
			t.Errorf("question %d = %s, want the LLM's pick %s", i, result.Questions[i].QuestionID, pool[i].QuestionID)
		}
	}
}

func TestBuildPack_ValidationFailureReported(t *testing.T) {
	pool, pairs, concepts := testPool(8)
	// Selecting the tail of the pool breaks the 3/6/3 shape (the padding is
	// all Medium).
	ids := make([]string, pack.Size)
	for i := range ids {
		ids[i] = pool[len(pool)-1-i].QuestionID
	}
	mock := llm.NewMockProvider(llm.MockResponse{Content: planJSON(ids, "bad shape")})

	p := New(mock, 0)
	result, outcome := p.BuildPack(context.Background(), testInputs(pool, pairs, concepts))

	if outcome.State != StateValidationFailed {
		t.Fatalf("state = %s, want %s", outcome.State, StateValidationFailed)
	}
	if !outcome.DegradedAt(StageValidation) {
		t.Error("expected validation-stage degradation")
	}

	found := false
	for _, r := range result.Report.Relaxed {
		if r.Name == "validation_constraints" {
			found = true
			if r.Reason == "" {
				t.Error("validation_constraints relaxation must summarize the errors")
			}
		}
	}
	if !found {
		t.Errorf("expected a validation_constraints relaxation, got %v", result.Report.Relaxed)
	}
}

func TestBuildPack_MandatoryConstraintsNeverRelaxed(t *testing.T) {
	pool, pairs, concepts := testPool(8)
	mandatory := map[string]bool{
		pack.ConstraintTotalCount:       true,
		pack.ConstraintDifficultyEasy:   true,
		pack.ConstraintDifficultyMedium: true,
		pack.ConstraintDifficultyHard:   true,
		pack.ConstraintPYQ10:            true,
		pack.ConstraintPYQ15:            true,
		pack.ConstraintNoDuplicates:     true,
	}

	// Exercise success, LLM failure, and validation failure paths.
	providers := []*llm.MockProvider{
		llm.NewMockProvider(llm.MockResponse{Content: planJSON(poolIDs(pool, pack.Size), "ok")}),
		llm.NewMockProvider(),
		llm.NewMockProvider(llm.MockResponse{Content: planJSON(poolIDs(pool, 3), "short")}),
	}

	for i, mock := range providers {
		p := New(mock, 0)
		result, _ := p.BuildPack(context.Background(), testInputs(pool, pairs, concepts))
		for _, r := range result.Report.Relaxed {
			if mandatory[r.Name] {
				t.Errorf("scenario %d: mandatory constraint %s appeared in relaxed list", i, r.Name)
			}
		}
	}
}

func TestBuildPack_SmallPoolFallback(t *testing.T) {
	pool, pairs, concepts := testPool(0)
	pool = pool[:7] // fewer candidates than a full pack
	mock := llm.NewMockProvider()

	p := New(mock, 0)
	result, outcome := p.BuildPack(context.Background(), testInputs(pool, pairs, concepts))

	if len(result.Questions) != 7 {
		t.Errorf("expected all 7 pool questions, got %d", len(result.Questions))
	}
	if outcome.State != StateValidationFailed {
		t.Errorf("a 7-question pack must fail validation, got %s", outcome.State)
	}
}

func TestSummarizeErrors_FirstTwo(t *testing.T) {
	got := summarizeErrors([]string{"first", "second", "third"})
	if got != "first; second" {
		t.Errorf("summarizeErrors = %q, want %q", got, "first; second")
	}
}
