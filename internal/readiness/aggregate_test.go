package readiness

import (
	"math"
	"testing"

	"github.com/abhisek/catprep/internal/attempt"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestComputeWeightedCounts(t *testing.T) {
	semanticIDs := map[string]string{
		"ratio":      "id-ratio",
		"percentage": "id-percentage",
	}
	weights := map[string]float64{
		"id-ratio": WeightHigh,
		// id-percentage has no entry and falls back to the default.
	}

	events := []attempt.Event{
		{QuestionID: "q1", Correct: true, CoreConcepts: []string{"ratio", "percentage"}},
		{QuestionID: "q2", Correct: false, CoreConcepts: []string{"ratio"}},
		{QuestionID: "q3", Skipped: true, CoreConcepts: []string{"percentage"}},
	}

	counts := ComputeWeightedCounts(events, weights, semanticIDs)

	ratio := counts["id-ratio"]
	if !almostEqual(ratio.Correct, WeightHigh) {
		t.Errorf("ratio correct = %v, want %v", ratio.Correct, WeightHigh)
	}
	if !almostEqual(ratio.Wrong, WeightHigh) {
		t.Errorf("ratio wrong = %v, want %v", ratio.Wrong, WeightHigh)
	}
	if !almostEqual(ratio.TotalCount, 2*WeightHigh) {
		t.Errorf("ratio total = %v, want %v", ratio.TotalCount, 2*WeightHigh)
	}

	pct := counts["id-percentage"]
	if !almostEqual(pct.Correct, DefaultWeight) {
		t.Errorf("percentage correct = %v, want default weight %v", pct.Correct, DefaultWeight)
	}
	if !almostEqual(pct.Skipped, DefaultWeight) {
		t.Errorf("percentage skipped = %v, want default weight %v", pct.Skipped, DefaultWeight)
	}
}

func TestComputeWeightedCounts_UnmappedLabelSkipped(t *testing.T) {
	events := []attempt.Event{
		{QuestionID: "q1", Correct: true, CoreConcepts: []string{"unmapped"}},
	}

	counts := ComputeWeightedCounts(events, map[string]float64{}, map[string]string{})
	if len(counts) != 0 {
		t.Errorf("expected no counters for unmapped labels, got %v", counts)
	}
}

func TestComputeWeightedCounts_FullWeightPerConcept(t *testing.T) {
	// One attempt touching two concepts contributes its full weight to each;
	// weight is never split across concepts.
	semanticIDs := map[string]string{"a": "id-a", "b": "id-b"}
	events := []attempt.Event{
		{QuestionID: "q1", Correct: true, CoreConcepts: []string{"a", "b"}},
	}

	counts := ComputeWeightedCounts(events, map[string]float64{}, semanticIDs)
	for _, id := range []string{"id-a", "id-b"} {
		if !almostEqual(counts[id].Correct, DefaultWeight) {
			t.Errorf("counts[%s].Correct = %v, want %v", id, counts[id].Correct, DefaultWeight)
		}
	}
}
