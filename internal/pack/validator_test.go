package pack

import (
	"fmt"
	"testing"
)

// validPack builds a pack satisfying every mandatory constraint: 3/6/3
// difficulty shape, two questions at 1.5+ (which also cover the 1.0
// minimum), unique IDs, and pairs/concepts drawn from the returned sets.
func validPack() ([]QuestionCandidate, map[string]bool, map[string]bool) {
	bands := []Band{
		BandEasy, BandEasy, BandEasy,
		BandMedium, BandMedium, BandMedium, BandMedium, BandMedium, BandMedium,
		BandHard, BandHard, BandHard,
	}

	candidates := make([]QuestionCandidate, Size)
	for i := range candidates {
		candidates[i] = QuestionCandidate{
			QuestionID:     fmt.Sprintf("q%02d", i+1),
			Band:           bands[i],
			Subcategory:    "Arithmetic",
			TypeOfQuestion: "Percentages",
			CoreConcepts:   []string{"percentage change"},
		}
	}
	candidates[0].PYQFrequencyScore = 1.5
	candidates[3].PYQFrequencyScore = 1.8

	validPairs := map[string]bool{"Arithmetic:Percentages": true}
	knownConcepts := map[string]bool{"percentage change": true}
	return candidates, validPairs, knownConcepts
}

func TestValidate_ValidPack(t *testing.T) {
	candidates, pairs, concepts := validPack()

	vr := Validate(candidates, candidates, pairs, concepts)
	if !vr.Valid {
		t.Fatalf("expected valid pack, got errors: %v", vr.Errors)
	}
	if len(vr.Errors) != 0 {
		t.Errorf("expected no errors, got %v", vr.Errors)
	}
	for _, name := range []string{
		ConstraintTotalCount,
		ConstraintDifficultyEasy, ConstraintDifficultyMedium, ConstraintDifficultyHard,
		ConstraintPYQ10, ConstraintPYQ15,
		ConstraintNoDuplicates,
	} {
		c, ok := vr.Constraints[name]
		if !ok {
			t.Errorf("constraint %s missing from report", name)
			continue
		}
		if !c.Passed {
			t.Errorf("constraint %s failed: %s", name, c.Detail)
		}
	}
}

func TestValidate_WrongSize(t *testing.T) {
	candidates, pairs, concepts := validPack()
	short := candidates[:11]

	vr := Validate(short, candidates, pairs, concepts)
	if vr.Valid {
		t.Fatal("expected invalid pack")
	}
	if vr.Constraints[ConstraintTotalCount].Passed {
		t.Error("total_count should fail for an 11-question pack")
	}
}

func TestValidate_BandShapeViolation(t *testing.T) {
	candidates, pairs, concepts := validPack()
	// Moving one Easy to Medium breaks both band constraints at once.
	candidates[0].Band = BandMedium

	vr := Validate(candidates, candidates, pairs, concepts)
	if vr.Valid {
		t.Fatal("expected invalid pack")
	}
	if vr.Constraints[ConstraintDifficultyEasy].Passed {
		t.Error("difficulty_easy should fail with 2 Easy questions")
	}
	if vr.Constraints[ConstraintDifficultyMedium].Passed {
		t.Error("difficulty_medium should fail with 7 Medium questions")
	}
	if !vr.Constraints[ConstraintDifficultyHard].Passed {
		t.Error("difficulty_hard should still pass")
	}
	// Both violations must be surfaced in one call.
	if len(vr.Errors) < 2 {
		t.Errorf("expected at least 2 errors, got %v", vr.Errors)
	}
}

func TestValidate_PYQMinimums(t *testing.T) {
	candidates, pairs, concepts := validPack()
	for i := range candidates {
		candidates[i].PYQFrequencyScore = 0
	}

	vr := Validate(candidates, candidates, pairs, concepts)
	if vr.Valid {
		t.Fatal("expected invalid pack")
	}
	if vr.Constraints[ConstraintPYQ10].Passed {
		t.Error("pyq_score_1_0 should fail with all scores at 0")
	}
	if vr.Constraints[ConstraintPYQ15].Passed {
		t.Error("pyq_score_1_5 should fail with all scores at 0")
	}
}

func TestValidate_HighScoresCountTowardBothMinimums(t *testing.T) {
	candidates, pairs, concepts := validPack()
	// Exactly two questions at 1.5+, none in [1.0, 1.5). The overlap rule
	// means both minimums are met.
	vr := Validate(candidates, candidates, pairs, concepts)
	if !vr.Constraints[ConstraintPYQ10].Passed {
		t.Error("questions scoring >= 1.5 must also count toward the 1.0 minimum")
	}
	if !vr.Constraints[ConstraintPYQ15].Passed {
		t.Error("pyq_score_1_5 should pass with two questions at 1.5+")
	}
}

func TestValidate_DuplicateIDs(t *testing.T) {
	candidates, pairs, concepts := validPack()
	candidates[1].QuestionID = candidates[0].QuestionID

	vr := Validate(candidates, candidates, pairs, concepts)
	if vr.Valid {
		t.Fatal("expected invalid pack")
	}
	if vr.Constraints[ConstraintNoDuplicates].Passed {
		t.Error("no_duplicates should fail with a repeated ID")
	}
}

func TestValidate_UnknownPairAndConcept(t *testing.T) {
	candidates, pairs, concepts := validPack()
	candidates[5].Subcategory = "Geometry"
	candidates[7].CoreConcepts = []string{"mensuration"}

	vr := Validate(candidates, candidates, pairs, concepts)
	if vr.Valid {
		t.Fatal("expected invalid pack")
	}
	if _, ok := vr.Constraints["pair:Geometry:Percentages"]; !ok {
		t.Error("expected a per-pair entry for the unknown pair")
	}
	if _, ok := vr.Constraints["concept:mensuration"]; !ok {
		t.Error("expected a per-concept entry for the unknown concept")
	}
}

func TestValidate_OutsidePool(t *testing.T) {
	candidates, pairs, concepts := validPack()
	pool := candidates[1:]

	vr := Validate(candidates, pool, pairs, concepts)
	if vr.Valid {
		t.Fatal("expected invalid pack")
	}
	if _, ok := vr.Constraints["pool:"+candidates[0].QuestionID]; !ok {
		t.Error("expected a pool-membership entry for the missing question")
	}
}
