package pack

import "fmt"

// Constraint names reported by Validate. The first five are mandatory and
// are never eligible for relaxation by any planner code path.
const (
	ConstraintTotalCount       = "total_count"
	ConstraintDifficultyEasy   = "difficulty_easy"
	ConstraintDifficultyMedium = "difficulty_medium"
	ConstraintDifficultyHard   = "difficulty_hard"
	ConstraintPYQ10            = "pyq_score_1_0"
	ConstraintPYQ15            = "pyq_score_1_5"
	ConstraintNoDuplicates     = "no_duplicates"
)

// ConstraintResult records the outcome of a single constraint check.
type ConstraintResult struct {
	Passed bool   `json:"passed"`
	Detail string `json:"detail"`
}

// ValidationResult reports every constraint check independently. Valid is
// true iff every individual constraint passed; Errors collects a
// human-readable description for every failing check, not just the first.
type ValidationResult struct {
	Valid       bool                        `json:"valid"`
	Errors      []string                    `json:"errors"`
	Constraints map[string]ConstraintResult `json:"constraints"`
}

// Validate checks a candidate pack against every mandatory constraint and
// the referential taxonomy sets. Checks do not short-circuit: a single call
// surfaces every violation at once.
//
// pool, when non-empty, is the candidate pool the pack was drawn from;
// pack members missing from it are reported per offending item, like the
// pair and concept referential checks.
func Validate(candidates []QuestionCandidate, pool []QuestionCandidate, validPairs map[string]bool, knownConcepts map[string]bool) ValidationResult {
	res := ValidationResult{
		Valid:       true,
		Constraints: make(map[string]ConstraintResult),
	}

	record := func(name string, passed bool, detail string) {
		res.Constraints[name] = ConstraintResult{Passed: passed, Detail: detail}
		if !passed {
			res.Valid = false
			res.Errors = append(res.Errors, fmt.Sprintf("%s: %s", name, detail))
		}
	}

	record(ConstraintTotalCount, len(candidates) == Size,
		fmt.Sprintf("expected %d questions, got %d", Size, len(candidates)))

	counts := map[Band]int{}
	for _, q := range candidates {
		counts[q.Band]++
	}
	record(ConstraintDifficultyEasy, counts[BandEasy] == EasyCount,
		fmt.Sprintf("expected %d Easy, got %d", EasyCount, counts[BandEasy]))
	record(ConstraintDifficultyMedium, counts[BandMedium] == MediumCount,
		fmt.Sprintf("expected %d Medium, got %d", MediumCount, counts[BandMedium]))
	record(ConstraintDifficultyHard, counts[BandHard] == HardCount,
		fmt.Sprintf("expected %d Hard, got %d", HardCount, counts[BandHard]))

	// Overlapping thresholds: a question scoring >= 1.5 counts toward both.
	low, high := 0, 0
	for _, q := range candidates {
		if q.PYQFrequencyScore >= PYQLowThreshold {
			low++
		}
		if q.PYQFrequencyScore >= PYQHighThreshold {
			high++
		}
	}
	record(ConstraintPYQ10, low >= MinPYQLow,
		fmt.Sprintf("expected >=%d questions with pyq_frequency_score >= %.1f, got %d", MinPYQLow, PYQLowThreshold, low))
	record(ConstraintPYQ15, high >= MinPYQHigh,
		fmt.Sprintf("expected >=%d questions with pyq_frequency_score >= %.1f, got %d", MinPYQHigh, PYQHighThreshold, high))

	seen := make(map[string]bool, len(candidates))
	dupes := 0
	for _, q := range candidates {
		if seen[q.QuestionID] {
			dupes++
		}
		seen[q.QuestionID] = true
	}
	record(ConstraintNoDuplicates, dupes == 0,
		fmt.Sprintf("%d duplicate question IDs", dupes))

	// Referential checks, surfaced per offending item.
	reportedPairs := make(map[string]bool)
	reportedConcepts := make(map[string]bool)
	for _, q := range candidates {
		if pair := q.Pair(); !validPairs[pair] && !reportedPairs[pair] {
			reportedPairs[pair] = true
			record("pair:"+pair, false, fmt.Sprintf("pair %q is not in the valid pairs set", pair))
		}
		for _, concept := range q.CoreConcepts {
			if !knownConcepts[concept] && !reportedConcepts[concept] {
				reportedConcepts[concept] = true
				record("concept:"+concept, false, fmt.Sprintf("concept %q is not in the known concepts set", concept))
			}
		}
	}

	if len(pool) > 0 {
		inPool := make(map[string]bool, len(pool))
		for _, q := range pool {
			inPool[q.QuestionID] = true
		}
		for _, q := range candidates {
			if !inPool[q.QuestionID] {
				record("pool:"+q.QuestionID, false,
					fmt.Sprintf("question %q is not in the candidate pool", q.QuestionID))
			}
		}
	}

	return res
}
