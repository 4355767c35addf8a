package readiness

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		count WeightedCount
		want  Level
	}{
		{"any skip overrides everything", WeightedCount{Skipped: 3, Correct: 5}, Weak},
		{"single skip", WeightedCount{Skipped: 1}, Weak},
		{"never correct", WeightedCount{Wrong: 2}, Weak},
		{"error heavy", WeightedCount{Correct: 1, Wrong: 4}, Moderate},
		{"validated lower bound", WeightedCount{Correct: 1}, Strong},
		{"validated upper bound", WeightedCount{Correct: 3, Wrong: 1}, Strong},
		{"over-exposed", WeightedCount{Correct: 5}, Moderate},
		{"no data", WeightedCount{}, Moderate},
		{"fractional counters below every threshold", WeightedCount{Correct: 0.6, Wrong: 0.3}, Moderate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.count); got != tt.want {
				t.Errorf("Classify(%+v) = %s, want %s", tt.count, got, tt.want)
			}
		})
	}
}

func TestClassify_SkipBeatsErrorHeavy(t *testing.T) {
	// Rule order matters: a skip wins even when wrong > 3 would otherwise
	// classify Moderate.
	c := WeightedCount{Skipped: 1, Wrong: 5}
	if got := Classify(c); got != Weak {
		t.Errorf("Classify(%+v) = %s, want %s", c, got, Weak)
	}
}

func TestFinalizeReadiness(t *testing.T) {
	counts := map[string]WeightedCount{
		"aaa111bbb222": {Correct: 2},
		"ccc333ddd444": {Skipped: 1},
		"eee555fff666": {},
	}

	levels := FinalizeReadiness(counts)
	if len(levels) != 3 {
		t.Fatalf("expected 3 levels, got %d", len(levels))
	}
	if levels["aaa111bbb222"] != Strong {
		t.Errorf("expected Strong, got %s", levels["aaa111bbb222"])
	}
	if levels["ccc333ddd444"] != Weak {
		t.Errorf("expected Weak, got %s", levels["ccc333ddd444"])
	}
	if levels["eee555fff666"] != Moderate {
		t.Errorf("expected Moderate, got %s", levels["eee555fff666"])
	}
}
