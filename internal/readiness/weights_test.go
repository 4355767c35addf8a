package readiness

import "testing"

func TestWeightsFromDominance(t *testing.T) {
	ws, err := WeightsFromDominance(map[string]string{
		"id-high":    "High",
		"id-medium":  "medium",
		"id-low":     " LOW ",
		"id-unknown": "critical",
	}, DefaultConfidenceThreshold)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[string]float64{
		"id-high":    WeightHigh,
		"id-medium":  WeightMedium,
		"id-low":     WeightLow,
		"id-unknown": DefaultWeight,
	}
	for id, w := range want {
		if ws.Weights[id] != w {
			t.Errorf("weight[%s] = %v, want %v", id, ws.Weights[id], w)
		}
	}
	if len(ws.Weights) != len(want) {
		t.Errorf("expected %d entries, got %d", len(want), len(ws.Weights))
	}
	if ws.ConfidenceThreshold != DefaultConfidenceThreshold {
		t.Errorf("threshold = %v, want %v", ws.ConfidenceThreshold, DefaultConfidenceThreshold)
	}
}

func TestWeightsFromDominance_NilMap(t *testing.T) {
	if _, err := WeightsFromDominance(nil, 0.5); err == nil {
		t.Error("expected error for nil dominance map")
	}
}

func TestWeightsFromDominance_ThresholdRange(t *testing.T) {
	for _, threshold := range []float64{-0.1, 1.1} {
		if _, err := WeightsFromDominance(map[string]string{}, threshold); err == nil {
			t.Errorf("expected error for threshold %v", threshold)
		}
	}
	for _, threshold := range []float64{0, 0.5, 1} {
		if _, err := WeightsFromDominance(map[string]string{}, threshold); err != nil {
			t.Errorf("unexpected error for threshold %v: %v", threshold, err)
		}
	}
}
