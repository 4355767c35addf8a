package readiness

import (
	"fmt"
	"strings"
)

// Dominance weights. Upstream concept analysis labels each concept
// High/Medium/Low; the label scales how much an attempt counts toward
// that concept's statistics.
const (
	WeightHigh   = 1.0
	WeightMedium = 0.6
	WeightLow    = 0.3

	// DefaultWeight is used when a dominance label is unknown or a concept
	// has no entry in the weight map. Classification gaps upstream must not
	// abort planning, so gaps resolve to the Medium weight.
	DefaultWeight = WeightMedium
)

// DefaultConfidenceThreshold governs downstream interpretation of
// low-confidence dominance labels. It never shrinks the weight map.
const DefaultConfidenceThreshold = 0.5

var dominanceWeights = map[string]float64{
	"high":   WeightHigh,
	"medium": WeightMedium,
	"low":    WeightLow,
}

// WeightSet is the per-concept weight map produced from dominance labels,
// together with the confidence threshold it was built under.
type WeightSet struct {
	Weights             map[string]float64
	ConfidenceThreshold float64
}

// WeightsFromDominance converts qualitative dominance labels into numeric
// weights. Label matching is case-insensitive; unknown labels default to
// the Medium weight rather than failing. The returned map has exactly one
// entry per input key.
func WeightsFromDominance(dominance map[string]string, confidenceThreshold float64) (WeightSet, error) {
	if dominance == nil {
		return WeightSet{}, fmt.Errorf("readiness: dominance map must not be nil")
	}
	if confidenceThreshold < 0 || confidenceThreshold > 1 {
		return WeightSet{}, fmt.Errorf("readiness: confidence threshold %v outside [0,1]", confidenceThreshold)
	}

	weights := make(map[string]float64, len(dominance))
	for concept, label := range dominance {
		w, ok := dominanceWeights[strings.ToLower(strings.TrimSpace(label))]
		if !ok {
			w = DefaultWeight
		}
		weights[concept] = w
	}

	return WeightSet{Weights: weights, ConfidenceThreshold: confidenceThreshold}, nil
}
