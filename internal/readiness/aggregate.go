package readiness

import "github.com/abhisek/catprep/internal/attempt"

// ComputeWeightedCounts folds attempt events into per-concept weighted
// counters. Concept labels resolve to semantic IDs through semanticIDs;
// labels absent from the map are skipped for that event (no ID is ever
// invented). Weights resolve through conceptWeights, keyed by semantic ID,
// defaulting to DefaultWeight for concepts with no explicit weight.
//
// An event touching multiple concepts contributes its full weighted
// outcome to every one of them; weight is not split across concepts.
func ComputeWeightedCounts(
	events []attempt.Event,
	conceptWeights map[string]float64,
	semanticIDs map[string]string,
) map[string]WeightedCount {
	counts := make(map[string]WeightedCount)

	for _, ev := range events {
		for _, label := range ev.CoreConcepts {
			id, ok := semanticIDs[label]
			if !ok {
				continue
			}

			w, ok := conceptWeights[id]
			if !ok {
				w = DefaultWeight
			}

			c := counts[id]
			switch {
			case ev.Skipped:
				c.addSkipped(w)
			case ev.Correct:
				c.addCorrect(w)
			default:
				c.addWrong(w)
			}
			counts[id] = c
		}
	}

	return counts
}
