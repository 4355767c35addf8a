// Package readiness converts noisy attempt history into per-concept
// readiness estimates: dominance labels become numeric weights, attempts
// fold into weighted counters, and a fixed rule table assigns each concept
// a discrete readiness level.
package readiness

// Level is the discrete readiness level assigned to a concept.
type Level string

const (
	Weak     Level = "weak"
	Moderate Level = "moderate"
	Strong   Level = "strong"
)

// WeightedCount accumulates weighted attempt outcomes for one concept.
// Values are fractional because each attempt contributes its concept
// weight, not 1. TotalCount is maintained as the sum of the three buckets.
type WeightedCount struct {
	Correct    float64 `json:"correct"`
	Wrong      float64 `json:"wrong"`
	Skipped    float64 `json:"skipped"`
	TotalCount float64 `json:"total"`
}

func (c *WeightedCount) addCorrect(w float64) {
	c.Correct += w
	c.TotalCount += w
}

func (c *WeightedCount) addWrong(w float64) {
	c.Wrong += w
	c.TotalCount += w
}

func (c *WeightedCount) addSkipped(w float64) {
	c.Skipped += w
	c.TotalCount += w
}
