package readiness

// rule is one (predicate, level) pair in the readiness table.
type rule struct {
	name    string
	applies func(WeightedCount) bool
	level   Level
}

// readinessRules is evaluated top to bottom; the first matching rule wins.
// The final rule always applies, so classification is total over every
// non-negative counter combination.
var readinessRules = []rule{
	{
		// Any skip signals avoidance or low confidence and overrides
		// everything else.
		name:    "any-skip",
		applies: func(c WeightedCount) bool { return c.Skipped > 0 },
		level:   Weak,
	},
	{
		name:    "never-correct",
		applies: func(c WeightedCount) bool { return c.Correct == 0 && c.Wrong > 0 },
		level:   Weak,
	},
	{
		// Many mistakes caps the concept below Strong regardless of how
		// many correct answers accumulated.
		name:    "error-heavy",
		applies: func(c WeightedCount) bool { return c.Wrong > 3 },
		level:   Moderate,
	},
	{
		name:    "validated",
		applies: func(c WeightedCount) bool { return c.Correct >= 1 && c.Correct <= 3 },
		level:   Strong,
	},
	{
		// Over-exposure without fresh signal needs re-validation, not
		// a mastery call.
		name:    "over-exposed",
		applies: func(c WeightedCount) bool { return c.Correct > 3 },
		level:   Moderate,
	},
	{
		// Catch-all: no data, or counters too small to match any rule
		// above (weights are fractional). Neutral, not optimistic.
		name:    "insufficient-signal",
		applies: func(WeightedCount) bool { return true },
		level:   Moderate,
	},
}

// Classify assigns the readiness level for a single concept's counters.
func Classify(c WeightedCount) Level {
	for _, r := range readinessRules {
		if r.applies(c) {
			return r.level
		}
	}
	// Unreachable: the last rule always applies.
	return Moderate
}

// FinalizeReadiness classifies every concept in the counter map.
func FinalizeReadiness(counts map[string]WeightedCount) map[string]Level {
	levels := make(map[string]Level, len(counts))
	for id, c := range counts {
		levels[id] = Classify(c)
	}
	return levels
}
