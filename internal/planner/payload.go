package planner

import (
	"github.com/abhisek/catprep/internal/pack"
	"github.com/abhisek/catprep/internal/readiness"
)

// Inputs carries everything a planning invocation reads. All fields are
// read-only to the planner; repeated invocation with the same inputs is
// safe (the planner is stateless).
type Inputs struct {
	UserID string

	// Pool is the flattened candidate pool in its serving order. The
	// deterministic fallback takes its first 12 entries.
	Pool []pack.QuestionCandidate

	// Readiness maps semantic concept IDs to readiness levels.
	Readiness map[string]readiness.Level

	// SemanticIDs maps concept labels (as they appear on candidates) to
	// semantic IDs, for resolving candidate concepts against Readiness.
	SemanticIDs map[string]string

	// CoverageDebt maps pairs to normalized debt scores. Pairs absent from
	// the map were not seen in the coverage window at all and are treated
	// as maximally under-practiced.
	CoverageDebt map[string]float64

	ValidPairs    map[string]bool
	KnownConcepts map[string]bool

	// ColdStart is set when the learner has insufficient history. It adds
	// a diversity objective: at least 5 distinct pairs across the 12
	// picks, still subject to all mandatory constraints.
	ColdStart bool
}

// ColdStartMinDistinctPairs is the diversity floor in cold-start mode.
const ColdStartMinDistinctPairs = 5

// maxPayloadCandidates caps the candidate list sent to the LLM to bound
// token usage. Preferred candidates are listed first, so the cap trims the
// least urgent tail.
const maxPayloadCandidates = 60

// minPreferredCandidates is the adaptive-focus sufficiency bar: while the
// preferred subset is smaller than this, the focus is widened along the
// relaxation ladder.
const minPreferredCandidates = 2 * pack.Size

// Debt urgency tiers, from the normalized [0,1] debt score.
const (
	highUrgencyMin   = 2.0 / 3.0
	mediumUrgencyMin = 1.0 / 3.0
)

type urgency int

const (
	urgencyLow urgency = iota
	urgencyMedium
	urgencyHigh
)

// payloadCandidate is the reduced per-question view sent to the LLM:
// attributes needed to satisfy the constraints, never question content.
type payloadCandidate struct {
	ID   string    `json:"id"`
	Band pack.Band `json:"band"`
	Pair string    `json:"pair"`
	PYQ  float64   `json:"pyq"`
}

type payloadConstraints struct {
	TotalCount       int `json:"total_count"`
	Easy             int `json:"easy"`
	Medium           int `json:"medium"`
	Hard             int `json:"hard"`
	MinPYQ10         int `json:"min_pyq_1_0"`
	MinPYQ15         int `json:"min_pyq_1_5"`
	MinDistinctPairs int `json:"min_distinct_pairs,omitempty"`
}

// payload is the reduced planning request sent to the LLM.
type payload struct {
	PoolSize     int                        `json:"pool_size"`
	Candidates   []payloadCandidate         `json:"candidates"`
	Constraints  payloadConstraints         `json:"constraints"`
	Readiness    map[string]readiness.Level `json:"readiness,omitempty"`
	CoverageDebt map[string]float64         `json:"coverage_debt,omitempty"`
	ColdStart    bool                       `json:"cold_start"`
}

// adaptiveFocus is the current width of the adaptive targeting: which debt
// urgency tiers and readiness levels make a candidate "preferred".
type adaptiveFocus struct {
	debtTiers       map[urgency]bool
	readinessLevels map[readiness.Level]bool
}

// relaxStep is one rung of the relaxation ladder. Coverage-debt
// prioritization relaxes before readiness targeting, and the mandatory
// band-shape and PYQ constraints are never on this ladder.
type relaxStep struct {
	entry pack.RelaxedEntry
	apply func(*adaptiveFocus)
}

var relaxLadder = []relaxStep{
	{
		entry: pack.RelaxedEntry{Name: "coverage_debt", Reason: "widened coverage focus to medium urgency pairs"},
		apply: func(f *adaptiveFocus) { f.debtTiers[urgencyMedium] = true },
	},
	{
		entry: pack.RelaxedEntry{Name: "coverage_debt", Reason: "widened coverage focus to low urgency pairs"},
		apply: func(f *adaptiveFocus) { f.debtTiers[urgencyLow] = true },
	},
	{
		entry: pack.RelaxedEntry{Name: "readiness_targeting", Reason: "widened readiness focus to moderate concepts"},
		apply: func(f *adaptiveFocus) { f.readinessLevels[readiness.Moderate] = true },
	},
	{
		entry: pack.RelaxedEntry{Name: "readiness_targeting", Reason: "widened readiness focus to strong concepts"},
		apply: func(f *adaptiveFocus) { f.readinessLevels[readiness.Strong] = true },
	},
}

// buildPayload assembles the reduced LLM request, widening the adaptive
// focus along the relaxation ladder until enough preferred candidates
// exist. Returns the payload and the relaxations that were applied.
func buildPayload(in Inputs) (payload, []pack.RelaxedEntry) {
	focus := adaptiveFocus{
		debtTiers:       map[urgency]bool{urgencyHigh: true},
		readinessLevels: map[readiness.Level]bool{readiness.Weak: true},
	}

	var relaxed []pack.RelaxedEntry
	preferred := preferredSet(in, focus)
	for _, step := range relaxLadder {
		if len(preferred) >= minPreferredCandidates {
			break
		}
		step.apply(&focus)
		relaxed = append(relaxed, step.entry)
		preferred = preferredSet(in, focus)
	}

	// Preferred candidates first, then the rest, both in pool order.
	candidates := make([]payloadCandidate, 0, len(in.Pool))
	appendCandidate := func(q pack.QuestionCandidate) {
		candidates = append(candidates, payloadCandidate{
			ID:   q.QuestionID,
			Band: q.Band,
			Pair: q.Pair(),
			PYQ:  q.PYQFrequencyScore,
		})
	}
	for _, q := range in.Pool {
		if preferred[q.QuestionID] {
			appendCandidate(q)
		}
	}
	for _, q := range in.Pool {
		if !preferred[q.QuestionID] {
			appendCandidate(q)
		}
	}
	if len(candidates) > maxPayloadCandidates {
		candidates = candidates[:maxPayloadCandidates]
	}

	p := payload{
		PoolSize:   len(in.Pool),
		Candidates: candidates,
		Constraints: payloadConstraints{
			TotalCount: pack.Size,
			Easy:       pack.EasyCount,
			Medium:     pack.MediumCount,
			Hard:       pack.HardCount,
			MinPYQ10:   pack.MinPYQLow,
			MinPYQ15:   pack.MinPYQHigh,
		},
		Readiness:    in.Readiness,
		CoverageDebt: in.CoverageDebt,
		ColdStart:    in.ColdStart,
	}
	if in.ColdStart {
		p.Constraints.MinDistinctPairs = ColdStartMinDistinctPairs
	}

	return p, relaxed
}

// preferredSet returns the IDs of candidates inside the current adaptive
// focus: their pair's debt tier and their weakest concept readiness both
// fall within it.
func preferredSet(in Inputs, focus adaptiveFocus) map[string]bool {
	preferred := make(map[string]bool)
	for _, q := range in.Pool {
		if focus.debtTiers[debtTier(in.CoverageDebt, q.Pair())] &&
			focus.readinessLevels[weakestReadiness(in, q)] {
			preferred[q.QuestionID] = true
		}
	}
	return preferred
}

// debtTier buckets a pair's debt score. Pairs unscored by the coverage
// window were not practiced at all recently and count as high urgency.
func debtTier(debt map[string]float64, pair string) urgency {
	score, ok := debt[pair]
	switch {
	case !ok, score >= highUrgencyMin:
		return urgencyHigh
	case score >= mediumUrgencyMin:
		return urgencyMedium
	default:
		return urgencyLow
	}
}

// weakestReadiness returns the weakest readiness level across a
// candidate's concepts. Concepts with no readiness signal count as
// Moderate, matching the classifier's neutral default.
func weakestReadiness(in Inputs, q pack.QuestionCandidate) readiness.Level {
	weakest := readiness.Strong
	seen := false
	for _, label := range q.CoreConcepts {
		id, ok := in.SemanticIDs[label]
		if !ok {
			continue
		}
		level, ok := in.Readiness[id]
		if !ok {
			level = readiness.Moderate
		}
		seen = true
		if rank(level) < rank(weakest) {
			weakest = level
		}
	}
	if !seen {
		return readiness.Moderate
	}
	return weakest
}

func rank(l readiness.Level) int {
	switch l {
	case readiness.Weak:
		return 0
	case readiness.Moderate:
		return 1
	default:
		return 2
	}
}
