package pack

// Size is the fixed number of questions in a served pack.
const Size = 12

// Mandatory difficulty shape for every pack: 3 Easy, 6 Medium, 3 Hard.
const (
	EasyCount   = 3
	MediumCount = 6
	HardCount   = 3
)

// Historical-frequency minimums. At least MinPYQLow questions must score
// >= PYQLowThreshold and at least MinPYQHigh must score >= PYQHighThreshold.
// The sets overlap: a question scoring >= 1.5 also counts toward the 1.0
// minimum.
const (
	PYQLowThreshold  = 1.0
	PYQHighThreshold = 1.5
	MinPYQLow        = 2
	MinPYQHigh       = 2
)

// Band is the difficulty band of a question.
type Band string

const (
	BandEasy   Band = "Easy"
	BandMedium Band = "Medium"
	BandHard   Band = "Hard"
)

// PairKey builds the composite coverage-tracking key for a
// (subcategory, type_of_question) pair.
func PairKey(subcategory, typeOfQuestion string) string {
	return subcategory + ":" + typeOfQuestion
}

// QuestionCandidate is a question as the planner and validator see it.
// Sourced from the question bank; read-only to the planning core.
type QuestionCandidate struct {
	QuestionID        string   `json:"question_id"`
	Band              Band     `json:"difficulty_band"`
	Subcategory       string   `json:"subcategory"`
	TypeOfQuestion    string   `json:"type_of_question"`
	CoreConcepts      []string `json:"core_concepts"`
	PYQFrequencyScore float64  `json:"pyq_frequency_score"`
}

// Pair returns the candidate's coverage pair key.
func (q QuestionCandidate) Pair() string {
	return PairKey(q.Subcategory, q.TypeOfQuestion)
}

// RelaxedEntry records one constraint the planner had to loosen, with the
// reason it did so.
type RelaxedEntry struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// ConstraintReport summarizes which constraints a pack satisfied and which
// adaptive constraints had to be relaxed to assemble it.
type ConstraintReport struct {
	Met     []string       `json:"met"`
	Relaxed []RelaxedEntry `json:"relaxed"`
}

// Pack is the output artifact of one planning invocation: an ordered set of
// questions plus the constraint report explaining how it was assembled.
// Immutable once returned.
type Pack struct {
	PlanID    string              `json:"plan_id"`
	Questions []QuestionCandidate `json:"questions"`
	Report    ConstraintReport    `json:"constraint_report"`
}

// QuestionIDs returns the ordered question IDs of the pack.
func (p *Pack) QuestionIDs() []string {
	ids := make([]string, len(p.Questions))
	for i, q := range p.Questions {
		ids[i] = q.QuestionID
	}
	return ids
}
