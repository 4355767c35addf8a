// Package attempt defines the read-only attempt-history snapshot consumed
// by the planning kernels. Events are created by the serving layer when a
// learner submits or skips a question and are immutable afterwards.
package attempt

import "github.com/abhisek/catprep/internal/pack"

// Event is one user-question interaction snapshot.
type Event struct {
	QuestionID        string    `json:"question_id"`
	Correct           bool      `json:"was_correct"`
	Skipped           bool      `json:"skipped"`
	ResponseTimeMs    int       `json:"response_time_ms"`
	SessSeq           int64     `json:"sess_seq_at_serve"`
	Band              pack.Band `json:"difficulty_band"`
	Subcategory       string    `json:"subcategory"`
	TypeOfQuestion    string    `json:"type_of_question"`
	CoreConcepts      []string  `json:"core_concepts"`
	PYQFrequencyScore float64   `json:"pyq_frequency_score"`
}

// Pair returns the coverage pair key the event counts toward.
func (e Event) Pair() string {
	return pack.PairKey(e.Subcategory, e.TypeOfQuestion)
}
