package store

import (
	"context"

	"github.com/abhisek/catprep/internal/attempt"
	"github.com/abhisek/catprep/internal/pack"
	"github.com/abhisek/catprep/internal/studyplan"
)

// AttemptEventData is the write-side shape of one attempt event.
type AttemptEventData struct {
	UserID            string
	QuestionID        string
	Correct           bool
	Skipped           bool
	ResponseTimeMs    int
	SessSeq           int64
	Band              string
	Subcategory       string
	TypeOfQuestion    string
	CoreConcepts      []string
	PYQFrequencyScore float64
}

// PlanEventData is the audit record of one planning invocation.
type PlanEventData struct {
	PlanID      string
	UserID      string
	QuestionIDs []string
	Met         []string
	Relaxed     []pack.RelaxedEntry
	Valid       bool
	Fallback    bool
	Reasoning   string
}

// LLMRequestEventData records one LLM request for monitoring.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	LatencyMs    int64
	Success      bool
	InputTokens  int
	OutputTokens int
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMUsageStats aggregates LLM requests by purpose.
type LLMUsageStats struct {
	Purpose      string
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int
}

// LLMModelUsage aggregates LLM requests by model.
type LLMModelUsage struct {
	Model        string
	Requests     int
	InputTokens  int
	OutputTokens int
}

// EventRepo is the append/query surface for the event tables.
type EventRepo interface {
	// AppendAttempt records one submitted or skipped question.
	AppendAttempt(ctx context.Context, data AttemptEventData) error

	// RecentAttempts returns the user's attempts whose session sequence
	// falls within the most recent sessionsLookback distinct sessions,
	// oldest first.
	RecentAttempts(ctx context.Context, userID string, sessionsLookback int) ([]attempt.Event, error)

	// DistinctSessionCount returns how many distinct session sequence
	// numbers the user has attempted in. Drives cold-start detection.
	DistinctSessionCount(ctx context.Context, userID string) (int, error)

	// AppendPlan records a served pack.
	AppendPlan(ctx context.Context, data PlanEventData) error

	// AppendLLMRequest records one LLM request.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// LLMUsageByPurpose aggregates request counts and tokens per purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error)

	// LLMUsageByModel aggregates request counts and tokens per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}

// QuestionRow is the write-side shape of one bank question.
type QuestionRow struct {
	QuestionID        string   `json:"question_id"`
	Band              string   `json:"difficulty_band"`
	Subcategory       string   `json:"subcategory"`
	TypeOfQuestion    string   `json:"type_of_question"`
	CoreConcepts      []string `json:"core_concepts"`
	PYQFrequencyScore float64  `json:"pyq_frequency_score"`
	Topic             string   `json:"topic"`
	Active            bool     `json:"active"`
	Excluded          bool     `json:"excluded"`
}

// QuestionRepo is the read/import surface for the question bank.
type QuestionRepo interface {
	// Seed upserts bank rows, returning the number written.
	Seed(ctx context.Context, rows []QuestionRow) (int, error)

	// ActiveCandidates returns all active, non-excluded questions as
	// planner candidates, in stable question_id order.
	ActiveCandidates(ctx context.Context) ([]pack.QuestionCandidate, error)

	// CandidatesBySubcategory returns active candidates for one
	// subcategory.
	CandidatesBySubcategory(ctx context.Context, subcategory string) ([]pack.QuestionCandidate, error)

	// StudyQuestions returns all questions in the study-plan view.
	StudyQuestions(ctx context.Context) ([]studyplan.BankQuestion, error)

	// ValidPairs derives the valid (subcategory:type) set from active
	// questions.
	ValidPairs(ctx context.Context) (map[string]bool, error)

	// KnownConcepts derives the known concept label set from active
	// questions.
	KnownConcepts(ctx context.Context) (map[string]bool, error)
}

// StudyPlanRepo persists generated 90-day plans.
type StudyPlanRepo interface {
	Save(ctx context.Context, plan *studyplan.Plan) error

	// Latest returns the user's most recent plan, or nil if none exists.
	Latest(ctx context.Context, userID string) (*studyplan.Plan, error)
}
