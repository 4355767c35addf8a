package store

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/catprep/internal/pack"
	"github.com/abhisek/catprep/internal/studyplan"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is exercised only against file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		if want := int64(i + 1); seq != want {
			t.Errorf("seq = %d, want %d", seq, want)
		}
	}
}

func attemptData(userID, questionID string, sessSeq int64, correct bool) AttemptEventData {
	return AttemptEventData{
		UserID:            userID,
		QuestionID:        questionID,
		Correct:           correct,
		SessSeq:           sessSeq,
		Band:              "Medium",
		Subcategory:       "Arithmetic",
		TypeOfQuestion:    "Percentages",
		CoreConcepts:      []string{"percentage change"},
		PYQFrequencyScore: 1.2,
	}
}

func TestAttemptWindowBySessions(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	// Three sessions; a lookback of 2 must exclude session 1 entirely.
	for sess := int64(1); sess <= 3; sess++ {
		for i := 0; i < 2; i++ {
			if err := repo.AppendAttempt(ctx, attemptData("u1", "q1", sess, true)); err != nil {
				t.Fatalf("append (sess %d): %v", sess, err)
			}
		}
	}
	// Another user's events never leak into the window.
	if err := repo.AppendAttempt(ctx, attemptData("u2", "q9", 3, false)); err != nil {
		t.Fatalf("append u2: %v", err)
	}

	events, err := repo.RecentAttempts(ctx, "u1", 2)
	if err != nil {
		t.Fatalf("recent attempts: %v", err)
	}
	if len(events) != 4 {
		t.Fatalf("expected 4 events from sessions 2-3, got %d", len(events))
	}
	for _, ev := range events {
		if ev.SessSeq == 1 {
			t.Error("session 1 should fall outside a lookback of 2")
		}
	}

	count, err := repo.DistinctSessionCount(ctx, "u1")
	if err != nil {
		t.Fatalf("distinct session count: %v", err)
	}
	if count != 3 {
		t.Errorf("distinct sessions = %d, want 3", count)
	}
}

func TestRecentAttemptsEmpty(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()

	events, err := repo.RecentAttempts(context.Background(), "nobody", 5)
	if err != nil {
		t.Fatalf("recent attempts: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("expected no events, got %d", len(events))
	}
}

func TestAppendPlan(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendPlan(ctx, PlanEventData{
		PlanID:      "plan-1",
		UserID:      "u1",
		QuestionIDs: []string{"q1", "q2"},
		Met:         []string{"total_count"},
		Relaxed:     []pack.RelaxedEntry{{Name: "llm_planning", Reason: "timeout"}},
		Valid:       false,
		Fallback:    true,
		Reasoning:   "",
	})
	if err != nil {
		t.Fatalf("append plan: %v", err)
	}

	row, err := s.Client().PlanEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query plan event: %v", err)
	}
	if row.PlanID != "plan-1" {
		t.Errorf("plan_id = %q, want plan-1", row.PlanID)
	}
	if !row.Fallback {
		t.Error("fallback flag not persisted")
	}
	if row.Relaxed == "[]" || row.Relaxed == "" {
		t.Errorf("relaxed entries not persisted: %q", row.Relaxed)
	}
}

func seedRows() []QuestionRow {
	return []QuestionRow{
		{QuestionID: "q1", Band: "Easy", Subcategory: "Arithmetic", TypeOfQuestion: "Percentages",
			CoreConcepts: []string{"percentage change"}, PYQFrequencyScore: 1.5, Topic: "Arithmetic", Active: true},
		{QuestionID: "q2", Band: "Medium", Subcategory: "Algebra", TypeOfQuestion: "Quadratics",
			CoreConcepts: []string{"roots"}, PYQFrequencyScore: 0.5, Topic: "Algebra", Active: true},
		{QuestionID: "q3", Band: "Hard", Subcategory: "Algebra", TypeOfQuestion: "Quadratics",
			CoreConcepts: []string{"roots"}, Topic: "Algebra", Active: true, Excluded: true},
		{QuestionID: "q4", Band: "Easy", Subcategory: "Geometry", TypeOfQuestion: "Circles",
			CoreConcepts: []string{"tangents"}, Topic: "Geometry", Active: false},
	}
}

func TestQuestionSeedAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.QuestionRepo()
	ctx := context.Background()

	n, err := repo.Seed(ctx, seedRows())
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if n != 4 {
		t.Errorf("seeded %d rows, want 4", n)
	}

	// Upsert: reseeding the same ID updates rather than duplicating.
	_, err = repo.Seed(ctx, []QuestionRow{{
		QuestionID: "q1", Band: "Medium", Subcategory: "Arithmetic", TypeOfQuestion: "Percentages",
		CoreConcepts: []string{"percentage change"}, PYQFrequencyScore: 1.5, Topic: "Arithmetic", Active: true,
	}})
	if err != nil {
		t.Fatalf("reseed: %v", err)
	}

	candidates, err := repo.ActiveCandidates(ctx)
	if err != nil {
		t.Fatalf("active candidates: %v", err)
	}
	// q3 is excluded and q4 inactive.
	if len(candidates) != 2 {
		t.Fatalf("expected 2 active candidates, got %d", len(candidates))
	}
	if candidates[0].QuestionID != "q1" || candidates[0].Band != pack.BandMedium {
		t.Errorf("upsert did not update q1: %+v", candidates[0])
	}

	bySub, err := repo.CandidatesBySubcategory(ctx, "Algebra")
	if err != nil {
		t.Fatalf("by subcategory: %v", err)
	}
	if len(bySub) != 1 || bySub[0].QuestionID != "q2" {
		t.Errorf("expected only q2 for Algebra, got %+v", bySub)
	}

	pairs, err := repo.ValidPairs(ctx)
	if err != nil {
		t.Fatalf("valid pairs: %v", err)
	}
	if !pairs["Arithmetic:Percentages"] || !pairs["Algebra:Quadratics"] {
		t.Errorf("missing expected pairs: %v", pairs)
	}
	if pairs["Geometry:Circles"] {
		t.Error("inactive question's pair should not be valid")
	}

	concepts, err := repo.KnownConcepts(ctx)
	if err != nil {
		t.Fatalf("known concepts: %v", err)
	}
	if !concepts["percentage change"] || !concepts["roots"] {
		t.Errorf("missing expected concepts: %v", concepts)
	}
}

func TestStudyPlanSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.StudyPlanRepo()
	ctx := context.Background()

	plan, err := repo.Latest(ctx, "u1")
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if plan != nil {
		t.Fatal("expected nil plan when none exist")
	}

	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	saved := &studyplan.Plan{
		UserID:    "u1",
		Track:     studyplan.TrackIntermediate,
		StartDate: start,
		Days: []studyplan.Day{{
			Day:  1,
			Date: start,
			Units: []studyplan.Unit{{
				Topic: "Arithmetic", Kind: studyplan.UnitPractice, TargetQuestions: 12,
			}},
		}},
	}
	if err := repo.Save(ctx, saved); err != nil {
		t.Fatalf("save: %v", err)
	}

	plan, err = repo.Latest(ctx, "u1")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if plan == nil {
		t.Fatal("expected a plan")
	}
	if plan.Track != studyplan.TrackIntermediate {
		t.Errorf("track = %s, want %s", plan.Track, studyplan.TrackIntermediate)
	}
	if len(plan.Days) != 1 || plan.Days[0].Units[0].Topic != "Arithmetic" {
		t.Errorf("days round-trip mismatch: %+v", plan.Days)
	}
}

func TestLLMUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	requests := []LLMRequestEventData{
		{Provider: "anthropic", Model: "m1", Purpose: "session-plan", Success: true, InputTokens: 100, OutputTokens: 50},
		{Provider: "anthropic", Model: "m1", Purpose: "session-plan", Success: false, ErrorMessage: "timeout"},
		{Provider: "openai", Model: "m2", Purpose: "smoke-test", Success: true, InputTokens: 10, OutputTokens: 5},
	}
	for i, req := range requests {
		if err := repo.AppendLLMRequest(ctx, req); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("expected 2 purposes, got %d", len(byPurpose))
	}
	for _, st := range byPurpose {
		if st.Purpose == "session-plan" {
			if st.Requests != 2 || st.Failures != 1 {
				t.Errorf("session-plan: %+v", st)
			}
			if st.InputTokens != 100 || st.OutputTokens != 50 {
				t.Errorf("session-plan tokens: %+v", st)
			}
		}
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 {
		t.Errorf("expected 2 models, got %d", len(byModel))
	}
}
