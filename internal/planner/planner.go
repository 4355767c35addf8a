// Package planner orchestrates session packing: it reduces the candidate
// pool and learner state into a bounded LLM request, repairs or falls back
// on the response deterministically, and validates the assembled pack.
// Planning never fails hard: the caller always receives a pack, with the
// constraint report recording every degradation along the way.
package planner

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/catprep/internal/llm"
	"github.com/abhisek/catprep/internal/pack"
)

// DefaultTimeout is the hard wall-clock bound on the LLM call.
const DefaultTimeout = 15 * time.Second

const planMaxTokens = 512

const planSystemPrompt = `You select the next practice set for a CAT exam aspirant. You receive a candidate question pool with difficulty bands, coverage pairs, and historical-frequency scores, plus the learner's per-concept readiness and coverage debt. Pick exactly 12 question IDs from the candidates that satisfy every constraint, prioritizing high coverage debt pairs and weak concepts.`

// Planner builds session packs. Stateless and safe for concurrent use
// across users; per-(user, session) dedup is the serving layer's job.
type Planner struct {
	provider llm.Provider
	timeout  time.Duration
}

// New creates a Planner. A zero timeout selects DefaultTimeout.
func New(provider llm.Provider, timeout time.Duration) *Planner {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Planner{provider: provider, timeout: timeout}
}

// BuildPack runs one planning invocation. The returned pack always has as
// many questions as the pool allows (up to 12); the outcome and the pack's
// constraint report record whether the LLM or validation degraded.
func (p *Planner) BuildPack(ctx context.Context, in Inputs) (*pack.Pack, Outcome) {
	// BUILDING_PAYLOAD
	pl, relaxed := buildPayload(in)

	// AWAITING_LLM
	var outcome Outcome
	selection, reasoning, llmErr := p.invoke(ctx, pl)

	var questions []pack.QuestionCandidate
	if llmErr != nil {
		// LLM_FAILED: deterministic fallback, the first 12 candidates of
		// the flattened pool in their given order. The user always gets a
		// pack.
		questions = firstN(in.Pool, pack.Size)
		relaxed = append(relaxed, pack.RelaxedEntry{
			Name:   "llm_planning",
			Reason: llmErr.Error(),
		})
		outcome.Degraded = append(outcome.Degraded, StageLLM)
	} else {
		// LLM_SUCCEEDED: map IDs back to candidates, silently dropping any
		// not found in the pool, then fill deterministically.
		questions = resolveSelection(selection, in.Pool)
		outcome.Reasoning = reasoning
	}

	// PACK_ASSEMBLED
	result := &pack.Pack{
		PlanID:    uuid.NewString(),
		Questions: questions,
	}

	vr := pack.Validate(result.Questions, in.Pool, in.ValidPairs, in.KnownConcepts)
	outcome.Validation = vr

	if vr.Valid {
		outcome.State = StateValidated
	} else {
		// Return the pack anyway; the caller decides whether to retry or
		// serve with a warning. No second LLM attempt at this layer.
		outcome.State = StateValidationFailed
		outcome.Degraded = append(outcome.Degraded, StageValidation)
		relaxed = append(relaxed, pack.RelaxedEntry{
			Name:   "validation_constraints",
			Reason: summarizeErrors(vr.Errors),
		})
	}

	result.Report = pack.ConstraintReport{
		Met:     metConstraints(vr),
		Relaxed: relaxed,
	}
	return result, outcome
}

// invoke performs the bounded LLM call and parses the minimal response.
func (p *Planner) invoke(ctx context.Context, pl payload) ([]string, string, error) {
	body, err := json.Marshal(pl)
	if err != nil {
		return nil, "", fmt.Errorf("marshal payload: %w", err)
	}

	ctx = llm.WithPurpose(ctx, "session-plan")
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	resp, err := p.provider.Generate(ctx, llm.Request{
		System: planSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: string(body)},
		},
		Schema:    PlanSchema,
		MaxTokens: planMaxTokens,
	})
	if err != nil {
		return nil, "", err
	}

	var out planResponse
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, "", fmt.Errorf("parse plan response: %w", err)
	}
	return out.SelectedIDs, out.Reasoning, nil
}

// resolveSelection maps returned IDs to pool candidates, dropping unknown
// IDs and duplicates, then fills remaining slots from unused pool
// candidates in pool order until 12 is reached or the pool is exhausted.
func resolveSelection(ids []string, pool []pack.QuestionCandidate) []pack.QuestionCandidate {
	byID := make(map[string]pack.QuestionCandidate, len(pool))
	for _, q := range pool {
		byID[q.QuestionID] = q
	}

	used := make(map[string]bool, pack.Size)
	questions := make([]pack.QuestionCandidate, 0, pack.Size)
	for _, id := range ids {
		if len(questions) == pack.Size {
			break
		}
		q, ok := byID[id]
		if !ok || used[id] {
			continue
		}
		used[id] = true
		questions = append(questions, q)
	}

	for _, q := range pool {
		if len(questions) == pack.Size {
			break
		}
		if used[q.QuestionID] {
			continue
		}
		used[q.QuestionID] = true
		questions = append(questions, q)
	}

	return questions
}

func firstN(pool []pack.QuestionCandidate, n int) []pack.QuestionCandidate {
	if len(pool) < n {
		n = len(pool)
	}
	out := make([]pack.QuestionCandidate, n)
	copy(out, pool[:n])
	return out
}

// metConstraints lists the names of every constraint that passed, sorted
// for stable reports.
func metConstraints(vr pack.ValidationResult) []string {
	var met []string
	for name, c := range vr.Constraints {
		if c.Passed {
			met = append(met, name)
		}
	}
	sort.Strings(met)
	return met
}

// summarizeErrors keeps the report short: the first two error strings.
func summarizeErrors(errs []string) string {
	if len(errs) > 2 {
		errs = errs[:2]
	}
	summary := ""
	for i, e := range errs {
		if i > 0 {
			summary += "; "
		}
		summary += e
	}
	return summary
}
