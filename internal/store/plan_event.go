package store

import (
	"context"
	"encoding/json"
	"fmt"
)

func (r *eventRepo) AppendPlan(ctx context.Context, data PlanEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	relaxed, err := json.Marshal(data.Relaxed)
	if err != nil {
		return fmt.Errorf("marshal relaxed entries: %w", err)
	}

	builder := r.client.PlanEvent.Create().
		SetSequence(seqNum).
		SetPlanID(data.PlanID).
		SetUserID(data.UserID).
		SetQuestionIds(data.QuestionIDs).
		SetRelaxed(string(relaxed)).
		SetValid(data.Valid).
		SetFallback(data.Fallback).
		SetReasoning(data.Reasoning)

	if len(data.Met) > 0 {
		builder = builder.SetMet(data.Met)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save plan event: %w", err)
	}
	return nil
}
