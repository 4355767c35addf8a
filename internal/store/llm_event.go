package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetErrorMessage(data.ErrorMessage).
		SetRequestBody(data.RequestBody).
		SetResponseBody(data.ResponseBody).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT purpose,
		       COUNT(*),
		       SUM(CASE WHEN success THEN 0 ELSE 1 END),
		       COALESCE(SUM(input_tokens), 0),
		       COALESCE(SUM(output_tokens), 0)
		FROM llm_request_events
		GROUP BY purpose
		ORDER BY purpose`)
	if err != nil {
		return nil, fmt.Errorf("query LLM usage by purpose: %w", err)
	}
	defer rows.Close()

	var stats []LLMUsageStats
	for rows.Next() {
		var s LLMUsageStats
		if err := rows.Scan(&s.Purpose, &s.Requests, &s.Failures, &s.InputTokens, &s.OutputTokens); err != nil {
			return nil, fmt.Errorf("scan LLM usage: %w", err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func (r *eventRepo) LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT model,
		       COUNT(*),
		       COALESCE(SUM(input_tokens), 0),
		       COALESCE(SUM(output_tokens), 0)
		FROM llm_request_events
		GROUP BY model
		ORDER BY model`)
	if err != nil {
		return nil, fmt.Errorf("query LLM usage by model: %w", err)
	}
	defer rows.Close()

	var stats []LLMModelUsage
	for rows.Next() {
		var s LLMModelUsage
		if err := rows.Scan(&s.Model, &s.Requests, &s.InputTokens, &s.OutputTokens); err != nil {
			return nil, fmt.Errorf("scan LLM model usage: %w", err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}
