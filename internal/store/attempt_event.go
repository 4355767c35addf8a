package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/abhisek/catprep/ent"
	"github.com/abhisek/catprep/ent/attemptevent"
	"github.com/abhisek/catprep/internal/attempt"
	"github.com/abhisek/catprep/internal/pack"
)

// eventRepo implements EventRepo backed by ent and the global sequence
// counter.
type eventRepo struct {
	client *ent.Client
	db     *sql.DB
	seq    *sequenceCounter
}

func (r *eventRepo) AppendAttempt(ctx context.Context, data AttemptEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetUserID(data.UserID).
		SetQuestionID(data.QuestionID).
		SetCorrect(data.Correct).
		SetSkipped(data.Skipped).
		SetResponseTimeMs(data.ResponseTimeMs).
		SetSessSeq(data.SessSeq).
		SetDifficultyBand(data.Band).
		SetSubcategory(data.Subcategory).
		SetTypeOfQuestion(data.TypeOfQuestion).
		SetCoreConcepts(data.CoreConcepts).
		SetPyqFrequencyScore(data.PYQFrequencyScore).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentAttempts(ctx context.Context, userID string, sessionsLookback int) ([]attempt.Event, error) {
	if sessionsLookback <= 0 {
		return nil, nil
	}

	// The window is the most recent N distinct session numbers, not a
	// fixed count of events. ent has no DISTINCT+LIMIT combinator, so the
	// window itself comes from raw SQL.
	rows, err := r.db.QueryContext(ctx,
		`SELECT DISTINCT sess_seq FROM attempt_events WHERE user_id = ? ORDER BY sess_seq DESC LIMIT ?`,
		userID, sessionsLookback,
	)
	if err != nil {
		return nil, fmt.Errorf("query session window: %w", err)
	}
	defer rows.Close()

	var window []int64
	for rows.Next() {
		var seq int64
		if err := rows.Scan(&seq); err != nil {
			return nil, fmt.Errorf("scan session window: %w", err)
		}
		window = append(window, seq)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate session window: %w", err)
	}
	if len(window) == 0 {
		return nil, nil
	}

	events, err := r.client.AttemptEvent.Query().
		Where(
			attemptevent.UserID(userID),
			attemptevent.SessSeqIn(window...),
		).
		Order(ent.Asc(attemptevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent attempts: %w", err)
	}

	out := make([]attempt.Event, len(events))
	for i, ev := range events {
		out[i] = attempt.Event{
			QuestionID:        ev.QuestionID,
			Correct:           ev.Correct,
			Skipped:           ev.Skipped,
			ResponseTimeMs:    ev.ResponseTimeMs,
			SessSeq:           ev.SessSeq,
			Band:              pack.Band(ev.DifficultyBand),
			Subcategory:       ev.Subcategory,
			TypeOfQuestion:    ev.TypeOfQuestion,
			CoreConcepts:      ev.CoreConcepts,
			PYQFrequencyScore: ev.PyqFrequencyScore,
		}
	}
	return out, nil
}

func (r *eventRepo) DistinctSessionCount(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(DISTINCT sess_seq) FROM attempt_events WHERE user_id = ?`,
		userID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count distinct sessions: %w", err)
	}
	return count, nil
}
