package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/abhisek/catprep/ent"
	entplan "github.com/abhisek/catprep/ent/studyplan"
	"github.com/abhisek/catprep/internal/studyplan"
)

// studyPlanRepo implements StudyPlanRepo backed by ent. The day calendar is
// stored as one JSON document per plan; plans are written once and read
// whole, so there is nothing to gain from row-per-day storage.
type studyPlanRepo struct {
	client *ent.Client
}

func (r *studyPlanRepo) Save(ctx context.Context, plan *studyplan.Plan) error {
	days, err := json.Marshal(plan.Days)
	if err != nil {
		return fmt.Errorf("marshal plan days: %w", err)
	}

	_, err = r.client.StudyPlan.Create().
		SetUserID(plan.UserID).
		SetTrack(string(plan.Track)).
		SetStartDate(plan.StartDate).
		SetDays(string(days)).
		SetCreatedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save study plan: %w", err)
	}
	return nil
}

func (r *studyPlanRepo) Latest(ctx context.Context, userID string) (*studyplan.Plan, error) {
	row, err := r.client.StudyPlan.Query().
		Where(entplan.UserID(userID)).
		Order(ent.Desc(entplan.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest study plan: %w", err)
	}

	var days []studyplan.Day
	if err := json.Unmarshal([]byte(row.Days), &days); err != nil {
		return nil, fmt.Errorf("unmarshal plan days: %w", err)
	}

	return &studyplan.Plan{
		UserID:    row.UserID,
		Track:     studyplan.Track(row.Track),
		StartDate: row.StartDate,
		Days:      days,
	}, nil
}
