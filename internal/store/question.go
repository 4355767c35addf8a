package store

import (
	"context"
	"fmt"

	"github.com/abhisek/catprep/ent"
	"github.com/abhisek/catprep/ent/question"
	"github.com/abhisek/catprep/internal/pack"
	"github.com/abhisek/catprep/internal/studyplan"
)

// questionRepo implements QuestionRepo backed by ent.
type questionRepo struct {
	client *ent.Client
}

func (r *questionRepo) Seed(ctx context.Context, rows []QuestionRow) (int, error) {
	written := 0
	for _, row := range rows {
		topic := row.Topic
		if topic == "" {
			topic = row.Subcategory
		}

		err := r.client.Question.Create().
			SetQuestionID(row.QuestionID).
			SetDifficultyBand(row.Band).
			SetSubcategory(row.Subcategory).
			SetTypeOfQuestion(row.TypeOfQuestion).
			SetCoreConcepts(row.CoreConcepts).
			SetPyqFrequencyScore(row.PYQFrequencyScore).
			SetTopic(topic).
			SetActive(row.Active).
			SetExcluded(row.Excluded).
			OnConflictColumns(question.FieldQuestionID).
			UpdateNewValues().
			Exec(ctx)
		if err != nil {
			return written, fmt.Errorf("seed question %s: %w", row.QuestionID, err)
		}
		written++
	}
	return written, nil
}

func (r *questionRepo) ActiveCandidates(ctx context.Context) ([]pack.QuestionCandidate, error) {
	rows, err := r.client.Question.Query().
		Where(question.Active(true), question.Excluded(false)).
		Order(ent.Asc(question.FieldQuestionID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query active candidates: %w", err)
	}
	return toCandidates(rows), nil
}

func (r *questionRepo) CandidatesBySubcategory(ctx context.Context, subcategory string) ([]pack.QuestionCandidate, error) {
	rows, err := r.client.Question.Query().
		Where(
			question.Active(true),
			question.Excluded(false),
			question.Subcategory(subcategory),
		).
		Order(ent.Asc(question.FieldQuestionID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query candidates for %s: %w", subcategory, err)
	}
	return toCandidates(rows), nil
}

func (r *questionRepo) StudyQuestions(ctx context.Context) ([]studyplan.BankQuestion, error) {
	rows, err := r.client.Question.Query().
		Order(ent.Asc(question.FieldQuestionID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query study questions: %w", err)
	}

	out := make([]studyplan.BankQuestion, len(rows))
	for i, q := range rows {
		out[i] = studyplan.BankQuestion{
			QuestionID: q.QuestionID,
			Topic:      q.Topic,
			Active:     q.Active,
			Excluded:   q.Excluded,
		}
	}
	return out, nil
}

func (r *questionRepo) ValidPairs(ctx context.Context) (map[string]bool, error) {
	rows, err := r.client.Question.Query().
		Where(question.Active(true)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query pairs: %w", err)
	}

	pairs := make(map[string]bool)
	for _, q := range rows {
		pairs[pack.PairKey(q.Subcategory, q.TypeOfQuestion)] = true
	}
	return pairs, nil
}

func (r *questionRepo) KnownConcepts(ctx context.Context) (map[string]bool, error) {
	rows, err := r.client.Question.Query().
		Where(question.Active(true)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query concepts: %w", err)
	}

	concepts := make(map[string]bool)
	for _, q := range rows {
		for _, c := range q.CoreConcepts {
			concepts[c] = true
		}
	}
	return concepts, nil
}

func toCandidates(rows []*ent.Question) []pack.QuestionCandidate {
	out := make([]pack.QuestionCandidate, len(rows))
	for i, q := range rows {
		out[i] = pack.QuestionCandidate{
			QuestionID:        q.QuestionID,
			Band:              pack.Band(q.DifficultyBand),
			Subcategory:       q.Subcategory,
			TypeOfQuestion:    q.TypeOfQuestion,
			CoreConcepts:      q.CoreConcepts,
			PYQFrequencyScore: q.PyqFrequencyScore,
		}
	}
	return out
}
