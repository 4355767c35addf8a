// Package studyplan lays out a 90-day calendar of daily practice units per
// topic. It runs on its own cadence, independent of the per-session packer,
// with simpler spaced-repetition rules for question re-serving.
package studyplan

import "time"

// PlanLengthDays is the fixed plan horizon.
const PlanLengthDays = 90

// Track is the learner's preparation track.
type Track string

const (
	TrackBeginner     Track = "Beginner"
	TrackIntermediate Track = "Intermediate"
	TrackGood         Track = "Good"
)

// DifficultyMix is the fraction of questions per band; fractions sum to 1.
type DifficultyMix struct {
	Easy   float64 `json:"easy"`
	Medium float64 `json:"medium"`
	Hard   float64 `json:"hard"`
}

// TrackConfig fixes the daily time budget and base difficulty mix for a
// track.
type TrackConfig struct {
	DailyMinutes     int
	MinutesPerUnit   int
	QuestionsPerUnit int
	BaseMix          DifficultyMix
}

var trackConfigs = map[Track]TrackConfig{
	TrackBeginner: {
		DailyMinutes:     90,
		MinutesPerUnit:   30,
		QuestionsPerUnit: 10,
		BaseMix:          DifficultyMix{Easy: 0.50, Medium: 0.35, Hard: 0.15},
	},
	TrackIntermediate: {
		DailyMinutes:     120,
		MinutesPerUnit:   30,
		QuestionsPerUnit: 12,
		BaseMix:          DifficultyMix{Easy: 0.35, Medium: 0.45, Hard: 0.20},
	},
	TrackGood: {
		DailyMinutes:     150,
		MinutesPerUnit:   30,
		QuestionsPerUnit: 15,
		BaseMix:          DifficultyMix{Easy: 0.20, Medium: 0.45, Hard: 0.35},
	},
}

// ConfigFor returns the track config, defaulting unknown tracks to
// Intermediate.
func ConfigFor(track Track) TrackConfig {
	if cfg, ok := trackConfigs[track]; ok {
		return cfg
	}
	return trackConfigs[TrackIntermediate]
}

// UnitKind is the kind of practice unit on the calendar.
type UnitKind string

const (
	UnitRead     UnitKind = "read"
	UnitExamples UnitKind = "examples"
	UnitPractice UnitKind = "practice"
	UnitReview   UnitKind = "review"
	UnitMock     UnitKind = "mock"
)

// Unit is one practice unit: a topic, what to do with it, and how many
// questions to serve.
type Unit struct {
	Topic           string        `json:"topic"`
	Kind            UnitKind      `json:"kind"`
	TargetQuestions int           `json:"target_questions"`
	Mix             DifficultyMix `json:"mix"`
	QuestionIDs     []string      `json:"question_ids,omitempty"`
}

// Day is one calendar day of the plan.
type Day struct {
	Day   int       `json:"day"`
	Date  time.Time `json:"date"`
	Units []Unit    `json:"units"`
}

// Plan is the full 90-day calendar for one user.
type Plan struct {
	UserID    string    `json:"user_id"`
	Track     Track     `json:"track"`
	StartDate time.Time `json:"start_date"`
	Days      []Day     `json:"days"`
}
