package studyplan

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// Mastery thresholds for skewing the difficulty mix per topic.
const (
	lowMasteryMax  = 0.3
	highMasteryMin = 0.7
	mixSkew        = 0.15
)

// mockEveryNDays inserts a mock unit on every Nth day.
const mockEveryNDays = 7

// TopicState is the latest mastery percentage for a topic, in [0,1].
type TopicState struct {
	Topic   string
	Mastery float64
}

// QuestionHistory is the per-question attempt summary used by the
// retry-interval rules.
type QuestionHistory struct {
	Attempts    int
	LastCorrect bool
	LastAt      time.Time
}

// BankQuestion is the study-plan view of a bank question.
type BankQuestion struct {
	QuestionID string
	Topic      string
	Active     bool
	Excluded   bool
}

// Input is everything Generate reads.
type Input struct {
	UserID    string
	Track     Track
	StartDate time.Time
	Topics    []TopicState
	Questions []BankQuestion
	History   map[string]QuestionHistory
}

// Generate lays out the 90-day plan. Topics rotate round-robin with the
// weakest mastery first; each practice-bearing unit gets questions selected
// under the retry-interval rules, falling back to any active non-excluded
// question for the topic when too few fresh ones exist. Insufficient
// questions never block unit generation.
func Generate(in Input) (*Plan, error) {
	if in.UserID == "" {
		return nil, fmt.Errorf("studyplan: user ID is required")
	}
	if len(in.Topics) == 0 {
		return nil, fmt.Errorf("studyplan: at least one topic is required")
	}

	cfg := ConfigFor(in.Track)
	unitsPerDay := cfg.DailyMinutes / cfg.MinutesPerUnit
	if unitsPerDay < 1 {
		unitsPerDay = 1
	}

	// Weakest topics come up first in the rotation.
	topics := make([]TopicState, len(in.Topics))
	copy(topics, in.Topics)
	sort.SliceStable(topics, func(i, j int) bool { return topics[i].Mastery < topics[j].Mastery })

	byTopic := make(map[string][]BankQuestion)
	for _, q := range in.Questions {
		if !q.Active || q.Excluded {
			continue
		}
		byTopic[q.Topic] = append(byTopic[q.Topic], q)
	}

	start := in.StartDate
	if start.IsZero() {
		start = time.Now().Truncate(24 * time.Hour)
	}

	plan := &Plan{
		UserID:    in.UserID,
		Track:     in.Track,
		StartDate: start,
		Days:      make([]Day, 0, PlanLengthDays),
	}

	rotation := 0
	for dayNum := 1; dayNum <= PlanLengthDays; dayNum++ {
		date := start.AddDate(0, 0, dayNum-1)
		day := Day{Day: dayNum, Date: date}

		for u := 0; u < unitsPerDay; u++ {
			topic := topics[rotation%len(topics)]
			rotation++

			kind := unitKindFor(dayNum, u)
			mix := adjustMix(cfg.BaseMix, topic.Mastery)
			target := targetQuestions(kind, cfg.QuestionsPerUnit)

			unit := Unit{
				Topic:           topic.Topic,
				Kind:            kind,
				TargetQuestions: target,
				Mix:             mix,
			}
			if target > 0 {
				unit.QuestionIDs = selectQuestions(byTopic[topic.Topic], in.History, date, target)
			}
			day.Units = append(day.Units, unit)
		}

		plan.Days = append(plan.Days, day)
	}

	return plan, nil
}

// unitKindFor cycles read → examples → practice → review across the
// calendar, with a mock unit leading every 7th day.
func unitKindFor(dayNum, unitIdx int) UnitKind {
	if dayNum%mockEveryNDays == 0 && unitIdx == 0 {
		return UnitMock
	}
	cycle := []UnitKind{UnitRead, UnitExamples, UnitPractice, UnitReview}
	return cycle[(dayNum+unitIdx)%len(cycle)]
}

// adjustMix skews the base difficulty mix by the topic's mastery: below
// 0.3 shifts weight from Hard to Easy, above 0.7 the reverse.
func adjustMix(base DifficultyMix, mastery float64) DifficultyMix {
	switch {
	case mastery < lowMasteryMax:
		return DifficultyMix{
			Easy:   clamp01(base.Easy + mixSkew),
			Medium: base.Medium,
			Hard:   clamp01(base.Hard - mixSkew),
		}
	case mastery > highMasteryMin:
		return DifficultyMix{
			Easy:   clamp01(base.Easy - mixSkew),
			Medium: base.Medium,
			Hard:   clamp01(base.Hard + mixSkew),
		}
	default:
		return base
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// targetQuestions sizes a unit by its kind. Reading units carry no
// questions; mocks double the per-unit budget.
func targetQuestions(kind UnitKind, perUnit int) int {
	switch kind {
	case UnitRead:
		return 0
	case UnitExamples:
		return perUnit / 3
	case UnitReview:
		return perUnit / 2
	case UnitMock:
		return perUnit * 2
	default:
		return perUnit
	}
}

// selectQuestions picks up to count questions for a topic on a given date.
// Fresh questions (never attempted, or past their retry interval) come
// first; if too few exist, any active non-excluded question fills the rest
// so unit generation is never blocked.
func selectQuestions(questions []BankQuestion, history map[string]QuestionHistory, date time.Time, count int) []string {
	var fresh, held []string
	for _, q := range questions {
		h, attempted := history[q.QuestionID]
		if !attempted || !date.Before(NextServeDate(h.LastAt, h.Attempts, h.LastCorrect)) {
			fresh = append(fresh, q.QuestionID)
		} else {
			held = append(held, q.QuestionID)
		}
	}

	selected := fresh
	if len(selected) < count {
		selected = append(selected, held...)
	}
	if len(selected) > count {
		selected = selected[:count]
	}
	return selected
}
