package studyplan

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testQuestions(topic string, n int) []BankQuestion {
	qs := make([]BankQuestion, n)
	for i := range qs {
		qs[i] = BankQuestion{
			QuestionID: fmt.Sprintf("%s-q%02d", topic, i+1),
			Topic:      topic,
			Active:     true,
		}
	}
	return qs
}

func testInput() Input {
	questions := testQuestions("Arithmetic", 40)
	questions = append(questions, testQuestions("Algebra", 40)...)
	questions = append(questions, testQuestions("Geometry", 40)...)
	return Input{
		UserID:    "u1",
		Track:     TrackIntermediate,
		StartDate: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		Topics: []TopicState{
			{Topic: "Arithmetic", Mastery: 0.8},
			{Topic: "Algebra", Mastery: 0.2},
			{Topic: "Geometry", Mastery: 0.5},
		},
		Questions: questions,
	}
}

func TestGenerate_FullCalendar(t *testing.T) {
	plan, err := Generate(testInput())
	require.NoError(t, err)

	require.Len(t, plan.Days, PlanLengthDays)
	assert.Equal(t, 1, plan.Days[0].Day)
	assert.Equal(t, PlanLengthDays, plan.Days[len(plan.Days)-1].Day)

	// Intermediate: 120 minutes at 30 per unit.
	for _, day := range plan.Days {
		assert.Len(t, day.Units, 4, "day %d", day.Day)
	}

	// Dates advance one day at a time from the start date.
	start := plan.StartDate
	for i, day := range plan.Days {
		assert.Equal(t, start.AddDate(0, 0, i), day.Date, "day %d date", day.Day)
	}
}

func TestGenerate_WeakestTopicLeads(t *testing.T) {
	plan, err := Generate(testInput())
	require.NoError(t, err)

	// Algebra has the lowest mastery and must open the rotation.
	assert.Equal(t, "Algebra", plan.Days[0].Units[0].Topic)
}

func TestGenerate_MockEverySeventhDay(t *testing.T) {
	plan, err := Generate(testInput())
	require.NoError(t, err)

	for _, day := range plan.Days {
		isMockDay := day.Day%7 == 0
		hasMock := false
		for _, u := range day.Units {
			if u.Kind == UnitMock {
				hasMock = true
			}
		}
		assert.Equal(t, isMockDay, hasMock, "day %d", day.Day)
	}
}

func TestGenerate_MixSkewByMastery(t *testing.T) {
	plan, err := Generate(testInput())
	require.NoError(t, err)

	base := ConfigFor(TrackIntermediate).BaseMix
	for _, day := range plan.Days {
		for _, u := range day.Units {
			switch u.Topic {
			case "Algebra": // mastery 0.2: easier
				assert.InDelta(t, base.Easy+mixSkew, u.Mix.Easy, 1e-9)
				assert.InDelta(t, base.Hard-mixSkew, u.Mix.Hard, 1e-9)
			case "Arithmetic": // mastery 0.8: harder
				assert.InDelta(t, base.Easy-mixSkew, u.Mix.Easy, 1e-9)
				assert.InDelta(t, base.Hard+mixSkew, u.Mix.Hard, 1e-9)
			case "Geometry": // mastery 0.5: unchanged
				assert.Equal(t, base, u.Mix)
			}
		}
	}
}

func TestGenerate_UnitKindTargets(t *testing.T) {
	plan, err := Generate(testInput())
	require.NoError(t, err)

	perUnit := ConfigFor(TrackIntermediate).QuestionsPerUnit
	for _, day := range plan.Days {
		for _, u := range day.Units {
			switch u.Kind {
			case UnitRead:
				assert.Zero(t, u.TargetQuestions)
				assert.Empty(t, u.QuestionIDs)
			case UnitMock:
				assert.Equal(t, perUnit*2, u.TargetQuestions)
			case UnitPractice:
				assert.Equal(t, perUnit, u.TargetQuestions)
			}
		}
	}
}

func TestGenerate_ExcludedQuestionsNeverServed(t *testing.T) {
	in := testInput()
	in.Questions[0].Excluded = true
	in.Questions[1].Active = false

	plan, err := Generate(in)
	require.NoError(t, err)

	banned := map[string]bool{
		in.Questions[0].QuestionID: true,
		in.Questions[1].QuestionID: true,
	}
	for _, day := range plan.Days {
		for _, u := range day.Units {
			for _, id := range u.QuestionIDs {
				assert.False(t, banned[id], "banned question %s served on day %d", id, day.Day)
			}
		}
	}
}

func TestGenerate_HeldQuestionsFillShortage(t *testing.T) {
	// Only 3 questions for the topic, all answered correctly yesterday, so
	// none are fresh. Units still get questions from the held set.
	in := Input{
		UserID:    "u1",
		Track:     TrackBeginner,
		StartDate: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		Topics:    []TopicState{{Topic: "Arithmetic", Mastery: 0.5}},
		Questions: testQuestions("Arithmetic", 3),
		History: map[string]QuestionHistory{
			"Arithmetic-q01": {Attempts: 1, LastCorrect: true, LastAt: time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC)},
			"Arithmetic-q02": {Attempts: 1, LastCorrect: true, LastAt: time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC)},
			"Arithmetic-q03": {Attempts: 1, LastCorrect: true, LastAt: time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC)},
		},
	}

	plan, err := Generate(in)
	require.NoError(t, err)

	var practiceUnit *Unit
	for _, u := range plan.Days[0].Units {
		if u.Kind == UnitPractice {
			practiceUnit = &u
			break
		}
	}
	require.NotNil(t, practiceUnit, "expected a practice unit on day 1")
	assert.NotEmpty(t, practiceUnit.QuestionIDs, "held questions should fill the unit when no fresh ones exist")
}

func TestGenerate_InputValidation(t *testing.T) {
	in := testInput()
	in.UserID = ""
	_, err := Generate(in)
	assert.Error(t, err)

	in = testInput()
	in.Topics = nil
	_, err = Generate(in)
	assert.Error(t, err)
}

func TestGenerate_UnknownTrackDefaultsToIntermediate(t *testing.T) {
	in := testInput()
	in.Track = "Expert"

	plan, err := Generate(in)
	require.NoError(t, err)
	// Intermediate schedules 4 units per day.
	assert.Len(t, plan.Days[0].Units, 4)
}

func TestRetryIntervalDays(t *testing.T) {
	tests := []struct {
		attempt int
		correct bool
		want    int
	}{
		{1, true, 3},
		{2, true, 7},
		{3, true, 14},
		{9, true, 14}, // beyond the table uses the last entry
		{1, false, 1},
		{2, false, 3},
		{3, false, 10},
		{9, false, 10},
		{0, true, 3}, // clamped to the first attempt
	}
	for _, tt := range tests {
		got := RetryIntervalDays(tt.attempt, tt.correct)
		assert.Equal(t, tt.want, got, "attempt %d correct=%v", tt.attempt, tt.correct)
	}
}

func TestNextServeDate(t *testing.T) {
	last := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, last.AddDate(0, 0, 7), NextServeDate(last, 2, true))
	assert.Equal(t, last.AddDate(0, 0, 1), NextServeDate(last, 1, false))
}
