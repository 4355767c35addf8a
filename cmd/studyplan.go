package cmd

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/catprep/internal/store"
	"github.com/abhisek/catprep/internal/studyplan"
)

// masteryLookback is the distinct-session window used to estimate per-topic
// mastery for study-plan generation.
const masteryLookback = 20

var studyplanCmd = &cobra.Command{
	Use:   "studyplan",
	Short: "Generate and inspect 90-day study plans",
}

var studyplanGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate and save a 90-day plan for a user",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")
		track, _ := cmd.Flags().GetString("track")
		startStr, _ := cmd.Flags().GetString("start")

		if userID == "" {
			return fmt.Errorf("--user is required")
		}

		start := time.Now().Truncate(24 * time.Hour)
		if startStr != "" {
			parsed, err := time.Parse("2006-01-02", startStr)
			if err != nil {
				return fmt.Errorf("invalid --start date %q: %w", startStr, err)
			}
			start = parsed
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		questions, err := st.QuestionRepo().StudyQuestions(ctx)
		if err != nil {
			return err
		}
		if len(questions) == 0 {
			return fmt.Errorf("question bank is empty; run `catprep seed` first")
		}

		topics, err := topicMastery(cmd, st, userID, questions)
		if err != nil {
			return err
		}

		plan, err := studyplan.Generate(studyplan.Input{
			UserID:    userID,
			Track:     studyplan.Track(track),
			StartDate: start,
			Topics:    topics,
			Questions: questions,
		})
		if err != nil {
			return err
		}

		if err := st.StudyPlanRepo().Save(ctx, plan); err != nil {
			return err
		}

		fmt.Printf("Saved %d-day plan for %s (track %s, starting %s).\n",
			len(plan.Days), plan.UserID, plan.Track, plan.StartDate.Format("2006-01-02"))
		return nil
	},
}

var studyplanShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the user's latest plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")
		dayNum, _ := cmd.Flags().GetInt("day")

		if userID == "" {
			return fmt.Errorf("--user is required")
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		plan, err := st.StudyPlanRepo().Latest(cmd.Context(), userID)
		if err != nil {
			return err
		}
		if plan == nil {
			fmt.Println("No plan found. Run `catprep studyplan generate` first.")
			return nil
		}

		fmt.Printf("Plan for %s, track %s, starting %s\n\n",
			plan.UserID, plan.Track, plan.StartDate.Format("2006-01-02"))

		for _, day := range plan.Days {
			if dayNum > 0 && day.Day != dayNum {
				continue
			}
			fmt.Printf("Day %d (%s)\n", day.Day, day.Date.Format("2006-01-02"))
			for _, unit := range day.Units {
				line := fmt.Sprintf("  %-9s %-24s", unit.Kind, unit.Topic)
				if unit.TargetQuestions > 0 {
					line += fmt.Sprintf("  %2d questions  E/M/H %.0f/%.0f/%.0f%%",
						unit.TargetQuestions,
						unit.Mix.Easy*100, unit.Mix.Medium*100, unit.Mix.Hard*100)
				}
				fmt.Println(line)
				if len(unit.QuestionIDs) > 0 && dayNum > 0 {
					fmt.Printf("            %s\n", strings.Join(unit.QuestionIDs, ", "))
				}
			}
		}
		return nil
	},
}

// topicMastery estimates per-topic mastery from recent attempt history as
// the correct fraction of non-skipped attempts. Topics without history
// default to 0.5, which leaves the track's base difficulty mix unchanged.
func topicMastery(cmd *cobra.Command, st *store.Store, userID string, questions []studyplan.BankQuestion) ([]studyplan.TopicState, error) {
	topicByQuestion := make(map[string]string, len(questions))
	topicSet := make(map[string]bool)
	for _, q := range questions {
		topicByQuestion[q.QuestionID] = q.Topic
		if q.Active && !q.Excluded {
			topicSet[q.Topic] = true
		}
	}

	events, err := st.EventRepo().RecentAttempts(cmd.Context(), userID, masteryLookback)
	if err != nil {
		return nil, err
	}

	type tally struct{ correct, total int }
	tallies := make(map[string]tally)
	for _, ev := range events {
		topic, ok := topicByQuestion[ev.QuestionID]
		if !ok || ev.Skipped {
			continue
		}
		t := tallies[topic]
		t.total++
		if ev.Correct {
			t.correct++
		}
		tallies[topic] = t
	}

	topics := make([]studyplan.TopicState, 0, len(topicSet))
	for topic := range topicSet {
		mastery := 0.5
		if t, ok := tallies[topic]; ok && t.total > 0 {
			mastery = float64(t.correct) / float64(t.total)
		}
		topics = append(topics, studyplan.TopicState{Topic: topic, Mastery: mastery})
	}
	sort.Slice(topics, func(i, j int) bool { return topics[i].Topic < topics[j].Topic })
	return topics, nil
}

func init() {
	studyplanGenerateCmd.Flags().StringP("user", "u", "", "User ID")
	studyplanGenerateCmd.Flags().String("track", "Intermediate", "Track: Beginner, Intermediate, or Good")
	studyplanGenerateCmd.Flags().String("start", "", "Start date (YYYY-MM-DD), defaults to today")

	studyplanShowCmd.Flags().StringP("user", "u", "", "User ID")
	studyplanShowCmd.Flags().Int("day", 0, "Show a single day with its question IDs")

	studyplanCmd.AddCommand(studyplanGenerateCmd)
	studyplanCmd.AddCommand(studyplanShowCmd)
}
