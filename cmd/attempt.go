package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/catprep/internal/store"
)

// attemptRecord is the import shape of one attempt. Question attributes are
// denormalized onto the record so readiness and coverage can be computed
// from the event stream alone.
type attemptRecord struct {
	UserID            string   `json:"user_id"`
	QuestionID        string   `json:"question_id"`
	Correct           bool     `json:"correct"`
	Skipped           bool     `json:"skipped"`
	ResponseTimeMs    int      `json:"response_time_ms"`
	SessSeq           int64    `json:"sess_seq"`
	Band              string   `json:"difficulty_band"`
	Subcategory       string   `json:"subcategory"`
	TypeOfQuestion    string   `json:"type_of_question"`
	CoreConcepts      []string `json:"core_concepts"`
	PYQFrequencyScore float64  `json:"pyq_frequency_score"`
}

var attemptCmd = &cobra.Command{
	Use:   "attempt <file>",
	Short: "Import attempt events from a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read attempts file: %w", err)
		}
		var records []attemptRecord
		if err := json.Unmarshal(data, &records); err != nil {
			return fmt.Errorf("parse attempts file: %w", err)
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
		repo := st.EventRepo()
		for i, rec := range records {
			if rec.UserID == "" || rec.QuestionID == "" {
				return fmt.Errorf("record %d: user_id and question_id are required", i)
			}
			err := repo.AppendAttempt(ctx, store.AttemptEventData{
				UserID:            rec.UserID,
				QuestionID:        rec.QuestionID,
				Correct:           rec.Correct,
				Skipped:           rec.Skipped,
				ResponseTimeMs:    rec.ResponseTimeMs,
				SessSeq:           rec.SessSeq,
				Band:              rec.Band,
				Subcategory:       rec.Subcategory,
				TypeOfQuestion:    rec.TypeOfQuestion,
				CoreConcepts:      rec.CoreConcepts,
				PYQFrequencyScore: rec.PYQFrequencyScore,
			})
			if err != nil {
				return fmt.Errorf("record %d: %w", i, err)
			}
		}

		fmt.Printf("Imported %d attempt events.\n", len(records))
		return nil
	},
}
