package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/catprep/internal/store"
)

var seedCmd = &cobra.Command{
	Use:   "seed <file>",
	Short: "Import or update question bank rows from a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read bank file: %w", err)
		}
		var rows []store.QuestionRow
		if err := json.Unmarshal(data, &rows); err != nil {
			return fmt.Errorf("parse bank file: %w", err)
		}

		for i, row := range rows {
			if row.QuestionID == "" {
				return fmt.Errorf("row %d: question_id is required", i)
			}
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

		written, err := st.QuestionRepo().Seed(cmd.Context(), rows)
		if err != nil {
			return err
		}

		fmt.Printf("Seeded %d questions.\n", written)
		return nil
	},
}
