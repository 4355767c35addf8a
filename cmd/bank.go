package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/catprep/internal/bank"
	"github.com/abhisek/catprep/internal/pack"
	"github.com/abhisek/catprep/internal/store"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Inspect the question bank",
	RunE: func(cmd *cobra.Command, args []string) error {
		subcategory, _ := cmd.Flags().GetString("subcategory")

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
		qbank, err := bank.New(st.QuestionRepo())
		if err != nil {
			return err
		}

		var pool []pack.QuestionCandidate
		if subcategory != "" {
			pool, err = qbank.PoolBySubcategory(ctx, subcategory)
		} else {
			pool, err = qbank.Pool(ctx)
		}
		if err != nil {
			return err
		}

		if len(pool) == 0 {
			fmt.Println("No active questions found.")
			return nil
		}

		fmt.Printf("%-20s  %-8s  %-28s  %5s  %s\n", "Question", "Band", "Pair", "PYQ", "Concepts")
		fmt.Println(strings.Repeat("─", 96))
		for _, q := range pool {
			fmt.Printf("%-20s  %-8s  %-28s  %5.1f  %s\n",
				q.QuestionID, q.Band, q.Pair(), q.PYQFrequencyScore,
				strings.Join(q.CoreConcepts, ", "))
		}
		fmt.Printf("\n%d questions.\n", len(pool))
		return nil
	},
}

func init() {
	bankCmd.Flags().StringP("subcategory", "s", "", "Filter by subcategory")
}
