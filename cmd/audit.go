package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/catprep/internal/bank"
	"github.com/abhisek/catprep/internal/pack"
	"github.com/abhisek/catprep/internal/store"
)

var auditCmd = &cobra.Command{
	Use:   "audit <file>",
	Short: "Validate an assembled pack (a JSON array of question IDs) against the bank",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read pack file: %w", err)
		}
		var ids []string
		if err := json.Unmarshal(data, &ids); err != nil {
			return fmt.Errorf("parse pack file: %w", err)
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
		qbank, err := bank.New(st.QuestionRepo())
		if err != nil {
			return err
		}
		pool, err := qbank.Pool(ctx)
		if err != nil {
			return err
		}
		validPairs, err := qbank.ValidPairs(ctx)
		if err != nil {
			return err
		}
		knownConcepts, err := qbank.KnownConcepts(ctx)
		if err != nil {
			return err
		}

		byID := make(map[string]pack.QuestionCandidate, len(pool))
		for _, q := range pool {
			byID[q.QuestionID] = q
		}

		// Unknown IDs still go through validation as empty candidates so the
		// pool-membership constraint reports them instead of a hard error.
		candidates := make([]pack.QuestionCandidate, len(ids))
		for i, id := range ids {
			if q, ok := byID[id]; ok {
				candidates[i] = q
			} else {
				candidates[i] = pack.QuestionCandidate{QuestionID: id}
			}
		}

		vr := pack.Validate(candidates, pool, validPairs, knownConcepts)

		names := make([]string, 0, len(vr.Constraints))
		for name := range vr.Constraints {
			names = append(names, name)
		}
		sort.Strings(names)

		fmt.Printf("%-24s  %-6s  %s\n", "Constraint", "Pass", "Detail")
		fmt.Println(strings.Repeat("─", 72))
		for _, name := range names {
			c := vr.Constraints[name]
			status := "✓"
			if !c.Passed {
				status = "✗"
			}
			fmt.Printf("%-24s  %-6s  %s\n", name, status, c.Detail)
		}

		fmt.Println()
		if vr.Valid {
			fmt.Println("Pack is valid.")
			return nil
		}
		fmt.Printf("Pack is invalid: %d error(s).\n", len(vr.Errors))
		for _, e := range vr.Errors {
			fmt.Printf("  - %s\n", e)
		}
		return nil
	},
}
