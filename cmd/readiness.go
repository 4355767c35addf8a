package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/catprep/internal/readiness"
	"github.com/abhisek/catprep/internal/semid"
	"github.com/abhisek/catprep/internal/store"
)

var readinessCmd = &cobra.Command{
	Use:   "readiness",
	Short: "Show per-concept readiness for a user",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")
		lookback, _ := cmd.Flags().GetInt("lookback")
		dominancePath, _ := cmd.Flags().GetString("dominance")

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

		ctx := cmd.Context()
		events, err := st.EventRepo().RecentAttempts(ctx, userID, lookback)
		if err != nil {
			return err
		}
		if len(events) == 0 {
			fmt.Println("No attempts in the lookback window.")
			return nil
		}

		labels := make(map[string]bool)
		for _, ev := range events {
			for _, c := range ev.CoreConcepts {
				labels[c] = true
			}
		}
		semanticIDs := semid.MapLabels(setToSlice(labels))

		dominance, err := loadDominance(dominancePath, semanticIDs)
		if err != nil {
			return err
		}
		weights, err := readiness.WeightsFromDominance(dominance, readiness.DefaultConfidenceThreshold)
		if err != nil {
			return err
		}

		counts := readiness.ComputeWeightedCounts(events, weights.Weights, semanticIDs)
		levels := readiness.FinalizeReadiness(counts)

		labelByID := make(map[string]string, len(semanticIDs))
		for label, id := range semanticIDs {
			labelByID[id] = label
		}

		ids := make([]string, 0, len(levels))
		for id := range levels {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool { return labelByID[ids[i]] < labelByID[ids[j]] })

		fmt.Printf("%-28s  %-14s  %-10s  %8s  %8s  %8s\n",
			"Concept", "ID", "Level", "Correct", "Wrong", "Skipped")
		fmt.Println(strings.Repeat("─", 88))
		for _, id := range ids {
			c := counts[id]
			fmt.Printf("%-28s  %-14s  %-10s  %8.2f  %8.2f  %8.2f\n",
				labelByID[id], id, levels[id], c.Correct, c.Wrong, c.Skipped)
		}
		return nil
	},
}

func init() {
	readinessCmd.Flags().StringP("user", "u", "", "User ID")
	readinessCmd.Flags().Int("lookback", 5, "Trailing distinct sessions to aggregate")
	readinessCmd.Flags().String("dominance", "", "JSON file mapping concept labels to dominance (High/Medium/Low)")
}
