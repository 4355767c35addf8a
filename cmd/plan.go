package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/catprep/internal/bank"
	"github.com/abhisek/catprep/internal/coverage"
	"github.com/abhisek/catprep/internal/llm"
	"github.com/abhisek/catprep/internal/pack"
	"github.com/abhisek/catprep/internal/planner"
	"github.com/abhisek/catprep/internal/readiness"
	"github.com/abhisek/catprep/internal/semid"
	"github.com/abhisek/catprep/internal/store"
)

// coldStartMinSessions is the distinct-session count below which planning
// runs in cold-start mode.
const coldStartMinSessions = 2

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Build the next 12-question practice pack for a user",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")
		lookback, _ := cmd.Flags().GetInt("lookback")
		dominancePath, _ := cmd.Flags().GetString("dominance")
		asJSON, _ := cmd.Flags().GetBool("json")

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
		eventRepo := st.EventRepo()

		qbank, err := bank.New(st.QuestionRepo())
		if err != nil {
			return err
		}
		pool, err := qbank.Pool(ctx)
		if err != nil {
			return err
		}
		if len(pool) == 0 {
			return fmt.Errorf("question bank is empty; run `catprep seed` first")
		}
		validPairs, err := qbank.ValidPairs(ctx)
		if err != nil {
			return err
		}
		knownConcepts, err := qbank.KnownConcepts(ctx)
		if err != nil {
			return err
		}

		events, err := eventRepo.RecentAttempts(ctx, userID, lookback)
		if err != nil {
			return err
		}
		sessions, err := eventRepo.DistinctSessionCount(ctx, userID)
		if err != nil {
			return err
		}

		// Every concept label the planner can encounter, from the bank and
		// from history, resolves to a stable semantic ID.
		labels := make(map[string]bool)
		for _, q := range pool {
			for _, c := range q.CoreConcepts {
				labels[c] = true
			}
		}
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
		debt := coverage.DebtBySessions(events, lookback)

		provider := buildProvider(ctx, eventRepo)
		p := planner.New(provider, llm.ConfigFromEnv().Timeout)

		result, outcome := p.BuildPack(ctx, planner.Inputs{
			UserID:        userID,
			Pool:          pool,
			Readiness:     levels,
			SemanticIDs:   semanticIDs,
			CoverageDebt:  debt,
			ValidPairs:    validPairs,
			KnownConcepts: knownConcepts,
			ColdStart:     sessions < coldStartMinSessions,
		})

		if err := eventRepo.AppendPlan(ctx, store.PlanEventData{
			PlanID:      result.PlanID,
			UserID:      userID,
			QuestionIDs: result.QuestionIDs(),
			Met:         result.Report.Met,
			Relaxed:     result.Report.Relaxed,
			Valid:       outcome.Validation.Valid,
			Fallback:    outcome.DegradedAt(planner.StageLLM),
			Reasoning:   outcome.Reasoning,
		}); err != nil {
			return fmt.Errorf("record plan: %w", err)
		}

		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		}

		printPack(result, outcome)
		return nil
	},
}

// buildProvider builds the LLM provider stack from the environment. A
// missing or invalid configuration degrades to an empty mock so planning
// still serves the deterministic fallback pack.
func buildProvider(ctx context.Context, eventRepo store.EventRepo) llm.Provider {
	cfg := llm.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Serving the deterministic fallback pack.")
		return llm.NewMockProvider()
	}
	provider, err := llm.NewProvider(ctx, cfg, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider unavailable:", err)
		return llm.NewMockProvider()
	}
	return provider
}

// loadDominance reads a JSON map of concept label to dominance (High,
// Medium, Low) and rekeys it by semantic ID. An empty path yields an empty
// map, which defaults every concept to the Medium weight.
func loadDominance(path string, semanticIDs map[string]string) (map[string]string, error) {
	dominance := make(map[string]string)
	if path == "" {
		return dominance, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dominance file: %w", err)
	}
	var byLabel map[string]string
	if err := json.Unmarshal(data, &byLabel); err != nil {
		return nil, fmt.Errorf("parse dominance file: %w", err)
	}

	for label, dom := range byLabel {
		if id, ok := semanticIDs[label]; ok {
			dominance[id] = dom
		}
	}
	return dominance, nil
}

func setToSlice(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	return out
}

func printPack(result *pack.Pack, outcome planner.Outcome) {
	fmt.Printf("Plan %s (%s)\n", result.PlanID, outcome.State)
	fmt.Println(strings.Repeat("─", 78))
	fmt.Printf("%-3s  %-20s  %-8s  %-28s  %s\n", "#", "Question", "Band", "Pair", "PYQ")
	fmt.Println(strings.Repeat("─", 78))
	for i, q := range result.Questions {
		fmt.Printf("%-3d  %-20s  %-8s  %-28s  %.1f\n",
			i+1, q.QuestionID, q.Band, q.Pair(), q.PYQFrequencyScore)
	}

	if outcome.Reasoning != "" {
		fmt.Printf("\nReasoning: %s\n", outcome.Reasoning)
	}

	fmt.Printf("\nConstraints met: %s\n", strings.Join(result.Report.Met, ", "))
	for _, r := range result.Report.Relaxed {
		fmt.Printf("Relaxed: %s (%s)\n", r.Name, r.Reason)
	}
}

func init() {
	planCmd.Flags().StringP("user", "u", "", "User ID to plan for")
	planCmd.Flags().Int("lookback", 5, "Trailing distinct sessions for readiness and coverage")
	planCmd.Flags().String("dominance", "", "JSON file mapping concept labels to dominance (High/Medium/Low)")
	planCmd.Flags().Bool("json", false, "Emit the pack as JSON")
}
