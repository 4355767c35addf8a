package cmd

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/catprep/internal/llm"
	"github.com/abhisek/catprep/internal/store"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect LLM usage",
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregated LLM request counts and token usage",
	RunE: func(cmd *cobra.Command, args []string) error {
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
		byPurpose, err := st.EventRepo().LLMUsageByPurpose(ctx)
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}
		if len(byPurpose) == 0 {
			fmt.Println("No LLM usage recorded yet.")
			return nil
		}

		fmt.Println("Usage by Purpose")
		fmt.Println(strings.Repeat("─", 72))
		fmt.Printf("%-16s  %8s  %8s  %10s  %10s\n",
			"Purpose", "Requests", "Failures", "Input", "Output")
		fmt.Println(strings.Repeat("─", 72))

		var totalReq, totalIn, totalOut int
		for _, s := range byPurpose {
			fmt.Printf("%-16s  %8d  %8d  %10d  %10d\n",
				s.Purpose, s.Requests, s.Failures, s.InputTokens, s.OutputTokens)
			totalReq += s.Requests
			totalIn += s.InputTokens
			totalOut += s.OutputTokens
		}
		fmt.Println(strings.Repeat("─", 72))
		fmt.Printf("%-16s  %8d  %8s  %10d  %10d\n", "TOTAL", totalReq, "", totalIn, totalOut)

		byModel, err := st.EventRepo().LLMUsageByModel(ctx)
		if err != nil {
			return fmt.Errorf("query model usage: %w", err)
		}
		if len(byModel) > 0 {
			fmt.Println()
			fmt.Println("Usage by Model")
			fmt.Println(strings.Repeat("─", 72))
			fmt.Printf("%-32s  %8s  %10s  %10s\n", "Model", "Requests", "Input", "Output")
			fmt.Println(strings.Repeat("─", 72))
			for _, m := range byModel {
				model := m.Model
				if len(model) > 32 {
					model = model[:32]
				}
				fmt.Printf("%-32s  %8d  %10d  %10d\n",
					model, m.Requests, m.InputTokens, m.OutputTokens)
			}
		}
		return nil
	},
}

var llmTestCmd = &cobra.Command{
	Use:   "test",
	Short: "Send a minimal structured request to the configured provider",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := llm.ConfigFromEnv()
		if err := cfg.Validate(); err != nil {
			return err
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

		ctx := llm.WithPurpose(cmd.Context(), "smoke-test")
		provider, err := llm.NewProvider(ctx, cfg, st.EventRepo())
		if err != nil {
			return err
		}

		schema := &llm.Schema{
			Name:        "smoke-test",
			Description: "Connectivity check",
			Definition: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"ok": map[string]any{"type": "boolean"},
				},
				"required":             []any{"ok"},
				"additionalProperties": false,
			},
		}

		start := time.Now()
		resp, err := provider.Generate(ctx, llm.Request{
			System:    "You verify connectivity. Respond with ok=true.",
			Messages:  []llm.Message{{Role: llm.RoleUser, Content: "ping"}},
			Schema:    schema,
			MaxTokens: 32,
		})
		if err != nil {
			return fmt.Errorf("provider check failed: %w", err)
		}

		var out struct {
			OK bool `json:"ok"`
		}
		if err := json.Unmarshal(resp.Content, &out); err != nil {
			return fmt.Errorf("parse response: %w", err)
		}

		fmt.Printf("Provider:  %s\n", cfg.Provider)
		fmt.Printf("Model:     %s\n", resp.Model)
		fmt.Printf("Latency:   %s\n", time.Since(start).Round(time.Millisecond))
		fmt.Printf("Response:  ok=%v (%d in / %d out tokens)\n",
			out.OK, resp.Usage.InputTokens, resp.Usage.OutputTokens)
		return nil
	},
}

func init() {
	llmCmd.AddCommand(llmStatsCmd)
	llmCmd.AddCommand(llmTestCmd)
}
