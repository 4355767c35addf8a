package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/abhisek/catprep/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "catprep",
	Short: "Adaptive CAT practice session planner",
	Long:  "Catprep — adaptive session packing and study planning for CAT exam preparation, driven by attempt history and coverage debt.",
}

func Execute() error {
	// A local .env is a convenience for development; absence is not an error.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides CATPREP_DB env var)")

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(attemptCmd)
	rootCmd.AddCommand(auditCmd)
	rootCmd.AddCommand(readinessCmd)
	rootCmd.AddCommand(studyplanCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(llmCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then CATPREP_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
