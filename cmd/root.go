// Package cmd wires the learnloop CLI.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/learnloop/learnloop/internal/grading"
	"github.com/learnloop/learnloop/internal/llm"
	"github.com/learnloop/learnloop/internal/store"
	"github.com/learnloop/learnloop/internal/teaching"
	"github.com/learnloop/learnloop/internal/tutor"
)

var rootCmd = &cobra.Command{
	Use:   "learnloop",
	Short: "AI tutor for middle school subjects",
	Long:  "Learnloop — AI tutoring that cycles each topic through teaching, assessment, transfer testing and remediation.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LEARNLOOP_DB env var)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then LEARNLOOP_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the database and loads the preset content on first run.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := store.Seed(cmd.Context(), st); err != nil {
		st.Close()
		return nil, fmt.Errorf("seed content: %w", err)
	}
	return st, nil
}

// buildOrchestrator assembles the tutoring pipeline on top of an open store.
// Without a configured provider every LLM call reports unavailable and the
// tutor degrades to its deterministic fallbacks.
func buildOrchestrator(ctx context.Context, st *store.Store) *tutor.Orchestrator {
	provider, err := llm.NewProviderFromEnv(ctx, st.Events())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "AI explanations will be unavailable, set LEARNLOOP_LLM_PROVIDER and an API key.")
		provider = llm.NewMockProvider()
	}

	return tutor.NewOrchestrator(
		st.Sessions(), st.Content(),
		teaching.NewService(provider), grading.NewEvaluator(provider),
		nil,
	)
}
