package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ssanyal/recruitdojo/internal/app"
	"github.com/ssanyal/recruitdojo/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "recruitdojo",
	Short: "Recruiter training dojo",
	Long:  "RecruitDojo scores recruiter sourcing challenges with deterministic validation, an AI coach and peer-calibrated feedback.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides RECRUITDOJO_DB env var)")
	rootCmd.PersistentFlags().StringP("player", "p", "", "Player name")

	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(hintCmd)
	rootCmd.AddCommand(challengesCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(calibrateCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then RECRUITDOJO_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openApp wires the full application for commands that need the scoring
// pipeline.
func openApp(cmd *cobra.Command) (*app.App, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	return app.New(cmd.Context(), app.Options{DBPath: dbPath})
}

// openStore opens only the persistence layer for commands that never
// touch an LLM.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	return store.Open(dbPath)
}

// playerName returns the --player flag, which most commands require.
func playerName(cmd *cobra.Command) (string, error) {
	name, _ := cmd.Flags().GetString("player")
	if name == "" {
		return "", errMissingPlayer
	}
	return name, nil
}
