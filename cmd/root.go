package cmd

import (
	"github.com/cardwise/cardwise/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cardwise",
	Short: "Adaptive spaced-repetition scheduler",
	Long:  "Cardwise schedules study items with an SM-2 variant that adapts to answer time, error rate, content difficulty, and measured retention.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides CARDWISE_DB env var)")
	rootCmd.PersistentFlags().String("user", "default", "Learner the command acts for")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(dueCmd)
	rootCmd.AddCommand(upcomingCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(analyzeCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then CARDWISE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the store for a command invocation. Callers must Close.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	path, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	return store.Open(path)
}

func userID(cmd *cobra.Command) string {
	u, _ := cmd.Flags().GetString("user")
	return u
}
