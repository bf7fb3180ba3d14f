package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arima/quizdeck/internal/history"
)

var rootCmd = &cobra.Command{
	Use:   "quizdeck",
	Short: "Terminal quiz runner for certification prep",
	Long:  "Quizdeck — samples a randomized quiz from a question bank, grades the attempt, and shows per-topic diagnostics with a score trend.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite history database (overrides QUIZDECK_DB env var)")
	rootCmd.PersistentFlags().String("bank", "", "Question bank source: file path or HTTP URL (overrides QUIZDECK_BANK env var)")
	rootCmd.PersistentFlags().String("user", "", "Profile to start with (monika or geoff)")
	rootCmd.PersistentFlags().Int("count", 0, "Questions per attempt (default: whole bank)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then QUIZDECK_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, history.EnsureDir(p)
	}
	return history.DefaultDBPath()
}

// resolveBankSource returns the bank source using the --bank flag,
// then the QUIZDECK_BANK env var.
func resolveBankSource(cmd *cobra.Command) (string, error) {
	if s, _ := cmd.Flags().GetString("bank"); s != "" {
		return s, nil
	}
	if s := os.Getenv("QUIZDECK_BANK"); s != "" {
		return s, nil
	}
	return "", fmt.Errorf("no question bank: pass --bank or set QUIZDECK_BANK")
}
