package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arima/quizdeck/internal/app"
	"github.com/arima/quizdeck/internal/bank"
	"github.com/arima/quizdeck/internal/history"
	"github.com/arima/quizdeck/internal/profile"
)

// runApp opens the history store, loads the bank, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := history.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open history store: %w", err)
	}
	defer st.Close()

	repo, err := st.AttemptRepo()
	if err != nil {
		return fmt.Errorf("attempt repo: %w", err)
	}

	source, err := resolveBankSource(cmd)
	if err != nil {
		return err
	}
	var loader bank.Loader
	questions, err := loader.Load(cmd.Context(), source)
	if err != nil {
		return fmt.Errorf("load bank: %w", err)
	}
	if len(questions) == 0 {
		return fmt.Errorf("bank %s has no questions", source)
	}

	user, _ := cmd.Flags().GetString("user")
	if user == "" {
		user = profile.Default
	}
	if !profile.Valid(user) {
		return fmt.Errorf("unknown profile %q (available: %v)", user, profile.Names)
	}

	count, _ := cmd.Flags().GetInt("count")

	return app.Run(app.Options{
		Bank:  questions,
		Repo:  repo,
		User:  user,
		Count: count,
	})
}
