package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arima/quizdeck/internal/history"
	"github.com/arima/quizdeck/internal/profile"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print attempt history for a profile",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		user, _ := cmd.Flags().GetString("user")
		if user == "" {
			user = profile.Default
		}
		if !profile.Valid(user) {
			return fmt.Errorf("unknown profile %q (available: %v)", user, profile.Names)
		}

		entries, err := repo.List(cmd.Context(), user, history.QueryOpts{})
		if err != nil {
			return fmt.Errorf("list history: %w", err)
		}
		if len(entries) == 0 {
			fmt.Printf("No attempts yet for %s.\n", user)
			return nil
		}

		fmt.Printf("Attempts for %s:\n\n", user)
		fmt.Printf("  %-20s  %7s  %6s  %8s  %s\n", "DATE", "SCORE", "PCT", "DURATION", "TREND")
		prevPct := -1
		for _, e := range entries {
			pct := 0
			if e.Total > 0 {
				pct = e.Score * 100 / e.Total
			}

			trend := " "
			if prevPct >= 0 {
				switch {
				case pct > prevPct:
					trend = "↑"
				case pct < prevPct:
					trend = "↓"
				default:
					trend = "="
				}
			}
			prevPct = pct

			fmt.Printf("  %-20s  %3d/%-3d  %4d%%  %5d:%02d  %s\n",
				e.Timestamp.Format("Jan 02, 2006 15:04"),
				e.Score, e.Total, pct,
				e.DurationSecs/60, e.DurationSecs%60, trend)
		}
		return nil
	},
}
