package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/arima/quizdeck/internal/history"
	"github.com/arima/quizdeck/internal/profile"
	"github.com/arima/quizdeck/internal/screen"
	"github.com/arima/quizdeck/internal/ui/components"
	"github.com/arima/quizdeck/internal/ui/layout"
	"github.com/arima/quizdeck/internal/ui/theme"
)

type historyLoadedMsg struct {
	Entries []history.Entry
	Err     error
}

// HistoryScreen shows the active profile's past attempts as a trend.
type HistoryScreen struct {
	repo    history.AttemptRepo
	user    string
	entries []history.Entry
	loaded  bool
	errMsg  string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen for one profile.
func New(repo history.AttemptRepo, user string) *HistoryScreen {
	return &HistoryScreen{
		repo: repo,
		user: user,
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		entries, err := s.repo.List(context.Background(), s.user, history.QueryOpts{Limit: 50})
		return historyLoadedMsg{Entries: entries, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(historyLoadedMsg); ok {
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.entries = msg.Entries
		}
		s.loaded = true
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.entries) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render(fmt.Sprintf("\n\n  No attempts yet for %s. Take a quiz!", s.user))
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(profile.Color(s.user)).
		Bold(true).
		Render(fmt.Sprintf("%s — %d attempts", s.user, len(s.entries))))
	b.WriteString("\n\n")

	barWidth := min(width-8, 56)
	for _, e := range s.entries {
		dateStr := e.Timestamp.Format("Jan 02, 2006 15:04")
		mins := e.DurationSecs / 60
		secs := e.DurationSecs % 60

		var pct float64
		if e.Total > 0 {
			pct = float64(e.Score) / float64(e.Total)
		}

		bar := components.ProgressBar{
			Percent:   pct,
			Width:     barWidth - 30,
			FillColor: profile.Color(s.user),
		}

		line := fmt.Sprintf("%s  %2d/%-2d  %s  %d:%02d",
			dateStr, e.Score, e.Total, bar.View(), mins, secs)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
