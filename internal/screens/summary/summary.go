package summary

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/arima/quizdeck/internal/bank"
	"github.com/arima/quizdeck/internal/grading"
	"github.com/arima/quizdeck/internal/history"
	"github.com/arima/quizdeck/internal/router"
	"github.com/arima/quizdeck/internal/sampler"
	"github.com/arima/quizdeck/internal/screen"
	"github.com/arima/quizdeck/internal/ui/components"
	"github.com/arima/quizdeck/internal/ui/layout"
	"github.com/arima/quizdeck/internal/ui/theme"
)

// The review list shows at most this many missed items.
const maxReviewShown = 25

// SummaryScreen shows the diagnostic report for a finished attempt.
type SummaryScreen struct {
	summary grading.Summary
	user    string
	repo    history.AttemptRepo
	bank    []bank.Question
	count   int

	// start builds the retake screen from a sampled subset. Injected
	// by the quiz package, which cannot be imported from here.
	start func(retake []bank.Question) screen.Screen
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// Options carries the finished attempt plus what a retake needs.
type Options struct {
	Summary grading.Summary
	User    string
	Repo    history.AttemptRepo
	Bank    []bank.Question
	Count   int
	Start   func(retake []bank.Question) screen.Screen
}

// New creates a new SummaryScreen.
func New(opts Options) *SummaryScreen {
	return &SummaryScreen{
		summary: opts.Summary,
		user:    opts.User,
		repo:    opts.Repo,
		bank:    opts.Bank,
		count:   opts.Count,
		start:   opts.Start,
	}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
	}
	if s.canRetake() {
		hints = append(hints, layout.KeyHint{Key: "R", Description: "Retake weak topics"})
	}
	return hints
}

func (s *SummaryScreen) canRetake() bool {
	return s.start != nil && len(s.retakeSet()) > 0
}

// retakeSet samples a fresh subset biased to the weakest topics.
func (s *SummaryScreen) retakeSet() []bank.Question {
	topics := make([]string, 0, len(s.summary.WeakestTopics))
	for _, tr := range s.summary.WeakestTopics {
		if tr.Accuracy < 100 {
			topics = append(topics, tr.Topic)
		}
	}
	return sampler.SampleWeak(s.bank, topics, s.count)
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "enter":
		return s, func() tea.Msg { return router.PopToRootMsg{} }
	case "r", "R":
		if !s.canRetake() {
			return s, nil
		}
		retake := s.retakeSet()
		next := s.start(retake)
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: next}
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Attempt complete"))
	b.WriteString("\n\n")

	// KPI row.
	totalSecs := sum.TotalTimeMs / 1000
	avgSecs := float64(sum.AvgTimeMs) / 1000
	kpis := fmt.Sprintf("Score: %d%%        Correct: %d/%d        Time: %d:%02d        Avg: %.1fs/question",
		sum.ScorePct, sum.Correct, sum.Total,
		totalSecs/60, totalSecs%60, avgSecs)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(kpis))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))

	// Per-topic accuracy bars, colored by mastery band.
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Topics")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	topicWidth := maxTopicWidth(sum.ByTopic)
	barWidth := min(width-8, 64)
	for _, tr := range sum.ByTopic {
		bar := components.ProgressBar{
			Label:       fmt.Sprintf("%-*s", topicWidth, tr.Topic),
			Percent:     float64(tr.Accuracy) / 100,
			ShowPercent: true,
			Width:       barWidth,
			FillColor:   bandColor(tr.Mastery),
		}
		line := bar.View() + "  " +
			lipgloss.NewStyle().Foreground(bandColor(tr.Mastery)).Render(string(tr.Mastery))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}

	// Recommendations, deduped per (topic, link).
	if recs := dedupeRecommendations(sum.Recommendations); len(recs) > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Focus next")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")
		for _, r := range recs {
			line := fmt.Sprintf("  %s — %s", r.Topic, r.LearnLink)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Accent).Render(line)))
			b.WriteString("\n")
		}
	}

	// Review queue.
	if len(sum.ReviewQueue) > 0 {
		b.WriteString("\n")
		header := fmt.Sprintf("Review (%d missed)", len(sum.ReviewQueue))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(header)))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")

		shown := sum.ReviewQueue
		if len(shown) > maxReviewShown {
			shown = shown[:maxReviewShown]
		}
		for _, miss := range shown {
			line := fmt.Sprintf("  %s  %s", miss.Topic, miss.Question)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Error).Render(line)))
			b.WriteString("\n")
		}
		if len(sum.ReviewQueue) > maxReviewShown {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				theme.Hint.Render(fmt.Sprintf("…and %d more", len(sum.ReviewQueue)-maxReviewShown))))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// dedupeRecommendations drops repeated (topic, link) pairs, keeping
// first-seen order.
func dedupeRecommendations(recs []grading.Recommendation) []grading.Recommendation {
	seen := make(map[string]bool, len(recs))
	out := make([]grading.Recommendation, 0, len(recs))
	for _, r := range recs {
		key := r.Topic + "|" + r.LearnLink
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, r)
	}
	return out
}

// bandColor returns the theme color for a mastery band.
func bandColor(band grading.Band) color.Color {
	switch band {
	case grading.BandExcellent:
		return theme.BandExcellent
	case grading.BandStrong:
		return theme.BandStrong
	case grading.BandDeveloping:
		return theme.BandDeveloping
	default:
		return theme.BandNeedsFocus
	}
}

func maxTopicWidth(topics []grading.TopicReport) int {
	w := 0
	for _, tr := range topics {
		if len(tr.Topic) > w {
			w = len(tr.Topic)
		}
	}
	return w
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
