package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/arima/quizdeck/internal/bank"
	"github.com/arima/quizdeck/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	if s.showingQuitConfirm {
		return s.renderQuitConfirm(width)
	}

	q := s.session.Current()
	if q == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Scoring...")
	}

	var b strings.Builder

	// Progress and timer line.
	elapsed := s.session.Elapsed()
	timerStr := fmt.Sprintf("%d:%02d",
		int(elapsed.Minutes()), int(elapsed.Seconds())%60)

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Topic: %s", q.Topic))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Q %d/%d  %s",
			s.session.Index()+1, len(s.session.Questions), timerStr))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Border).
		Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	// Question text, with the bank's internal disambiguator stripped.
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(bank.DisplayText(q)))
	b.WriteString("\n")
	if q.Type == bank.TypeMulti {
		b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).
			Render("Select all that apply"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Input area.
	var widget string
	if q.Type == bank.TypeDragDrop {
		widget = s.board.View()
	} else {
		widget = s.choices.View()
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, widget))

	return b.String()
}

func (s *QuizScreen) renderQuitConfirm(width int) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Accent).
		Padding(1, 3).
		Render(
			theme.Body.Bold(true).Render("End this attempt?") + "\n\n" +
				theme.Hint.Render("Answered questions will be scored as-is.\n") +
				theme.Body.Render("Y") + theme.Hint.Render(" end  ") +
				theme.Body.Render("N") + theme.Hint.Render(" keep going"),
		)
	return "\n\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, box)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
