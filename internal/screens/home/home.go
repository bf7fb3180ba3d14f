package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/arima/quizdeck/internal/bank"
	"github.com/arima/quizdeck/internal/history"
	"github.com/arima/quizdeck/internal/profile"
	"github.com/arima/quizdeck/internal/router"
	"github.com/arima/quizdeck/internal/sampler"
	"github.com/arima/quizdeck/internal/screen"
	historyscreen "github.com/arima/quizdeck/internal/screens/history"
	"github.com/arima/quizdeck/internal/screens/quiz"
	"github.com/arima/quizdeck/internal/ui/components"
	"github.com/arima/quizdeck/internal/ui/layout"
	"github.com/arima/quizdeck/internal/ui/theme"
)

// HomeScreen is the main screen: profile picker, quiz size and menu.
type HomeScreen struct {
	bank  []bank.Question
	repo  history.AttemptRepo
	user  string
	count int

	menu         components.Menu
	countInput   components.TextInput
	editingCount bool
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)
var _ screen.EscInterceptor = (*HomeScreen)(nil)

// Options carries the home screen dependencies.
type Options struct {
	Bank  []bank.Question
	Repo  history.AttemptRepo
	User  string
	Count int
}

// New creates a new HomeScreen.
func New(opts Options) *HomeScreen {
	h := &HomeScreen{
		bank:  opts.Bank,
		repo:  opts.Repo,
		user:  opts.User,
		count: opts.Count,
	}
	if !profile.Valid(h.user) {
		h.user = profile.Default
	}
	if h.count <= 0 || h.count > len(h.bank) {
		h.count = len(h.bank)
	}
	h.menu = components.NewMenu(h.menuItems())
	return h
}

func (h *HomeScreen) menuItems() []components.MenuItem {
	return []components.MenuItem{
		{Label: "Start Quiz", Action: func() tea.Cmd {
			return h.startQuiz()
		}},
		{Label: fmt.Sprintf("Questions: %d", h.count), Hint: "enter to change", Action: func() tea.Cmd {
			h.editingCount = true
			h.countInput = components.NewTextInput(fmt.Sprintf("%d", h.count), true, 3)
			return h.countInput.Init()
		}},
		{Label: "History", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: historyscreen.New(h.repo, h.user),
				}
			}
		}},
		{Label: "Quit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
}

func (h *HomeScreen) startQuiz() tea.Cmd {
	questions := sampler.Sample(h.bank, h.count)
	if len(questions) == 0 {
		return nil
	}
	return func() tea.Msg {
		return router.PushScreenMsg{
			Screen: quiz.New(quiz.Options{
				User:      h.user,
				Repo:      h.repo,
				Bank:      h.bank,
				Questions: questions,
				Count:     h.count,
			}),
		}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) InterceptEsc() bool {
	return h.editingCount
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	if h.editingCount {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Set"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Tab", Description: "Switch profile"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if h.editingCount {
		return h.updateCountInput(msg)
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "tab" {
		h.user = profile.Next(h.user)
		user := h.user
		return h, func() tea.Msg { return profile.ChangedMsg{Name: user} }
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) updateCountInput(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			h.editingCount = false
			return h, nil
		case "enter":
			if n, err := h.countInput.NumericValue(); err == nil && n > 0 {
				if n > len(h.bank) {
					n = len(h.bank)
				}
				h.count = n
				sel := h.menu.Selected
				h.menu = components.NewMenu(h.menuItems())
				h.menu.Selected = sel
			}
			h.editingCount = false
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.countInput, cmd = h.countInput.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n\n")
	b.WriteString(theme.Title.Width(width).Render("Quizdeck"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Interactive self-assessment"))
	b.WriteString("\n\n")

	// Profile picker.
	var tabs []string
	for _, name := range profile.Names {
		style := lipgloss.NewStyle().Foreground(theme.TextDim).Padding(0, 2)
		if name == h.user {
			style = lipgloss.NewStyle().
				Foreground(profile.Color(name)).
				Bold(true).
				Padding(0, 2).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(profile.Color(name))
		}
		tabs = append(tabs, style.Render(name))
	}
	picker := lipgloss.JoinHorizontal(lipgloss.Center, tabs...)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, picker))
	b.WriteString("\n\n")

	if h.editingCount {
		prompt := theme.Body.Render("How many questions? ") + h.countInput.View()
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, prompt))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render(fmt.Sprintf("1–%d available", len(h.bank)))))
		b.WriteString("\n")
	} else {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d questions in the bank", len(h.bank))))

	return b.String()
}
