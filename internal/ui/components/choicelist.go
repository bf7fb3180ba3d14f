package components

import (
	"fmt"
	"sort"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/arima/quizdeck/internal/ui/theme"
)

// ChoiceList is an option selector for quiz questions. In single mode
// enter submits the highlighted option; in multi mode space toggles
// options and enter submits the checked set.
type ChoiceList struct {
	Options   []string
	Multi     bool
	Cursor    int
	Submitted bool

	checked map[int]bool
}

// NewChoiceList creates a selector over the given options.
func NewChoiceList(options []string, multi bool) ChoiceList {
	return ChoiceList{
		Options: options,
		Multi:   multi,
		checked: make(map[int]bool),
	}
}

// Init returns nil.
func (c ChoiceList) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation, toggling and submission.
func (c ChoiceList) Update(msg tea.Msg) (ChoiceList, tea.Cmd) {
	if c.Submitted {
		return c, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
	case "space", " ":
		if c.Multi {
			c.checked[c.Cursor] = !c.checked[c.Cursor]
		}
	case "enter":
		if c.Multi && len(c.CheckedIndices()) == 0 {
			// Require at least one checked option before submitting.
			return c, nil
		}
		c.Submitted = true
	}

	return c, nil
}

// View renders the option list.
func (c ChoiceList) View() string {
	var s string
	for i, opt := range c.Options {
		cursor := "  "
		if i == c.Cursor && !c.Submitted {
			cursor = "▸ "
		}

		marker := ""
		if c.Multi {
			if c.checked[i] {
				marker = "[x] "
			} else {
				marker = "[ ] "
			}
		}

		line := fmt.Sprintf("%s%s%c)  %s", cursor, marker, 'A'+i, opt)

		switch {
		case c.Submitted && (c.checked[i] || (!c.Multi && i == c.Cursor)):
			s += theme.Selected.Render(line) + "\n"
		case i == c.Cursor && !c.Submitted:
			s += theme.Selected.Render(line) + "\n"
		case c.Multi && c.checked[i]:
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}
	return s
}

// SelectedIndex returns the highlighted option (single mode).
func (c ChoiceList) SelectedIndex() int {
	return c.Cursor
}

// CheckedIndices returns the toggled options in ascending order (multi mode).
func (c ChoiceList) CheckedIndices() []int {
	out := make([]int, 0, len(c.checked))
	for i, on := range c.checked {
		if on {
			out = append(out, i)
		}
	}
	sort.Ints(out)
	return out
}
