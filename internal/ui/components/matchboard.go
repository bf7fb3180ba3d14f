package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/arima/quizdeck/internal/ui/theme"
)

// Match is one committed left→right pairing.
type Match struct {
	Left  string
	Right string
}

// MatchBoard is the matching-question board. The user picks an item
// from the left column, then the target it belongs to on the right;
// committed pairs are listed below the columns. Enter on a fully
// matched board submits it.
type MatchBoard struct {
	Lefts     []string
	Rights    []string
	Cursor    int
	Submitted bool

	pickingRight bool
	pendingLeft  int
	matches      []Match
	usedLeft     map[int]bool
	usedRight    map[int]bool
}

// NewMatchBoard creates a board over the given columns. Rights should
// already be in display order (the caller shuffles them).
func NewMatchBoard(lefts, rights []string) MatchBoard {
	return MatchBoard{
		Lefts:       lefts,
		Rights:      rights,
		pendingLeft: -1,
		usedLeft:    make(map[int]bool),
		usedRight:   make(map[int]bool),
	}
}

// Init returns nil.
func (b MatchBoard) Init() tea.Cmd {
	return nil
}

// Picking reports whether a left item is selected and waiting for its
// target.
func (b MatchBoard) Picking() bool {
	return b.pickingRight
}

// Done reports whether every left item has been matched.
func (b MatchBoard) Done() bool {
	return len(b.matches) == len(b.Lefts)
}

// Matches returns the committed pairs in the order they were made.
func (b MatchBoard) Matches() []Match {
	out := make([]Match, len(b.matches))
	copy(out, b.matches)
	return out
}

// Update handles navigation, picking and undo.
func (b MatchBoard) Update(msg tea.Msg) (MatchBoard, tea.Cmd) {
	if b.Submitted {
		return b, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return b, nil
	}

	switch kmsg.String() {
	case "up", "k":
		b.Cursor = b.prevFree(b.Cursor)
	case "down", "j":
		b.Cursor = b.nextFree(b.Cursor)
	case "esc":
		if b.pickingRight {
			b.pickingRight = false
			b.pendingLeft = -1
			b.Cursor = b.firstFree(b.usedLeft, len(b.Lefts))
		}
	case "backspace", "u":
		b.undo()
	case "enter":
		b.pick()
	}

	return b, nil
}

func (b *MatchBoard) pick() {
	if b.Done() {
		b.Submitted = true
		return
	}

	if !b.pickingRight {
		if b.Cursor < 0 || b.Cursor >= len(b.Lefts) || b.usedLeft[b.Cursor] {
			return
		}
		b.pendingLeft = b.Cursor
		b.pickingRight = true
		b.Cursor = b.firstFree(b.usedRight, len(b.Rights))
		return
	}

	if b.Cursor < 0 || b.Cursor >= len(b.Rights) || b.usedRight[b.Cursor] {
		return
	}
	b.matches = append(b.matches, Match{
		Left:  b.Lefts[b.pendingLeft],
		Right: b.Rights[b.Cursor],
	})
	b.usedLeft[b.pendingLeft] = true
	b.usedRight[b.Cursor] = true
	b.pendingLeft = -1
	b.pickingRight = false
	b.Cursor = b.firstFree(b.usedLeft, len(b.Lefts))
}

func (b *MatchBoard) undo() {
	if len(b.matches) == 0 {
		return
	}
	last := b.matches[len(b.matches)-1]
	b.matches = b.matches[:len(b.matches)-1]
	for i, l := range b.Lefts {
		if l == last.Left && b.usedLeft[i] {
			delete(b.usedLeft, i)
			break
		}
	}
	for i, r := range b.Rights {
		if r == last.Right && b.usedRight[i] {
			delete(b.usedRight, i)
			break
		}
	}
	b.pickingRight = false
	b.pendingLeft = -1
	b.Cursor = b.firstFree(b.usedLeft, len(b.Lefts))
}

func (b MatchBoard) used() map[int]bool {
	if b.pickingRight {
		return b.usedRight
	}
	return b.usedLeft
}

func (b MatchBoard) column() int {
	if b.pickingRight {
		return len(b.Rights)
	}
	return len(b.Lefts)
}

func (b MatchBoard) firstFree(used map[int]bool, n int) int {
	for i := 0; i < n; i++ {
		if !used[i] {
			return i
		}
	}
	return 0
}

func (b MatchBoard) prevFree(from int) int {
	used := b.used()
	for i := from - 1; i >= 0; i-- {
		if !used[i] {
			return i
		}
	}
	return from
}

func (b MatchBoard) nextFree(from int) int {
	used := b.used()
	for i := from + 1; i < b.column(); i++ {
		if !used[i] {
			return i
		}
	}
	return from
}

// View renders the two columns and the committed pairs.
func (b MatchBoard) View() string {
	leftCol := theme.Subtitle.Align(lipgloss.Left).Render("Items") + "\n"
	for i, l := range b.Lefts {
		leftCol += b.renderItem(l, i, false) + "\n"
	}

	rightCol := theme.Subtitle.Align(lipgloss.Left).Render("Targets") + "\n"
	for i, r := range b.Rights {
		rightCol += b.renderItem(r, i, true) + "\n"
	}

	columns := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().MarginRight(6).Render(leftCol),
		rightCol,
	)

	s := columns
	if len(b.matches) > 0 {
		s += "\n" + theme.Hint.Render("Matched:") + "\n"
		for _, m := range b.matches {
			s += lipgloss.NewStyle().Foreground(theme.Secondary).
				Render("  "+m.Left+" → "+m.Right) + "\n"
		}
	}
	if b.Done() && !b.Submitted {
		s += "\n" + theme.Hint.Render("enter to submit, u to undo")
	}
	return s
}

func (b MatchBoard) renderItem(label string, i int, right bool) string {
	used := b.usedLeft
	active := !b.pickingRight
	if right {
		used = b.usedRight
		active = b.pickingRight
	}

	switch {
	case used[i]:
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render("    " + label)
	case !right && i == b.pendingLeft:
		return lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("  ● " + label)
	case active && i == b.Cursor && !b.Submitted && !b.Done():
		return theme.Selected.Render("  ▸ " + label)
	default:
		return "    " + theme.Unselected.Render(label)
	}
}
