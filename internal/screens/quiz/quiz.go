package quiz

import (
	"context"
	"math/rand"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/arima/quizdeck/internal/attempt"
	"github.com/arima/quizdeck/internal/bank"
	"github.com/arima/quizdeck/internal/grading"
	"github.com/arima/quizdeck/internal/history"
	"github.com/arima/quizdeck/internal/router"
	"github.com/arima/quizdeck/internal/screen"
	"github.com/arima/quizdeck/internal/screens/summary"
	"github.com/arima/quizdeck/internal/ui/components"
	"github.com/arima/quizdeck/internal/ui/layout"
)

// QuizScreen runs one attempt: it walks the sampled questions, collects
// a response per question and hands the session off for grading.
type QuizScreen struct {
	session *attempt.Session
	user    string
	repo    history.AttemptRepo
	bank    []bank.Question
	count   int

	choices       components.ChoiceList
	board         components.MatchBoard
	questionStart time.Time

	showingQuitConfirm bool
	finished           bool
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.EscInterceptor = (*QuizScreen)(nil)

// Options carries the quiz screen dependencies. Bank is the full
// question set, kept so the summary screen can build retake subsets.
type Options struct {
	User      string
	Repo      history.AttemptRepo
	Bank      []bank.Question
	Questions []bank.Question
	Count     int
}

// New creates a quiz screen over an already-sampled question sequence.
func New(opts Options) *QuizScreen {
	s := &QuizScreen{
		session: attempt.New(opts.User, opts.Questions),
		user:    opts.User,
		repo:    opts.Repo,
		bank:    opts.Bank,
		count:   opts.Count,
	}
	s.setupWidget()
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	s.questionStart = time.Now()
	return tickCmd()
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) InterceptEsc() bool {
	return true
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.showingQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End attempt"},
			{Key: "N", Description: "Keep going"},
		}
	}

	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
	}
	if q := s.session.Current(); q != nil {
		switch q.Type {
		case bank.TypeMulti:
			hints = append(hints, layout.KeyHint{Key: "Space", Description: "Toggle"})
		case bank.TypeDragDrop:
			hints = append(hints, layout.KeyHint{Key: "U", Description: "Undo match"})
		}
	}
	return append(hints,
		layout.KeyHint{Key: "Enter", Description: "Submit"},
		layout.KeyHint{Key: "S", Description: "Skip"},
		layout.KeyHint{Key: "Esc", Description: "End"},
	)
}

// setupWidget rebuilds the input widget for the current question.
func (s *QuizScreen) setupWidget() {
	q := s.session.Current()
	if q == nil {
		return
	}
	switch q.Type {
	case bank.TypeDragDrop:
		lefts := make([]string, 0, len(q.Pairs))
		rights := make([]string, 0, len(q.Pairs))
		for _, p := range q.Pairs {
			lefts = append(lefts, p.Left)
			rights = append(rights, p.Right)
		}
		rand.Shuffle(len(rights), func(i, j int) {
			rights[i], rights[j] = rights[j], rights[i]
		})
		s.board = components.NewMatchBoard(lefts, rights)
	default:
		s.choices = components.NewChoiceList(q.Options, q.Type == bank.TypeMulti)
	}
	s.questionStart = time.Now()
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		if s.finished {
			return s, nil
		}
		s.session.Tick(time.Second)
		return s, tickCmd()

	case finishMsg:
		return s.finish()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.finished {
		return s, nil
	}

	if s.showingQuitConfirm {
		switch msg.String() {
		case "y", "Y":
			s.showingQuitConfirm = false
			return s, func() tea.Msg { return finishMsg{} }
		case "n", "N", "esc":
			s.showingQuitConfirm = false
		}
		return s, nil
	}

	q := s.session.Current()
	if q == nil {
		return s, nil
	}

	switch msg.String() {
	case "esc":
		// A pending match pick cancels before the attempt does.
		if q.Type == bank.TypeDragDrop && s.board.Picking() {
			s.board, _ = s.board.Update(msg)
			return s, nil
		}
		s.showingQuitConfirm = true
		return s, nil
	case "s", "S":
		if s.session.Skip() {
			s.setupWidget()
			return s, nil
		}
		return s, func() tea.Msg { return finishMsg{} }
	}

	return s.updateWidget(msg)
}

func (s *QuizScreen) updateWidget(msg tea.Msg) (screen.Screen, tea.Cmd) {
	q := s.session.Current()

	var cmd tea.Cmd
	if q.Type == bank.TypeDragDrop {
		s.board, cmd = s.board.Update(msg)
		if s.board.Submitted {
			return s.record(s.boardResponse())
		}
		return s, cmd
	}

	s.choices, cmd = s.choices.Update(msg)
	if s.choices.Submitted {
		if q.Type == bank.TypeMulti {
			return s.record(grading.Multi(s.choices.CheckedIndices()...))
		}
		return s.record(grading.Single(s.choices.SelectedIndex()))
	}
	return s, cmd
}

func (s *QuizScreen) boardResponse() grading.Response {
	matches := s.board.Matches()
	pairs := make([]bank.Pair, 0, len(matches))
	for _, m := range matches {
		pairs = append(pairs, bank.Pair{Left: m.Left, Right: m.Right})
	}
	return grading.DragDrop(pairs)
}

// record stores the response with its per-question time and advances.
func (s *QuizScreen) record(r grading.Response) (screen.Screen, tea.Cmd) {
	r.ElapsedMs = time.Since(s.questionStart).Milliseconds()
	if s.session.Answer(r) {
		s.setupWidget()
		return s, nil
	}
	return s, func() tea.Msg { return finishMsg{} }
}

// finish grades the attempt, records it and swaps in the summary.
func (s *QuizScreen) finish() (screen.Screen, tea.Cmd) {
	s.finished = true
	result := s.session.Grade()

	// History write is best effort; a broken database should not keep
	// the learner from seeing their summary.
	if s.repo != nil {
		_ = s.repo.Append(context.Background(), s.user, history.Entry{
			AttemptID:    s.session.ID,
			Score:        result.Correct,
			Total:        result.Total,
			DurationSecs: int(s.session.Elapsed().Seconds()),
		})
	}

	sum := summary.New(summary.Options{
		Summary: result,
		User:    s.user,
		Repo:    s.repo,
		Bank:    s.bank,
		Count:   s.count,
		Start: func(retake []bank.Question) screen.Screen {
			return New(Options{
				User:      s.user,
				Repo:      s.repo,
				Bank:      s.bank,
				Questions: retake,
				Count:     s.count,
			})
		},
	})
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: sum}
	}
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
