package quiz

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/arima/quizdeck/internal/bank"
	"github.com/arima/quizdeck/internal/history"
	"github.com/arima/quizdeck/internal/router"
	"github.com/arima/quizdeck/internal/screen"
)

// mockRepo implements history.AttemptRepo for testing.
type mockRepo struct {
	appended []history.Entry
	users    []string
}

func (m *mockRepo) Append(_ context.Context, user string, e history.Entry) error {
	m.appended = append(m.appended, e)
	m.users = append(m.users, user)
	return nil
}

func (m *mockRepo) List(_ context.Context, _ string, _ history.QueryOpts) ([]history.Entry, error) {
	return nil, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func twoSingles() []bank.Question {
	return []bank.Question{
		{
			Type: bank.TypeSingle, Text: "first", Topic: "DNS",
			Options: []string{"a", "b"},
			Answer:  bank.AnswerKey{Indices: []int{1}},
		},
		{
			Type: bank.TypeSingle, Text: "second", Topic: "VPC",
			Options: []string{"a", "b"},
			Answer:  bank.AnswerKey{Indices: []int{0}},
		},
	}
}

// drive sends a message and follows any command-produced message back
// into the screen, returning the final screen and last command.
func drive(t *testing.T, s screen.Screen, msg tea.Msg) (screen.Screen, tea.Cmd) {
	t.Helper()
	next, cmd := s.Update(msg)
	for cmd != nil {
		out := cmd()
		switch out.(type) {
		case finishMsg:
			next, cmd = next.Update(out)
		default:
			return next, func() tea.Msg { return out }
		}
	}
	return next, nil
}

func TestFullAttemptRecordsHistoryAndShowsSummary(t *testing.T) {
	repo := &mockRepo{}
	questions := twoSingles()
	s := New(Options{
		User:      "monika",
		Repo:      repo,
		Bank:      questions,
		Questions: questions,
		Count:     2,
	})

	// First question: move to option b (correct) and submit.
	var cur screen.Screen = s
	cur, _ = cur.Update(keyPress('j'))
	cur, cmd := cur.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Fatalf("expected no command mid-attempt, got %v", cmd())
	}

	// Second question: submit option a (correct); the attempt finishes.
	cur, cmd = drive(t, cur, specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a navigation command after the last answer")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Fatalf("expected ReplaceScreenMsg to the summary, got %T", cmd())
	}

	if len(repo.appended) != 1 {
		t.Fatalf("appended entries = %d, want 1", len(repo.appended))
	}
	entry := repo.appended[0]
	if entry.Score != 2 || entry.Total != 2 {
		t.Errorf("recorded %d/%d, want 2/2", entry.Score, entry.Total)
	}
	if repo.users[0] != "monika" {
		t.Errorf("recorded user %q, want monika", repo.users[0])
	}
	if entry.AttemptID == "" {
		t.Error("expected a non-empty attempt ID")
	}
}

func TestSkipGradesIncorrect(t *testing.T) {
	repo := &mockRepo{}
	questions := twoSingles()
	s := New(Options{User: "geoff", Repo: repo, Bank: questions, Questions: questions, Count: 2})

	var cur screen.Screen = s
	// Skip the first question, answer the second correctly.
	cur, _ = cur.Update(keyPress('s'))
	_, cmd := drive(t, cur, specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a navigation command after the last question")
	}

	if len(repo.appended) != 1 {
		t.Fatalf("appended entries = %d, want 1", len(repo.appended))
	}
	if got := repo.appended[0]; got.Score != 1 || got.Total != 2 {
		t.Errorf("recorded %d/%d, want 1/2", got.Score, got.Total)
	}
}

func TestQuitConfirmEndsEarly(t *testing.T) {
	repo := &mockRepo{}
	questions := twoSingles()
	s := New(Options{User: "monika", Repo: repo, Bank: questions, Questions: questions, Count: 2})

	var cur screen.Screen = s
	cur, _ = cur.Update(specialKey(tea.KeyEscape))
	qs := cur.(*QuizScreen)
	if !qs.showingQuitConfirm {
		t.Fatal("expected quit confirmation after esc")
	}

	// n resumes.
	cur, _ = cur.Update(keyPress('n'))
	if cur.(*QuizScreen).showingQuitConfirm {
		t.Fatal("expected n to dismiss the confirmation")
	}

	// Esc then y ends the attempt with nothing answered.
	cur, _ = cur.Update(specialKey(tea.KeyEscape))
	_, cmd := drive(t, cur, keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a navigation command after ending early")
	}
	if got := repo.appended[0]; got.Score != 0 || got.Total != 2 {
		t.Errorf("recorded %d/%d, want 0/2", got.Score, got.Total)
	}
}

func TestTimerStopsAtFinish(t *testing.T) {
	questions := twoSingles()
	s := New(Options{User: "monika", Questions: questions, Bank: questions, Count: 2})

	s.session.Tick(time.Second)
	s.session.Tick(time.Second)

	var cur screen.Screen = s
	cur, _ = cur.Update(specialKey(tea.KeyEscape))
	cur, _ = drive(t, cur, keyPress('y'))

	// Ticks after finishing must not move the clock.
	s.Update(timerTickMsg(time.Now()))
	if got := s.session.Elapsed(); got != 2*time.Second {
		t.Errorf("elapsed = %v, want 2s after stop", got)
	}
	_ = cur
}
