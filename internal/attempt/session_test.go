package attempt

import (
	"testing"
	"time"

	"github.com/arima/quizdeck/internal/bank"
	"github.com/arima/quizdeck/internal/grading"
)

func twoQuestions() []bank.Question {
	return []bank.Question{
		{
			Type:    bank.TypeSingle,
			Text:    "q1",
			Topic:   "t",
			Options: []string{"a", "b"},
			Answer:  bank.AnswerKey{Indices: []int{0}},
		},
		{
			Type:    bank.TypeSingle,
			Text:    "q2",
			Topic:   "t",
			Options: []string{"a", "b"},
			Answer:  bank.AnswerKey{Indices: []int{1}},
		},
	}
}

func TestSessionWalk(t *testing.T) {
	s := New("monika", twoQuestions())

	if s.Done() {
		t.Fatal("fresh session reported done")
	}
	if got := s.Current(); got == nil || got.Text != "q1" {
		t.Fatalf("current = %v, want q1", got)
	}

	if more := s.Answer(grading.Single(0)); !more {
		t.Fatal("expected another question after q1")
	}
	if got := s.Current(); got == nil || got.Text != "q2" {
		t.Fatalf("current = %v, want q2", got)
	}

	if more := s.Answer(grading.Single(1)); more {
		t.Fatal("expected no more questions")
	}
	if !s.Done() || s.Current() != nil {
		t.Fatal("session should be done")
	}

	sum := s.Grade()
	if sum.Correct != 2 || sum.Total != 2 {
		t.Errorf("summary = %d/%d, want 2/2", sum.Correct, sum.Total)
	}
}

func TestSessionSkipGradesIncorrect(t *testing.T) {
	s := New("monika", twoQuestions())
	s.Skip()
	s.Answer(grading.Single(1))

	sum := s.Grade()
	if sum.Correct != 1 {
		t.Errorf("correct = %d, want 1 (skipped item incorrect)", sum.Correct)
	}
	if len(sum.ReviewQueue) != 1 || sum.ReviewQueue[0].Question != "q1" {
		t.Errorf("review queue = %+v, want the skipped q1", sum.ReviewQueue)
	}
}

func TestSessionUnansweredTailIsMissing(t *testing.T) {
	s := New("monika", twoQuestions())
	s.Answer(grading.Single(0))

	if got := len(s.Responses()); got != 1 {
		t.Fatalf("responses len = %d, want 1 (unanswered tail omitted)", got)
	}
	sum := s.Grade()
	if sum.Total != 2 || sum.Correct != 1 {
		t.Errorf("summary = %d/%d, want 1/2", sum.Correct, sum.Total)
	}
}

func TestSessionTimerStopIdempotent(t *testing.T) {
	s := New("geoff", twoQuestions())
	s.Tick(time.Second)
	s.Tick(time.Second)
	s.Stop()
	s.Stop() // second stop is a no-op
	s.Tick(time.Second)

	if got := s.Elapsed(); got != 2*time.Second {
		t.Errorf("elapsed = %v, want 2s (ticks after stop ignored)", got)
	}
}

func TestSessionIDsUnique(t *testing.T) {
	a := New("monika", nil)
	b := New("monika", nil)
	if a.ID == b.ID {
		t.Error("expected distinct session IDs")
	}
}
