package summary

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/arima/quizdeck/internal/bank"
	"github.com/arima/quizdeck/internal/grading"
	"github.com/arima/quizdeck/internal/router"
	"github.com/arima/quizdeck/internal/screen"
)

func TestDedupeRecommendations(t *testing.T) {
	recs := []grading.Recommendation{
		{Topic: "DNS", LearnLink: "https://example.com/dns"},
		{Topic: "DNS", LearnLink: "https://example.com/dns"},
		{Topic: "DNS", LearnLink: "https://example.com/dns-deep"},
		{Topic: "VPC", LearnLink: "https://example.com/dns"},
	}

	got := dedupeRecommendations(recs)
	if len(got) != 3 {
		t.Fatalf("deduped length = %d, want 3", len(got))
	}
	if got[0].Topic != "DNS" || got[1].LearnLink != "https://example.com/dns-deep" || got[2].Topic != "VPC" {
		t.Errorf("unexpected order after dedupe: %+v", got)
	}
}

func TestRetakeSetSkipsPerfectTopics(t *testing.T) {
	questions := []bank.Question{
		{Type: bank.TypeSingle, Text: "q1", Topic: "DNS", Options: []string{"a", "b"}},
		{Type: bank.TypeSingle, Text: "q2", Topic: "VPC", Options: []string{"a", "b"}},
	}

	s := New(Options{
		Summary: grading.Summary{
			WeakestTopics: []grading.TopicReport{
				{Topic: "DNS", Accuracy: 100},
				{Topic: "VPC", Accuracy: 50},
			},
		},
		Bank:  questions,
		Count: 5,
	})

	got := s.retakeSet()
	for _, q := range got {
		if q.Topic == "DNS" {
			t.Errorf("retake set includes a topic already at 100%%: %+v", q)
		}
	}
	if len(got) != 1 {
		t.Errorf("retake set length = %d, want 1", len(got))
	}
}

func TestNoRetakeWithoutStarter(t *testing.T) {
	s := New(Options{
		Summary: grading.Summary{
			WeakestTopics: []grading.TopicReport{{Topic: "VPC", Accuracy: 50}},
		},
		Bank: []bank.Question{
			{Type: bank.TypeSingle, Text: "q", Topic: "VPC", Options: []string{"a"}},
		},
		Count: 1,
	})

	if s.canRetake() {
		t.Error("expected no retake when no starter is wired")
	}
	if _, cmd := s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"}); cmd != nil {
		t.Error("expected no command from 'r' without a starter")
	}
}

func TestEnterReturnsHome(t *testing.T) {
	s := New(Options{})

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command from enter")
	}
	if _, ok := cmd().(router.PopToRootMsg); !ok {
		t.Errorf("expected PopToRootMsg, got %T", cmd())
	}
}

func TestRetakeReplacesScreen(t *testing.T) {
	questions := []bank.Question{
		{Type: bank.TypeSingle, Text: "q", Topic: "VPC", Options: []string{"a", "b"}},
	}
	stub := &stubScreen{}

	s := New(Options{
		Summary: grading.Summary{
			WeakestTopics: []grading.TopicReport{{Topic: "VPC", Accuracy: 0}},
		},
		Bank:  questions,
		Count: 1,
		Start: func(retake []bank.Question) screen.Screen {
			if len(retake) != 1 {
				t.Errorf("retake length = %d, want 1", len(retake))
			}
			return stub
		},
	})

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	if cmd == nil {
		t.Fatal("expected a command from 'r'")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if msg.Screen != stub {
		t.Error("expected the starter's screen to be pushed")
	}
}

type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "" }
func (s *stubScreen) Title() string                           { return "stub" }
