// Package attempt holds the state of one run-through of a sampled
// question subset, from start to summary. Session replaces the
// original tool's pile of globals with an explicit value owned by
// whichever screen drives the delivery loop; nothing here is shared
// across attempts.
package attempt

import (
	"time"

	"github.com/google/uuid"

	"github.com/arima/quizdeck/internal/bank"
	"github.com/arima/quizdeck/internal/grading"
)

// Session is one in-flight attempt: the delivered questions, the
// responses collected so far (positional, 1:1 with questions), and the
// accumulated elapsed time. It lives only until a summary is produced.
type Session struct {
	ID        string
	User      string
	Questions []bank.Question

	responses []grading.Response
	answered  []bool
	current   int

	elapsed time.Duration
	stopped bool
}

// New creates a session for the given user over an already-sampled
// question sequence.
func New(user string, questions []bank.Question) *Session {
	return &Session{
		ID:        uuid.New().String(),
		User:      user,
		Questions: questions,
		responses: make([]grading.Response, len(questions)),
		answered:  make([]bool, len(questions)),
	}
}

// Current returns the question awaiting a response, or nil when the
// session is complete.
func (s *Session) Current() *bank.Question {
	if s.current >= len(s.Questions) {
		return nil
	}
	return &s.Questions[s.current]
}

// Index returns the zero-based position of the current question.
func (s *Session) Index() int {
	return s.current
}

// Answer records the response for the current question and advances.
// It reports whether another question remains.
func (s *Session) Answer(r grading.Response) bool {
	if s.current >= len(s.Questions) {
		return false
	}
	s.responses[s.current] = r
	s.answered[s.current] = true
	s.current++
	return s.current < len(s.Questions)
}

// Skip advances past the current question without a response; it will
// grade as incorrect.
func (s *Session) Skip() bool {
	if s.current >= len(s.Questions) {
		return false
	}
	s.current++
	return s.current < len(s.Questions)
}

// Done reports whether every question has been passed.
func (s *Session) Done() bool {
	return s.current >= len(s.Questions)
}

// Tick adds one timer interval to the elapsed total. Ticks after Stop
// are ignored.
func (s *Session) Tick(d time.Duration) {
	if s.stopped {
		return
	}
	s.elapsed += d
}

// Stop freezes the elapsed time. Stopping an already-stopped session
// is a no-op.
func (s *Session) Stop() {
	s.stopped = true
}

// Elapsed returns the accumulated attempt time.
func (s *Session) Elapsed() time.Duration {
	return s.elapsed
}

// Responses returns the positional responses captured so far, truncated
// at the last answered question so unanswered tail items grade as
// missing rather than as zero-value picks.
func (s *Session) Responses() []grading.Response {
	n := 0
	for i, ok := range s.answered {
		if ok {
			n = i + 1
		}
	}
	return s.responses[:n]
}

// Grade stops the timer and produces the summary for this session.
func (s *Session) Grade() grading.Summary {
	s.Stop()
	return grading.GradeAttempt(s.Questions, s.Responses(), s.elapsed)
}
