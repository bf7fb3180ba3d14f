package grading

import "github.com/arima/quizdeck/internal/bank"

// Response is what the presentation layer captured for one delivered
// question. It is a tagged union keyed by Kind; only the payload field
// matching Kind is meaningful. A zero Response (empty Kind) is the
// "no response" case and never matches any question.
type Response struct {
	Kind      bank.QuestionType
	Selected  int         // single: chosen option index
	Choices   []int       // multi: chosen option indices
	Pairs     []bank.Pair // dragdrop: submitted matches
	ElapsedMs int64       // optional per-item time, for display only
}

// Single builds a single-choice response.
func Single(selected int) Response {
	return Response{Kind: bank.TypeSingle, Selected: selected}
}

// Multi builds a multi-choice response.
func Multi(choices ...int) Response {
	return Response{Kind: bank.TypeMulti, Choices: choices}
}

// DragDrop builds a drag-match response.
func DragDrop(pairs []bank.Pair) Response {
	return Response{Kind: bank.TypeDragDrop, Pairs: pairs}
}

// MissDetail is one review-queue record for a missed item. Correct
// carries the gold answer; Given is nil when no response (or a
// type-mismatched one) was supplied, in which case no diff fields are
// populated either.
type MissDetail struct {
	Index      int
	QuestionID string // stable content hash, correlates recurrences across attempts
	Type       bank.QuestionType
	Question   string
	Topic      string
	LearnLink  string
	Correct    bank.AnswerKey
	Given      *Response

	// Diff detail, by question type.
	Missed     []int       // multi: answer indices not selected
	Extras     []int       // multi: selected indices not in the answer
	Mismatches []bank.Pair // dragdrop: symmetric difference of normalized pairs
}

// Band is the categorical mastery label derived from topic accuracy.
type Band string

const (
	BandExcellent  Band = "Excellent"
	BandStrong     Band = "Strong"
	BandDeveloping Band = "Developing"
	BandNeedsFocus Band = "Needs Focus"
)

// TopicReport aggregates one topic's results for a single attempt.
// LearnLinks holds the distinct remediation links of the topic's
// questions, in first-seen order.
type TopicReport struct {
	Topic      string
	Questions  int
	Correct    int
	Accuracy   int // rounded percent
	Mastery    Band
	LearnLinks []string
}

// Recommendation pairs a weak topic with one of its remediation links.
// The engine may emit duplicate (topic, link) pairs; consumers dedupe
// at render time.
type Recommendation struct {
	Topic     string
	LearnLink string
}

// Summary is the full diagnostic output of one grading pass. It is a
// derived, disposable value: recomputing it from the same inputs yields
// an identical result.
type Summary struct {
	Total           int
	Correct         int
	ScorePct        int
	TotalTimeMs     int64
	AvgTimeMs       int64
	ByTopic         []TopicReport
	WeakestTopics   []TopicReport
	Recommendations []Recommendation
	ReviewQueue     []MissDetail
}
