package grading

import (
	"reflect"
	"testing"
	"time"

	"github.com/arima/quizdeck/internal/bank"
)

func singleQ(topic, text, link string, answer int) bank.Question {
	return bank.Question{
		Type:      bank.TypeSingle,
		Text:      text,
		Topic:     topic,
		Options:   []string{"a", "b", "c", "d"},
		Answer:    bank.AnswerKey{Indices: []int{answer}},
		LearnLink: link,
	}
}

func multiQ(topic, text, link string, answer ...int) bank.Question {
	return bank.Question{
		Type:      bank.TypeMulti,
		Text:      text,
		Topic:     topic,
		Options:   []string{"a", "b", "c", "d"},
		Answer:    bank.AnswerKey{Indices: answer},
		LearnLink: link,
	}
}

func dragQ(topic, text, link string, pairs []bank.Pair) bank.Question {
	return bank.Question{
		Type:      bank.TypeDragDrop,
		Text:      text,
		Topic:     topic,
		Pairs:     pairs,
		Answer:    bank.AnswerKey{Pairs: pairs},
		LearnLink: link,
	}
}

func TestGradeSingle(t *testing.T) {
	q := []bank.Question{singleQ("t", "q1", "l", 2)}

	tests := []struct {
		name      string
		responses []Response
		correct   bool
	}{
		{"exact match", []Response{Single(2)}, true},
		{"wrong index", []Response{Single(1)}, false},
		{"zero-value response", []Response{{}}, false},
		{"missing response", nil, false},
		{"type mismatch", []Response{Multi(2)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := GradeAttempt(q, tt.responses, 0)
			if got := s.Correct == 1; got != tt.correct {
				t.Errorf("correct = %v, want %v", got, tt.correct)
			}
		})
	}
}

func TestGradeSingleAbsentResponseNeverMatchesIndexZero(t *testing.T) {
	// A missing response must not be read as "selected 0".
	q := []bank.Question{singleQ("t", "q1", "l", 0)}
	s := GradeAttempt(q, []Response{{}}, 0)
	if s.Correct != 0 {
		t.Fatal("zero-value response matched answer index 0")
	}
}

func TestGradeSingleMissDetailRecordsBothValues(t *testing.T) {
	q := []bank.Question{singleQ("t", "q1", "l", 2)}
	s := GradeAttempt(q, []Response{Single(0)}, 0)

	if len(s.ReviewQueue) != 1 {
		t.Fatalf("review queue len = %d, want 1", len(s.ReviewQueue))
	}
	d := s.ReviewQueue[0]
	if d.Correct.Indices[0] != 2 {
		t.Errorf("detail correct = %v, want [2]", d.Correct.Indices)
	}
	if d.Given == nil || d.Given.Selected != 0 {
		t.Errorf("detail given = %+v, want selected 0", d.Given)
	}
	if d.QuestionID != bank.QuestionID(&q[0]) {
		t.Errorf("detail question ID = %q, want the content hash", d.QuestionID)
	}
}

func TestGradeMultiSetEquality(t *testing.T) {
	q := []bank.Question{multiQ("t", "q1", "l", 0, 2)}

	tests := []struct {
		name    string
		resp    Response
		correct bool
		missed  []int
		extras  []int
	}{
		{"exact", Multi(0, 2), true, nil, nil},
		{"order independent", Multi(2, 0), true, nil, nil},
		{"extra pick", Multi(0, 2, 1), false, nil, []int{1}},
		{"missing pick", Multi(0), false, []int{2}, nil},
		{"disjoint", Multi(1, 3), false, []int{0, 2}, []int{1, 3}},
		{"empty", Multi(), false, []int{0, 2}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := GradeAttempt(q, []Response{tt.resp}, 0)
			if (s.Correct == 1) != tt.correct {
				t.Fatalf("correct = %d, want correct=%v", s.Correct, tt.correct)
			}
			if tt.correct {
				return
			}
			d := s.ReviewQueue[0]
			if !reflect.DeepEqual(d.Missed, tt.missed) {
				t.Errorf("missed = %v, want %v", d.Missed, tt.missed)
			}
			if !reflect.DeepEqual(d.Extras, tt.extras) {
				t.Errorf("extras = %v, want %v", d.Extras, tt.extras)
			}
		})
	}
}

func TestGradeDragDropNormalization(t *testing.T) {
	gold := []bank.Pair{
		{Left: " A ", Right: "x"},
		{Left: "B", Right: "y"},
	}
	q := []bank.Question{dragQ("t", "q1", "l", gold)}

	// Reordered and un-trimmed submission still matches.
	resp := DragDrop([]bank.Pair{
		{Left: "B", Right: "y"},
		{Left: "A", Right: "x"},
	})
	s := GradeAttempt(q, []Response{resp}, 0)
	if s.Correct != 1 {
		t.Fatalf("normalized pairs should match, got correct=%d", s.Correct)
	}
}

func TestGradeDragDropMismatches(t *testing.T) {
	gold := []bank.Pair{
		{Left: "A", Right: "x"},
		{Left: "B", Right: "y"},
	}
	q := []bank.Question{dragQ("t", "q1", "l", gold)}

	resp := DragDrop([]bank.Pair{
		{Left: "A", Right: "x"},
		{Left: "B", Right: "z"}, // wrong target
	})
	s := GradeAttempt(q, []Response{resp}, 0)
	if s.Correct != 0 {
		t.Fatal("expected incorrect")
	}
	want := []bank.Pair{{Left: "B", Right: "y"}, {Left: "B", Right: "z"}}
	if !reflect.DeepEqual(s.ReviewQueue[0].Mismatches, want) {
		t.Errorf("mismatches = %v, want %v", s.ReviewQueue[0].Mismatches, want)
	}
}

func TestGradeTopicAggregation(t *testing.T) {
	questions := []bank.Question{
		singleQ("Vision", "v1", "lv", 0),
		singleQ("Vision", "v2", "lv", 1),
		singleQ("Language", "g1", "lg1", 0),
		singleQ("Language", "g2", "lg2", 1),
	}
	responses := []Response{
		Single(0), Single(1), // Vision 2/2
		Single(3), Single(3), // Language 0/2
	}

	s := GradeAttempt(questions, responses, 0)

	if len(s.ByTopic) != 2 {
		t.Fatalf("byTopic len = %d, want 2", len(s.ByTopic))
	}
	// Alphabetical order: Language before Vision.
	lang, vis := s.ByTopic[0], s.ByTopic[1]
	if lang.Topic != "Language" || vis.Topic != "Vision" {
		t.Fatalf("topic order = %s, %s", lang.Topic, vis.Topic)
	}
	if lang.Accuracy != 0 || lang.Mastery != BandNeedsFocus {
		t.Errorf("Language = %d%% %q, want 0%% Needs Focus", lang.Accuracy, lang.Mastery)
	}
	if vis.Accuracy != 100 || vis.Mastery != BandExcellent {
		t.Errorf("Vision = %d%% %q, want 100%% Excellent", vis.Accuracy, vis.Mastery)
	}
	if !reflect.DeepEqual(lang.LearnLinks, []string{"lg1", "lg2"}) {
		t.Errorf("Language links = %v", lang.LearnLinks)
	}
	if !reflect.DeepEqual(vis.LearnLinks, []string{"lv"}) {
		t.Errorf("Vision links = %v (duplicates must collapse)", vis.LearnLinks)
	}

	if s.WeakestTopics[0].Topic != "Language" {
		t.Errorf("weakest[0] = %s, want Language", s.WeakestTopics[0].Topic)
	}
}

func TestGradeWeakestTopicsStableTies(t *testing.T) {
	questions := []bank.Question{
		singleQ("Zeta", "z", "lz", 0),
		singleQ("Alpha", "a", "la", 0),
		singleQ("Mid", "m", "lm", 0),
		singleQ("Beta", "b", "lb", 0),
	}
	// Everything wrong: four-way tie at 0%.
	s := GradeAttempt(questions, []Response{Single(1), Single(1), Single(1), Single(1)}, 0)

	if len(s.WeakestTopics) != 3 {
		t.Fatalf("weakest len = %d, want 3", len(s.WeakestTopics))
	}
	got := []string{s.WeakestTopics[0].Topic, s.WeakestTopics[1].Topic, s.WeakestTopics[2].Topic}
	want := []string{"Alpha", "Beta", "Mid"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("weakest order = %v, want alphabetical tie-break %v", got, want)
	}
}

func TestGradeFewerThanThreeTopics(t *testing.T) {
	s := GradeAttempt([]bank.Question{singleQ("Only", "q", "l", 0)}, []Response{Single(1)}, 0)
	if len(s.WeakestTopics) != 1 {
		t.Errorf("weakest len = %d, want 1", len(s.WeakestTopics))
	}
}

func TestGradeRecommendationsFollowWeakest(t *testing.T) {
	questions := []bank.Question{
		singleQ("Weak", "w1", "link-a", 0),
		singleQ("Weak", "w2", "link-b", 0),
	}
	s := GradeAttempt(questions, []Response{Single(1), Single(1)}, 0)

	want := []Recommendation{
		{Topic: "Weak", LearnLink: "link-a"},
		{Topic: "Weak", LearnLink: "link-b"},
	}
	if !reflect.DeepEqual(s.Recommendations, want) {
		t.Errorf("recommendations = %v, want %v", s.Recommendations, want)
	}
}

func TestGradeEmptyAttempt(t *testing.T) {
	s := GradeAttempt(nil, nil, 0)
	if s.Total != 0 || s.Correct != 0 || s.ScorePct != 0 || s.AvgTimeMs != 0 {
		t.Errorf("empty attempt summary = %+v, want all zero", s)
	}
	if len(s.ByTopic) != 0 || len(s.WeakestTopics) != 0 || len(s.Recommendations) != 0 || len(s.ReviewQueue) != 0 {
		t.Errorf("empty attempt slices must be empty: %+v", s)
	}
}

func TestGradeIdempotent(t *testing.T) {
	questions := []bank.Question{
		singleQ("Vision", "v1", "lv", 0),
		multiQ("Language", "g1", "lg", 0, 2),
		dragQ("Workloads", "d1", "ld", []bank.Pair{{Left: "A", Right: "x"}}),
	}
	responses := []Response{
		Single(0),
		Multi(0, 1),
		DragDrop([]bank.Pair{{Left: "A", Right: "y"}}),
	}

	a := GradeAttempt(questions, responses, 90*time.Second)
	b := GradeAttempt(questions, responses, 90*time.Second)
	if !reflect.DeepEqual(a, b) {
		t.Error("grading must be deterministic for identical inputs")
	}
}

func TestGradeTimes(t *testing.T) {
	questions := []bank.Question{
		singleQ("t", "q1", "l", 0),
		singleQ("t", "q2", "l", 0),
		singleQ("t", "q3", "l", 0),
	}
	s := GradeAttempt(questions, []Response{Single(0), Single(0), Single(0)}, 10*time.Second)
	if s.TotalTimeMs != 10000 {
		t.Errorf("totalTimeMs = %d, want 10000", s.TotalTimeMs)
	}
	if s.AvgTimeMs != 3333 {
		t.Errorf("avgTimeMs = %d, want 3333", s.AvgTimeMs)
	}
}

func TestGradeRoundsHalfAwayFromZero(t *testing.T) {
	// 1 of 8 = 12.5% → 13.
	questions := make([]bank.Question, 8)
	responses := make([]Response, 8)
	for i := range questions {
		questions[i] = singleQ("t", "q", "l", 0)
		responses[i] = Single(1)
	}
	responses[0] = Single(0)

	s := GradeAttempt(questions, responses, 0)
	if s.ScorePct != 13 {
		t.Errorf("scorePct = %d, want 13", s.ScorePct)
	}
}

func TestGradeMalformedItemDoesNotAbort(t *testing.T) {
	questions := []bank.Question{
		{Type: "essay", Text: "bad", Topic: "t", LearnLink: "l"},
		singleQ("t", "good", "l", 0),
	}
	s := GradeAttempt(questions, []Response{Single(0), Single(0)}, 0)
	if s.Total != 2 || s.Correct != 1 {
		t.Errorf("summary = %d/%d, want 1/2 with malformed item counted incorrect", s.Correct, s.Total)
	}
	if len(s.ReviewQueue) != 1 || s.ReviewQueue[0].Question != "bad" {
		t.Errorf("review queue = %+v", s.ReviewQueue)
	}
}

func TestBandBoundaries(t *testing.T) {
	tests := []struct {
		accuracy int
		want     Band
	}{
		{100, BandExcellent},
		{90, BandExcellent},
		{89, BandStrong},
		{75, BandStrong},
		{74, BandDeveloping},
		{50, BandDeveloping},
		{49, BandNeedsFocus},
		{0, BandNeedsFocus},
	}
	for _, tt := range tests {
		if got := BandFor(tt.accuracy); got != tt.want {
			t.Errorf("BandFor(%d) = %q, want %q", tt.accuracy, got, tt.want)
		}
	}
}
