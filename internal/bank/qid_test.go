package bank

import "testing"

func sampleSingle() *Question {
	return &Question{
		Type:      TypeSingle,
		Text:      "Which service provides OCR? (2)",
		Topic:     "Computer Vision",
		Options:   []string{"Azure AI Vision", "Azure AI Language", "Azure AI Speech"},
		Answer:    AnswerKey{Indices: []int{0}},
		LearnLink: "https://learn.example.com/vision",
	}
}

func TestQuestionIDDeterministic(t *testing.T) {
	q := sampleSingle()
	a := QuestionID(q)
	b := QuestionID(q)
	if a != b {
		t.Fatalf("QuestionID not deterministic: %s != %s", a, b)
	}
	if len(a) != 40 {
		t.Fatalf("expected 40-char SHA-1 hex, got %d chars", len(a))
	}
}

func TestQuestionIDSensitivity(t *testing.T) {
	base := QuestionID(sampleSingle())

	tests := []struct {
		name   string
		mutate func(*Question)
	}{
		{"type change", func(q *Question) { q.Type = TypeMulti }},
		{"question text change", func(q *Question) { q.Text += "!" }},
		{"one option character", func(q *Question) { q.Options[1] = "Azure AI Languag" }},
		{"option order", func(q *Question) { q.Options[0], q.Options[1] = q.Options[1], q.Options[0] }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := sampleSingle()
			tt.mutate(q)
			if got := QuestionID(q); got == base {
				t.Errorf("ID unchanged after %s", tt.name)
			}
		})
	}
}

func TestQuestionIDUsesPairsForDragDrop(t *testing.T) {
	q := &Question{
		Type:  TypeDragDrop,
		Text:  "Match the workload to its scenario",
		Topic: "AI Workloads",
		Pairs: []Pair{
			{Left: "Anomaly detection", Right: "Flag unusual credit card activity"},
			{Left: "Computer vision", Right: "Read text from scanned forms"},
		},
	}
	q.Answer = AnswerKey{Pairs: q.Pairs}

	base := QuestionID(q)
	q.Pairs[1].Right = "Read text from photos"
	if QuestionID(q) == base {
		t.Error("ID unchanged after pair edit")
	}
}

func TestQuestionIDKeepsDisambiguator(t *testing.T) {
	a := sampleSingle()
	b := sampleSingle()
	b.Text = "Which service provides OCR?"
	if QuestionID(a) == QuestionID(b) {
		t.Error("disambiguator must feed the hash so duplicate stems stay distinct")
	}
}

func TestDisplayText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Which service provides OCR? (2)", "Which service provides OCR?"},
		{"Which service provides OCR?", "Which service provides OCR?"},
		{"Plain stem (3) ", "Plain stem"},
		{"Keep (this) inline (note)", "Keep (this) inline (note)"},
	}
	for _, tt := range tests {
		q := &Question{Text: tt.in}
		if got := DisplayText(q); got != tt.want {
			t.Errorf("DisplayText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
