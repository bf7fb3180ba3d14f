package bank

import (
	"encoding/json"
	"fmt"
)

// QuestionType discriminates the three delivery formats in the bank.
type QuestionType string

const (
	TypeSingle   QuestionType = "single"
	TypeMulti    QuestionType = "multi"
	TypeDragDrop QuestionType = "dragdrop"
)

// Pair is one left/right match in a drag-match question. Left items are
// draggable, right items are drop-target labels.
type Pair struct {
	Left  string `json:"left"`
	Right string `json:"right"`
}

// AnswerKey is the gold answer for a question. Exactly one side is set:
// Indices for single/multi questions (option positions), Pairs for
// drag-match questions. The JSON encoding is polymorphic — an array of
// integers or an array of {left,right} objects — so decoding dispatches
// on the first element.
type AnswerKey struct {
	Indices []int
	Pairs   []Pair
}

// UnmarshalJSON decodes either an index array or a pair array.
func (a *AnswerKey) UnmarshalJSON(data []byte) error {
	var indices []int
	if err := json.Unmarshal(data, &indices); err == nil {
		a.Indices = indices
		a.Pairs = nil
		return nil
	}

	var pairs []Pair
	if err := json.Unmarshal(data, &pairs); err != nil {
		return fmt.Errorf("answer is neither an index array nor a pair array: %w", err)
	}
	a.Pairs = pairs
	a.Indices = nil
	return nil
}

// MarshalJSON emits the populated side.
func (a AnswerKey) MarshalJSON() ([]byte, error) {
	if a.Pairs != nil {
		return json.Marshal(a.Pairs)
	}
	if a.Indices != nil {
		return json.Marshal(a.Indices)
	}
	return []byte("[]"), nil
}

// Question is one immutable record from the bank.
type Question struct {
	Type      QuestionType `json:"type"`
	Text      string       `json:"question"`
	Topic     string       `json:"topic"`
	Options   []string     `json:"options,omitempty"`
	Answer    AnswerKey    `json:"answer"`
	Pairs     []Pair       `json:"pairs,omitempty"`
	LearnLink string       `json:"learn_link"`
}

// Validate checks the cross-field invariants the JSON schema cannot
// express: the answer must reference valid option indices or pairs
// drawn from the question's own pair list.
func (q *Question) Validate() error {
	switch q.Type {
	case TypeSingle:
		if len(q.Answer.Indices) != 1 {
			return fmt.Errorf("single question %q: want exactly 1 answer index, got %d", q.Text, len(q.Answer.Indices))
		}
		return q.checkIndices()

	case TypeMulti:
		if len(q.Answer.Indices) == 0 {
			return fmt.Errorf("multi question %q: empty answer", q.Text)
		}
		return q.checkIndices()

	case TypeDragDrop:
		if len(q.Answer.Pairs) == 0 {
			return fmt.Errorf("dragdrop question %q: empty answer", q.Text)
		}
		for _, p := range q.Answer.Pairs {
			if !containsPair(q.Pairs, p) {
				return fmt.Errorf("dragdrop question %q: answer pair %s→%s not in pairs", q.Text, p.Left, p.Right)
			}
		}
		return nil

	default:
		return fmt.Errorf("question %q: unknown type %q", q.Text, q.Type)
	}
}

func (q *Question) checkIndices() error {
	seen := make(map[int]bool, len(q.Answer.Indices))
	for _, i := range q.Answer.Indices {
		if i < 0 || i >= len(q.Options) {
			return fmt.Errorf("question %q: answer index %d out of range (%d options)", q.Text, i, len(q.Options))
		}
		if seen[i] {
			return fmt.Errorf("question %q: duplicate answer index %d", q.Text, i)
		}
		seen[i] = true
	}
	return nil
}

func containsPair(pairs []Pair, p Pair) bool {
	for _, cand := range pairs {
		if cand == p {
			return true
		}
	}
	return false
}
