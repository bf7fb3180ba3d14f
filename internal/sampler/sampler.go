// Package sampler draws the question subset for an attempt. Both entry
// points use rand.Shuffle — an index-swap Fisher–Yates — so every
// permutation is equally likely; the input bank is never mutated.
package sampler

import (
	"math/rand"

	"github.com/arima/quizdeck/internal/bank"
)

// Sample returns a uniformly random permutation of questions truncated
// to min(count, len(questions)), without replacement.
func Sample(questions []bank.Question, count int) []bank.Question {
	if count < 0 {
		count = 0
	}
	shuffled := shuffle(questions)
	if count < len(shuffled) {
		shuffled = shuffled[:count]
	}
	return shuffled
}

// SampleWeak draws a retake set biased to weak topics: the bank is
// filtered to the given topics, then fairly shuffled and truncated.
// A pool smaller than count is returned whole — no padding, no
// duplication.
func SampleWeak(questions []bank.Question, weakTopics []string, count int) []bank.Question {
	weak := make(map[string]bool, len(weakTopics))
	for _, t := range weakTopics {
		weak[t] = true
	}

	var pool []bank.Question
	for _, q := range questions {
		if weak[q.Topic] {
			pool = append(pool, q)
		}
	}
	return Sample(pool, count)
}

func shuffle(questions []bank.Question) []bank.Question {
	out := make([]bank.Question, len(questions))
	copy(out, questions)
	rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
