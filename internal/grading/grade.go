// Package grading turns a delivered attempt into a diagnostic summary:
// per-item correctness across the three question types, per-topic
// aggregates with mastery bands, weakest-topic ranking, remediation
// recommendations, and a review queue of missed items.
//
// Everything here is pure and synchronous. A malformed question or
// response degrades that one item to "incorrect, no diff" — a single
// bad record never aborts the grading pass.
package grading

import (
	"math"
	"sort"
	"time"

	"github.com/arima/quizdeck/internal/bank"
)

// topicAccum is the running per-topic statistic during a grading pass.
type topicAccum struct {
	questions int
	correct   int
	links     []string
	linkSeen  map[string]bool
}

// GradeAttempt grades a delivered question sequence against positional
// responses. The response slice may be shorter than the question slice;
// questions without a response are graded incorrect. totalTime is the
// attempt's elapsed wall time as measured by the caller.
func GradeAttempt(questions []bank.Question, responses []Response, totalTime time.Duration) Summary {
	var (
		correct     int
		topics      = make(map[string]*topicAccum)
		topicOrder  []string
		reviewQueue []MissDetail
	)

	for i := range questions {
		q := &questions[i]

		acc := topics[q.Topic]
		if acc == nil {
			acc = &topicAccum{linkSeen: make(map[string]bool)}
			topics[q.Topic] = acc
			topicOrder = append(topicOrder, q.Topic)
		}
		acc.questions++
		if q.LearnLink != "" && !acc.linkSeen[q.LearnLink] {
			acc.linkSeen[q.LearnLink] = true
			acc.links = append(acc.links, q.LearnLink)
		}

		var resp *Response
		if i < len(responses) {
			resp = &responses[i]
		}

		ok, detail := gradeItem(i, q, resp)
		if ok {
			correct++
			acc.correct++
		} else {
			reviewQueue = append(reviewQueue, detail)
		}
	}

	byTopic := make([]TopicReport, 0, len(topicOrder))
	for _, topic := range topicOrder {
		acc := topics[topic]
		accuracy := roundPct(acc.correct, acc.questions)
		byTopic = append(byTopic, TopicReport{
			Topic:      topic,
			Questions:  acc.questions,
			Correct:    acc.correct,
			Accuracy:   accuracy,
			Mastery:    BandFor(accuracy),
			LearnLinks: acc.links,
		})
	}
	// Alphabetical report order keeps the output deterministic
	// regardless of delivery order.
	sort.Slice(byTopic, func(i, j int) bool { return byTopic[i].Topic < byTopic[j].Topic })

	// Weakest topics: ascending accuracy over the alphabetical report,
	// stable so ties keep alphabetical order.
	weakest := make([]TopicReport, len(byTopic))
	copy(weakest, byTopic)
	sort.SliceStable(weakest, func(i, j int) bool { return weakest[i].Accuracy < weakest[j].Accuracy })
	if len(weakest) > 3 {
		weakest = weakest[:3]
	}

	var recommendations []Recommendation
	for _, t := range weakest {
		for _, link := range t.LearnLinks {
			recommendations = append(recommendations, Recommendation{Topic: t.Topic, LearnLink: link})
		}
	}

	total := len(questions)
	totalTimeMs := totalTime.Milliseconds()
	var scorePct int
	var avgTimeMs int64
	if total > 0 {
		scorePct = roundPct(correct, total)
		avgTimeMs = int64(math.Round(float64(totalTimeMs) / float64(total)))
	}

	return Summary{
		Total:           total,
		Correct:         correct,
		ScorePct:        scorePct,
		TotalTimeMs:     totalTimeMs,
		AvgTimeMs:       avgTimeMs,
		ByTopic:         byTopic,
		WeakestTopics:   weakest,
		Recommendations: recommendations,
		ReviewQueue:     reviewQueue,
	}
}

// gradeItem judges one question/response pair. The second return value
// is only meaningful when the first is false.
func gradeItem(index int, q *bank.Question, resp *Response) (bool, MissDetail) {
	detail := MissDetail{
		Index:      index,
		QuestionID: bank.QuestionID(q),
		Type:       q.Type,
		Question:   q.Text,
		Topic:      q.Topic,
		LearnLink:  q.LearnLink,
		Correct:    q.Answer,
		Given:      resp,
	}

	switch {
	case q.Type == bank.TypeSingle && resp != nil && resp.Kind == bank.TypeSingle:
		if len(q.Answer.Indices) == 1 && resp.Selected == q.Answer.Indices[0] {
			return true, MissDetail{}
		}
		return false, detail

	case q.Type == bank.TypeMulti && resp != nil && resp.Kind == bank.TypeMulti:
		picked := make(map[int]bool, len(resp.Choices))
		for _, c := range resp.Choices {
			picked[c] = true
		}
		gold := make(map[int]bool, len(q.Answer.Indices))
		for _, a := range q.Answer.Indices {
			gold[a] = true
		}

		for _, a := range q.Answer.Indices {
			if !picked[a] {
				detail.Missed = append(detail.Missed, a)
			}
		}
		seen := make(map[int]bool, len(resp.Choices))
		for _, c := range resp.Choices {
			if !gold[c] && !seen[c] {
				seen[c] = true
				detail.Extras = append(detail.Extras, c)
			}
		}

		// Strict: every answer picked, nothing extra. No partial credit.
		if len(detail.Missed) == 0 && len(detail.Extras) == 0 {
			return true, MissDetail{}
		}
		return false, detail

	case q.Type == bank.TypeDragDrop && resp != nil && resp.Kind == bank.TypeDragDrop:
		gold := normalizePairs(q.Answer.Pairs)
		pick := normalizePairs(resp.Pairs)
		if pairsEqual(gold, pick) {
			return true, MissDetail{}
		}
		detail.Mismatches = pairMismatches(gold, pick)
		return false, detail

	default:
		// Missing response, type mismatch, or unrecognized type:
		// incorrect with no diff beyond what was given.
		return false, detail
	}
}

// roundPct returns round(100 * num / den), half away from zero.
func roundPct(num, den int) int {
	if den == 0 {
		return 0
	}
	return int(math.Round(100 * float64(num) / float64(den)))
}
