package grading

import (
	"sort"
	"strings"

	"github.com/arima/quizdeck/internal/bank"
)

// normalizePairs trims surrounding whitespace from both sides of every
// pair and sorts by (left, right). After normalization a plain sequence
// comparison is set equality: submission order and stray spacing never
// affect correctness.
func normalizePairs(pairs []bank.Pair) []bank.Pair {
	out := make([]bank.Pair, len(pairs))
	for i, p := range pairs {
		out[i] = bank.Pair{
			Left:  strings.TrimSpace(p.Left),
			Right: strings.TrimSpace(p.Right),
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Left != out[j].Left {
			return out[i].Left < out[j].Left
		}
		return out[i].Right < out[j].Right
	})
	return out
}

// pairsEqual reports element-wise equality of two pair sequences.
func pairsEqual(a, b []bank.Pair) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// pairMismatches returns the symmetric difference of two normalized
// pair sequences: gold-only pairs first (in gold order), then pick-only
// pairs (in pick order).
func pairMismatches(gold, pick []bank.Pair) []bank.Pair {
	goldSet := make(map[bank.Pair]bool, len(gold))
	for _, p := range gold {
		goldSet[p] = true
	}
	pickSet := make(map[bank.Pair]bool, len(pick))
	for _, p := range pick {
		pickSet[p] = true
	}

	var out []bank.Pair
	for _, p := range gold {
		if !pickSet[p] {
			out = append(out, p)
		}
	}
	for _, p := range pick {
		if !goldSet[p] {
			out = append(out, p)
		}
	}
	return out
}
