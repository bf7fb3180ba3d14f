package sampler

import (
	"fmt"
	"testing"

	"github.com/arima/quizdeck/internal/bank"
)

func makeBank(n int) []bank.Question {
	out := make([]bank.Question, n)
	for i := range out {
		out[i] = bank.Question{
			Type:  bank.TypeSingle,
			Text:  fmt.Sprintf("q%d", i),
			Topic: fmt.Sprintf("topic%d", i%5),
		}
	}
	return out
}

func TestSampleTruncates(t *testing.T) {
	b := makeBank(20)

	tests := []struct {
		count int
		want  int
	}{
		{10, 10},
		{20, 20},
		{50, 20}, // never more than the bank holds
		{0, 0},
	}
	for _, tt := range tests {
		if got := len(Sample(b, tt.count)); got != tt.want {
			t.Errorf("Sample(_, %d) len = %d, want %d", tt.count, got, tt.want)
		}
	}
}

func TestSampleNoDuplicates(t *testing.T) {
	b := makeBank(30)
	got := Sample(b, 30)

	seen := make(map[string]bool, len(got))
	for _, q := range got {
		if seen[q.Text] {
			t.Fatalf("duplicate question %s in sample", q.Text)
		}
		seen[q.Text] = true
	}
}

func TestSampleDoesNotMutateInput(t *testing.T) {
	b := makeBank(10)
	orig := make([]bank.Question, len(b))
	copy(orig, b)

	Sample(b, 5)

	for i := range b {
		if b[i].Text != orig[i].Text {
			t.Fatal("input bank was reordered")
		}
	}
}

// TestSampleUniformity checks that no item is systematically favored:
// over many draws of 10 from 100, each item's selection count should
// be near the expected 10%. Statistical, not exact.
func TestSampleUniformity(t *testing.T) {
	const (
		bankSize = 100
		drawSize = 10
		rounds   = 10000
	)
	b := makeBank(bankSize)
	counts := make(map[string]int, bankSize)

	for i := 0; i < rounds; i++ {
		for _, q := range Sample(b, drawSize) {
			counts[q.Text]++
		}
	}

	// Expected 1000 per item; ±35% tolerates sampling noise at this
	// round count while still catching positional bias.
	const expected = rounds * drawSize / bankSize
	for _, q := range b {
		c := counts[q.Text]
		if c < expected*65/100 || c > expected*135/100 {
			t.Errorf("item %s drawn %d times, expected ≈%d", q.Text, c, expected)
		}
	}
}

func TestSampleWeakFilters(t *testing.T) {
	b := makeBank(25) // topics topic0..topic4, 5 questions each

	got := SampleWeak(b, []string{"topic1", "topic3"}, 100)
	if len(got) != 10 {
		t.Fatalf("pool len = %d, want 10 (whole pool when smaller than count)", len(got))
	}
	for _, q := range got {
		if q.Topic != "topic1" && q.Topic != "topic3" {
			t.Errorf("question %s has topic %s outside the weak set", q.Text, q.Topic)
		}
	}

	got = SampleWeak(b, []string{"topic0"}, 3)
	if len(got) != 3 {
		t.Errorf("truncated pool len = %d, want 3", len(got))
	}

	got = SampleWeak(b, nil, 10)
	if len(got) != 0 {
		t.Errorf("no weak topics should yield an empty set, got %d", len(got))
	}
}
