package history

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testRepo(t *testing.T, s *Store) AttemptRepo {
	t.Helper()
	repo, err := s.AttemptRepo()
	if err != nil {
		t.Fatalf("attempt repo: %v", err)
	}
	return repo
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is not asserted here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAppendAndList(t *testing.T) {
	s := openTestStore(t)
	repo := testRepo(t, s)
	ctx := context.Background()

	entries, err := repo.List(ctx, "monika", QueryOpts{})
	if err != nil {
		t.Fatalf("list (empty): %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty history, got %d entries", len(entries))
	}

	for i := 0; i < 3; i++ {
		err := repo.Append(ctx, "monika", Entry{
			AttemptID:    "attempt",
			Score:        i + 1,
			Total:        10,
			DurationSecs: 60 * (i + 1),
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	entries, err = repo.List(ctx, "monika", QueryOpts{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("entries = %d, want 3", len(entries))
	}

	// Oldest first, sequence strictly increasing.
	for i, e := range entries {
		if e.Score != i+1 {
			t.Errorf("entries[%d].Score = %d, want %d (oldest first)", i, e.Score, i+1)
		}
		if i > 0 && e.Sequence <= entries[i-1].Sequence {
			t.Errorf("sequence not increasing: %d after %d", e.Sequence, entries[i-1].Sequence)
		}
	}
}

func TestListIsPerUser(t *testing.T) {
	s := openTestStore(t)
	repo := testRepo(t, s)
	ctx := context.Background()

	if err := repo.Append(ctx, "monika", Entry{AttemptID: "a", Score: 7, Total: 10}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := repo.Append(ctx, "geoff", Entry{AttemptID: "b", Score: 3, Total: 10}); err != nil {
		t.Fatalf("append: %v", err)
	}

	entries, err := repo.List(ctx, "geoff", QueryOpts{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 1 || entries[0].Score != 3 {
		t.Errorf("geoff history = %+v, want only the score-3 entry", entries)
	}
}

func TestListLimitKeepsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := testRepo(t, s)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if err := repo.Append(ctx, "monika", Entry{AttemptID: "a", Score: i, Total: 5}); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	entries, err := repo.List(ctx, "monika", QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 2 || entries[0].Score != 3 || entries[1].Score != 4 {
		t.Errorf("limited list = %+v, want the two newest, oldest first", entries)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		if want := int64(i + 1); seq != want {
			t.Errorf("seq[%d] = %d, want %d", i, seq, want)
		}
	}
}

func TestAutoMigrationCreatesTable(t *testing.T) {
	s := openTestStore(t)

	var name string
	err := s.DB().QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='attempt_events'",
	).Scan(&name)
	if err != nil {
		t.Fatalf("query sqlite_master: %v", err)
	}
	if name != "attempt_events" {
		t.Errorf("table name = %q, want 'attempt_events'", name)
	}
}
