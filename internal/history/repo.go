package history

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"
)

// Entry is one recorded attempt as read back from the log.
type Entry struct {
	Sequence     int64
	Timestamp    time.Time
	AttemptID    string
	Score        int
	Total        int
	DurationSecs int
}

// QueryOpts configures history queries.
type QueryOpts struct {
	Limit int // max results (0 = unlimited), newest dropped first
}

// AttemptRepo is the append-only per-user attempt log. Entries are
// never mutated or pruned by the engine.
type AttemptRepo interface {
	// Append records a completed attempt for a user.
	Append(ctx context.Context, user string, e Entry) error

	// List returns a user's entries oldest first, for trend views.
	List(ctx context.Context, user string, opts QueryOpts) ([]Entry, error)
}

// sequenceCounter assigns the global monotonic sequence number shared
// by all event rows, so the log has a total order independent of
// per-table auto-increment IDs. Raw SQL because ent has no
// database-level atomic counter; the mutex serializes within the
// process and the RETURNING clause makes the increment atomic in the
// database.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

// newSequenceCounter creates a counter and ensures the tracking table exists.
func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{db: db}, nil
}

// Next atomically returns the next sequence number and increments the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}
