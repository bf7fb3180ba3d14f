package history

import (
	"context"
	"fmt"

	"github.com/arima/quizdeck/ent"
	"github.com/arima/quizdeck/ent/attemptevent"
)

type attemptRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *attemptRepo) Append(ctx context.Context, user string, e Entry) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetUser(user).
		SetAttemptID(e.AttemptID).
		SetScore(e.Score).
		SetTotal(e.Total).
		SetDurationSecs(e.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *attemptRepo) List(ctx context.Context, user string, opts QueryOpts) ([]Entry, error) {
	q := r.client.AttemptEvent.Query().
		Where(attemptevent.User(user)).
		Order(ent.Asc(attemptevent.FieldSequence))

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempt events: %w", err)
	}

	entries := make([]Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, Entry{
			Sequence:     row.Sequence,
			Timestamp:    row.Timestamp,
			AttemptID:    row.AttemptID,
			Score:        row.Score,
			Total:        row.Total,
			DurationSecs: row.DurationSecs,
		})
	}

	// Keep the newest entries when limited; the result stays oldest
	// first so trend views read left to right.
	if opts.Limit > 0 && len(entries) > opts.Limit {
		entries = entries[len(entries)-opts.Limit:]
	}
	return entries, nil
}
