package store

import (
	"context"
	"fmt"

	"github.com/hogword/hogword-cli/ent"
	"github.com/hogword/hogword-cli/ent/sessionevent"
)

func (r *journalRepo) AppendSession(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAction(data.Action).
		SetAttempts(data.Attempts).
		SetSkips(data.Skips).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *journalRepo) QuerySessions(ctx context.Context, opts QueryOpts) ([]SessionRecord, error) {
	q := r.client.SessionEvent.Query().
		Order(ent.Desc(sessionevent.FieldSequence))

	if !opts.From.IsZero() {
		q = q.Where(sessionevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(sessionevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}

	records := make([]SessionRecord, 0, len(events))
	for _, e := range events {
		records = append(records, SessionRecord{
			Sequence:     e.Sequence,
			Timestamp:    e.Timestamp,
			SessionID:    e.SessionID,
			Action:       e.Action,
			Attempts:     e.Attempts,
			Skips:        e.Skips,
			DurationSecs: e.DurationSecs,
		})
	}
	return records, nil
}
