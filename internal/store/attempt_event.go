package store

import (
	"context"
	"fmt"

	"github.com/hogword/hogword-cli/ent"
	"github.com/hogword/hogword-cli/ent/attemptevent"
)

// journalRepo implements JournalRepo backed by ent and the global
// sequence counter.
type journalRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *journalRepo) AppendAttempt(ctx context.Context, data AttemptEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetWord(data.Word).
		SetDifficulty(data.Difficulty).
		SetSentence(data.Sentence).
		SetScore(data.Score).
		SetSuggestion(data.Suggestion).
		SetCorrectedSentence(data.CorrectedSentence).
		SetScoredBy(data.ScoredBy).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *journalRepo) QueryAttempts(ctx context.Context, opts QueryOpts) ([]AttemptRecord, error) {
	q := r.client.AttemptEvent.Query().
		Order(ent.Desc(attemptevent.FieldSequence))

	if !opts.From.IsZero() {
		q = q.Where(attemptevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(attemptevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}

	records := make([]AttemptRecord, 0, len(events))
	for _, e := range events {
		records = append(records, AttemptRecord{
			Sequence:          e.Sequence,
			Timestamp:         e.Timestamp,
			SessionID:         e.SessionID,
			Word:              e.Word,
			Difficulty:        e.Difficulty,
			Sentence:          e.Sentence,
			Score:             e.Score,
			Suggestion:        e.Suggestion,
			CorrectedSentence: e.CorrectedSentence,
			ScoredBy:          e.ScoredBy,
		})
	}
	return records, nil
}

func (r *journalRepo) AttemptStats(ctx context.Context, opts QueryOpts) (*AttemptStats, error) {
	records, err := r.QueryAttempts(ctx, opts)
	if err != nil {
		return nil, err
	}

	stats := &AttemptStats{
		ByDifficulty: make(map[string]DifficultyStats),
	}
	if len(records) == 0 {
		return stats, nil
	}

	var total float64
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, rec := range records {
		total += rec.Score
		sums[rec.Difficulty] += rec.Score
		counts[rec.Difficulty]++
	}

	stats.Count = len(records)
	stats.AvgScore = total / float64(len(records))
	for diff, n := range counts {
		stats.ByDifficulty[diff] = DifficultyStats{
			Count:    n,
			AvgScore: sums[diff] / float64(n),
		}
	}
	return stats, nil
}
