package store

import (
	"context"
	"time"
)

// QueryOpts configures journal queries with filtering and pagination.
type QueryOpts struct {
	Limit int       // max results (0 = unlimited)
	From  time.Time // timestamp >= From
	To    time.Time // timestamp <= To
}

// AttemptEventData captures one scored submission for the journal.
type AttemptEventData struct {
	SessionID         string
	Word              string
	Difficulty        string
	Sentence          string
	Score             float64
	Suggestion        string
	CorrectedSentence string
	ScoredBy          string // "remote" or "local"
}

// SessionEventData captures a challenge session lifecycle event.
type SessionEventData struct {
	SessionID    string
	Action       string // "start" or "end"
	Attempts     int
	Skips        int
	DurationSecs int
}

// AttemptRecord is a stored attempt with its journal metadata.
type AttemptRecord struct {
	Sequence          int64
	Timestamp         time.Time
	SessionID         string
	Word              string
	Difficulty        string
	Sentence          string
	Score             float64
	Suggestion        string
	CorrectedSentence string
	ScoredBy          string
}

// SessionRecord is a stored session lifecycle event.
type SessionRecord struct {
	Sequence     int64
	Timestamp    time.Time
	SessionID    string
	Action       string
	Attempts     int
	Skips        int
	DurationSecs int
}

// AttemptStats are simple aggregates over stored attempts.
type AttemptStats struct {
	Count    int
	AvgScore float64
	// ByDifficulty maps difficulty label to (count, score sum derived avg).
	ByDifficulty map[string]DifficultyStats
}

// DifficultyStats aggregates attempts for one difficulty label.
type DifficultyStats struct {
	Count    int
	AvgScore float64
}

// JournalRepo provides append and query access to the local practice
// journal. Writes happen on the TUI update loop's command goroutines;
// failures are logged by callers and never block the session.
type JournalRepo interface {
	AppendAttempt(ctx context.Context, data AttemptEventData) error
	AppendSession(ctx context.Context, data SessionEventData) error

	// QueryAttempts returns attempts newest first.
	QueryAttempts(ctx context.Context, opts QueryOpts) ([]AttemptRecord, error)

	// QuerySessions returns session events newest first.
	QuerySessions(ctx context.Context, opts QueryOpts) ([]SessionRecord, error)

	// AttemptStats aggregates attempts in the given window.
	AttemptStats(ctx context.Context, opts QueryOpts) (*AttemptStats, error)
}
