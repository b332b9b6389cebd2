package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"
)

// HistoryEntry is one recorded attempt in the current day's session.
type HistoryEntry struct {
	Datetime          time.Time `json:"datetime"`
	Word              string    `json:"word"`
	UserSentence      string    `json:"user_sentence"`
	Score             float64   `json:"score"`
	Suggestion        string    `json:"suggestion"`
	CorrectedSentence string    `json:"corrected_sentence,omitempty"`
}

// historyWire tolerates the timestamp formats the server has been seen to
// emit (with and without zone offset).
type historyWire struct {
	Datetime          string  `json:"datetime"`
	Word              string  `json:"word"`
	UserSentence      string  `json:"user_sentence"`
	Score             float64 `json:"score"`
	Suggestion        string  `json:"suggestion"`
	CorrectedSentence string  `json:"corrected_sentence"`
}

var historyTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
}

func parseHistoryTime(s string) time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range historyTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// TodayHistory fetches the server's log of today's attempts. Order is
// whatever the server sent; callers own the display ordering. A body that
// is not a JSON array decodes to an empty list rather than an error, so a
// misbehaving server cannot destabilize the UI.
func (c *Client) TodayHistory(ctx context.Context) ([]HistoryEntry, error) {
	var raw json.RawMessage
	if err := c.do(ctx, "fetch history", http.MethodGet, "/api/today-log", nil, &raw, true); err != nil {
		return nil, err
	}

	var wire []historyWire
	if err := json.Unmarshal(raw, &wire); err != nil {
		c.log.Warn().Msg("today-log response is not a list; treating as empty")
		return []HistoryEntry{}, nil
	}

	entries := make([]HistoryEntry, 0, len(wire))
	for _, w := range wire {
		entries = append(entries, HistoryEntry{
			Datetime:          parseHistoryTime(w.Datetime),
			Word:              w.Word,
			UserSentence:      w.UserSentence,
			Score:             w.Score,
			Suggestion:        w.Suggestion,
			CorrectedSentence: w.CorrectedSentence,
		})
	}
	return entries, nil
}
