package api

import (
	"context"
	"encoding/json"
	"net/http"
)

// Summary is the aggregate metrics object behind the dashboard.
type Summary struct {
	AvgScoreToday float64      `json:"avg_score_today"`
	AvgScoreAll   float64      `json:"avg_score_all"`
	TodaySkip     int          `json:"today_skip"`
	WordPerDay    WordsPerDay  `json:"word_per_day"`
	ScorePerDay   []DatePoint  `json:"score_per_day"`
	AvgScoreLevel []LevelScore `json:"avg_score_level"`
	ScoreCounts   []ScoreCount `json:"score_count_data"`
}

// DatePoint is one day's value in a time series.
type DatePoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// LevelScore is the average score for one difficulty level.
type LevelScore struct {
	Level string  `json:"level"`
	Score float64 `json:"score"`
}

// ScoreCount is a (score, count) bucket tagged with difficulty.
type ScoreCount struct {
	Score      float64 `json:"score"`
	Count      int     `json:"count"`
	Difficulty string  `json:"difficulty"`
}

// WordsPerDay maps ISO dates to word counts. The server has emitted both
// an object keyed by date and a list of {date, count} pairs for this
// field, so decoding accepts either.
type WordsPerDay map[string]int

func (w *WordsPerDay) UnmarshalJSON(b []byte) error {
	var asMap map[string]int
	if err := json.Unmarshal(b, &asMap); err == nil {
		*w = asMap
		return nil
	}

	var asList []struct {
		Date  string `json:"date"`
		Count int    `json:"count"`
	}
	if err := json.Unmarshal(b, &asList); err == nil {
		m := make(map[string]int, len(asList))
		for _, p := range asList {
			m[p.Date] = p.Count
		}
		*w = m
		return nil
	}

	// Unknown shape: leave empty rather than fail the whole summary.
	*w = WordsPerDay{}
	return nil
}

// Summary fetches the aggregate metrics for the signed-in user.
func (c *Client) Summary(ctx context.Context) (*Summary, error) {
	var s Summary
	if err := c.do(ctx, "fetch summary", http.MethodGet, "/api/summary", nil, &s, true); err != nil {
		return nil, err
	}
	return &s, nil
}
