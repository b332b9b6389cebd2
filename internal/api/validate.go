package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// ValidationResult is the scoring service's verdict on a submitted sentence.
type ValidationResult struct {
	Score             float64 `json:"score"`
	Suggestion        string  `json:"suggestion"`
	CorrectedSentence string  `json:"corrected_sentence,omitempty"`
}

// sentenceInput is the validate-sentence request body.
type sentenceInput struct {
	Word         string `json:"word"`
	UserSentence string `json:"user_sentence"`
}

// ValidateSentence submits a sentence for the given word and returns the
// score/feedback verdict. The response body is checked against the result
// schema before being trusted; a non-conforming body is treated like any
// other rejected submission.
func (c *Client) ValidateSentence(ctx context.Context, word, sentence string) (*ValidationResult, error) {
	const op = "validate sentence"

	var raw json.RawMessage
	err := c.do(ctx, op, http.MethodPost, "/api/validate-sentence",
		sentenceInput{Word: word, UserSentence: sentence}, &raw, true)
	if err != nil {
		return nil, err
	}

	if err := validateResultShape(raw); err != nil {
		c.log.Warn().Err(err).Msg("validation response failed schema check")
		return nil, &StatusError{Op: op, Status: http.StatusBadGateway, Body: err.Error()}
	}

	var res ValidationResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, fmt.Errorf("%s: decode result: %w", op, err)
	}
	return &res, nil
}
