package api

import (
	"context"
	"net/http"
)

// AcquireMode selects how the server picks the next practice word.
type AcquireMode string

const (
	// ModeFetchExisting resumes whatever word the server considers in
	// progress, generating one only if none exists. Used on initial load.
	ModeFetchExisting AcquireMode = "fetch"

	// ModeGenerateNext forces a new word, resigning any in-progress one.
	// Used for skip/advance actions.
	ModeGenerateNext AcquireMode = "gen"
)

// Difficulty labels reported by the word service. Case-sensitive.
const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

// Word is the current practice target. Replaced wholesale on every
// acquisition, never mutated in place.
type Word struct {
	Word       string `json:"word"`
	Difficulty string `json:"difficulty"`
	LogID      string `json:"log_id,omitempty"`

	// Play is the server-reported play flag: non-zero means the word has
	// already been attempted.
	Play int `json:"play"`
}

// AcquireWord requests the next word to practice in the given mode.
func (c *Client) AcquireWord(ctx context.Context, mode AcquireMode) (*Word, error) {
	var w Word
	err := c.do(ctx, "acquire word", http.MethodGet, "/api/word?state="+string(mode), nil, &w, true)
	if err != nil {
		return nil, err
	}
	return &w, nil
}
