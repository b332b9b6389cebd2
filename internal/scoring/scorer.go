package scoring

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hogword/hogword-cli/internal/api"
)

const gradingSystem = `You are an English writing tutor grading vocabulary practice.
The learner was given a word and wrote a sentence using it.
Score the sentence from 0 to 10 for correct and natural use of the word,
grammar, and clarity. Give one short, actionable suggestion, and a
corrected version of the sentence. Respond with JSON only.`

// Scorer grades a sentence against a target word using an LLM provider
// and returns a result in the same shape the remote validator produces.
type Scorer struct {
	provider Provider
}

// NewScorer creates a Scorer backed by the given provider.
func NewScorer(provider Provider) *Scorer {
	return &Scorer{provider: provider}
}

// ModelID reports the backing model.
func (s *Scorer) ModelID() string {
	return s.provider.ModelID()
}

// Score grades the sentence. The verdict is validated against the same
// schema the remote validator's responses are checked with.
func (s *Scorer) Score(ctx context.Context, word, sentence string) (*api.ValidationResult, error) {
	word = strings.TrimSpace(word)
	sentence = strings.TrimSpace(sentence)
	if word == "" {
		return nil, fmt.Errorf("word is required")
	}
	if sentence == "" {
		return nil, fmt.Errorf("sentence is required")
	}

	req := GradeRequest{
		System:    gradingSystem,
		Prompt:    fmt.Sprintf("Word: %s\nSentence: %s", word, sentence),
		Schema:    api.VerdictSchema(),
		MaxTokens: 512,
	}

	raw, err := s.provider.Grade(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := api.CheckVerdict(raw); err != nil {
		return nil, &ErrInvalidVerdict{Content: raw, Err: err}
	}

	var result api.ValidationResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, &ErrInvalidVerdict{Content: raw, Err: err}
	}

	if result.Score < 0 {
		result.Score = 0
	}
	if result.Score > 10 {
		result.Score = 10
	}

	return &result, nil
}
