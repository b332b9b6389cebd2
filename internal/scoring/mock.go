package scoring

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode"
)

// MockProvider grades sentences with a small heuristic instead of calling
// an LLM. Useful for tests and for running fully offline without API keys.
type MockProvider struct{}

// NewMockProvider creates a mock provider.
func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (p *MockProvider) Grade(ctx context.Context, req GradeRequest) (json.RawMessage, error) {
	word, sentence := parsePrompt(req.Prompt)

	score := 5.0
	var suggestions []string

	lower := strings.ToLower(sentence)
	if word != "" && strings.Contains(lower, strings.ToLower(word)) {
		score += 2
	} else {
		suggestions = append(suggestions, fmt.Sprintf("Use the word %q in your sentence.", word))
	}

	words := strings.Fields(sentence)
	if len(words) >= 6 {
		score += 1.5
	} else {
		suggestions = append(suggestions, "Try a longer sentence with more context.")
	}

	if len(sentence) > 0 && unicode.IsUpper(rune(sentence[0])) {
		score += 0.5
	}
	if strings.HasSuffix(strings.TrimSpace(sentence), ".") ||
		strings.HasSuffix(strings.TrimSpace(sentence), "!") ||
		strings.HasSuffix(strings.TrimSpace(sentence), "?") {
		score += 0.5
	} else {
		suggestions = append(suggestions, "End the sentence with punctuation.")
	}

	if score > 10 {
		score = 10
	}

	verdict := map[string]any{
		"score":              score,
		"suggestion":         strings.Join(suggestions, " "),
		"corrected_sentence": sentence,
	}
	raw, err := json.Marshal(verdict)
	if err != nil {
		return nil, err
	}
	return raw, nil
}

func (p *MockProvider) ModelID() string {
	return "mock"
}

// parsePrompt pulls the word and sentence back out of the grading prompt.
// Best effort only; an unrecognized prompt grades the whole text.
func parsePrompt(prompt string) (word, sentence string) {
	for _, line := range strings.Split(prompt, "\n") {
		switch {
		case strings.HasPrefix(line, "Word: "):
			word = strings.TrimPrefix(line, "Word: ")
		case strings.HasPrefix(line, "Sentence: "):
			sentence = strings.TrimPrefix(line, "Sentence: ")
		}
	}
	if sentence == "" {
		sentence = prompt
	}
	return word, sentence
}
