package scoring

import (
	"context"
	"encoding/json"
)

// Provider is the abstraction over LLM backends used by the offline
// scorer. Implementations return raw JSON conforming to the verdict
// schema carried in the request.
type Provider interface {
	// Grade sends the grading prompt and returns the verdict JSON.
	Grade(ctx context.Context, req GradeRequest) (json.RawMessage, error)

	// ModelID returns the model identifier this provider is configured
	// to use.
	ModelID() string
}

// GradeRequest describes one grading call.
type GradeRequest struct {
	// System sets the grader's role and constraints.
	System string

	// Prompt is the single user turn carrying the word and sentence.
	Prompt string

	// Schema is the JSON Schema the verdict must conform to. Providers
	// use their native structured-output mechanism when set.
	Schema map[string]any

	// MaxTokens bounds the response length.
	MaxTokens int

	// Temperature controls randomness. Default 0 (deterministic).
	Temperature float64
}
