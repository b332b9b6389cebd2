package scoring

import (
	"fmt"
)

// NewScorerFromConfig builds a Scorer for the configured provider,
// wrapped with retry behavior.
func NewScorerFromConfig(cfg Config) (*Scorer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var provider Provider
	var err error

	switch cfg.Provider {
	case "openai":
		provider, err = NewOpenAIProvider(cfg.OpenAI)
	case "anthropic":
		provider, err = NewAnthropicProvider(cfg.Anthropic)
	case "mock":
		provider = NewMockProvider()
	default:
		return nil, fmt.Errorf("unknown scoring provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, err
	}

	return NewScorer(NewRetryProvider(provider, cfg.Retry)), nil
}

// FromEnv builds a Scorer by probing standard API key environment
// variables. Falls back to the mock provider when no key is found so
// offline mode always works.
func FromEnv() (*Scorer, error) {
	cfg, ok := DiscoverConfig()
	if !ok {
		cfg = DefaultConfig()
		cfg.Provider = "mock"
	}
	return NewScorerFromConfig(cfg)
}
