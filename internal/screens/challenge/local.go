package challenge

import (
	"context"

	"github.com/hogword/hogword-cli/internal/api"
	"github.com/hogword/hogword-cli/internal/scoring"
)

// LocalValidator scores sentences with the offline scorer instead of
// the remote validation service.
type LocalValidator struct {
	Scorer *scoring.Scorer
}

func (v *LocalValidator) Validate(ctx context.Context, word, sentence string) (*api.ValidationResult, error) {
	return v.Scorer.Score(ctx, word, sentence)
}

func (v *LocalValidator) Source() string { return "local" }
