package scoring

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubProvider returns canned verdicts and records what it was asked.
type stubProvider struct {
	raw   json.RawMessage
	err   error
	calls int
	reqs  []GradeRequest
}

func (p *stubProvider) Grade(_ context.Context, req GradeRequest) (json.RawMessage, error) {
	p.calls++
	p.reqs = append(p.reqs, req)
	if p.err != nil {
		return nil, p.err
	}
	return p.raw, nil
}

func (p *stubProvider) ModelID() string { return "stub-model" }

func TestScorer_Score(t *testing.T) {
	stub := &stubProvider{
		raw: json.RawMessage(`{"score":8.5,"suggestion":"Nice.","corrected_sentence":"Fixed."}`),
	}
	s := NewScorer(stub)

	res, err := s.Score(context.Background(), "apple", "An apple a day keeps the doctor away.")
	require.NoError(t, err)
	assert.Equal(t, 8.5, res.Score)
	assert.Equal(t, "Nice.", res.Suggestion)
	assert.Equal(t, "Fixed.", res.CorrectedSentence)

	require.Len(t, stub.reqs, 1)
	req := stub.reqs[0]
	assert.Contains(t, req.Prompt, "Word: apple")
	assert.Contains(t, req.Prompt, "Sentence: An apple a day keeps the doctor away.")
	assert.NotEmpty(t, req.System)
	assert.NotNil(t, req.Schema)
}

func TestScorer_RejectsEmptyInputs(t *testing.T) {
	s := NewScorer(&stubProvider{})

	_, err := s.Score(context.Background(), "  ", "A sentence.")
	assert.Error(t, err)

	_, err = s.Score(context.Background(), "apple", "  ")
	assert.Error(t, err)
}

func TestScorer_InvalidVerdict(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"missing score", `{"suggestion":"nope"}`},
		{"score out of range", `{"score":42}`},
		{"not json", `the model rambled instead`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScorer(&stubProvider{raw: json.RawMessage(tt.raw)})

			_, err := s.Score(context.Background(), "apple", "An apple.")
			var iv *ErrInvalidVerdict
			require.ErrorAs(t, err, &iv)
		})
	}
}

func TestScorer_ProviderErrorPassesThrough(t *testing.T) {
	wantErr := &ErrProviderUnavailable{Err: errors.New("down")}
	s := NewScorer(&stubProvider{err: wantErr})

	_, err := s.Score(context.Background(), "apple", "An apple.")
	var pu *ErrProviderUnavailable
	assert.ErrorAs(t, err, &pu)
}

func TestMockProvider_GradesHeuristically(t *testing.T) {
	s := NewScorer(NewMockProvider())

	good, err := s.Score(context.Background(), "apple", "An apple a day keeps the doctor away.")
	require.NoError(t, err)
	assert.InDelta(t, 9.5, good.Score, 0.01)
	assert.Empty(t, good.Suggestion)

	bad, err := s.Score(context.Background(), "apple", "no fruit here")
	require.NoError(t, err)
	assert.Less(t, bad.Score, good.Score)
	assert.Contains(t, bad.Suggestion, `"apple"`)
}

func TestMockProvider_VerdictConformsToSchema(t *testing.T) {
	p := NewMockProvider()
	raw, err := p.Grade(context.Background(), GradeRequest{
		Prompt: "Word: apple\nSentence: short",
	})
	require.NoError(t, err)

	var verdict map[string]any
	require.NoError(t, json.Unmarshal(raw, &verdict))
	score, ok := verdict["score"].(float64)
	require.True(t, ok)
	assert.GreaterOrEqual(t, score, 0.0)
	assert.LessOrEqual(t, score, 10.0)
}

func TestNewScorerFromConfig_Mock(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "mock"

	s, err := NewScorerFromConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, "mock", s.ModelID())
}

func TestNewScorerFromConfig_MissingKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "openai"
	cfg.OpenAI.APIKey = ""

	_, err := NewScorerFromConfig(cfg)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "OPENAI_API_KEY"))
}

func TestConfigValidate_UnknownProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "oracle"
	assert.Error(t, cfg.Validate())
}
