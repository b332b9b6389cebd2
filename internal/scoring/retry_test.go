package scoring

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flakyProvider fails a fixed number of times before succeeding.
type flakyProvider struct {
	failures int
	failWith error
	calls    int
}

func (p *flakyProvider) Grade(_ context.Context, _ GradeRequest) (json.RawMessage, error) {
	p.calls++
	if p.calls <= p.failures {
		return nil, p.failWith
	}
	return json.RawMessage(`{"score":7}`), nil
}

func (p *flakyProvider) ModelID() string { return "flaky" }

func fastRetry(attempts int) RetryConfig {
	return RetryConfig{
		MaxAttempts: attempts,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestRetry_SucceedsAfterTransientFailures(t *testing.T) {
	inner := &flakyProvider{
		failures: 2,
		failWith: &ErrProviderUnavailable{Err: errors.New("503")},
	}
	p := NewRetryProvider(inner, fastRetry(3))

	raw, err := p.Grade(context.Background(), GradeRequest{Prompt: "x"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"score":7}`, string(raw))
	assert.Equal(t, 3, inner.calls)
}

func TestRetry_RespectsRetryAfter(t *testing.T) {
	inner := &flakyProvider{
		failures: 1,
		failWith: &ErrRateLimit{RetryAfter: time.Millisecond, Err: errors.New("429")},
	}
	p := NewRetryProvider(inner, fastRetry(3))

	_, err := p.Grade(context.Background(), GradeRequest{Prompt: "x"})
	require.NoError(t, err)
	assert.Equal(t, 2, inner.calls)
}

func TestRetry_InvalidVerdictNotRetried(t *testing.T) {
	inner := &flakyProvider{
		failures: 10,
		failWith: &ErrInvalidVerdict{Err: errors.New("bad shape")},
	}
	p := NewRetryProvider(inner, fastRetry(3))

	_, err := p.Grade(context.Background(), GradeRequest{Prompt: "x"})
	var iv *ErrInvalidVerdict
	require.ErrorAs(t, err, &iv)
	assert.Equal(t, 1, inner.calls, "verdict errors repeat; retrying wastes tokens")
}

func TestRetry_ExhaustsAttempts(t *testing.T) {
	inner := &flakyProvider{
		failures: 10,
		failWith: &ErrProviderUnavailable{Err: errors.New("down")},
	}
	p := NewRetryProvider(inner, fastRetry(3))

	_, err := p.Grade(context.Background(), GradeRequest{Prompt: "x"})
	var pu *ErrProviderUnavailable
	require.ErrorAs(t, err, &pu)
	assert.Equal(t, 3, inner.calls)
}

func TestRetry_ContextCancelled(t *testing.T) {
	inner := &flakyProvider{
		failures: 10,
		failWith: &ErrRateLimit{RetryAfter: time.Minute, Err: errors.New("429")},
	}
	p := NewRetryProvider(inner, fastRetry(3))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Grade(ctx, GradeRequest{Prompt: "x"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, inner.calls, "the backoff wait must honor cancellation")
}

func TestRetry_ModelIDPassesThrough(t *testing.T) {
	p := NewRetryProvider(&flakyProvider{}, fastRetry(1))
	assert.Equal(t, "flaky", p.ModelID())
}

func TestJitterStaysInBand(t *testing.T) {
	d := 100 * time.Millisecond
	for i := 0; i < 50; i++ {
		j := jitter(d)
		assert.GreaterOrEqual(t, j, 80*time.Millisecond)
		assert.LessOrEqual(t, j, 120*time.Millisecond)
	}
	assert.Equal(t, time.Duration(0), jitter(0))
}
