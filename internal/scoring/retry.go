package scoring

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"time"
)

// RetryProvider wraps a Provider with retry logic for transient failures.
// Rate limit and availability errors are retried with exponential backoff;
// invalid verdicts are not, since the same prompt tends to fail the same way.
type RetryProvider struct {
	inner Provider
	cfg   RetryConfig
}

// NewRetryProvider wraps the given provider with retry behavior.
func NewRetryProvider(inner Provider, cfg RetryConfig) *RetryProvider {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	if cfg.Multiplier <= 0 {
		cfg.Multiplier = 2.0
	}
	return &RetryProvider{inner: inner, cfg: cfg}
}

func (p *RetryProvider) Grade(ctx context.Context, req GradeRequest) (json.RawMessage, error) {
	var lastErr error
	wait := p.cfg.InitialWait

	for attempt := 0; attempt < p.cfg.MaxAttempts; attempt++ {
		if attempt > 0 {
			delay := wait
			var rl *ErrRateLimit
			if errors.As(lastErr, &rl) && rl.RetryAfter > 0 {
				delay = rl.RetryAfter
			}
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(jitter(delay)):
			}
			wait = time.Duration(float64(wait) * p.cfg.Multiplier)
			if p.cfg.MaxWait > 0 && wait > p.cfg.MaxWait {
				wait = p.cfg.MaxWait
			}
		}

		raw, err := p.inner.Grade(ctx, req)
		if err == nil {
			return raw, nil
		}
		lastErr = err
		if !retryable(err) {
			return nil, err
		}
	}

	return nil, lastErr
}

func (p *RetryProvider) ModelID() string {
	return p.inner.ModelID()
}

func retryable(err error) bool {
	var rl *ErrRateLimit
	var pu *ErrProviderUnavailable
	return errors.As(err, &rl) || errors.As(err, &pu)
}

// jitter applies +/-20% randomness to avoid thundering herds.
func jitter(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	f := 0.8 + rand.Float64()*0.4
	return time.Duration(float64(d) * f)
}
