package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/hogword/hogword-cli/internal/auth"
)

// Config holds API client configuration.
type Config struct {
	// BaseURL is the root of the Hogword API, without a trailing slash.
	BaseURL string

	// Timeout bounds a single request. Default: 30s.
	Timeout time.Duration
}

// Client talks to the Hogword HTTPS JSON API. The bearer credential is
// read from the auth store at call time, so a token saved or invalidated
// mid-session takes effect on the next request.
type Client struct {
	baseURL string
	http    *http.Client
	creds   *auth.Store
	log     zerolog.Logger
}

// New creates a Client. creds may not be nil; endpoints that require no
// credential (sign-in) skip the store.
func New(cfg Config, creds *auth.Store, log zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: timeout},
		creds:   creds,
		log:     log,
	}
}

// do performs one JSON request. A nil out discards the response body.
// withAuth controls bearer injection; a missing credential with
// withAuth=true fails before any network traffic.
func (c *Client) do(ctx context.Context, op, method, path string, body, out any, withAuth bool) error {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: marshal request: %w", op, err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if withAuth {
		creds, ok := c.creds.Current()
		if !ok {
			return &AuthError{Op: op}
		}
		req.Header.Set("Authorization", "Bearer "+creds.AccessToken)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn().Str("op", op).Err(err).Msg("api transport failure")
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("op", op).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("api call")

	if resp.StatusCode == http.StatusUnauthorized {
		return &AuthError{Op: op}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{Op: op, Status: resp.StatusCode, Body: string(snippet)}
	}

	if out == nil {
		return nil
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}
