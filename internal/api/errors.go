package api

import (
	"errors"
	"fmt"
)

// AuthError indicates the server rejected the bearer credential (HTTP 401).
// It is fatal to the session: the caller must invalidate the stored
// credential and return to the authentication entry point.
type AuthError struct {
	Op string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("%s: authorization rejected", e.Op)
}

// TransportError indicates the request never produced a usable HTTP
// response (connection refused, DNS failure, timeout). Recoverable: the
// caller keeps its prior state and the user retries by repeating the action.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// StatusError indicates a non-2xx response other than 401.
type StatusError struct {
	Op     string
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d", e.Op, e.Status)
}

// IsAuth reports whether err is (or wraps) an authorization failure.
func IsAuth(err error) bool {
	var ae *AuthError
	return errors.As(err, &ae)
}
