package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hogword/hogword-cli/internal/config"
)

// Credentials is the bearer token and user identity persisted between runs.
type Credentials struct {
	AccessToken string `json:"access_token"`
	Email       string `json:"email"`
}

// Store holds the credentials for the lifetime of the process.
//
// It is read-mostly shared state: every API call reads the token through
// Current. The login flow is the only writer (Save); the 401 handler is the
// only invalidator (Invalidate). Nothing else mutates it.
type Store struct {
	mu    sync.RWMutex
	path  string
	creds *Credentials
}

// Open resolves the credentials file under the config directory and loads
// it if present. A missing file is not an error; Current simply reports
// no credentials.
func Open() (*Store, error) {
	dir, err := config.ConfigDir()
	if err != nil {
		return nil, fmt.Errorf("resolve config dir: %w", err)
	}
	return OpenPath(filepath.Join(dir, "credentials.json"))
}

// OpenPath opens a Store backed by an explicit file path.
func OpenPath(path string) (*Store, error) {
	s := &Store{path: path}

	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read credentials: %w", err)
	}

	var c Credentials
	if err := json.Unmarshal(b, &c); err != nil {
		// A corrupt file is treated as signed out rather than fatal.
		return s, nil
	}
	if c.AccessToken != "" {
		s.creds = &c
	}
	return s, nil
}

// Current returns the held credentials. ok is false when signed out.
func (s *Store) Current() (Credentials, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.creds == nil {
		return Credentials{}, false
	}
	return *s.creds, true
}

// Save stores new credentials in memory and on disk. Only the
// authentication flow calls this.
func (s *Store) Save(c Credentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal credentials: %w", err)
	}
	if err := os.WriteFile(s.path, b, 0o600); err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}
	s.creds = &c
	return nil
}

// Invalidate discards the credentials in memory and on disk. Called when
// any service call reports an authorization failure.
func (s *Store) Invalidate() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.creds = nil
	err := os.Remove(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// TokenExpiry reads the exp claim from the held token without verifying
// the signature. Used for display and for short-circuiting to the login
// screen; the server remains the authority on token validity.
func (s *Store) TokenExpiry() (time.Time, bool) {
	c, ok := s.Current()
	if !ok {
		return time.Time{}, false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(c.AccessToken, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// TokenExpired reports whether the held token carries an exp claim in the
// past. Tokens without a readable exp claim are assumed live.
func (s *Store) TokenExpired(now time.Time) bool {
	exp, ok := s.TokenExpiry()
	if !ok {
		return false
	}
	return now.After(exp)
}

// Subject reads the sub claim (the server-side user id) without verifying
// the signature. Empty when signed out or the claim is absent.
func (s *Store) Subject() string {
	c, ok := s.Current()
	if !ok {
		return ""
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(c.AccessToken, claims); err != nil {
		return ""
	}
	sub, err := claims.GetSubject()
	if err != nil {
		return ""
	}
	return sub
}
