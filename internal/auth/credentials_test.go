package auth

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func tempStorePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "credentials.json")
}

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestOpenPath_MissingFileMeansSignedOut(t *testing.T) {
	s, err := OpenPath(tempStorePath(t))
	if err != nil {
		t.Fatalf("OpenPath: %v", err)
	}
	if _, ok := s.Current(); ok {
		t.Error("expected no credentials for a missing file")
	}
}

func TestSaveAndReload(t *testing.T) {
	path := tempStorePath(t)
	s, err := OpenPath(path)
	if err != nil {
		t.Fatalf("OpenPath: %v", err)
	}

	want := Credentials{AccessToken: "tok-123", Email: "tester@example.com"}
	if err := s.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("file mode = %o, want 600", perm)
	}

	reopened, err := OpenPath(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	got, ok := reopened.Current()
	if !ok {
		t.Fatal("expected credentials after reload")
	}
	if got != want {
		t.Errorf("reloaded = %+v, want %+v", got, want)
	}
}

func TestInvalidate(t *testing.T) {
	path := tempStorePath(t)
	s, _ := OpenPath(path)
	if err := s.Save(Credentials{AccessToken: "tok"}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if err := s.Invalidate(); err != nil {
		t.Fatalf("Invalidate: %v", err)
	}
	if _, ok := s.Current(); ok {
		t.Error("credentials should be gone")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("credentials file should be removed")
	}

	// Invalidating an already-empty store is not an error.
	if err := s.Invalidate(); err != nil {
		t.Errorf("second Invalidate: %v", err)
	}
}

func TestCorruptFileTreatedAsSignedOut(t *testing.T) {
	path := tempStorePath(t)
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	s, err := OpenPath(path)
	if err != nil {
		t.Fatalf("a corrupt file must not be fatal: %v", err)
	}
	if _, ok := s.Current(); ok {
		t.Error("corrupt credentials should read as signed out")
	}
}

func TestTokenExpiryAndSubject(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signedToken(t, jwt.MapClaims{
		"sub": "user-42",
		"exp": exp.Unix(),
	})

	s, _ := OpenPath(tempStorePath(t))
	if err := s.Save(Credentials{AccessToken: token, Email: "tester@example.com"}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, ok := s.TokenExpiry()
	if !ok {
		t.Fatal("expected a readable exp claim")
	}
	if !got.Equal(exp) {
		t.Errorf("expiry = %v, want %v", got, exp)
	}
	if s.TokenExpired(exp.Add(-time.Minute)) {
		t.Error("token should still be live before exp")
	}
	if !s.TokenExpired(exp.Add(time.Minute)) {
		t.Error("token should be expired after exp")
	}
	if sub := s.Subject(); sub != "user-42" {
		t.Errorf("subject = %q", sub)
	}
}

func TestTokenWithoutExpAssumedLive(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"sub": "user-42"})

	s, _ := OpenPath(tempStorePath(t))
	if err := s.Save(Credentials{AccessToken: token}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if _, ok := s.TokenExpiry(); ok {
		t.Error("no exp claim should report not-ok")
	}
	if s.TokenExpired(time.Now().Add(1000 * time.Hour)) {
		t.Error("a token without exp is assumed live")
	}
}

func TestOpaqueTokenHasNoClaims(t *testing.T) {
	s, _ := OpenPath(tempStorePath(t))
	if err := s.Save(Credentials{AccessToken: "not-a-jwt"}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if _, ok := s.TokenExpiry(); ok {
		t.Error("opaque token should have no expiry")
	}
	if sub := s.Subject(); sub != "" {
		t.Errorf("subject = %q, want empty", sub)
	}
	if s.TokenExpired(time.Now()) {
		t.Error("opaque token is assumed live")
	}
}
