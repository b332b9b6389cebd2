package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/hogword/hogword-cli/internal/auth"
)

func testCreds(t *testing.T, token string) *auth.Store {
	t.Helper()
	s, err := auth.OpenPath(filepath.Join(t.TempDir(), "credentials.json"))
	if err != nil {
		t.Fatalf("open credentials store: %v", err)
	}
	if token != "" {
		if err := s.Save(auth.Credentials{AccessToken: token, Email: "tester@example.com"}); err != nil {
			t.Fatalf("save credentials: %v", err)
		}
	}
	return s
}

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(Config{BaseURL: srv.URL, Timeout: 2 * time.Second}, testCreds(t, "test-token"), zerolog.Nop())
}

func TestAcquireWord_SendsModeAndBearer(t *testing.T) {
	var gotAuth, gotMode string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotMode = r.URL.Query().Get("state")
		json.NewEncoder(w).Encode(map[string]any{
			"word": "ephemeral", "difficulty": "Medium", "play": 1,
		})
	})

	word, err := c.AcquireWord(t.Context(), ModeGenerateNext)
	if err != nil {
		t.Fatalf("AcquireWord: %v", err)
	}
	if gotAuth != "Bearer test-token" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotMode != "gen" {
		t.Errorf("state = %q, want gen", gotMode)
	}
	if word.Word != "ephemeral" || word.Difficulty != DifficultyMedium || word.Play != 1 {
		t.Errorf("word = %+v", word)
	}
}

func TestAcquireWord_UnauthorizedIsAuthError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := c.AcquireWord(t.Context(), ModeFetchExisting)
	if !IsAuth(err) {
		t.Fatalf("expected auth error, got %v", err)
	}
}

func TestMissingCredentialFailsBeforeRequest(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	t.Cleanup(srv.Close)
	c := New(Config{BaseURL: srv.URL}, testCreds(t, ""), zerolog.Nop())

	_, err := c.AcquireWord(t.Context(), ModeFetchExisting)
	if !IsAuth(err) {
		t.Fatalf("expected auth error, got %v", err)
	}
	if hits != 0 {
		t.Errorf("no request should be sent without a credential, got %d", hits)
	}
}

func TestTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()
	c := New(Config{BaseURL: url, Timeout: time.Second}, testCreds(t, "tok"), zerolog.Nop())

	_, err := c.TodayHistory(t.Context())
	var te *TransportError
	if !errors.As(err, &te) {
		t.Fatalf("expected TransportError, got %v", err)
	}
	if IsAuth(err) {
		t.Error("transport failures must not count as auth failures")
	}
}

func TestStatusError_CarriesBodySnippet(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"detail":"word service exploded"}`))
	})

	_, err := c.AcquireWord(t.Context(), ModeFetchExisting)
	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if se.Status != http.StatusInternalServerError {
		t.Errorf("status = %d", se.Status)
	}
	if se.Body == "" {
		t.Error("expected the body snippet to be captured")
	}
}

func TestTodayHistory_ParsesTimestampVariants(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"datetime":"2026-03-14T09:00:00Z","word":"a","user_sentence":"s","score":7},
			{"datetime":"2026-03-14T09:05:00+05:30","word":"b","user_sentence":"s","score":8},
			{"datetime":"2026-03-14T09:10:00.123456","word":"c","user_sentence":"s","score":9},
			{"datetime":"2026-03-14T09:15:00","word":"d","user_sentence":"s","score":6}
		]`))
	})

	entries, err := c.TodayHistory(t.Context())
	if err != nil {
		t.Fatalf("TodayHistory: %v", err)
	}
	if len(entries) != 4 {
		t.Fatalf("entries = %d, want 4", len(entries))
	}
	for _, e := range entries {
		if e.Datetime.IsZero() {
			t.Errorf("entry %q has an unparsed timestamp", e.Word)
		}
	}
}

func TestTodayHistory_NonArrayBodyIsEmpty(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"detail":"no session today"}`))
	})

	entries, err := c.TodayHistory(t.Context())
	if err != nil {
		t.Fatalf("a non-list body must not fail: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("entries = %d, want 0", len(entries))
	}
}

func TestValidateSentence_OK(t *testing.T) {
	var gotBody sentenceInput
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"score":8.5,"suggestion":"Nice.","corrected_sentence":"Fixed."}`))
	})

	res, err := c.ValidateSentence(t.Context(), "apple", "An apple a day.")
	if err != nil {
		t.Fatalf("ValidateSentence: %v", err)
	}
	if gotBody.Word != "apple" || gotBody.UserSentence != "An apple a day." {
		t.Errorf("request body = %+v", gotBody)
	}
	if res.Score != 8.5 || res.Suggestion != "Nice." || res.CorrectedSentence != "Fixed." {
		t.Errorf("result = %+v", res)
	}
}

func TestValidateSentence_RejectsNonConformingBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing score", `{"suggestion":"nope"}`},
		{"score out of range", `{"score":42}`},
		{"score wrong type", `{"score":"high"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			})

			_, err := c.ValidateSentence(t.Context(), "apple", "An apple.")
			var se *StatusError
			if !errors.As(err, &se) {
				t.Fatalf("expected StatusError, got %v", err)
			}
			if se.Status != http.StatusBadGateway {
				t.Errorf("status = %d, want %d", se.Status, http.StatusBadGateway)
			}
		})
	}
}

func TestSignIn_NoBearerRequired(t *testing.T) {
	var gotAuth string
	var gotReq AuthRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&gotReq)
		json.NewEncoder(w).Encode(AuthResponse{AccessToken: "fresh-token", TokenType: "bearer", UserID: "u-1"})
	}))
	t.Cleanup(srv.Close)

	// A signed-out store must not block sign-in.
	c := New(Config{BaseURL: srv.URL}, testCreds(t, ""), zerolog.Nop())
	resp, err := c.SignIn(t.Context(), "tester@example.com", "hunter2")
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("sign-in must not send a bearer, got %q", gotAuth)
	}
	if gotReq.Email != "tester@example.com" || gotReq.Password != "hunter2" {
		t.Errorf("request = %+v", gotReq)
	}
	if resp.AccessToken != "fresh-token" {
		t.Errorf("token = %q", resp.AccessToken)
	}
}

func TestWordsPerDay_DecodesBothShapes(t *testing.T) {
	var asObject WordsPerDay
	if err := json.Unmarshal([]byte(`{"2026-03-13":2,"2026-03-14":5}`), &asObject); err != nil {
		t.Fatalf("object shape: %v", err)
	}
	if asObject["2026-03-14"] != 5 {
		t.Errorf("object shape = %v", asObject)
	}

	var asList WordsPerDay
	if err := json.Unmarshal([]byte(`[{"date":"2026-03-14","count":5}]`), &asList); err != nil {
		t.Fatalf("list shape: %v", err)
	}
	if asList["2026-03-14"] != 5 {
		t.Errorf("list shape = %v", asList)
	}

	var unknown WordsPerDay
	if err := json.Unmarshal([]byte(`"surprise"`), &unknown); err != nil {
		t.Fatalf("unknown shape must not fail: %v", err)
	}
	if len(unknown) != 0 {
		t.Errorf("unknown shape = %v, want empty", unknown)
	}
}

func TestCheckVerdict(t *testing.T) {
	if err := CheckVerdict(json.RawMessage(`{"score":7,"suggestion":null}`)); err != nil {
		t.Errorf("valid verdict rejected: %v", err)
	}
	if err := CheckVerdict(json.RawMessage(`{"score":-1}`)); err == nil {
		t.Error("negative score accepted")
	}
	if err := CheckVerdict(json.RawMessage(`not json`)); err == nil {
		t.Error("malformed body accepted")
	}
}
