package challenge

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/hogword/hogword-cli/internal/api"
	chal "github.com/hogword/hogword-cli/internal/challenge"
	"github.com/hogword/hogword-cli/internal/router"
	"github.com/hogword/hogword-cli/internal/screen"
	"github.com/hogword/hogword-cli/internal/store"
)

// mockValidator implements Validator for testing.
type mockValidator struct {
	result *api.ValidationResult
	err    error
	calls  int
}

func (m *mockValidator) Validate(_ context.Context, word, sentence string) (*api.ValidationResult, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

func (m *mockValidator) Source() string { return "local" }

// mockJournal implements store.JournalRepo for testing.
type mockJournal struct {
	attempts []store.AttemptEventData
	sessions []store.SessionEventData
}

func (m *mockJournal) AppendAttempt(_ context.Context, data store.AttemptEventData) error {
	m.attempts = append(m.attempts, data)
	return nil
}
func (m *mockJournal) AppendSession(_ context.Context, data store.SessionEventData) error {
	m.sessions = append(m.sessions, data)
	return nil
}
func (m *mockJournal) QueryAttempts(_ context.Context, _ store.QueryOpts) ([]store.AttemptRecord, error) {
	return nil, nil
}
func (m *mockJournal) QuerySessions(_ context.Context, _ store.QueryOpts) ([]store.SessionRecord, error) {
	return nil, nil
}
func (m *mockJournal) AttemptStats(_ context.Context, _ store.QueryOpts) (*store.AttemptStats, error) {
	return &store.AttemptStats{}, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testChallengeScreen() (*ChallengeScreen, *mockValidator, *mockJournal) {
	v := &mockValidator{
		result: &api.ValidationResult{Score: 8.5, Suggestion: "Nice rhythm.", CorrectedSentence: "Fixed."},
	}
	j := &mockJournal{}
	s := New(nil, v, j, zerolog.Nop())
	return s, v, j
}

// setWord puts the screen in the ready state with a word on screen,
// bypassing the network fetch.
func setWord(s *ChallengeScreen, word string) {
	s.state.Word = &api.Word{Word: word, Difficulty: api.DifficultyMedium}
	s.state.Loading = false
	s.state.Phase = chal.PhaseReady
}

func TestChallengeScreen_Title(t *testing.T) {
	s, _, _ := testChallengeScreen()
	if s.Title() != "Challenge" {
		t.Errorf("Title = %q", s.Title())
	}
}

func TestWordResult_PopulatesState(t *testing.T) {
	s, _, _ := testChallengeScreen()
	seq := chal.BeginWordFetch(s.state)

	scr, _ := s.Update(wordResultMsg{Seq: seq, Word: &api.Word{Word: "ephemeral", Difficulty: "Hard"}})
	ss := scr.(*ChallengeScreen)

	if ss.state.Word == nil || ss.state.Word.Word != "ephemeral" {
		t.Fatalf("word = %+v", ss.state.Word)
	}
	if ss.state.Loading {
		t.Error("Loading should clear when the word arrives")
	}
}

func TestWordResult_StaleResultDiscarded(t *testing.T) {
	s, _, _ := testChallengeScreen()
	oldSeq := chal.BeginWordFetch(s.state)
	chal.BeginWordFetch(s.state) // a newer fetch supersedes the first

	scr, _ := s.Update(wordResultMsg{Seq: oldSeq, Word: &api.Word{Word: "obsolete"}})
	ss := scr.(*ChallengeScreen)

	if ss.state.Word != nil {
		t.Errorf("stale result must be dropped, got %q", ss.state.Word.Word)
	}
	if !ss.state.Loading {
		t.Error("the newer fetch is still pending; Loading must stay set")
	}
}

func TestWordResult_ErrorShowsNotice(t *testing.T) {
	s, _, _ := testChallengeScreen()
	seq := chal.BeginWordFetch(s.state)

	scr, _ := s.Update(wordResultMsg{Seq: seq, Err: errors.New("connection refused")})
	ss := scr.(*ChallengeScreen)

	if ss.state.ErrNotice == "" {
		t.Error("expected a user-facing notice")
	}
	if ss.state.Loading {
		t.Error("Loading should clear on failure")
	}
}

func TestWordResult_AuthFailureSignsOut(t *testing.T) {
	s, _, _ := testChallengeScreen()

	_, cmd := s.Update(wordResultMsg{Err: &api.AuthError{Op: "acquire word"}})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg := cmd()
	if _, ok := msg.(authExpiredMsg); !ok {
		t.Fatalf("expected authExpiredMsg, got %T", msg)
	}

	_, cmd = s.Update(authExpiredMsg{})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(router.SignOutMsg); !ok {
		t.Fatal("expected SignOutMsg")
	}
}

func TestHistory_ReplacedNewestFirst(t *testing.T) {
	s, _, _ := testChallengeScreen()
	s.state.History = []api.HistoryEntry{{Word: "optimistic-leftover"}}

	base := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	scr, _ := s.Update(historyMsg{Entries: []api.HistoryEntry{
		{Word: "older", Datetime: base},
		{Word: "newer", Datetime: base.Add(time.Hour)},
	}})
	ss := scr.(*ChallengeScreen)

	if len(ss.state.History) != 2 {
		t.Fatalf("history length = %d, want 2", len(ss.state.History))
	}
	if ss.state.History[0].Word != "newer" {
		t.Errorf("history[0] = %q, want newer", ss.state.History[0].Word)
	}
}

func TestHistory_UpgradesPlayedFlag(t *testing.T) {
	s, _, _ := testChallengeScreen()
	setWord(s, "serendipity")

	scr, _ := s.Update(historyMsg{Entries: []api.HistoryEntry{{Word: "Serendipity"}}})
	ss := scr.(*ChallengeScreen)

	if !ss.state.HasPlayed {
		t.Error("history with the current word should mark it played")
	}
}

func TestHistory_ErrorKeepsOptimisticView(t *testing.T) {
	s, _, _ := testChallengeScreen()
	s.state.History = []api.HistoryEntry{{Word: "optimistic"}}

	scr, _ := s.Update(historyMsg{Err: errors.New("timeout")})
	ss := scr.(*ChallengeScreen)

	if len(ss.state.History) != 1 || ss.state.History[0].Word != "optimistic" {
		t.Errorf("failed refresh must not disturb the held history: %+v", ss.state.History)
	}
}

func TestSubmit_EmptyDraftIsNoop(t *testing.T) {
	s, v, _ := testChallengeScreen()
	setWord(s, "apple")

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Error("empty draft should not submit")
	}
	if s.state.Submitting {
		t.Error("state should be unchanged")
	}
	if v.calls != 0 {
		t.Errorf("validator calls = %d, want 0", v.calls)
	}
}

func TestSubmit_RunsValidation(t *testing.T) {
	s, v, _ := testChallengeScreen()
	setWord(s, "apple")
	s.input.SetValue("An apple a day keeps the doctor away.")

	scr, cmd := s.Update(specialKey(tea.KeyEnter))
	ss := scr.(*ChallengeScreen)

	if !ss.state.Submitting {
		t.Error("expected Submitting while validation is in flight")
	}
	if cmd == nil {
		t.Fatal("expected a validation command")
	}

	msg := cmd()
	vm, ok := msg.(validationMsg)
	if !ok {
		t.Fatalf("expected validationMsg, got %T", msg)
	}
	if v.calls != 1 {
		t.Errorf("validator calls = %d, want 1", v.calls)
	}
	if vm.Word != "apple" || vm.Result == nil || vm.Result.Score != 8.5 {
		t.Errorf("validationMsg = %+v", vm)
	}
}

func TestValidation_SuccessShowsReport(t *testing.T) {
	s, _, _ := testChallengeScreen()
	setWord(s, "apple")
	s.state.Draft = "An apple a day."
	chal.BeginSubmit(s.state)

	res := &api.ValidationResult{Score: 9, Suggestion: "Great."}
	scr, cmd := s.Update(validationMsg{Result: res, Word: "apple", Sentence: "An apple a day."})
	ss := scr.(*ChallengeScreen)

	if !ss.state.ReportVisible || ss.state.Report == nil {
		t.Fatal("expected the report panel")
	}
	if ss.state.Report.Score != 9 {
		t.Errorf("report score = %v", ss.state.Report.Score)
	}
	if len(ss.state.History) == 0 || ss.state.History[0].Word != "apple" {
		t.Error("expected an optimistic history entry")
	}
	if ss.attempts != 1 {
		t.Errorf("attempts = %d, want 1", ss.attempts)
	}
	if cmd == nil {
		t.Error("expected journal append and history refresh commands")
	}
}

func TestValidation_FailureKeepsDraft(t *testing.T) {
	s, _, _ := testChallengeScreen()
	setWord(s, "apple")
	s.state.Draft = "An apple a day."
	chal.BeginSubmit(s.state)

	scr, _ := s.Update(validationMsg{Err: errors.New("timeout")})
	ss := scr.(*ChallengeScreen)

	if ss.state.Submitting {
		t.Error("Submitting should clear on failure")
	}
	if ss.state.Draft != "An apple a day." {
		t.Errorf("draft must survive a failed submit, got %q", ss.state.Draft)
	}
	if ss.state.ErrNotice == "" {
		t.Error("expected a user-facing notice")
	}
	if ss.state.ReportVisible {
		t.Error("no report on failure")
	}
}

func TestSkip_CountsOnlyUnplayedWords(t *testing.T) {
	s, _, _ := testChallengeScreen()
	setWord(s, "apple")

	scr, _ := s.Update(specialKey(tea.KeyTab))
	ss := scr.(*ChallengeScreen)
	if ss.skips != 1 {
		t.Errorf("skips = %d, want 1", ss.skips)
	}
	if !ss.state.Loading {
		t.Error("tab should start the next acquisition")
	}

	// Advancing past an already-played word is not a skip.
	setWord(ss, "banana")
	ss.state.HasPlayed = true
	scr, _ = ss.Update(specialKey(tea.KeyTab))
	ss = scr.(*ChallengeScreen)
	if ss.skips != 1 {
		t.Errorf("skips = %d, want 1 (played word)", ss.skips)
	}
}

func TestSkip_IgnoredWhileLoading(t *testing.T) {
	s, _, _ := testChallengeScreen()
	setWord(s, "apple")
	s.state.Loading = true

	scr, cmd := s.Update(specialKey(tea.KeyTab))
	ss := scr.(*ChallengeScreen)
	if cmd != nil || ss.skips != 0 {
		t.Error("tab during a fetch should be a no-op")
	}
}

func TestReportDismiss_EnterAdvances(t *testing.T) {
	s, _, _ := testChallengeScreen()
	setWord(s, "apple")
	s.state.Report = &chal.Report{Score: 8}
	s.state.ReportVisible = true
	s.state.Phase = chal.PhaseReport

	scr, cmd := s.Update(specialKey(tea.KeyEnter))
	ss := scr.(*ChallengeScreen)

	if ss.state.ReportVisible {
		t.Error("report should be dismissed")
	}
	if !ss.state.Loading {
		t.Error("enter should advance to the next word")
	}
	if cmd == nil {
		t.Error("expected an acquisition command")
	}
}

func TestReportDismiss_OtherKeyKeepsWord(t *testing.T) {
	s, _, _ := testChallengeScreen()
	setWord(s, "apple")
	s.state.HasPlayed = true
	s.state.Report = &chal.Report{Score: 8}
	s.state.ReportVisible = true
	s.state.Phase = chal.PhaseReport

	scr, _ := s.Update(keyPress('x'))
	ss := scr.(*ChallengeScreen)

	if ss.state.ReportVisible {
		t.Error("report should be dismissed")
	}
	if ss.state.Loading {
		t.Error("the same word should stay on screen")
	}
	if ss.state.Word == nil || ss.state.Word.Word != "apple" || !ss.state.HasPlayed {
		t.Error("word and played flag must be retained")
	}
}

func TestQuitConfirm(t *testing.T) {
	s, _, _ := testChallengeScreen()
	setWord(s, "apple")

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	ss := scr.(*ChallengeScreen)
	if !ss.confirmQuit {
		t.Fatal("expected quit confirmation")
	}

	scr, _ = ss.Update(keyPress('n'))
	ss = scr.(*ChallengeScreen)
	if ss.confirmQuit {
		t.Error("n should dismiss the confirmation")
	}
}

func TestQuitConfirm_Yes(t *testing.T) {
	s, _, _ := testChallengeScreen()
	setWord(s, "apple")

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	_, cmd := scr.Update(keyPress('y'))
	if cmd == nil {
		t.Error("expected a command after quit confirmation")
	}
}

func TestJournal_AttemptRecordsSource(t *testing.T) {
	s, _, j := testChallengeScreen()
	setWord(s, "apple")

	res := &api.ValidationResult{Score: 7.5, Suggestion: "Good.", CorrectedSentence: "Fixed."}
	cmd := s.appendAttempt("apple", "An apple a day.", res)
	if cmd == nil {
		t.Fatal("expected an append command")
	}
	cmd()

	if len(j.attempts) != 1 {
		t.Fatalf("attempts = %d, want 1", len(j.attempts))
	}
	got := j.attempts[0]
	if got.Word != "apple" || got.Score != 7.5 || got.ScoredBy != "local" {
		t.Errorf("attempt = %+v", got)
	}
	if got.Difficulty != api.DifficultyMedium {
		t.Errorf("difficulty = %q", got.Difficulty)
	}
	if got.SessionID == "" {
		t.Error("expected a session id")
	}
}

func TestJournal_SessionEvents(t *testing.T) {
	s, _, j := testChallengeScreen()
	s.attempts = 3
	s.skips = 1

	cmd := s.appendSessionEvent("end")
	if cmd == nil {
		t.Fatal("expected an append command")
	}
	cmd()

	if len(j.sessions) != 1 {
		t.Fatalf("sessions = %d, want 1", len(j.sessions))
	}
	got := j.sessions[0]
	if got.Action != "end" || got.Attempts != 3 || got.Skips != 1 {
		t.Errorf("session event = %+v", got)
	}
}

func TestJournal_NilRepoSkipsAppend(t *testing.T) {
	v := &mockValidator{result: &api.ValidationResult{Score: 5}}
	s := New(nil, v, nil, zerolog.Nop())

	if cmd := s.appendAttempt("apple", "x", v.result); cmd != nil {
		t.Error("nil journal should produce no append command")
	}
	if cmd := s.appendSessionEvent("start"); cmd != nil {
		t.Error("nil journal should produce no session command")
	}
}
