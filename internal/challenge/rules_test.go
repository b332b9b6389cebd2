package challenge

import (
	"errors"
	"testing"
	"time"

	"github.com/hogword/hogword-cli/internal/api"
)

func testWord(word string) *api.Word {
	return &api.Word{Word: word, Difficulty: api.DifficultyMedium}
}

func TestBeginWordFetch_SupersedesEarlierFetch(t *testing.T) {
	s := NewState()
	s.Draft = "half-typed sentence"
	s.ErrNotice = "old notice"

	seq1 := BeginWordFetch(s)
	seq2 := BeginWordFetch(s)

	if seq2 <= seq1 {
		t.Errorf("second fetch token %d should exceed first %d", seq2, seq1)
	}
	if !s.Loading {
		t.Error("expected Loading while a fetch is in flight")
	}
	if s.Draft != "" {
		t.Errorf("draft should be cleared on fetch start, got %q", s.Draft)
	}
	if s.ErrNotice != "" {
		t.Errorf("notice should be cleared on fetch start, got %q", s.ErrNotice)
	}
	if s.Phase != PhaseLoadingWord {
		t.Errorf("phase = %v, want %v", s.Phase, PhaseLoadingWord)
	}
}

func TestApplyWordResult_StaleResultDiscarded(t *testing.T) {
	s := NewState()
	seq1 := BeginWordFetch(s)
	BeginWordFetch(s) // supersedes seq1

	stale := ApplyWordResult(s, seq1, testWord("obsolete"), nil)

	if !stale {
		t.Fatal("result for a superseded token should be reported stale")
	}
	if s.Word != nil {
		t.Errorf("stale result must not install a word, got %q", s.Word.Word)
	}
	if !s.Loading {
		t.Error("the newer fetch is still in flight; Loading must stay set")
	}
}

func TestApplyWordResult_InstallsWord(t *testing.T) {
	s := NewState()
	seq := BeginWordFetch(s)

	stale := ApplyWordResult(s, seq, testWord("ephemeral"), nil)

	if stale {
		t.Fatal("current token should not be stale")
	}
	if s.Word == nil || s.Word.Word != "ephemeral" {
		t.Fatalf("word not installed: %+v", s.Word)
	}
	if s.Loading {
		t.Error("Loading should clear on arrival")
	}
	if s.Phase != PhaseReady {
		t.Errorf("phase = %v, want %v", s.Phase, PhaseReady)
	}
}

func TestApplyWordResult_ErrorKeepsPreviousWord(t *testing.T) {
	s := NewState()
	seq := BeginWordFetch(s)
	ApplyWordResult(s, seq, testWord("keeper"), nil)

	seq = BeginWordFetch(s)
	ApplyWordResult(s, seq, nil, errors.New("connection refused"))

	if s.Word == nil || s.Word.Word != "keeper" {
		t.Errorf("previous word should survive a failed fetch, got %+v", s.Word)
	}
	if s.Phase != PhaseReady {
		t.Errorf("phase = %v, want %v", s.Phase, PhaseReady)
	}
}

func TestApplyWordResult_ErrorWithoutWordGoesIdle(t *testing.T) {
	s := NewState()
	seq := BeginWordFetch(s)
	ApplyWordResult(s, seq, nil, errors.New("boom"))

	if s.Phase != PhaseIdle {
		t.Errorf("phase = %v, want %v", s.Phase, PhaseIdle)
	}
}

func TestComputeHasPlayed(t *testing.T) {
	history := []api.HistoryEntry{
		{Word: "Serendipity"},
		{Word: "ubiquitous"},
	}

	tests := []struct {
		name string
		word *api.Word
		want bool
	}{
		{"server flag wins", &api.Word{Word: "fresh", Play: 1}, true},
		{"history match is case-insensitive", &api.Word{Word: "SERENDIPITY"}, true},
		{"no flag, no match", &api.Word{Word: "fresh"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeHasPlayed(tt.word, history); got != tt.want {
				t.Errorf("ComputeHasPlayed(%q) = %v, want %v", tt.word.Word, got, tt.want)
			}
		})
	}
}

func TestReplaceHistory_SortsNewestFirstAndDiscardsOld(t *testing.T) {
	s := NewState()
	s.History = []api.HistoryEntry{{Word: "stale-optimistic"}}

	base := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	ReplaceHistory(s, []api.HistoryEntry{
		{Word: "first", Datetime: base},
		{Word: "third", Datetime: base.Add(2 * time.Hour)},
		{Word: "second", Datetime: base.Add(time.Hour)},
	})

	if len(s.History) != 3 {
		t.Fatalf("history length = %d, want 3 (previous list must be discarded)", len(s.History))
	}
	want := []string{"third", "second", "first"}
	for i, w := range want {
		if s.History[i].Word != w {
			t.Errorf("history[%d] = %q, want %q", i, s.History[i].Word, w)
		}
	}
}

func TestSortNewestFirst_StableForEqualTimestamps(t *testing.T) {
	at := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	entries := []api.HistoryEntry{
		{Word: "a", Datetime: at},
		{Word: "b", Datetime: at},
		{Word: "c", Datetime: at},
	}
	SortNewestFirst(entries)

	for i, w := range []string{"a", "b", "c"} {
		if entries[i].Word != w {
			t.Errorf("entries[%d] = %q, want %q (server order must be kept)", i, entries[i].Word, w)
		}
	}
}

func TestCanSubmit(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*State)
		want  bool
	}{
		{"ready", func(s *State) {}, true},
		{"blank draft", func(s *State) { s.Draft = "" }, false},
		{"whitespace draft", func(s *State) { s.Draft = "   " }, false},
		{"no word", func(s *State) { s.Word = nil }, false},
		{"already submitting", func(s *State) { s.Submitting = true }, false},
		{"fetch in flight", func(s *State) { s.Loading = true }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState()
			s.Word = testWord("apple")
			s.Draft = "An apple a day."
			tt.setup(s)
			if got := CanSubmit(s); got != tt.want {
				t.Errorf("CanSubmit = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBeginSubmit_NoopWhenBlocked(t *testing.T) {
	s := NewState()
	s.Word = testWord("apple")
	s.Draft = "  "

	if BeginSubmit(s) {
		t.Fatal("BeginSubmit should refuse a blank draft")
	}
	if s.Submitting || s.OverlayVisible {
		t.Error("a refused submit must not change state")
	}
}

func TestApplySubmitSuccess(t *testing.T) {
	s := NewState()
	s.Word = testWord("apple")
	s.Draft = "An apple a day keeps the doctor away."
	s.History = []api.HistoryEntry{{Word: "earlier"}}
	BeginSubmit(s)

	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	res := &api.ValidationResult{Score: 8.5, Suggestion: "Nice rhythm.", CorrectedSentence: "An apple a day keeps the doctor away."}
	ApplySubmitSuccess(s, res, now)

	if len(s.History) != 2 || s.History[0].Word != "apple" {
		t.Fatalf("optimistic entry not prepended: %+v", s.History)
	}
	if s.History[0].Datetime != now {
		t.Errorf("optimistic entry time = %v, want %v", s.History[0].Datetime, now)
	}
	if s.Report == nil || s.Report.Score != 8.5 || s.Report.Feedback != "Nice rhythm." {
		t.Errorf("report = %+v", s.Report)
	}
	if !s.ReportVisible || s.Submitting || s.OverlayVisible {
		t.Error("expected report shown with overlay cleared")
	}
	if !s.HasPlayed {
		t.Error("a scored word counts as played")
	}
	if s.Draft != "" {
		t.Errorf("draft should clear after success, got %q", s.Draft)
	}
}

func TestApplySubmitSuccess_EmptySuggestionGetsDefault(t *testing.T) {
	s := NewState()
	s.Word = testWord("apple")
	s.Draft = "An apple."
	BeginSubmit(s)

	ApplySubmitSuccess(s, &api.ValidationResult{Score: 6, Suggestion: "  "}, time.Now())

	if s.Report.Feedback != DefaultFeedback {
		t.Errorf("feedback = %q, want %q", s.Report.Feedback, DefaultFeedback)
	}
}

func TestApplySubmitFailure_PreservesDraftAndHistory(t *testing.T) {
	s := NewState()
	s.Word = testWord("apple")
	s.Draft = "An apple a day."
	s.History = []api.HistoryEntry{{Word: "earlier"}}
	BeginSubmit(s)

	ApplySubmitFailure(s, "Could not score your sentence. Try again.")

	if s.Draft != "An apple a day." {
		t.Errorf("draft must survive a failed submit, got %q", s.Draft)
	}
	if len(s.History) != 1 {
		t.Errorf("history must be untouched, got %d entries", len(s.History))
	}
	if s.Submitting || s.OverlayVisible {
		t.Error("overlay should clear on failure")
	}
	if s.ErrNotice == "" {
		t.Error("expected a user-facing notice")
	}
	if s.Phase != PhaseReady {
		t.Errorf("phase = %v, want %v", s.Phase, PhaseReady)
	}
}

func TestDismissReport_KeepsWordAndPlayedFlag(t *testing.T) {
	s := NewState()
	s.Word = testWord("apple")
	s.HasPlayed = true
	s.Report = &Report{Score: 7}
	s.ReportVisible = true
	s.Phase = PhaseReport

	DismissReport(s)

	if s.Report != nil || s.ReportVisible {
		t.Error("report should be gone")
	}
	if s.Word == nil || !s.HasPlayed {
		t.Error("dismissing the report must not touch the word or its played flag")
	}
	if s.Phase != PhaseReady {
		t.Errorf("phase = %v, want %v", s.Phase, PhaseReady)
	}
}

func TestFeedbackOrDefault(t *testing.T) {
	if got := FeedbackOrDefault("Try a comma."); got != "Try a comma." {
		t.Errorf("got %q", got)
	}
	if got := FeedbackOrDefault("   "); got != DefaultFeedback {
		t.Errorf("got %q, want %q", got, DefaultFeedback)
	}
}
