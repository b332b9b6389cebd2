package challenge

import (
	"sort"
	"strings"
	"time"

	"github.com/hogword/hogword-cli/internal/api"
)

// BeginWordFetch marks a word acquisition as in flight and returns its
// generation token. Starting a fetch supersedes any earlier pending fetch:
// the token of a superseded request no longer matches and its result will
// be discarded on arrival. The draft is cleared on call start.
func BeginWordFetch(s *State) int {
	s.WordSeq++
	s.Loading = true
	s.Draft = ""
	s.ErrNotice = ""
	s.Phase = PhaseLoadingWord
	return s.WordSeq
}

// ApplyWordResult folds a word acquisition result into the state. It
// returns true when the result was stale (an acquisition with a newer
// token has started since) and was discarded without touching the state.
func ApplyWordResult(s *State, seq int, w *api.Word, err error) (stale bool) {
	if seq != s.WordSeq {
		return true
	}

	s.Loading = false

	if err != nil || w == nil {
		// Acquisition failed: the previous word, if any, stays on screen
		// and the user retries by repeating the action.
		if s.Word != nil {
			s.Phase = PhaseReady
		} else {
			s.Phase = PhaseIdle
		}
		return false
	}

	s.Word = w
	s.HasPlayed = ComputeHasPlayed(w, s.History)
	s.Phase = PhaseReady
	return false
}

// ComputeHasPlayed applies the play policy: the server's flag wins, with a
// client-side safety net that matches the word case-insensitively against
// the held history in case the flag is stale.
func ComputeHasPlayed(w *api.Word, history []api.HistoryEntry) bool {
	if w.Play != 0 {
		return true
	}
	for _, h := range history {
		if strings.EqualFold(h.Word, w.Word) {
			return true
		}
	}
	return false
}

// ReplaceHistory installs an authoritative history snapshot, sorted newest
// first regardless of server order. The previous list is discarded, never
// merged.
func ReplaceHistory(s *State, entries []api.HistoryEntry) {
	sorted := make([]api.HistoryEntry, len(entries))
	copy(sorted, entries)
	SortNewestFirst(sorted)
	s.History = sorted
}

// SortNewestFirst orders entries by timestamp descending, in place.
// The sort is stable so entries with equal timestamps keep server order.
func SortNewestFirst(entries []api.HistoryEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Datetime.After(entries[j].Datetime)
	})
}

// CanSubmit reports whether a submit action may start: a non-blank draft,
// a current word, and no acquisition or submission already in flight.
func CanSubmit(s *State) bool {
	if s.Submitting || s.Loading {
		return false
	}
	if s.Word == nil {
		return false
	}
	return strings.TrimSpace(s.Draft) != ""
}

// BeginSubmit transitions to Submitting. Returns false (a no-op, no state
// change) when the precondition does not hold.
func BeginSubmit(s *State) bool {
	if !CanSubmit(s) {
		return false
	}
	s.Submitting = true
	s.OverlayVisible = true
	s.ErrNotice = ""
	s.Phase = PhaseSubmitting
	return true
}

// ApplySubmitSuccess folds a successful validation into the state: the
// overlay is hidden, an optimistic entry is prepended, the report is
// populated and shown, the word is marked played, and the draft cleared.
// The caller then issues the authoritative history refresh.
func ApplySubmitSuccess(s *State, res *api.ValidationResult, now time.Time) {
	entry := OptimisticEntry(s.Word.Word, s.Draft, res, now)
	s.History = append([]api.HistoryEntry{entry}, s.History...)

	s.Report = &Report{
		Score:             res.Score,
		Feedback:          FeedbackOrDefault(res.Suggestion),
		CorrectedSentence: res.CorrectedSentence,
	}

	s.Submitting = false
	s.OverlayVisible = false
	s.ReportVisible = true
	s.HasPlayed = true
	s.Draft = ""
	s.Phase = PhaseReport
}

// ApplySubmitFailure rolls a failed validation back to Ready: overlay
// hidden, notice shown, draft preserved so the user can retry, history and
// report untouched.
func ApplySubmitFailure(s *State, notice string) {
	s.Submitting = false
	s.OverlayVisible = false
	s.ErrNotice = notice
	s.Phase = PhaseReady
}

// DismissReport clears the report. With advance=false the current word and
// its played flag are retained so the user may keep writing sentences for
// it; with advance=true the caller follows up with a generate-next
// acquisition.
func DismissReport(s *State) {
	s.Report = nil
	s.ReportVisible = false
	s.OverlayVisible = false
	if s.Phase == PhaseReport {
		s.Phase = PhaseReady
	}
}

// OptimisticEntry synthesizes the history record for a submission that the
// server has confirmed but the authoritative log has not yet reflected.
func OptimisticEntry(word, sentence string, res *api.ValidationResult, now time.Time) api.HistoryEntry {
	return api.HistoryEntry{
		Datetime:          now,
		Word:              word,
		UserSentence:      sentence,
		Score:             res.Score,
		Suggestion:        res.Suggestion,
		CorrectedSentence: res.CorrectedSentence,
	}
}

// FeedbackOrDefault substitutes the fixed default string when the service
// omits a suggestion.
func FeedbackOrDefault(suggestion string) string {
	if strings.TrimSpace(suggestion) == "" {
		return DefaultFeedback
	}
	return suggestion
}
