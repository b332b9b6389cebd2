package challenge

import (
	"github.com/hogword/hogword-cli/internal/api"
)

// Phase represents the current phase of the challenge session.
type Phase int

const (
	PhaseIdle        Phase = iota // No word held yet
	PhaseLoadingWord              // Word acquisition in flight
	PhaseReady                    // Word on screen, accepting a draft
	PhaseSubmitting               // Validation request in flight
	PhaseReport                   // Report panel shown for the last submission
)

// DefaultFeedback is shown when the scoring service omits a suggestion.
const DefaultFeedback = "No feedback provided."

// Report is the outcome of the most recent submission. Created on
// successful validation, destroyed when dismissed or superseded.
type Report struct {
	Score             float64
	Feedback          string
	CorrectedSentence string
}

// State is the challenge controller's session state. It is owned by a
// single screen instance and mutated only on the Bubble Tea update loop;
// no locking is needed.
type State struct {
	// Word is the current practice target (nil until the first successful
	// acquisition). Replaced wholesale on every fetch.
	Word *api.Word

	// History is today's attempts, newest first. Optimistically prepended
	// on submission, fully replaced by every authoritative refresh.
	History []api.HistoryEntry

	// Draft is the sentence being composed. Cleared when a word
	// acquisition starts and after a successful submission; preserved on
	// a failed one so the user can retry.
	Draft string

	// HasPlayed is true once the current word has been attempted, either
	// per the server's play flag or per the held history.
	HasPlayed bool

	// Loading is true while a word acquisition is in flight.
	Loading bool

	// Submitting is true while a validation request is in flight. The
	// submit affordance is disabled for the duration.
	Submitting bool

	// OverlayVisible mirrors Submitting except on error, where the
	// overlay is cleared while the error is surfaced separately.
	OverlayVisible bool

	// Report is the last submission's verdict; ReportVisible controls the
	// report panel.
	Report        *Report
	ReportVisible bool

	// ErrNotice is a user-facing notice for a rejected submission.
	// Cleared on the next user action.
	ErrNotice string

	// WordSeq is the generation token of the most recent word acquisition.
	// Results carrying an older token are stale and discarded.
	WordSeq int

	Phase Phase
}

// NewState returns the initial (idle) controller state.
func NewState() *State {
	return &State{Phase: PhaseIdle}
}
