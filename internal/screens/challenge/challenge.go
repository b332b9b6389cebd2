package challenge

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/hogword/hogword-cli/internal/api"
	chal "github.com/hogword/hogword-cli/internal/challenge"
	"github.com/hogword/hogword-cli/internal/router"
	"github.com/hogword/hogword-cli/internal/screen"
	"github.com/hogword/hogword-cli/internal/store"
	"github.com/hogword/hogword-cli/internal/ui/components"
	"github.com/hogword/hogword-cli/internal/ui/layout"
)

// Validator scores a sentence for a word. The remote implementation
// calls the Hogword API; the local one runs the offline scorer.
type Validator interface {
	Validate(ctx context.Context, word, sentence string) (*api.ValidationResult, error)

	// Source labels journal entries: "remote" or "local".
	Source() string
}

// RemoteValidator validates through the Hogword API.
type RemoteValidator struct {
	Client *api.Client
}

func (v *RemoteValidator) Validate(ctx context.Context, word, sentence string) (*api.ValidationResult, error) {
	return v.Client.ValidateSentence(ctx, word, sentence)
}

func (v *RemoteValidator) Source() string { return "remote" }

// ChallengeScreen implements screen.Screen for the word challenge.
type ChallengeScreen struct {
	client    *api.Client
	validator Validator
	journal   store.JournalRepo // nil when the local journal is unavailable
	log       zerolog.Logger

	state *chal.State
	input components.TextInput

	sessionID   string
	started     time.Time
	attempts    int
	skips       int
	confirmQuit bool
}

var _ screen.Screen = (*ChallengeScreen)(nil)
var _ screen.KeyHintProvider = (*ChallengeScreen)(nil)

// New creates a new ChallengeScreen with injected dependencies.
func New(client *api.Client, validator Validator, journal store.JournalRepo, log zerolog.Logger) *ChallengeScreen {
	return &ChallengeScreen{
		client:    client,
		validator: validator,
		journal:   journal,
		log:       log.With().Str("screen", "challenge").Logger(),
		state:     chal.NewState(),
		input:     components.NewTextInput("Write a sentence using the word...", 200),
		sessionID: uuid.New().String(),
		started:   time.Now(),
	}
}

func (s *ChallengeScreen) Init() tea.Cmd {
	seq := chal.BeginWordFetch(s.state)
	return tea.Batch(
		s.appendSessionEvent("start"),
		s.fetchWord(seq, api.ModeFetchExisting),
		s.fetchHistory(),
		s.input.Init(),
	)
}

func (s *ChallengeScreen) Title() string {
	return "Challenge"
}

func (s *ChallengeScreen) KeyHints() []layout.KeyHint {
	if s.confirmQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.state.ReportVisible {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next word"},
			{Key: "Esc", Description: "Same word again"},
		}
	}
	if s.state.Submitting {
		return nil
	}
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
	}
	if s.state.HasPlayed {
		hints = append(hints, layout.KeyHint{Key: "Tab", Description: "Next word"})
	} else {
		hints = append(hints, layout.KeyHint{Key: "Tab", Description: "Skip word"})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	return hints
}

func (s *ChallengeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case wordResultMsg:
		return s.handleWordResult(msg)

	case historyMsg:
		return s.handleHistory(msg)

	case validationMsg:
		return s.handleValidation(msg)

	case authExpiredMsg:
		return s, func() tea.Msg { return router.SignOutMsg{} }

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	// Forward to input while a draft is editable.
	if s.draftEditable() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		s.state.Draft = s.input.Value()
		return s, cmd
	}

	return s, nil
}

func (s *ChallengeScreen) draftEditable() bool {
	return !s.confirmQuit &&
		!s.state.Submitting &&
		!s.state.ReportVisible &&
		s.state.Word != nil
}

func (s *ChallengeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.confirmQuit {
		switch key {
		case "y", "Y":
			s.confirmQuit = false
			return s, s.endSession()
		case "n", "N", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	if s.state.Submitting {
		// The overlay blocks input until the verdict arrives.
		return s, nil
	}

	if s.state.ReportVisible {
		switch key {
		case "enter", "tab":
			chal.DismissReport(s.state)
			return s, s.nextWord()
		default:
			chal.DismissReport(s.state)
			s.resetInput()
			return s, s.input.Init()
		}
	}

	switch key {
	case "esc":
		s.confirmQuit = true
		return s, nil
	case "enter":
		return s.submit()
	case "tab":
		if s.state.Loading {
			return s, nil
		}
		if s.state.Word != nil && !s.state.HasPlayed {
			s.skips++
		}
		return s, s.nextWord()
	}

	if s.draftEditable() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		s.state.Draft = s.input.Value()
		return s, cmd
	}

	return s, nil
}

func (s *ChallengeScreen) handleWordResult(msg wordResultMsg) (screen.Screen, tea.Cmd) {
	if api.IsAuth(msg.Err) {
		return s, func() tea.Msg { return authExpiredMsg{} }
	}

	stale := chal.ApplyWordResult(s.state, msg.Seq, msg.Word, msg.Err)
	if stale {
		return s, nil
	}

	if msg.Err != nil {
		s.log.Warn().Err(msg.Err).Msg("word acquisition failed")
		s.state.ErrNotice = "Could not get a word. Press Tab to retry."
		return s, nil
	}

	s.resetInput()
	return s, s.input.Init()
}

func (s *ChallengeScreen) handleHistory(msg historyMsg) (screen.Screen, tea.Cmd) {
	if api.IsAuth(msg.Err) {
		return s, func() tea.Msg { return authExpiredMsg{} }
	}
	if msg.Err != nil {
		// The optimistic view stays; the next refresh reconciles it.
		s.log.Warn().Err(msg.Err).Msg("history refresh failed")
		return s, nil
	}

	chal.ReplaceHistory(s.state, msg.Entries)
	if s.state.Word != nil && !s.state.HasPlayed {
		s.state.HasPlayed = chal.ComputeHasPlayed(s.state.Word, s.state.History)
	}
	return s, nil
}

func (s *ChallengeScreen) handleValidation(msg validationMsg) (screen.Screen, tea.Cmd) {
	if api.IsAuth(msg.Err) {
		return s, func() tea.Msg { return authExpiredMsg{} }
	}

	if msg.Err != nil {
		s.log.Warn().Err(msg.Err).Msg("sentence validation failed")
		chal.ApplySubmitFailure(s.state, "Could not score your sentence. Try again.")
		return s, nil
	}

	chal.ApplySubmitSuccess(s.state, msg.Result, time.Now())
	s.attempts++
	s.resetInput()

	return s, tea.Batch(
		s.appendAttempt(msg.Word, msg.Sentence, msg.Result),
		s.fetchHistory(),
	)
}

// submit starts sentence validation for the current draft.
func (s *ChallengeScreen) submit() (screen.Screen, tea.Cmd) {
	s.state.Draft = s.input.Value()
	if !chal.BeginSubmit(s.state) {
		return s, nil
	}

	word := s.state.Word.Word
	sentence := s.state.Draft
	return s, func() tea.Msg {
		res, err := s.validator.Validate(context.Background(), word, sentence)
		return validationMsg{Result: res, Word: word, Sentence: sentence, Err: err}
	}
}

// nextWord starts a generate-next acquisition.
func (s *ChallengeScreen) nextWord() tea.Cmd {
	seq := chal.BeginWordFetch(s.state)
	s.resetInput()
	return tea.Batch(s.fetchWord(seq, api.ModeGenerateNext), s.input.Init())
}

// fetchWord acquires a word asynchronously. The seq token travels with
// the result so superseded responses can be recognized and dropped.
func (s *ChallengeScreen) fetchWord(seq int, mode api.AcquireMode) tea.Cmd {
	return func() tea.Msg {
		w, err := s.client.AcquireWord(context.Background(), mode)
		return wordResultMsg{Seq: seq, Word: w, Err: err}
	}
}

func (s *ChallengeScreen) fetchHistory() tea.Cmd {
	return func() tea.Msg {
		entries, err := s.client.TodayHistory(context.Background())
		return historyMsg{Entries: entries, Err: err}
	}
}

func (s *ChallengeScreen) appendAttempt(word, sentence string, res *api.ValidationResult) tea.Cmd {
	if s.journal == nil {
		return nil
	}
	var difficulty string
	if s.state.Word != nil {
		difficulty = s.state.Word.Difficulty
	}
	data := store.AttemptEventData{
		SessionID:         s.sessionID,
		Word:              word,
		Difficulty:        difficulty,
		Sentence:          sentence,
		Score:             res.Score,
		Suggestion:        res.Suggestion,
		CorrectedSentence: res.CorrectedSentence,
		ScoredBy:          s.validator.Source(),
	}
	return func() tea.Msg {
		if err := s.journal.AppendAttempt(context.Background(), data); err != nil {
			s.log.Warn().Err(err).Msg("journal append failed")
		}
		return nil
	}
}

func (s *ChallengeScreen) appendSessionEvent(action string) tea.Cmd {
	if s.journal == nil {
		return nil
	}
	data := store.SessionEventData{
		SessionID:    s.sessionID,
		Action:       action,
		Attempts:     s.attempts,
		Skips:        s.skips,
		DurationSecs: int(time.Since(s.started).Seconds()),
	}
	return func() tea.Msg {
		if err := s.journal.AppendSession(context.Background(), data); err != nil {
			s.log.Warn().Err(err).Msg("journal append failed")
		}
		return nil
	}
}

// endSession records the end event and navigates back.
func (s *ChallengeScreen) endSession() tea.Cmd {
	return tea.Batch(
		s.appendSessionEvent("end"),
		func() tea.Msg { return router.PopScreenMsg{} },
	)
}

func (s *ChallengeScreen) resetInput() {
	s.input = components.NewTextInput("Write a sentence using the word...", 200)
}
