package challenge

import (
	"github.com/hogword/hogword-cli/internal/api"
)

// wordResultMsg is sent when a word acquisition completes. Seq carries
// the generation token of the request that produced it.
type wordResultMsg struct {
	Seq  int
	Word *api.Word
	Err  error
}

// historyMsg is sent when an authoritative history snapshot arrives.
type historyMsg struct {
	Entries []api.HistoryEntry
	Err     error
}

// validationMsg is sent when sentence validation completes. Word and
// Sentence echo what was submitted so the handler does not depend on
// state that may have moved on.
type validationMsg struct {
	Result   *api.ValidationResult
	Word     string
	Sentence string
	Err      error
}

// authExpiredMsg is sent when any request came back unauthorized.
type authExpiredMsg struct{}
