// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/hogword/hogword-cli/ent/attemptevent"
	"github.com/hogword/hogword-cli/ent/schema"
	"github.com/hogword/hogword-cli/ent/sessionevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescSessionID is the schema descriptor for session_id field.
	attempteventDescSessionID := attempteventFields[0].Descriptor()
	// attemptevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	attemptevent.SessionIDValidator = attempteventDescSessionID.Validators[0].(func(string) error)
	// attempteventDescWord is the schema descriptor for word field.
	attempteventDescWord := attempteventFields[1].Descriptor()
	// attemptevent.WordValidator is a validator for the "word" field. It is called by the builders before save.
	attemptevent.WordValidator = attempteventDescWord.Validators[0].(func(string) error)
	// attempteventDescSentence is the schema descriptor for sentence field.
	attempteventDescSentence := attempteventFields[3].Descriptor()
	// attemptevent.SentenceValidator is a validator for the "sentence" field. It is called by the builders before save.
	attemptevent.SentenceValidator = attempteventDescSentence.Validators[0].(func(string) error)
	// attempteventDescScoredBy is the schema descriptor for scored_by field.
	attempteventDescScoredBy := attempteventFields[7].Descriptor()
	// attemptevent.ScoredByValidator is a validator for the "scored_by" field. It is called by the builders before save.
	attemptevent.ScoredByValidator = attempteventDescScoredBy.Validators[0].(func(string) error)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[1].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescAttempts is the schema descriptor for attempts field.
	sessioneventDescAttempts := sessioneventFields[2].Descriptor()
	// sessionevent.DefaultAttempts holds the default value on creation for the attempts field.
	sessionevent.DefaultAttempts = sessioneventDescAttempts.Default.(int)
	// sessioneventDescSkips is the schema descriptor for skips field.
	sessioneventDescSkips := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultSkips holds the default value on creation for the skips field.
	sessionevent.DefaultSkips = sessioneventDescSkips.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
}
