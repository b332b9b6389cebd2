// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hogword/hogword-cli/ent/attemptevent"
	"github.com/hogword/hogword-cli/ent/predicate"
)

// AttemptEventUpdate is the builder for updating AttemptEvent entities.
type AttemptEventUpdate struct {
	config
	hooks    []Hook
	mutation *AttemptEventMutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdate) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AttemptEventUpdate) SetSessionID(v string) *AttemptEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableSessionID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetWord sets the "word" field.
func (_u *AttemptEventUpdate) SetWord(v string) *AttemptEventUpdate {
	_u.mutation.SetWord(v)
	return _u
}

// SetNillableWord sets the "word" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableWord(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetWord(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *AttemptEventUpdate) SetDifficulty(v string) *AttemptEventUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableDifficulty(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetSentence sets the "sentence" field.
func (_u *AttemptEventUpdate) SetSentence(v string) *AttemptEventUpdate {
	_u.mutation.SetSentence(v)
	return _u
}

// SetNillableSentence sets the "sentence" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableSentence(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetSentence(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *AttemptEventUpdate) SetScore(v float64) *AttemptEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableScore(v *float64) *AttemptEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *AttemptEventUpdate) AddScore(v float64) *AttemptEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetSuggestion sets the "suggestion" field.
func (_u *AttemptEventUpdate) SetSuggestion(v string) *AttemptEventUpdate {
	_u.mutation.SetSuggestion(v)
	return _u
}

// SetNillableSuggestion sets the "suggestion" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableSuggestion(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetSuggestion(*v)
	}
	return _u
}

// ClearSuggestion clears the value of the "suggestion" field.
func (_u *AttemptEventUpdate) ClearSuggestion() *AttemptEventUpdate {
	_u.mutation.ClearSuggestion()
	return _u
}

// SetCorrectedSentence sets the "corrected_sentence" field.
func (_u *AttemptEventUpdate) SetCorrectedSentence(v string) *AttemptEventUpdate {
	_u.mutation.SetCorrectedSentence(v)
	return _u
}

// SetNillableCorrectedSentence sets the "corrected_sentence" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableCorrectedSentence(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetCorrectedSentence(*v)
	}
	return _u
}

// ClearCorrectedSentence clears the value of the "corrected_sentence" field.
func (_u *AttemptEventUpdate) ClearCorrectedSentence() *AttemptEventUpdate {
	_u.mutation.ClearCorrectedSentence()
	return _u
}

// SetScoredBy sets the "scored_by" field.
func (_u *AttemptEventUpdate) SetScoredBy(v string) *AttemptEventUpdate {
	_u.mutation.SetScoredBy(v)
	return _u
}

// SetNillableScoredBy sets the "scored_by" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableScoredBy(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetScoredBy(*v)
	}
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdate) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttemptEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttemptEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := attemptevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Word(); ok {
		if err := attemptevent.WordValidator(v); err != nil {
			return &ValidationError{Name: "word", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.word": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Sentence(); ok {
		if err := attemptevent.SentenceValidator(v); err != nil {
			return &ValidationError{Name: "sentence", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.sentence": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ScoredBy(); ok {
		if err := attemptevent.ScoredByValidator(v); err != nil {
			return &ValidationError{Name: "scored_by", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.scored_by": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(attemptevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Word(); ok {
		_spec.SetField(attemptevent.FieldWord, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(attemptevent.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Sentence(); ok {
		_spec.SetField(attemptevent.FieldSentence, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(attemptevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(attemptevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Suggestion(); ok {
		_spec.SetField(attemptevent.FieldSuggestion, field.TypeString, value)
	}
	if _u.mutation.SuggestionCleared() {
		_spec.ClearField(attemptevent.FieldSuggestion, field.TypeString)
	}
	if value, ok := _u.mutation.CorrectedSentence(); ok {
		_spec.SetField(attemptevent.FieldCorrectedSentence, field.TypeString, value)
	}
	if _u.mutation.CorrectedSentenceCleared() {
		_spec.ClearField(attemptevent.FieldCorrectedSentence, field.TypeString)
	}
	if value, ok := _u.mutation.ScoredBy(); ok {
		_spec.SetField(attemptevent.FieldScoredBy, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttemptEventUpdateOne is the builder for updating a single AttemptEvent entity.
type AttemptEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttemptEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *AttemptEventUpdateOne) SetSessionID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableSessionID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetWord sets the "word" field.
func (_u *AttemptEventUpdateOne) SetWord(v string) *AttemptEventUpdateOne {
	_u.mutation.SetWord(v)
	return _u
}

// SetNillableWord sets the "word" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableWord(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetWord(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *AttemptEventUpdateOne) SetDifficulty(v string) *AttemptEventUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableDifficulty(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetSentence sets the "sentence" field.
func (_u *AttemptEventUpdateOne) SetSentence(v string) *AttemptEventUpdateOne {
	_u.mutation.SetSentence(v)
	return _u
}

// SetNillableSentence sets the "sentence" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableSentence(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetSentence(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *AttemptEventUpdateOne) SetScore(v float64) *AttemptEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableScore(v *float64) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *AttemptEventUpdateOne) AddScore(v float64) *AttemptEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetSuggestion sets the "suggestion" field.
func (_u *AttemptEventUpdateOne) SetSuggestion(v string) *AttemptEventUpdateOne {
	_u.mutation.SetSuggestion(v)
	return _u
}

// SetNillableSuggestion sets the "suggestion" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableSuggestion(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetSuggestion(*v)
	}
	return _u
}

// ClearSuggestion clears the value of the "suggestion" field.
func (_u *AttemptEventUpdateOne) ClearSuggestion() *AttemptEventUpdateOne {
	_u.mutation.ClearSuggestion()
	return _u
}

// SetCorrectedSentence sets the "corrected_sentence" field.
func (_u *AttemptEventUpdateOne) SetCorrectedSentence(v string) *AttemptEventUpdateOne {
	_u.mutation.SetCorrectedSentence(v)
	return _u
}

// SetNillableCorrectedSentence sets the "corrected_sentence" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableCorrectedSentence(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetCorrectedSentence(*v)
	}
	return _u
}

// ClearCorrectedSentence clears the value of the "corrected_sentence" field.
func (_u *AttemptEventUpdateOne) ClearCorrectedSentence() *AttemptEventUpdateOne {
	_u.mutation.ClearCorrectedSentence()
	return _u
}

// SetScoredBy sets the "scored_by" field.
func (_u *AttemptEventUpdateOne) SetScoredBy(v string) *AttemptEventUpdateOne {
	_u.mutation.SetScoredBy(v)
	return _u
}

// SetNillableScoredBy sets the "scored_by" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableScoredBy(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetScoredBy(*v)
	}
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdateOne) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdateOne) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttemptEventUpdateOne) Select(field string, fields ...string) *AttemptEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AttemptEvent entity.
func (_u *AttemptEventUpdateOne) Save(ctx context.Context) (*AttemptEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) SaveX(ctx context.Context) *AttemptEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttemptEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := attemptevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Word(); ok {
		if err := attemptevent.WordValidator(v); err != nil {
			return &ValidationError{Name: "word", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.word": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Sentence(); ok {
		if err := attemptevent.SentenceValidator(v); err != nil {
			return &ValidationError{Name: "sentence", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.sentence": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ScoredBy(); ok {
		if err := attemptevent.ScoredByValidator(v); err != nil {
			return &ValidationError{Name: "scored_by", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.scored_by": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdateOne) sqlSave(ctx context.Context) (_node *AttemptEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AttemptEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attemptevent.FieldID)
		for _, f := range fields {
			if !attemptevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attemptevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(attemptevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Word(); ok {
		_spec.SetField(attemptevent.FieldWord, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(attemptevent.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Sentence(); ok {
		_spec.SetField(attemptevent.FieldSentence, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(attemptevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(attemptevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Suggestion(); ok {
		_spec.SetField(attemptevent.FieldSuggestion, field.TypeString, value)
	}
	if _u.mutation.SuggestionCleared() {
		_spec.ClearField(attemptevent.FieldSuggestion, field.TypeString)
	}
	if value, ok := _u.mutation.CorrectedSentence(); ok {
		_spec.SetField(attemptevent.FieldCorrectedSentence, field.TypeString, value)
	}
	if _u.mutation.CorrectedSentenceCleared() {
		_spec.ClearField(attemptevent.FieldCorrectedSentence, field.TypeString)
	}
	if value, ok := _u.mutation.ScoredBy(); ok {
		_spec.SetField(attemptevent.FieldScoredBy, field.TypeString, value)
	}
	_node = &AttemptEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
