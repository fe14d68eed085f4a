// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/amahdy/quizdrill/ent/predicate"
	"github.com/amahdy/quizdrill/ent/wronganswerevent"
)

// WrongAnswerEventUpdate is the builder for updating WrongAnswerEvent entities.
type WrongAnswerEventUpdate struct {
	config
	hooks    []Hook
	mutation *WrongAnswerEventMutation
}

// Where appends a list predicates to the WrongAnswerEventUpdate builder.
func (_u *WrongAnswerEventUpdate) Where(ps ...predicate.WrongAnswerEvent) *WrongAnswerEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAttemptID sets the "attempt_id" field.
func (_u *WrongAnswerEventUpdate) SetAttemptID(v string) *WrongAnswerEventUpdate {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *WrongAnswerEventUpdate) SetNillableAttemptID(v *string) *WrongAnswerEventUpdate {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *WrongAnswerEventUpdate) SetQuestionID(v int) *WrongAnswerEventUpdate {
	_u.mutation.ResetQuestionID()
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *WrongAnswerEventUpdate) SetNillableQuestionID(v *int) *WrongAnswerEventUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// AddQuestionID adds value to the "question_id" field.
func (_u *WrongAnswerEventUpdate) AddQuestionID(v int) *WrongAnswerEventUpdate {
	_u.mutation.AddQuestionID(v)
	return _u
}

// SetCategory sets the "category" field.
func (_u *WrongAnswerEventUpdate) SetCategory(v string) *WrongAnswerEventUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *WrongAnswerEventUpdate) SetNillableCategory(v *string) *WrongAnswerEventUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetQuestionText sets the "question_text" field.
func (_u *WrongAnswerEventUpdate) SetQuestionText(v string) *WrongAnswerEventUpdate {
	_u.mutation.SetQuestionText(v)
	return _u
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_u *WrongAnswerEventUpdate) SetNillableQuestionText(v *string) *WrongAnswerEventUpdate {
	if v != nil {
		_u.SetQuestionText(*v)
	}
	return _u
}

// SetOptionTexts sets the "option_texts" field.
func (_u *WrongAnswerEventUpdate) SetOptionTexts(v []string) *WrongAnswerEventUpdate {
	_u.mutation.SetOptionTexts(v)
	return _u
}

// AppendOptionTexts appends value to the "option_texts" field.
func (_u *WrongAnswerEventUpdate) AppendOptionTexts(v []string) *WrongAnswerEventUpdate {
	_u.mutation.AppendOptionTexts(v)
	return _u
}

// SetSelectedIndex sets the "selected_index" field.
func (_u *WrongAnswerEventUpdate) SetSelectedIndex(v int) *WrongAnswerEventUpdate {
	_u.mutation.ResetSelectedIndex()
	_u.mutation.SetSelectedIndex(v)
	return _u
}

// SetNillableSelectedIndex sets the "selected_index" field if the given value is not nil.
func (_u *WrongAnswerEventUpdate) SetNillableSelectedIndex(v *int) *WrongAnswerEventUpdate {
	if v != nil {
		_u.SetSelectedIndex(*v)
	}
	return _u
}

// AddSelectedIndex adds value to the "selected_index" field.
func (_u *WrongAnswerEventUpdate) AddSelectedIndex(v int) *WrongAnswerEventUpdate {
	_u.mutation.AddSelectedIndex(v)
	return _u
}

// SetCorrectIndex sets the "correct_index" field.
func (_u *WrongAnswerEventUpdate) SetCorrectIndex(v int) *WrongAnswerEventUpdate {
	_u.mutation.ResetCorrectIndex()
	_u.mutation.SetCorrectIndex(v)
	return _u
}

// SetNillableCorrectIndex sets the "correct_index" field if the given value is not nil.
func (_u *WrongAnswerEventUpdate) SetNillableCorrectIndex(v *int) *WrongAnswerEventUpdate {
	if v != nil {
		_u.SetCorrectIndex(*v)
	}
	return _u
}

// AddCorrectIndex adds value to the "correct_index" field.
func (_u *WrongAnswerEventUpdate) AddCorrectIndex(v int) *WrongAnswerEventUpdate {
	_u.mutation.AddCorrectIndex(v)
	return _u
}

// SetXpReward sets the "xp_reward" field.
func (_u *WrongAnswerEventUpdate) SetXpReward(v int) *WrongAnswerEventUpdate {
	_u.mutation.ResetXpReward()
	_u.mutation.SetXpReward(v)
	return _u
}

// SetNillableXpReward sets the "xp_reward" field if the given value is not nil.
func (_u *WrongAnswerEventUpdate) SetNillableXpReward(v *int) *WrongAnswerEventUpdate {
	if v != nil {
		_u.SetXpReward(*v)
	}
	return _u
}

// AddXpReward adds value to the "xp_reward" field.
func (_u *WrongAnswerEventUpdate) AddXpReward(v int) *WrongAnswerEventUpdate {
	_u.mutation.AddXpReward(v)
	return _u
}

// Mutation returns the WrongAnswerEventMutation object of the builder.
func (_u *WrongAnswerEventUpdate) Mutation() *WrongAnswerEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WrongAnswerEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WrongAnswerEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WrongAnswerEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WrongAnswerEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WrongAnswerEventUpdate) check() error {
	if v, ok := _u.mutation.AttemptID(); ok {
		if err := wronganswerevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "WrongAnswerEvent.attempt_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := wronganswerevent.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "WrongAnswerEvent.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionText(); ok {
		if err := wronganswerevent.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "WrongAnswerEvent.question_text": %w`, err)}
		}
	}
	return nil
}

func (_u *WrongAnswerEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(wronganswerevent.Table, wronganswerevent.Columns, sqlgraph.NewFieldSpec(wronganswerevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AttemptID(); ok {
		_spec.SetField(wronganswerevent.FieldAttemptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(wronganswerevent.FieldQuestionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionID(); ok {
		_spec.AddField(wronganswerevent.FieldQuestionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(wronganswerevent.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionText(); ok {
		_spec.SetField(wronganswerevent.FieldQuestionText, field.TypeString, value)
	}
	if value, ok := _u.mutation.OptionTexts(); ok {
		_spec.SetField(wronganswerevent.FieldOptionTexts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOptionTexts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, wronganswerevent.FieldOptionTexts, value)
		})
	}
	if value, ok := _u.mutation.SelectedIndex(); ok {
		_spec.SetField(wronganswerevent.FieldSelectedIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSelectedIndex(); ok {
		_spec.AddField(wronganswerevent.FieldSelectedIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectIndex(); ok {
		_spec.SetField(wronganswerevent.FieldCorrectIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectIndex(); ok {
		_spec.AddField(wronganswerevent.FieldCorrectIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.XpReward(); ok {
		_spec.SetField(wronganswerevent.FieldXpReward, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpReward(); ok {
		_spec.AddField(wronganswerevent.FieldXpReward, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{wronganswerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WrongAnswerEventUpdateOne is the builder for updating a single WrongAnswerEvent entity.
type WrongAnswerEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WrongAnswerEventMutation
}

// SetAttemptID sets the "attempt_id" field.
func (_u *WrongAnswerEventUpdateOne) SetAttemptID(v string) *WrongAnswerEventUpdateOne {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *WrongAnswerEventUpdateOne) SetNillableAttemptID(v *string) *WrongAnswerEventUpdateOne {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *WrongAnswerEventUpdateOne) SetQuestionID(v int) *WrongAnswerEventUpdateOne {
	_u.mutation.ResetQuestionID()
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *WrongAnswerEventUpdateOne) SetNillableQuestionID(v *int) *WrongAnswerEventUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// AddQuestionID adds value to the "question_id" field.
func (_u *WrongAnswerEventUpdateOne) AddQuestionID(v int) *WrongAnswerEventUpdateOne {
	_u.mutation.AddQuestionID(v)
	return _u
}

// SetCategory sets the "category" field.
func (_u *WrongAnswerEventUpdateOne) SetCategory(v string) *WrongAnswerEventUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *WrongAnswerEventUpdateOne) SetNillableCategory(v *string) *WrongAnswerEventUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetQuestionText sets the "question_text" field.
func (_u *WrongAnswerEventUpdateOne) SetQuestionText(v string) *WrongAnswerEventUpdateOne {
	_u.mutation.SetQuestionText(v)
	return _u
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_u *WrongAnswerEventUpdateOne) SetNillableQuestionText(v *string) *WrongAnswerEventUpdateOne {
	if v != nil {
		_u.SetQuestionText(*v)
	}
	return _u
}

// SetOptionTexts sets the "option_texts" field.
func (_u *WrongAnswerEventUpdateOne) SetOptionTexts(v []string) *WrongAnswerEventUpdateOne {
	_u.mutation.SetOptionTexts(v)
	return _u
}

// AppendOptionTexts appends value to the "option_texts" field.
func (_u *WrongAnswerEventUpdateOne) AppendOptionTexts(v []string) *WrongAnswerEventUpdateOne {
	_u.mutation.AppendOptionTexts(v)
	return _u
}

// SetSelectedIndex sets the "selected_index" field.
func (_u *WrongAnswerEventUpdateOne) SetSelectedIndex(v int) *WrongAnswerEventUpdateOne {
	_u.mutation.ResetSelectedIndex()
	_u.mutation.SetSelectedIndex(v)
	return _u
}

// SetNillableSelectedIndex sets the "selected_index" field if the given value is not nil.
func (_u *WrongAnswerEventUpdateOne) SetNillableSelectedIndex(v *int) *WrongAnswerEventUpdateOne {
	if v != nil {
		_u.SetSelectedIndex(*v)
	}
	return _u
}

// AddSelectedIndex adds value to the "selected_index" field.
func (_u *WrongAnswerEventUpdateOne) AddSelectedIndex(v int) *WrongAnswerEventUpdateOne {
	_u.mutation.AddSelectedIndex(v)
	return _u
}

// SetCorrectIndex sets the "correct_index" field.
func (_u *WrongAnswerEventUpdateOne) SetCorrectIndex(v int) *WrongAnswerEventUpdateOne {
	_u.mutation.ResetCorrectIndex()
	_u.mutation.SetCorrectIndex(v)
	return _u
}

// SetNillableCorrectIndex sets the "correct_index" field if the given value is not nil.
func (_u *WrongAnswerEventUpdateOne) SetNillableCorrectIndex(v *int) *WrongAnswerEventUpdateOne {
	if v != nil {
		_u.SetCorrectIndex(*v)
	}
	return _u
}

// AddCorrectIndex adds value to the "correct_index" field.
func (_u *WrongAnswerEventUpdateOne) AddCorrectIndex(v int) *WrongAnswerEventUpdateOne {
	_u.mutation.AddCorrectIndex(v)
	return _u
}

// SetXpReward sets the "xp_reward" field.
func (_u *WrongAnswerEventUpdateOne) SetXpReward(v int) *WrongAnswerEventUpdateOne {
	_u.mutation.ResetXpReward()
	_u.mutation.SetXpReward(v)
	return _u
}

// SetNillableXpReward sets the "xp_reward" field if the given value is not nil.
func (_u *WrongAnswerEventUpdateOne) SetNillableXpReward(v *int) *WrongAnswerEventUpdateOne {
	if v != nil {
		_u.SetXpReward(*v)
	}
	return _u
}

// AddXpReward adds value to the "xp_reward" field.
func (_u *WrongAnswerEventUpdateOne) AddXpReward(v int) *WrongAnswerEventUpdateOne {
	_u.mutation.AddXpReward(v)
	return _u
}

// Mutation returns the WrongAnswerEventMutation object of the builder.
func (_u *WrongAnswerEventUpdateOne) Mutation() *WrongAnswerEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the WrongAnswerEventUpdate builder.
func (_u *WrongAnswerEventUpdateOne) Where(ps ...predicate.WrongAnswerEvent) *WrongAnswerEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WrongAnswerEventUpdateOne) Select(field string, fields ...string) *WrongAnswerEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WrongAnswerEvent entity.
func (_u *WrongAnswerEventUpdateOne) Save(ctx context.Context) (*WrongAnswerEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WrongAnswerEventUpdateOne) SaveX(ctx context.Context) *WrongAnswerEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WrongAnswerEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WrongAnswerEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WrongAnswerEventUpdateOne) check() error {
	if v, ok := _u.mutation.AttemptID(); ok {
		if err := wronganswerevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "WrongAnswerEvent.attempt_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := wronganswerevent.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "WrongAnswerEvent.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionText(); ok {
		if err := wronganswerevent.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "WrongAnswerEvent.question_text": %w`, err)}
		}
	}
	return nil
}

func (_u *WrongAnswerEventUpdateOne) sqlSave(ctx context.Context) (_node *WrongAnswerEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(wronganswerevent.Table, wronganswerevent.Columns, sqlgraph.NewFieldSpec(wronganswerevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WrongAnswerEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, wronganswerevent.FieldID)
		for _, f := range fields {
			if !wronganswerevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != wronganswerevent.FieldID {
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
	if value, ok := _u.mutation.AttemptID(); ok {
		_spec.SetField(wronganswerevent.FieldAttemptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(wronganswerevent.FieldQuestionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionID(); ok {
		_spec.AddField(wronganswerevent.FieldQuestionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(wronganswerevent.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionText(); ok {
		_spec.SetField(wronganswerevent.FieldQuestionText, field.TypeString, value)
	}
	if value, ok := _u.mutation.OptionTexts(); ok {
		_spec.SetField(wronganswerevent.FieldOptionTexts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOptionTexts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, wronganswerevent.FieldOptionTexts, value)
		})
	}
	if value, ok := _u.mutation.SelectedIndex(); ok {
		_spec.SetField(wronganswerevent.FieldSelectedIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSelectedIndex(); ok {
		_spec.AddField(wronganswerevent.FieldSelectedIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectIndex(); ok {
		_spec.SetField(wronganswerevent.FieldCorrectIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectIndex(); ok {
		_spec.AddField(wronganswerevent.FieldCorrectIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.XpReward(); ok {
		_spec.SetField(wronganswerevent.FieldXpReward, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpReward(); ok {
		_spec.AddField(wronganswerevent.FieldXpReward, field.TypeInt, value)
	}
	_node = &WrongAnswerEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{wronganswerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
