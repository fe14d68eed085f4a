// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/amahdy/quizdrill/ent/predicate"
	"github.com/amahdy/quizdrill/ent/testevent"
)

// TestEventUpdate is the builder for updating TestEvent entities.
type TestEventUpdate struct {
	config
	hooks    []Hook
	mutation *TestEventMutation
}

// Where appends a list predicates to the TestEventUpdate builder.
func (_u *TestEventUpdate) Where(ps ...predicate.TestEvent) *TestEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAttemptID sets the "attempt_id" field.
func (_u *TestEventUpdate) SetAttemptID(v string) *TestEventUpdate {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *TestEventUpdate) SetNillableAttemptID(v *string) *TestEventUpdate {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *TestEventUpdate) SetAction(v string) *TestEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *TestEventUpdate) SetNillableAction(v *string) *TestEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *TestEventUpdate) SetKind(v string) *TestEventUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *TestEventUpdate) SetNillableKind(v *string) *TestEventUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *TestEventUpdate) SetCategory(v string) *TestEventUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *TestEventUpdate) SetNillableCategory(v *string) *TestEventUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *TestEventUpdate) ClearCategory() *TestEventUpdate {
	_u.mutation.ClearCategory()
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *TestEventUpdate) SetTotalQuestions(v int) *TestEventUpdate {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *TestEventUpdate) SetNillableTotalQuestions(v *int) *TestEventUpdate {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *TestEventUpdate) AddTotalQuestions(v int) *TestEventUpdate {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *TestEventUpdate) SetCorrectAnswers(v int) *TestEventUpdate {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *TestEventUpdate) SetNillableCorrectAnswers(v *int) *TestEventUpdate {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *TestEventUpdate) AddCorrectAnswers(v int) *TestEventUpdate {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetScorePct sets the "score_pct" field.
func (_u *TestEventUpdate) SetScorePct(v float64) *TestEventUpdate {
	_u.mutation.ResetScorePct()
	_u.mutation.SetScorePct(v)
	return _u
}

// SetNillableScorePct sets the "score_pct" field if the given value is not nil.
func (_u *TestEventUpdate) SetNillableScorePct(v *float64) *TestEventUpdate {
	if v != nil {
		_u.SetScorePct(*v)
	}
	return _u
}

// AddScorePct adds value to the "score_pct" field.
func (_u *TestEventUpdate) AddScorePct(v float64) *TestEventUpdate {
	_u.mutation.AddScorePct(v)
	return _u
}

// SetXpEarned sets the "xp_earned" field.
func (_u *TestEventUpdate) SetXpEarned(v int) *TestEventUpdate {
	_u.mutation.ResetXpEarned()
	_u.mutation.SetXpEarned(v)
	return _u
}

// SetNillableXpEarned sets the "xp_earned" field if the given value is not nil.
func (_u *TestEventUpdate) SetNillableXpEarned(v *int) *TestEventUpdate {
	if v != nil {
		_u.SetXpEarned(*v)
	}
	return _u
}

// AddXpEarned adds value to the "xp_earned" field.
func (_u *TestEventUpdate) AddXpEarned(v int) *TestEventUpdate {
	_u.mutation.AddXpEarned(v)
	return _u
}

// Mutation returns the TestEventMutation object of the builder.
func (_u *TestEventUpdate) Mutation() *TestEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TestEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TestEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TestEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TestEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TestEventUpdate) check() error {
	if v, ok := _u.mutation.AttemptID(); ok {
		if err := testevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "TestEvent.attempt_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := testevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "TestEvent.action": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := testevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "TestEvent.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *TestEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(testevent.Table, testevent.Columns, sqlgraph.NewFieldSpec(testevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AttemptID(); ok {
		_spec.SetField(testevent.FieldAttemptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(testevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(testevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(testevent.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(testevent.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(testevent.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(testevent.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(testevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(testevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ScorePct(); ok {
		_spec.SetField(testevent.FieldScorePct, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScorePct(); ok {
		_spec.AddField(testevent.FieldScorePct, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.XpEarned(); ok {
		_spec.SetField(testevent.FieldXpEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpEarned(); ok {
		_spec.AddField(testevent.FieldXpEarned, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{testevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TestEventUpdateOne is the builder for updating a single TestEvent entity.
type TestEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TestEventMutation
}

// SetAttemptID sets the "attempt_id" field.
func (_u *TestEventUpdateOne) SetAttemptID(v string) *TestEventUpdateOne {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *TestEventUpdateOne) SetNillableAttemptID(v *string) *TestEventUpdateOne {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *TestEventUpdateOne) SetAction(v string) *TestEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *TestEventUpdateOne) SetNillableAction(v *string) *TestEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *TestEventUpdateOne) SetKind(v string) *TestEventUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *TestEventUpdateOne) SetNillableKind(v *string) *TestEventUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *TestEventUpdateOne) SetCategory(v string) *TestEventUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *TestEventUpdateOne) SetNillableCategory(v *string) *TestEventUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *TestEventUpdateOne) ClearCategory() *TestEventUpdateOne {
	_u.mutation.ClearCategory()
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *TestEventUpdateOne) SetTotalQuestions(v int) *TestEventUpdateOne {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *TestEventUpdateOne) SetNillableTotalQuestions(v *int) *TestEventUpdateOne {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *TestEventUpdateOne) AddTotalQuestions(v int) *TestEventUpdateOne {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *TestEventUpdateOne) SetCorrectAnswers(v int) *TestEventUpdateOne {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *TestEventUpdateOne) SetNillableCorrectAnswers(v *int) *TestEventUpdateOne {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *TestEventUpdateOne) AddCorrectAnswers(v int) *TestEventUpdateOne {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetScorePct sets the "score_pct" field.
func (_u *TestEventUpdateOne) SetScorePct(v float64) *TestEventUpdateOne {
	_u.mutation.ResetScorePct()
	_u.mutation.SetScorePct(v)
	return _u
}

// SetNillableScorePct sets the "score_pct" field if the given value is not nil.
func (_u *TestEventUpdateOne) SetNillableScorePct(v *float64) *TestEventUpdateOne {
	if v != nil {
		_u.SetScorePct(*v)
	}
	return _u
}

// AddScorePct adds value to the "score_pct" field.
func (_u *TestEventUpdateOne) AddScorePct(v float64) *TestEventUpdateOne {
	_u.mutation.AddScorePct(v)
	return _u
}

// SetXpEarned sets the "xp_earned" field.
func (_u *TestEventUpdateOne) SetXpEarned(v int) *TestEventUpdateOne {
	_u.mutation.ResetXpEarned()
	_u.mutation.SetXpEarned(v)
	return _u
}

// SetNillableXpEarned sets the "xp_earned" field if the given value is not nil.
func (_u *TestEventUpdateOne) SetNillableXpEarned(v *int) *TestEventUpdateOne {
	if v != nil {
		_u.SetXpEarned(*v)
	}
	return _u
}

// AddXpEarned adds value to the "xp_earned" field.
func (_u *TestEventUpdateOne) AddXpEarned(v int) *TestEventUpdateOne {
	_u.mutation.AddXpEarned(v)
	return _u
}

// Mutation returns the TestEventMutation object of the builder.
func (_u *TestEventUpdateOne) Mutation() *TestEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the TestEventUpdate builder.
func (_u *TestEventUpdateOne) Where(ps ...predicate.TestEvent) *TestEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TestEventUpdateOne) Select(field string, fields ...string) *TestEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TestEvent entity.
func (_u *TestEventUpdateOne) Save(ctx context.Context) (*TestEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TestEventUpdateOne) SaveX(ctx context.Context) *TestEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TestEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TestEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TestEventUpdateOne) check() error {
	if v, ok := _u.mutation.AttemptID(); ok {
		if err := testevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "TestEvent.attempt_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := testevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "TestEvent.action": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := testevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "TestEvent.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *TestEventUpdateOne) sqlSave(ctx context.Context) (_node *TestEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(testevent.Table, testevent.Columns, sqlgraph.NewFieldSpec(testevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TestEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, testevent.FieldID)
		for _, f := range fields {
			if !testevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != testevent.FieldID {
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
		_spec.SetField(testevent.FieldAttemptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(testevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(testevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(testevent.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(testevent.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(testevent.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(testevent.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(testevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(testevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ScorePct(); ok {
		_spec.SetField(testevent.FieldScorePct, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScorePct(); ok {
		_spec.AddField(testevent.FieldScorePct, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.XpEarned(); ok {
		_spec.SetField(testevent.FieldXpEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpEarned(); ok {
		_spec.AddField(testevent.FieldXpEarned, field.TypeInt, value)
	}
	_node = &TestEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{testevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
