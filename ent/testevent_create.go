// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/amahdy/quizdrill/ent/testevent"
)

// TestEventCreate is the builder for creating a TestEvent entity.
type TestEventCreate struct {
	config
	mutation *TestEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *TestEventCreate) SetSequence(v int64) *TestEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *TestEventCreate) SetTimestamp(v time.Time) *TestEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *TestEventCreate) SetNillableTimestamp(v *time.Time) *TestEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetAttemptID sets the "attempt_id" field.
func (_c *TestEventCreate) SetAttemptID(v string) *TestEventCreate {
	_c.mutation.SetAttemptID(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *TestEventCreate) SetAction(v string) *TestEventCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *TestEventCreate) SetKind(v string) *TestEventCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *TestEventCreate) SetCategory(v string) *TestEventCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *TestEventCreate) SetNillableCategory(v *string) *TestEventCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetTotalQuestions sets the "total_questions" field.
func (_c *TestEventCreate) SetTotalQuestions(v int) *TestEventCreate {
	_c.mutation.SetTotalQuestions(v)
	return _c
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_c *TestEventCreate) SetNillableTotalQuestions(v *int) *TestEventCreate {
	if v != nil {
		_c.SetTotalQuestions(*v)
	}
	return _c
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_c *TestEventCreate) SetCorrectAnswers(v int) *TestEventCreate {
	_c.mutation.SetCorrectAnswers(v)
	return _c
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_c *TestEventCreate) SetNillableCorrectAnswers(v *int) *TestEventCreate {
	if v != nil {
		_c.SetCorrectAnswers(*v)
	}
	return _c
}

// SetScorePct sets the "score_pct" field.
func (_c *TestEventCreate) SetScorePct(v float64) *TestEventCreate {
	_c.mutation.SetScorePct(v)
	return _c
}

// SetNillableScorePct sets the "score_pct" field if the given value is not nil.
func (_c *TestEventCreate) SetNillableScorePct(v *float64) *TestEventCreate {
	if v != nil {
		_c.SetScorePct(*v)
	}
	return _c
}

// SetXpEarned sets the "xp_earned" field.
func (_c *TestEventCreate) SetXpEarned(v int) *TestEventCreate {
	_c.mutation.SetXpEarned(v)
	return _c
}

// SetNillableXpEarned sets the "xp_earned" field if the given value is not nil.
func (_c *TestEventCreate) SetNillableXpEarned(v *int) *TestEventCreate {
	if v != nil {
		_c.SetXpEarned(*v)
	}
	return _c
}

// Mutation returns the TestEventMutation object of the builder.
func (_c *TestEventCreate) Mutation() *TestEventMutation {
	return _c.mutation
}

// Save creates the TestEvent in the database.
func (_c *TestEventCreate) Save(ctx context.Context) (*TestEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TestEventCreate) SaveX(ctx context.Context) *TestEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TestEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TestEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TestEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := testevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.TotalQuestions(); !ok {
		v := testevent.DefaultTotalQuestions
		_c.mutation.SetTotalQuestions(v)
	}
	if _, ok := _c.mutation.CorrectAnswers(); !ok {
		v := testevent.DefaultCorrectAnswers
		_c.mutation.SetCorrectAnswers(v)
	}
	if _, ok := _c.mutation.ScorePct(); !ok {
		v := testevent.DefaultScorePct
		_c.mutation.SetScorePct(v)
	}
	if _, ok := _c.mutation.XpEarned(); !ok {
		v := testevent.DefaultXpEarned
		_c.mutation.SetXpEarned(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TestEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "TestEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "TestEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.AttemptID(); !ok {
		return &ValidationError{Name: "attempt_id", err: errors.New(`ent: missing required field "TestEvent.attempt_id"`)}
	}
	if v, ok := _c.mutation.AttemptID(); ok {
		if err := testevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "TestEvent.attempt_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "TestEvent.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := testevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "TestEvent.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "TestEvent.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := testevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "TestEvent.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalQuestions(); !ok {
		return &ValidationError{Name: "total_questions", err: errors.New(`ent: missing required field "TestEvent.total_questions"`)}
	}
	if _, ok := _c.mutation.CorrectAnswers(); !ok {
		return &ValidationError{Name: "correct_answers", err: errors.New(`ent: missing required field "TestEvent.correct_answers"`)}
	}
	if _, ok := _c.mutation.ScorePct(); !ok {
		return &ValidationError{Name: "score_pct", err: errors.New(`ent: missing required field "TestEvent.score_pct"`)}
	}
	if _, ok := _c.mutation.XpEarned(); !ok {
		return &ValidationError{Name: "xp_earned", err: errors.New(`ent: missing required field "TestEvent.xp_earned"`)}
	}
	return nil
}

func (_c *TestEventCreate) sqlSave(ctx context.Context) (*TestEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TestEventCreate) createSpec() (*TestEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &TestEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(testevent.Table, sqlgraph.NewFieldSpec(testevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(testevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(testevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.AttemptID(); ok {
		_spec.SetField(testevent.FieldAttemptID, field.TypeString, value)
		_node.AttemptID = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(testevent.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(testevent.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(testevent.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.TotalQuestions(); ok {
		_spec.SetField(testevent.FieldTotalQuestions, field.TypeInt, value)
		_node.TotalQuestions = value
	}
	if value, ok := _c.mutation.CorrectAnswers(); ok {
		_spec.SetField(testevent.FieldCorrectAnswers, field.TypeInt, value)
		_node.CorrectAnswers = value
	}
	if value, ok := _c.mutation.ScorePct(); ok {
		_spec.SetField(testevent.FieldScorePct, field.TypeFloat64, value)
		_node.ScorePct = value
	}
	if value, ok := _c.mutation.XpEarned(); ok {
		_spec.SetField(testevent.FieldXpEarned, field.TypeInt, value)
		_node.XpEarned = value
	}
	return _node, _spec
}

// TestEventCreateBulk is the builder for creating many TestEvent entities in bulk.
type TestEventCreateBulk struct {
	config
	err      error
	builders []*TestEventCreate
}

// Save creates the TestEvent entities in the database.
func (_c *TestEventCreateBulk) Save(ctx context.Context) ([]*TestEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TestEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TestEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TestEventCreateBulk) SaveX(ctx context.Context) []*TestEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TestEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TestEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
