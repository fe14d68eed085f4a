// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/amahdy/quizdrill/ent/wronganswerevent"
)

// WrongAnswerEventCreate is the builder for creating a WrongAnswerEvent entity.
type WrongAnswerEventCreate struct {
	config
	mutation *WrongAnswerEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *WrongAnswerEventCreate) SetSequence(v int64) *WrongAnswerEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *WrongAnswerEventCreate) SetTimestamp(v time.Time) *WrongAnswerEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *WrongAnswerEventCreate) SetNillableTimestamp(v *time.Time) *WrongAnswerEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetAttemptID sets the "attempt_id" field.
func (_c *WrongAnswerEventCreate) SetAttemptID(v string) *WrongAnswerEventCreate {
	_c.mutation.SetAttemptID(v)
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *WrongAnswerEventCreate) SetQuestionID(v int) *WrongAnswerEventCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *WrongAnswerEventCreate) SetCategory(v string) *WrongAnswerEventCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetQuestionText sets the "question_text" field.
func (_c *WrongAnswerEventCreate) SetQuestionText(v string) *WrongAnswerEventCreate {
	_c.mutation.SetQuestionText(v)
	return _c
}

// SetOptionTexts sets the "option_texts" field.
func (_c *WrongAnswerEventCreate) SetOptionTexts(v []string) *WrongAnswerEventCreate {
	_c.mutation.SetOptionTexts(v)
	return _c
}

// SetSelectedIndex sets the "selected_index" field.
func (_c *WrongAnswerEventCreate) SetSelectedIndex(v int) *WrongAnswerEventCreate {
	_c.mutation.SetSelectedIndex(v)
	return _c
}

// SetCorrectIndex sets the "correct_index" field.
func (_c *WrongAnswerEventCreate) SetCorrectIndex(v int) *WrongAnswerEventCreate {
	_c.mutation.SetCorrectIndex(v)
	return _c
}

// SetXpReward sets the "xp_reward" field.
func (_c *WrongAnswerEventCreate) SetXpReward(v int) *WrongAnswerEventCreate {
	_c.mutation.SetXpReward(v)
	return _c
}

// Mutation returns the WrongAnswerEventMutation object of the builder.
func (_c *WrongAnswerEventCreate) Mutation() *WrongAnswerEventMutation {
	return _c.mutation
}

// Save creates the WrongAnswerEvent in the database.
func (_c *WrongAnswerEventCreate) Save(ctx context.Context) (*WrongAnswerEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WrongAnswerEventCreate) SaveX(ctx context.Context) *WrongAnswerEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WrongAnswerEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WrongAnswerEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WrongAnswerEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := wronganswerevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WrongAnswerEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "WrongAnswerEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "WrongAnswerEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.AttemptID(); !ok {
		return &ValidationError{Name: "attempt_id", err: errors.New(`ent: missing required field "WrongAnswerEvent.attempt_id"`)}
	}
	if v, ok := _c.mutation.AttemptID(); ok {
		if err := wronganswerevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "WrongAnswerEvent.attempt_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "WrongAnswerEvent.question_id"`)}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "WrongAnswerEvent.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := wronganswerevent.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "WrongAnswerEvent.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionText(); !ok {
		return &ValidationError{Name: "question_text", err: errors.New(`ent: missing required field "WrongAnswerEvent.question_text"`)}
	}
	if v, ok := _c.mutation.QuestionText(); ok {
		if err := wronganswerevent.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "WrongAnswerEvent.question_text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OptionTexts(); !ok {
		return &ValidationError{Name: "option_texts", err: errors.New(`ent: missing required field "WrongAnswerEvent.option_texts"`)}
	}
	if _, ok := _c.mutation.SelectedIndex(); !ok {
		return &ValidationError{Name: "selected_index", err: errors.New(`ent: missing required field "WrongAnswerEvent.selected_index"`)}
	}
	if _, ok := _c.mutation.CorrectIndex(); !ok {
		return &ValidationError{Name: "correct_index", err: errors.New(`ent: missing required field "WrongAnswerEvent.correct_index"`)}
	}
	if _, ok := _c.mutation.XpReward(); !ok {
		return &ValidationError{Name: "xp_reward", err: errors.New(`ent: missing required field "WrongAnswerEvent.xp_reward"`)}
	}
	return nil
}

func (_c *WrongAnswerEventCreate) sqlSave(ctx context.Context) (*WrongAnswerEvent, error) {
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

func (_c *WrongAnswerEventCreate) createSpec() (*WrongAnswerEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &WrongAnswerEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(wronganswerevent.Table, sqlgraph.NewFieldSpec(wronganswerevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(wronganswerevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(wronganswerevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.AttemptID(); ok {
		_spec.SetField(wronganswerevent.FieldAttemptID, field.TypeString, value)
		_node.AttemptID = value
	}
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(wronganswerevent.FieldQuestionID, field.TypeInt, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(wronganswerevent.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.QuestionText(); ok {
		_spec.SetField(wronganswerevent.FieldQuestionText, field.TypeString, value)
		_node.QuestionText = value
	}
	if value, ok := _c.mutation.OptionTexts(); ok {
		_spec.SetField(wronganswerevent.FieldOptionTexts, field.TypeJSON, value)
		_node.OptionTexts = value
	}
	if value, ok := _c.mutation.SelectedIndex(); ok {
		_spec.SetField(wronganswerevent.FieldSelectedIndex, field.TypeInt, value)
		_node.SelectedIndex = value
	}
	if value, ok := _c.mutation.CorrectIndex(); ok {
		_spec.SetField(wronganswerevent.FieldCorrectIndex, field.TypeInt, value)
		_node.CorrectIndex = value
	}
	if value, ok := _c.mutation.XpReward(); ok {
		_spec.SetField(wronganswerevent.FieldXpReward, field.TypeInt, value)
		_node.XpReward = value
	}
	return _node, _spec
}

// WrongAnswerEventCreateBulk is the builder for creating many WrongAnswerEvent entities in bulk.
type WrongAnswerEventCreateBulk struct {
	config
	err      error
	builders []*WrongAnswerEventCreate
}

// Save creates the WrongAnswerEvent entities in the database.
func (_c *WrongAnswerEventCreateBulk) Save(ctx context.Context) ([]*WrongAnswerEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WrongAnswerEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WrongAnswerEventMutation)
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
func (_c *WrongAnswerEventCreateBulk) SaveX(ctx context.Context) []*WrongAnswerEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WrongAnswerEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WrongAnswerEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
