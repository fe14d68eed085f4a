// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/amahdy/quizdrill/ent/wronganswerevent"
)

// WrongAnswerEvent is the model entity for the WrongAnswerEvent schema.
type WrongAnswerEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Global sequence number, monotonic across all event tables
	Sequence int64 `json:"sequence,omitempty"`
	// When the event happened, UTC
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Test attempt the miss happened in
	AttemptID string `json:"attempt_id,omitempty"`
	// Bank id of the missed question
	QuestionID int `json:"question_id,omitempty"`
	// Bank category of the question
	Category string `json:"category,omitempty"`
	// The prompt shown
	QuestionText string `json:"question_text,omitempty"`
	// Option texts in display order
	OptionTexts []string `json:"option_texts,omitempty"`
	// Option the learner chose
	SelectedIndex int `json:"selected_index,omitempty"`
	// Option that was correct
	CorrectIndex int `json:"correct_index,omitempty"`
	// Per-correct XP in effect at the time
	XpReward     int `json:"xp_reward,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WrongAnswerEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case wronganswerevent.FieldOptionTexts:
			values[i] = new([]byte)
		case wronganswerevent.FieldID, wronganswerevent.FieldSequence, wronganswerevent.FieldQuestionID, wronganswerevent.FieldSelectedIndex, wronganswerevent.FieldCorrectIndex, wronganswerevent.FieldXpReward:
			values[i] = new(sql.NullInt64)
		case wronganswerevent.FieldAttemptID, wronganswerevent.FieldCategory, wronganswerevent.FieldQuestionText:
			values[i] = new(sql.NullString)
		case wronganswerevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WrongAnswerEvent fields.
func (_m *WrongAnswerEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case wronganswerevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case wronganswerevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case wronganswerevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case wronganswerevent.FieldAttemptID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field attempt_id", values[i])
			} else if value.Valid {
				_m.AttemptID = value.String
			}
		case wronganswerevent.FieldQuestionID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field question_id", values[i])
			} else if value.Valid {
				_m.QuestionID = int(value.Int64)
			}
		case wronganswerevent.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case wronganswerevent.FieldQuestionText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_text", values[i])
			} else if value.Valid {
				_m.QuestionText = value.String
			}
		case wronganswerevent.FieldOptionTexts:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field option_texts", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.OptionTexts); err != nil {
					return fmt.Errorf("unmarshal field option_texts: %w", err)
				}
			}
		case wronganswerevent.FieldSelectedIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field selected_index", values[i])
			} else if value.Valid {
				_m.SelectedIndex = int(value.Int64)
			}
		case wronganswerevent.FieldCorrectIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_index", values[i])
			} else if value.Valid {
				_m.CorrectIndex = int(value.Int64)
			}
		case wronganswerevent.FieldXpReward:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field xp_reward", values[i])
			} else if value.Valid {
				_m.XpReward = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the WrongAnswerEvent.
// This includes values selected through modifiers, order, etc.
func (_m *WrongAnswerEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this WrongAnswerEvent.
// Note that you need to call WrongAnswerEvent.Unwrap() before calling this method if this WrongAnswerEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *WrongAnswerEvent) Update() *WrongAnswerEventUpdateOne {
	return NewWrongAnswerEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the WrongAnswerEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *WrongAnswerEvent) Unwrap() *WrongAnswerEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: WrongAnswerEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *WrongAnswerEvent) String() string {
	var builder strings.Builder
	builder.WriteString("WrongAnswerEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("attempt_id=")
	builder.WriteString(_m.AttemptID)
	builder.WriteString(", ")
	builder.WriteString("question_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionID))
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("question_text=")
	builder.WriteString(_m.QuestionText)
	builder.WriteString(", ")
	builder.WriteString("option_texts=")
	builder.WriteString(fmt.Sprintf("%v", _m.OptionTexts))
	builder.WriteString(", ")
	builder.WriteString("selected_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.SelectedIndex))
	builder.WriteString(", ")
	builder.WriteString("correct_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectIndex))
	builder.WriteString(", ")
	builder.WriteString("xp_reward=")
	builder.WriteString(fmt.Sprintf("%v", _m.XpReward))
	builder.WriteByte(')')
	return builder.String()
}

// WrongAnswerEvents is a parsable slice of WrongAnswerEvent.
type WrongAnswerEvents []*WrongAnswerEvent
