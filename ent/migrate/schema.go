// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
		},
	}
	// TestEventsColumns holds the columns for the "test_events" table.
	TestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "attempt_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "category", Type: field.TypeString, Nullable: true},
		{Name: "total_questions", Type: field.TypeInt, Default: 0},
		{Name: "correct_answers", Type: field.TypeInt, Default: 0},
		{Name: "score_pct", Type: field.TypeFloat64, Default: 0},
		{Name: "xp_earned", Type: field.TypeInt, Default: 0},
	}
	// TestEventsTable holds the schema information for the "test_events" table.
	TestEventsTable = &schema.Table{
		Name:       "test_events",
		Columns:    TestEventsColumns,
		PrimaryKey: []*schema.Column{TestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "testevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{TestEventsColumns[1]},
			},
			{
				Name:    "testevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{TestEventsColumns[2]},
			},
			{
				Name:    "testevent_attempt_id",
				Unique:  false,
				Columns: []*schema.Column{TestEventsColumns[3]},
			},
			{
				Name:    "testevent_action",
				Unique:  false,
				Columns: []*schema.Column{TestEventsColumns[4]},
			},
			{
				Name:    "testevent_kind",
				Unique:  false,
				Columns: []*schema.Column{TestEventsColumns[5]},
			},
			{
				Name:    "testevent_category",
				Unique:  false,
				Columns: []*schema.Column{TestEventsColumns[6]},
			},
		},
	}
	// WrongAnswerEventsColumns holds the columns for the "wrong_answer_events" table.
	WrongAnswerEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "attempt_id", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeInt},
		{Name: "category", Type: field.TypeString},
		{Name: "question_text", Type: field.TypeString},
		{Name: "option_texts", Type: field.TypeJSON},
		{Name: "selected_index", Type: field.TypeInt},
		{Name: "correct_index", Type: field.TypeInt},
		{Name: "xp_reward", Type: field.TypeInt},
	}
	// WrongAnswerEventsTable holds the schema information for the "wrong_answer_events" table.
	WrongAnswerEventsTable = &schema.Table{
		Name:       "wrong_answer_events",
		Columns:    WrongAnswerEventsColumns,
		PrimaryKey: []*schema.Column{WrongAnswerEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "wronganswerevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{WrongAnswerEventsColumns[1]},
			},
			{
				Name:    "wronganswerevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{WrongAnswerEventsColumns[2]},
			},
			{
				Name:    "wronganswerevent_attempt_id",
				Unique:  false,
				Columns: []*schema.Column{WrongAnswerEventsColumns[3]},
			},
			{
				Name:    "wronganswerevent_question_id",
				Unique:  false,
				Columns: []*schema.Column{WrongAnswerEventsColumns[4]},
			},
			{
				Name:    "wronganswerevent_category",
				Unique:  false,
				Columns: []*schema.Column{WrongAnswerEventsColumns[5]},
			},
		},
	}
	// XpEventsColumns holds the columns for the "xp_events" table.
	XpEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "attempt_id", Type: field.TypeString},
		{Name: "amount", Type: field.TypeInt},
		{Name: "reason", Type: field.TypeString},
		{Name: "total_after", Type: field.TypeInt},
	}
	// XpEventsTable holds the schema information for the "xp_events" table.
	XpEventsTable = &schema.Table{
		Name:       "xp_events",
		Columns:    XpEventsColumns,
		PrimaryKey: []*schema.Column{XpEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "xpevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{XpEventsColumns[1]},
			},
			{
				Name:    "xpevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{XpEventsColumns[2]},
			},
			{
				Name:    "xpevent_attempt_id",
				Unique:  false,
				Columns: []*schema.Column{XpEventsColumns[3]},
			},
			{
				Name:    "xpevent_reason",
				Unique:  false,
				Columns: []*schema.Column{XpEventsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		SnapshotsTable,
		TestEventsTable,
		WrongAnswerEventsTable,
		XpEventsTable,
	}
)

func init() {
}
