// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Snapshot is the predicate function for snapshot builders.
type Snapshot func(*sql.Selector)

// TestEvent is the predicate function for testevent builders.
type TestEvent func(*sql.Selector)

// WrongAnswerEvent is the predicate function for wronganswerevent builders.
type WrongAnswerEvent func(*sql.Selector)

// XPEvent is the predicate function for xpevent builders.
type XPEvent func(*sql.Selector)
