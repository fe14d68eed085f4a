// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/amahdy/quizdrill/ent/schema"
	"github.com/amahdy/quizdrill/ent/snapshot"
	"github.com/amahdy/quizdrill/ent/testevent"
	"github.com/amahdy/quizdrill/ent/wronganswerevent"
	"github.com/amahdy/quizdrill/ent/xpevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
	testeventMixin := schema.TestEvent{}.Mixin()
	testeventMixinFields0 := testeventMixin[0].Fields()
	_ = testeventMixinFields0
	testeventFields := schema.TestEvent{}.Fields()
	_ = testeventFields
	// testeventDescTimestamp is the schema descriptor for timestamp field.
	testeventDescTimestamp := testeventMixinFields0[1].Descriptor()
	// testevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	testevent.DefaultTimestamp = testeventDescTimestamp.Default.(func() time.Time)
	// testeventDescAttemptID is the schema descriptor for attempt_id field.
	testeventDescAttemptID := testeventFields[0].Descriptor()
	// testevent.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	testevent.AttemptIDValidator = testeventDescAttemptID.Validators[0].(func(string) error)
	// testeventDescAction is the schema descriptor for action field.
	testeventDescAction := testeventFields[1].Descriptor()
	// testevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	testevent.ActionValidator = testeventDescAction.Validators[0].(func(string) error)
	// testeventDescKind is the schema descriptor for kind field.
	testeventDescKind := testeventFields[2].Descriptor()
	// testevent.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	testevent.KindValidator = testeventDescKind.Validators[0].(func(string) error)
	// testeventDescTotalQuestions is the schema descriptor for total_questions field.
	testeventDescTotalQuestions := testeventFields[4].Descriptor()
	// testevent.DefaultTotalQuestions holds the default value on creation for the total_questions field.
	testevent.DefaultTotalQuestions = testeventDescTotalQuestions.Default.(int)
	// testeventDescCorrectAnswers is the schema descriptor for correct_answers field.
	testeventDescCorrectAnswers := testeventFields[5].Descriptor()
	// testevent.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	testevent.DefaultCorrectAnswers = testeventDescCorrectAnswers.Default.(int)
	// testeventDescScorePct is the schema descriptor for score_pct field.
	testeventDescScorePct := testeventFields[6].Descriptor()
	// testevent.DefaultScorePct holds the default value on creation for the score_pct field.
	testevent.DefaultScorePct = testeventDescScorePct.Default.(float64)
	// testeventDescXpEarned is the schema descriptor for xp_earned field.
	testeventDescXpEarned := testeventFields[7].Descriptor()
	// testevent.DefaultXpEarned holds the default value on creation for the xp_earned field.
	testevent.DefaultXpEarned = testeventDescXpEarned.Default.(int)
	wronganswereventMixin := schema.WrongAnswerEvent{}.Mixin()
	wronganswereventMixinFields0 := wronganswereventMixin[0].Fields()
	_ = wronganswereventMixinFields0
	wronganswereventFields := schema.WrongAnswerEvent{}.Fields()
	_ = wronganswereventFields
	// wronganswereventDescTimestamp is the schema descriptor for timestamp field.
	wronganswereventDescTimestamp := wronganswereventMixinFields0[1].Descriptor()
	// wronganswerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	wronganswerevent.DefaultTimestamp = wronganswereventDescTimestamp.Default.(func() time.Time)
	// wronganswereventDescAttemptID is the schema descriptor for attempt_id field.
	wronganswereventDescAttemptID := wronganswereventFields[0].Descriptor()
	// wronganswerevent.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	wronganswerevent.AttemptIDValidator = wronganswereventDescAttemptID.Validators[0].(func(string) error)
	// wronganswereventDescCategory is the schema descriptor for category field.
	wronganswereventDescCategory := wronganswereventFields[2].Descriptor()
	// wronganswerevent.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	wronganswerevent.CategoryValidator = wronganswereventDescCategory.Validators[0].(func(string) error)
	// wronganswereventDescQuestionText is the schema descriptor for question_text field.
	wronganswereventDescQuestionText := wronganswereventFields[3].Descriptor()
	// wronganswerevent.QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	wronganswerevent.QuestionTextValidator = wronganswereventDescQuestionText.Validators[0].(func(string) error)
	xpeventMixin := schema.XPEvent{}.Mixin()
	xpeventMixinFields0 := xpeventMixin[0].Fields()
	_ = xpeventMixinFields0
	xpeventFields := schema.XPEvent{}.Fields()
	_ = xpeventFields
	// xpeventDescTimestamp is the schema descriptor for timestamp field.
	xpeventDescTimestamp := xpeventMixinFields0[1].Descriptor()
	// xpevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	xpevent.DefaultTimestamp = xpeventDescTimestamp.Default.(func() time.Time)
	// xpeventDescAttemptID is the schema descriptor for attempt_id field.
	xpeventDescAttemptID := xpeventFields[0].Descriptor()
	// xpevent.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	xpevent.AttemptIDValidator = xpeventDescAttemptID.Validators[0].(func(string) error)
	// xpeventDescReason is the schema descriptor for reason field.
	xpeventDescReason := xpeventFields[2].Descriptor()
	// xpevent.ReasonValidator is a validator for the "reason" field. It is called by the builders before save.
	xpevent.ReasonValidator = xpeventDescReason.Validators[0].(func(string) error)
}
