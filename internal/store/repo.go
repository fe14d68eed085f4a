package store

import (
	"context"
	"time"
)

// Test kinds persisted on TestEvent rows.
const (
	TestKindStandard = "standard"
	TestKindRetry    = "retry"
)

// Test actions persisted on TestEvent rows.
const (
	TestActionStart = "start"
	TestActionEnd   = "end"
)

// XP award reasons persisted on XPEvent rows.
const (
	XPReasonTestResult = "test_result"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// TestEventData captures the data for a single test lifecycle event.
type TestEventData struct {
	AttemptID      string
	Action         string
	Kind           string
	Category       string
	TotalQuestions int
	CorrectAnswers int
	ScorePct       float64
	XPEarned       int
}

// TestEventRecord is a persisted test event read back for history views.
type TestEventRecord struct {
	AttemptID      string
	Action         string
	Kind           string
	Category       string
	TotalQuestions int
	CorrectAnswers int
	ScorePct       float64
	XPEarned       int
	Sequence       int64
	Timestamp      time.Time
}

// WrongAnswerEventData captures one missed question for the pool.
type WrongAnswerEventData struct {
	AttemptID     string
	QuestionID    int
	Category      string
	QuestionText  string
	OptionTexts   []string
	SelectedIndex int
	CorrectIndex  int
	XPReward      int
	RecordedAt    time.Time
}

// XPEventData captures an XP award.
type XPEventData struct {
	AttemptID  string
	Amount     int
	Reason     string
	TotalAfter int
}

// WrongAnswerState is the snapshot form of one pool record.
type WrongAnswerState struct {
	QuestionID    int       `json:"question_id"`
	Category      string    `json:"category"`
	QuestionText  string    `json:"question_text"`
	OptionTexts   []string  `json:"option_texts"`
	SelectedIndex int       `json:"selected_index"`
	CorrectIndex  int       `json:"correct_index"`
	XPReward      int       `json:"xp_reward"`
	RecordedAt    time.Time `json:"recorded_at"`
}

// SnapshotData captures the full learner state at a point in time.
type SnapshotData struct {
	Version          int                `json:"version"`
	TotalXP          int                `json:"total_xp"`
	TestsCompleted   int                `json:"tests_completed"`
	PerCategoryTests map[string]int     `json:"per_category_tests"`
	WrongAnswerPool  []WrongAnswerState `json:"wrong_answer_pool"`
}

// SnapshotVersion is the current SnapshotData schema version.
const SnapshotVersion = 1

// Snapshot represents a point-in-time capture of learner state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendTestEvent records a test start or end.
	AppendTestEvent(ctx context.Context, data TestEventData) error

	// QueryTestEvents returns test events, newest first.
	QueryTestEvents(ctx context.Context, opts QueryOpts) ([]TestEventRecord, error)

	// AppendWrongAnswer appends one miss to the pool.
	AppendWrongAnswer(ctx context.Context, data WrongAnswerEventData) error

	// AppendXPEvent records an XP award.
	AppendXPEvent(ctx context.Context, data XPEventData) error

	// CurrentSequence returns the highest sequence assigned so far.
	CurrentSequence(ctx context.Context) (int64, error)
}
