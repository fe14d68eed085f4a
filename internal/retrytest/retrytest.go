// Package retrytest tracks missed questions and builds retry sessions
// from them once the learner has enough history to make one worthwhile.
package retrytest

import (
	"fmt"
	"time"
)

// WrongAnswerRecord is one missed question, captured in full at the
// moment the session committed. Records are append-only: the same
// question missed in two sessions appears twice, and nothing ever
// rewrites an existing record.
type WrongAnswerRecord struct {
	// QuestionID is the bank id of the missed question.
	QuestionID int

	// Category is the question's bank category.
	Category string

	// QuestionText is the prompt as shown to the learner.
	QuestionText string

	// OptionTexts are the four option texts in display order.
	OptionTexts []string

	// SelectedIndex is the option the learner chose.
	SelectedIndex int

	// CorrectIndex is the option that was correct.
	CorrectIndex int

	// XPReward is the per-correct XP in effect when the miss happened.
	XPReward int

	// RecordedAt is when the owning session committed.
	RecordedAt time.Time
}

// Gates holds the thresholds a learner must clear before retry tests
// unlock. Values come from configuration.
type Gates struct {
	// MinTests is the completed-test count required for a global retry.
	MinTests int

	// MinWrongAnswers is the pool size required for a global retry.
	MinWrongAnswers int

	// CategoryMinTests is the per-category completed-test count
	// required for a category retry.
	CategoryMinTests int

	// MaxRetrySize caps how many questions a retry session holds.
	MaxRetrySize int
}

// DefaultGates returns the stock thresholds used when no config
// overrides them.
func DefaultGates() Gates {
	return Gates{
		MinTests:         10,
		MinWrongAnswers:  10,
		CategoryMinTests: 100,
		MaxRetrySize:     10,
	}
}

// NotEligibleError reports an attempt to build a retry session before
// the gates are cleared. The deficits let the UI say exactly how much
// more is needed.
type NotEligibleError struct {
	// TestsNeeded is how many more completed tests are required.
	TestsNeeded int

	// WrongAnswersNeeded is how many more pool entries are required.
	WrongAnswersNeeded int
}

func (e *NotEligibleError) Error() string {
	return fmt.Sprintf("retry test not unlocked: %d more tests and %d more wrong answers needed",
		e.TestsNeeded, e.WrongAnswersNeeded)
}

// CanCreateGlobalRetry reports whether a retry over the whole pool is
// unlocked: both the test count and the pool size must clear their
// gates. Returns a NotEligibleError carrying the deficits otherwise.
func (g Gates) CanCreateGlobalRetry(testsCompleted int, pool []WrongAnswerRecord) error {
	testsShort := g.MinTests - testsCompleted
	if testsShort < 0 {
		testsShort = 0
	}
	poolShort := g.MinWrongAnswers - len(pool)
	if poolShort < 0 {
		poolShort = 0
	}
	if testsShort > 0 || poolShort > 0 {
		return &NotEligibleError{TestsNeeded: testsShort, WrongAnswersNeeded: poolShort}
	}
	return nil
}

// CanCreateCategoryRetry reports whether a retry scoped to one category
// is unlocked: the category needs enough completed tests and at least
// one miss in its sub-pool.
func (g Gates) CanCreateCategoryRetry(categoryTests int, categoryPool []WrongAnswerRecord) error {
	testsShort := g.CategoryMinTests - categoryTests
	if testsShort < 0 {
		testsShort = 0
	}
	poolShort := 0
	if len(categoryPool) == 0 {
		poolShort = 1
	}
	if testsShort > 0 || poolShort > 0 {
		return &NotEligibleError{TestsNeeded: testsShort, WrongAnswersNeeded: poolShort}
	}
	return nil
}

// FilterCategory returns the sub-pool of records for one category,
// preserving record order. The source pool is untouched.
func FilterCategory(pool []WrongAnswerRecord, category string) []WrongAnswerRecord {
	var sub []WrongAnswerRecord
	for _, rec := range pool {
		if rec.Category == category {
			sub = append(sub, rec)
		}
	}
	return sub
}

// BuildRetrySession selects up to maxSize records from the pool, most
// recently recorded first, keeping only the newest record per question
// id. The source pool is never modified; the pool remains the durable
// record of every miss, a built session is just a view over it.
func BuildRetrySession(pool []WrongAnswerRecord, maxSize int) []WrongAnswerRecord {
	if maxSize <= 0 {
		return nil
	}

	seen := make(map[int]bool)
	var selected []WrongAnswerRecord
	for i := len(pool) - 1; i >= 0 && len(selected) < maxSize; i-- {
		rec := pool[i]
		if seen[rec.QuestionID] {
			continue
		}
		seen[rec.QuestionID] = true
		selected = append(selected, rec)
	}
	return selected
}
