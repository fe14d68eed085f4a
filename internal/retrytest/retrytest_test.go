package retrytest

import (
	"errors"
	"testing"
	"time"
)

func poolOf(ids ...int) []WrongAnswerRecord {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	pool := make([]WrongAnswerRecord, len(ids))
	for i, id := range ids {
		pool[i] = WrongAnswerRecord{
			QuestionID:   id,
			Category:     "General",
			QuestionText: "prompt",
			RecordedAt:   base.Add(time.Duration(i) * time.Minute),
		}
	}
	return pool
}

func TestCanCreateGlobalRetry(t *testing.T) {
	gates := DefaultGates()

	tests := []struct {
		name     string
		tests    int
		poolSize int
		eligible bool
	}{
		{"both short", 5, 5, false},
		{"tests short", 9, 12, false},
		{"pool short", 12, 9, false},
		{"exactly at gates", 10, 10, true},
		{"well past gates", 50, 40, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := gates.CanCreateGlobalRetry(tt.tests, poolOf(make([]int, tt.poolSize)...))
			if tt.eligible && err != nil {
				t.Fatalf("CanCreateGlobalRetry = %v, want nil", err)
			}
			if !tt.eligible && err == nil {
				t.Fatal("CanCreateGlobalRetry = nil, want NotEligibleError")
			}
		})
	}
}

func TestGlobalRetryDeficits(t *testing.T) {
	gates := DefaultGates()
	err := gates.CanCreateGlobalRetry(7, poolOf(1, 2, 3))

	var notEligible *NotEligibleError
	if !errors.As(err, &notEligible) {
		t.Fatalf("err = %v, want NotEligibleError", err)
	}
	if notEligible.TestsNeeded != 3 {
		t.Errorf("TestsNeeded = %d, want 3", notEligible.TestsNeeded)
	}
	if notEligible.WrongAnswersNeeded != 7 {
		t.Errorf("WrongAnswersNeeded = %d, want 7", notEligible.WrongAnswersNeeded)
	}
}

func TestCanCreateCategoryRetry(t *testing.T) {
	gates := DefaultGates()

	if err := gates.CanCreateCategoryRetry(100, poolOf(1)); err != nil {
		t.Errorf("eligible category retry = %v, want nil", err)
	}
	if err := gates.CanCreateCategoryRetry(99, poolOf(1)); err == nil {
		t.Error("category retry with 99 tests should not be eligible")
	}
	if err := gates.CanCreateCategoryRetry(150, nil); err == nil {
		t.Error("category retry with empty sub-pool should not be eligible")
	}
}

func TestBuildRetrySession(t *testing.T) {
	pool := poolOf(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15)
	session := BuildRetrySession(pool, 10)

	if len(session) != 10 {
		t.Fatalf("session size = %d, want 10", len(session))
	}
	// Most recently recorded first.
	if session[0].QuestionID != 15 || session[9].QuestionID != 6 {
		t.Errorf("session order = %d..%d, want 15..6", session[0].QuestionID, session[9].QuestionID)
	}
	// The source pool keeps every record.
	if len(pool) != 15 {
		t.Errorf("pool size changed to %d", len(pool))
	}
}

func TestBuildRetrySessionDistinctQuestions(t *testing.T) {
	// Question 7 was missed three times; only its newest record makes
	// the cut.
	pool := poolOf(7, 1, 7, 2, 7, 3)
	session := BuildRetrySession(pool, 10)

	if len(session) != 4 {
		t.Fatalf("session size = %d, want 4", len(session))
	}
	want := []int{7, 3, 2, 1}
	for i, rec := range session {
		if rec.QuestionID != want[i] {
			t.Errorf("session[%d].QuestionID = %d, want %d", i, rec.QuestionID, want[i])
		}
	}
	if !session[0].RecordedAt.After(session[3].RecordedAt) {
		t.Error("kept record for question 7 is not the newest one")
	}
}

func TestBuildRetrySessionSmallPool(t *testing.T) {
	session := BuildRetrySession(poolOf(1, 2, 3), 10)
	if len(session) != 3 {
		t.Errorf("session size = %d, want 3", len(session))
	}
	if BuildRetrySession(nil, 10) != nil {
		t.Error("empty pool should yield no session")
	}
}

func TestFilterCategory(t *testing.T) {
	pool := poolOf(1, 2, 3)
	pool[1].Category = "Science"

	sub := FilterCategory(pool, "Science")
	if len(sub) != 1 || sub[0].QuestionID != 2 {
		t.Fatalf("FilterCategory = %v, want single record for question 2", sub)
	}
	if len(pool) != 3 {
		t.Errorf("source pool changed")
	}
}
