package engine

import (
	"errors"
	"fmt"
	"testing"

	"github.com/amahdy/quizdrill/internal/bank"
)

func testQuestions(n int) []bank.Question {
	questions := make([]bank.Question, n)
	for i := range questions {
		questions[i] = bank.Question{
			ID:       i + 1,
			Category: "Testing",
			Prompt:   fmt.Sprintf("Question %d?", i+1),
			Options: []bank.Option{
				{Key: bank.KeyA, Text: "first"},
				{Key: bank.KeyB, Text: "second"},
				{Key: bank.KeyC, Text: "third"},
				{Key: bank.KeyD, Text: "fourth"},
			},
			CorrectKey: bank.KeyA,
		}
	}
	return questions
}

func TestStartEmptyBank(t *testing.T) {
	e := New(nil)
	if err := e.Start(); !errors.Is(err, ErrNoQuestions) {
		t.Fatalf("Start on empty bank = %v, want ErrNoQuestions", err)
	}
	if e.Snapshot().Phase != PhaseNotStarted {
		t.Errorf("phase changed after failed start")
	}
}

func TestStartTwice(t *testing.T) {
	e := New(testQuestions(2))
	if err := e.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	var invalid *InvalidTransitionError
	if err := e.Start(); !errors.As(err, &invalid) {
		t.Fatalf("second Start = %v, want InvalidTransitionError", err)
	}
}

func TestAdvancePastLastCompletes(t *testing.T) {
	e := New(testQuestions(2))
	if err := e.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	for i := 0; i < 2; i++ {
		if _, err := e.SubmitAnswer(bank.KeyA); err != nil {
			t.Fatalf("SubmitAnswer %d: %v", i, err)
		}
		if err := e.Advance(); err != nil {
			t.Fatalf("Advance %d: %v", i, err)
		}
	}

	snap := e.Snapshot()
	if snap.Phase != PhaseCompleted {
		t.Fatalf("phase = %v, want completed", snap.Phase)
	}
	if snap.CorrectCount != 2 {
		t.Errorf("correct count = %d, want 2", snap.CorrectCount)
	}
	// The cursor never moves out of range.
	if snap.QuestionIndex != 1 {
		t.Errorf("question index = %d, want 1", snap.QuestionIndex)
	}
}

func TestDoubleSubmitRejectedAndNeverRescored(t *testing.T) {
	e := New(testQuestions(2))
	if err := e.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	correct, err := e.SubmitAnswer(bank.KeyA)
	if err != nil || !correct {
		t.Fatalf("SubmitAnswer = (%v, %v), want (true, nil)", correct, err)
	}

	var invalid *InvalidTransitionError
	if _, err := e.SubmitAnswer(bank.KeyB); !errors.As(err, &invalid) {
		t.Fatalf("double submit = %v, want InvalidTransitionError", err)
	}

	if err := e.Advance(); err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if err := e.Retreat(); err != nil {
		t.Fatalf("Retreat: %v", err)
	}
	if _, err := e.SubmitAnswer(bank.KeyB); !errors.As(err, &invalid) {
		t.Fatalf("re-submit after retreat = %v, want InvalidTransitionError", err)
	}

	snap := e.Snapshot()
	if snap.CorrectCount != 1 {
		t.Errorf("correct count = %d, want 1", snap.CorrectCount)
	}
	if snap.Selection != bank.KeyA {
		t.Errorf("selection = %q, want recorded A", snap.Selection)
	}
}

func TestRetreatRestoresRecordedAnswer(t *testing.T) {
	e := New(testQuestions(3))
	if err := e.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	if _, err := e.SubmitAnswer(bank.KeyC); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if err := e.Advance(); err != nil {
		t.Fatalf("Advance: %v", err)
	}

	snap := e.Snapshot()
	if snap.Mode != ModeAwaitingAnswer || snap.Answered {
		t.Fatalf("fresh question should await an answer, got mode %v answered %v", snap.Mode, snap.Answered)
	}

	if err := e.Retreat(); err != nil {
		t.Fatalf("Retreat: %v", err)
	}
	snap = e.Snapshot()
	if snap.Mode != ModeAnswered {
		t.Errorf("mode after retreat = %v, want answered", snap.Mode)
	}
	if snap.Selection != bank.KeyC {
		t.Errorf("selection after retreat = %q, want C", snap.Selection)
	}

	// Advancing back onto the answered question replays it too.
	if err := e.Advance(); err != nil {
		t.Fatalf("Advance back: %v", err)
	}
	if got := e.Snapshot().Mode; got != ModeAwaitingAnswer {
		t.Errorf("mode on unanswered question = %v, want awaiting", got)
	}
}

func TestRetreatAtFirstQuestion(t *testing.T) {
	e := New(testQuestions(2))
	if err := e.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	var invalid *InvalidTransitionError
	if err := e.Retreat(); !errors.As(err, &invalid) {
		t.Fatalf("Retreat at first question = %v, want InvalidTransitionError", err)
	}
}

func TestAdvanceWithoutAnswer(t *testing.T) {
	e := New(testQuestions(2))
	if err := e.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	var invalid *InvalidTransitionError
	if err := e.Advance(); !errors.As(err, &invalid) {
		t.Fatalf("Advance without answer = %v, want InvalidTransitionError", err)
	}
}

func TestSubmitUnknownOption(t *testing.T) {
	e := New(testQuestions(1))
	if err := e.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	var invalid *InvalidTransitionError
	if _, err := e.SubmitAnswer(bank.OptionKey("Z")); !errors.As(err, &invalid) {
		t.Fatalf("submit unknown option = %v, want InvalidTransitionError", err)
	}
}

func TestRestart(t *testing.T) {
	e := New(testQuestions(2))
	if err := e.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	for i := 0; i < 2; i++ {
		if _, err := e.SubmitAnswer(bank.KeyA); err != nil {
			t.Fatalf("SubmitAnswer: %v", err)
		}
		if err := e.Advance(); err != nil {
			t.Fatalf("Advance: %v", err)
		}
	}

	if err := e.Restart(); err != nil {
		t.Fatalf("Restart: %v", err)
	}
	snap := e.Snapshot()
	if snap.Phase != PhaseInProgress || snap.QuestionIndex != 0 {
		t.Errorf("after restart phase %v index %d, want in progress at 0", snap.Phase, snap.QuestionIndex)
	}
	if snap.CorrectCount != 0 || snap.Answered {
		t.Errorf("restart did not clear recorded answers")
	}
	if snap.TotalQuestions != 2 {
		t.Errorf("restart changed the question list: %d questions", snap.TotalQuestions)
	}
}

func TestRestartBeforeStart(t *testing.T) {
	e := New(testQuestions(1))
	var invalid *InvalidTransitionError
	if err := e.Restart(); !errors.As(err, &invalid) {
		t.Fatalf("Restart before Start = %v, want InvalidTransitionError", err)
	}
}
