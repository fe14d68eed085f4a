package report

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/amahdy/quizdrill/internal/bank"
	"github.com/amahdy/quizdrill/internal/engine"
	"github.com/amahdy/quizdrill/internal/progression"
)

var testPolicy = progression.RewardPolicy{XPPerCorrect: 10, PerfectBonus: 20}

func runSession(t *testing.T, n int, answers []bank.OptionKey) *engine.Engine {
	t.Helper()

	questions := make([]bank.Question, n)
	for i := range questions {
		questions[i] = bank.Question{
			ID:       i + 1,
			Category: "General",
			Prompt:   fmt.Sprintf("Question %d?", i+1),
			Options: []bank.Option{
				{Key: bank.KeyA, Text: "alpha"},
				{Key: bank.KeyB, Text: "bravo"},
				{Key: bank.KeyC, Text: "charlie"},
				{Key: bank.KeyD, Text: "delta"},
			},
			CorrectKey: bank.KeyA,
		}
	}

	e := engine.New(questions)
	if err := e.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	for _, key := range answers {
		if _, err := e.SubmitAnswer(key); err != nil {
			t.Fatalf("SubmitAnswer: %v", err)
		}
		if err := e.Advance(); err != nil {
			t.Fatalf("Advance: %v", err)
		}
	}
	return e
}

func TestBuildRequiresCompletedSession(t *testing.T) {
	e := engine.New([]bank.Question{{
		ID: 1, Category: "General", Prompt: "Q?",
		Options: []bank.Option{
			{Key: bank.KeyA, Text: "a"}, {Key: bank.KeyB, Text: "b"},
			{Key: bank.KeyC, Text: "c"}, {Key: bank.KeyD, Text: "d"},
		},
		CorrectKey: bank.KeyA,
	}})
	if err := e.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	if _, err := Build(e, testPolicy, 0, time.Now()); !errors.Is(err, ErrSessionNotCompleted) {
		t.Fatalf("Build on running session = %v, want ErrSessionNotCompleted", err)
	}
}

func TestBuildScoresAndMisses(t *testing.T) {
	// 3 of 4 correct; question 3 missed with option B.
	e := runSession(t, 4, []bank.OptionKey{bank.KeyA, bank.KeyA, bank.KeyB, bank.KeyA})

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	r, err := Build(e, testPolicy, 0, now)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if r.TotalQuestions != 4 || r.CorrectAnswers != 3 {
		t.Errorf("counts = %d/%d, want 3/4", r.CorrectAnswers, r.TotalQuestions)
	}
	if r.ScorePercentage != 75 {
		t.Errorf("score = %.1f, want 75", r.ScorePercentage)
	}
	if r.Tier != progression.TierGood {
		t.Errorf("tier = %q, want good", r.Tier)
	}
	if r.XPEarned != 30 {
		t.Errorf("xp = %d, want 30", r.XPEarned)
	}

	if len(r.WrongAnswers) != 1 {
		t.Fatalf("wrong answers = %d, want 1", len(r.WrongAnswers))
	}
	miss := r.WrongAnswers[0]
	if miss.QuestionID != 3 {
		t.Errorf("missed question id = %d, want 3", miss.QuestionID)
	}
	if miss.SelectedIndex != 1 || miss.CorrectIndex != 0 {
		t.Errorf("indexes = selected %d correct %d, want 1 and 0", miss.SelectedIndex, miss.CorrectIndex)
	}
	if len(miss.OptionTexts) != bank.OptionCount {
		t.Errorf("option texts = %d, want %d", len(miss.OptionTexts), bank.OptionCount)
	}
	if !miss.RecordedAt.Equal(now) {
		t.Errorf("recorded at = %v, want %v", miss.RecordedAt, now)
	}
}

func TestBuildPerfectSessionBonusAndLevelUp(t *testing.T) {
	e := runSession(t, 10, []bank.OptionKey{
		bank.KeyA, bank.KeyA, bank.KeyA, bank.KeyA, bank.KeyA,
		bank.KeyA, bank.KeyA, bank.KeyA, bank.KeyA, bank.KeyA,
	})

	// 150 prior XP + 120 earned crosses the 250 XP threshold.
	r, err := Build(e, testPolicy, 150, time.Now())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if r.XPEarned != 120 {
		t.Errorf("xp = %d, want 120 (perfect bonus included)", r.XPEarned)
	}
	if r.Tier != progression.TierExcellent {
		t.Errorf("tier = %q, want excellent", r.Tier)
	}
	if !r.LeveledUp || r.NewLevel != 3 {
		t.Errorf("leveled up = %v new level = %d, want level 3 reached", r.LeveledUp, r.NewLevel)
	}
	if len(r.WrongAnswers) != 0 {
		t.Errorf("perfect session recorded %d misses", len(r.WrongAnswers))
	}
}
