// Package report turns a completed test session into the immutable
// summary consumed by the summary screen and the persistence layer.
package report

import (
	"errors"
	"time"

	"github.com/amahdy/quizdrill/internal/engine"
	"github.com/amahdy/quizdrill/internal/progression"
	"github.com/amahdy/quizdrill/internal/retrytest"
)

// ErrSessionNotCompleted is returned when a report is requested for a
// session that has not reached the completed phase.
var ErrSessionNotCompleted = errors.New("session not completed")

// Report is the end-of-session summary. It is built once, after the
// session completes, and never mutated.
type Report struct {
	// ScorePercentage is correct/total in percent.
	ScorePercentage float64

	// TotalQuestions is the number of questions in the session.
	TotalQuestions int

	// CorrectAnswers is the number answered correctly.
	CorrectAnswers int

	// XPEarned is the award under the session's reward policy.
	XPEarned int

	// Tier is the feedback bucket for the score.
	Tier progression.FeedbackTier

	// LeveledUp reports whether the award crossed a level threshold.
	LeveledUp bool

	// NewLevel is the level after the award is applied.
	NewLevel int

	// WrongAnswers are the misses from this session, in question
	// order, ready to append to the learner's pool.
	WrongAnswers []retrytest.WrongAnswerRecord
}

// Build assembles the report for a completed session. priorXP is the
// learner's total XP before this session; now stamps the wrong-answer
// records.
func Build(e *engine.Engine, policy progression.RewardPolicy, priorXP int, now time.Time) (Report, error) {
	snap := e.Snapshot()
	if snap.Phase != engine.PhaseCompleted {
		return Report{}, ErrSessionNotCompleted
	}

	total := snap.TotalQuestions
	correct := snap.CorrectCount

	var scorePct float64
	if total > 0 {
		scorePct = float64(correct) / float64(total) * 100
	}

	xp := policy.XPEarned(correct, total)
	priorLevel := progression.Level(priorXP)
	newLevel := progression.Level(priorXP + xp)

	r := Report{
		ScorePercentage: scorePct,
		TotalQuestions:  total,
		CorrectAnswers:  correct,
		XPEarned:        xp,
		Tier:            progression.TierForScore(scorePct),
		LeveledUp:       newLevel > priorLevel,
		NewLevel:        newLevel,
	}

	for i, q := range e.Questions() {
		rec, ok := e.Record(i)
		if !ok || rec.Correct {
			continue
		}
		r.WrongAnswers = append(r.WrongAnswers, retrytest.WrongAnswerRecord{
			QuestionID:    q.ID,
			Category:      q.Category,
			QuestionText:  q.Prompt,
			OptionTexts:   q.OptionTexts(),
			SelectedIndex: q.OptionIndex(rec.Selected),
			CorrectIndex:  q.OptionIndex(q.CorrectKey),
			XPReward:      policy.XPPerCorrect,
			RecordedAt:    now,
		})
	}

	return r, nil
}
