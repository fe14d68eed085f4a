package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/amahdy/quizdrill/internal/report"
	"github.com/amahdy/quizdrill/internal/store"
)

// snapshotKeep bounds the snapshot table. Only the latest snapshot is
// ever read; the event log stays the full history.
const snapshotKeep = 20

// Service loads and commits the progress aggregate against the store.
type Service struct {
	events    store.EventRepo
	snapshots store.SnapshotRepo
}

// NewService creates a Service over the given repositories.
func NewService(events store.EventRepo, snapshots store.SnapshotRepo) *Service {
	return &Service{events: events, snapshots: snapshots}
}

// Load restores the aggregate from the latest snapshot. A fresh
// database yields a zero aggregate, not an error.
func (s *Service) Load(ctx context.Context) (UserProgress, error) {
	snap, err := s.snapshots.Latest(ctx)
	if err != nil {
		return UserProgress{}, fmt.Errorf("load progress: %w", err)
	}
	if snap == nil {
		return UserProgress{PerCategoryTests: make(map[string]int)}, nil
	}
	return fromSnapshotData(snap.Data), nil
}

// CommitInput describes one finished session to persist.
type CommitInput struct {
	// AttemptID groups this session's events.
	AttemptID string

	// Kind is store.TestKindStandard or store.TestKindRetry.
	Kind string

	// Category is the session's bank category, empty for mixed.
	Category string

	// Report is the session's end-of-test report.
	Report report.Report
}

// RecordStart appends the start-of-test event for a new attempt.
func (s *Service) RecordStart(ctx context.Context, in CommitInput) error {
	err := s.events.AppendTestEvent(ctx, store.TestEventData{
		AttemptID: in.AttemptID,
		Action:    store.TestActionStart,
		Kind:      in.Kind,
		Category:  in.Category,
	})
	if err != nil {
		return fmt.Errorf("record test start: %w", err)
	}
	return nil
}

// Commit persists a finished session and returns the next aggregate:
// the end-of-test event, the XP award, and one wrong-answer event per
// miss are appended, then a fresh snapshot of the new aggregate is
// saved and snapshots beyond the newest snapshotKeep are pruned. The
// prior aggregate is left untouched.
func (s *Service) Commit(ctx context.Context, prior UserProgress, in CommitInput) (UserProgress, error) {
	r := in.Report

	err := s.events.AppendTestEvent(ctx, store.TestEventData{
		AttemptID:      in.AttemptID,
		Action:         store.TestActionEnd,
		Kind:           in.Kind,
		Category:       in.Category,
		TotalQuestions: r.TotalQuestions,
		CorrectAnswers: r.CorrectAnswers,
		ScorePct:       r.ScorePercentage,
		XPEarned:       r.XPEarned,
	})
	if err != nil {
		return prior, fmt.Errorf("commit test event: %w", err)
	}

	next := prior.clone()
	next.TotalXP += r.XPEarned
	next.TestsCompleted++
	if in.Category != "" {
		next.PerCategoryTests[in.Category]++
	}
	next.WrongAnswerPool = append(next.WrongAnswerPool, r.WrongAnswers...)

	err = s.events.AppendXPEvent(ctx, store.XPEventData{
		AttemptID:  in.AttemptID,
		Amount:     r.XPEarned,
		Reason:     store.XPReasonTestResult,
		TotalAfter: next.TotalXP,
	})
	if err != nil {
		return prior, fmt.Errorf("commit xp event: %w", err)
	}

	for _, miss := range r.WrongAnswers {
		err = s.events.AppendWrongAnswer(ctx, store.WrongAnswerEventData{
			AttemptID:     in.AttemptID,
			QuestionID:    miss.QuestionID,
			Category:      miss.Category,
			QuestionText:  miss.QuestionText,
			OptionTexts:   miss.OptionTexts,
			SelectedIndex: miss.SelectedIndex,
			CorrectIndex:  miss.CorrectIndex,
			XPReward:      miss.XPReward,
			RecordedAt:    miss.RecordedAt,
		})
		if err != nil {
			return prior, fmt.Errorf("commit wrong answer: %w", err)
		}
	}

	seq, err := s.events.CurrentSequence(ctx)
	if err != nil {
		return prior, fmt.Errorf("commit snapshot sequence: %w", err)
	}
	err = s.snapshots.Save(ctx, &store.Snapshot{
		Sequence:  seq,
		Timestamp: time.Now().UTC(),
		Data:      next.SnapshotData(),
	})
	if err != nil {
		return prior, fmt.Errorf("commit snapshot: %w", err)
	}

	if err := s.snapshots.Prune(ctx, snapshotKeep); err != nil {
		return next, fmt.Errorf("prune snapshots: %w", err)
	}

	return next, nil
}
