// Package progress owns the learner's durable progress aggregate and
// the commit path that persists a finished test session.
package progress

import (
	"github.com/amahdy/quizdrill/internal/progression"
	"github.com/amahdy/quizdrill/internal/retrytest"
	"github.com/amahdy/quizdrill/internal/store"
)

// UserProgress is the learner's progress aggregate. Values flow in
// from the latest snapshot and out through Commit; callers never share
// a mutable instance.
type UserProgress struct {
	// TotalXP is the lifetime XP total.
	TotalXP int

	// TestsCompleted counts finished test sessions of any kind.
	TestsCompleted int

	// PerCategoryTests counts finished tests per bank category.
	PerCategoryTests map[string]int

	// WrongAnswerPool is the append-only record of every miss, oldest
	// first.
	WrongAnswerPool []retrytest.WrongAnswerRecord
}

// Level is the level derived from TotalXP. It is never stored.
func (p UserProgress) Level() int {
	return progression.Level(p.TotalXP)
}

// LevelProgress is the progress within the current level.
func (p UserProgress) LevelProgress() progression.Progress {
	return progression.LevelProgress(p.TotalXP)
}

// CategoryTests returns the finished-test count for one category.
func (p UserProgress) CategoryTests(category string) int {
	return p.PerCategoryTests[category]
}

// clone returns a deep copy so a commit never mutates the prior
// aggregate out from under a caller still holding it.
func (p UserProgress) clone() UserProgress {
	next := UserProgress{
		TotalXP:          p.TotalXP,
		TestsCompleted:   p.TestsCompleted,
		PerCategoryTests: make(map[string]int, len(p.PerCategoryTests)),
	}
	for k, v := range p.PerCategoryTests {
		next.PerCategoryTests[k] = v
	}
	next.WrongAnswerPool = make([]retrytest.WrongAnswerRecord, len(p.WrongAnswerPool))
	copy(next.WrongAnswerPool, p.WrongAnswerPool)
	return next
}

// fromSnapshotData rebuilds the aggregate from its persisted form.
func fromSnapshotData(data store.SnapshotData) UserProgress {
	p := UserProgress{
		TotalXP:          data.TotalXP,
		TestsCompleted:   data.TestsCompleted,
		PerCategoryTests: make(map[string]int, len(data.PerCategoryTests)),
	}
	for k, v := range data.PerCategoryTests {
		p.PerCategoryTests[k] = v
	}
	for _, rec := range data.WrongAnswerPool {
		p.WrongAnswerPool = append(p.WrongAnswerPool, retrytest.WrongAnswerRecord{
			QuestionID:    rec.QuestionID,
			Category:      rec.Category,
			QuestionText:  rec.QuestionText,
			OptionTexts:   rec.OptionTexts,
			SelectedIndex: rec.SelectedIndex,
			CorrectIndex:  rec.CorrectIndex,
			XPReward:      rec.XPReward,
			RecordedAt:    rec.RecordedAt,
		})
	}
	return p
}

// SnapshotData converts the aggregate to its persisted form. Exported
// for callers that publish the committed state on the live channel.
func (p UserProgress) SnapshotData() store.SnapshotData {
	data := store.SnapshotData{
		Version:          store.SnapshotVersion,
		TotalXP:          p.TotalXP,
		TestsCompleted:   p.TestsCompleted,
		PerCategoryTests: p.PerCategoryTests,
	}
	for _, rec := range p.WrongAnswerPool {
		data.WrongAnswerPool = append(data.WrongAnswerPool, store.WrongAnswerState{
			QuestionID:    rec.QuestionID,
			Category:      rec.Category,
			QuestionText:  rec.QuestionText,
			OptionTexts:   rec.OptionTexts,
			SelectedIndex: rec.SelectedIndex,
			CorrectIndex:  rec.CorrectIndex,
			XPReward:      rec.XPReward,
			RecordedAt:    rec.RecordedAt,
		})
	}
	return data
}
