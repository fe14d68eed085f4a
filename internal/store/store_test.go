package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data: SnapshotData{
			Version:          SnapshotVersion,
			TotalXP:          230,
			TestsCompleted:   4,
			PerCategoryTests: map[string]int{"Science": 3, "History": 1},
			WrongAnswerPool: []WrongAnswerState{{
				QuestionID:    7,
				Category:      "Science",
				QuestionText:  "What is H2O?",
				OptionTexts:   []string{"Water", "Salt", "Gold", "Air"},
				SelectedIndex: 1,
				CorrectIndex:  0,
				XPReward:      10,
				RecordedAt:    now,
			}},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected a snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if snap.Data.TotalXP != 230 || snap.Data.TestsCompleted != 4 {
		t.Errorf("data = xp %d tests %d, want 230 and 4", snap.Data.TotalXP, snap.Data.TestsCompleted)
	}
	if snap.Data.PerCategoryTests["Science"] != 3 {
		t.Errorf("per-category count = %d, want 3", snap.Data.PerCategoryTests["Science"])
	}
	if len(snap.Data.WrongAnswerPool) != 1 || snap.Data.WrongAnswerPool[0].QuestionID != 7 {
		t.Errorf("pool = %v, want single record for question 7", snap.Data.WrongAnswerPool)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 5; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Second),
			Data:      SnapshotData{Version: SnapshotVersion, TotalXP: (i + 1) * 10},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 2); err != nil {
		t.Fatalf("prune: %v", err)
	}

	// The newest snapshot survives.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil || snap.Sequence != 5 {
		t.Fatalf("latest after prune = %+v, want sequence 5", snap)
	}

	var count int
	if err := s.DB().QueryRow("SELECT COUNT(*) FROM snapshots").Scan(&count); err != nil {
		t.Fatalf("count snapshots: %v", err)
	}
	if count != 2 {
		t.Errorf("snapshots after prune = %d, want 2", count)
	}

	// Pruning with nothing beyond keep is a no-op.
	if err := repo.Prune(ctx, 10); err != nil {
		t.Fatalf("prune (no-op): %v", err)
	}
}

func TestSequenceSharedAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendTestEvent(ctx, TestEventData{
		AttemptID: "attempt-1",
		Action:    TestActionStart,
		Kind:      TestKindStandard,
	})
	if err != nil {
		t.Fatalf("append test event: %v", err)
	}

	err = repo.AppendWrongAnswer(ctx, WrongAnswerEventData{
		AttemptID:     "attempt-1",
		QuestionID:    3,
		Category:      "Science",
		QuestionText:  "Q?",
		OptionTexts:   []string{"a", "b", "c", "d"},
		SelectedIndex: 2,
		CorrectIndex:  0,
		XPReward:      10,
	})
	if err != nil {
		t.Fatalf("append wrong answer: %v", err)
	}

	err = repo.AppendXPEvent(ctx, XPEventData{
		AttemptID:  "attempt-1",
		Amount:     30,
		Reason:     XPReasonTestResult,
		TotalAfter: 30,
	})
	if err != nil {
		t.Fatalf("append xp event: %v", err)
	}

	seq, err := repo.CurrentSequence(ctx)
	if err != nil {
		t.Fatalf("current sequence: %v", err)
	}
	if seq != 3 {
		t.Errorf("sequence after three events = %d, want 3", seq)
	}
}

func TestQueryTestEventsNewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i, attempt := range []string{"a1", "a2", "a3"} {
		err := repo.AppendTestEvent(ctx, TestEventData{
			AttemptID:      attempt,
			Action:         TestActionEnd,
			Kind:           TestKindStandard,
			Category:       "History",
			TotalQuestions: 10,
			CorrectAnswers: 5 + i,
			ScorePct:       float64(50 + i*10),
			XPEarned:       (5 + i) * 10,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	records, err := repo.QueryTestEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].AttemptID != "a3" || records[1].AttemptID != "a2" {
		t.Errorf("order = %s, %s; want a3, a2", records[0].AttemptID, records[1].AttemptID)
	}
	if records[0].XPEarned != 70 {
		t.Errorf("newest xp = %d, want 70", records[0].XPEarned)
	}
}
