package progress

import (
	"context"
	"testing"
	"time"

	"github.com/amahdy/quizdrill/internal/report"
	"github.com/amahdy/quizdrill/internal/retrytest"
	"github.com/amahdy/quizdrill/internal/store"
)

// fakeEventRepo records appended events in memory.
type fakeEventRepo struct {
	seq          int64
	testEvents   []store.TestEventData
	wrongAnswers []store.WrongAnswerEventData
	xpEvents     []store.XPEventData
}

func (f *fakeEventRepo) AppendTestEvent(_ context.Context, data store.TestEventData) error {
	f.seq++
	f.testEvents = append(f.testEvents, data)
	return nil
}

func (f *fakeEventRepo) QueryTestEvents(context.Context, store.QueryOpts) ([]store.TestEventRecord, error) {
	return nil, nil
}

func (f *fakeEventRepo) AppendWrongAnswer(_ context.Context, data store.WrongAnswerEventData) error {
	f.seq++
	f.wrongAnswers = append(f.wrongAnswers, data)
	return nil
}

func (f *fakeEventRepo) AppendXPEvent(_ context.Context, data store.XPEventData) error {
	f.seq++
	f.xpEvents = append(f.xpEvents, data)
	return nil
}

func (f *fakeEventRepo) CurrentSequence(context.Context) (int64, error) {
	return f.seq, nil
}

// fakeSnapshotRepo holds the latest saved snapshot in memory.
type fakeSnapshotRepo struct {
	latest *store.Snapshot
	saves  int
	prunes []int
}

func (f *fakeSnapshotRepo) Save(_ context.Context, snap *store.Snapshot) error {
	f.latest = snap
	f.saves++
	return nil
}

func (f *fakeSnapshotRepo) Latest(context.Context) (*store.Snapshot, error) {
	return f.latest, nil
}

func (f *fakeSnapshotRepo) Prune(_ context.Context, keep int) error {
	f.prunes = append(f.prunes, keep)
	return nil
}

func testReport() report.Report {
	return report.Report{
		ScorePercentage: 80,
		TotalQuestions:  10,
		CorrectAnswers:  8,
		XPEarned:        80,
		WrongAnswers: []retrytest.WrongAnswerRecord{
			{QuestionID: 3, Category: "Science", QuestionText: "Q3?", SelectedIndex: 1, CorrectIndex: 0, XPReward: 10, RecordedAt: time.Now()},
			{QuestionID: 7, Category: "Science", QuestionText: "Q7?", SelectedIndex: 2, CorrectIndex: 3, XPReward: 10, RecordedAt: time.Now()},
		},
	}
}

func TestLoadFreshDatabase(t *testing.T) {
	svc := NewService(&fakeEventRepo{}, &fakeSnapshotRepo{})

	p, err := svc.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.TotalXP != 0 || p.TestsCompleted != 0 || len(p.WrongAnswerPool) != 0 {
		t.Errorf("fresh aggregate not zero: %+v", p)
	}
	if p.Level() != 1 {
		t.Errorf("fresh level = %d, want 1", p.Level())
	}
	if p.PerCategoryTests == nil {
		t.Error("per-category map not initialized")
	}
}

func TestCommitUpdatesAggregate(t *testing.T) {
	events := &fakeEventRepo{}
	snaps := &fakeSnapshotRepo{}
	svc := NewService(events, snaps)
	ctx := context.Background()

	prior, err := svc.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	next, err := svc.Commit(ctx, prior, CommitInput{
		AttemptID: "attempt-1",
		Kind:      store.TestKindStandard,
		Category:  "Science",
		Report:    testReport(),
	})
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}

	if next.TotalXP != 80 || next.TestsCompleted != 1 {
		t.Errorf("next = xp %d tests %d, want 80 and 1", next.TotalXP, next.TestsCompleted)
	}
	if next.CategoryTests("Science") != 1 {
		t.Errorf("category tests = %d, want 1", next.CategoryTests("Science"))
	}
	if len(next.WrongAnswerPool) != 2 {
		t.Errorf("pool size = %d, want 2", len(next.WrongAnswerPool))
	}

	// The prior aggregate is untouched.
	if prior.TotalXP != 0 || prior.TestsCompleted != 0 || len(prior.WrongAnswerPool) != 0 {
		t.Errorf("prior aggregate mutated: %+v", prior)
	}
}

func TestCommitAppendsAllEvents(t *testing.T) {
	events := &fakeEventRepo{}
	snaps := &fakeSnapshotRepo{}
	svc := NewService(events, snaps)
	ctx := context.Background()

	_, err := svc.Commit(ctx, UserProgress{PerCategoryTests: map[string]int{}}, CommitInput{
		AttemptID: "attempt-1",
		Kind:      store.TestKindStandard,
		Category:  "Science",
		Report:    testReport(),
	})
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}

	if len(events.testEvents) != 1 || events.testEvents[0].Action != store.TestActionEnd {
		t.Errorf("test events = %+v, want one end event", events.testEvents)
	}
	if len(events.xpEvents) != 1 || events.xpEvents[0].TotalAfter != 80 {
		t.Errorf("xp events = %+v, want one award with total 80", events.xpEvents)
	}
	if len(events.wrongAnswers) != 2 {
		t.Errorf("wrong answer events = %d, want 2", len(events.wrongAnswers))
	}
	if snaps.saves != 1 {
		t.Errorf("snapshot saves = %d, want 1", snaps.saves)
	}
	if snaps.latest.Data.TotalXP != 80 {
		t.Errorf("snapshot xp = %d, want 80", snaps.latest.Data.TotalXP)
	}
	if len(snaps.prunes) != 1 || snaps.prunes[0] != snapshotKeep {
		t.Errorf("prunes = %v, want one prune keeping %d", snaps.prunes, snapshotKeep)
	}
}

func TestCommitThenLoadRoundTrip(t *testing.T) {
	events := &fakeEventRepo{}
	snaps := &fakeSnapshotRepo{}
	svc := NewService(events, snaps)
	ctx := context.Background()

	prior, _ := svc.Load(ctx)
	committed, err := svc.Commit(ctx, prior, CommitInput{
		AttemptID: "attempt-1",
		Kind:      store.TestKindRetry,
		Category:  "History",
		Report:    testReport(),
	})
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}

	loaded, err := svc.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.TotalXP != committed.TotalXP {
		t.Errorf("loaded xp = %d, want %d", loaded.TotalXP, committed.TotalXP)
	}
	if loaded.CategoryTests("History") != 1 {
		t.Errorf("loaded category tests = %d, want 1", loaded.CategoryTests("History"))
	}
	if len(loaded.WrongAnswerPool) != 2 || loaded.WrongAnswerPool[1].QuestionID != 7 {
		t.Errorf("loaded pool = %+v, want records for questions 3 and 7", loaded.WrongAnswerPool)
	}
}
