package session

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/amahdy/quizdrill/internal/bank"
	"github.com/amahdy/quizdrill/internal/progress"
	"github.com/amahdy/quizdrill/internal/progression"
	"github.com/amahdy/quizdrill/internal/router"
	"github.com/amahdy/quizdrill/internal/store"
)

// fakeEventRepo implements store.EventRepo in memory.
type fakeEventRepo struct {
	testEvents  []store.TestEventData
	wrongEvents []store.WrongAnswerEventData
	xpEvents    []store.XPEventData
	seq         int64

	// failAppend, when set, is returned from AppendTestEvent.
	failAppend error
}

func (f *fakeEventRepo) AppendTestEvent(_ context.Context, data store.TestEventData) error {
	if f.failAppend != nil {
		return f.failAppend
	}
	f.seq++
	f.testEvents = append(f.testEvents, data)
	return nil
}

func (f *fakeEventRepo) QueryTestEvents(_ context.Context, _ store.QueryOpts) ([]store.TestEventRecord, error) {
	return nil, nil
}

func (f *fakeEventRepo) AppendWrongAnswer(_ context.Context, data store.WrongAnswerEventData) error {
	f.seq++
	f.wrongEvents = append(f.wrongEvents, data)
	return nil
}

func (f *fakeEventRepo) AppendXPEvent(_ context.Context, data store.XPEventData) error {
	f.seq++
	f.xpEvents = append(f.xpEvents, data)
	return nil
}

func (f *fakeEventRepo) CurrentSequence(_ context.Context) (int64, error) {
	return f.seq, nil
}

// fakeSnapshotRepo implements store.SnapshotRepo in memory.
type fakeSnapshotRepo struct {
	snapshots []*store.Snapshot
}

func (f *fakeSnapshotRepo) Save(_ context.Context, snap *store.Snapshot) error {
	f.snapshots = append(f.snapshots, snap)
	return nil
}

func (f *fakeSnapshotRepo) Latest(_ context.Context) (*store.Snapshot, error) {
	if len(f.snapshots) == 0 {
		return nil, nil
	}
	return f.snapshots[len(f.snapshots)-1], nil
}

func (f *fakeSnapshotRepo) Prune(_ context.Context, _ int) error {
	return nil
}

func testQuestions() []bank.Question {
	options := []bank.Option{
		{Key: bank.KeyA, Text: "red"},
		{Key: bank.KeyB, Text: "green"},
		{Key: bank.KeyC, Text: "blue"},
		{Key: bank.KeyD, Text: "yellow"},
	}
	return []bank.Question{
		{ID: 1, Category: "Colors", Prompt: "Color of grass?", Options: options, CorrectKey: bank.KeyB},
		{ID: 2, Category: "Colors", Prompt: "Color of sky?", Options: options, CorrectKey: bank.KeyC},
	}
}

func newTestScreen(questions []bank.Question) (*SessionScreen, *fakeEventRepo) {
	events := &fakeEventRepo{}
	snaps := &fakeSnapshotRepo{}
	s := New(Options{
		Kind: store.TestKindStandard,
		Load: func(context.Context) ([]bank.Question, error) {
			return questions, nil
		},
		Progress: progress.NewService(events, snaps),
		Policy:   progression.DefaultRewardPolicy(),
	})
	return s, events
}

// ready runs the load command and feeds the result into the screen.
func ready(t *testing.T, s *SessionScreen) {
	t.Helper()
	msg := s.loadSession()()
	readyMsg, ok := msg.(sessionReadyMsg)
	if !ok {
		t.Fatalf("loadSession returned %T, want sessionReadyMsg", msg)
	}
	if readyMsg.Err != nil {
		t.Fatalf("loadSession: %v", readyMsg.Err)
	}
	s.Update(readyMsg)
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestSessionRecordsStartEvent(t *testing.T) {
	s, events := newTestScreen(testQuestions())
	ready(t, s)

	if len(events.testEvents) != 1 {
		t.Fatalf("test events = %d, want 1 start event", len(events.testEvents))
	}
	if events.testEvents[0].Action != store.TestActionStart {
		t.Errorf("action = %q, want start", events.testEvents[0].Action)
	}
}

func TestSubmitAndFeedback(t *testing.T) {
	s, _ := newTestScreen(testQuestions())
	ready(t, s)

	s.Update(keyPress('b'))
	s.Update(specialKey(tea.KeyEnter))

	view := s.View(80, 24)
	if !strings.Contains(view, "Correct!") {
		t.Error("expected correct feedback after answering B")
	}
}

func TestWrongAnswerShowsCorrection(t *testing.T) {
	s, _ := newTestScreen(testQuestions())
	ready(t, s)

	s.Update(keyPress('a'))
	s.Update(specialKey(tea.KeyEnter))

	view := s.View(80, 24)
	if !strings.Contains(view, "Not quite") {
		t.Error("expected miss feedback after answering A")
	}
	if !strings.Contains(view, "green") {
		t.Error("expected the correct option text in the feedback")
	}
}

func TestNavigationReplaysRecordedAnswer(t *testing.T) {
	s, _ := newTestScreen(testQuestions())
	ready(t, s)

	// Answer question 1, advance, then go back.
	s.Update(keyPress('b'))
	s.Update(specialKey(tea.KeyEnter))
	s.Update(specialKey(tea.KeyEnter))

	if !strings.Contains(s.View(80, 24), "Question 2/2") {
		t.Fatal("expected to be on question 2")
	}

	s.Update(specialKey(tea.KeyLeft))
	view := s.View(80, 24)
	if !strings.Contains(view, "Question 1/2") {
		t.Fatal("expected to be back on question 1")
	}
	if !strings.Contains(view, "Correct!") {
		t.Error("revisited question should replay its recorded outcome")
	}
}

func TestCompletionCommitsAndPushesSummary(t *testing.T) {
	s, events := newTestScreen(testQuestions())
	ready(t, s)

	// Answer both questions, one right one wrong.
	s.Update(keyPress('b'))
	s.Update(specialKey(tea.KeyEnter))
	s.Update(specialKey(tea.KeyEnter))
	s.Update(keyPress('a'))
	s.Update(specialKey(tea.KeyEnter))
	s.Update(specialKey(tea.KeyEnter))

	if !s.committing {
		t.Fatal("advancing past the last question should start the commit")
	}

	msg := s.commitSession()()
	done, ok := msg.(commitDoneMsg)
	if !ok {
		t.Fatalf("commitSession returned %T, want commitDoneMsg", msg)
	}
	if done.Err != nil {
		t.Fatalf("commit: %v", done.Err)
	}
	if done.Report.CorrectAnswers != 1 || done.Report.TotalQuestions != 2 {
		t.Errorf("report = %d/%d, want 1/2", done.Report.CorrectAnswers, done.Report.TotalQuestions)
	}
	if len(events.wrongEvents) != 1 {
		t.Errorf("wrong-answer events = %d, want 1", len(events.wrongEvents))
	}

	_, cmd := s.Update(done)
	if cmd == nil {
		t.Fatal("expected a push command after commit")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Error("expected PushScreenMsg to the summary screen")
	}
}

func TestStartRecordFailureSurfaces(t *testing.T) {
	events := &fakeEventRepo{failAppend: errors.New("database is locked")}
	s := New(Options{
		Kind: store.TestKindStandard,
		Load: func(context.Context) ([]bank.Question, error) {
			return testQuestions(), nil
		},
		Progress: progress.NewService(events, &fakeSnapshotRepo{}),
		Policy:   progression.DefaultRewardPolicy(),
	})

	msg := s.loadSession()()
	readyMsg, ok := msg.(sessionReadyMsg)
	if !ok {
		t.Fatalf("loadSession returned %T, want sessionReadyMsg", msg)
	}
	if readyMsg.Err == nil {
		t.Fatal("a failed start record should surface as a load error")
	}

	s.Update(readyMsg)
	if !strings.Contains(s.View(80, 24), "database is locked") {
		t.Error("expected the store error in the error state")
	}
}

func TestCategorySessionCommitsCategoryCount(t *testing.T) {
	events := &fakeEventRepo{}
	snaps := &fakeSnapshotRepo{}
	s := New(Options{
		Kind:     store.TestKindStandard,
		Category: "Colors",
		Load: func(context.Context) ([]bank.Question, error) {
			return testQuestions(), nil
		},
		Progress: progress.NewService(events, snaps),
		Policy:   progression.DefaultRewardPolicy(),
	})
	ready(t, s)

	if events.testEvents[0].Category != "Colors" {
		t.Errorf("start event category = %q, want Colors", events.testEvents[0].Category)
	}

	// Answer both questions correctly and commit.
	s.Update(keyPress('b'))
	s.Update(specialKey(tea.KeyEnter))
	s.Update(specialKey(tea.KeyEnter))
	s.Update(keyPress('c'))
	s.Update(specialKey(tea.KeyEnter))
	s.Update(specialKey(tea.KeyEnter))

	msg := s.commitSession()()
	done, ok := msg.(commitDoneMsg)
	if !ok || done.Err != nil {
		t.Fatalf("commit = %T err %v", msg, done.Err)
	}

	end := events.testEvents[len(events.testEvents)-1]
	if end.Category != "Colors" {
		t.Errorf("end event category = %q, want Colors", end.Category)
	}
	if done.Next.CategoryTests("Colors") != 1 {
		t.Errorf("category tests = %d, want 1", done.Next.CategoryTests("Colors"))
	}

	latest := snaps.snapshots[len(snaps.snapshots)-1]
	if latest.Data.PerCategoryTests["Colors"] != 1 {
		t.Errorf("snapshot category count = %d, want 1", latest.Data.PerCategoryTests["Colors"])
	}
}

func TestEmptyBankState(t *testing.T) {
	s, _ := newTestScreen(nil)
	ready(t, s)

	if !s.emptyBank {
		t.Fatal("expected empty-bank state for a nil question list")
	}
	if !strings.Contains(s.View(80, 24), "No questions") {
		t.Error("expected the empty-bank message")
	}

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("any key should pop back from the empty-bank state")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestQuitConfirm(t *testing.T) {
	s, _ := newTestScreen(testQuestions())
	ready(t, s)

	s.Update(specialKey(tea.KeyEscape))
	if !s.quitConfirm {
		t.Fatal("esc should open the quit confirmation")
	}

	s.Update(keyPress('n'))
	if s.quitConfirm {
		t.Fatal("n should cancel the quit confirmation")
	}

	s.Update(specialKey(tea.KeyEscape))
	_, cmd := s.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("y should abandon the session")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg on abandon")
	}
}
