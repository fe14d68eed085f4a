package session

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/spinner"
	"charm.land/lipgloss/v2"

	"github.com/amahdy/quizdrill/internal/bank"
	"github.com/amahdy/quizdrill/internal/engine"
	"github.com/amahdy/quizdrill/internal/live"
	"github.com/amahdy/quizdrill/internal/progress"
	"github.com/amahdy/quizdrill/internal/progression"
	"github.com/amahdy/quizdrill/internal/report"
	"github.com/amahdy/quizdrill/internal/router"
	"github.com/amahdy/quizdrill/internal/screen"
	"github.com/amahdy/quizdrill/internal/screens/summary"
	"github.com/amahdy/quizdrill/internal/store"
	"github.com/amahdy/quizdrill/internal/ui/components"
	"github.com/amahdy/quizdrill/internal/ui/layout"
	"github.com/amahdy/quizdrill/internal/ui/theme"

	"github.com/google/uuid"
)

// Options are the dependencies a test session needs.
type Options struct {
	// Kind is store.TestKindStandard or store.TestKindRetry.
	Kind string

	// Category scopes the session's test counter; empty for mixed.
	Category string

	// Load produces the session's question list.
	Load func(ctx context.Context) ([]bank.Question, error)

	// Progress loads the prior aggregate and commits the result.
	Progress *progress.Service

	// Hub receives the committed state for live listeners. Optional.
	Hub *live.Hub

	// Policy is the reward policy in effect for this session.
	Policy progression.RewardPolicy
}

// SessionScreen runs one test session from loading through commit.
type SessionScreen struct {
	opts Options

	spinner spinner.Model
	eng     *engine.Engine
	prior   progress.UserProgress
	attempt string
	options components.OptionList

	quitConfirm bool
	committing  bool
	emptyBank   bool
	errMsg      string
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)

// New creates a SessionScreen. The question list loads asynchronously;
// until then the screen shows a loading state.
func New(opts Options) *SessionScreen {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Secondary)
	return &SessionScreen{
		opts:    opts,
		spinner: sp,
		attempt: uuid.New().String(),
	}
}

func (s *SessionScreen) Init() tea.Cmd {
	return tea.Batch(s.spinner.Tick, s.loadSession())
}

func (s *SessionScreen) Title() string {
	if s.opts.Kind == store.TestKindRetry {
		return "Retry Test"
	}
	return "Test"
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.errMsg != "" || s.emptyBank {
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	}
	if s.quitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Abandon test"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.eng == nil || s.committing {
		return nil
	}
	snap := s.eng.Snapshot()
	if snap.Answered {
		hints := []layout.KeyHint{{Key: "Enter/→", Description: "Next"}}
		if snap.QuestionIndex > 0 {
			hints = append(hints, layout.KeyHint{Key: "←", Description: "Previous"})
		}
		return append(hints, layout.KeyHint{Key: "Esc", Description: "Quit"})
	}
	return []layout.KeyHint{
		{Key: "A-D/↑↓", Description: "Select"},
		{Key: "Enter", Description: "Answer"},
		{Key: "Esc", Description: "Quit"},
	}
}

// loadSession loads the prior aggregate and the question list, and
// records the start-of-test event.
func (s *SessionScreen) loadSession() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		prior, err := s.opts.Progress.Load(ctx)
		if err != nil {
			return sessionReadyMsg{Err: err}
		}

		questions, err := s.opts.Load(ctx)
		if err != nil {
			return sessionReadyMsg{Err: err}
		}

		err = s.opts.Progress.RecordStart(ctx, progress.CommitInput{
			AttemptID: s.attempt,
			Kind:      s.opts.Kind,
			Category:  s.opts.Category,
		})
		if err != nil {
			return sessionReadyMsg{Err: err}
		}

		return sessionReadyMsg{Questions: questions, Prior: prior}
	}
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionReadyMsg:
		return s.handleReady(msg)

	case commitDoneMsg:
		return s.handleCommitDone(msg)

	case spinner.TickMsg:
		if s.eng == nil || s.committing {
			var cmd tea.Cmd
			s.spinner, cmd = s.spinner.Update(msg)
			return s, cmd
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *SessionScreen) handleReady(msg sessionReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}

	s.prior = msg.Prior
	s.eng = engine.New(msg.Questions)
	if err := s.eng.Start(); err != nil {
		if errors.Is(err, engine.ErrNoQuestions) {
			s.emptyBank = true
		} else {
			s.errMsg = err.Error()
		}
		return s, nil
	}

	s.syncOptions()
	return s, nil
}

func (s *SessionScreen) handleCommitDone(msg commitDoneMsg) (screen.Screen, tea.Cmd) {
	s.committing = false
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	return s, func() tea.Msg {
		return router.PushScreenMsg{Screen: summary.New(msg.Report, msg.Next)}
	}
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error and empty-bank states: any key goes back.
	if s.errMsg != "" || s.emptyBank {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.quitConfirm {
		switch key {
		case "y", "Y":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.quitConfirm = false
		}
		return s, nil
	}

	if s.eng == nil || s.committing {
		return s, nil
	}

	if key == "esc" {
		s.quitConfirm = true
		return s, nil
	}

	snap := s.eng.Snapshot()
	if snap.Answered {
		switch key {
		case "enter", "right", "l", "n":
			return s.advance()
		case "left", "h", "p":
			if err := s.eng.Retreat(); err == nil {
				s.syncOptions()
			}
			return s, nil
		}
		return s, nil
	}

	if key == "enter" {
		return s.submit()
	}

	// Going back is allowed before answering too.
	if key == "left" || key == "h" || key == "p" {
		if err := s.eng.Retreat(); err == nil {
			s.syncOptions()
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.options, cmd = s.options.Update(msg)
	return s, cmd
}

// submit records the highlighted option and reveals the outcome.
func (s *SessionScreen) submit() (screen.Screen, tea.Cmd) {
	selected := s.options.SelectedKey()
	if selected == "" {
		return s, nil
	}
	if _, err := s.eng.SubmitAnswer(selected); err != nil {
		return s, nil
	}
	s.options.Reveal(s.options.Selected)
	return s, nil
}

// advance moves to the next question, or commits when the session just
// completed.
func (s *SessionScreen) advance() (screen.Screen, tea.Cmd) {
	if err := s.eng.Advance(); err != nil {
		return s, nil
	}
	if s.eng.Snapshot().Phase == engine.PhaseCompleted {
		s.committing = true
		return s, tea.Batch(s.spinner.Tick, s.commitSession())
	}
	s.syncOptions()
	return s, nil
}

// syncOptions rebuilds the option list for the current question,
// replaying the recorded answer when revisiting.
func (s *SessionScreen) syncOptions() {
	snap := s.eng.Snapshot()
	s.options = components.NewOptionList(snap.Question)
	if snap.Answered {
		idx := snap.Question.OptionIndex(snap.Selection)
		s.options.Selected = idx
		s.options.Reveal(idx)
	}
}

// commitSession builds the report, persists the session, and publishes
// the committed state on the live hub.
func (s *SessionScreen) commitSession() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		r, err := report.Build(s.eng, s.opts.Policy, s.prior.TotalXP, time.Now().UTC())
		if err != nil {
			return commitDoneMsg{Err: err}
		}

		next, err := s.opts.Progress.Commit(ctx, s.prior, progress.CommitInput{
			AttemptID: s.attempt,
			Kind:      s.opts.Kind,
			Category:  s.opts.Category,
			Report:    r,
		})
		if err != nil {
			return commitDoneMsg{Err: err}
		}

		if s.opts.Hub != nil {
			s.opts.Hub.Publish(live.Event{Data: next.SnapshotData()})
		}

		return commitDoneMsg{Report: r, Next: next}
	}
}
