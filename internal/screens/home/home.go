package home

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/amahdy/quizdrill/internal/bank"
	"github.com/amahdy/quizdrill/internal/live"
	"github.com/amahdy/quizdrill/internal/progress"
	"github.com/amahdy/quizdrill/internal/progression"
	"github.com/amahdy/quizdrill/internal/retrytest"
	"github.com/amahdy/quizdrill/internal/router"
	"github.com/amahdy/quizdrill/internal/screen"
	"github.com/amahdy/quizdrill/internal/screens/history"
	sessionscreen "github.com/amahdy/quizdrill/internal/screens/session"
	"github.com/amahdy/quizdrill/internal/screens/stats"
	"github.com/amahdy/quizdrill/internal/store"
	"github.com/amahdy/quizdrill/internal/ui/components"
	"github.com/amahdy/quizdrill/internal/ui/theme"
)

// Options are the dependencies the home screen hands to the screens it
// launches.
type Options struct {
	Progress  *progress.Service
	EventRepo store.EventRepo
	Hub       *live.Hub
	Policy    progression.RewardPolicy
	Gates     retrytest.Gates

	// LoadBank produces the full question list for a standard test.
	LoadBank func(ctx context.Context) ([]bank.Question, error)

	// Category scopes sessions launched from this menu to one bank
	// category: standard tests count toward it and the retry entry
	// uses the category gate over the category sub-pool. Empty means
	// mixed tests and the global retry gate.
	Category string
}

type progressLoadedMsg struct {
	Agg progress.UserProgress
	Err error
}

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	opts   Options
	menu   components.Menu
	agg    progress.UserProgress
	loaded bool
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.Refresher = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(opts Options) *HomeScreen {
	h := &HomeScreen{opts: opts}
	h.menu = h.buildMenu()
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.loadProgress()
}

// Refresh reloads the aggregate so the retry gate and stats stay
// current after a session commits.
func (h *HomeScreen) Refresh() tea.Cmd {
	return h.loadProgress()
}

func (h *HomeScreen) loadProgress() tea.Cmd {
	return func() tea.Msg {
		agg, err := h.opts.Progress.Load(context.Background())
		return progressLoadedMsg{Agg: agg, Err: err}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case progressLoadedMsg:
		if msg.Err == nil {
			h.agg = msg.Agg
			h.loaded = true
			selected := h.menu.Selected
			h.menu = h.buildMenu()
			h.menu.Selected = selected
		}
		return h, nil

	case live.Event:
		return h, h.loadProgress()
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(theme.Title.Width(width).Render("QuizDrill"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("drill questions, earn XP, retry your misses"))
	b.WriteString("\n\n")

	if h.loaded {
		statsLine := fmt.Sprintf("Level %d    %d XP    %d tests completed",
			h.agg.Level(), h.agg.TotalXP, h.agg.TestsCompleted)
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(statsLine))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))
	return b.String()
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) buildMenu() components.Menu {
	items := []components.MenuItem{
		{Label: "START TEST", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: sessionscreen.New(sessionscreen.Options{
					Kind:     store.TestKindStandard,
					Category: h.opts.Category,
					Load:     h.opts.LoadBank,
					Progress: h.opts.Progress,
					Hub:      h.opts.Hub,
					Policy:   h.opts.Policy,
				})}
			}
		}},
		h.retryItem(),
		{Label: "PROGRESS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(h.opts.Progress, h.opts.Gates)}
			}
		}},
		{Label: "HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(h.opts.EventRepo)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	return components.NewMenu(items)
}

// retryItem builds the retry menu entry, disabled with the exact
// deficit while the gates are not cleared.
func (h *HomeScreen) retryItem() components.MenuItem {
	err := retryGate(h.opts, h.agg)
	if err != nil {
		hint := "(locked)"
		var notEligible *retrytest.NotEligibleError
		if errors.As(err, &notEligible) {
			var parts []string
			if notEligible.TestsNeeded > 0 {
				parts = append(parts, fmt.Sprintf("%d tests", notEligible.TestsNeeded))
			}
			if notEligible.WrongAnswersNeeded > 0 {
				parts = append(parts, fmt.Sprintf("%d misses", notEligible.WrongAnswersNeeded))
			}
			hint = "(locked: " + strings.Join(parts, ", ") + " to go)"
		}
		return components.MenuItem{Label: "RETRY TEST", Disabled: true, Hint: hint}
	}

	return components.MenuItem{Label: "RETRY TEST", Action: func() tea.Cmd {
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: NewRetrySession(h.opts)}
		}
	}}
}

// NewRetrySession builds the session screen a retry test runs in.
func NewRetrySession(opts Options) screen.Screen {
	return sessionscreen.New(sessionscreen.Options{
		Kind:     store.TestKindRetry,
		Category: opts.Category,
		Load:     retryLoader(opts),
		Progress: opts.Progress,
		Hub:      opts.Hub,
		Policy:   opts.Policy,
	})
}

// retryGate checks the gate that applies to this menu's scope: the
// category gate over the category sub-pool when a category is set,
// the global gate otherwise.
func retryGate(opts Options, agg progress.UserProgress) error {
	if opts.Category != "" {
		sub := retrytest.FilterCategory(agg.WrongAnswerPool, opts.Category)
		return opts.Gates.CanCreateCategoryRetry(agg.CategoryTests(opts.Category), sub)
	}
	return opts.Gates.CanCreateGlobalRetry(agg.TestsCompleted, agg.WrongAnswerPool)
}

// retryLoader re-checks the gate against fresh state and builds the
// retry session from the in-scope pool, most recent miss first.
func retryLoader(opts Options) func(ctx context.Context) ([]bank.Question, error) {
	return func(ctx context.Context) ([]bank.Question, error) {
		agg, err := opts.Progress.Load(ctx)
		if err != nil {
			return nil, err
		}
		if err := retryGate(opts, agg); err != nil {
			return nil, err
		}
		pool := agg.WrongAnswerPool
		if opts.Category != "" {
			pool = retrytest.FilterCategory(pool, opts.Category)
		}
		picked := retrytest.BuildRetrySession(pool, opts.Gates.MaxRetrySize)
		return retrytest.Questions(picked), nil
	}
}
