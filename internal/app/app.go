package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/amahdy/quizdrill/internal/bank"
	"github.com/amahdy/quizdrill/internal/live"
	"github.com/amahdy/quizdrill/internal/progress"
	"github.com/amahdy/quizdrill/internal/progression"
	"github.com/amahdy/quizdrill/internal/retrytest"
	"github.com/amahdy/quizdrill/internal/router"
	"github.com/amahdy/quizdrill/internal/screen"
	"github.com/amahdy/quizdrill/internal/screens/home"
	"github.com/amahdy/quizdrill/internal/store"
	"github.com/amahdy/quizdrill/internal/ui/layout"
)

// Options carry the wired services into the TUI.
type Options struct {
	Progress  *progress.Service
	EventRepo store.EventRepo
	Hub       *live.Hub
	Policy    progression.RewardPolicy
	Gates     retrytest.Gates

	// LoadBank produces the question list for a standard test.
	LoadBank func(ctx context.Context) ([]bank.Question, error)

	// Category scopes all launched sessions to one bank category.
	Category string

	// StartRetry opens straight into a retry session.
	StartRetry bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts     Options
	homeOpts home.Options
	router   *router.Router
	width    int
	height   int

	// Header state, kept current by live events.
	level int
	xp    int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	homeOpts := home.Options{
		Progress:  opts.Progress,
		EventRepo: opts.EventRepo,
		Hub:       opts.Hub,
		Policy:    opts.Policy,
		Gates:     opts.Gates,
		LoadBank:  opts.LoadBank,
		Category:  opts.Category,
	}
	return AppModel{
		opts:     opts,
		homeOpts: homeOpts,
		router:   router.New(home.New(homeOpts)),
		level:    1,
	}
}

func (m AppModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.router.Active().Init(), m.loadHeader()}
	if m.opts.StartRetry {
		homeOpts := m.homeOpts
		cmds = append(cmds, func() tea.Msg {
			return router.PushScreenMsg{Screen: home.NewRetrySession(homeOpts)}
		})
	}
	return tea.Batch(cmds...)
}

// loadHeader seeds the header from the latest snapshot, expressed as a
// live event so the update path is the same as for later commits.
func (m AppModel) loadHeader() tea.Cmd {
	return func() tea.Msg {
		agg, err := m.opts.Progress.Load(context.Background())
		if err != nil {
			return nil
		}
		return live.Event{FromSnapshot: true, Data: agg.SnapshotData()}
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case live.Event:
		m.xp = msg.Data.TotalXP
		m.level = progression.Level(msg.Data.TotalXP)
		// Fall through to the router so the active screen refreshes too.

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.level, m.xp, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok && provider.KeyHints() != nil {
		footerHints = provider.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program. Live hub events are forwarded into
// the program so the header and open screens track commits.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))

	if opts.Hub != nil {
		cancel := opts.Hub.Subscribe(func(ev live.Event) {
			p.Send(ev)
		})
		defer cancel()
	}

	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
