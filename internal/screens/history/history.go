package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/amahdy/quizdrill/internal/router"
	"github.com/amahdy/quizdrill/internal/screen"
	"github.com/amahdy/quizdrill/internal/store"
	"github.com/amahdy/quizdrill/internal/ui/layout"
	"github.com/amahdy/quizdrill/internal/ui/theme"
)

type historyLoadedMsg struct {
	Events []store.TestEventRecord
	Err    error
}

// HistoryScreen displays past completed tests, newest first.
type HistoryScreen struct {
	eventRepo store.EventRepo
	events    []store.TestEventRecord
	selected  int
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{eventRepo: eventRepo}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		events, err := s.eventRepo.QueryTestEvents(context.Background(), store.QueryOpts{Limit: 100})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}

		// Only end events carry results; start events are noise here.
		completed := events[:0:0]
		for _, ev := range events {
			if ev.Action == store.TestActionEnd {
				completed = append(completed, ev)
			}
		}
		return historyLoadedMsg{Events: completed}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.events = msg.Events
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.events)-1 {
				s.selected++
			}
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.events) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No tests yet. Take your first one!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, ev := range s.events {
		dateStr := ev.Timestamp.Format("Jan 02, 2006 15:04")

		kindStr := ev.Kind
		if ev.Category != "" {
			kindStr += " (" + ev.Category + ")"
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %-20s  %d/%d correct  %.0f%%  +%d XP",
			prefix, dateStr, kindStr, ev.CorrectAnswers, ev.TotalQuestions,
			ev.ScorePct, ev.XPEarned)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}
