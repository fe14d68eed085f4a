package stats

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/amahdy/quizdrill/internal/live"
	"github.com/amahdy/quizdrill/internal/progress"
	"github.com/amahdy/quizdrill/internal/retrytest"
	"github.com/amahdy/quizdrill/internal/router"
	"github.com/amahdy/quizdrill/internal/screen"
	"github.com/amahdy/quizdrill/internal/ui/components"
	"github.com/amahdy/quizdrill/internal/ui/layout"
	"github.com/amahdy/quizdrill/internal/ui/theme"
)

type statsLoadedMsg struct {
	Agg progress.UserProgress
	Err error
}

// StatsScreen displays the learner's level, XP, per-category counts,
// and retry-test unlock status.
type StatsScreen struct {
	service *progress.Service
	gates   retrytest.Gates

	agg    progress.UserProgress
	loaded bool
	errMsg string
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a StatsScreen.
func New(service *progress.Service, gates retrytest.Gates) *StatsScreen {
	return &StatsScreen{service: service, gates: gates}
}

func (s *StatsScreen) Init() tea.Cmd {
	return s.load()
}

func (s *StatsScreen) Title() string {
	return "Progress"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) load() tea.Cmd {
	return func() tea.Msg {
		agg, err := s.service.Load(context.Background())
		return statsLoadedMsg{Agg: agg, Err: err}
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.agg = msg.Agg
		}
		s.loaded = true
		return s, nil

	case live.Event:
		// Committed state arrived on the live channel; reload.
		return s, s.load()

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading progress...")
	}

	var b strings.Builder
	b.WriteString("\n")

	// Level and XP bar.
	lp := s.agg.LevelProgress()
	bar := components.NewProgressBar(
		fmt.Sprintf("Level %d", s.agg.Level()),
		lp.Percentage/100,
		false,
		min(width-8, 60),
	)
	barLine := bar.View() + lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  %d/%d XP", lp.Current, lp.Required))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, barLine))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Total XP: %d        Tests completed: %d        Misses in pool: %d",
		s.agg.TotalXP, s.agg.TestsCompleted, len(s.agg.WrongAnswerPool))
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	// Retry gate status.
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderRetryStatus()))
	b.WriteString("\n")

	// Per-category counts.
	if len(s.agg.PerCategoryTests) > 0 {
		divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
			strings.Repeat("─", min(width-8, 60)))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Categories")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")

		categories := make([]string, 0, len(s.agg.PerCategoryTests))
		for cat := range s.agg.PerCategoryTests {
			categories = append(categories, cat)
		}
		sort.Strings(categories)

		for _, cat := range categories {
			misses := len(retrytest.FilterCategory(s.agg.WrongAnswerPool, cat))
			status := "locked"
			style := lipgloss.NewStyle().Foreground(theme.TextDim)
			if s.gates.CanCreateCategoryRetry(s.agg.CategoryTests(cat), retrytest.FilterCategory(s.agg.WrongAnswerPool, cat)) == nil {
				status = "retry unlocked"
				style = lipgloss.NewStyle().Foreground(theme.Success)
			}
			line := fmt.Sprintf("  %-24s %4d tests   %3d misses   %s",
				cat, s.agg.CategoryTests(cat), misses, status)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// renderRetryStatus describes the global retry gate, including exact
// deficits while it is still locked.
func (s *StatsScreen) renderRetryStatus() string {
	err := s.gates.CanCreateGlobalRetry(s.agg.TestsCompleted, s.agg.WrongAnswerPool)
	if err == nil {
		return lipgloss.NewStyle().
			Foreground(theme.Success).
			Bold(true).
			Render("Retry test unlocked")
	}

	var notEligible *retrytest.NotEligibleError
	if errors.As(err, &notEligible) {
		var parts []string
		if notEligible.TestsNeeded > 0 {
			parts = append(parts, fmt.Sprintf("%d more tests", notEligible.TestsNeeded))
		}
		if notEligible.WrongAnswersNeeded > 0 {
			parts = append(parts, fmt.Sprintf("%d more wrong answers", notEligible.WrongAnswersNeeded))
		}
		return lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("Retry test locked: " + strings.Join(parts, " and ") + " needed")
	}
	return lipgloss.NewStyle().Foreground(theme.TextDim).Render("Retry test locked")
}
