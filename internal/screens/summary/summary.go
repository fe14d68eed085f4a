package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/amahdy/quizdrill/internal/progress"
	"github.com/amahdy/quizdrill/internal/report"
	"github.com/amahdy/quizdrill/internal/router"
	"github.com/amahdy/quizdrill/internal/screen"
	"github.com/amahdy/quizdrill/internal/ui/components"
	"github.com/amahdy/quizdrill/internal/ui/layout"
	"github.com/amahdy/quizdrill/internal/ui/theme"
)

// SummaryScreen displays the end-of-test report.
type SummaryScreen struct {
	report report.Report
	after  progress.UserProgress
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen over a finished session's report and the
// aggregate after the commit.
func New(r report.Report, after progress.UserProgress) *SummaryScreen {
	return &SummaryScreen{report: r, after: after}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Test Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			// Pop both summary and session screens to get back to home.
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	r := s.report

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Test complete!"))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Score: %.0f%%        Correct: %d/%d        XP earned: +%d",
		r.ScorePercentage, r.CorrectAnswers, r.TotalQuestions, r.XPEarned)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Secondary).
		Render(r.Tier.DisplayMessage()))
	b.WriteString("\n\n")

	if r.LeveledUp {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Bold(true).
			Render(fmt.Sprintf("Level up! You reached level %d", r.NewLevel)))
		b.WriteString("\n\n")
	}

	// XP bar within the current level.
	lp := s.after.LevelProgress()
	bar := components.NewProgressBar(
		fmt.Sprintf("Level %d", s.after.Level()),
		lp.Percentage/100,
		false,
		min(width-8, 60),
	)
	barLine := bar.View() + lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  %d/%d XP", lp.Current, lp.Required))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, barLine))
	b.WriteString("\n")

	// Missed questions.
	if len(r.WrongAnswers) > 0 {
		divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
			strings.Repeat("─", min(width-8, 60)))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Missed questions")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")

		for _, miss := range r.WrongAnswers {
			line := fmt.Sprintf("  %s", miss.QuestionText)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
			b.WriteString("\n")

			detail := ""
			if miss.SelectedIndex >= 0 && miss.SelectedIndex < len(miss.OptionTexts) {
				detail = fmt.Sprintf("    you: %s", miss.OptionTexts[miss.SelectedIndex])
			}
			if miss.CorrectIndex >= 0 && miss.CorrectIndex < len(miss.OptionTexts) {
				detail += fmt.Sprintf("    answer: %s", miss.OptionTexts[miss.CorrectIndex])
			}
			if detail != "" {
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					lipgloss.NewStyle().Foreground(theme.TextDim).Render(detail)))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}
