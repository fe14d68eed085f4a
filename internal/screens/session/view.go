package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/amahdy/quizdrill/internal/ui/theme"
)

func (s *SessionScreen) View(width, height int) string {
	switch {
	case s.errMsg != "":
		return renderCentered(width, theme.Incorrect, "\n\nError: "+s.errMsg)
	case s.emptyBank:
		return renderCentered(width, theme.Hint,
			"\n\nNo questions to play.\n\nAdd bank files or generate some with `quizdrill bank generate`.")
	case s.eng == nil:
		return renderCentered(width, theme.Subtitle,
			fmt.Sprintf("\n\n%s Loading questions...", s.spinner.View()))
	case s.committing:
		return renderCentered(width, theme.Subtitle,
			fmt.Sprintf("\n\n%s Saving results...", s.spinner.View()))
	case s.quitConfirm:
		return renderQuitConfirm(width)
	}
	return s.renderQuestion(width)
}

func (s *SessionScreen) renderQuestion(width int) string {
	snap := s.eng.Snapshot()
	q := snap.Question

	var b strings.Builder

	// Status line: position left, score right.
	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Question %d/%d", snap.QuestionIndex+1, snap.TotalQuestions))

	meta := q.Category
	if q.Difficulty != "" {
		meta += "  ·  " + string(q.Difficulty)
	}
	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s    %s %d",
			meta,
			lipgloss.NewStyle().Foreground(theme.Success).Render("✓"),
			snap.CorrectCount,
		))

	line := left
	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if pad > 0 {
		line += strings.Repeat(" ", pad) + right
	}
	b.WriteString(line)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	// Prompt.
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Prompt))
	b.WriteString("\n\n")

	// Options.
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.options.View()))
	b.WriteString("\n")

	// Feedback once answered.
	if snap.Answered {
		rec, _ := s.eng.Record(snap.QuestionIndex)
		if rec.Correct {
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.Success).
				Bold(true).
				Render("Correct!"))
		} else {
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.Error).
				Bold(true).
				Render("Not quite"))
			b.WriteString("\n")
			correctIdx := q.OptionIndex(q.CorrectKey)
			if correctIdx >= 0 {
				b.WriteString(lipgloss.NewStyle().
					Width(width).
					Align(lipgloss.Center).
					Foreground(theme.TextDim).
					Render(fmt.Sprintf("Answer: %s) %s", q.CorrectKey, q.Options[correctIdx].Text)))
			}
		}
	}

	return b.String()
}

func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Bold(true).
		Render("Abandon this test?"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Nothing is saved for an unfinished test. (y/n)"))
	return b.String()
}

func renderCentered(width int, style lipgloss.Style, text string) string {
	return style.Width(width).Align(lipgloss.Center).Render(text)
}
