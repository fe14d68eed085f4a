package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/amahdy/quizdrill/internal/ui/theme"
)

// ProgressBar is a horizontal bar filled to Percent of Width, with an
// optional label prefix and percentage suffix.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
}

func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

func (p ProgressBar) View() string {
	var b strings.Builder

	if p.Label != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label))
		b.WriteString("  ")
	}

	suffixWidth := 0
	if p.ShowPercent {
		suffixWidth = 6
	}
	barWidth := max(p.Width-lipgloss.Width(b.String())-suffixWidth, 4)

	filled := int(float64(barWidth) * p.Percent)
	filled = min(max(filled, 0), barWidth)

	b.WriteString(theme.ProgressFilled.Render(strings.Repeat(" ", filled)))
	b.WriteString(theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled)))

	if p.ShowPercent {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d%%", int(p.Percent*100))))
	}

	return b.String()
}
