package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/amahdy/quizdrill/internal/bank"
	"github.com/amahdy/quizdrill/internal/ui/theme"
)

// OptionList renders the answer options of a question and tracks the
// highlighted one. After Reveal it colors the correct and chosen
// options instead of the cursor.
type OptionList struct {
	Options      []bank.Option
	CorrectIndex int
	Selected     int
	Revealed     bool
	ChosenIndex  int
}

// NewOptionList creates an option list for the given question.
func NewOptionList(q bank.Question) OptionList {
	return OptionList{
		Options:      q.Options,
		CorrectIndex: q.OptionIndex(q.CorrectKey),
		Selected:     0,
		ChosenIndex:  -1,
	}
}

// Update handles keyboard navigation. Letter keys jump directly to an
// option; enter is left to the owning screen.
func (o OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	if o.Revealed {
		return o, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if o.Selected > 0 {
			o.Selected--
		}
	case "down", "j":
		if o.Selected < len(o.Options)-1 {
			o.Selected++
		}
	default:
		if parsed := bank.ParseKey(key); parsed != "" {
			for i, opt := range o.Options {
				if opt.Key == parsed {
					o.Selected = i
					break
				}
			}
		}
	}

	return o, nil
}

// Reveal locks the list and colors the outcome.
func (o *OptionList) Reveal(chosen int) {
	o.Revealed = true
	o.ChosenIndex = chosen
}

// SelectedKey returns the option key under the cursor.
func (o OptionList) SelectedKey() bank.OptionKey {
	if o.Selected < 0 || o.Selected >= len(o.Options) {
		return ""
	}
	return o.Options[o.Selected].Key
}

// View renders the option list.
func (o OptionList) View() string {
	var s string
	for i, opt := range o.Options {
		prefix := "  "
		if i == o.Selected && !o.Revealed {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, opt.Key, opt.Text)

		if o.Revealed {
			switch {
			case i == o.CorrectIndex:
				s += theme.Correct.Render(line) + "\n"
			case i == o.ChosenIndex:
				s += theme.Incorrect.Render(line) + "\n"
			default:
				s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
			}
		} else {
			if i == o.Selected {
				s += theme.Selected.Render(line) + "\n"
			} else {
				s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
			}
		}
	}
	return s
}
