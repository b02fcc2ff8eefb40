package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Max-Nicolai/MindPath/internal/riasec"
	"github.com/Max-Nicolai/MindPath/internal/ui/theme"
)

// LikertScale is a five-point preference selector for a single question.
type LikertScale struct {
	Prompt   string
	Options  []riasec.ResponseOption
	Cursor   int
	Chosen   int // option index, -1 until a choice is made
	OnChoose func(value int) tea.Cmd
}

// NewLikertScale creates a selector for the given question. If the
// question was already answered, pass the previous value to restore the
// highlighted choice; pass -1 otherwise.
func NewLikertScale(prompt string, options []riasec.ResponseOption, previousValue int) LikertScale {
	l := LikertScale{
		Prompt:  prompt,
		Options: options,
		Cursor:  0,
		Chosen:  -1,
	}
	for i, opt := range options {
		if opt.Value == previousValue {
			l.Cursor = i
			l.Chosen = i
			break
		}
	}
	return l
}

// Init returns nil.
func (l LikertScale) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (l LikertScale) Update(msg tea.Msg) (LikertScale, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if l.Cursor > 0 {
			l.Cursor--
		}
	case "down", "j":
		if l.Cursor < len(l.Options)-1 {
			l.Cursor++
		}
	case "1", "2", "3", "4", "5":
		idx := int(kmsg.String()[0] - '1')
		if idx < len(l.Options) {
			l.Cursor = idx
			l.Chosen = idx
			if l.OnChoose != nil {
				return l, l.OnChoose(l.Options[idx].Value)
			}
		}
	case "enter", " ":
		l.Chosen = l.Cursor
		if l.OnChoose != nil {
			return l, l.OnChoose(l.Options[l.Cursor].Value)
		}
	}

	return l, nil
}

// Value returns the option value of the current choice, or -1 if none.
func (l LikertScale) Value() int {
	if l.Chosen < 0 || l.Chosen >= len(l.Options) {
		return -1
	}
	return l.Options[l.Chosen].Value
}

// View renders the prompt and the five choices.
func (l LikertScale) View() string {
	s := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(l.Prompt) + "\n\n"

	for i, opt := range l.Options {
		prefix := "  "
		if i == l.Cursor {
			prefix = "▸ "
		}

		marker := "( )"
		if i == l.Chosen {
			marker = "(●)"
		}

		line := fmt.Sprintf("%s%s %d. %s", prefix, marker, i+1, opt.Label)

		switch {
		case i == l.Cursor:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		case i == l.Chosen:
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	return s
}
