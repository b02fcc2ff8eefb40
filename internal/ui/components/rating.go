package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Max-Nicolai/MindPath/internal/feedback"
	"github.com/Max-Nicolai/MindPath/internal/ui/theme"
)

// RatingSelector is a one-to-five star picker for feedback.
type RatingSelector struct {
	Rating  int // 0 until the user picks
	Focused bool
}

// NewRatingSelector creates an unset rating selector.
func NewRatingSelector() RatingSelector {
	return RatingSelector{Focused: true}
}

// Update handles keyboard input. Left/right adjust the rating, digit
// keys set it directly.
func (r RatingSelector) Update(msg tea.Msg) (RatingSelector, tea.Cmd) {
	if !r.Focused {
		return r, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}

	switch kmsg.String() {
	case "left", "h":
		if r.Rating > 1 {
			r.Rating--
		} else if r.Rating == 0 {
			r.Rating = 1
		}
	case "right", "l":
		if r.Rating < 5 {
			r.Rating++
		}
	case "1", "2", "3", "4", "5":
		r.Rating = int(kmsg.String()[0] - '0')
	}

	return r, nil
}

// View renders the stars and the label for the current rating.
func (r RatingSelector) View() string {
	var b strings.Builder
	for i := 1; i <= 5; i++ {
		star := "☆"
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if i <= r.Rating {
			star = "★"
			style = lipgloss.NewStyle().Foreground(theme.Accent)
		}
		b.WriteString(style.Render(star) + " ")
	}

	label := "Select a rating"
	if r.Rating >= 1 && r.Rating <= 5 {
		label = feedback.RatingLabel(r.Rating)
	}
	b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.Text).Render(label))

	return b.String()
}
