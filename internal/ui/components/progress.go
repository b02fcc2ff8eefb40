package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/Max-Nicolai/MindPath/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	percentWidth := 0
	if p.ShowPercent {
		percentWidth = 6 // " 100%"
	}

	barWidth := p.Width - labelWidth - percentWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Percent)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	empty := barWidth - filled

	filledStr := lipgloss.NewStyle().
		Background(theme.Secondary).
		Render(strings.Repeat(" ", filled))

	emptyStr := lipgloss.NewStyle().
		Background(theme.Border).
		Render(strings.Repeat(" ", empty))

	result += filledStr + emptyStr

	if p.ShowPercent {
		result += lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d%%", int(p.Percent*100)))
	}

	return result
}

// ScoreBar renders a labelled score bar for the category breakdown. The
// bar length is proportional to score/maxScore; the numeric score is
// printed after the bar.
type ScoreBar struct {
	Label     string
	Score     int
	MaxScore  int
	Width     int
	Highlight bool
}

// View renders the score bar.
func (s ScoreBar) View() string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.Text)
	barColor := theme.Border
	if s.Highlight {
		labelStyle = labelStyle.Foreground(theme.Primary).Bold(true)
		barColor = theme.Primary
	}

	label := labelStyle.Render(fmt.Sprintf("%-22s", s.Label))

	barWidth := s.Width - lipgloss.Width(label) - 6
	if barWidth < 4 {
		barWidth = 4
	}

	filled := 0
	if s.MaxScore > 0 {
		filled = barWidth * s.Score / s.MaxScore
	}
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}

	bar := lipgloss.NewStyle().Foreground(barColor).Render(
		strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled),
	)

	score := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  %3d", s.Score))

	return label + bar + score
}
