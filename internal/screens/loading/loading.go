package loading

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Max-Nicolai/MindPath/internal/assessment"
	"github.com/Max-Nicolai/MindPath/internal/router"
	"github.com/Max-Nicolai/MindPath/internal/screen"
	"github.com/Max-Nicolai/MindPath/internal/ui/theme"
)

const spinnerInterval = 150 * time.Millisecond

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

type spinnerTickMsg time.Time

// scoringDoneMsg is sent once the mode-dependent delay has elapsed.
type scoringDoneMsg struct{}

// LoadingScreen paces the transition between the last answer and the
// results page. The wait is presentational; the score itself is
// computed instantly when the delay elapses.
type LoadingScreen struct {
	ctrl           *assessment.Controller
	resultsFactory func() screen.Screen
	frame          int
	errMsg         string
}

var _ screen.Screen = (*LoadingScreen)(nil)

// New creates the scoring screen.
func New(ctrl *assessment.Controller, resultsFactory func() screen.Screen) *LoadingScreen {
	return &LoadingScreen{
		ctrl:           ctrl,
		resultsFactory: resultsFactory,
	}
}

func (l *LoadingScreen) Init() tea.Cmd {
	return tea.Batch(
		tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
			return spinnerTickMsg(t)
		}),
		tea.Tick(l.ctrl.ScoringDelay(), func(time.Time) tea.Msg {
			return scoringDoneMsg{}
		}),
	)
}

func (l *LoadingScreen) Title() string {
	return "Scoring"
}

func (l *LoadingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case spinnerTickMsg:
		l.frame++
		return l, tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
			return spinnerTickMsg(t)
		})

	case scoringDoneMsg:
		if _, err := l.ctrl.CompleteScoring(); err != nil {
			l.errMsg = err.Error()
			return l, nil
		}
		next := l.resultsFactory()
		return l, func() tea.Msg {
			return router.SwitchScreenMsg{Screen: next}
		}
	}

	return l, nil
}

func (l *LoadingScreen) View(width, height int) string {
	if l.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.Error).
			Render(l.errMsg)
	}

	spinner := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(spinnerFrames[l.frame%len(spinnerFrames)])

	title := theme.Title.Render("Analyzing Your Profile...")
	sub := theme.Subtitle.Render("Finding your perfect path")

	body := spinner + "\n\n" + title + "\n" + sub

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(body)
}
