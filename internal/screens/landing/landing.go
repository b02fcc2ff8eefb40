package landing

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Max-Nicolai/MindPath/internal/assessment"
	"github.com/Max-Nicolai/MindPath/internal/riasec"
	"github.com/Max-Nicolai/MindPath/internal/router"
	"github.com/Max-Nicolai/MindPath/internal/screen"
	"github.com/Max-Nicolai/MindPath/internal/ui/components"
	"github.com/Max-Nicolai/MindPath/internal/ui/layout"
	"github.com/Max-Nicolai/MindPath/internal/ui/theme"
)

// LandingScreen is the intake page: a banner plus the mode menu.
type LandingScreen struct {
	ctrl        *assessment.Controller
	quizFactory func() screen.Screen
	menu        components.Menu
	errMsg      string
}

var _ screen.Screen = (*LandingScreen)(nil)
var _ screen.KeyHintProvider = (*LandingScreen)(nil)

// New creates the landing screen. quizFactory produces the collection
// screen entered after a successful start.
func New(ctrl *assessment.Controller, quizFactory func() screen.Screen) *LandingScreen {
	l := &LandingScreen{
		ctrl:        ctrl,
		quizFactory: quizFactory,
	}
	l.menu = components.NewMenu([]components.MenuItem{
		{
			Label:       "Start Assessment",
			Description: "42 questions, about 10 minutes",
			Action:      func() tea.Cmd { return l.start(riasec.ModeStandard) },
		},
		{
			Label:       "Quick Assessment",
			Description: "6 questions, one per interest area",
			Action:      func() tea.Cmd { return l.start(riasec.ModeReduced) },
		},
		{
			Label:  "Exit",
			Action: func() tea.Cmd { return tea.Quit },
		},
	})
	return l
}

func (l *LandingScreen) start(mode riasec.Mode) tea.Cmd {
	if _, err := l.ctrl.Start(mode); err != nil {
		l.errMsg = err.Error()
		return nil
	}
	l.errMsg = ""
	next := l.quizFactory()
	return func() tea.Msg {
		return router.SwitchScreenMsg{Screen: next}
	}
}

func (l *LandingScreen) Init() tea.Cmd {
	return nil
}

func (l *LandingScreen) Title() string {
	return "Welcome"
}

func (l *LandingScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (l *LandingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	l.menu, cmd = l.menu.Update(msg)
	return l, cmd
}

func (l *LandingScreen) View(width, height int) string {
	banner := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(bannerArt)

	sub := theme.Subtitle.Render(tagline)

	body := banner + "\n\n" + sub + "\n\n\n" + l.menu.View()

	if l.errMsg != "" {
		body += "\n" + lipgloss.NewStyle().Foreground(theme.Error).Render("  "+l.errMsg)
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(body)
}
