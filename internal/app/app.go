package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Max-Nicolai/MindPath/internal/assessment"
	"github.com/Max-Nicolai/MindPath/internal/feedback"
	"github.com/Max-Nicolai/MindPath/internal/jobs"
	"github.com/Max-Nicolai/MindPath/internal/router"
	"github.com/Max-Nicolai/MindPath/internal/screen"
	"github.com/Max-Nicolai/MindPath/internal/screens/feedbackpage"
	"github.com/Max-Nicolai/MindPath/internal/screens/landing"
	"github.com/Max-Nicolai/MindPath/internal/screens/loading"
	"github.com/Max-Nicolai/MindPath/internal/screens/quiz"
	"github.com/Max-Nicolai/MindPath/internal/screens/results"
	"github.com/Max-Nicolai/MindPath/internal/store"
	"github.com/Max-Nicolai/MindPath/internal/ui/layout"
)

// Options carries the dependencies injected into the TUI.
type Options struct {
	Controller  *assessment.Controller
	Jobs        jobs.Client
	Assessments store.AssessmentRepo
	Feedback    feedback.Sink

	// JobsLimit caps how many postings the results page requests;
	// zero means the screen's default.
	JobsLimit int
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel wires the page-flow screens together. Each screen builds
// its successor through a factory, so the linear flow reads top to
// bottom here.
func newAppModel(opts Options) AppModel {
	ctrl := opts.Controller
	if ctrl == nil {
		ctrl = assessment.NewController(assessment.DefaultConfig())
	}

	var home func() screen.Screen

	feedbackScreen := func() screen.Screen {
		return feedbackpage.New(ctrl, opts.Feedback, home)
	}
	resultsScreen := func() screen.Screen {
		return results.New(ctrl, opts.Jobs, opts.Assessments, opts.JobsLimit, feedbackScreen, home)
	}
	loadingScreen := func() screen.Screen {
		return loading.New(ctrl, resultsScreen)
	}
	quizScreen := func() screen.Screen {
		return quiz.New(ctrl, loadingScreen, home)
	}
	home = func() screen.Screen {
		return landing.New(ctrl, quizScreen)
	}

	return AppModel{
		router: router.New(home()),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()

	title := ""
	status := ""
	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
		if kp, ok := active.(screen.KeyHintProvider); ok {
			footerHints = kp.KeyHints()
		}
	}

	header := layout.RenderHeader(title, status, m.width)
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
