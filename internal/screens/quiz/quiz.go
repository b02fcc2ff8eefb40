package quiz

import (
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Max-Nicolai/MindPath/internal/assessment"
	"github.com/Max-Nicolai/MindPath/internal/router"
	"github.com/Max-Nicolai/MindPath/internal/screen"
	"github.com/Max-Nicolai/MindPath/internal/ui/components"
	"github.com/Max-Nicolai/MindPath/internal/ui/layout"
	"github.com/Max-Nicolai/MindPath/internal/ui/theme"
)

const notAnsweredHint = "Please select an option before proceeding."

// QuizScreen drives answer collection for the live session.
type QuizScreen struct {
	ctrl           *assessment.Controller
	loadingFactory func() screen.Screen
	homeFactory    func() screen.Screen
	scale          components.LikertScale
	errMsg         string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)

// New creates the collection screen. loadingFactory produces the
// scoring screen entered after the last answer; homeFactory produces
// the landing screen for an abandoned run.
func New(ctrl *assessment.Controller, loadingFactory, homeFactory func() screen.Screen) *QuizScreen {
	q := &QuizScreen{
		ctrl:           ctrl,
		loadingFactory: loadingFactory,
		homeFactory:    homeFactory,
	}
	q.loadQuestion()
	return q
}

// loadQuestion rebuilds the selector for the session's current
// question, restoring a previously recorded choice when revisiting.
func (q *QuizScreen) loadQuestion() {
	question, err := q.ctrl.CurrentQuestion()
	if err != nil {
		q.errMsg = err.Error()
		return
	}

	sess := q.ctrl.Session()
	previous := -1
	if v, ok := sess.Answers.Get(sess.CurrentKey()); ok {
		previous = v
	}

	q.scale = components.NewLikertScale(question.Prompt, question.Options, previous)
	q.scale.OnChoose = func(value int) tea.Cmd {
		return func() tea.Msg {
			return answerChosenMsg{Value: value}
		}
	}
}

func (q *QuizScreen) Init() tea.Cmd {
	return nil
}

func (q *QuizScreen) Title() string {
	return "Assessment"
}

func (q *QuizScreen) Status() string {
	sess := q.ctrl.Session()
	if sess == nil {
		return ""
	}
	return fmt.Sprintf("Question %d of %d", sess.Index+1, len(sess.Questions))
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "1-5", Description: "Answer"},
		{Key: "→", Description: "Next"},
		{Key: "←", Description: "Back"},
		{Key: "Esc", Description: "Abandon"},
	}
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case answerChosenMsg:
		if err := q.ctrl.SelectAnswer(msg.Value); err != nil {
			q.errMsg = err.Error()
			return q, nil
		}
		q.errMsg = ""
		return q, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "right", "n":
			return q.advance()
		case "left", "p":
			if q.ctrl.Retreat() {
				q.errMsg = ""
				q.loadQuestion()
			}
			return q, nil
		case "esc":
			if err := q.ctrl.Restart(); err != nil {
				q.errMsg = err.Error()
				return q, nil
			}
			next := q.homeFactory()
			return q, func() tea.Msg {
				return router.SwitchScreenMsg{Screen: next}
			}
		}

		var cmd tea.Cmd
		q.scale, cmd = q.scale.Update(msg)
		return q, cmd
	}

	return q, nil
}

func (q *QuizScreen) advance() (screen.Screen, tea.Cmd) {
	finished, err := q.ctrl.Advance()
	if err != nil {
		if errors.Is(err, assessment.ErrNotAnswered) {
			q.errMsg = notAnsweredHint
		} else {
			q.errMsg = err.Error()
		}
		return q, nil
	}

	q.errMsg = ""
	if finished {
		next := q.loadingFactory()
		return q, func() tea.Msg {
			return router.SwitchScreenMsg{Screen: next}
		}
	}

	q.loadQuestion()
	return q, nil
}

func (q *QuizScreen) View(width, height int) string {
	sess := q.ctrl.Session()
	if sess == nil {
		return ""
	}

	barWidth := width - 20
	if barWidth > 60 {
		barWidth = 60
	}
	progress := components.NewProgressBar(
		"",
		float64(sess.Index)/float64(len(sess.Questions)),
		true,
		barWidth,
	).View()

	category := theme.Hint.Render(sess.Questions[sess.Index].Category.DisplayName())

	card := theme.Card.Width(min(width-8, 72)).Render(q.scale.View())

	body := progress + "\n\n" + category + "\n\n" + card

	if q.errMsg != "" {
		body += "\n\n" + lipgloss.NewStyle().Foreground(theme.Error).Render(q.errMsg)
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(body)
}
