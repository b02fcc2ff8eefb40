package feedbackpage

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Max-Nicolai/MindPath/internal/assessment"
	"github.com/Max-Nicolai/MindPath/internal/feedback"
	"github.com/Max-Nicolai/MindPath/internal/router"
	"github.com/Max-Nicolai/MindPath/internal/screen"
	"github.com/Max-Nicolai/MindPath/internal/ui/components"
	"github.com/Max-Nicolai/MindPath/internal/ui/layout"
	"github.com/Max-Nicolai/MindPath/internal/ui/theme"
)

// submitDoneMsg is sent when the sink write completes.
type submitDoneMsg struct {
	Err error
}

// FeedbackScreen collects a 1-5 rating and optional comments after the
// results page. Once submitted it shows a thank-you view; the only way
// onward is back to the landing page.
type FeedbackScreen struct {
	ctrl        *assessment.Controller
	sink        feedback.Sink
	homeFactory func() screen.Screen

	rating    components.RatingSelector
	comments  components.CommentBox
	submitted bool
	errMsg    string
}

var _ screen.Screen = (*FeedbackScreen)(nil)
var _ screen.KeyHintProvider = (*FeedbackScreen)(nil)

// New creates the feedback screen.
func New(ctrl *assessment.Controller, sink feedback.Sink, homeFactory func() screen.Screen) *FeedbackScreen {
	if sink == nil {
		sink = feedback.Discard{}
	}
	return &FeedbackScreen{
		ctrl:        ctrl,
		sink:        sink,
		homeFactory: homeFactory,
		rating:      components.NewRatingSelector(),
		comments:    components.NewCommentBox("Tell us what you think...", 56, 4),
	}
}

func (f *FeedbackScreen) Init() tea.Cmd {
	return nil
}

func (f *FeedbackScreen) Title() string {
	return "Feedback"
}

func (f *FeedbackScreen) KeyHints() []layout.KeyHint {
	if f.submitted {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Back to home"},
		}
	}
	return []layout.KeyHint{
		{Key: "1-5", Description: "Rate"},
		{Key: "Tab", Description: "Comments"},
		{Key: "Ctrl+S", Description: "Submit"},
		{Key: "Esc", Description: "Skip"},
	}
}

func (f *FeedbackScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case submitDoneMsg:
		if msg.Err != nil {
			f.errMsg = "Could not save your feedback."
		}
		return f, nil

	case tea.KeyMsg:
		if f.submitted {
			switch msg.String() {
			case "enter", "esc":
				return f, f.goHome()
			}
			return f, nil
		}

		switch msg.String() {
		case "esc":
			// Skipping is always allowed before a submission.
			return f, f.goHome()
		case "tab":
			if f.comments.Focused() {
				f.comments.Blur()
				f.rating.Focused = true
				return f, nil
			}
			f.rating.Focused = false
			return f, f.comments.Focus()
		case "ctrl+s":
			return f, f.submit()
		case "enter":
			if !f.comments.Focused() {
				return f, f.submit()
			}
		}
	}

	var cmd tea.Cmd
	if f.comments.Focused() {
		f.comments, cmd = f.comments.Update(msg)
	} else {
		f.rating, cmd = f.rating.Update(msg)
	}
	return f, cmd
}

// submit records the rating with the flow controller, then writes the
// entry to the sink. An unset rating is refused in place.
func (f *FeedbackScreen) submit() tea.Cmd {
	if err := f.ctrl.SubmitFeedback(f.rating.Rating); err != nil {
		f.errMsg = "Please pick a rating from 1 to 5."
		return nil
	}
	f.submitted = true
	f.errMsg = ""

	sess := f.ctrl.Session()
	entry := feedback.Entry{
		SessionID: sess.ID,
		Rating:    f.rating.Rating,
		Comments:  f.comments.Value(),
	}
	if sess.Result != nil {
		entry.Code = sess.Result.Code
	}

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return submitDoneMsg{Err: f.sink.Submit(ctx, entry)}
	}
}

func (f *FeedbackScreen) goHome() tea.Cmd {
	if err := f.ctrl.Restart(); err != nil {
		f.errMsg = err.Error()
		return nil
	}
	next := f.homeFactory()
	return func() tea.Msg {
		return router.SwitchScreenMsg{Screen: next}
	}
}

func (f *FeedbackScreen) View(width, height int) string {
	var body string

	if f.submitted {
		title := theme.Title.Render("Thank You!")
		sub := theme.Subtitle.Render("Your feedback helps us improve MindPath.")
		body = title + "\n\n" + sub
	} else {
		title := theme.Title.Render("We'd Love Your Feedback")
		sub := theme.Subtitle.Render("How helpful was your assessment?")

		ratingLabel := theme.Body.Render("Rating")
		commentLabel := theme.Body.Render("Comments (optional)")

		body = title + "\n" + sub + "\n\n" +
			ratingLabel + "\n" + f.rating.View() + "\n\n" +
			commentLabel + "\n" + f.comments.View()
	}

	if f.errMsg != "" {
		body += "\n\n" + lipgloss.NewStyle().Foreground(theme.Error).Render(f.errMsg)
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(body)
}
