package results

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Max-Nicolai/MindPath/internal/assessment"
	"github.com/Max-Nicolai/MindPath/internal/jobs"
	"github.com/Max-Nicolai/MindPath/internal/riasec"
	"github.com/Max-Nicolai/MindPath/internal/router"
	"github.com/Max-Nicolai/MindPath/internal/screen"
	"github.com/Max-Nicolai/MindPath/internal/store"
	"github.com/Max-Nicolai/MindPath/internal/ui/components"
	"github.com/Max-Nicolai/MindPath/internal/ui/layout"
	"github.com/Max-Nicolai/MindPath/internal/ui/theme"
)

const (
	defaultJobsLimit = 4
	jobsTimeout      = 10 * time.Second
)

// ResultsScreen presents the summary code, the category breakdown, and
// matching job postings.
type ResultsScreen struct {
	ctrl            *assessment.Controller
	jobsClient      jobs.Client
	repo            store.AssessmentRepo
	jobsLimit       int
	feedbackFactory func() screen.Screen
	homeFactory     func() screen.Screen

	postings   []jobs.Posting
	jobsLoaded bool
	errMsg     string
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates the results screen. jobsClient and repo may be nil; the
// jobs section then shows its empty state and nothing is persisted.
// jobsLimit caps the posting fetch; zero or negative means the default.
func New(ctrl *assessment.Controller, jobsClient jobs.Client, repo store.AssessmentRepo, jobsLimit int, feedbackFactory, homeFactory func() screen.Screen) *ResultsScreen {
	if jobsLimit <= 0 {
		jobsLimit = defaultJobsLimit
	}
	return &ResultsScreen{
		ctrl:            ctrl,
		jobsClient:      jobsClient,
		repo:            repo,
		jobsLimit:       jobsLimit,
		feedbackFactory: feedbackFactory,
		homeFactory:     homeFactory,
	}
}

func (r *ResultsScreen) Init() tea.Cmd {
	return tea.Batch(r.fetchJobs(), r.persist())
}

// fetchJobs looks up postings for the session's code. Lookup failures
// degrade to the empty state rather than interrupting the results page.
func (r *ResultsScreen) fetchJobs() tea.Cmd {
	sess := r.ctrl.Session()
	if r.jobsClient == nil || sess == nil || sess.Result == nil {
		return func() tea.Msg { return jobsLoadedMsg{} }
	}
	code := sess.Result.Code

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), jobsTimeout)
		defer cancel()

		postings, err := r.jobsClient.Search(ctx, code, r.jobsLimit)
		if err != nil {
			return jobsLoadedMsg{}
		}
		return jobsLoadedMsg{Postings: postings}
	}
}

// persist appends the completed assessment to the local history.
func (r *ResultsScreen) persist() tea.Cmd {
	sess := r.ctrl.Session()
	if r.repo == nil || sess == nil || sess.Result == nil {
		return nil
	}

	rec := store.AssessmentRecord{
		SessionID: sess.ID,
		Mode:      sess.Mode,
		Result:    *sess.Result,
		Questions: len(sess.Questions),
		Answered:  sess.Answers.Len(),
		Duration:  sess.ScoredAt.Sub(sess.StartedAt),
		CreatedAt: time.Now(),
	}

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return persistDoneMsg{Err: r.repo.Append(ctx, rec)}
	}
}

func (r *ResultsScreen) Title() string {
	return "Your Results"
}

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "F", Description: "Share feedback"},
		{Key: "R", Description: "Retake"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case jobsLoadedMsg:
		r.postings = msg.Postings
		r.jobsLoaded = true
		return r, nil

	case persistDoneMsg:
		if msg.Err != nil {
			r.errMsg = "Could not save this assessment to history."
		}
		return r, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "f", "F":
			if err := r.ctrl.ViewFeedback(); err != nil {
				return r, nil
			}
			next := r.feedbackFactory()
			return r, func() tea.Msg {
				return router.SwitchScreenMsg{Screen: next}
			}
		case "r", "R":
			if err := r.ctrl.Restart(); err != nil {
				return r, nil
			}
			next := r.homeFactory()
			return r, func() tea.Msg {
				return router.SwitchScreenMsg{Screen: next}
			}
		}
	}

	return r, nil
}

func (r *ResultsScreen) View(width, height int) string {
	sess := r.ctrl.Session()
	if sess == nil || sess.Result == nil {
		return ""
	}
	result := sess.Result

	var b strings.Builder

	code := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(result.Code)
	b.WriteString(theme.Body.Render("Your Holland Code: ") + code + "\n\n")

	b.WriteString(r.renderTopThree(result) + "\n\n")
	b.WriteString(r.renderBreakdown(sess, result, width) + "\n\n")
	b.WriteString(r.renderJobs(result.Code, width))

	if r.errMsg != "" {
		b.WriteString("\n\n" + lipgloss.NewStyle().Foreground(theme.Error).Render(r.errMsg))
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(b.String())
}

func (r *ResultsScreen) renderTopThree(result *riasec.Result) string {
	cards := make([]string, 0, riasec.CodeLength)
	for i := 0; i < riasec.CodeLength && i < len(result.Breakdown); i++ {
		cs := result.Breakdown[i]

		letter := lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			Render(cs.Category.Letter())
		rank := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("#%d", i+1))
		name := theme.Body.Render(cs.Category.DisplayName())
		points := lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Render(fmt.Sprintf("%d points", cs.Score))

		cards = append(cards, theme.Card.Render(
			letter+"  "+rank+"\n"+name+"\n"+points,
		))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (r *ResultsScreen) renderBreakdown(sess *assessment.Session, result *riasec.Result, width int) string {
	// Theoretical ceiling per category: question count times the top
	// ordinal of the shared scale.
	counts := make(map[riasec.Category]int)
	for _, q := range sess.Questions {
		counts[q.Category]++
	}

	barWidth := min(width-12, 64)

	lines := make([]string, 0, len(result.Breakdown))
	for i, cs := range result.Breakdown {
		bar := components.ScoreBar{
			Label:     cs.Category.DisplayName(),
			Score:     cs.Score,
			MaxScore:  counts[cs.Category] * 4,
			Width:     barWidth,
			Highlight: i < riasec.CodeLength,
		}
		lines = append(lines, bar.View())
	}
	return strings.Join(lines, "\n")
}

func (r *ResultsScreen) renderJobs(code string, width int) string {
	header := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("Career Opportunities")
	sub := theme.Hint.Render(fmt.Sprintf("Real jobs matching your %s profile", code))

	var body string
	switch {
	case !r.jobsLoaded:
		body = theme.Hint.Render("Fetching career opportunities...")
	case len(r.postings) == 0:
		body = theme.Hint.Render("No jobs found at the moment.")
	default:
		lines := make([]string, 0, len(r.postings))
		for _, p := range r.postings {
			line := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(p.Title) +
				theme.Hint.Render("  "+p.Company+" · "+p.Location)
			if p.Salary != "" && p.Salary != "Not listed" {
				line += theme.Hint.Render(" · " + p.Salary)
			}
			lines = append(lines, line)
		}
		body = strings.Join(lines, "\n")
	}

	return header + "\n" + sub + "\n\n" + body
}
