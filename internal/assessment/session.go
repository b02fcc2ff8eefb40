package assessment

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Max-Nicolai/MindPath/internal/riasec"
)

var (
	// ErrNotAnswered reports an advance attempt on an unanswered question.
	// This is the one user-facing validation in the flow; the controller
	// state is unchanged when it is returned.
	ErrNotAnswered = errors.New("current question has no recorded answer")

	// ErrScoringPending reports a call that is not allowed while the
	// scoring delay is in flight. Scoring is single-shot and cannot be
	// cancelled or restarted.
	ErrScoringPending = errors.New("scoring in progress")

	// ErrSessionActive reports a start attempt while a session is live.
	ErrSessionActive = errors.New("a session is already active")

	// ErrWrongPhase reports a transition invoked outside its source phase.
	ErrWrongPhase = errors.New("transition not valid in current phase")

	// ErrInvalidRating reports a feedback rating outside 1..5.
	ErrInvalidRating = errors.New("rating outside the 1-5 scale")
)

// Session holds all flow-scoped state for one run of the assessment.
// Exactly one Session is live at a time; a reset discards it entirely.
type Session struct {
	ID        string
	Mode      riasec.Mode
	Questions []riasec.Question
	Index     int
	Answers   *riasec.AnswerStore
	Result    *riasec.Result
	StartedAt time.Time
	ScoredAt  time.Time

	// FeedbackSubmitted marks the feedback page's terminal state.
	FeedbackSubmitted bool
}

// CurrentKey returns the answer key for the question at Index.
func (s *Session) CurrentKey() riasec.AnswerKey {
	return riasec.AnswerKey{QuestionID: s.Questions[s.Index].ID, Position: s.Index}
}

// Config holds the controller's tunable parameters. The delays pace the
// perceived "processing" between collection and results; they have no
// effect on correctness.
type Config struct {
	StandardDelay time.Duration
	ReducedDelay  time.Duration
}

// DefaultConfig returns the delays used by the product UI.
func DefaultConfig() Config {
	return Config{
		StandardDelay: 3 * time.Second,
		ReducedDelay:  1 * time.Second,
	}
}

// Controller sequences the assessment flow. It owns the only mutable
// cross-cutting state and is driven from a single goroutine; screens
// call its transition methods in response to UI events.
type Controller struct {
	cfg     Config
	phase   Phase
	session *Session
}

// NewController returns a controller in the Intake phase.
func NewController(cfg Config) *Controller {
	return &Controller{cfg: cfg, phase: PhaseIntake}
}

// Phase returns the current flow phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Session returns the live session, or nil during Intake.
func (c *Controller) Session() *Session {
	return c.session
}

// Start allocates a fresh session for the given mode and enters
// Collecting. It is rejected while a session is live; in particular a
// second start cannot be issued while a scoring delay is pending.
func (c *Controller) Start(mode riasec.Mode) (*Session, error) {
	switch c.phase {
	case PhaseIntake:
	case PhaseScoring:
		return nil, ErrScoringPending
	default:
		return nil, ErrSessionActive
	}

	questions, err := riasec.Questions(mode)
	if err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}

	c.session = &Session{
		ID:        uuid.NewString(),
		Mode:      mode,
		Questions: questions,
		Answers:   riasec.NewAnswerStore(),
		StartedAt: time.Now(),
	}
	c.phase = PhaseCollecting
	return c.session, nil
}

// CurrentQuestion returns the question at the session's current index.
func (c *Controller) CurrentQuestion() (riasec.Question, error) {
	if c.phase != PhaseCollecting {
		return riasec.Question{}, ErrWrongPhase
	}
	return c.session.Questions[c.session.Index], nil
}

// SelectAnswer records the ordinal for the current question, replacing
// any prior selection for it. Other recorded answers are untouched.
func (c *Controller) SelectAnswer(value int) error {
	if c.phase != PhaseCollecting {
		return ErrWrongPhase
	}
	return c.session.Answers.Record(c.session.CurrentKey(), value)
}

// Answered reports whether the current question has a recorded answer.
func (c *Controller) Answered() bool {
	if c.phase != PhaseCollecting {
		return false
	}
	return c.session.Answers.Answered(c.session.CurrentKey())
}

// Advance moves to the next question, or enters Scoring when the last
// question is answered. An unanswered current question refuses the move
// with ErrNotAnswered and no state change. The returned bool is true
// when the transition to Scoring happened.
func (c *Controller) Advance() (bool, error) {
	if c.phase != PhaseCollecting {
		return false, ErrWrongPhase
	}
	if !c.Answered() {
		return false, ErrNotAnswered
	}

	if c.session.Index < len(c.session.Questions)-1 {
		c.session.Index++
		return false, nil
	}

	c.phase = PhaseScoring
	return true, nil
}

// Retreat moves back one question. Revisiting never requires an answer
// and never erases previously recorded ones. Returns false at index 0.
func (c *Controller) Retreat() bool {
	if c.phase != PhaseCollecting || c.session.Index == 0 {
		return false
	}
	c.session.Index--
	return true
}

// ScoringDelay returns the mode-dependent cosmetic delay for the live
// session's Scoring -> Presenting transition.
func (c *Controller) ScoringDelay() time.Duration {
	if c.session != nil && c.session.Mode == riasec.ModeReduced {
		return c.cfg.ReducedDelay
	}
	return c.cfg.StandardDelay
}

// CompleteScoring computes the Result, attaches it to the session, and
// enters Presenting. Scoring is pure; the delay is the caller's timer.
func (c *Controller) CompleteScoring() (*riasec.Result, error) {
	if c.phase != PhaseScoring {
		return nil, ErrWrongPhase
	}

	result := riasec.Score(c.session.Answers, c.session.Questions)
	c.session.Result = &result
	c.session.ScoredAt = time.Now()
	c.phase = PhasePresenting
	return c.session.Result, nil
}

// ViewFeedback moves from Presenting to the Feedback page.
func (c *Controller) ViewFeedback() error {
	if c.phase != PhasePresenting {
		return ErrWrongPhase
	}
	c.phase = PhaseFeedback
	return nil
}

// SubmitFeedback validates the rating and marks the feedback page
// terminal. The flow stays in Feedback; only Restart leaves it.
func (c *Controller) SubmitFeedback(rating int) error {
	if c.phase != PhaseFeedback {
		return ErrWrongPhase
	}
	if rating < 1 || rating > 5 {
		return ErrInvalidRating
	}
	c.session.FeedbackSubmitted = true
	return nil
}

// Restart discards the session and returns to Intake. Permitted from
// Presenting, Feedback, and Collecting (abandoning a run); the scoring
// delay itself cannot be interrupted.
func (c *Controller) Restart() error {
	switch c.phase {
	case PhaseIntake:
		return nil
	case PhaseScoring:
		return ErrScoringPending
	}
	c.session = nil
	c.phase = PhaseIntake
	return nil
}
