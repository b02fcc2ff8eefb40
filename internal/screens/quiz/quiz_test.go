package quiz

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/Max-Nicolai/MindPath/internal/assessment"
	"github.com/Max-Nicolai/MindPath/internal/riasec"
	"github.com/Max-Nicolai/MindPath/internal/router"
	"github.com/Max-Nicolai/MindPath/internal/screen"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct {
	name string
}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.name }
func (s *stubScreen) Title() string                           { return s.name }

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func newTestQuiz(t *testing.T, mode riasec.Mode) (*QuizScreen, *assessment.Controller) {
	t.Helper()
	ctrl := assessment.NewController(assessment.DefaultConfig())
	if _, err := ctrl.Start(mode); err != nil {
		t.Fatalf("Start: %v", err)
	}
	loadingFactory := func() screen.Screen { return &stubScreen{name: "loading"} }
	homeFactory := func() screen.Screen { return &stubScreen{name: "home"} }
	return New(ctrl, loadingFactory, homeFactory), ctrl
}

// answer picks the given 1-based option via its digit key and feeds the
// resulting message back through the screen, as the runtime would.
func answer(t *testing.T, scr screen.Screen, digit rune) screen.Screen {
	t.Helper()
	scr, cmd := scr.Update(keyPress(digit))
	if cmd == nil {
		t.Fatal("expected a command from choosing an option")
	}
	msg := cmd()
	chosen, ok := msg.(answerChosenMsg)
	if !ok {
		t.Fatalf("expected answerChosenMsg, got %T", msg)
	}
	scr, _ = scr.Update(chosen)
	return scr
}

func TestAdvanceWithoutAnswerRefused(t *testing.T) {
	q, ctrl := newTestQuiz(t, riasec.ModeReduced)

	scr, cmd := q.Update(specialKey(tea.KeyRight))
	if cmd != nil {
		t.Fatal("expected no command on refused advance")
	}
	if ctrl.Session().Index != 0 {
		t.Fatalf("index moved to %d on refused advance", ctrl.Session().Index)
	}
	if qs := scr.(*QuizScreen); qs.errMsg != notAnsweredHint {
		t.Fatalf("errMsg = %q, want %q", qs.errMsg, notAnsweredHint)
	}
}

func TestAnswerRecordsOrdinal(t *testing.T) {
	q, ctrl := newTestQuiz(t, riasec.ModeReduced)

	answer(t, q, '4')

	sess := ctrl.Session()
	v, ok := sess.Answers.Get(sess.CurrentKey())
	if !ok {
		t.Fatal("no answer recorded")
	}
	if v != 3 {
		t.Fatalf("recorded value = %d, want 3", v)
	}
}

func TestAnswerThenAdvanceMovesOn(t *testing.T) {
	q, ctrl := newTestQuiz(t, riasec.ModeReduced)

	scr := answer(t, q, '3')
	scr, _ = scr.Update(specialKey(tea.KeyRight))

	if ctrl.Session().Index != 1 {
		t.Fatalf("index = %d, want 1", ctrl.Session().Index)
	}
	if qs := scr.(*QuizScreen); qs.errMsg != "" {
		t.Fatalf("unexpected error message %q", qs.errMsg)
	}
}

func TestRetreatRestoresPreviousChoice(t *testing.T) {
	q, ctrl := newTestQuiz(t, riasec.ModeReduced)

	scr := answer(t, q, '5')
	scr, _ = scr.Update(specialKey(tea.KeyRight))
	scr, _ = scr.Update(specialKey(tea.KeyLeft))

	if ctrl.Session().Index != 0 {
		t.Fatalf("index = %d, want 0", ctrl.Session().Index)
	}
	qs := scr.(*QuizScreen)
	if qs.scale.Value() != 4 {
		t.Fatalf("restored value = %d, want 4", qs.scale.Value())
	}
}

func TestLastAnswerEntersScoring(t *testing.T) {
	q, ctrl := newTestQuiz(t, riasec.ModeReduced)

	var scr screen.Screen = q
	var cmd tea.Cmd
	n := len(ctrl.Session().Questions)
	for i := 0; i < n; i++ {
		scr = answer(t, scr, '2')
		scr, cmd = scr.Update(specialKey(tea.KeyRight))
	}

	if ctrl.Phase() != assessment.PhaseScoring {
		t.Fatalf("phase = %v, want Scoring", ctrl.Phase())
	}
	if cmd == nil {
		t.Fatal("expected a switch command after the last answer")
	}
	msg := cmd()
	sw, ok := msg.(router.SwitchScreenMsg)
	if !ok {
		t.Fatalf("expected SwitchScreenMsg, got %T", msg)
	}
	if sw.Screen.Title() != "loading" {
		t.Fatalf("switched to %q, want loading", sw.Screen.Title())
	}
}

func TestEscapeAbandonsRun(t *testing.T) {
	q, ctrl := newTestQuiz(t, riasec.ModeStandard)

	_, cmd := q.Update(specialKey(tea.KeyEscape))
	if ctrl.Phase() != assessment.PhaseIntake {
		t.Fatalf("phase = %v, want Intake", ctrl.Phase())
	}
	if cmd == nil {
		t.Fatal("expected a switch command back home")
	}
	msg := cmd()
	sw, ok := msg.(router.SwitchScreenMsg)
	if !ok {
		t.Fatalf("expected SwitchScreenMsg, got %T", msg)
	}
	if sw.Screen.Title() != "home" {
		t.Fatalf("switched to %q, want home", sw.Screen.Title())
	}
}

func TestAdvanceOutsideCollectingSurfacesRealError(t *testing.T) {
	q, ctrl := newTestQuiz(t, riasec.ModeReduced)

	// Drive the controller into Scoring behind the screen's back, so the
	// next advance fails with something other than a missing answer.
	for {
		if err := ctrl.SelectAnswer(2); err != nil {
			t.Fatalf("SelectAnswer: %v", err)
		}
		finished, err := ctrl.Advance()
		if err != nil {
			t.Fatalf("Advance: %v", err)
		}
		if finished {
			break
		}
	}

	scr, _ := q.Update(specialKey(tea.KeyRight))
	qs := scr.(*QuizScreen)
	if qs.errMsg == notAnsweredHint {
		t.Fatal("phase error rendered as the unanswered hint")
	}
	if qs.errMsg != assessment.ErrWrongPhase.Error() {
		t.Fatalf("errMsg = %q, want %q", qs.errMsg, assessment.ErrWrongPhase.Error())
	}
}

func TestStatusShowsProgress(t *testing.T) {
	q, _ := newTestQuiz(t, riasec.ModeStandard)
	if got := q.Status(); got != "Question 1 of 42" {
		t.Fatalf("Status() = %q", got)
	}
}
