package assessment

// Phase is the flow controller's current state. The flow is linear:
// Intake -> Collecting -> Scoring -> Presenting -> Feedback, looping
// back to Intake on reset.
type Phase int

const (
	PhaseIntake     Phase = iota // No live session; waiting for a start
	PhaseCollecting              // Serving questions one at a time
	PhaseScoring                 // Cosmetic processing delay before results
	PhasePresenting              // Result available for display
	PhaseFeedback                // Optional feedback page after results
)

// String returns the phase name for logs and test failures.
func (p Phase) String() string {
	switch p {
	case PhaseIntake:
		return "intake"
	case PhaseCollecting:
		return "collecting"
	case PhaseScoring:
		return "scoring"
	case PhasePresenting:
		return "presenting"
	case PhaseFeedback:
		return "feedback"
	default:
		return "unknown"
	}
}
