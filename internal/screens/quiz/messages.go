package quiz

// answerChosenMsg is sent when the user picks a Likert option.
type answerChosenMsg struct {
	Value int
}
