package riasec

import "errors"

// ErrInvalidAnswer reports an ordinal outside the five-option scale.
// Input sources are controlled, so hitting this is a programming error,
// not a user-facing condition.
var ErrInvalidAnswer = errors.New("answer value outside the 0-4 scale")

// AnswerKey identifies one answered question within a session. Catalog
// IDs repeat across questions of the same category, so the key pairs the
// ID with the question's 0-based position in the session's question list.
type AnswerKey struct {
	QuestionID string
	Position   int
}

// AnswerStore maps session-scoped question keys to selected ordinals.
// Re-recording a key overwrites its value; entries are only removed by
// discarding the whole store on session reset.
type AnswerStore struct {
	values map[AnswerKey]int
}

// NewAnswerStore returns an empty answer store.
func NewAnswerStore() *AnswerStore {
	return &AnswerStore{values: make(map[AnswerKey]int)}
}

// Record stores the selected ordinal for a key, replacing any prior
// selection. Values outside 0..4 are rejected with ErrInvalidAnswer.
func (s *AnswerStore) Record(key AnswerKey, value int) error {
	if value < 0 || value > 4 {
		return ErrInvalidAnswer
	}
	s.values[key] = value
	return nil
}

// Get returns the recorded ordinal for a key and whether one exists.
func (s *AnswerStore) Get(key AnswerKey) (int, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Answered reports whether the key has a recorded answer.
func (s *AnswerStore) Answered(key AnswerKey) bool {
	_, ok := s.values[key]
	return ok
}

// Len returns the number of answered questions.
func (s *AnswerStore) Len() int {
	return len(s.values)
}
