// Package feedback collects post-assessment ratings. It is a stateless
// request/response collaborator: scoring never depends on it.
package feedback

import "context"

// Rating labels for the 1-5 scale, indexed by rating value.
var ratingLabels = map[int]string{
	1: "Not helpful",
	2: "Slightly helpful",
	3: "Moderately helpful",
	4: "Very helpful",
	5: "Extremely helpful",
}

// RatingLabel returns the display label for a rating value.
func RatingLabel(rating int) string {
	return ratingLabels[rating]
}

// Entry is one submitted piece of feedback.
type Entry struct {
	SessionID string
	Code      string
	Rating    int // 1..5
	Comments  string
}

// Sink receives submitted feedback entries.
type Sink interface {
	Submit(ctx context.Context, e Entry) error
}

// Discard is a Sink that drops everything, for store-less runs.
type Discard struct{}

func (Discard) Submit(context.Context, Entry) error { return nil }
