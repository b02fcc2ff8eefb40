// Package jobs looks up job postings matching a Holland summary code.
// The core assessment logic never imports this package; the results
// screen consumes it behind the Client interface and degrades to an
// empty list on any failure.
package jobs

import "context"

// Posting is one job listing as shown on the results page.
type Posting struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Company    string `json:"company"`
	Location   string `json:"location"`
	URL        string `json:"url"`
	Salary     string `json:"salary_string,omitempty"`
	DatePosted string `json:"date_posted,omitempty"`
}

// Client fetches postings for a 3-letter summary code. Implementations
// must treat the fetch as best-effort: an empty slice is a valid answer.
type Client interface {
	Search(ctx context.Context, code string, limit int) ([]Posting, error)
}
