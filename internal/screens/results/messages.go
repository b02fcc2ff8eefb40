package results

import "github.com/Max-Nicolai/MindPath/internal/jobs"

// jobsLoadedMsg is sent when the posting lookup finishes. A failed
// lookup arrives as an empty list; the screen never surfaces the error.
type jobsLoadedMsg struct {
	Postings []jobs.Posting
}

// persistDoneMsg is sent when the assessment record has been written.
type persistDoneMsg struct {
	Err error
}
