package jobs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"
)

const (
	defaultSearchURL = "https://api.theirstack.com/v1/jobs/search"
	maxPostingAge    = 45 // days
	requestTimeout   = 10 * time.Second
)

// TheirStack queries the TheirStack job search API. Without an API key
// it returns no postings rather than failing; the results page renders
// an empty state either way.
type TheirStack struct {
	apiKey    string
	searchURL string
	client    *http.Client
}

var _ Client = (*TheirStack)(nil)

// NewTheirStack builds a client reading THEIRSTACK_API_KEY from the
// environment.
func NewTheirStack() *TheirStack {
	return &TheirStack{
		apiKey:    os.Getenv("THEIRSTACK_API_KEY"),
		searchURL: defaultSearchURL,
		client:    &http.Client{Timeout: requestTimeout},
	}
}

// searchRequest is the provider's search payload.
type searchRequest struct {
	PostedAtMaxAgeDays  int      `json:"posted_at_max_age_days"`
	Limit               int      `json:"limit"`
	JobTitleOr          []string `json:"job_title_or"`
	IncludeTotalResults bool     `json:"include_total_results"`
}

// searchResponse is the subset of the provider's response we consume.
type searchResponse struct {
	Data []struct {
		ID            json.Number `json:"id"`
		JobTitle      string      `json:"job_title"`
		URL           string      `json:"url"`
		SalaryString  string      `json:"salary_string"`
		DatePosted    string      `json:"date_posted"`
		LocationNames []string    `json:"job_location_names"`
		Company       struct {
			Name string `json:"name"`
		} `json:"company_object"`
	} `json:"data"`
}

// Search expands the code into title keywords and queries the provider.
func (t *TheirStack) Search(ctx context.Context, code string, limit int) ([]Posting, error) {
	if t.apiKey == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = 1
	}

	payload, err := json.Marshal(searchRequest{
		PostedAtMaxAgeDays:  maxPostingAge,
		Limit:               limit,
		JobTitleOr:          KeywordsForCode(code),
		IncludeTotalResults: false,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal search payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.searchURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build search request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+t.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search jobs: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search jobs: unexpected status %d", resp.StatusCode)
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	postings := make([]Posting, 0, len(parsed.Data))
	for _, j := range parsed.Data {
		p := Posting{
			ID:         j.ID.String(),
			Title:      j.JobTitle,
			URL:        j.URL,
			Salary:     j.SalaryString,
			DatePosted: j.DatePosted,
			Company:    j.Company.Name,
			Location:   "Unknown",
		}
		if p.ID == "" {
			p.ID = "0"
		}
		if p.Title == "" {
			p.Title = "Untitled Role"
		}
		if p.Company == "" {
			p.Company = "Unknown Company"
		}
		if p.URL == "" {
			p.URL = "#"
		}
		if p.Salary == "" {
			p.Salary = "Not listed"
		}
		if len(j.LocationNames) > 0 && j.LocationNames[0] != "" {
			p.Location = j.LocationNames[0]
		}
		postings = append(postings, p)
	}
	return postings, nil
}

// parseLimit parses a result-count hint, clamping bad input to def.
func parseLimit(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
