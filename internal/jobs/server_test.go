package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubClient returns canned postings or a canned error.
type stubClient struct {
	postings []Posting
	err      error

	gotCode  string
	gotLimit int
}

func (s *stubClient) Search(_ context.Context, code string, limit int) ([]Posting, error) {
	s.gotCode = code
	s.gotLimit = limit
	return s.postings, s.err
}

func TestHandleJobs(t *testing.T) {
	stub := &stubClient{postings: []Posting{{ID: "1", Title: "Teacher", Company: "School", Location: "Remote", URL: "https://example.com"}}}
	srv := httptest.NewServer(NewServer(stub, nil).Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/jobs?code=SAE&limit=2")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got []Posting
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, stub.postings, got)
	assert.Equal(t, "SAE", stub.gotCode)
	assert.Equal(t, 2, stub.gotLimit)
}

func TestHandleJobsMissingCode(t *testing.T) {
	srv := httptest.NewServer(NewServer(&stubClient{}, nil).Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/jobs")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleJobsAbsorbsProviderFailure(t *testing.T) {
	stub := &stubClient{err: errors.New("upstream down")}
	srv := httptest.NewServer(NewServer(stub, nil).Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/jobs?code=RIA")
	require.NoError(t, err)
	defer resp.Body.Close()

	// Failures degrade to an empty list, not an error response.
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got []Posting
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Empty(t, got)
	assert.Equal(t, defaultLimit, stub.gotLimit)
}

func TestHandleHealth(t *testing.T) {
	srv := httptest.NewServer(NewServer(&stubClient{}, nil).Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
