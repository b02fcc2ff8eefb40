package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/Max-Nicolai/MindPath/internal/feedback"
	"github.com/Max-Nicolai/MindPath/internal/riasec"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func sampleResult() riasec.Result {
	return riasec.Result{
		Code: "RIA",
		Breakdown: []riasec.CategoryScore{
			{Category: riasec.Realistic, Score: 20},
			{Category: riasec.Investigative, Score: 15},
			{Category: riasec.Artistic, Score: 12},
			{Category: riasec.Social, Score: 8},
			{Category: riasec.Enterprising, Score: 5},
			{Category: riasec.Conventional, Score: 2},
		},
	}
}

func TestAssessmentRoundTrip(t *testing.T) {
	st := openTestStore(t)
	repo := st.AssessmentRepo()
	ctx := context.Background()

	rec := AssessmentRecord{
		SessionID: "s-1",
		Mode:      riasec.ModeStandard,
		Result:    sampleResult(),
		Questions: 42,
		Answered:  42,
		Duration:  7 * time.Minute,
	}
	if err := repo.Append(ctx, rec); err != nil {
		t.Fatalf("append: %v", err)
	}

	got, err := repo.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d records, want 1", len(got))
	}

	g := got[0]
	if g.SessionID != rec.SessionID || g.Mode != rec.Mode || g.Result.Code != rec.Result.Code {
		t.Errorf("record mismatch: %+v", g)
	}
	if g.Questions != 42 || g.Answered != 42 || g.Duration != 7*time.Minute {
		t.Errorf("counts mismatch: %+v", g)
	}
	if len(g.Result.Breakdown) != riasec.NumCategories {
		t.Fatalf("breakdown has %d entries, want %d", len(g.Result.Breakdown), riasec.NumCategories)
	}
	for i, cs := range g.Result.Breakdown {
		if cs != rec.Result.Breakdown[i] {
			t.Errorf("breakdown[%d] = %+v, want %+v", i, cs, rec.Result.Breakdown[i])
		}
	}
}

func TestRecentOrdersNewestFirst(t *testing.T) {
	st := openTestStore(t)
	repo := st.AssessmentRepo()
	ctx := context.Background()

	for _, id := range []string{"s-1", "s-2", "s-3"} {
		if err := repo.Append(ctx, AssessmentRecord{SessionID: id, Mode: riasec.ModeReduced, Result: sampleResult()}); err != nil {
			t.Fatalf("append %s: %v", id, err)
		}
	}

	got, err := repo.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 2 || got[0].SessionID != "s-3" || got[1].SessionID != "s-2" {
		t.Errorf("unexpected order/limit: %+v", got)
	}
}

func TestFeedbackSink(t *testing.T) {
	st := openTestStore(t)
	sink := st.FeedbackSink()
	ctx := context.Background()

	err := sink.Submit(ctx, feedback.Entry{SessionID: "s-1", Code: "RIA", Rating: 4, Comments: "nice"})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	var rating int
	var comments string
	row := st.DB().QueryRow("SELECT rating, comments FROM feedback WHERE session_id = ?", "s-1")
	if err := row.Scan(&rating, &comments); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if rating != 4 || comments != "nice" {
		t.Errorf("stored (%d, %q), want (4, \"nice\")", rating, comments)
	}
}

func TestWipe(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	if err := st.AssessmentRepo().Append(ctx, AssessmentRecord{SessionID: "s-1", Result: sampleResult()}); err != nil {
		t.Fatal(err)
	}
	if err := st.Wipe(ctx); err != nil {
		t.Fatalf("wipe: %v", err)
	}

	got, err := st.AssessmentRepo().Recent(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("got %d records after wipe, want 0", len(got))
	}
}
