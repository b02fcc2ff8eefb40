package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Max-Nicolai/MindPath/internal/feedback"
	"github.com/Max-Nicolai/MindPath/internal/riasec"
)

// AssessmentRecord is one completed assessment as stored locally.
type AssessmentRecord struct {
	SessionID string
	Mode      riasec.Mode
	Result    riasec.Result
	Questions int
	Answered  int
	Duration  time.Duration
	CreatedAt time.Time
}

// AssessmentRepo appends and lists completed-assessment records.
type AssessmentRepo interface {
	Append(ctx context.Context, rec AssessmentRecord) error
	Recent(ctx context.Context, limit int) ([]AssessmentRecord, error)
}

// AssessmentRepo returns an AssessmentRepo backed by this store.
func (s *Store) AssessmentRepo() AssessmentRepo {
	return &assessmentRepo{db: s.db}
}

// FeedbackSink returns a feedback.Sink backed by this store.
func (s *Store) FeedbackSink() feedback.Sink {
	return &feedbackRepo{db: s.db}
}

// Wipe deletes all stored records.
func (s *Store) Wipe(ctx context.Context) error {
	for _, table := range []string{"assessments", "feedback"} {
		if _, err := s.db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("wipe %s: %w", table, err)
		}
	}
	return nil
}

type assessmentRepo struct {
	db *sql.DB
}

// breakdownEntry is the stored JSON shape of one breakdown row.
type breakdownEntry struct {
	Letter string `json:"letter"`
	Score  int    `json:"score"`
}

func (r *assessmentRepo) Append(ctx context.Context, rec AssessmentRecord) error {
	entries := make([]breakdownEntry, 0, len(rec.Result.Breakdown))
	for _, cs := range rec.Result.Breakdown {
		entries = append(entries, breakdownEntry{Letter: cs.Category.Letter(), Score: cs.Score})
	}
	breakdown, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshal breakdown: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO assessments (session_id, mode, code, breakdown, questions, answered, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.SessionID, rec.Mode.String(), rec.Result.Code, string(breakdown),
		rec.Questions, rec.Answered, int(rec.Duration.Seconds()),
	)
	if err != nil {
		return fmt.Errorf("insert assessment: %w", err)
	}
	return nil
}

func (r *assessmentRepo) Recent(ctx context.Context, limit int) ([]AssessmentRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT session_id, mode, code, breakdown, questions, answered, duration_secs, created_at
		 FROM assessments ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query assessments: %w", err)
	}
	defer rows.Close()

	var out []AssessmentRecord
	for rows.Next() {
		var (
			rec          AssessmentRecord
			mode         string
			breakdown    string
			durationSecs int
		)
		if err := rows.Scan(&rec.SessionID, &mode, &rec.Result.Code, &breakdown,
			&rec.Questions, &rec.Answered, &durationSecs, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan assessment: %w", err)
		}
		rec.Mode = riasec.ModeFromString(mode)
		rec.Duration = time.Duration(durationSecs) * time.Second

		var entries []breakdownEntry
		if err := json.Unmarshal([]byte(breakdown), &entries); err != nil {
			return nil, fmt.Errorf("unmarshal breakdown: %w", err)
		}
		for _, e := range entries {
			cat, ok := riasec.CategoryFromLetter(e.Letter)
			if !ok {
				return nil, fmt.Errorf("stored breakdown has unknown letter %q", e.Letter)
			}
			rec.Result.Breakdown = append(rec.Result.Breakdown, riasec.CategoryScore{Category: cat, Score: e.Score})
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

type feedbackRepo struct {
	db *sql.DB
}

func (r *feedbackRepo) Submit(ctx context.Context, e feedback.Entry) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO feedback (session_id, code, rating, comments) VALUES (?, ?, ?, ?)`,
		e.SessionID, e.Code, e.Rating, e.Comments,
	)
	if err != nil {
		return fmt.Errorf("insert feedback: %w", err)
	}
	return nil
}
