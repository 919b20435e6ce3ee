package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Attempt is one stored test attempt: the raw definition plus metadata.
type Attempt struct {
	ID         string          `json:"id"`
	Subject    string          `json:"subject"` // "math" or "ela"
	Definition json.RawMessage `json:"definition"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// GradingRecord is the finalized result persisted for an attempt.
type GradingRecord struct {
	AttemptID     string          `json:"attemptId"`
	Score         float64         `json:"score"`
	Tier          string          `json:"tier"`
	CorrectCount  int             `json:"correctCount"`
	TotalGradable int             `json:"totalGradable"`
	Analysis      json.RawMessage `json:"analysis"`
	FinalizedAt   time.Time       `json:"finalizedAt"`
}

// AlignmentRun records one passage/transcript comparison.
type AlignmentRun struct {
	ID         string          `json:"id"`
	Passage    string          `json:"passage"`
	Transcript string          `json:"transcript"`
	Result     json.RawMessage `json:"result"`
	ErrorCount int             `json:"errorCount"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// SaveAttempt stores an attempt, assigning an ID and timestamp when unset.
func (s *Store) SaveAttempt(ctx context.Context, a *Attempt) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	if a.Subject == "" {
		a.Subject = "math"
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO attempts (id, subject, definition, created_at) VALUES (?, ?, ?, ?)`,
		a.ID, a.Subject, string(a.Definition), a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("save attempt: %w", err)
	}
	return nil
}

// GetAttempt fetches one attempt, or nil when it does not exist.
func (s *Store) GetAttempt(ctx context.Context, id string) (*Attempt, error) {
	var a Attempt
	var definition string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, subject, definition, created_at FROM attempts WHERE id = ?`, id,
	).Scan(&a.ID, &a.Subject, &definition, &a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get attempt: %w", err)
	}
	a.Definition = json.RawMessage(definition)
	return &a, nil
}

// SaveGrading upserts the finalized result for an attempt. Re-grading
// replaces the previous record; the computation is idempotent so this is
// safe.
func (s *Store) SaveGrading(ctx context.Context, g *GradingRecord) error {
	if g.FinalizedAt.IsZero() {
		g.FinalizedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO grading_results (attempt_id, score, tier, correct_count, total_gradable, analysis, finalized_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(attempt_id) DO UPDATE SET
			score = excluded.score,
			tier = excluded.tier,
			correct_count = excluded.correct_count,
			total_gradable = excluded.total_gradable,
			analysis = excluded.analysis,
			finalized_at = excluded.finalized_at`,
		g.AttemptID, g.Score, g.Tier, g.CorrectCount, g.TotalGradable, string(g.Analysis), g.FinalizedAt,
	)
	if err != nil {
		return fmt.Errorf("save grading: %w", err)
	}
	return nil
}

// GetGrading fetches the finalized result for an attempt, or nil.
func (s *Store) GetGrading(ctx context.Context, attemptID string) (*GradingRecord, error) {
	var g GradingRecord
	var analysis string
	err := s.db.QueryRowContext(ctx,
		`SELECT attempt_id, score, tier, correct_count, total_gradable, analysis, finalized_at
		 FROM grading_results WHERE attempt_id = ?`, attemptID,
	).Scan(&g.AttemptID, &g.Score, &g.Tier, &g.CorrectCount, &g.TotalGradable, &analysis, &g.FinalizedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get grading: %w", err)
	}
	g.Analysis = json.RawMessage(analysis)
	return &g, nil
}

// SaveAlignmentRun stores one alignment computation.
func (s *Store) SaveAlignmentRun(ctx context.Context, r *AlignmentRun) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO alignment_runs (id, passage, transcript, result, error_count, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.ID, r.Passage, r.Transcript, string(r.Result), r.ErrorCount, r.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("save alignment run: %w", err)
	}
	return nil
}
