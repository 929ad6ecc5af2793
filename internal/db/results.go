package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jonathan/resume-matcher/internal/types"
)

// ScreeningResult is one persisted (job, candidate) match score.
type ScreeningResult struct {
	JobID       string           `json:"job_id"`
	CandidateID string           `json:"candidate_id"`
	Score       types.MatchScore `json:"score"`
	CreatedAt   time.Time        `json:"created_at"`
}

// SaveScreeningResult stores a match score for a (job, candidate) pair,
// replacing any previous score for the same pair. Scores are never patched:
// a rescore overwrites the whole row.
func (db *DB) SaveScreeningResult(ctx context.Context, jobID, candidateID string, score types.MatchScore) error {
	payload, err := json.Marshal(score)
	if err != nil {
		return fmt.Errorf("failed to marshal score: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO screening_results (job_id, candidate_id, overall, score)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (job_id, candidate_id)
		 DO UPDATE SET overall = $3, score = $4, created_at = NOW()`,
		jobID, candidateID, score.Overall, payload,
	)
	if err != nil {
		return fmt.Errorf("failed to save screening result: %w", err)
	}
	return nil
}

// SaveRanking stores every entry of a ranked list for a job.
func (db *DB) SaveRanking(ctx context.Context, jobID string, ranked []types.RankedCandidate) error {
	for _, rc := range ranked {
		if err := db.SaveScreeningResult(ctx, jobID, rc.CandidateID, rc.Score); err != nil {
			return err
		}
	}
	return nil
}

// ListResultsByJob retrieves the stored results for a job ordered by overall
// score descending, candidate ID ascending on ties. The ordering mirrors the
// ranker's so stored and freshly computed rankings agree.
func (db *DB) ListResultsByJob(ctx context.Context, jobID string, limit int) ([]ScreeningResult, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := db.pool.Query(ctx,
		`SELECT job_id, candidate_id, score, created_at
		 FROM screening_results WHERE job_id = $1
		 ORDER BY overall DESC, candidate_id ASC LIMIT $2`,
		jobID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list screening results: %w", err)
	}
	defer rows.Close()

	var results []ScreeningResult
	for rows.Next() {
		var (
			result  ScreeningResult
			payload []byte
		)
		if err := rows.Scan(&result.JobID, &result.CandidateID, &payload, &result.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan screening result: %w", err)
		}
		if err := json.Unmarshal(payload, &result.Score); err != nil {
			return nil, fmt.Errorf("failed to unmarshal score for %s: %w", result.CandidateID, err)
		}
		results = append(results, result)
	}
	return results, rows.Err()
}
