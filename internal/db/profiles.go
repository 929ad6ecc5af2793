package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-matcher/internal/types"
)

// StoredProfile is a persisted parsed profile with its metadata.
type StoredProfile struct {
	ID        uuid.UUID               `json:"id"`
	Parser    string                  `json:"parser"`
	Profile   types.StructuredProfile `json:"profile"`
	CreatedAt time.Time               `json:"created_at"`
}

// SaveProfile stores a parsed profile and returns its ID. Parser names the
// implementation that produced the profile.
func (db *DB) SaveProfile(ctx context.Context, parser string, profile *types.StructuredProfile) (uuid.UUID, error) {
	payload, err := json.Marshal(profile)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal profile: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO candidate_profiles (parser, profile) VALUES ($1, $2) RETURNING id`,
		parser, payload,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save profile: %w", err)
	}
	return id, nil
}

// GetProfile retrieves a stored profile by ID. Returns (nil, nil) when the
// profile does not exist.
func (db *DB) GetProfile(ctx context.Context, id uuid.UUID) (*StoredProfile, error) {
	var (
		stored  StoredProfile
		payload []byte
	)
	err := db.pool.QueryRow(ctx,
		`SELECT id, parser, profile, created_at FROM candidate_profiles WHERE id = $1`,
		id,
	).Scan(&stored.ID, &stored.Parser, &payload, &stored.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	if err := json.Unmarshal(payload, &stored.Profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile %s: %w", id, err)
	}
	return &stored, nil
}

// ListProfiles retrieves recently stored profiles, newest first.
func (db *DB) ListProfiles(ctx context.Context, limit int) ([]StoredProfile, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, parser, profile, created_at
		 FROM candidate_profiles ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	var profiles []StoredProfile
	for rows.Next() {
		var (
			stored  StoredProfile
			payload []byte
		)
		if err := rows.Scan(&stored.ID, &stored.Parser, &payload, &stored.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		if err := json.Unmarshal(payload, &stored.Profile); err != nil {
			return nil, fmt.Errorf("failed to unmarshal profile %s: %w", stored.ID, err)
		}
		profiles = append(profiles, stored)
	}
	return profiles, rows.Err()
}
