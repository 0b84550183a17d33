package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/career-compass/internal/types"
)

// SaveGuide stores a guide for a session and returns the stored record.
// The guide is assigned a fresh ID when it has none. Saving under an ID owned by
// another session fails with ErrGuideNotFound and leaves that guide untouched.
func (db *DB) SaveGuide(ctx context.Context, sessionID uuid.UUID, guide *types.CareerGuide) (*types.StoredGuide, error) {
	if guide == nil {
		return nil, fmt.Errorf("guide is nil")
	}

	id := uuid.New()
	if guide.ID != "" {
		parsed, err := uuid.Parse(guide.ID)
		if err != nil {
			return nil, fmt.Errorf("invalid guide id %q: %w", guide.ID, err)
		}
		id = parsed
	}
	guide.ID = id.String()

	content, err := json.Marshal(guide)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal guide: %w", err)
	}

	var createdAt time.Time
	err = db.pool.QueryRow(ctx,
		`INSERT INTO career_guides (id, session_id, job_title, content)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (id) DO UPDATE SET job_title = $3, content = $4, created_at = NOW()
		 WHERE career_guides.session_id = EXCLUDED.session_id
		 RETURNING created_at`,
		id, sessionID, guide.JobTitle, content,
	).Scan(&createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrGuideNotFound
		}
		return nil, fmt.Errorf("failed to save guide: %w", err)
	}

	return &types.StoredGuide{
		ID:        id.String(),
		SessionID: sessionID.String(),
		JobTitle:  guide.JobTitle,
		Guide:     guide,
		CreatedAt: createdAt,
	}, nil
}

// GetLatestGuide returns the most recently saved guide of a session, or nil when there is none
func (db *DB) GetLatestGuide(ctx context.Context, sessionID uuid.UUID) (*types.StoredGuide, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT id, session_id, job_title, content, created_at
		 FROM career_guides WHERE session_id = $1
		 ORDER BY created_at DESC LIMIT 1`,
		sessionID,
	)

	stored, err := scanGuide(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest guide: %w", err)
	}
	return stored, nil
}

// ListGuides returns a session's guides, newest first
func (db *DB) ListGuides(ctx context.Context, sessionID uuid.UUID, limit int) ([]types.StoredGuide, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, session_id, job_title, content, created_at
		 FROM career_guides WHERE session_id = $1
		 ORDER BY created_at DESC LIMIT $2`,
		sessionID, clampLimit(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list guides: %w", err)
	}
	defer rows.Close()

	guides := []types.StoredGuide{}
	for rows.Next() {
		stored, err := scanGuide(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan guide: %w", err)
		}
		guides = append(guides, *stored)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate guides: %w", err)
	}
	return guides, nil
}

// DeleteGuides removes every guide of a session and reports how many were deleted
func (db *DB) DeleteGuides(ctx context.Context, sessionID uuid.UUID) (int64, error) {
	tag, err := db.pool.Exec(ctx,
		`DELETE FROM career_guides WHERE session_id = $1`,
		sessionID,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to delete guides: %w", err)
	}
	return tag.RowsAffected(), nil
}

func scanGuide(row pgx.Row) (*types.StoredGuide, error) {
	var (
		id, sessionID uuid.UUID
		stored        types.StoredGuide
		content       []byte
	)
	if err := row.Scan(&id, &sessionID, &stored.JobTitle, &content, &stored.CreatedAt); err != nil {
		return nil, err
	}

	var guide types.CareerGuide
	if err := json.Unmarshal(content, &guide); err != nil {
		return nil, fmt.Errorf("failed to unmarshal guide: %w", err)
	}

	stored.ID = id.String()
	stored.SessionID = sessionID.String()
	stored.Guide = &guide
	return &stored, nil
}
