package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/career-compass/internal/types"
)

// SaveLearningPath stores a newly built learning path for a session
func (db *DB) SaveLearningPath(ctx context.Context, sessionID uuid.UUID, path *types.LearningPath) error {
	id, content, err := encodePath(path)
	if err != nil {
		return err
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO learning_paths (id, session_id, job_title, content, progress)
		 VALUES ($1, $2, $3, $4, $5)`,
		id, sessionID, path.JobTitle, content, path.ProgressPercentage,
	)
	if err != nil {
		return fmt.Errorf("failed to save learning path: %w", err)
	}
	return nil
}

// GetLearningPath returns a session's learning path by ID, or nil when it does not exist
func (db *DB) GetLearningPath(ctx context.Context, sessionID, pathID uuid.UUID) (*types.LearningPath, error) {
	var content []byte
	err := db.pool.QueryRow(ctx,
		`SELECT content FROM learning_paths WHERE id = $1 AND session_id = $2`,
		pathID, sessionID,
	).Scan(&content)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get learning path: %w", err)
	}

	var path types.LearningPath
	if err := json.Unmarshal(content, &path); err != nil {
		return nil, fmt.Errorf("failed to unmarshal learning path: %w", err)
	}
	return &path, nil
}

// UpdateLearningPath overwrites a stored path after milestone changes.
// Returns false when the path does not belong to the session.
func (db *DB) UpdateLearningPath(ctx context.Context, sessionID uuid.UUID, path *types.LearningPath) (bool, error) {
	id, content, err := encodePath(path)
	if err != nil {
		return false, err
	}

	tag, err := db.pool.Exec(ctx,
		`UPDATE learning_paths SET content = $3, progress = $4, updated_at = NOW()
		 WHERE id = $1 AND session_id = $2`,
		id, sessionID, content, path.ProgressPercentage,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update learning path: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func encodePath(path *types.LearningPath) (uuid.UUID, []byte, error) {
	if path == nil {
		return uuid.Nil, nil, fmt.Errorf("learning path is nil")
	}
	id, err := uuid.Parse(path.ID)
	if err != nil {
		return uuid.Nil, nil, fmt.Errorf("invalid learning path id %q: %w", path.ID, err)
	}
	content, err := json.Marshal(path)
	if err != nil {
		return uuid.Nil, nil, fmt.Errorf("failed to marshal learning path: %w", err)
	}
	return id, content, nil
}
