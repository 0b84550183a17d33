package server

import (
	"context"

	"github.com/google/uuid"

	"github.com/jonathan/career-compass/internal/db"
	"github.com/jonathan/career-compass/internal/types"
)

// Store persists guides and learning paths per session
type Store interface {
	SaveGuide(ctx context.Context, sessionID uuid.UUID, guide *types.CareerGuide) (*types.StoredGuide, error)
	GetLatestGuide(ctx context.Context, sessionID uuid.UUID) (*types.StoredGuide, error)
	ListGuides(ctx context.Context, sessionID uuid.UUID, limit int) ([]types.StoredGuide, error)
	DeleteGuides(ctx context.Context, sessionID uuid.UUID) (int64, error)
	SaveLearningPath(ctx context.Context, sessionID uuid.UUID, path *types.LearningPath) error
	GetLearningPath(ctx context.Context, sessionID, pathID uuid.UUID) (*types.LearningPath, error)
	UpdateLearningPath(ctx context.Context, sessionID uuid.UUID, path *types.LearningPath) (bool, error)
}

var _ Store = (*db.DB)(nil)
