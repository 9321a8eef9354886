package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/lifefin_backend/internal/core/domain"
)

// ScoreConfigRepository stores the single active score configuration.
type ScoreConfigRepository interface {
	// GetScoreConfig returns the stored config, or apperrors.ErrNotFound if none was saved yet.
	GetScoreConfig(ctx context.Context) (*domain.ScoreConfig, error)

	// SaveScoreConfig replaces the stored config.
	SaveScoreConfig(ctx context.Context, cfg domain.ScoreConfig, updatedBy string, updatedAt time.Time) error
}
