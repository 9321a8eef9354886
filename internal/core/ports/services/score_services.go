package services

import (
	"context"

	"github.com/SscSPs/lifefin_backend/internal/core/domain"
	"github.com/SscSPs/lifefin_backend/internal/dto"
)

// ScoreConfigSvcFacade manages the admin-tunable score configuration.
type ScoreConfigSvcFacade interface {
	// GetScoreConfig returns the stored config or the configured defaults.
	GetScoreConfig(ctx context.Context) (domain.ScoreConfig, error)

	// UpdateScoreConfig validates and stores a new config.
	UpdateScoreConfig(ctx context.Context, req dto.UpdateScoreConfigRequest, adminID string) (domain.ScoreConfig, error)
}

// ScoringSvc computes credit scores from stored history.
type ScoringSvc interface {
	// GetScoreReport recomputes the merchant's score from their full current history.
	GetScoreReport(ctx context.Context, userID string) (*domain.ScoreReport, error)
}

// DashboardSvc builds the home screens.
type DashboardSvc interface {
	// GetDashboard summarises the merchant's book, savings and score.
	GetDashboard(ctx context.Context, userID string) (*domain.DashboardSummary, error)

	// GetAdminDashboard summarises the loan queue.
	GetAdminDashboard(ctx context.Context) (*domain.AdminDashboard, error)
}
