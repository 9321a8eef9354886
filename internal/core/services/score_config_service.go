package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/lifefin_backend/internal/apperrors"
	"github.com/SscSPs/lifefin_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/lifefin_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/lifefin_backend/internal/core/ports/services"
	"github.com/SscSPs/lifefin_backend/internal/dto"
)

type scoreConfigService struct {
	BaseService
	repo     portsrepo.ScoreConfigRepository
	defaults domain.ScoreConfig
}

// NewScoreConfigService creates the score config service. defaults apply until an admin saves a config.
func NewScoreConfigService(repo portsrepo.ScoreConfigRepository, defaults domain.ScoreConfig) portssvc.ScoreConfigSvcFacade {
	return &scoreConfigService{repo: repo, defaults: defaults}
}

var _ portssvc.ScoreConfigSvcFacade = (*scoreConfigService)(nil)

func (s *scoreConfigService) GetScoreConfig(ctx context.Context) (domain.ScoreConfig, error) {
	cfg, err := s.repo.GetScoreConfig(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return s.defaults, nil
		}
		s.LogError(ctx, err, "Failed to load score config")
		return domain.ScoreConfig{}, fmt.Errorf("failed to load score config: %w", err)
	}
	return *cfg, nil
}

func (s *scoreConfigService) UpdateScoreConfig(ctx context.Context, req dto.UpdateScoreConfigRequest, adminID string) (domain.ScoreConfig, error) {
	cfg := req.ToScoreConfig()
	if err := cfg.Validate(); err != nil {
		s.LogWarn(ctx, "Rejected score config", slog.String("error", err.Error()))
		return domain.ScoreConfig{}, err
	}

	if err := s.repo.SaveScoreConfig(ctx, cfg, adminID, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to save score config")
		return domain.ScoreConfig{}, fmt.Errorf("failed to save score config: %w", err)
	}

	s.LogInfo(ctx, "Score config updated",
		slog.String("admin_id", adminID),
		slog.Int("base", cfg.Base),
		slog.Int("trx_weight", cfg.TrxWeight),
		slog.Int("saving_weight", cfg.SavingWeight))
	return cfg, nil
}
