package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/lifefin_backend/internal/apperrors"
	"github.com/SscSPs/lifefin_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/lifefin_backend/internal/core/ports/repositories"
	"github.com/SscSPs/lifefin_backend/internal/models"
	"github.com/SscSPs/lifefin_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxScoreConfigRepository keeps the active score configuration in a single row with id 1.
type PgxScoreConfigRepository struct {
	BaseRepository
}

func newPgxScoreConfigRepository(pool *pgxpool.Pool) *PgxScoreConfigRepository {
	return &PgxScoreConfigRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ScoreConfigRepository = (*PgxScoreConfigRepository)(nil)

func (r *PgxScoreConfigRepository) GetScoreConfig(ctx context.Context) (*domain.ScoreConfig, error) {
	query := `SELECT base, trx_weight, saving_weight, last_updated_at, last_updated_by FROM score_config WHERE id = 1;`
	var m models.ScoreConfig
	err := r.Pool.QueryRow(ctx, query).Scan(&m.Base, &m.TrxWeight, &m.SavingWeight, &m.LastUpdatedAt, &m.LastUpdatedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to read score config: %w", err)
	}
	cfg := mapping.ToDomainScoreConfig(m)
	return &cfg, nil
}

func (r *PgxScoreConfigRepository) SaveScoreConfig(ctx context.Context, cfg domain.ScoreConfig, updatedBy string, updatedAt time.Time) error {
	query := `
		INSERT INTO score_config (id, base, trx_weight, saving_weight, last_updated_at, last_updated_by)
		VALUES (1, $1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			base = EXCLUDED.base,
			trx_weight = EXCLUDED.trx_weight,
			saving_weight = EXCLUDED.saving_weight,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query, cfg.Base, cfg.TrxWeight, cfg.SavingWeight, updatedAt, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to save score config: %w", err)
	}
	return nil
}
