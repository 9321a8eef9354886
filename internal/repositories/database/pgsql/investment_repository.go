package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/lifefin_backend/internal/apperrors"
	"github.com/SscSPs/lifefin_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/lifefin_backend/internal/core/ports/repositories"
	"github.com/SscSPs/lifefin_backend/internal/models"
	"github.com/SscSPs/lifefin_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxInvestmentRepository struct {
	BaseRepository
}

func newPgxInvestmentRepository(pool *pgxpool.Pool) *PgxInvestmentRepository {
	return &PgxInvestmentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.InvestmentRepositoryFacade = (*PgxInvestmentRepository)(nil)

const investmentColumns = `investment_id, user_id, product_id, name, amount, return_rate, risk, start_date`

func scanInvestment(row pgx.Row) (models.Investment, error) {
	var m models.Investment
	err := row.Scan(
		&m.InvestmentID,
		&m.UserID,
		&m.ProductID,
		&m.Name,
		&m.Amount,
		&m.ReturnRate,
		&m.Risk,
		&m.StartDate,
	)
	return m, err
}

func (r *PgxInvestmentRepository) FindInvestmentByID(ctx context.Context, investmentID string) (*domain.Investment, error) {
	query := `SELECT ` + investmentColumns + ` FROM investments WHERE investment_id = $1;`
	m, err := scanInvestment(r.Pool.QueryRow(ctx, query, investmentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find investment %s: %w", investmentID, err)
	}
	inv := mapping.ToDomainInvestment(m)
	return &inv, nil
}

func (r *PgxInvestmentRepository) ListInvestmentsByUser(ctx context.Context, userID string) ([]domain.Investment, error) {
	query := `SELECT ` + investmentColumns + ` FROM investments WHERE user_id = $1 ORDER BY start_date DESC, investment_id DESC;`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query investments for user %s: %w", userID, err)
	}
	defer rows.Close()

	modelInvs := []models.Investment{}
	for rows.Next() {
		m, scanErr := scanInvestment(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan investment row: %w", scanErr)
		}
		modelInvs = append(modelInvs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating investment rows: %w", err)
	}
	return mapping.ToDomainInvestmentSlice(modelInvs), nil
}

func (r *PgxInvestmentRepository) OpenPosition(ctx context.Context, inv domain.Investment, debit domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelInvestment(inv)
	query := `
		INSERT INTO investments (` + investmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err = tx.Exec(ctx, query,
		m.InvestmentID,
		m.UserID,
		m.ProductID,
		m.Name,
		m.Amount,
		m.ReturnRate,
		m.Risk,
		m.StartDate,
	)
	if err != nil {
		return fmt.Errorf("failed to open investment position: %w", err)
	}
	if err := insertTransaction(ctx, tx, debit); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// ClosePosition deletes the row first; a concurrent withdrawal of the same position sees zero rows and fails.
func (r *PgxInvestmentRepository) ClosePosition(ctx context.Context, investmentID string, credit domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	cmdTag, err := tx.Exec(ctx, `DELETE FROM investments WHERE investment_id = $1;`, investmentID)
	if err != nil {
		return fmt.Errorf("failed to close investment %s: %w", investmentID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("investment %s: %w", investmentID, apperrors.ErrNotFound)
	}
	if err := insertTransaction(ctx, tx, credit); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}
