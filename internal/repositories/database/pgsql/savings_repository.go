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
	"github.com/shopspring/decimal"
)

type PgxSavingsRepository struct {
	BaseRepository
}

func newPgxSavingsRepository(pool *pgxpool.Pool) *PgxSavingsRepository {
	return &PgxSavingsRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SavingsRepositoryFacade = (*PgxSavingsRepository)(nil)

const savingsColumns = `goal_id, user_id, name, target, current_amount, deadline, created_at, created_by, last_updated_at, last_updated_by`

func scanSavingsGoal(row pgx.Row) (models.SavingsGoal, error) {
	var m models.SavingsGoal
	err := row.Scan(
		&m.GoalID,
		&m.UserID,
		&m.Name,
		&m.Target,
		&m.Current,
		&m.Deadline,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxSavingsRepository) SaveGoal(ctx context.Context, goal domain.SavingsGoal) error {
	m := mapping.ToModelSavingsGoal(goal)
	query := `
		INSERT INTO savings_goals (` + savingsColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.GoalID,
		m.UserID,
		m.Name,
		m.Target,
		m.Current,
		m.Deadline,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save savings goal: %w", err)
	}
	return nil
}

func (r *PgxSavingsRepository) FindGoalByID(ctx context.Context, goalID string) (*domain.SavingsGoal, error) {
	query := `SELECT ` + savingsColumns + ` FROM savings_goals WHERE goal_id = $1;`
	m, err := scanSavingsGoal(r.Pool.QueryRow(ctx, query, goalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find savings goal %s: %w", goalID, err)
	}
	g := mapping.ToDomainSavingsGoal(m)
	return &g, nil
}

func (r *PgxSavingsRepository) ListGoalsByUser(ctx context.Context, userID string) ([]domain.SavingsGoal, error) {
	query := `SELECT ` + savingsColumns + ` FROM savings_goals WHERE user_id = $1 ORDER BY created_at ASC, goal_id ASC;`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query savings goals for user %s: %w", userID, err)
	}
	defer rows.Close()

	modelGoals := []models.SavingsGoal{}
	for rows.Next() {
		m, scanErr := scanSavingsGoal(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan savings goal row: %w", scanErr)
		}
		modelGoals = append(modelGoals, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating savings goal rows: %w", err)
	}
	return mapping.ToDomainSavingsGoalSlice(modelGoals), nil
}

// ApplyDeposit increments the goal in SQL so concurrent deposits never overwrite each other.
func (r *PgxSavingsRepository) ApplyDeposit(ctx context.Context, goalID string, amount decimal.Decimal, debit domain.Transaction, updatedBy string, updatedAt time.Time) (*domain.SavingsGoal, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE savings_goals
		SET current_amount = current_amount + $1, last_updated_at = $2, last_updated_by = $3
		WHERE goal_id = $4
		RETURNING ` + savingsColumns + `;
	`
	m, err := scanSavingsGoal(tx.QueryRow(ctx, query, amount, updatedAt, updatedBy, goalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to apply deposit to goal %s: %w", goalID, err)
	}

	if err := insertTransaction(ctx, tx, debit); err != nil {
		return nil, err
	}
	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	g := mapping.ToDomainSavingsGoal(m)
	return &g, nil
}
