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

type PgxLoanRepository struct {
	BaseRepository
}

func newPgxLoanRepository(pool *pgxpool.Pool) *PgxLoanRepository {
	return &PgxLoanRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LoanRepositoryFacade = (*PgxLoanRepository)(nil)

const loanColumns = `loan_id, user_id, user_name, amount, reason, status, user_score, created_at, created_by, last_updated_at, last_updated_by`

func scanLoan(row pgx.Row) (models.Loan, error) {
	var m models.Loan
	err := row.Scan(
		&m.LoanID,
		&m.UserID,
		&m.UserName,
		&m.Amount,
		&m.Reason,
		&m.Status,
		&m.UserScore,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxLoanRepository) SaveLoan(ctx context.Context, loan domain.Loan) error {
	m := mapping.ToModelLoan(loan)
	query := `
		INSERT INTO loans (` + loanColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.LoanID,
		m.UserID,
		m.UserName,
		m.Amount,
		m.Reason,
		m.Status,
		m.UserScore,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save loan: %w", err)
	}
	return nil
}

func (r *PgxLoanRepository) FindLoanByID(ctx context.Context, loanID string) (*domain.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans WHERE loan_id = $1;`
	m, err := scanLoan(r.Pool.QueryRow(ctx, query, loanID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find loan %s: %w", loanID, err)
	}
	l := mapping.ToDomainLoan(m)
	return &l, nil
}

func (r *PgxLoanRepository) ListLoansByUser(ctx context.Context, userID string) ([]domain.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans WHERE user_id = $1 ORDER BY created_at DESC, loan_id DESC;`
	return r.queryLoans(ctx, query, userID)
}

func (r *PgxLoanRepository) ListLoans(ctx context.Context, status *domain.LoanStatus) ([]domain.Loan, error) {
	if status != nil {
		query := `SELECT ` + loanColumns + ` FROM loans WHERE status = $1 ORDER BY created_at DESC, loan_id DESC;`
		return r.queryLoans(ctx, query, string(*status))
	}
	query := `SELECT ` + loanColumns + ` FROM loans ORDER BY created_at DESC, loan_id DESC;`
	return r.queryLoans(ctx, query)
}

func (r *PgxLoanRepository) CountLoansByStatus(ctx context.Context, status domain.LoanStatus) (int, error) {
	var count int
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM loans WHERE status = $1;`, string(status)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s loans: %w", status, err)
	}
	return count, nil
}

func (r *PgxLoanRepository) queryLoans(ctx context.Context, query string, args ...any) ([]domain.Loan, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query loans: %w", err)
	}
	defer rows.Close()

	modelLoans := []models.Loan{}
	for rows.Next() {
		m, scanErr := scanLoan(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan loan row: %w", scanErr)
		}
		modelLoans = append(modelLoans, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating loan rows: %w", err)
	}
	return mapping.ToDomainLoanSlice(modelLoans), nil
}

// UpdateLoanStatus is a compare-and-set on status, so two admins deciding the same loan cannot both win.
func (r *PgxLoanRepository) UpdateLoanStatus(ctx context.Context, loanID string, from, to domain.LoanStatus, updatedBy string, updatedAt time.Time) error {
	return transitionLoan(ctx, r.Pool, loanID, from, to, updatedBy, updatedAt)
}

// DisburseLoan moves an Approved loan to Disbursed and books credit in one database transaction.
func (r *PgxLoanRepository) DisburseLoan(ctx context.Context, loanID string, credit domain.Transaction, updatedBy string, updatedAt time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := transitionLoan(ctx, tx, loanID, domain.LoanApproved, domain.LoanDisbursed, updatedBy, updatedAt); err != nil {
		return err
	}
	if err := insertTransaction(ctx, tx, credit); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

func transitionLoan(ctx context.Context, q querier, loanID string, from, to domain.LoanStatus, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE loans
		SET status = $1, last_updated_at = $2, last_updated_by = $3
		WHERE loan_id = $4 AND status = $5;
	`
	cmdTag, err := q.Exec(ctx, query, string(to), updatedAt, updatedBy, loanID, string(from))
	if err != nil {
		return fmt.Errorf("failed to update loan %s status: %w", loanID, err)
	}
	if cmdTag.RowsAffected() > 0 {
		return nil
	}

	// Nothing matched: either the loan is gone or its status moved on.
	var current string
	err = q.QueryRow(ctx, `SELECT status FROM loans WHERE loan_id = $1;`, loanID).Scan(&current)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to read loan %s status: %w", loanID, err)
	}
	return fmt.Errorf("%w: loan %s is %s, cannot become %s", apperrors.ErrInvalidTransition, loanID, current, to)
}
