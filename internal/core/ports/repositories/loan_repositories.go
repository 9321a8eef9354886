package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/lifefin_backend/internal/core/domain"
)

// LoanReader defines read operations for loans
type LoanReader interface {
	// FindLoanByID retrieves a specific loan.
	FindLoanByID(ctx context.Context, loanID string) (*domain.Loan, error)

	// ListLoansByUser retrieves a merchant's loans, newest first.
	ListLoansByUser(ctx context.Context, userID string) ([]domain.Loan, error)

	// ListLoans retrieves all loans, optionally filtered by status, newest first.
	ListLoans(ctx context.Context, status *domain.LoanStatus) ([]domain.Loan, error)

	// CountLoansByStatus counts loans in the given status.
	CountLoansByStatus(ctx context.Context, status domain.LoanStatus) (int, error)
}

// LoanWriter defines write operations for loans
type LoanWriter interface {
	// SaveLoan persists a new loan application.
	SaveLoan(ctx context.Context, loan domain.Loan) error

	// UpdateLoanStatus moves a loan from one status to another. If the loan is no longer in
	// from, apperrors.ErrInvalidTransition is returned and nothing changes.
	UpdateLoanStatus(ctx context.Context, loanID string, from, to domain.LoanStatus, updatedBy string, updatedAt time.Time) error

	// DisburseLoan moves an Approved loan to Disbursed and records credit in the same database transaction.
	DisburseLoan(ctx context.Context, loanID string, credit domain.Transaction, updatedBy string, updatedAt time.Time) error
}

// LoanRepositoryFacade combines all loan-related repository interfaces
type LoanRepositoryFacade interface {
	LoanReader
	LoanWriter
}
