package services

import (
	"context"

	"github.com/SscSPs/lifefin_backend/internal/core/domain"
	"github.com/SscSPs/lifefin_backend/internal/dto"
)

// LoanReaderSvc defines read operations for loans
type LoanReaderSvc interface {
	// ListMyLoans returns the caller's loans.
	ListMyLoans(ctx context.Context, userID string) ([]domain.Loan, error)

	// ListLoans returns all loans, optionally filtered by status.
	ListLoans(ctx context.Context, params dto.ListLoansParams) ([]domain.Loan, error)
}

// LoanWriterSvc defines the loan lifecycle operations
type LoanWriterSvc interface {
	// ApplyForLoan creates a Pending loan carrying the caller's current score.
	ApplyForLoan(ctx context.Context, userID string, req dto.ApplyLoanRequest) (*domain.Loan, error)

	// ApproveLoan moves a Pending loan to Approved.
	ApproveLoan(ctx context.Context, loanID string, adminID string) (*domain.Loan, error)

	// RejectLoan moves a Pending loan to Rejected.
	RejectLoan(ctx context.Context, loanID string, adminID string) (*domain.Loan, error)

	// DisburseLoan moves the caller's Approved loan to Disbursed and books the income.
	DisburseLoan(ctx context.Context, userID string, loanID string) (*domain.Loan, error)
}

// LoanSvcFacade combines all loan-related service interfaces
type LoanSvcFacade interface {
	LoanReaderSvc
	LoanWriterSvc
}
