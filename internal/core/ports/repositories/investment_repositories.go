package repositories

import (
	"context"

	"github.com/SscSPs/lifefin_backend/internal/core/domain"
)

// InvestmentReader defines read operations for investment positions
type InvestmentReader interface {
	// FindInvestmentByID retrieves a specific open position.
	FindInvestmentByID(ctx context.Context, investmentID string) (*domain.Investment, error)

	// ListInvestmentsByUser retrieves a merchant's open positions, newest first.
	ListInvestmentsByUser(ctx context.Context, userID string) ([]domain.Investment, error)
}

// InvestmentWriter defines write operations for investment positions
type InvestmentWriter interface {
	// OpenPosition stores inv and records debit in the same database transaction.
	OpenPosition(ctx context.Context, inv domain.Investment, debit domain.Transaction) error

	// ClosePosition removes the position and records credit in the same database transaction.
	// A position that is already gone yields apperrors.ErrNotFound.
	ClosePosition(ctx context.Context, investmentID string, credit domain.Transaction) error
}

// InvestmentRepositoryFacade combines all investment-related repository interfaces
type InvestmentRepositoryFacade interface {
	InvestmentReader
	InvestmentWriter
}
