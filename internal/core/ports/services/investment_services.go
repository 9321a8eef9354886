package services

import (
	"context"

	"github.com/SscSPs/lifefin_backend/internal/core/domain"
	"github.com/SscSPs/lifefin_backend/internal/dto"
)

// InvestmentReaderSvc defines read operations for the catalog and positions
type InvestmentReaderSvc interface {
	// ListProducts returns the catalog, optionally filtered by risk tier.
	ListProducts(ctx context.Context, params dto.ListProductsParams) []domain.InvestmentProduct

	// ListInvestments returns the caller's open positions.
	ListInvestments(ctx context.Context, userID string) ([]domain.Investment, error)
}

// InvestmentWriterSvc defines position operations
type InvestmentWriterSvc interface {
	// BuyInvestment opens a position and books the purchase as an expense.
	BuyInvestment(ctx context.Context, userID string, req dto.BuyInvestmentRequest) (*domain.Investment, error)

	// WithdrawInvestment simulates the payoff, books it as income and closes the position.
	WithdrawInvestment(ctx context.Context, userID string, investmentID string) (*domain.Withdrawal, error)
}

// InvestmentSvcFacade combines all investment-related service interfaces
type InvestmentSvcFacade interface {
	InvestmentReaderSvc
	InvestmentWriterSvc
}
