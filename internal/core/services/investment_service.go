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
	"github.com/SscSPs/lifefin_backend/internal/core/scoring"
	"github.com/SscSPs/lifefin_backend/internal/dto"
	"github.com/SscSPs/lifefin_backend/internal/utils"
	"github.com/google/uuid"
)

type investmentService struct {
	BaseService
	investmentRepo portsrepo.InvestmentRepositoryFacade
	simulator      *scoring.Simulator
}

// NewInvestmentService creates the investment service. simulator prices every withdrawal.
func NewInvestmentService(investmentRepo portsrepo.InvestmentRepositoryFacade, simulator *scoring.Simulator) portssvc.InvestmentSvcFacade {
	return &investmentService{investmentRepo: investmentRepo, simulator: simulator}
}

var _ portssvc.InvestmentSvcFacade = (*investmentService)(nil)

func (s *investmentService) ListProducts(ctx context.Context, params dto.ListProductsParams) []domain.InvestmentProduct {
	products := domain.InvestmentProducts()
	if params.Risk == "" {
		return products
	}
	filtered := make([]domain.InvestmentProduct, 0, len(products))
	for _, p := range products {
		if p.Risk == domain.RiskTier(params.Risk) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

func (s *investmentService) ListInvestments(ctx context.Context, userID string) ([]domain.Investment, error) {
	investments, err := s.investmentRepo.ListInvestmentsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list investments", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list investments in service: %w", err)
	}
	if investments == nil {
		return []domain.Investment{}, nil
	}
	return investments, nil
}

func (s *investmentService) BuyInvestment(ctx context.Context, userID string, req dto.BuyInvestmentRequest) (*domain.Investment, error) {
	product, ok := domain.FindInvestmentProduct(req.ProductID)
	if !ok {
		return nil, apperrors.NewValidationError("productID", "unknown investment product")
	}
	if err := domain.ValidateRupiahAmount("amount", req.Amount); err != nil {
		return nil, err
	}
	if req.Amount.GreaterThan(domain.MaxInvestmentAmount) {
		return nil, apperrors.NewValidationError("amount", "must not exceed "+utils.FormatRupiah(domain.MaxInvestmentAmount))
	}
	if req.Amount.LessThan(product.MinAmount) {
		return nil, apperrors.NewValidationError("amount", "must be at least "+utils.FormatRupiah(product.MinAmount)+" for "+product.Name)
	}

	now := time.Now()
	inv := domain.Investment{
		InvestmentID: uuid.NewString(),
		UserID:       userID,
		ProductID:    product.ProductID,
		Name:         product.Name,
		Amount:       req.Amount,
		ReturnRate:   product.ReturnRate,
		Risk:         product.Risk,
		StartDate:    now,
	}
	debit := bookEntry(userID, domain.Expense, domain.CategoryInvestmentPurchase, req.Amount, "Beli "+product.Name, now)

	if err := s.investmentRepo.OpenPosition(ctx, inv, debit); err != nil {
		s.LogError(ctx, err, "Failed to open investment position", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to buy investment: %w", err)
	}

	s.LogInfo(ctx, "Investment position opened",
		slog.String("investment_id", inv.InvestmentID),
		slog.String("product_id", product.ProductID))
	return &inv, nil
}

func (s *investmentService) WithdrawInvestment(ctx context.Context, userID string, investmentID string) (*domain.Withdrawal, error) {
	inv, err := s.investmentRepo.FindInvestmentByID(ctx, investmentID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find investment", slog.String("investment_id", investmentID))
		}
		return nil, err
	}
	if inv.UserID != userID {
		s.LogWarn(ctx, "Attempt to withdraw another merchant's investment",
			slog.String("investment_id", investmentID),
			slog.String("user_id", userID))
		return nil, fmt.Errorf("investment %s: %w", investmentID, apperrors.ErrNotFound)
	}

	outcome, err := s.simulator.Simulate(*inv)
	if err != nil {
		s.LogError(ctx, err, "Failed to simulate investment return", slog.String("investment_id", investmentID))
		return nil, err
	}

	// The book holds whole rupiah only.
	credit := bookEntry(userID, domain.Income, domain.CategoryInvestmentWithdrawal, outcome.TotalReturn.Round(0), "Cairkan "+inv.Name, time.Now())
	if err := credit.Validate(); err != nil {
		return nil, err
	}

	if err := s.investmentRepo.ClosePosition(ctx, investmentID, credit); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to close investment position", slog.String("investment_id", investmentID))
		}
		return nil, fmt.Errorf("failed to withdraw investment: %w", err)
	}

	s.LogInfo(ctx, "Investment withdrawn",
		slog.String("investment_id", investmentID),
		slog.String("actual_return_rate", outcome.ActualReturnRate.String()),
		slog.String("narrative", outcome.Narrative))
	return &domain.Withdrawal{Investment: *inv, Outcome: outcome, Transaction: credit}, nil
}
