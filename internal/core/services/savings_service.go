package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/lifefin_backend/internal/apperrors"
	"github.com/SscSPs/lifefin_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/lifefin_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/lifefin_backend/internal/core/ports/services"
	"github.com/SscSPs/lifefin_backend/internal/dto"
	"github.com/SscSPs/lifefin_backend/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type savingsService struct {
	BaseService
	savingsRepo portsrepo.SavingsRepositoryFacade
}

// NewSavingsService creates the savings goal service.
func NewSavingsService(savingsRepo portsrepo.SavingsRepositoryFacade) portssvc.SavingsSvcFacade {
	return &savingsService{savingsRepo: savingsRepo}
}

var _ portssvc.SavingsSvcFacade = (*savingsService)(nil)

func (s *savingsService) CreateGoal(ctx context.Context, userID string, req dto.CreateSavingsGoalRequest) (*domain.SavingsGoal, error) {
	var deadline *time.Time
	if req.Deadline != "" {
		d, err := time.Parse(domain.DateLayout, req.Deadline)
		if err != nil {
			return nil, apperrors.NewValidationError("deadline", "must be formatted as YYYY-MM-DD")
		}
		deadline = &d
	}

	goal := domain.SavingsGoal{
		GoalID:      uuid.NewString(),
		UserID:      userID,
		Name:        strings.TrimSpace(req.Name),
		Target:      req.Target,
		Current:     decimal.Zero,
		Deadline:    deadline,
		AuditFields: domain.NewAuditFields(userID, time.Now()),
	}
	if err := goal.Validate(); err != nil {
		return nil, err
	}

	if err := s.savingsRepo.SaveGoal(ctx, goal); err != nil {
		s.LogError(ctx, err, "Failed to save savings goal", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to create savings goal in service: %w", err)
	}

	s.LogInfo(ctx, "Savings goal created", slog.String("goal_id", goal.GoalID))
	return &goal, nil
}

func (s *savingsService) ListGoals(ctx context.Context, userID string) ([]domain.SavingsGoal, error) {
	goals, err := s.savingsRepo.ListGoalsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list savings goals", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list savings goals in service: %w", err)
	}
	if goals == nil {
		return []domain.SavingsGoal{}, nil
	}
	return goals, nil
}

func (s *savingsService) Deposit(ctx context.Context, userID string, goalID string, req dto.DepositRequest) (*domain.SavingsGoal, error) {
	if err := domain.ValidateRupiahAmount("amount", req.Amount); err != nil {
		return nil, err
	}

	goal, err := s.savingsRepo.FindGoalByID(ctx, goalID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find savings goal", slog.String("goal_id", goalID))
		}
		return nil, err
	}
	if goal.UserID != userID {
		s.LogWarn(ctx, "Attempt to deposit into another merchant's goal",
			slog.String("goal_id", goalID),
			slog.String("user_id", userID))
		return nil, fmt.Errorf("savings goal %s: %w", goalID, apperrors.ErrNotFound)
	}
	if goal.Current.Add(req.Amount).GreaterThan(domain.MaxRupiahAmount) {
		return nil, apperrors.NewValidationError("amount", "would push the goal balance past "+utils.FormatRupiah(domain.MaxRupiahAmount))
	}

	now := time.Now()
	debit := bookEntry(userID, domain.Expense, domain.CategorySavingsDeposit, req.Amount, "Setor ke "+goal.Name, now)

	updated, err := s.savingsRepo.ApplyDeposit(ctx, goalID, req.Amount, debit, userID, now)
	if err != nil {
		s.LogError(ctx, err, "Failed to apply deposit", slog.String("goal_id", goalID))
		return nil, fmt.Errorf("failed to deposit into savings goal: %w", err)
	}

	s.LogInfo(ctx, "Deposit applied",
		slog.String("goal_id", goalID),
		slog.String("amount", req.Amount.String()))
	return updated, nil
}
