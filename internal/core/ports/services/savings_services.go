package services

import (
	"context"

	"github.com/SscSPs/lifefin_backend/internal/core/domain"
	"github.com/SscSPs/lifefin_backend/internal/dto"
)

// SavingsReaderSvc defines read operations for savings goals
type SavingsReaderSvc interface {
	// ListGoals returns the caller's savings goals.
	ListGoals(ctx context.Context, userID string) ([]domain.SavingsGoal, error)
}

// SavingsWriterSvc defines write operations for savings goals
type SavingsWriterSvc interface {
	// CreateGoal opens a savings goal with nothing saved yet.
	CreateGoal(ctx context.Context, userID string, req dto.CreateSavingsGoalRequest) (*domain.SavingsGoal, error)

	// Deposit moves money into a goal and books the matching expense.
	Deposit(ctx context.Context, userID string, goalID string, req dto.DepositRequest) (*domain.SavingsGoal, error)
}

// SavingsSvcFacade combines all savings-related service interfaces
type SavingsSvcFacade interface {
	SavingsReaderSvc
	SavingsWriterSvc
}
