package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/lifefin_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SavingsReader defines read operations for savings goals
type SavingsReader interface {
	// FindGoalByID retrieves a specific savings goal.
	FindGoalByID(ctx context.Context, goalID string) (*domain.SavingsGoal, error)

	// ListGoalsByUser retrieves all savings goals of a merchant.
	ListGoalsByUser(ctx context.Context, userID string) ([]domain.SavingsGoal, error)
}

// SavingsWriter defines write operations for savings goals
type SavingsWriter interface {
	// SaveGoal persists a new savings goal.
	SaveGoal(ctx context.Context, goal domain.SavingsGoal) error

	// ApplyDeposit adds amount to the goal and records debit in the same database transaction.
	// It returns the goal as stored after the deposit.
	ApplyDeposit(ctx context.Context, goalID string, amount decimal.Decimal, debit domain.Transaction, updatedBy string, updatedAt time.Time) (*domain.SavingsGoal, error)
}

// SavingsRepositoryFacade combines all savings-related repository interfaces
type SavingsRepositoryFacade interface {
	SavingsReader
	SavingsWriter
}
