package dto

import (
	"time"

	"github.com/SscSPs/lifefin_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateSavingsGoalRequest defines the data needed to open a savings goal.
type CreateSavingsGoalRequest struct {
	Name     string          `json:"name" binding:"required,max=128"`
	Target   decimal.Decimal `json:"target"`
	Deadline string          `json:"deadline" binding:"omitempty,datetime=2006-01-02"`
}

// DepositRequest carries the amount to move into a savings goal.
type DepositRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// SavingsGoalResponse defines the data returned for a savings goal.
type SavingsGoalResponse struct {
	GoalID   string          `json:"goalID"`
	Name     string          `json:"name"`
	Target   decimal.Decimal `json:"target"`
	Current  decimal.Decimal `json:"current"`
	Progress decimal.Decimal `json:"progress"`
	Deadline *time.Time      `json:"deadline,omitempty"`
}

// ToSavingsGoalResponse converts a domain.SavingsGoal to SavingsGoalResponse DTO.
func ToSavingsGoalResponse(g *domain.SavingsGoal) SavingsGoalResponse {
	return SavingsGoalResponse{
		GoalID:   g.GoalID,
		Name:     g.Name,
		Target:   g.Target,
		Current:  g.Current,
		Progress: g.Progress(),
		Deadline: g.Deadline,
	}
}

// ToSavingsGoalResponses converts a slice of domain.SavingsGoal.
func ToSavingsGoalResponses(goals []domain.SavingsGoal) []SavingsGoalResponse {
	responses := make([]SavingsGoalResponse, len(goals))
	for i := range goals {
		responses[i] = ToSavingsGoalResponse(&goals[i])
	}
	return responses
}
