package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SavingsGoal represents a row of the savings_goals table.
type SavingsGoal struct {
	GoalID   string          `json:"goalID" db:"goal_id"`
	UserID   string          `json:"userID" db:"user_id"`
	Name     string          `json:"name" db:"name"`
	Target   decimal.Decimal `json:"target" db:"target"`
	Current  decimal.Decimal `json:"current" db:"current_amount"`
	Deadline *time.Time      `json:"deadline,omitempty" db:"deadline"` // Nullable
	AuditFields
}
