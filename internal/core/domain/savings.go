package domain

import (
	"strings"
	"time"

	"github.com/SscSPs/lifefin_backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// SavingsGoal is a merchant's named savings target. Current only grows through deposits.
type SavingsGoal struct {
	GoalID   string          `json:"goalID"`
	UserID   string          `json:"userID"`
	Name     string          `json:"name"`
	Target   decimal.Decimal `json:"target"`
	Current  decimal.Decimal `json:"current"`
	Deadline *time.Time      `json:"deadline,omitempty"`
	AuditFields
}

// Validate checks name, target and current.
func (g SavingsGoal) Validate() error {
	if strings.TrimSpace(g.Name) == "" {
		return apperrors.NewValidationError("name", "is required")
	}
	if err := ValidateRupiahAmount("target", g.Target); err != nil {
		return err
	}
	if g.Current.IsNegative() {
		return apperrors.NewValidationError("current", "must not be negative")
	}
	return nil
}

// Progress returns current/target as a percentage capped at 100.
func (g SavingsGoal) Progress() decimal.Decimal {
	if !g.Target.IsPositive() {
		return decimal.Zero
	}
	pct := g.Current.Mul(decimal.NewFromInt(100)).Div(g.Target).Round(2)
	return decimal.Min(pct, decimal.NewFromInt(100))
}
