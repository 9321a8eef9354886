package domain

import (
	"time"

	"github.com/SscSPs/lifefin_backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-day format used for transaction dates.
const DateLayout = "2006-01-02"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID Reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID Reference
}

// NewAuditFields stamps both created and last-updated fields with the same actor and time.
func NewAuditFields(userID string, now time.Time) AuditFields {
	return AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}
}

// MaxRupiahAmount is the largest amount accepted anywhere in the book (Rp 1 kuadriliun).
// Stored amounts are NUMERIC(20, 0), so sums of a few of these still fit.
var MaxRupiahAmount = decimal.New(1, 15)

// ValidateRupiahAmount checks that amount is a positive whole number of rupiah no larger than MaxRupiahAmount.
func ValidateRupiahAmount(field string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return apperrors.NewValidationError(field, "must be positive")
	}
	if !amount.IsInteger() {
		return apperrors.NewValidationError(field, "must be a whole rupiah amount")
	}
	if amount.GreaterThan(MaxRupiahAmount) {
		return apperrors.NewValidationError(field, "must not exceed "+MaxRupiahAmount.String())
	}
	return nil
}
