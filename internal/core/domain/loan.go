package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/lifefin_backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// LoanStatus is a position in the loan lifecycle.
type LoanStatus string

const (
	LoanPending   LoanStatus = "Pending"
	LoanApproved  LoanStatus = "Approved"
	LoanRejected  LoanStatus = "Rejected"
	LoanDisbursed LoanStatus = "Disbursed"
)

var loanTransitions = map[LoanStatus][]LoanStatus{
	LoanPending:  {LoanApproved, LoanRejected},
	LoanApproved: {LoanDisbursed},
}

// IsValid reports whether s is a known status.
func (s LoanStatus) IsValid() bool {
	switch s {
	case LoanPending, LoanApproved, LoanRejected, LoanDisbursed:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is possible from s.
func (s LoanStatus) IsTerminal() bool {
	return len(loanTransitions[s]) == 0
}

// CanTransitionTo reports whether the lifecycle allows moving from s to next.
func (s LoanStatus) CanTransitionTo(next LoanStatus) bool {
	for _, allowed := range loanTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Loan is a merchant's capital request. UserScore is the credit score at application time
// and never changes afterwards.
type Loan struct {
	LoanID    string          `json:"loanID"`
	UserID    string          `json:"userID"`
	UserName  string          `json:"userName"`
	Amount    decimal.Decimal `json:"amount"`
	Reason    string          `json:"reason"`
	Status    LoanStatus      `json:"status"`
	UserScore int             `json:"userScore"`
	AuditFields
}

// Validate checks amount and reason.
func (l Loan) Validate() error {
	if err := ValidateRupiahAmount("amount", l.Amount); err != nil {
		return err
	}
	if strings.TrimSpace(l.Reason) == "" {
		return apperrors.NewValidationError("reason", "is required")
	}
	return nil
}

// CheckTransition returns ErrInvalidTransition when the loan cannot move to next.
func (l Loan) CheckTransition(next LoanStatus) error {
	if !l.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: loan %s is %s, cannot become %s", apperrors.ErrInvalidTransition, l.LoanID, l.Status, next)
	}
	return nil
}
