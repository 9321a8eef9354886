package dto

import (
	"time"

	"github.com/SscSPs/lifefin_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ApplyLoanRequest defines the data needed to apply for a loan.
type ApplyLoanRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Reason string          `json:"reason" binding:"required,max=255"`
}

// ListLoansParams filters the admin loan list.
type ListLoansParams struct {
	Status string `form:"status" binding:"omitempty,loanstatus"`
}

// LoanResponse defines the data returned for a loan.
type LoanResponse struct {
	LoanID        string          `json:"loanID"`
	UserID        string          `json:"userID"`
	UserName      string          `json:"userName"`
	Amount        decimal.Decimal `json:"amount"`
	Reason        string          `json:"reason"`
	Status        string          `json:"status"`
	UserScore     int             `json:"userScore"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ToLoanResponse converts a domain.Loan to LoanResponse DTO.
func ToLoanResponse(l *domain.Loan) LoanResponse {
	return LoanResponse{
		LoanID:        l.LoanID,
		UserID:        l.UserID,
		UserName:      l.UserName,
		Amount:        l.Amount,
		Reason:        l.Reason,
		Status:        string(l.Status),
		UserScore:     l.UserScore,
		CreatedAt:     l.CreatedAt,
		LastUpdatedAt: l.LastUpdatedAt,
	}
}

// ToLoanResponses converts a slice of domain.Loan.
func ToLoanResponses(loans []domain.Loan) []LoanResponse {
	responses := make([]LoanResponse, len(loans))
	for i := range loans {
		responses[i] = ToLoanResponse(&loans[i])
	}
	return responses
}
