package domain_test

import (
	"testing"

	"github.com/SscSPs/lifefin_backend/internal/apperrors"
	"github.com/SscSPs/lifefin_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLoanStatus_CanTransitionTo(t *testing.T) {
	all := []domain.LoanStatus{domain.LoanPending, domain.LoanApproved, domain.LoanRejected, domain.LoanDisbursed}
	allowed := map[domain.LoanStatus]map[domain.LoanStatus]bool{
		domain.LoanPending:  {domain.LoanApproved: true, domain.LoanRejected: true},
		domain.LoanApproved: {domain.LoanDisbursed: true},
	}

	for _, from := range all {
		for _, to := range all {
			assert.Equal(t, allowed[from][to], from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestLoanStatus_IsTerminal(t *testing.T) {
	assert.False(t, domain.LoanPending.IsTerminal())
	assert.False(t, domain.LoanApproved.IsTerminal())
	assert.True(t, domain.LoanRejected.IsTerminal())
	assert.True(t, domain.LoanDisbursed.IsTerminal())
}

func TestLoan_CheckTransition(t *testing.T) {
	loan := domain.Loan{LoanID: "loan_1", Status: domain.LoanRejected}

	err := loan.CheckTransition(domain.LoanPending)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
	assert.Contains(t, err.Error(), "Rejected")

	loan.Status = domain.LoanApproved
	assert.NoError(t, loan.CheckTransition(domain.LoanDisbursed))
}

func TestLoan_Validate(t *testing.T) {
	loan := domain.Loan{Amount: decimal.NewFromInt(5_000_000), Reason: "Tambah stok"}
	assert.NoError(t, loan.Validate())

	loan.Reason = ""
	assert.ErrorIs(t, loan.Validate(), apperrors.ErrValidation)

	loan.Reason = "Tambah stok"
	loan.Amount = decimal.NewFromInt(-1)
	assert.ErrorIs(t, loan.Validate(), apperrors.ErrValidation)
}
