package mapping

import (
	"github.com/SscSPs/lifefin_backend/internal/core/domain"
	"github.com/SscSPs/lifefin_backend/internal/models"
)

// ToModelLoan converts a domain Loan to a model Loan
func ToModelLoan(d domain.Loan) models.Loan {
	return models.Loan{
		LoanID:      d.LoanID,
		UserID:      d.UserID,
		UserName:    d.UserName,
		Amount:      d.Amount,
		Reason:      d.Reason,
		Status:      string(d.Status),
		UserScore:   d.UserScore,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLoan converts a model Loan to a domain Loan
func ToDomainLoan(m models.Loan) domain.Loan {
	return domain.Loan{
		LoanID:      m.LoanID,
		UserID:      m.UserID,
		UserName:    m.UserName,
		Amount:      m.Amount,
		Reason:      m.Reason,
		Status:      domain.LoanStatus(m.Status),
		UserScore:   m.UserScore,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainLoanSlice converts a slice of model Loans to domain Loans
func ToDomainLoanSlice(ms []models.Loan) []domain.Loan {
	ds := make([]domain.Loan, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLoan(m)
	}
	return ds
}
