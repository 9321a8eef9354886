package mapping

import (
	"github.com/SscSPs/lifefin_backend/internal/core/domain"
	"github.com/SscSPs/lifefin_backend/internal/models"
)

// ToModelInvestment converts a domain Investment to a model Investment
func ToModelInvestment(d domain.Investment) models.Investment {
	return models.Investment{
		InvestmentID: d.InvestmentID,
		UserID:       d.UserID,
		ProductID:    d.ProductID,
		Name:         d.Name,
		Amount:       d.Amount,
		ReturnRate:   d.ReturnRate,
		Risk:         string(d.Risk),
		StartDate:    d.StartDate,
	}
}

// ToDomainInvestment converts a model Investment to a domain Investment
func ToDomainInvestment(m models.Investment) domain.Investment {
	return domain.Investment{
		InvestmentID: m.InvestmentID,
		UserID:       m.UserID,
		ProductID:    m.ProductID,
		Name:         m.Name,
		Amount:       m.Amount,
		ReturnRate:   m.ReturnRate,
		Risk:         domain.RiskTier(m.Risk),
		StartDate:    m.StartDate,
	}
}

// ToDomainInvestmentSlice converts a slice of model Investments to domain Investments
func ToDomainInvestmentSlice(ms []models.Investment) []domain.Investment {
	ds := make([]domain.Investment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainInvestment(m)
	}
	return ds
}
