package domain

import (
	"time"

	"github.com/SscSPs/lifefin_backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// RiskTier is the risk label of an investment product.
type RiskTier string

const (
	RiskLow    RiskTier = "Rendah"
	RiskMedium RiskTier = "Sedang"
	RiskHigh   RiskTier = "Tinggi"
)

// IsValid reports whether r is a known tier.
func (r RiskTier) IsValid() bool {
	switch r {
	case RiskLow, RiskMedium, RiskHigh:
		return true
	}
	return false
}

// InvestmentProduct is an entry in the product catalog.
// MaxInvestmentAmount leaves room for the simulated payoff to stay within MaxRupiahAmount
// when the position is credited back.
var MaxInvestmentAmount = MaxRupiahAmount.Div(decimal.NewFromInt(10))

type InvestmentProduct struct {
	ProductID  string          `json:"productID"`
	Name       string          `json:"name"`
	ReturnRate decimal.Decimal `json:"returnRate"` // nominal % per year
	Duration   string          `json:"duration"`
	MinAmount  decimal.Decimal `json:"minAmount"`
	Risk       RiskTier        `json:"risk"`
}

var investmentProducts = []InvestmentProduct{
	{ProductID: "1", Name: "Reksadana Pasar Uang", ReturnRate: decimal.NewFromInt(5), Duration: "1 Tahun", MinAmount: decimal.NewFromInt(100_000), Risk: RiskLow},
	{ProductID: "2", Name: "Obligasi UMKM", ReturnRate: decimal.NewFromInt(8), Duration: "3 Tahun", MinAmount: decimal.NewFromInt(1_000_000), Risk: RiskMedium},
	{ProductID: "3", Name: "Saham Blue Chip", ReturnRate: decimal.NewFromInt(12), Duration: "5 Tahun", MinAmount: decimal.NewFromInt(5_000_000), Risk: RiskHigh},
}

// InvestmentProducts returns a copy of the product catalog.
func InvestmentProducts() []InvestmentProduct {
	out := make([]InvestmentProduct, len(investmentProducts))
	copy(out, investmentProducts)
	return out
}

// FindInvestmentProduct looks up a catalog entry by ID.
func FindInvestmentProduct(productID string) (InvestmentProduct, bool) {
	for _, p := range investmentProducts {
		if p.ProductID == productID {
			return p, true
		}
	}
	return InvestmentProduct{}, false
}

// Investment is an open position a merchant bought from the catalog.
type Investment struct {
	InvestmentID string          `json:"investmentID"`
	UserID       string          `json:"userID"`
	ProductID    string          `json:"productID"`
	Name         string          `json:"name"`
	Amount       decimal.Decimal `json:"amount"`     // principal
	ReturnRate   decimal.Decimal `json:"returnRate"` // nominal % per year
	Risk         RiskTier        `json:"risk"`
	StartDate    time.Time       `json:"startDate"`
}

// Validate checks the fields the return simulation relies on.
func (i Investment) Validate() error {
	if err := ValidateRupiahAmount("amount", i.Amount); err != nil {
		return err
	}
	if !i.Risk.IsValid() {
		return apperrors.NewValidationError("risk", "must be Rendah, Sedang or Tinggi")
	}
	return nil
}

// InvestmentOutcome is the simulated payoff of liquidating a position.
type InvestmentOutcome struct {
	ActualReturnRate decimal.Decimal `json:"actualReturnRate"`
	Profit           decimal.Decimal `json:"profit"`
	TotalReturn      decimal.Decimal `json:"totalReturn"`
	Narrative        string          `json:"narrative"`
}

// Withdrawal is the result of closing a position.
type Withdrawal struct {
	Investment  Investment        `json:"investment"`
	Outcome     InvestmentOutcome `json:"outcome"`
	Transaction Transaction       `json:"transaction"`
}
