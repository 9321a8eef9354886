package domain

import (
	"github.com/SscSPs/lifefin_backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Upper bounds on ScoreConfig. A weight above its cap could never be distinguished from the cap itself.
const (
	MaxScoreBase         = 850
	MaxScoreTrxWeight    = 200
	MaxScoreSavingWeight = 150
)

// ScoreConfig holds the admin-tunable parameters of the credit score.
type ScoreConfig struct {
	Base         int `json:"base"`
	TrxWeight    int `json:"trxWeight"`
	SavingWeight int `json:"savingWeight"`
}

// DefaultScoreConfig returns {300, 1, 50}.
func DefaultScoreConfig() ScoreConfig {
	return ScoreConfig{Base: 300, TrxWeight: 1, SavingWeight: 50}
}

// Validate returns a ConfigurationError for any non-positive or out-of-range field.
func (c ScoreConfig) Validate() error {
	if c.Base <= 0 || c.Base > MaxScoreBase {
		return apperrors.NewConfigurationError("base", "must be between 1 and 850")
	}
	if c.TrxWeight <= 0 || c.TrxWeight > MaxScoreTrxWeight {
		return apperrors.NewConfigurationError("trxWeight", "must be between 1 and 200")
	}
	if c.SavingWeight <= 0 || c.SavingWeight > MaxScoreSavingWeight {
		return apperrors.NewConfigurationError("savingWeight", "must be between 1 and 150")
	}
	return nil
}

// SimulationConfig holds the thresholds of the investment return simulation.
type SimulationConfig struct {
	HighLossBelow         float64         `json:"highLossBelow"`
	HighBoostAbove        float64         `json:"highBoostAbove"`
	HighBoostFactor       decimal.Decimal `json:"highBoostFactor"`
	HighLossRate          decimal.Decimal `json:"highLossRate"`
	MediumCorrectionBelow float64         `json:"mediumCorrectionBelow"`
	MediumCorrectionRate  decimal.Decimal `json:"mediumCorrectionRate"`
}

// DefaultSimulationConfig returns the contractual thresholds 0.30 / 0.80 / x1.5 / -10% and 0.10 / -2%.
func DefaultSimulationConfig() SimulationConfig {
	return SimulationConfig{
		HighLossBelow:         0.30,
		HighBoostAbove:        0.80,
		HighBoostFactor:       decimal.NewFromFloat(1.5),
		HighLossRate:          decimal.NewFromInt(-10),
		MediumCorrectionBelow: 0.10,
		MediumCorrectionRate:  decimal.NewFromInt(-2),
	}
}

// Validate rejects thresholds outside [0,1], crossed high-risk thresholds and rates that would wipe out the principal.
func (c SimulationConfig) Validate() error {
	minusHundred := decimal.NewFromInt(-100)
	switch {
	case c.HighLossBelow < 0 || c.HighLossBelow > 1:
		return apperrors.NewConfigurationError("highLossBelow", "must be within [0, 1]")
	case c.HighBoostAbove < 0 || c.HighBoostAbove > 1:
		return apperrors.NewConfigurationError("highBoostAbove", "must be within [0, 1]")
	case c.HighLossBelow > c.HighBoostAbove:
		return apperrors.NewConfigurationError("highLossBelow", "must not exceed highBoostAbove")
	case c.MediumCorrectionBelow < 0 || c.MediumCorrectionBelow > 1:
		return apperrors.NewConfigurationError("mediumCorrectionBelow", "must be within [0, 1]")
	case !c.HighBoostFactor.IsPositive():
		return apperrors.NewConfigurationError("highBoostFactor", "must be positive")
	case c.HighLossRate.LessThanOrEqual(minusHundred):
		return apperrors.NewConfigurationError("highLossRate", "must be greater than -100")
	case c.MediumCorrectionRate.LessThanOrEqual(minusHundred):
		return apperrors.NewConfigurationError("mediumCorrectionRate", "must be greater than -100")
	}
	return nil
}

// ScoreReport is a merchant's score together with the inputs that produced it.
type ScoreReport struct {
	Score         int             `json:"score"`
	LoanCeiling   decimal.Decimal `json:"loanCeiling"`
	TotalIncome   decimal.Decimal `json:"totalIncome"`
	TotalExpense  decimal.Decimal `json:"totalExpense"`
	Profit        decimal.Decimal `json:"profit"`
	SavingsGoals  int             `json:"savingsGoals"`
	VolumePoints  int             `json:"volumePoints"`
	ProfitPoints  int             `json:"profitPoints"`
	SavingsPoints int             `json:"savingsPoints"`
	Config        ScoreConfig     `json:"config"`
}

// DailyIncome is the income booked on one date.
type DailyIncome struct {
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

// DashboardSummary is the merchant home screen.
type DashboardSummary struct {
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	Profit       decimal.Decimal `json:"profit"`
	TotalSavings decimal.Decimal `json:"totalSavings"`
	Score        int             `json:"score"`
	LoanCeiling  decimal.Decimal `json:"loanCeiling"`
	IncomeTrend  []DailyIncome   `json:"incomeTrend"`
}

// AdminDashboard is the admin home screen.
type AdminDashboard struct {
	PendingLoans int `json:"pendingLoans"`
}
