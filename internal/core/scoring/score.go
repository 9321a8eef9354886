// Package scoring derives a merchant's credit score, loan ceiling and simulated investment
// payoffs from an explicit history snapshot. Every function here is pure: no I/O, no shared
// state, no caching.
package scoring

import (
	"fmt"

	"github.com/SscSPs/lifefin_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

const (
	// IncomeUnit is the income needed for one volume step.
	IncomeUnit = 100_000
	// MaxVolumePoints caps the transaction-volume contribution.
	MaxVolumePoints = 200
	// ProfitBonus is added once when profit is strictly positive.
	ProfitBonus = 100
	// MaxSavingsPoints caps the savings-discipline contribution.
	MaxSavingsPoints = 150
	// MaxScore is the absolute upper bound of a score.
	MaxScore = 850
)

// Breakdown is a score along with the totals and per-component points behind it.
type Breakdown struct {
	TotalIncome   decimal.Decimal
	TotalExpense  decimal.Decimal
	Profit        decimal.Decimal
	SavingsGoals  int
	VolumePoints  int
	ProfitPoints  int
	SavingsPoints int
	Score         int
}

// ComputeScore returns the credit score for the given history.
func ComputeScore(transactions []domain.Transaction, savings []domain.SavingsGoal, cfg domain.ScoreConfig) (int, error) {
	b, err := Evaluate(transactions, savings, cfg)
	if err != nil {
		return 0, err
	}
	return b.Score, nil
}

// Evaluate computes the score and its components. It fails with a ConfigurationError for an
// out-of-range cfg and with a ValidationError for a malformed transaction.
func Evaluate(transactions []domain.Transaction, savings []domain.SavingsGoal, cfg domain.ScoreConfig) (Breakdown, error) {
	if err := cfg.Validate(); err != nil {
		return Breakdown{}, err
	}

	b := Breakdown{
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
		SavingsGoals: len(savings),
	}
	for i, t := range transactions {
		if err := t.ValidateForScoring(); err != nil {
			return Breakdown{}, fmt.Errorf("transaction %d (%s): %w", i, t.TransactionID, err)
		}
		if t.Type == domain.Income {
			b.TotalIncome = b.TotalIncome.Add(t.Amount)
		} else {
			b.TotalExpense = b.TotalExpense.Add(t.Amount)
		}
	}
	b.Profit = b.TotalIncome.Sub(b.TotalExpense)

	b.VolumePoints = volumePoints(b.TotalIncome, cfg.TrxWeight)
	if b.Profit.IsPositive() {
		b.ProfitPoints = ProfitBonus
	}
	b.SavingsPoints = savingsPoints(len(savings), cfg.SavingWeight)

	b.Score = min(cfg.Base+b.VolumePoints+b.ProfitPoints+b.SavingsPoints, MaxScore)
	return b, nil
}

// volumePoints is min(floor(income/IncomeUnit)*weight, MaxVolumePoints).
func volumePoints(totalIncome decimal.Decimal, weight int) int {
	units := totalIncome.Div(decimal.NewFromInt(IncomeUnit)).Floor()
	// weight >= 1, so any units at or above the cap saturate it.
	if units.GreaterThanOrEqual(decimal.NewFromInt(MaxVolumePoints)) {
		return MaxVolumePoints
	}
	return min(int(units.IntPart())*weight, MaxVolumePoints)
}

func savingsPoints(goals, weight int) int {
	if goals >= MaxSavingsPoints {
		return MaxSavingsPoints
	}
	return min(goals*weight, MaxSavingsPoints)
}

// Loan ceiling tiers in rupiah.
const (
	CeilingPrime    = 50_000_000
	CeilingStandard = 10_000_000
	CeilingStarter  = 2_000_000
)

// DeriveLoanCeiling maps a score to the maximum loan amount.
func DeriveLoanCeiling(score int) int64 {
	switch {
	case score > 700:
		return CeilingPrime
	case score > 500:
		return CeilingStandard
	default:
		return CeilingStarter
	}
}

// LoanCeiling is DeriveLoanCeiling as a decimal amount.
func LoanCeiling(score int) decimal.Decimal {
	return decimal.NewFromInt(DeriveLoanCeiling(score))
}
