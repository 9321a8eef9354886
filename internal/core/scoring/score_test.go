package scoring_test

import (
	"fmt"
	"testing"

	"github.com/SscSPs/lifefin_backend/internal/apperrors"
	"github.com/SscSPs/lifefin_backend/internal/core/domain"
	"github.com/SscSPs/lifefin_backend/internal/core/scoring"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func income(amount int64) domain.Transaction {
	return domain.Transaction{Type: domain.Income, Amount: decimal.NewFromInt(amount)}
}

func expense(amount int64) domain.Transaction {
	return domain.Transaction{Type: domain.Expense, Amount: decimal.NewFromInt(amount)}
}

func goals(n int) []domain.SavingsGoal {
	out := make([]domain.SavingsGoal, n)
	for i := range out {
		out[i] = domain.SavingsGoal{Name: fmt.Sprintf("goal %d", i), Target: decimal.NewFromInt(1_000_000)}
	}
	return out
}

func TestComputeScore_EmptyHistoryIsBase(t *testing.T) {
	for _, cfg := range []domain.ScoreConfig{
		domain.DefaultScoreConfig(),
		{Base: 1, TrxWeight: 1, SavingWeight: 1},
		{Base: 850, TrxWeight: 200, SavingWeight: 150},
	} {
		score, err := scoring.ComputeScore(nil, nil, cfg)
		require.NoError(t, err)
		assert.Equal(t, cfg.Base, score)
	}
}

func TestComputeScore_WorkedExamples(t *testing.T) {
	tests := []struct {
		name    string
		txns    []domain.Transaction
		savings []domain.SavingsGoal
		want    int
		ceiling int64
	}{
		{
			name:    "single income of 500k",
			txns:    []domain.Transaction{income(500_000)},
			want:    405,
			ceiling: 2_000_000,
		},
		{
			name:    "income, expense and two goals",
			txns:    []domain.Transaction{income(1_200_000), expense(200_000)},
			savings: goals(2),
			want:    512,
			ceiling: 10_000_000,
		},
		{
			name: "loss earns no bonus and no penalty",
			txns: []domain.Transaction{income(300_000), expense(900_000)},
			want: 303,
		},
		{
			name:    "every component capped",
			txns:    []domain.Transaction{income(50_000_000_000)},
			savings: goals(10),
			want:    300 + 200 + 100 + 150,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, err := scoring.ComputeScore(tt.txns, tt.savings, domain.DefaultScoreConfig())
			require.NoError(t, err)
			assert.Equal(t, tt.want, score)
			if tt.ceiling != 0 {
				assert.Equal(t, tt.ceiling, scoring.DeriveLoanCeiling(score))
			}
		})
	}
}

func TestComputeScore_NeverExceedsMax(t *testing.T) {
	cfg := domain.ScoreConfig{Base: 850, TrxWeight: 200, SavingWeight: 150}
	score, err := scoring.ComputeScore([]domain.Transaction{income(100_000_000)}, goals(3), cfg)
	require.NoError(t, err)
	assert.Equal(t, scoring.MaxScore, score)
}

func TestComputeScore_BoundsHoldAcrossHistories(t *testing.T) {
	cfg := domain.DefaultScoreConfig()
	for incomeAmt := int64(0); incomeAmt <= 30_000_000; incomeAmt += 2_500_000 {
		for expenseAmt := int64(0); expenseAmt <= 30_000_000; expenseAmt += 7_500_000 {
			for n := 0; n <= 5; n++ {
				var txns []domain.Transaction
				if incomeAmt > 0 {
					txns = append(txns, income(incomeAmt))
				}
				if expenseAmt > 0 {
					txns = append(txns, expense(expenseAmt))
				}
				score, err := scoring.ComputeScore(txns, goals(n), cfg)
				require.NoError(t, err)
				assert.GreaterOrEqual(t, score, cfg.Base)
				assert.LessOrEqual(t, score, scoring.MaxScore)
			}
		}
	}
}

func TestComputeScore_IncomeIsMonotonic(t *testing.T) {
	cfg := domain.DefaultScoreConfig()
	txns := []domain.Transaction{expense(250_000)}
	prev, err := scoring.ComputeScore(txns, goals(1), cfg)
	require.NoError(t, err)

	for i := 0; i < 40; i++ {
		txns = append(txns, income(int64(37_000*(i+1))))
		score, err := scoring.ComputeScore(txns, goals(1), cfg)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, score, prev, "adding income #%d lowered the score", i)
		prev = score
	}
}

func TestComputeScore_SavingsAreMonotonic(t *testing.T) {
	cfg := domain.DefaultScoreConfig()
	txns := []domain.Transaction{income(800_000)}
	prev, err := scoring.ComputeScore(txns, nil, cfg)
	require.NoError(t, err)

	for n := 1; n <= 6; n++ {
		score, err := scoring.ComputeScore(txns, goals(n), cfg)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, score, prev)
		prev = score
	}
	assert.Equal(t, 300+8+100+150, prev)
}

func TestComputeScore_ProfitBonusIsBinary(t *testing.T) {
	cfg := domain.DefaultScoreConfig()

	small, err := scoring.ComputeScore([]domain.Transaction{income(1_000_001), expense(1_000_000)}, nil, cfg)
	require.NoError(t, err)
	// Same income volume, profit of 1,000,000 instead of 1.
	large, err := scoring.ComputeScore([]domain.Transaction{income(1_000_001), expense(1)}, nil, cfg)
	require.NoError(t, err)

	assert.Equal(t, small, large)
	assert.Equal(t, 300+10+100, small)
}

func TestComputeScore_Idempotent(t *testing.T) {
	txns := []domain.Transaction{income(1_200_000), expense(200_000)}
	savings := goals(2)

	first, err := scoring.ComputeScore(txns, savings, domain.DefaultScoreConfig())
	require.NoError(t, err)
	second, err := scoring.ComputeScore(txns, savings, domain.DefaultScoreConfig())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestComputeScore_WeightsApply(t *testing.T) {
	cfg := domain.ScoreConfig{Base: 200, TrxWeight: 3, SavingWeight: 20}
	b, err := scoring.Evaluate([]domain.Transaction{income(1_000_000), expense(1_000_000)}, goals(4), cfg)
	require.NoError(t, err)

	assert.Equal(t, 30, b.VolumePoints)
	assert.Equal(t, 0, b.ProfitPoints)
	assert.Equal(t, 80, b.SavingsPoints)
	assert.Equal(t, 310, b.Score)
	assert.True(t, b.Profit.IsZero())
	assert.Equal(t, 4, b.SavingsGoals)
}

func TestComputeScore_RejectsMalformedInput(t *testing.T) {
	cfg := domain.DefaultScoreConfig()

	tests := []struct {
		name string
		txn  domain.Transaction
	}{
		{name: "negative amount", txn: income(-100)},
		{name: "zero amount", txn: expense(0)},
		{name: "fractional amount", txn: domain.Transaction{Type: domain.Income, Amount: decimal.RequireFromString("0.5")}},
		{name: "unknown type", txn: domain.Transaction{Type: "refund", Amount: decimal.NewFromInt(10)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := scoring.ComputeScore([]domain.Transaction{income(100_000), tt.txn}, nil, cfg)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
}

func TestComputeScore_RejectsBadConfig(t *testing.T) {
	_, err := scoring.ComputeScore(nil, nil, domain.ScoreConfig{Base: 300, TrxWeight: 0, SavingWeight: 50})
	assert.ErrorIs(t, err, apperrors.ErrConfiguration)

	_, err = scoring.ComputeScore(nil, nil, domain.ScoreConfig{Base: -1, TrxWeight: 1, SavingWeight: 50})
	assert.ErrorIs(t, err, apperrors.ErrConfiguration)
}

func TestDeriveLoanCeiling(t *testing.T) {
	tests := []struct {
		score int
		want  int64
	}{
		{850, 50_000_000},
		{701, 50_000_000},
		{700, 10_000_000},
		{501, 10_000_000},
		{500, 2_000_000},
		{300, 2_000_000},
		{0, 2_000_000},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("score %d", tt.score), func(t *testing.T) {
			assert.Equal(t, tt.want, scoring.DeriveLoanCeiling(tt.score))
			assert.True(t, decimal.NewFromInt(tt.want).Equal(scoring.LoanCeiling(tt.score)))
		})
	}
}
