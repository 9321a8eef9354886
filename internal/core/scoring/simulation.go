package scoring

import (
	"math"
	"math/rand/v2"

	"github.com/SscSPs/lifefin_backend/internal/apperrors"
	"github.com/SscSPs/lifefin_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Narratives attached to non-nominal outcomes.
const (
	NarrativeMarketCrash     = "loss — market crash"
	NarrativeBullishMarket   = "high profit — bullish market"
	NarrativeSmallCorrection = "small correction"
)

// RandomSource yields a uniform value in [0,1).
type RandomSource func() float64

// DefaultRandomSource is the production generator.
func DefaultRandomSource() float64 {
	return rand.Float64()
}

// Simulator liquidates investment positions against a SimulationConfig.
type Simulator struct {
	cfg  domain.SimulationConfig
	rand RandomSource
}

// NewSimulator returns a Simulator. A nil rnd falls back to DefaultRandomSource.
func NewSimulator(cfg domain.SimulationConfig, rnd RandomSource) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rnd == nil {
		rnd = DefaultRandomSource
	}
	return &Simulator{cfg: cfg, rand: rnd}, nil
}

// Simulate draws one luck value and returns the resulting payoff.
func (s *Simulator) Simulate(inv domain.Investment) (domain.InvestmentOutcome, error) {
	return simulate(inv, s.rand, s.cfg)
}

// SimulateInvestmentReturn runs the simulation with the default thresholds.
func SimulateInvestmentReturn(inv domain.Investment, rnd RandomSource) (domain.InvestmentOutcome, error) {
	if rnd == nil {
		rnd = DefaultRandomSource
	}
	return simulate(inv, rnd, domain.DefaultSimulationConfig())
}

func simulate(inv domain.Investment, rnd RandomSource, cfg domain.SimulationConfig) (domain.InvestmentOutcome, error) {
	if err := inv.Validate(); err != nil {
		return domain.InvestmentOutcome{}, err
	}

	luck := rnd()
	if math.IsNaN(luck) || luck < 0 || luck >= 1 {
		return domain.InvestmentOutcome{}, apperrors.NewValidationError("luck", "random source must yield a value in [0, 1)")
	}

	rate := inv.ReturnRate
	narrative := ""
	switch inv.Risk {
	case domain.RiskHigh:
		if luck < cfg.HighLossBelow {
			rate, narrative = cfg.HighLossRate, NarrativeMarketCrash
		} else if luck > cfg.HighBoostAbove {
			rate, narrative = inv.ReturnRate.Mul(cfg.HighBoostFactor), NarrativeBullishMarket
		}
	case domain.RiskMedium:
		if luck < cfg.MediumCorrectionBelow {
			rate, narrative = cfg.MediumCorrectionRate, NarrativeSmallCorrection
		}
	}

	profit := inv.Amount.Mul(rate).Div(decimal.NewFromInt(100))
	return domain.InvestmentOutcome{
		ActualReturnRate: rate,
		Profit:           profit,
		TotalReturn:      inv.Amount.Add(profit),
		Narrative:        narrative,
	}, nil
}
