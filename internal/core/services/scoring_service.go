package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/lifefin_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/lifefin_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/lifefin_backend/internal/core/ports/services"
	"github.com/SscSPs/lifefin_backend/internal/core/scoring"
	"github.com/SscSPs/lifefin_backend/internal/platform/tracing"
	"go.opentelemetry.io/otel/attribute"
)

type scoringService struct {
	BaseService
	history     historyLoader
	scoreConfig portssvc.ScoreConfigSvcFacade
}

// NewScoringService creates the service that recomputes a merchant's score from stored history.
func NewScoringService(txnRepo portsrepo.TransactionReader, savingsRepo portsrepo.SavingsReader, scoreConfig portssvc.ScoreConfigSvcFacade) portssvc.ScoringSvc {
	return &scoringService{
		history:     historyLoader{txnRepo: txnRepo, savingsRepo: savingsRepo},
		scoreConfig: scoreConfig,
	}
}

var _ portssvc.ScoringSvc = (*scoringService)(nil)

func (s *scoringService) GetScoreReport(ctx context.Context, userID string) (*domain.ScoreReport, error) {
	ctx, span := tracing.StartSpan(ctx, "scoring.GetScoreReport")
	defer span.End()
	span.SetAttributes(attribute.String("user.id", userID))

	cfg, err := s.scoreConfig.GetScoreConfig(ctx)
	if err != nil {
		tracing.Fail(span, err, "load score config")
		return nil, err
	}

	snap, err := s.history.load(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load merchant history", slog.String("user_id", userID))
		tracing.Fail(span, err, "load history")
		return nil, err
	}

	report, err := evaluate(snap, cfg)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute score", slog.String("user_id", userID))
		tracing.Fail(span, err, "compute score")
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("score.value", report.Score),
		attribute.Int("score.transactions", len(snap.transactions)),
		attribute.Int("score.savings_goals", len(snap.goals)),
	)
	s.LogDebug(ctx, "Score computed",
		slog.String("user_id", userID),
		slog.Int("score", report.Score))
	return report, nil
}

// history is a merchant's book and savings goals, read by two separate queries. A write landing
// between them shows up on the next score request; loan applications snapshot the score anyway.
type history struct {
	transactions []domain.Transaction
	goals        []domain.SavingsGoal
}

type historyLoader struct {
	txnRepo     portsrepo.TransactionReader
	savingsRepo portsrepo.SavingsReader
}

func (l historyLoader) load(ctx context.Context, userID string) (history, error) {
	txns, err := l.txnRepo.ListAllTransactionsByUser(ctx, userID)
	if err != nil {
		return history{}, fmt.Errorf("failed to load transactions: %w", err)
	}
	goals, err := l.savingsRepo.ListGoalsByUser(ctx, userID)
	if err != nil {
		return history{}, fmt.Errorf("failed to load savings goals: %w", err)
	}
	return history{transactions: txns, goals: goals}, nil
}

func evaluate(h history, cfg domain.ScoreConfig) (*domain.ScoreReport, error) {
	b, err := scoring.Evaluate(h.transactions, h.goals, cfg)
	if err != nil {
		return nil, err
	}
	return &domain.ScoreReport{
		Score:         b.Score,
		LoanCeiling:   scoring.LoanCeiling(b.Score),
		TotalIncome:   b.TotalIncome,
		TotalExpense:  b.TotalExpense,
		Profit:        b.Profit,
		SavingsGoals:  b.SavingsGoals,
		VolumePoints:  b.VolumePoints,
		ProfitPoints:  b.ProfitPoints,
		SavingsPoints: b.SavingsPoints,
		Config:        cfg,
	}, nil
}
