package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/SscSPs/lifefin_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/lifefin_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/lifefin_backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// incomeTrendDays is how many distinct income dates the dashboard chart shows.
const incomeTrendDays = 7

type dashboardService struct {
	BaseService
	history     historyLoader
	loanRepo    portsrepo.LoanReader
	scoreConfig portssvc.ScoreConfigSvcFacade
}

// NewDashboardService creates the merchant and admin dashboard service.
func NewDashboardService(txnRepo portsrepo.TransactionReader, savingsRepo portsrepo.SavingsReader, loanRepo portsrepo.LoanReader, scoreConfig portssvc.ScoreConfigSvcFacade) portssvc.DashboardSvc {
	return &dashboardService{
		history:     historyLoader{txnRepo: txnRepo, savingsRepo: savingsRepo},
		loanRepo:    loanRepo,
		scoreConfig: scoreConfig,
	}
}

var _ portssvc.DashboardSvc = (*dashboardService)(nil)

func (s *dashboardService) GetDashboard(ctx context.Context, userID string) (*domain.DashboardSummary, error) {
	cfg, err := s.scoreConfig.GetScoreConfig(ctx)
	if err != nil {
		return nil, err
	}
	snap, err := s.history.load(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load merchant history", slog.String("user_id", userID))
		return nil, err
	}
	report, err := evaluate(snap, cfg)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute score", slog.String("user_id", userID))
		return nil, err
	}

	totalSavings := decimal.Zero
	for _, g := range snap.goals {
		totalSavings = totalSavings.Add(g.Current)
	}

	return &domain.DashboardSummary{
		TotalIncome:  report.TotalIncome,
		TotalExpense: report.TotalExpense,
		Profit:       report.Profit,
		TotalSavings: totalSavings,
		Score:        report.Score,
		LoanCeiling:  report.LoanCeiling,
		IncomeTrend:  incomeTrend(snap.transactions, incomeTrendDays),
	}, nil
}

func (s *dashboardService) GetAdminDashboard(ctx context.Context) (*domain.AdminDashboard, error) {
	pending, err := s.loanRepo.CountLoansByStatus(ctx, domain.LoanPending)
	if err != nil {
		s.LogError(ctx, err, "Failed to count pending loans")
		return nil, fmt.Errorf("failed to count pending loans: %w", err)
	}
	return &domain.AdminDashboard{PendingLoans: pending}, nil
}

// incomeTrend sums income per date and returns the latest days dates in ascending order.
func incomeTrend(txns []domain.Transaction, days int) []domain.DailyIncome {
	byDate := make(map[string]decimal.Decimal)
	for _, t := range txns {
		if t.Type != domain.Income {
			continue
		}
		byDate[t.Date] = byDate[t.Date].Add(t.Amount)
	}

	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	// YYYY-MM-DD sorts chronologically as a string.
	sort.Strings(dates)
	if len(dates) > days {
		dates = dates[len(dates)-days:]
	}

	trend := make([]domain.DailyIncome, len(dates))
	for i, d := range dates {
		trend[i] = domain.DailyIncome{Date: d, Amount: byDate[d]}
	}
	return trend
}
