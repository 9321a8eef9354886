package services

import (
	"fmt"

	portsrepo "github.com/SscSPs/lifefin_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/lifefin_backend/internal/core/ports/services"
	"github.com/SscSPs/lifefin_backend/internal/core/scoring"
	"github.com/SscSPs/lifefin_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// rnd drives investment withdrawals; nil selects the production generator.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, rnd scoring.RandomSource) (*portssvc.ServiceContainer, error) {
	simulator, err := scoring.NewSimulator(cfg.Simulation, rnd)
	if err != nil {
		return nil, fmt.Errorf("invalid simulation config: %w", err)
	}

	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.TokenService = NewTokenService(cfg)
	container.Transaction = NewTransactionService(repos.TransactionRepo)
	container.Savings = NewSavingsService(repos.SavingsRepo)

	// Scoring reads the live config, so loans and the dashboard follow admin updates immediately.
	container.ScoreConfig = NewScoreConfigService(repos.ScoreConfigRepo, cfg.Score)
	container.Scoring = NewScoringService(repos.TransactionRepo, repos.SavingsRepo, container.ScoreConfig)
	container.Dashboard = NewDashboardService(repos.TransactionRepo, repos.SavingsRepo, repos.LoanRepo, container.ScoreConfig)

	container.Loan = NewLoanService(repos.LoanRepo, repos.UserRepo, container.Scoring,
		WithLoanCeilingEnforcement(cfg.EnforceLoanCeiling))
	container.Investment = NewInvestmentService(repos.InvestmentRepo, simulator)

	return container, nil
}
