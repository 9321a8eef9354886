package pgsql

import (
	portsrepo "github.com/SscSPs/lifefin_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:        newPgxUserRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
		SavingsRepo:     newPgxSavingsRepository(dbPool),
		LoanRepo:        newPgxLoanRepository(dbPool),
		InvestmentRepo:  newPgxInvestmentRepository(dbPool),
		ScoreConfigRepo: newPgxScoreConfigRepository(dbPool),
	}
}
