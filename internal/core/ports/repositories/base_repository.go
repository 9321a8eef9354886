package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager is implemented by the pgsql base repository. Workflows that write a
// business row and its ledger transaction together (deposit, disbursal, buy, withdraw) run
// both statements inside one pgx.Tx obtained here.
type TransactionManager interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Commit(ctx context.Context, tx pgx.Tx) error
	// Rollback is safe to defer; it ignores an already committed tx.
	Rollback(ctx context.Context, tx pgx.Tx) error
}
