package services

import (
	"context"

	"github.com/SscSPs/lifefin_backend/internal/core/domain"
	"github.com/SscSPs/lifefin_backend/internal/dto"
)

// TransactionReaderSvc defines read operations for merchant transactions
type TransactionReaderSvc interface {
	// ListTransactions returns a page of the caller's transactions, newest first.
	ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)
}

// TransactionWriterSvc defines write operations for merchant transactions
type TransactionWriterSvc interface {
	// CreateTransaction books an income or expense for the caller.
	CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction removes one of the caller's transactions.
	DeleteTransaction(ctx context.Context, userID string, transactionID string) error
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
