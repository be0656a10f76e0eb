package services

import (
	"context"

	"github.com/katysh-aa/family-budget/internal/core/domain"
	"github.com/katysh-aa/family-budget/internal/dto"
)

// TransactionSvcFacade defines operations for transaction intake and the
// snapshot feed. All intake paths validate before any store mutation and
// report every violated rule together.
type TransactionSvcFacade interface {
	// CreateTransaction validates and records a new transaction.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// UpdateTransaction fully replaces all fields of an existing
	// transaction except its ID.
	UpdateTransaction(ctx context.Context, transactionID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction removes a transaction.
	DeleteTransaction(ctx context.Context, transactionID string) error

	// ListTransactions returns the current snapshot, date descending.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)

	// ReplaceSnapshot validates every entry and swaps in a complete new
	// snapshot; a single malformed row rejects the whole push.
	ReplaceSnapshot(ctx context.Context, req dto.TransactionSnapshotRequest) (int, error)
}
