package repositories

import (
	"context"

	"github.com/katysh-aa/family-budget/internal/core/domain"
)

// TransactionReader defines read operations over the transaction snapshot.
type TransactionReader interface {
	// ListTransactions returns a copy of the current snapshot ordered by
	// date descending.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)

	// FindTransactionByID retrieves a single transaction from the snapshot.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
}

// TransactionWriter defines mutation operations. Every mutation produces a
// new snapshot; readers never observe a half-updated collection.
type TransactionWriter interface {
	// SaveTransaction adds a transaction to the snapshot.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// UpdateTransaction replaces all fields of an existing transaction
	// except its ID.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction removes a transaction from the snapshot.
	DeleteTransaction(ctx context.Context, transactionID string) error

	// ReplaceAllTransactions swaps in a complete new snapshot atomically by
	// reference. This is the sync-layer feed path.
	ReplaceAllTransactions(ctx context.Context, txns []domain.Transaction) error
}

// TransactionRepositoryFacade combines all transaction snapshot operations.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
