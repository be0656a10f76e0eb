// Package memory provides the in-memory snapshot stores. The transaction
// and plan collections are owned by whoever pushes snapshots (user intake or
// the sync feed); the engine only ever reads copies. Every mutation builds a
// new backing slice and swaps it by reference, so a computation in progress
// never observes a half-updated collection.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/katysh-aa/family-budget/internal/apperrors"
	portsrepo "github.com/katysh-aa/family-budget/internal/core/ports/repositories"
	"github.com/katysh-aa/family-budget/internal/core/domain"
)

// TransactionRepository is the in-memory transaction snapshot store.
type TransactionRepository struct {
	mu   sync.RWMutex
	txns []domain.Transaction
}

// NewTransactionRepository creates an empty transaction snapshot store.
func NewTransactionRepository() *TransactionRepository {
	return &TransactionRepository{}
}

var _ portsrepo.TransactionRepositoryFacade = (*TransactionRepository)(nil)

// ListTransactions returns a copy of the snapshot, date descending.
func (r *TransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Transaction, len(r.txns))
	copy(out, r.txns)
	return out, nil
}

// FindTransactionByID retrieves one transaction from the snapshot.
func (r *TransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.txns {
		if r.txns[i].TransactionID == transactionID {
			txn := r.txns[i]
			return &txn, nil
		}
	}
	return nil, fmt.Errorf("transaction %s: %w", transactionID, apperrors.ErrNotFound)
}

// SaveTransaction adds a transaction, keeping date-descending order.
func (r *TransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	next := make([]domain.Transaction, 0, len(r.txns)+1)
	next = append(next, r.txns...)
	next = append(next, txn)
	sortByDateDesc(next)
	r.txns = next
	return nil
}

// UpdateTransaction replaces an existing transaction in a new snapshot.
func (r *TransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	idx := -1
	for i := range r.txns {
		if r.txns[i].TransactionID == txn.TransactionID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("transaction %s: %w", txn.TransactionID, apperrors.ErrNotFound)
	}
	next := make([]domain.Transaction, len(r.txns))
	copy(next, r.txns)
	next[idx] = txn
	sortByDateDesc(next)
	r.txns = next
	return nil
}

// DeleteTransaction removes a transaction in a new snapshot.
func (r *TransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	next := make([]domain.Transaction, 0, len(r.txns))
	found := false
	for _, t := range r.txns {
		if t.TransactionID == transactionID {
			found = true
			continue
		}
		next = append(next, t)
	}
	if !found {
		return fmt.Errorf("transaction %s: %w", transactionID, apperrors.ErrNotFound)
	}
	r.txns = next
	return nil
}

// ReplaceAllTransactions swaps in a complete new snapshot by reference.
func (r *TransactionRepository) ReplaceAllTransactions(ctx context.Context, txns []domain.Transaction) error {
	next := make([]domain.Transaction, len(txns))
	copy(next, txns)
	sortByDateDesc(next)
	r.mu.Lock()
	r.txns = next
	r.mu.Unlock()
	return nil
}

func sortByDateDesc(txns []domain.Transaction) {
	sort.SliceStable(txns, func(i, j int) bool {
		return txns[i].Date.After(txns[j].Date)
	})
}
