package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/katysh-aa/family-budget/internal/apperrors"
	portsrepo "github.com/katysh-aa/family-budget/internal/core/ports/repositories"
	portssvc "github.com/katysh-aa/family-budget/internal/core/ports/services"
	"github.com/katysh-aa/family-budget/internal/core/domain"
	"github.com/katysh-aa/family-budget/internal/dto"
	"github.com/google/uuid"
)

// transactionService implements the TransactionSvcFacade interface.
type transactionService struct {
	BaseService
	txnRepo   portsrepo.TransactionRepositoryFacade
	refresher RefreshTrigger
}

// TransactionServiceOption is a functional option for configuring the service.
type TransactionServiceOption func(*transactionService)

// WithTransactionRefreshTrigger sets the recompute trigger fired after
// successful mutations.
func WithTransactionRefreshTrigger(trigger RefreshTrigger) TransactionServiceOption {
	return func(s *transactionService) {
		s.refresher = trigger
	}
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(txnRepo portsrepo.TransactionRepositoryFacade, options ...TransactionServiceOption) portssvc.TransactionSvcFacade {
	svc := &transactionService{txnRepo: txnRepo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// CreateTransaction validates the intake and records a new transaction.
// Validation runs before any store mutation and reports every violated rule.
func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	in := req.ToInput()
	if res := in.Validate(); !res.Valid {
		s.LogWarn(ctx, "Transaction rejected at intake", slog.Any("violations", res.Errors))
		return nil, apperrors.NewValidationError(res.Errors)
	}

	now := time.Now()
	txn := in.ToTransaction()
	txn.TransactionID = uuid.NewString()
	txn.AuditFields = domain.AuditFields{CreatedAt: now, LastUpdatedAt: now}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	s.notifyRefresh()
	s.LogInfo(ctx, "Transaction created",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(txn.Type)),
		slog.String("category", txn.Category))
	return &txn, nil
}

// UpdateTransaction fully replaces all fields of an existing transaction
// except its ID.
func (s *transactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	existing, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}

	in := req.ToInput()
	if res := in.Validate(); !res.Valid {
		s.LogWarn(ctx, "Transaction update rejected at intake",
			slog.String("transaction_id", transactionID),
			slog.Any("violations", res.Errors))
		return nil, apperrors.NewValidationError(res.Errors)
	}

	txn := in.ToTransaction()
	txn.TransactionID = existing.TransactionID
	txn.AuditFields = domain.AuditFields{
		CreatedAt:     existing.CreatedAt,
		LastUpdatedAt: time.Now(),
	}

	if err := s.txnRepo.UpdateTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to update transaction %s: %w", transactionID, err)
	}

	s.notifyRefresh()
	s.LogInfo(ctx, "Transaction updated", slog.String("transaction_id", transactionID))
	return &txn, nil
}

// DeleteTransaction removes a transaction from the snapshot.
func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID string) error {
	if err := s.txnRepo.DeleteTransaction(ctx, transactionID); err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	s.notifyRefresh()
	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}

// ListTransactions returns the current snapshot, date descending.
func (s *transactionService) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, nil
}

// ReplaceSnapshot validates every pushed row and swaps in a complete new
// snapshot. A single malformed row rejects the whole push so the engine
// never sees a half-valid collection.
func (s *transactionService) ReplaceSnapshot(ctx context.Context, req dto.TransactionSnapshotRequest) (int, error) {
	now := time.Now()
	txns := make([]domain.Transaction, 0, len(req.Transactions))
	var violations []string
	for i, entry := range req.Transactions {
		in := entry.ToInput()
		if res := in.Validate(); !res.Valid {
			for _, msg := range res.Errors {
				violations = append(violations, fmt.Sprintf("transaction %d: %s", i, msg))
			}
			continue
		}
		txn := in.ToTransaction()
		txn.TransactionID = uuid.NewString()
		txn.AuditFields = domain.AuditFields{CreatedAt: now, LastUpdatedAt: now}
		txns = append(txns, txn)
	}
	if len(violations) > 0 {
		s.LogWarn(ctx, "Snapshot push rejected", slog.Int("violations", len(violations)))
		return 0, apperrors.NewValidationError(violations)
	}

	// Feed contract: snapshot is ordered by date descending.
	sort.SliceStable(txns, func(i, j int) bool {
		return txns[i].Date.After(txns[j].Date)
	})

	if err := s.txnRepo.ReplaceAllTransactions(ctx, txns); err != nil {
		return 0, fmt.Errorf("failed to replace transaction snapshot: %w", err)
	}

	s.notifyRefresh()
	s.LogInfo(ctx, "Transaction snapshot replaced", slog.Int("count", len(txns)))
	return len(txns), nil
}

func (s *transactionService) notifyRefresh() {
	if s.refresher != nil {
		s.refresher.Notify()
	}
}
