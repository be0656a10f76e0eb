package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/katysh-aa/family-budget/internal/apperrors"
	portsrepo "github.com/katysh-aa/family-budget/internal/core/ports/repositories"
	portssvc "github.com/katysh-aa/family-budget/internal/core/ports/services"
	"github.com/katysh-aa/family-budget/internal/core/domain"
	"github.com/shopspring/decimal"
)

// goalService implements the GoalSvcFacade interface.
type goalService struct {
	BaseService
	goalRepo  portsrepo.GoalRepositoryFacade
	refresher RefreshTrigger
}

// GoalServiceOption is a functional option for configuring the goal service.
type GoalServiceOption func(*goalService)

// WithGoalRefreshTrigger sets the recompute trigger fired after a save.
func WithGoalRefreshTrigger(trigger RefreshTrigger) GoalServiceOption {
	return func(s *goalService) {
		s.refresher = trigger
	}
}

// NewGoalService creates a new goal service.
func NewGoalService(goalRepo portsrepo.GoalRepositoryFacade, options ...GoalServiceOption) portssvc.GoalSvcFacade {
	svc := &goalService{goalRepo: goalRepo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.GoalSvcFacade = (*goalService)(nil)

// GetGoal returns the stored goal, falling back to the documented default
// when none was ever saved.
func (s *goalService) GetGoal(ctx context.Context) (*domain.SavingsGoal, error) {
	goal, err := s.goalRepo.FindGoal(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return &domain.SavingsGoal{Amount: domain.DefaultSavingsGoal}, nil
		}
		return nil, fmt.Errorf("failed to read savings goal: %w", err)
	}
	return goal, nil
}

// SaveGoal validates and persists a new goal amount.
func (s *goalService) SaveGoal(ctx context.Context, amount decimal.Decimal) (*domain.SavingsGoal, error) {
	if amount.IsNegative() {
		return nil, fmt.Errorf("%w: goal amount must not be negative", apperrors.ErrValidation)
	}

	now := time.Now()
	goal := domain.SavingsGoal{
		Amount:      amount,
		AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
	if err := s.goalRepo.SaveGoal(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to save savings goal: %w", err)
	}

	if s.refresher != nil {
		s.refresher.Notify()
	}
	s.LogInfo(ctx, "Savings goal updated", slog.String("amount", amount.String()))
	return &goal, nil
}
