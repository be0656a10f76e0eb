package services

import (
	"context"

	"github.com/katysh-aa/family-budget/internal/core/domain"

	"github.com/shopspring/decimal"
)

// GoalSvcFacade manages the savings goal scalar.
type GoalSvcFacade interface {
	// GetGoal returns the stored goal, or the documented default when none
	// was ever saved.
	GetGoal(ctx context.Context) (*domain.SavingsGoal, error)

	// SaveGoal validates (amount >= 0) and persists a new goal.
	SaveGoal(ctx context.Context, amount decimal.Decimal) (*domain.SavingsGoal, error)
}
