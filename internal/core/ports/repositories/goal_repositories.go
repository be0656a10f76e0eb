package repositories

import (
	"context"

	"github.com/katysh-aa/family-budget/internal/core/domain"
)

// GoalReader reads the persisted savings goal.
type GoalReader interface {
	// FindGoal retrieves the stored goal, or apperrors.ErrNotFound when no
	// goal was ever saved.
	FindGoal(ctx context.Context) (*domain.SavingsGoal, error)
}

// GoalWriter persists the savings goal.
type GoalWriter interface {
	SaveGoal(ctx context.Context, goal domain.SavingsGoal) error
}

// GoalRepositoryFacade combines goal read and write operations.
type GoalRepositoryFacade interface {
	GoalReader
	GoalWriter
}
