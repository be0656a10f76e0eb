package repositories

import (
	"context"

	"github.com/katysh-aa/family-budget/internal/core/domain"
)

// PlanReader defines read operations over the financial plan snapshot.
type PlanReader interface {
	// ListPlans returns a copy of the current snapshot ordered by month
	// ascending.
	ListPlans(ctx context.Context) ([]domain.FinancialPlan, error)

	// FindPlanByID retrieves a single plan from the snapshot.
	FindPlanByID(ctx context.Context, planID string) (*domain.FinancialPlan, error)

	// FindPlanByMonth retrieves the plan for a YYYY-MM month key, if any.
	FindPlanByMonth(ctx context.Context, month string) (*domain.FinancialPlan, error)
}

// PlanWriter defines mutation operations over the plan snapshot.
type PlanWriter interface {
	// SavePlan adds a plan to the snapshot.
	SavePlan(ctx context.Context, plan domain.FinancialPlan) error

	// UpdatePlan replaces all fields of an existing plan except its ID.
	UpdatePlan(ctx context.Context, plan domain.FinancialPlan) error

	// DeletePlan removes a plan from the snapshot.
	DeletePlan(ctx context.Context, planID string) error

	// ReplaceAllPlans swaps in a complete new snapshot atomically by reference.
	ReplaceAllPlans(ctx context.Context, plans []domain.FinancialPlan) error
}

// PlanRepositoryFacade combines all plan snapshot operations.
type PlanRepositoryFacade interface {
	PlanReader
	PlanWriter
}
