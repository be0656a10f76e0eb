package services

import (
	"context"

	"github.com/katysh-aa/family-budget/internal/core/domain"
	"github.com/katysh-aa/family-budget/internal/dto"
)

// PlanSvcFacade defines operations over monthly financial plans. At most one
// plan exists per month; SavePlan is a find-or-create-or-replace keyed by
// the month string.
type PlanSvcFacade interface {
	// SavePlan validates and upserts the plan for its month.
	SavePlan(ctx context.Context, req dto.SavePlanRequest) (*domain.FinancialPlan, error)

	// DeletePlan removes a plan by ID.
	DeletePlan(ctx context.Context, planID string) error

	// ListPlans returns the current snapshot, month ascending.
	ListPlans(ctx context.Context) ([]domain.FinancialPlan, error)

	// ReplaceSnapshot validates every entry (including month uniqueness)
	// and swaps in a complete new snapshot.
	ReplaceSnapshot(ctx context.Context, req dto.PlanSnapshotRequest) (int, error)
}
