package services

import (
	"context"
	"errors"
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

// planService implements the PlanSvcFacade interface.
type planService struct {
	BaseService
	planRepo  portsrepo.PlanRepositoryFacade
	refresher RefreshTrigger
}

// PlanServiceOption is a functional option for configuring the plan service.
type PlanServiceOption func(*planService)

// WithPlanRefreshTrigger sets the recompute trigger fired after mutations.
func WithPlanRefreshTrigger(trigger RefreshTrigger) PlanServiceOption {
	return func(s *planService) {
		s.refresher = trigger
	}
}

// NewPlanService creates a new plan service.
func NewPlanService(planRepo portsrepo.PlanRepositoryFacade, options ...PlanServiceOption) portssvc.PlanSvcFacade {
	svc := &planService{planRepo: planRepo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.PlanSvcFacade = (*planService)(nil)

// SavePlan upserts the plan for its month: at most one plan per month,
// enforced here via find-or-create-or-replace rather than a store constraint.
func (s *planService) SavePlan(ctx context.Context, req dto.SavePlanRequest) (*domain.FinancialPlan, error) {
	in := req.ToInput()
	if res := in.Validate(); !res.Valid {
		s.LogWarn(ctx, "Plan rejected at intake", slog.Any("violations", res.Errors))
		return nil, apperrors.NewValidationError(res.Errors)
	}

	now := time.Now()
	existing, err := s.planRepo.FindPlanByMonth(ctx, in.Month)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up plan for month %s: %w", in.Month, err)
	}

	if existing != nil {
		plan := domain.FinancialPlan{
			PlanID:  existing.PlanID,
			Month:   in.Month,
			Income:  in.Income,
			Expense: in.Expense,
			AuditFields: domain.AuditFields{
				CreatedAt:     existing.CreatedAt,
				LastUpdatedAt: now,
			},
		}
		if err := s.planRepo.UpdatePlan(ctx, plan); err != nil {
			return nil, fmt.Errorf("failed to update plan for month %s: %w", in.Month, err)
		}
		s.notifyRefresh()
		s.LogInfo(ctx, "Plan replaced", slog.String("plan_id", plan.PlanID), slog.String("month", plan.Month))
		return &plan, nil
	}

	plan := domain.FinancialPlan{
		PlanID:      uuid.NewString(),
		Month:       in.Month,
		Income:      in.Income,
		Expense:     in.Expense,
		AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
	if err := s.planRepo.SavePlan(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to save plan for month %s: %w", in.Month, err)
	}

	s.notifyRefresh()
	s.LogInfo(ctx, "Plan created", slog.String("plan_id", plan.PlanID), slog.String("month", plan.Month))
	return &plan, nil
}

// DeletePlan removes a plan by ID.
func (s *planService) DeletePlan(ctx context.Context, planID string) error {
	if err := s.planRepo.DeletePlan(ctx, planID); err != nil {
		return fmt.Errorf("failed to delete plan %s: %w", planID, err)
	}
	s.notifyRefresh()
	s.LogInfo(ctx, "Plan deleted", slog.String("plan_id", planID))
	return nil
}

// ListPlans returns the current snapshot, month ascending.
func (s *planService) ListPlans(ctx context.Context) ([]domain.FinancialPlan, error) {
	plans, err := s.planRepo.ListPlans(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	return plans, nil
}

// ReplaceSnapshot validates every pushed plan, enforces month uniqueness
// within the push, and swaps in a complete new snapshot.
func (s *planService) ReplaceSnapshot(ctx context.Context, req dto.PlanSnapshotRequest) (int, error) {
	now := time.Now()
	seen := make(map[string]int)
	plans := make([]domain.FinancialPlan, 0, len(req.Plans))
	var violations []string
	for i, entry := range req.Plans {
		in := entry.ToInput()
		if res := in.Validate(); !res.Valid {
			for _, msg := range res.Errors {
				violations = append(violations, fmt.Sprintf("plan %d: %s", i, msg))
			}
			continue
		}
		if first, dup := seen[in.Month]; dup {
			violations = append(violations, fmt.Sprintf("plan %d: duplicate month %s (already used by plan %d)", i, in.Month, first))
			continue
		}
		seen[in.Month] = i
		plans = append(plans, domain.FinancialPlan{
			PlanID:      uuid.NewString(),
			Month:       in.Month,
			Income:      in.Income,
			Expense:     in.Expense,
			AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
		})
	}
	if len(violations) > 0 {
		s.LogWarn(ctx, "Plan snapshot push rejected", slog.Int("violations", len(violations)))
		return 0, apperrors.NewValidationError(violations)
	}

	sort.SliceStable(plans, func(i, j int) bool {
		return plans[i].Month < plans[j].Month
	})

	if err := s.planRepo.ReplaceAllPlans(ctx, plans); err != nil {
		return 0, fmt.Errorf("failed to replace plan snapshot: %w", err)
	}

	s.notifyRefresh()
	s.LogInfo(ctx, "Plan snapshot replaced", slog.Int("count", len(plans)))
	return len(plans), nil
}

func (s *planService) notifyRefresh() {
	if s.refresher != nil {
		s.refresher.Notify()
	}
}
