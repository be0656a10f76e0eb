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

// PlanRepository is the in-memory financial plan snapshot store.
type PlanRepository struct {
	mu    sync.RWMutex
	plans []domain.FinancialPlan
}

// NewPlanRepository creates an empty plan snapshot store.
func NewPlanRepository() *PlanRepository {
	return &PlanRepository{}
}

var _ portsrepo.PlanRepositoryFacade = (*PlanRepository)(nil)

// ListPlans returns a copy of the snapshot, month ascending.
func (r *PlanRepository) ListPlans(ctx context.Context) ([]domain.FinancialPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.FinancialPlan, len(r.plans))
	copy(out, r.plans)
	return out, nil
}

// FindPlanByID retrieves one plan from the snapshot.
func (r *PlanRepository) FindPlanByID(ctx context.Context, planID string) (*domain.FinancialPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.plans {
		if r.plans[i].PlanID == planID {
			plan := r.plans[i]
			return &plan, nil
		}
	}
	return nil, fmt.Errorf("plan %s: %w", planID, apperrors.ErrNotFound)
}

// FindPlanByMonth retrieves the plan for a month key, if any.
func (r *PlanRepository) FindPlanByMonth(ctx context.Context, month string) (*domain.FinancialPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.plans {
		if r.plans[i].Month == month {
			plan := r.plans[i]
			return &plan, nil
		}
	}
	return nil, fmt.Errorf("plan for month %s: %w", month, apperrors.ErrNotFound)
}

// SavePlan adds a plan, keeping month-ascending order.
func (r *PlanRepository) SavePlan(ctx context.Context, plan domain.FinancialPlan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	next := make([]domain.FinancialPlan, 0, len(r.plans)+1)
	next = append(next, r.plans...)
	next = append(next, plan)
	sortByMonth(next)
	r.plans = next
	return nil
}

// UpdatePlan replaces an existing plan in a new snapshot.
func (r *PlanRepository) UpdatePlan(ctx context.Context, plan domain.FinancialPlan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	idx := -1
	for i := range r.plans {
		if r.plans[i].PlanID == plan.PlanID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("plan %s: %w", plan.PlanID, apperrors.ErrNotFound)
	}
	next := make([]domain.FinancialPlan, len(r.plans))
	copy(next, r.plans)
	next[idx] = plan
	sortByMonth(next)
	r.plans = next
	return nil
}

// DeletePlan removes a plan in a new snapshot.
func (r *PlanRepository) DeletePlan(ctx context.Context, planID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	next := make([]domain.FinancialPlan, 0, len(r.plans))
	found := false
	for _, p := range r.plans {
		if p.PlanID == planID {
			found = true
			continue
		}
		next = append(next, p)
	}
	if !found {
		return fmt.Errorf("plan %s: %w", planID, apperrors.ErrNotFound)
	}
	r.plans = next
	return nil
}

// ReplaceAllPlans swaps in a complete new snapshot by reference.
func (r *PlanRepository) ReplaceAllPlans(ctx context.Context, plans []domain.FinancialPlan) error {
	next := make([]domain.FinancialPlan, len(plans))
	copy(next, plans)
	sortByMonth(next)
	r.mu.Lock()
	r.plans = next
	r.mu.Unlock()
	return nil
}

func sortByMonth(plans []domain.FinancialPlan) {
	sort.SliceStable(plans, func(i, j int) bool {
		return plans[i].Month < plans[j].Month
	})
}
