package services

import (
	portsrepo "github.com/katysh-aa/family-budget/internal/core/ports/repositories"
	portssvc "github.com/katysh-aa/family-budget/internal/core/ports/services"
	"github.com/katysh-aa/family-budget/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies. All mutating services share one refresh trigger
// so bursts of changes collapse into a single recomputation.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, refresher *RefreshNotifier) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Transaction = NewTransactionService(
		repos.TransactionRepo,
		WithTransactionRefreshTrigger(refresher),
	)
	container.Plan = NewPlanService(
		repos.PlanRepo,
		WithPlanRefreshTrigger(refresher),
	)
	container.Goal = NewGoalService(
		repos.GoalRepo,
		WithGoalRefreshTrigger(refresher),
	)
	container.Rate = NewRateService(
		repos.RateSource,
		repos.RateRepo,
		WithRateTTL(cfg.RateCacheTTL),
	)
	container.Analytics = NewAnalyticsService(
		repos.TransactionRepo,
		repos.PlanRepo,
		container.Goal,
		container.Rate,
	)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.TransactionSvcFacade = (*transactionService)(nil)
	_ portssvc.PlanSvcFacade        = (*planService)(nil)
	_ portssvc.GoalSvcFacade        = (*goalService)(nil)
	_ portssvc.RateSvcFacade        = (*rateService)(nil)
	_ portssvc.AnalyticsSvcFacade   = (*analyticsService)(nil)
)
