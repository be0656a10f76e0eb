package repositories

// RepositoryProvider bundles all repository facades for service wiring.
type RepositoryProvider struct {
	TransactionRepo TransactionRepositoryFacade
	PlanRepo        PlanRepositoryFacade
	GoalRepo        GoalRepositoryFacade
	RateRepo        RateRepositoryFacade
	RateSource      RateSource
}
