package services

import (
	"context"
	"time"

	"github.com/katysh-aa/family-budget/internal/core/domain"
)

// AnalyticsSvcFacade is the aggregation engine boundary: pure derivations
// over the store snapshots, recomputed from scratch on every call. Only
// SavingsOverview touches I/O beyond the snapshots (the rate provider), and
// it degrades to local-only figures when the rate is unavailable.
type AnalyticsSvcFacade interface {
	// MonthlySummary derives the figures for one YYYY-MM month plus the
	// all-history running savings balance and goal progress.
	MonthlySummary(ctx context.Context, month string) (*domain.MonthlySummary, error)

	// SavingsOverview combines local and dollar-savings ledgers. Local
	// figures never fail; rate-dependent figures degrade explicitly.
	SavingsOverview(ctx context.Context) (*domain.SavingsOverview, error)

	// TopExpenseCategories ranks regular expenses by category over the
	// entire history, descending, ties in first-appearance order.
	TopExpenseCategories(ctx context.Context, limit int) ([]domain.CategoryTotal, error)

	// ExpenseBreakdown ranks regular expenses by category within
	// [start, end], for the pie chart.
	ExpenseBreakdown(ctx context.Context, start, end time.Time) ([]domain.CategoryTotal, error)

	// WeeklySavings builds the cumulative savings series over [start, end].
	// start > end is rejected with apperrors.ErrInvalidRange before any
	// computation.
	WeeklySavings(ctx context.Context, start, end time.Time) ([]domain.WeeklyPoint, error)

	// PlanReconciliation compares one month's plan against actuals.
	PlanReconciliation(ctx context.Context, month string) (*domain.PlanReconciliation, error)
}
