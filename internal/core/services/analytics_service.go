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
	"github.com/katysh-aa/family-budget/internal/utils/budgeting"
)

// defaultTopExpenses is the ranking depth of the summary view.
const defaultTopExpenses = 3

// analyticsService implements the AnalyticsSvcFacade interface. It is
// stateless: every call loads the current snapshots and recomputes from
// scratch, so results always reflect the latest snapshot replacement.
type analyticsService struct {
	BaseService
	txnRepo  portsrepo.TransactionReader
	planRepo portsrepo.PlanReader
	goalSvc  portssvc.GoalSvcFacade
	rateSvc  portssvc.RateSvcFacade
}

// NewAnalyticsService creates a new analytics service.
func NewAnalyticsService(
	txnRepo portsrepo.TransactionReader,
	planRepo portsrepo.PlanReader,
	goalSvc portssvc.GoalSvcFacade,
	rateSvc portssvc.RateSvcFacade,
) portssvc.AnalyticsSvcFacade {
	return &analyticsService{
		txnRepo:  txnRepo,
		planRepo: planRepo,
		goalSvc:  goalSvc,
		rateSvc:  rateSvc,
	}
}

var _ portssvc.AnalyticsSvcFacade = (*analyticsService)(nil)

// MonthlySummary derives income/expense for the month plus the all-history
// running balance and goal progress.
func (s *analyticsService) MonthlySummary(ctx context.Context, month string) (*domain.MonthlySummary, error) {
	if !domain.ValidMonth(month) {
		return nil, fmt.Errorf("%w: month must be in YYYY-MM format", apperrors.ErrValidation)
	}

	txns, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transaction snapshot: %w", err)
	}
	goal, err := s.goalSvc.GetGoal(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load savings goal: %w", err)
	}

	total := budgeting.TotalSavings(txns)
	summary := &domain.MonthlySummary{
		Month:        month,
		Income:       budgeting.MonthIncome(txns, month),
		Expense:      budgeting.MonthExpense(txns, month),
		TotalSavings: total,
		Goal:         goal.Amount,
		GoalProgress: budgeting.GoalProgress(total, goal.Amount),
	}

	s.LogDebug(ctx, "Monthly summary computed",
		slog.String("month", month),
		slog.String("income", summary.Income.String()),
		slog.String("expense", summary.Expense.String()))
	return summary, nil
}

// SavingsOverview combines the local running balance with the dollar ledger
// converted at the current rate. The local figures are computed first and
// survive a rate failure; the combined figure then carries an explicit
// degraded flag instead of silently passing off the local-only number.
func (s *analyticsService) SavingsOverview(ctx context.Context) (*domain.SavingsOverview, error) {
	txns, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transaction snapshot: %w", err)
	}

	overview := &domain.SavingsOverview{
		RubleSavings: budgeting.TotalSavings(txns),
		DollarAmount: budgeting.DollarNet(txns),
	}
	overview.Combined = overview.RubleSavings

	rate, err := s.rateSvc.GetRate(ctx)
	if err != nil {
		if !errors.Is(err, apperrors.ErrRateUnavailable) {
			return nil, fmt.Errorf("failed to get exchange rate: %w", err)
		}
		s.LogWarn(ctx, "Exchange rate unavailable, savings overview degraded to local-only figures",
			slog.String("error", err.Error()))
		return overview, nil
	}

	overview.Rate = rate
	overview.RateAvailable = true
	overview.RateStale = !rate.Fresh(time.Now(), s.rateSvc.TTL())
	overview.DollarInRubles = overview.DollarAmount.Mul(rate.Rate)
	overview.Combined = overview.RubleSavings.Add(overview.DollarInRubles)
	return overview, nil
}

// TopExpenseCategories ranks regular expenses by category over the entire
// history, descending, ties keeping first-appearance order.
func (s *analyticsService) TopExpenseCategories(ctx context.Context, limit int) ([]domain.CategoryTotal, error) {
	if limit <= 0 {
		limit = defaultTopExpenses
	}
	txns, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transaction snapshot: %w", err)
	}
	return budgeting.TopCategories(budgeting.ExpenseByCategory(txns), limit), nil
}

// ExpenseBreakdown ranks regular expenses by category within [start, end].
func (s *analyticsService) ExpenseBreakdown(ctx context.Context, start, end time.Time) ([]domain.CategoryTotal, error) {
	if err := s.checkRange(ctx, start, end); err != nil {
		return nil, err
	}
	txns, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transaction snapshot: %w", err)
	}
	window := budgeting.FilterRange(budgeting.Regular(txns), start, end)
	return budgeting.ExpenseByCategory(window), nil
}

// WeeklySavings builds the cumulative savings series over [start, end],
// seeded with the balance of everything strictly before start.
func (s *analyticsService) WeeklySavings(ctx context.Context, start, end time.Time) ([]domain.WeeklyPoint, error) {
	if err := s.checkRange(ctx, start, end); err != nil {
		return nil, err
	}
	txns, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transaction snapshot: %w", err)
	}

	regular := budgeting.Regular(txns)
	opening := budgeting.BalanceBefore(regular, start)
	window := budgeting.FilterRange(regular, start, end)
	return budgeting.WeeklySavings(window, start, end, opening), nil
}

// PlanReconciliation compares one month's plan against actuals.
func (s *analyticsService) PlanReconciliation(ctx context.Context, month string) (*domain.PlanReconciliation, error) {
	if !domain.ValidMonth(month) {
		return nil, fmt.Errorf("%w: month must be in YYYY-MM format", apperrors.ErrValidation)
	}

	txns, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transaction snapshot: %w", err)
	}

	rec := &domain.PlanReconciliation{
		Month:         month,
		ActualIncome:  budgeting.MonthIncome(txns, month),
		ActualExpense: budgeting.MonthExpense(txns, month),
	}
	rec.MonthlySavings = rec.ActualIncome.Sub(rec.ActualExpense)

	plan, err := s.planRepo.FindPlanByMonth(ctx, month)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return rec, nil
		}
		return nil, fmt.Errorf("failed to look up plan for month %s: %w", month, err)
	}

	rec.HasPlan = true
	rec.PlannedIncome = plan.Income
	rec.PlannedExpense = plan.Expense
	rec.IncomeProgress = budgeting.Progress(rec.ActualIncome, plan.Income)
	rec.ExpenseProgress = budgeting.Progress(rec.ActualExpense, plan.Expense)
	return rec, nil
}

// checkRange rejects inverted ranges before any computation runs.
func (s *analyticsService) checkRange(ctx context.Context, start, end time.Time) error {
	if domain.DateOnly(start).After(domain.DateOnly(end)) {
		s.LogWarn(ctx, "Rejected inverted date range",
			slog.Time("start", start),
			slog.Time("end", end))
		return fmt.Errorf("%w: start date %s is after end date %s",
			apperrors.ErrInvalidRange,
			start.Format(domain.DateLayout),
			end.Format(domain.DateLayout))
	}
	return nil
}
