// Package budgeting holds the pure computations that turn transaction and
// plan snapshots into derived figures. Nothing here performs I/O or holds
// state; every function is deterministic over its inputs, so recomputation
// is idempotent and safe to invoke on every snapshot change.
package budgeting

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/katysh-aa/family-budget/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Regular filters the snapshot down to the local-currency ledger.
func Regular(txns []domain.Transaction) []domain.Transaction {
	out := make([]domain.Transaction, 0, len(txns))
	for _, t := range txns {
		if t.IsRegular() {
			out = append(out, t)
		}
	}
	return out
}

// MonthIncome sums income amounts of regular transactions within the month.
func MonthIncome(txns []domain.Transaction, month string) decimal.Decimal {
	return monthTotal(txns, month, domain.Income)
}

// MonthExpense sums expense amounts of regular transactions within the month.
func MonthExpense(txns []domain.Transaction, month string) decimal.Decimal {
	return monthTotal(txns, month, domain.Expense)
}

func monthTotal(txns []domain.Transaction, month string, tt domain.TransactionType) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range txns {
		if t.IsRegular() && t.Type == tt && strings.HasPrefix(t.Date.Format(domain.DateLayout), month) {
			sum = sum.Add(t.Amount)
		}
	}
	return sum
}

// TotalSavings is the running local-currency balance over the entire history:
// all regular income minus all regular expense, independent of input order.
func TotalSavings(txns []domain.Transaction) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range txns {
		if !t.IsRegular() {
			continue
		}
		if t.Type == domain.Income {
			sum = sum.Add(t.Amount)
		} else {
			sum = sum.Sub(t.Amount)
		}
	}
	return sum
}

// DollarNet is the signed net position of the dollar-savings ledger: income
// adds, expense subtracts, in the foreign unit.
func DollarNet(txns []domain.Transaction) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range txns {
		if t.IsRegular() {
			continue
		}
		if t.Type == domain.Income {
			sum = sum.Add(t.Amount)
		} else {
			sum = sum.Sub(t.Amount)
		}
	}
	return sum
}

// GoalProgress is savings/goal as a percentage clamped to [0,100]. A goal of
// zero or less yields zero rather than a division.
func GoalProgress(savings, goal decimal.Decimal) float64 {
	if goal.LessThanOrEqual(decimal.Zero) {
		return 0
	}
	return Progress(savings, goal)
}

// Progress is actual/planned as a percentage clamped to [0,100], with zero
// planned mapping to zero percent.
func Progress(actual, planned decimal.Decimal) float64 {
	if planned.LessThanOrEqual(decimal.Zero) {
		return 0
	}
	pct, _ := actual.Div(planned).Mul(decimal.NewFromInt(100)).Float64()
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}

// ExpenseByCategory groups regular expense transactions by exact category
// string and returns per-category sums sorted descending. Categories with
// equal sums keep their first-appearance order (stable sort).
func ExpenseByCategory(txns []domain.Transaction) []domain.CategoryTotal {
	index := make(map[string]int)
	var totals []domain.CategoryTotal
	for _, t := range txns {
		if !t.IsRegular() || t.Type != domain.Expense {
			continue
		}
		i, ok := index[t.Category]
		if !ok {
			i = len(totals)
			index[t.Category] = i
			totals = append(totals, domain.CategoryTotal{Category: t.Category, Total: decimal.Zero})
		}
		totals[i].Total = totals[i].Total.Add(t.Amount)
	}
	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Total.GreaterThan(totals[j].Total)
	})
	return totals
}

// TopCategories truncates a breakdown to its first n rows.
func TopCategories(totals []domain.CategoryTotal, n int) []domain.CategoryTotal {
	if n <= 0 || n >= len(totals) {
		return totals
	}
	return totals[:n]
}

// BalanceBefore is the signed net of regular transactions strictly before
// the given date. It seeds range-bounded running totals so a chart reflects
// true cumulative position rather than just flow within the window.
func BalanceBefore(txns []domain.Transaction, start time.Time) decimal.Decimal {
	startDay := domain.DateOnly(start)
	sum := decimal.Zero
	for _, t := range txns {
		if !t.IsRegular() || !domain.DateOnly(t.Date).Before(startDay) {
			continue
		}
		if t.Type == domain.Income {
			sum = sum.Add(t.Amount)
		} else {
			sum = sum.Sub(t.Amount)
		}
	}
	return sum
}

// FilterRange keeps transactions whose calendar date falls inside
// [start, end], both bounds inclusive. The caller guarantees start <= end.
func FilterRange(txns []domain.Transaction, start, end time.Time) []domain.Transaction {
	startDay, endDay := domain.DateOnly(start), domain.DateOnly(end)
	out := make([]domain.Transaction, 0, len(txns))
	for _, t := range txns {
		d := domain.DateOnly(t.Date)
		if !d.Before(startDay) && !d.After(endDay) {
			out = append(out, t)
		}
	}
	return out
}

// WeeklySavings builds the cumulative savings series over [start, end] from
// regular transactions already filtered to that range. The series opens with
// a week-0 seed carrying the opening balance, then one point per 7-day window
// anchored at start, the final window truncated at end. An empty window
// carries the cumulative total forward unchanged.
//
// The caller validates start <= end before calling; see
// AnalyticsService.WeeklySavings.
func WeeklySavings(txns []domain.Transaction, start, end time.Time, opening decimal.Decimal) []domain.WeeklyPoint {
	startDay, endDay := domain.DateOnly(start), domain.DateOnly(end)

	points := []domain.WeeklyPoint{{Week: 0, Label: "start", Savings: opening}}
	cumulative := opening

	current := startDay
	for week := 1; !current.After(endDay); week++ {
		windowEnd := current.AddDate(0, 0, 6)
		if windowEnd.After(endDay) {
			windowEnd = endDay
		}

		net := decimal.Zero
		for _, t := range txns {
			if !t.IsRegular() {
				continue
			}
			d := domain.DateOnly(t.Date)
			if d.Before(current) || d.After(windowEnd) {
				continue
			}
			if t.Type == domain.Income {
				net = net.Add(t.Amount)
			} else {
				net = net.Sub(t.Amount)
			}
		}

		cumulative = cumulative.Add(net)
		points = append(points, domain.WeeklyPoint{
			Week:    week,
			Label:   fmt.Sprintf("Week %d", week),
			Savings: cumulative,
		})
		current = current.AddDate(0, 0, 7)
	}
	return points
}
