package domain

import (
	"github.com/shopspring/decimal"
)

// MonthlySummary holds the derived figures for one calendar month plus the
// all-history running balance and goal progress.
type MonthlySummary struct {
	Month        string          `json:"month"`
	Income       decimal.Decimal `json:"income"`
	Expense      decimal.Decimal `json:"expense"`
	TotalSavings decimal.Decimal `json:"totalSavings"` // running balance, not bounded to the month
	Goal         decimal.Decimal `json:"goal"`
	GoalProgress float64         `json:"goalProgress"` // percent, clamped to [0,100]
}

// SavingsOverview combines the local-currency running balance with the
// dollar-savings ledger converted at the current rate. The local figures are
// always present; the rate-dependent figures degrade explicitly.
type SavingsOverview struct {
	RubleSavings   decimal.Decimal `json:"rubleSavings"`
	DollarAmount   decimal.Decimal `json:"dollarAmount"` // signed net position in USD
	DollarInRubles decimal.Decimal `json:"dollarInRubles"`
	Combined       decimal.Decimal `json:"combined"`
	RateAvailable  bool            `json:"rateAvailable"`
	RateStale      bool            `json:"rateStale"`
	Rate           *UsdRate        `json:"rate,omitempty"`
}

// CategoryTotal is one row of a category breakdown.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// PlanReconciliation compares one month's plan against actuals. Progress
// percentages are clamped to [0,100] and are zero when nothing was planned.
type PlanReconciliation struct {
	Month           string          `json:"month"`
	HasPlan         bool            `json:"hasPlan"`
	PlannedIncome   decimal.Decimal `json:"plannedIncome"`
	PlannedExpense  decimal.Decimal `json:"plannedExpense"`
	ActualIncome    decimal.Decimal `json:"actualIncome"`
	ActualExpense   decimal.Decimal `json:"actualExpense"`
	IncomeProgress  float64         `json:"incomeProgress"`
	ExpenseProgress float64         `json:"expenseProgress"`
	MonthlySavings  decimal.Decimal `json:"monthlySavings"`
}

// WeeklyPoint is one point of the cumulative savings time series. Week 0 is
// the seed point carrying the balance at the start of the range.
type WeeklyPoint struct {
	Week    int             `json:"week"`
	Label   string          `json:"label"`
	Savings decimal.Decimal `json:"savings"`
}
