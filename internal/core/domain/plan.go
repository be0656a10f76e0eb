package domain

import (
	"regexp"
	"time"

	"github.com/shopspring/decimal"
)

var monthFormatRe = regexp.MustCompile(`^\d{4}-\d{2}$`)

// FinancialPlan is a budget target for one calendar month. The month key is
// unique within the plan collection; uniqueness is enforced by the plan
// service's upsert, not by the store.
type FinancialPlan struct {
	PlanID  string          `json:"planID"`
	Month   string          `json:"month"` // YYYY-MM
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	AuditFields
}

// PlanInput is the raw form of a plan at the intake boundary.
type PlanInput struct {
	Month   string
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// Validate checks every plan intake rule and reports all violations together.
func (in PlanInput) Validate() ValidationResult {
	var errs []string

	if !ValidMonth(in.Month) {
		errs = append(errs, "month must be in YYYY-MM format")
	}
	if in.Income.IsNegative() {
		errs = append(errs, "planned income must not be negative")
	} else if in.Income.GreaterThanOrEqual(MaxAmount) {
		errs = append(errs, "planned income too large")
	}
	if in.Expense.IsNegative() {
		errs = append(errs, "planned expense must not be negative")
	} else if in.Expense.GreaterThanOrEqual(MaxAmount) {
		errs = append(errs, "planned expense too large")
	}

	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

// ValidMonth reports whether s is a well-formed YYYY-MM month key.
func ValidMonth(s string) bool {
	if !monthFormatRe.MatchString(s) {
		return false
	}
	_, err := time.Parse(MonthLayout, s)
	return err == nil
}
