package domain

import "github.com/shopspring/decimal"

// DefaultSavingsGoal is used when no goal has ever been saved.
var DefaultSavingsGoal = decimal.NewFromInt(500000)

// SavingsGoal is the user-set target local-currency balance used to compute
// progress percentages. Process-wide scalar.
type SavingsGoal struct {
	Amount decimal.Decimal `json:"amount"`
	AuditFields
}
