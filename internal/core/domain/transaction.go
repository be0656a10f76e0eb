package domain

import (
	"fmt"
	"regexp"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// TransactionType indicates the direction of a cash-flow event.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// Intake bounds for free-text fields and amounts.
const (
	MaxCategoryLength = 50
	MaxAuthorLength   = 30
	MaxCommentLength  = 200
)

// MaxAmount is the upper bound for a single transaction amount; anything at
// or above it is rejected as unrealistic.
var MaxAmount = decimal.New(1, 9) // 10^9

var dateFormatRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Transaction represents a single recorded cash-flow event. A transaction is
// either a regular local-currency entry or a dollar-savings entry, never
// both; the two ledgers are aggregated independently.
type Transaction struct {
	TransactionID string          `json:"transactionID"`
	Date          time.Time       `json:"date"` // calendar date, UTC midnight
	Category      string          `json:"category"`
	Amount        decimal.Decimal `json:"amount"` // positive magnitude; direction comes from Type
	Type          TransactionType `json:"type"`
	Author        string          `json:"author"`
	Comment       string          `json:"comment,omitempty"`
	DollarSavings bool            `json:"isDollarSavings"`
	AuditFields
}

// IsRegular reports whether the transaction belongs to the local-currency ledger.
func (t Transaction) IsRegular() bool {
	return !t.DollarSavings
}

// MonthKey returns the YYYY-MM bucket the transaction falls into.
func (t Transaction) MonthKey() string {
	return t.Date.Format(MonthLayout)
}

// ValidationResult reports the outcome of an intake check with every violated
// rule listed in rule order.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// TransactionInput is the raw, unparsed form of a transaction as it arrives
// at the intake boundary. Validate must pass before ToTransaction is called.
type TransactionInput struct {
	Date          string
	Category      string
	Amount        decimal.Decimal
	Type          string
	Author        string
	Comment       string
	DollarSavings bool
}

// Validate checks every intake rule and reports all violations together.
func (in TransactionInput) Validate() ValidationResult {
	var errs []string

	if !dateFormatRe.MatchString(in.Date) {
		errs = append(errs, "date must be in YYYY-MM-DD format")
	} else if _, err := time.Parse(DateLayout, in.Date); err != nil {
		errs = append(errs, fmt.Sprintf("date %q is not a valid calendar date", in.Date))
	}

	if in.Category == "" {
		errs = append(errs, "category is required")
	} else if utf8.RuneCountInString(in.Category) > MaxCategoryLength {
		errs = append(errs, fmt.Sprintf("category too long (max %d characters)", MaxCategoryLength))
	}

	if in.Amount.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, "amount must be positive")
	} else if in.Amount.GreaterThanOrEqual(MaxAmount) {
		errs = append(errs, "amount too large")
	}

	if in.Type != string(Income) && in.Type != string(Expense) {
		errs = append(errs, "type must be either income or expense")
	}

	if in.Author == "" {
		errs = append(errs, "author is required")
	} else if utf8.RuneCountInString(in.Author) > MaxAuthorLength {
		errs = append(errs, fmt.Sprintf("author too long (max %d characters)", MaxAuthorLength))
	}

	if utf8.RuneCountInString(in.Comment) > MaxCommentLength {
		errs = append(errs, fmt.Sprintf("comment too long (max %d characters)", MaxCommentLength))
	}

	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

// ToTransaction converts validated input into a domain transaction without an
// ID or audit fields; those are assigned by the service layer.
func (in TransactionInput) ToTransaction() Transaction {
	date, _ := time.Parse(DateLayout, in.Date)
	return Transaction{
		Date:          DateOnly(date),
		Category:      in.Category,
		Amount:        in.Amount,
		Type:          TransactionType(in.Type),
		Author:        in.Author,
		Comment:       in.Comment,
		DollarSavings: in.DollarSavings,
	}
}
