package domain

import "time"

// DateLayout is the calendar-date wire format used throughout the API.
// Transactions carry no time component; all bucketing is by calendar date.
const DateLayout = "2006-01-02"

// MonthLayout is the wire format for plan months.
const MonthLayout = "2006-01"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// DateOnly strips any time component, leaving a UTC midnight instant.
// Comparisons between transaction dates must always go through this.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
