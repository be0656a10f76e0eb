package dto

// DateRangeQuery bounds a range query. The dateonly binding rule is
// registered in handlers.RegisterCustomValidations; start <= end is checked
// by the analytics service so the rejection policy lives in one place.
type DateRangeQuery struct {
	Start string `form:"start" binding:"required,dateonly"`
	End   string `form:"end" binding:"required,dateonly"`
}

// MonthQuery selects a YYYY-MM month; empty means the current month.
type MonthQuery struct {
	Month string `form:"month" binding:"omitempty,yearmonth"`
}

// TopExpensesQuery selects the ranking depth for the summary view.
type TopExpensesQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1"`
}

// SnapshotResponse reports how many records a snapshot push replaced.
type SnapshotResponse struct {
	Replaced int `json:"replaced"`
}
