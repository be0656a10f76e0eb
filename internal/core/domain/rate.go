package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultRateTTL bounds how long a fetched rate counts as fresh.
const DefaultRateTTL = 24 * time.Hour

// UsdRate is a cached snapshot of the USD/RUB exchange rate. AsOf is the
// quote date reported by the source; FetchedAt is when we obtained it and
// drives the freshness check.
type UsdRate struct {
	Rate      decimal.Decimal `json:"rate"`
	AsOf      time.Time       `json:"asOf"`
	FetchedAt time.Time       `json:"fetchedAt"`
}

// Fresh reports whether the rate is still within its freshness window.
func (r UsdRate) Fresh(now time.Time, ttl time.Duration) bool {
	return now.Sub(r.FetchedAt) < ttl
}
