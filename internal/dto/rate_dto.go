package dto

import (
	"time"

	"github.com/katysh-aa/family-budget/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RateResponse exposes the cached exchange rate together with its staleness,
// so clients can distinguish a degraded fallback from a fresh quote.
type RateResponse struct {
	Rate      decimal.Decimal `json:"rate"`
	AsOf      time.Time       `json:"asOf"`
	FetchedAt time.Time       `json:"fetchedAt"`
	Stale     bool            `json:"stale"`
}

// ToRateResponse converts a domain.UsdRate to its response DTO.
func ToRateResponse(rate *domain.UsdRate, now time.Time, ttl time.Duration) RateResponse {
	return RateResponse{
		Rate:      rate.Rate,
		AsOf:      rate.AsOf,
		FetchedAt: rate.FetchedAt,
		Stale:     !rate.Fresh(now, ttl),
	}
}
