package services

import (
	"context"
	"time"

	"github.com/katysh-aa/family-budget/internal/core/domain"
)

// RateSvcFacade is the currency rate provider. GetRate never issues more
// than one in-flight fetch; concurrent callers share the same outcome.
// Fetch failures degrade to the last known rate when one exists and only
// surface apperrors.ErrRateUnavailable when there is no fallback at all.
type RateSvcFacade interface {
	GetRate(ctx context.Context) (*domain.UsdRate, error)

	// TTL is the freshness window, exposed so callers can flag staleness.
	TTL() time.Duration
}
