package repositories

import (
	"context"

	"github.com/katysh-aa/family-budget/internal/core/domain"
)

// RateReader reads the durable local fallback rate slot.
type RateReader interface {
	// FindCachedRate retrieves the last stored rate, or
	// apperrors.ErrNotFound when nothing was ever stored.
	FindCachedRate(ctx context.Context) (*domain.UsdRate, error)
}

// RateWriter persists a freshly fetched rate to the fallback slot.
type RateWriter interface {
	SaveRate(ctx context.Context, rate domain.UsdRate) error
}

// RateRepositoryFacade combines fallback slot read and write operations.
type RateRepositoryFacade interface {
	RateReader
	RateWriter
}

// RateSource is the external quote feed. Implementations perform one network
// call and return the current rate with its as-of date.
type RateSource interface {
	FetchRate(ctx context.Context) (*domain.UsdRate, error)
}
